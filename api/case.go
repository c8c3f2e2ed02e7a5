package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/store"
	"github.com/lifeline-inc/dispatch-api/utils"
)

type caseRequest struct {
	AcuityLevel       int                    `json:"acuity_level"`
	EmergencyType     string                 `json:"emergency_type"`
	PickupLocation    *schema.Location       `json:"pickup_location"`
	IncidentTimestamp time.Time              `json:"incident_timestamp"`
	SupportRequired   schema.SupportRequired `json:"support_required"`
	InfectionRisk     schema.InfectionRisk   `json:"infection_risk"`
}

func (s *Server) createCase(c *gin.Context) {
	var body caseRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if body.AcuityLevel < 1 || body.AcuityLevel > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("acuity level must be between 1 and 5"))
		return
	}

	if body.PickupLocation == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("pickup location not provided"))
		return
	}

	incident := body.IncidentTimestamp
	if incident.IsZero() {
		incident = time.Now()
	}

	emergencyCase := &schema.EmergencyCase{
		ID:                uuid.New().String(),
		AcuityLevel:       body.AcuityLevel,
		EmergencyType:     schema.NormalizeEmergencyType(body.EmergencyType),
		PickupLocation:    *body.PickupLocation,
		IncidentTimestamp: incident,
		SupportRequired:   body.SupportRequired,
		InfectionRisk:     body.InfectionRisk,
		Status:            schema.CaseCreated,
	}

	if err := s.mongoStore.CreateCase(emergencyCase); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, emergencyCase)
}

func (s *Server) getCase(c *gin.Context) {
	emergencyCase, err := s.mongoStore.GetCase(c.Param("caseID"))
	if err != nil {
		switch err {
		case store.ErrCaseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, emergencyCase)
}

func (s *Server) updateCaseStatus(c *gin.Context) {
	var body struct {
		Status schema.CaseStatus `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.mongoStore.TransitionCase(c.Param("caseID"), body.Status); err != nil {
		switch err {
		case store.ErrCaseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) caseAuditTrail(c *gin.Context) {
	caseID := c.Param("caseID")

	if _, err := s.mongoStore.GetCase(caseID); err != nil {
		switch err {
		case store.ErrCaseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	events, err := s.store.ListAuditEvents(caseID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) metricCaseQueue(c *gin.Context) {
	queue := map[string]int{}
	for _, status := range []schema.CaseStatus{
		schema.CaseAwaitingResponse,
		schema.CaseEscalationRequired,
	} {
		cases, err := s.mongoStore.ListCasesByStatus(status)
		if shouldInterupt(err, c) {
			return
		}
		queue[string(status)] = len(cases)
	}

	c.JSON(http.StatusOK, gin.H{"queue": queue})
}

func (s *Server) triggerEscalationScan(c *gin.Context) {
	if s.cadenceClient == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer)
		return
	}

	if err := utils.TriggerEscalationScan(*s.cadenceClient, context.Background()); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
