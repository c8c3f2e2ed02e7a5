package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-inc/dispatch-api/dispatch"
	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/score"
	"github.com/lifeline-inc/dispatch-api/store"
)

type hospitalResponse struct {
	HospitalID string                 `json:"hospital_id"`
	Reason     schema.RejectionReason `json:"reason"`
	Note       string                 `json:"note"`
}

func (s *Server) dispatchCase(c *gin.Context) {
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

	hospitals, err := s.loadHospitals()
	if shouldInterupt(err, c) {
		return
	}

	ranked := score.RankHospitals(hospitals, emergencyCase)

	records, err := s.dispatcher.DispatchRound(emergencyCase, ranked)
	if err != nil {
		switch err {
		case dispatch.ErrNoCandidates:
			abortWithEncoding(c, http.StatusBadRequest, errorNoCandidates)
		case dispatch.ErrCaseDispatched:
			abortWithEncoding(c, http.StatusConflict, errorCaseDispatched)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"notified": records})
}

func (s *Server) acceptCase(c *gin.Context) {
	var body hospitalResponse
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	emergencyCase, err := s.responder.Accept(c.Param("caseID"), body.HospitalID)
	if err != nil {
		switch err {
		case store.ErrCaseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound)
		case store.ErrCaseAlreadyAccepted:
			abortWithEncoding(c, http.StatusConflict, errorCaseAlreadyAccepted)
		case store.ErrNotificationNotPending:
			abortWithEncoding(c, http.StatusBadRequest, errorNotificationNotPending)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, emergencyCase)
}

func (s *Server) rejectCase(c *gin.Context) {
	var body hospitalResponse
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	emergencyCase, err := s.responder.Reject(c.Param("caseID"), body.HospitalID, body.Reason, body.Note)
	if err != nil {
		switch err {
		case store.ErrCaseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound)
		case dispatch.ErrInvalidRejectionReason:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRejectionReason)
		case store.ErrNotificationNotPending:
			abortWithEncoding(c, http.StatusBadRequest, errorNotificationNotPending)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, emergencyCase)
}

func (s *Server) overridePreview(c *gin.Context) {
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

	if emergencyCase.Status != schema.CaseEscalationRequired {
		abortWithEncoding(c, http.StatusConflict, errorOverrideNotAllowed)
		return
	}

	hospitals, err := s.loadHospitals()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hospitals": s.responder.OverridePreview(emergencyCase, hospitals),
	})
}

func (s *Server) confirmOverride(c *gin.Context) {
	var body hospitalResponse
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.responder.ConfirmOverride(c.Param("caseID"), body.HospitalID); err != nil {
		switch err {
		case store.ErrCaseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound)
		case store.ErrOverrideAlreadyUsed:
			abortWithEncoding(c, http.StatusConflict, errorOverrideAlreadyUsed)
		case store.ErrOverrideNotAllowed:
			abortWithEncoding(c, http.StatusConflict, errorOverrideNotAllowed)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
