package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/score"
	"github.com/lifeline-inc/dispatch-api/store"
)

// loadHospitals reads every hospital in ingest form and overlays live
// telemetry before scoring.
func (s *Server) loadHospitals() ([]schema.Hospital, error) {
	raws, err := s.mongoStore.ListRawHospitals()
	if err != nil {
		return nil, err
	}

	telemetry, err := s.mongoStore.ListTelemetry()
	if err != nil {
		return nil, err
	}

	return score.NormalizeHospitals(raws, telemetry), nil
}

func (s *Server) listHospitals(c *gin.Context) {
	hospitals, err := s.loadHospitals()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"hospitals": hospitals})
}

func (s *Server) getHospital(c *gin.Context) {
	raw, err := s.mongoStore.GetRawHospital(c.Param("hospitalID"))
	if err != nil {
		switch err {
		case store.ErrHospitalNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownHospital)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	telemetry, err := s.mongoStore.ListTelemetry()
	if shouldInterupt(err, c) {
		return
	}

	h := score.NormalizeHospital(*raw)
	if t, ok := telemetry[h.ID]; ok {
		h = score.ApplyTelemetry(h, &t)
	}

	c.JSON(http.StatusOK, h)
}

func (s *Server) rankHospitals(c *gin.Context) {
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

	count := 0
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	var results []schema.ScoreResult
	if count > 0 {
		results = score.TopRecommendations(hospitals, emergencyCase, count)
	} else {
		results = score.RankHospitals(hospitals, emergencyCase)
	}

	c.JSON(http.StatusOK, gin.H{"hospitals": results})
}
