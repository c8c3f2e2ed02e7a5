package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lifeline-inc/dispatch-api/dispatch"
	"github.com/lifeline-inc/dispatch-api/mocks"
	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/store"
)

func testRawHospital(id string) schema.RawHospital {
	return schema.RawHospital{
		ID:       id,
		Name:     "Hospital " + id,
		Location: &schema.Location{Latitude: 13.01, Longitude: 77.6},
		CaseAcceptance: map[string]interface{}{
			"cardiac": true,
		},
		BedAvailability: map[string]interface{}{
			"available": 10,
			"icu":       2,
			"emergency": 5,
		},
	}
}

func TestDispatchCase(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		dispatcher: dispatch.NewDispatcher(m, nil),
	}

	m.EXPECT().GetCase(gomock.Eq("case-1")).Return(&schema.EmergencyCase{
		ID:             "case-1",
		AcuityLevel:    3,
		EmergencyType:  schema.EmergencyCardiac,
		Status:         schema.CaseTriaged,
		PickupLocation: schema.Location{Latitude: 13.0, Longitude: 77.6},
	}, nil).Times(1)
	m.EXPECT().ListRawHospitals().Return([]schema.RawHospital{
		testRawHospital("h-1"),
		testRawHospital("h-2"),
	}, nil).Times(1)
	m.EXPECT().ListTelemetry().Return(map[string]schema.HospitalTelemetry{}, nil).Times(1)
	m.EXPECT().AppendNotifications(gomock.Eq("case-1"), gomock.Any()).Return(1, nil).Times(1)
	m.EXPECT().MarkAwaitingResponse(gomock.Eq("case-1"), gomock.Any()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:caseID/dispatch", s.dispatchCase)

	req := httptest.NewRequest("POST", "/case-1/dispatch", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.NotificationRecord
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp["notified"], 1, "wrong number of notified hospitals")
	assert.Equal(t, schema.ResponsePending, jResp["notified"][0].Response)
}

func TestDispatchCaseNoCandidates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		dispatcher: dispatch.NewDispatcher(m, nil),
	}

	// the only hospital does not accept cardiac cases
	h := testRawHospital("h-1")
	h.CaseAcceptance = map[string]interface{}{"trauma": true}

	m.EXPECT().GetCase(gomock.Eq("case-1")).Return(&schema.EmergencyCase{
		ID:             "case-1",
		AcuityLevel:    3,
		EmergencyType:  schema.EmergencyCardiac,
		Status:         schema.CaseTriaged,
		PickupLocation: schema.Location{Latitude: 13.0, Longitude: 77.6},
	}, nil).Times(1)
	m.EXPECT().ListRawHospitals().Return([]schema.RawHospital{h}, nil).Times(1)
	m.EXPECT().ListTelemetry().Return(map[string]schema.HospitalTelemetry{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:caseID/dispatch", s.dispatchCase)

	req := httptest.NewRequest("POST", "/case-1/dispatch", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1400), jResp.Code, "wrong error code")
}

func TestAcceptCase(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		responder:  dispatch.NewResponder(m, nil),
	}

	now := time.Now()
	m.EXPECT().
		AcceptCase(gomock.Eq("case-1"), gomock.Eq("h-1"), gomock.Any()).
		Return(&schema.EmergencyCase{
			ID:                 "case-1",
			Status:             schema.CaseAccepted,
			AcceptedHospitalID: "h-1",
			AcceptedAt:         &now,
		}, []string{"h-2"}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:caseID/accept", s.acceptCase)

	req := httptest.NewRequest("POST", "/case-1/accept", strings.NewReader(`{"hospital_id": "h-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.EmergencyCase
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "h-1", jResp.AcceptedHospitalID, "wrong accepted hospital")
	assert.Equal(t, schema.CaseAccepted, jResp.Status, "wrong case status")
}

func TestAcceptCaseLosesRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		responder:  dispatch.NewResponder(m, nil),
	}

	m.EXPECT().
		AcceptCase(gomock.Eq("case-1"), gomock.Eq("h-2"), gomock.Any()).
		Return(nil, nil, store.ErrCaseAlreadyAccepted).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:caseID/accept", s.acceptCase)

	req := httptest.NewRequest("POST", "/case-1/accept", strings.NewReader(`{"hospital_id": "h-2"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1200), jResp.Code, "wrong error code")
}

func TestRejectCaseInvalidReason(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		responder:  dispatch.NewResponder(m, nil),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:caseID/reject", s.rejectCase)

	req := httptest.NewRequest("POST", "/case-1/reject",
		strings.NewReader(`{"hospital_id": "h-1", "reason": "too_busy"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1202), jResp.Code, "wrong error code")
}

func TestOverridePreviewRequiresEscalatedCase(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		responder:  dispatch.NewResponder(m, nil),
	}

	m.EXPECT().GetCase(gomock.Eq("case-1")).Return(&schema.EmergencyCase{
		ID:     "case-1",
		Status: schema.CaseAwaitingResponse,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:caseID/override", s.overridePreview)

	req := httptest.NewRequest("GET", "/case-1/override", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1301), jResp.Code, "wrong error code")
}

func TestOverridePreview(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		responder:  dispatch.NewResponder(m, nil),
	}

	m.EXPECT().GetCase(gomock.Eq("case-1")).Return(&schema.EmergencyCase{
		ID:             "case-1",
		AcuityLevel:    2,
		EmergencyType:  schema.EmergencyCardiac,
		Status:         schema.CaseEscalationRequired,
		PickupLocation: schema.Location{Latitude: 13.0, Longitude: 77.6},
		HospitalNotifications: []schema.NotificationRecord{
			{HospitalID: "h-1", Response: schema.ResponseRejected},
		},
	}, nil).Times(1)
	m.EXPECT().ListRawHospitals().Return([]schema.RawHospital{
		testRawHospital("h-1"),
		testRawHospital("h-2"),
	}, nil).Times(1)
	m.EXPECT().ListTelemetry().Return(map[string]schema.HospitalTelemetry{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:caseID/override", s.overridePreview)

	req := httptest.NewRequest("GET", "/case-1/override", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.ScoreResult
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp["hospitals"], 2, "wrong number of hospitals")

	// the rejector ranks below the untouched hospital
	assert.Equal(t, "h-2", jResp["hospitals"][0].HospitalID, "wrong top hospital")
	assert.Equal(t, 0.85, jResp["hospitals"][1].Breakdown.OverridePenalty, "missing override penalty")
}

func TestConfirmOverrideAlreadyUsed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		responder:  dispatch.NewResponder(m, nil),
	}

	m.EXPECT().
		ConfirmOverride(gomock.Eq("case-1"), gomock.Eq("h-1"), gomock.Any()).
		Return(store.ErrOverrideAlreadyUsed).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:caseID/override", s.confirmOverride)

	req := httptest.NewRequest("POST", "/case-1/override", strings.NewReader(`{"hospital_id": "h-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1300), jResp.Code, "wrong error code")
}

func TestRankHospitalsBadCountParam(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetCase(gomock.Eq("case-1")).Return(&schema.EmergencyCase{
		ID:            "case-1",
		AcuityLevel:   3,
		EmergencyType: schema.EmergencyCardiac,
	}, nil).Times(1)
	m.EXPECT().ListRawHospitals().Return([]schema.RawHospital{}, nil).Times(1)
	m.EXPECT().ListTelemetry().Return(map[string]schema.HospitalTelemetry{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:caseID/hospitals", s.rankHospitals)

	req := httptest.NewRequest("GET", "/case-1/hospitals?count=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), jResp.Code, "wrong error code")
}
