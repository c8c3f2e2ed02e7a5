package dispatch

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lifeline-inc/dispatch-api/mocks"
	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/store"
)

func TestThresholdForAcuity(t *testing.T) {
	assert.Equal(t, EscalationThreshold{MaxRejections: 1, Timeout: 60 * time.Second}, ThresholdForAcuity(1))
	assert.Equal(t, EscalationThreshold{MaxRejections: 2, Timeout: 90 * time.Second}, ThresholdForAcuity(2))
	assert.Equal(t, EscalationThreshold{MaxRejections: 3, Timeout: 120 * time.Second}, ThresholdForAcuity(3))
	assert.Equal(t, EscalationThreshold{MaxRejections: 3, Timeout: 150 * time.Second}, ThresholdForAcuity(4))
	assert.Equal(t, EscalationThreshold{MaxRejections: 3, Timeout: 180 * time.Second}, ThresholdForAcuity(5))

	// out-of-range acuity clamps to the nearest band
	assert.Equal(t, ThresholdForAcuity(1), ThresholdForAcuity(0))
	assert.Equal(t, ThresholdForAcuity(1), ThresholdForAcuity(-3))
	assert.Equal(t, ThresholdForAcuity(5), ThresholdForAcuity(9))
}

func TestEvaluateEscalationByRejections(t *testing.T) {
	now := time.Now()
	since := now.Add(-10 * time.Second)
	c := &schema.EmergencyCase{
		AcuityLevel:           2,
		Status:                schema.CaseAwaitingResponse,
		RejectionCount:        2,
		AwaitingResponseSince: &since,
	}

	decision := EvaluateEscalation(c, now)
	assert.True(t, decision.ShouldEscalate)
	assert.Equal(t, EscalationByRejections, decision.Reason)
}

func TestEvaluateEscalationByTimeout(t *testing.T) {
	now := time.Now()
	since := now.Add(-121 * time.Second)
	c := &schema.EmergencyCase{
		AcuityLevel:           3,
		Status:                schema.CaseAwaitingResponse,
		RejectionCount:        0,
		AwaitingResponseSince: &since,
	}

	decision := EvaluateEscalation(c, now)
	assert.True(t, decision.ShouldEscalate)
	assert.Equal(t, EscalationByTimeout, decision.Reason)
}

func TestEvaluateEscalationByBoth(t *testing.T) {
	now := time.Now()
	since := now.Add(-5 * time.Minute)
	c := &schema.EmergencyCase{
		AcuityLevel:           1,
		Status:                schema.CaseAwaitingResponse,
		RejectionCount:        1,
		AwaitingResponseSince: &since,
	}

	decision := EvaluateEscalation(c, now)
	assert.True(t, decision.ShouldEscalate)
	assert.Equal(t, EscalationByBoth, decision.Reason)
}

func TestEvaluateEscalationBelowThresholds(t *testing.T) {
	now := time.Now()
	since := now.Add(-30 * time.Second)
	c := &schema.EmergencyCase{
		AcuityLevel:           3,
		Status:                schema.CaseAwaitingResponse,
		RejectionCount:        2,
		AwaitingResponseSince: &since,
	}

	assert.False(t, EvaluateEscalation(c, now).ShouldEscalate)
}

func TestEvaluateEscalationSettledStates(t *testing.T) {
	now := time.Now()
	since := now.Add(-time.Hour)

	for _, status := range []schema.CaseStatus{
		schema.CaseAccepted, schema.CaseEscalationRequired,
		schema.CaseDispatcherOverride, schema.CaseCompleted,
	} {
		c := &schema.EmergencyCase{
			AcuityLevel:           1,
			Status:                status,
			RejectionCount:        5,
			AwaitingResponseSince: &since,
		}
		assert.False(t, EvaluateEscalation(c, now).ShouldEscalate, string(status))
	}
}

func TestEvaluateEscalationNoResponseClock(t *testing.T) {
	c := &schema.EmergencyCase{
		AcuityLevel:    3,
		Status:         schema.CaseAwaitingResponse,
		RejectionCount: 0,
	}
	assert.False(t, EvaluateEscalation(c, time.Now()).ShouldEscalate)
}

func TestScanAwaitingCasesEscalatesOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	e := NewEvaluator(caseStore, notifier)

	now := time.Now()
	overdue := now.Add(-5 * time.Minute)
	fresh := now.Add(-5 * time.Second)

	caseStore.EXPECT().
		ListCasesByStatus(schema.CaseAwaitingResponse).
		Return([]schema.EmergencyCase{
			{ID: "late", AcuityLevel: 3, Status: schema.CaseAwaitingResponse, AwaitingResponseSince: &overdue},
			{ID: "fresh", AcuityLevel: 3, Status: schema.CaseAwaitingResponse, AwaitingResponseSince: &fresh},
		}, nil)
	caseStore.EXPECT().MarkEscalated("late", EscalationByTimeout).Return(nil)
	notifier.EXPECT().EscalationTriggered("late", EscalationByTimeout)

	escalated, err := e.ScanAwaitingCases(now)
	assert.NoError(t, err)
	assert.Equal(t, 1, escalated)
}

func TestScanAwaitingCasesRaceDoesNotCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	e := NewEvaluator(caseStore, nil)

	now := time.Now()
	overdue := now.Add(-5 * time.Minute)

	caseStore.EXPECT().
		ListCasesByStatus(schema.CaseAwaitingResponse).
		Return([]schema.EmergencyCase{
			{ID: "late", AcuityLevel: 3, Status: schema.CaseAwaitingResponse, AwaitingResponseSince: &overdue},
		}, nil)
	// an accept landed between the list and the escalation write
	caseStore.EXPECT().MarkEscalated("late", EscalationByTimeout).Return(store.ErrCaseNotEscalatable)

	escalated, err := e.ScanAwaitingCases(now)
	assert.NoError(t, err)
	assert.Equal(t, 0, escalated)
}

func TestScanAwaitingCasesListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	e := NewEvaluator(caseStore, nil)

	caseStore.EXPECT().
		ListCasesByStatus(schema.CaseAwaitingResponse).
		Return(nil, fmt.Errorf("mongo down"))

	_, err := e.ScanAwaitingCases(time.Now())
	assert.Error(t, err)
}
