package dispatch

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lifeline-inc/dispatch-api/mocks"
	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/store"
)

func TestAcceptCancelsOtherPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	r := NewResponder(caseStore, notifier)

	accepted := &schema.EmergencyCase{
		ID:                 "case-1",
		Status:             schema.CaseAccepted,
		AcceptedHospitalID: "h-1",
	}

	caseStore.EXPECT().
		AcceptCase("case-1", "h-1", gomock.Any()).
		Return(accepted, []string{"h-2", "h-3"}, nil)
	notifier.EXPECT().CaseAccepted("case-1", "h-1")
	notifier.EXPECT().NotificationsCancelled("case-1", []string{"h-2", "h-3"})

	c, err := r.Accept("case-1", "h-1")
	assert.NoError(t, err)
	assert.Equal(t, "h-1", c.AcceptedHospitalID)
}

func TestAcceptLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	r := NewResponder(caseStore, nil)

	caseStore.EXPECT().
		AcceptCase("case-1", "h-2", gomock.Any()).
		Return(nil, nil, store.ErrCaseAlreadyAccepted)

	_, err := r.Accept("case-1", "h-2")
	assert.Equal(t, store.ErrCaseAlreadyAccepted, err)
}

func TestAcceptNoCancellationsSkipsNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	r := NewResponder(caseStore, notifier)

	caseStore.EXPECT().
		AcceptCase("case-1", "h-1", gomock.Any()).
		Return(&schema.EmergencyCase{ID: "case-1"}, nil, nil)
	notifier.EXPECT().CaseAccepted("case-1", "h-1")
	// no NotificationsCancelled expectation

	_, err := r.Accept("case-1", "h-1")
	assert.NoError(t, err)
}

func TestRejectRequiresValidReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewResponder(mocks.NewMockCaseStore(ctrl), nil)

	_, err := r.Reject("case-1", "h-1", "too_busy", "")
	assert.Equal(t, ErrInvalidRejectionReason, err)

	_, err = r.Reject("case-1", "h-1", "", "")
	assert.Equal(t, ErrInvalidRejectionReason, err)
}

func TestRejectBelowThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	r := NewResponder(caseStore, notifier)

	since := time.Now().Add(-10 * time.Second)
	rejected := &schema.EmergencyCase{
		ID:                    "case-1",
		AcuityLevel:           3,
		Status:                schema.CaseAwaitingResponse,
		RejectionCount:        1,
		AwaitingResponseSince: &since,
	}

	caseStore.EXPECT().
		RejectNotification("case-1", "h-1", schema.RejectNoICU, "full ICU", gomock.Any()).
		Return(rejected, nil)
	notifier.EXPECT().CaseRejected("case-1", "h-1", schema.RejectNoICU)

	c, err := r.Reject("case-1", "h-1", schema.RejectNoICU, "full ICU")
	assert.NoError(t, err)
	assert.Equal(t, schema.CaseAwaitingResponse, c.Status)
}

func TestRejectTriggersEscalation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	r := NewResponder(caseStore, notifier)

	since := time.Now().Add(-10 * time.Second)
	rejected := &schema.EmergencyCase{
		ID:                    "case-1",
		AcuityLevel:           1, // threshold: one rejection
		Status:                schema.CaseAwaitingResponse,
		RejectionCount:        1,
		AwaitingResponseSince: &since,
	}

	caseStore.EXPECT().
		RejectNotification("case-1", "h-1", schema.RejectOverCapacity, "", gomock.Any()).
		Return(rejected, nil)
	caseStore.EXPECT().MarkEscalated("case-1", EscalationByRejections).Return(nil)
	notifier.EXPECT().CaseRejected("case-1", "h-1", schema.RejectOverCapacity)
	notifier.EXPECT().EscalationTriggered("case-1", EscalationByRejections)

	c, err := r.Reject("case-1", "h-1", schema.RejectOverCapacity, "")
	assert.NoError(t, err)
	assert.Equal(t, schema.CaseEscalationRequired, c.Status)
	assert.Equal(t, EscalationByRejections, c.EscalationReason)
}

func TestRejectNotPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	r := NewResponder(caseStore, nil)

	caseStore.EXPECT().
		RejectNotification("case-1", "h-1", schema.RejectOther, "", gomock.Any()).
		Return(nil, store.ErrNotificationNotPending)

	_, err := r.Reject("case-1", "h-1", schema.RejectOther, "")
	assert.Equal(t, store.ErrNotificationNotPending, err)
}

func TestEscalateLosesRaceSilently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	r := NewResponder(caseStore, notifier)

	caseStore.EXPECT().
		MarkEscalated("case-1", EscalationByTimeout).
		Return(store.ErrCaseNotEscalatable)
	// no EscalationTriggered expectation: losing the race is silent

	committed, err := r.Escalate("case-1", EscalationDecision{ShouldEscalate: true, Reason: EscalationByTimeout})
	assert.NoError(t, err)
	assert.False(t, committed)
}

func TestConfirmOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	r := NewResponder(caseStore, notifier)

	caseStore.EXPECT().ConfirmOverride("case-1", "h-3", gomock.Any()).Return(nil)
	notifier.EXPECT().OverrideConfirmed("case-1", "h-3")

	assert.NoError(t, r.ConfirmOverride("case-1", "h-3"))
}

func TestConfirmOverrideAlreadyUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseStore := mocks.NewMockCaseStore(ctrl)
	r := NewResponder(caseStore, nil)

	caseStore.EXPECT().
		ConfirmOverride("case-1", "h-3", gomock.Any()).
		Return(store.ErrOverrideAlreadyUsed)

	assert.Equal(t, store.ErrOverrideAlreadyUsed, r.ConfirmOverride("case-1", "h-3"))
}

func TestOverridePreviewPenalizesRejectors(t *testing.T) {
	r := NewResponder(nil, nil)

	c := &schema.EmergencyCase{
		ID:            "case-1",
		AcuityLevel:   2,
		EmergencyType: schema.EmergencyCardiac,
		Status:        schema.CaseEscalationRequired,
		HospitalNotifications: []schema.NotificationRecord{
			{HospitalID: "h-1", Response: schema.ResponseRejected},
		},
	}
	hospitals := []schema.Hospital{
		{
			ID:             "h-1",
			CaseAcceptance: map[string]bool{"cardiac": true},
			BedAvailability: schema.BedAvailability{
				Available: 5,
				ICU:       schema.BedCount{Available: 2},
				Emergency: schema.BedCount{Available: 3},
			},
			EmergencyReadiness: schema.EmergencyReadiness{Status: schema.ReadinessAccepting},
		},
	}

	results := r.OverridePreview(c, hospitals)
	assert.Len(t, results, 1)
	assert.False(t, results[0].Disqualified)
	assert.Equal(t, 0.85, results[0].Breakdown.OverridePenalty)
}
