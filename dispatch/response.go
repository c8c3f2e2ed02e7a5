package dispatch

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/score"
	"github.com/lifeline-inc/dispatch-api/store"
)

var ErrInvalidRejectionReason = fmt.Errorf("a valid rejection reason code is required")

// Responder handles hospital accept/reject responses and dispatcher
// overrides.
type Responder struct {
	store    CaseStore
	notifier Notifier
}

func NewResponder(store CaseStore, notifier Notifier) *Responder {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Responder{store: store, notifier: notifier}
}

// Accept commits a hospital's acceptance. Exactly one hospital can win a
// case; a losing concurrent accept surfaces ErrCaseAlreadyAccepted with
// no state change. Every other pending notification is cancelled.
func (r *Responder) Accept(caseID, hospitalID string) (*schema.EmergencyCase, error) {
	c, cancelled, err := r.store.AcceptCase(caseID, hospitalID, time.Now())
	if err != nil {
		return nil, err
	}

	r.notifier.CaseAccepted(caseID, hospitalID)
	if len(cancelled) > 0 {
		r.notifier.NotificationsCancelled(caseID, cancelled)
	}

	log.WithField("prefix", "dispatch").
		WithField("case", caseID).
		WithField("hospital", hospitalID).
		WithField("cancelled", len(cancelled)).
		Info("case accepted")

	return c, nil
}

// Reject terminates a hospital's pending notification with a mandatory
// reason code, then evaluates escalation. Re-rejecting an already-settled
// notification is refused before any state changes, so the rejection
// counter can never double-count.
func (r *Responder) Reject(caseID, hospitalID string, reason schema.RejectionReason, note string) (*schema.EmergencyCase, error) {
	if !schema.ValidRejectionReason(reason) {
		return nil, ErrInvalidRejectionReason
	}

	c, err := r.store.RejectNotification(caseID, hospitalID, reason, note, time.Now())
	if err != nil {
		return nil, err
	}

	r.notifier.CaseRejected(caseID, hospitalID, reason)
	log.WithField("prefix", "dispatch").
		WithField("case", caseID).
		WithField("hospital", hospitalID).
		WithField("reason", reason).
		Info("case rejected by hospital")

	if decision := EvaluateEscalation(c, time.Now()); decision.ShouldEscalate {
		committed, err := r.Escalate(c.ID, decision)
		if err != nil {
			return nil, err
		}
		if committed {
			c.Status = schema.CaseEscalationRequired
			c.EscalationReason = decision.Reason
		}
	}

	return c, nil
}

// Escalate commits an escalation decision and reports whether this call
// won. Losing the race to another trigger (or to an accept) is a silent
// no-op: escalation fires at most once per case.
func (r *Responder) Escalate(caseID string, decision EscalationDecision) (bool, error) {
	err := r.store.MarkEscalated(caseID, decision.Reason)
	if err == store.ErrCaseNotEscalatable {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	r.notifier.EscalationTriggered(caseID, decision.Reason)
	log.WithField("prefix", "dispatch").
		WithField("case", caseID).
		WithField("reason", decision.Reason).
		Warn("case escalated")
	return true, nil
}

// OverridePreview re-ranks all hospitals for a dispatcher override,
// penalizing the ones that already rejected this case.
func (r *Responder) OverridePreview(c *schema.EmergencyCase, hospitals []schema.Hospital) []schema.ScoreResult {
	return score.RerankForOverride(hospitals, c)
}

// ConfirmOverride assigns a hospital by dispatcher decision. The store
// guard makes this a one-time action per case.
func (r *Responder) ConfirmOverride(caseID, hospitalID string) error {
	if err := r.store.ConfirmOverride(caseID, hospitalID, time.Now()); err != nil {
		return err
	}

	r.notifier.OverrideConfirmed(caseID, hospitalID)
	log.WithField("prefix", "dispatch").
		WithField("case", caseID).
		WithField("hospital", hospitalID).
		Info("dispatcher override confirmed")
	return nil
}
