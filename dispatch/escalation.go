package dispatch

import (
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// Escalation trigger names reported to dispatchers.
const (
	EscalationByRejections = "rejections"
	EscalationByTimeout    = "timeout"
	EscalationByBoth       = "both"
)

// EscalationThreshold bounds how long and how many rejections a case
// tolerates before requiring dispatcher intervention.
type EscalationThreshold struct {
	MaxRejections int
	Timeout       time.Duration
}

// escalationThresholds is indexed by acuity level; thresholds loosen
// monotonically from acuity 1 to 5.
var escalationThresholds = map[int]EscalationThreshold{
	1: {MaxRejections: 1, Timeout: 60 * time.Second},
	2: {MaxRejections: 2, Timeout: 90 * time.Second},
	3: {MaxRejections: 3, Timeout: 120 * time.Second},
	4: {MaxRejections: 3, Timeout: 150 * time.Second},
	5: {MaxRejections: 3, Timeout: 180 * time.Second},
}

// ThresholdForAcuity returns the escalation threshold, clamping
// out-of-range acuity levels to the nearest band.
func ThresholdForAcuity(acuity int) EscalationThreshold {
	if acuity < 1 {
		acuity = 1
	}
	if acuity > 5 {
		acuity = 5
	}
	return escalationThresholds[acuity]
}

// EscalationDecision reports whether a case must escalate and which
// trigger fired.
type EscalationDecision struct {
	ShouldEscalate bool
	Reason         string
}

// EvaluateEscalation checks both escalation triggers for a case. Cases in
// any settled state never escalate, which makes re-evaluation of an
// already-escalated or resolved case a no-op.
func EvaluateEscalation(c *schema.EmergencyCase, now time.Time) EscalationDecision {
	if c.Status != schema.CaseAwaitingResponse || schema.EscalationSettled(c.Status) {
		return EscalationDecision{}
	}

	threshold := ThresholdForAcuity(c.AcuityLevel)

	byRejections := c.RejectionCount >= threshold.MaxRejections
	byTimeout := c.AwaitingResponseSince != nil &&
		now.Sub(*c.AwaitingResponseSince) >= threshold.Timeout

	switch {
	case byRejections && byTimeout:
		return EscalationDecision{ShouldEscalate: true, Reason: EscalationByBoth}
	case byRejections:
		return EscalationDecision{ShouldEscalate: true, Reason: EscalationByRejections}
	case byTimeout:
		return EscalationDecision{ShouldEscalate: true, Reason: EscalationByTimeout}
	default:
		return EscalationDecision{}
	}
}

// Evaluator drives the periodic escalation scan over all cases waiting on
// hospital responses. It shares the escalation primitive with the reject
// path, so the two can race safely.
type Evaluator struct {
	responder *Responder
	store     CaseStore
}

func NewEvaluator(store CaseStore, notifier Notifier) *Evaluator {
	return &Evaluator{
		responder: NewResponder(store, notifier),
		store:     store,
	}
}

// ScanAwaitingCases evaluates every awaiting_response case and escalates
// the overdue ones. Returns how many cases escalated in this pass.
func (e *Evaluator) ScanAwaitingCases(now time.Time) (int, error) {
	cases, err := e.store.ListCasesByStatus(schema.CaseAwaitingResponse)
	if err != nil {
		return 0, err
	}

	escalated := 0
	for i := range cases {
		c := &cases[i]
		decision := EvaluateEscalation(c, now)
		if !decision.ShouldEscalate {
			continue
		}
		committed, err := e.responder.Escalate(c.ID, decision)
		if err != nil {
			log.WithField("prefix", "dispatch").
				WithField("case", c.ID).
				WithError(err).Error("escalation failed")
			sentry.CaptureException(err)
			continue
		}
		if committed {
			escalated++
		}
	}

	return escalated, nil
}
