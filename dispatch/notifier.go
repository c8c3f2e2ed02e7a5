package dispatch

import (
	"github.com/lifeline-inc/dispatch-api/schema"
)

// Notifier receives the fire-and-forget side effects of workflow
// transitions: hospital pushes and audit records. Implementations must
// never block the transition they describe; the background package
// provides one backed by the task queue.
type Notifier interface {
	NotificationSent(caseID string, record schema.NotificationRecord)
	NotificationsCancelled(caseID string, hospitalIDs []string)
	CaseAccepted(caseID, hospitalID string)
	CaseRejected(caseID, hospitalID string, reason schema.RejectionReason)
	EscalationTriggered(caseID, reason string)
	OverrideConfirmed(caseID, hospitalID string)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) NotificationSent(string, schema.NotificationRecord)  {}
func (NopNotifier) NotificationsCancelled(string, []string)             {}
func (NopNotifier) CaseAccepted(string, string)                         {}
func (NopNotifier) CaseRejected(string, string, schema.RejectionReason) {}
func (NopNotifier) EscalationTriggered(string, string)                  {}
func (NopNotifier) OverrideConfirmed(string, string)                    {}
