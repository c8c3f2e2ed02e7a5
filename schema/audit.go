package schema

import (
	"time"
)

// Audit event kinds emitted by the dispatch engine. The log is append-only
// and written fire-and-forget; a lost event never blocks a case
// transition.
const (
	AuditNotificationSent    = "notification_sent"
	AuditCaseAccepted        = "case_accepted"
	AuditCaseRejected        = "case_rejected"
	AuditParallelCancelled   = "parallel_cancelled"
	AuditEscalationTriggered = "escalation_triggered"
	AuditOverrideConfirmed   = "override_confirmed"
)

// AuditEvent is one row of the append-only dispatch audit log.
type AuditEvent struct {
	ID         uint64    `gorm:"primary_key" json:"id"`
	CaseID     string    `gorm:"index" json:"case_id"`
	HospitalID string    `json:"hospital_id"`
	Event      string    `json:"event"`
	Detail     string    `json:"detail"`
	DedupeKey  *string   `gorm:"unique_index" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the gorm table name.
func (AuditEvent) TableName() string {
	return "audit_events"
}
