package store

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// oneShotAuditEvents happen at most once per case. Their rows carry a
// dedupe key so a retried task can not append a duplicate.
var oneShotAuditEvents = map[string]bool{
	schema.AuditCaseAccepted:        true,
	schema.AuditEscalationTriggered: true,
	schema.AuditOverrideConfirmed:   true,
}

// RecordAuditEvent appends one row to the dispatch audit log. Callers
// treat failures as advisory: the log never gates a case transition.
func (s *DispatchStore) RecordAuditEvent(e *schema.AuditEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if oneShotAuditEvents[e.Event] && e.DedupeKey == nil {
		key := fmt.Sprintf("%s:%s", e.CaseID, e.Event)
		e.DedupeKey = &key
	}

	if err := s.ormDB.Create(e).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			// the event is already on the log
			return nil
		}
		return err
	}
	return nil
}

// ListAuditEvents returns a case's audit trail, oldest first.
func (s *DispatchStore) ListAuditEvents(caseID string) ([]schema.AuditEvent, error) {
	events := []schema.AuditEvent{}
	if err := s.ormDB.
		Where("case_id = ?", caseID).
		Order("created_at, id").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
