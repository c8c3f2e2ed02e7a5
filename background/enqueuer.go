package background

import (
	"fmt"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// Message ids pushed to hospital terminals, resolved against the i18n
// bundle.
const (
	MessageCaseNotified  = "notifications.case_notified"
	MessageCaseCancelled = "notifications.case_cancelled"
	MessageCaseAssigned  = "notifications.case_assigned"
)

// TaskEnqueuer implements dispatch.Notifier by pushing side effects onto
// the machinery queue. Enqueue failures are logged and reported, never
// returned: the case transition has already happened.
type TaskEnqueuer struct {
	taskServer *machinery.Server
}

func NewTaskEnqueuer(taskServer *machinery.Server) *TaskEnqueuer {
	return &TaskEnqueuer{taskServer: taskServer}
}

func (e *TaskEnqueuer) enqueue(name string, args ...string) {
	signature := &tasks.Signature{Name: name}
	for _, a := range args {
		signature.Args = append(signature.Args, tasks.Arg{Type: "string", Value: a})
	}

	if _, err := e.taskServer.SendTask(signature); err != nil {
		log.WithField("prefix", "background").
			WithField("task", name).
			WithError(err).Error("enqueue background task")
		sentry.CaptureException(err)
	}
}

func (e *TaskEnqueuer) audit(caseID, hospitalID, event, detail string) {
	e.enqueue(TaskRecordAudit, caseID, hospitalID, event, detail)
}

func (e *TaskEnqueuer) NotificationSent(caseID string, record schema.NotificationRecord) {
	e.audit(caseID, record.HospitalID, schema.AuditNotificationSent,
		fmt.Sprintf("score=%d rank=%d", record.Score, record.Rank))
	e.enqueue(TaskNotifyHospital, record.HospitalID, caseID, MessageCaseNotified)
}

func (e *TaskEnqueuer) NotificationsCancelled(caseID string, hospitalIDs []string) {
	for _, id := range hospitalIDs {
		e.audit(caseID, id, schema.AuditParallelCancelled, "")
		e.enqueue(TaskNotifyHospital, id, caseID, MessageCaseCancelled)
	}
}

func (e *TaskEnqueuer) CaseAccepted(caseID, hospitalID string) {
	e.audit(caseID, hospitalID, schema.AuditCaseAccepted, "")
	e.enqueue(TaskNotifyHospital, hospitalID, caseID, MessageCaseAssigned)
}

func (e *TaskEnqueuer) CaseRejected(caseID, hospitalID string, reason schema.RejectionReason) {
	e.audit(caseID, hospitalID, schema.AuditCaseRejected, string(reason))
}

func (e *TaskEnqueuer) EscalationTriggered(caseID, reason string) {
	e.audit(caseID, "", schema.AuditEscalationTriggered, reason)
}

func (e *TaskEnqueuer) OverrideConfirmed(caseID, hospitalID string) {
	e.audit(caseID, hospitalID, schema.AuditOverrideConfirmed, "")
	e.enqueue(TaskNotifyHospital, hospitalID, caseID, MessageCaseAssigned)
}
