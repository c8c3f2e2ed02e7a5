package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifeline-inc/dispatch-api/external/onesignal"
	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/store"
)

// Task names drained by the background worker.
const (
	TaskRecordAudit    = "audit.record"
	TaskNotifyHospital = "notify.hospital"
)

// BackgroundManager runs the machinery worker that drains fire-and-forget
// dispatch side effects: audit log appends and hospital pushes.
type BackgroundManager struct {
	Background

	store *store.DispatchStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	dispatchStore := store.NewDispatchStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	))

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		Background: Background{Onesignal: o},
		store:      dispatchStore,
		taskServer: taskServer,
	}
}

// RegisterTasks binds the task handlers onto the machinery server.
func (m *BackgroundManager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		TaskRecordAudit:    m.RecordAuditEventTask,
		TaskNotifyHospital: m.NotifyHospitalTask,
	})
}

// RecordAuditEventTask appends one audit event row.
func (m *BackgroundManager) RecordAuditEventTask(caseID, hospitalID, event, detail string) error {
	return m.store.RecordAuditEvent(&schema.AuditEvent{
		CaseID:     caseID,
		HospitalID: hospitalID,
		Event:      event,
		Detail:     detail,
	})
}

// NotifyHospitalTask pushes a localized message to a hospital terminal.
func (m *BackgroundManager) NotifyHospitalTask(hospitalID, caseID, messageID string) error {
	return m.NotifyHospitalByMessage(hospitalID, messageID, map[string]interface{}{
		"case_id": caseID,
	})
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("dispatch-worker", 5)
	return m.worker.Launch()
}
