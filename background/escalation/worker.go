package escalation

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	cadenceClient "github.com/lifeline-inc/dispatch-api/external/cadence"

	"github.com/lifeline-inc/dispatch-api/dispatch"
	"github.com/lifeline-inc/dispatch-api/store"
)

const TaskListName = "dispatch-escalation-tasks"

// EscalationScanSignal wakes the scan workflow ahead of its timer.
const EscalationScanSignal = "escalationScanSignal"

// EscalationWorker runs the periodic scan that escalates cases whose
// hospitals stayed silent or rejected too many times.
type EscalationWorker struct {
	domain    string
	mongo     store.MongoStore
	evaluator *dispatch.Evaluator
}

func NewEscalationWorker(domain string, mongo store.MongoStore, notifier dispatch.Notifier) *EscalationWorker {
	return &EscalationWorker{
		domain:    domain,
		mongo:     mongo,
		evaluator: dispatch.NewEvaluator(mongo, notifier),
	}
}

func (w *EscalationWorker) Register() {
	workflow.RegisterWithOptions(w.EscalationScanWorkflow, workflow.RegisterOptions{Name: "EscalationScanWorkflow"})

	activity.RegisterWithOptions(w.ScanAwaitingCasesActivity, activity.RegisterOptions{Name: "ScanAwaitingCasesActivity"})
}

func (w *EscalationWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(TaskListName, map[string]string{}),
		DataConverter: cadenceClient.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
