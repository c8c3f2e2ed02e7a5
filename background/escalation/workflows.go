package escalation

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

// ScanInterval bounds how stale an overdue case can get before the next
// pass notices it.
const ScanInterval = 15 * time.Second

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// EscalationScanWorkflow sweeps awaiting cases every ScanInterval, or
// immediately when signalled, then continues as new.
func (w *EscalationWorker) EscalationScanWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, EscalationScanSignal)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, ScanInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodic escalation scan")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger escalation scan by signal")
	})

	selector.Select(ctx)

	var escalated int
	if err := workflow.ExecuteActivity(ctx, w.ScanAwaitingCasesActivity, workflow.Now(ctx)).Get(ctx, &escalated); err != nil {
		logger.Error("Fail to scan awaiting cases.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.EscalationScanWorkflow)
	}

	if escalated > 0 {
		logger.Info("Escalated overdue cases.", zap.Int("count", escalated))
	}

	return workflow.NewContinueAsNewError(ctx, w.EscalationScanWorkflow)
}
