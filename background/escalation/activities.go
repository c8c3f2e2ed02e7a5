package escalation

import (
	"context"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"
)

// ScanAwaitingCasesActivity escalates every awaiting case whose rejection
// count or response timeout crossed its acuity threshold. Returns how
// many cases escalated.
func (w *EscalationWorker) ScanAwaitingCasesActivity(ctx context.Context, scanTime time.Time) (int, error) {
	logger := activity.GetLogger(ctx)

	escalated, err := w.evaluator.ScanAwaitingCases(scanTime)
	if err != nil {
		return 0, err
	}

	logger.Info("Escalation scan finished.", zap.Int("escalated", escalated))
	return escalated, nil
}
