package escalation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	cadenceClient "github.com/lifeline-inc/dispatch-api/external/cadence"
)

type EscalationWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *EscalationWorker
}

func (ts *EscalationWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())

	ts.worker = NewEscalationWorker("test", nil, nil)
}

func (ts *EscalationWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadenceClient.NewMsgPackDataConverter(),
	})
}

// TestEscalationScanWorkflowTimerRun tests a regular timer-driven pass of
// `EscalationScanWorkflow`
func (ts *EscalationWorkflowTestSuite) TestEscalationScanWorkflowTimerRun() {
	ts.env.OnActivity(ts.worker.ScanAwaitingCasesActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, scanTime time.Time) (int, error) {
			ts.False(scanTime.IsZero())
			return 0, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.EscalationScanWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "ScanAwaitingCasesActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestEscalationScanWorkflowSignalRun validates a signal cancels the timer
// and runs the scan immediately
func (ts *EscalationWorkflowTestSuite) TestEscalationScanWorkflowSignalRun() {
	ts.env.OnActivity(ts.worker.ScanAwaitingCasesActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, scanTime time.Time) (int, error) {
			return 2, nil
		})

	ts.env.RegisterDelayedCallback(func() {
		ts.env.SignalWorkflow(EscalationScanSignal, nil)
	}, time.Second)

	ts.env.ExecuteWorkflow(ts.worker.EscalationScanWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "ScanAwaitingCasesActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestEscalationScanWorkflowActivityError validates the workflow continues
// as new even when the scan fails
func (ts *EscalationWorkflowTestSuite) TestEscalationScanWorkflowActivityError() {
	ts.env.OnActivity(ts.worker.ScanAwaitingCasesActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, scanTime time.Time) (int, error) {
			return 0, fmt.Errorf("mongo down")
		})

	ts.env.ExecuteWorkflow(ts.worker.EscalationScanWorkflow)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func TestEscalationScanWorkflow(t *testing.T) {
	suite.Run(t, new(EscalationWorkflowTestSuite))
}
