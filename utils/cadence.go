package utils

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/lifeline-inc/dispatch-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/lifeline-inc/dispatch-api/background/escalation`
const (
	EscalationTaskListName = "dispatch-escalation-tasks"
	EscalationScanSignal   = "escalationScanSignal"
	EscalationWorkflowID   = "escalation-scan"
)

// TriggerEscalationScan is a helper function to send a signal to
// trigger the escalation scan workflow, starting it if needed.
func TriggerEscalationScan(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		EscalationWorkflowID, EscalationScanSignal, nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           EscalationWorkflowID,
			TaskList:                     EscalationTaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "EscalationScanWorkflow")
	return err
}
