package cadence

import (
	"context"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "dispatch-worker"
	CadenceService = "cadence-frontend"
)

// CadenceClient wraps the cadence frontend connection the API uses to
// signal dispatch workflows.
type CadenceClient struct {
	client client.Client
}

// BuildCadenceServiceClient dials the cadence frontend over tchannel.
func BuildCadenceServiceClient(hostPort string) workflowserviceclient.Interface {
	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		panic("failed to set up tchannel")
	}

	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		panic("failed to start yarpc dispatcher")
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService))
}

func NewClient() *CadenceClient {
	service := BuildCadenceServiceClient(viper.GetString("cadence.conn"))

	return &CadenceClient{
		client: client.NewClient(service, viper.GetString("cadence.domain"), &client.Options{
			MetricsScope:  tally.NoopScope,
			DataConverter: NewMsgPackDataConverter(),
		}),
	}
}

// SignalWithStartWorkflow signals a running workflow, starting a new
// execution first when none is open.
func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflowFunc interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflowFunc, workflowArgs...)
}
