package orchestration

import (
	"context"
	"log"
	"os"
	"time"

	"go.temporal.io/sdk/client"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/saga"
	"pagamentos/internal/usecase/interfaces"
)

const signalTimeout = 5 * time.Second

// Dial connects to the Temporal frontend configured by TEMPORAL_HOST_PORT.
func Dial() (client.Client, error) {
	hostPort := os.Getenv("TEMPORAL_HOST_PORT")
	if hostPort == "" {
		hostPort = client.DefaultHostPort
	}
	return client.Dial(client.Options{HostPort: hostPort})
}

// TaskQueue returns the queue shared by the API and the worker.
func TaskQueue() string {
	if q := os.Getenv("PAYMENTS_TASK_QUEUE"); q != "" {
		return q
	}
	return saga.TaskQueue
}

// TemporalEngine implements interfaces.IWorkflowEngine on the Temporal
// client. The workflow id is derived from the payment id, so a duplicate
// start for the same payment fails at the server instead of spawning a
// second saga.

type TemporalEngine struct {
	client    client.Client
	taskQueue string
}

var _ interfaces.IWorkflowEngine = (*TemporalEngine)(nil)

func NewTemporalEngine(c client.Client, taskQueue string) *TemporalEngine {
	return &TemporalEngine{client: c, taskQueue: taskQueue}
}

func (e *TemporalEngine) StartPaymentWorkflow(ctx context.Context, p entities.Payment) (interfaces.IWorkflowRun, error) {
	opts := client.StartWorkflowOptions{
		ID:        saga.WorkflowID(p.ID),
		TaskQueue: e.taskQueue,

		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}

	run, err := e.client.ExecuteWorkflow(ctx, opts, saga.ProcessPayment, saga.NewPaymentInput(p))
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][orchestration] saga accepted workflow_id=%s run_id=%s", run.GetID(), run.GetRunID())
	return &workflowRun{run: run}, nil
}

// SignalStatus is bounded so a slow or unreachable frontend cannot stall the
// reconciliation that already succeeded locally.
func (e *TemporalEngine) SignalStatus(ctx context.Context, paymentID string, status entities.PaymentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, signalTimeout)
	defer cancel()

	return e.client.SignalWorkflow(ctx, saga.WorkflowID(paymentID), "", saga.StatusUpdateSignal, saga.StatusUpdate{Status: string(status)})
}

type workflowRun struct {
	run client.WorkflowRun
}

func (r *workflowRun) Get(ctx context.Context) (interfaces.SagaResult, error) {
	var out interfaces.SagaResult
	if err := r.run.Get(ctx, &out); err != nil {
		return interfaces.SagaResult{}, err
	}
	return out, nil
}
