package saga

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
)

const (
	// TaskQueue is the default queue the worker and the client agree on.
	TaskQueue = "payments-queue"

	// StatusUpdateSignal carries externally reconciled statuses into a
	// running saga.
	StatusUpdateSignal = "payment-status-update"

	// CurrentStatusQuery exposes the last signaled status.
	CurrentStatusQuery = "current-status"

	workflowIDPrefix = "payment-"
)

// WorkflowID derives the deterministic saga identity for a payment. It is the
// idempotency anchor: the runtime rejects a second start under the same id.
func WorkflowID(paymentID string) string {
	return workflowIDPrefix + paymentID
}

// PaymentInput is the workflow argument, a snapshot of the persisted payment.
type PaymentInput struct {
	ID          string                 `json:"id"`
	Method      entities.PaymentMethod `json:"payment_method"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
}

// NewPaymentInput snapshots a payment for dispatch.
func NewPaymentInput(p entities.Payment) PaymentInput {
	return PaymentInput{ID: p.ID, Method: p.Method, Description: p.Description, Amount: p.Amount}
}

// StatusUpdate is the StatusUpdateSignal payload.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ProcessPayment is the payment saga.
//
// CREDIT_CARD creates a checkout preference on the gateway and then
// synchronizes the settlement status; PIX needs no gateway round-trip and
// completes immediately with an empty checkout result. When a forward
// activity exhausts its retries the payment is marked failed and the original
// error is re-raised so the runtime records the saga as failed.
//
// All I/O lives in activities; the decision logic here only branches on the
// input and on activity results, keeping replay deterministic.
func ProcessPayment(ctx workflow.Context, input PaymentInput) (interfaces.SagaResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("payment saga started", "payment_id", input.ID, "method", input.Method)

	lastReported := ""
	if err := workflow.SetQueryHandler(ctx, CurrentStatusQuery, func() (string, error) {
		return lastReported, nil
	}); err != nil {
		return interfaces.SagaResult{}, err
	}

	signals := workflow.GetSignalChannel(ctx, StatusUpdateSignal)
	workflow.Go(ctx, func(ctx workflow.Context) {
		for {
			var update StatusUpdate
			signals.Receive(ctx, &update)
			lastReported = update.Status
			logger.Info("reconciled status received", "payment_id", input.ID, "status", update.Status)
		}
	})

	actx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    5,
		},
	})

	var a *Activities

	if input.Method == entities.PaymentMethodCreditCard {
		var pref interfaces.Preference
		if err := workflow.ExecuteActivity(actx, a.CreateExternalPreference, input.ID).Get(actx, &pref); err != nil {
			return interfaces.SagaResult{}, compensate(ctx, input.ID, err)
		}

		var status entities.PaymentStatus
		if err := workflow.ExecuteActivity(actx, a.SyncStatusWithGateway, input.ID, pref.ExternalID).Get(actx, &status); err != nil {
			return interfaces.SagaResult{}, compensate(ctx, input.ID, err)
		}

		logger.Info("payment saga completed", "payment_id", input.ID, "status", status)
		return interfaces.SagaResult{CheckoutURL: pref.CheckoutURL}, nil
	}

	// PIX and any future method without a checkout round-trip.
	logger.Info("payment saga completed without gateway checkout", "payment_id", input.ID)
	return interfaces.SagaResult{}, nil
}

// compensate marks the payment failed in a single attempt and hands the
// triggering error back. Compensation must not spiral into its own retry
// loop; a failure here is logged and the payment stays in its last state.
func compensate(ctx workflow.Context, paymentID string, cause error) error {
	cctx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})

	var a *Activities
	if err := workflow.ExecuteActivity(cctx, a.MarkPaymentAsFailed, paymentID).Get(cctx, nil); err != nil {
		workflow.GetLogger(ctx).Error("compensation failed", "payment_id", paymentID, "error", err)
	}
	return cause
}
