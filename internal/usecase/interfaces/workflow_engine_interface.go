package interfaces

import (
	"context"

	"pagamentos/internal/domain/entities"
)

// SagaResult is the terminal value of a payment saga. CheckoutURL is empty
// when the method required no gateway checkout.
type SagaResult struct {
	CheckoutURL string `json:"checkout_url"`
}

// IWorkflowRun is a handle on a started saga instance.
type IWorkflowRun interface {
	Get(ctx context.Context) (SagaResult, error)
}

// IWorkflowEngine abstracts the durable-execution runtime hosting the payment
// saga. StartPaymentWorkflow derives a deterministic workflow id from the
// payment id; a second start for the same payment must fail rather than spawn
// a concurrent saga. SignalStatus is best effort — delivery to an absent
// instance returns an error the caller is expected to tolerate.

type IWorkflowEngine interface {
	StartPaymentWorkflow(ctx context.Context, p entities.Payment) (IWorkflowRun, error)
	SignalStatus(ctx context.Context, paymentID string, status entities.PaymentStatus) error
}
