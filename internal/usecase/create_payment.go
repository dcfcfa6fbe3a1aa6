package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
)

var (
	ErrMissingPaymentMethod = errors.New("payment method is required")
	ErrPaymentNotFound      = errors.New("payment not found")
)

// CheckoutURLUnavailable is returned in place of an empty checkout URL when
// the awaited saga completed without producing one (PIX and similar methods).
const CheckoutURLUnavailable = "checkout url not available"

type CreatePaymentInput struct {
	CPF         string
	Description string
	Amount      float64
	Method      entities.PaymentMethod
}

type CreatePaymentOutput struct {
	Payment     entities.Payment
	CheckoutURL string
	Status      entities.PaymentStatus
}

// ICreatePaymentUseCase is the transactional create-and-dispatch coordinator:
// it persists the payment and starts the saga inside one store transaction,
// committing only once the runtime has durably accepted the workflow.

type ICreatePaymentUseCase interface {
	Execute(ctx context.Context, input CreatePaymentInput) (CreatePaymentOutput, error)
}

type CreatePaymentUseCase struct {
	repo   interfaces.IPaymentRepository
	engine interfaces.IWorkflowEngine

	// waitForResult blocks Execute until the saga reaches a terminal state.
	waitForResult bool
}

var _ ICreatePaymentUseCase = (*CreatePaymentUseCase)(nil)

func NewCreatePaymentUseCase(repo interfaces.IPaymentRepository, engine interfaces.IWorkflowEngine, waitForResult bool) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{repo: repo, engine: engine, waitForResult: waitForResult}
}

func (u *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (CreatePaymentOutput, error) {
	log.Printf("[payment][usecase] create start method=%s amount=%.2f", input.Method, input.Amount)

	// No resource is acquired before this check.
	if input.Method == "" {
		log.Printf("[payment][usecase] missing payment method")
		return CreatePaymentOutput{}, ErrMissingPaymentMethod
	}
	if u.repo == nil {
		return CreatePaymentOutput{}, errors.New("payment repository not configured")
	}
	if u.engine == nil {
		return CreatePaymentOutput{}, errors.New("workflow engine not configured")
	}

	tx, err := u.repo.BeginTx(ctx)
	if err != nil {
		log.Printf("[payment][usecase] begin transaction failed err=%v", err)
		return CreatePaymentOutput{}, fmt.Errorf("opening transaction: %w", err)
	}

	p, err := entities.NewPayment(input.CPF, input.Description, input.Amount, input.Method)
	if err != nil {
		u.rollback(tx, "")
		// Validation failures propagate unchanged.
		return CreatePaymentOutput{}, err
	}

	created, err := u.repo.Register(ctx, p, tx)
	if err != nil {
		log.Printf("[payment][usecase] register failed payment_id=%s err=%v", p.ID, err)
		u.rollback(tx, p.ID)
		return CreatePaymentOutput{}, fmt.Errorf("persisting payment: %w", err)
	}

	run, err := u.engine.StartPaymentWorkflow(ctx, created)
	if err != nil {
		log.Printf("[payment][usecase] saga start failed payment_id=%s err=%v", created.ID, err)
		u.rollback(tx, created.ID)
		return CreatePaymentOutput{}, fmt.Errorf("starting payment saga: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("[payment][usecase] commit failed payment_id=%s err=%v", created.ID, err)
		return CreatePaymentOutput{}, fmt.Errorf("committing transaction: %w", err)
	}
	log.Printf("[payment][usecase] create committed payment_id=%s saga dispatched", created.ID)

	out := CreatePaymentOutput{Payment: created, Status: created.Status}
	if !u.waitForResult {
		return out, nil
	}

	out.Status = entities.PaymentStatusProcessing
	result, err := run.Get(ctx)
	if err != nil {
		log.Printf("[payment][usecase] saga finished with failure payment_id=%s err=%v", created.ID, err)
		return CreatePaymentOutput{}, fmt.Errorf("payment saga failed: %w", err)
	}

	out.CheckoutURL = result.CheckoutURL
	if out.CheckoutURL == "" {
		out.CheckoutURL = CheckoutURLUnavailable
	}
	log.Printf("[payment][usecase] saga completed payment_id=%s checkout_url=%s", created.ID, out.CheckoutURL)
	return out, nil
}

// rollback never masks the error already in flight; its own failure is only
// logged.
func (u *CreatePaymentUseCase) rollback(tx interfaces.Tx, paymentID string) {
	if err := tx.Rollback(); err != nil {
		log.Printf("[payment][usecase] rollback failed payment_id=%s err=%v", paymentID, err)
	}
}
