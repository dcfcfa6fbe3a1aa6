package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
)

type UpdateStatusOutput struct {
	ID     string
	Status entities.PaymentStatus
}

// IUpdateStatusUseCase reconciles the local status with an externally
// reported settlement outcome. Two entry points share it:
//
//   - manual: an operator supplies the new status and id is the local
//     payment id;
//   - webhook/polling: manualStatus is empty and id is the gateway's own
//     payment id, resolved back to a local record via external_reference.

type IUpdateStatusUseCase interface {
	Execute(ctx context.Context, id string, manualStatus entities.PaymentStatus) (UpdateStatusOutput, error)
}

type UpdateStatusUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
	engine  interfaces.IWorkflowEngine
}

var _ IUpdateStatusUseCase = (*UpdateStatusUseCase)(nil)

func NewUpdateStatusUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, engine interfaces.IWorkflowEngine) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{repo: repo, gateway: gateway, engine: engine}
}

func (u *UpdateStatusUseCase) Execute(ctx context.Context, id string, manualStatus entities.PaymentStatus) (UpdateStatusOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UpdateStatusOutput{}, ErrPaymentNotFound
	}

	var newStatus entities.PaymentStatus
	internalID := id

	if manualStatus != "" {
		log.Printf("[payment][usecase] manual status update payment_id=%s status=%s", id, manualStatus)
		p, err := u.repo.FindByID(ctx, id)
		if err != nil {
			return UpdateStatusOutput{}, err
		}
		if p.ID == "" {
			log.Printf("[payment][usecase] manual status update not-found payment_id=%s", id)
			return UpdateStatusOutput{}, ErrPaymentNotFound
		}
		newStatus = manualStatus
	} else {
		log.Printf("[payment][usecase] webhook status update gateway_id=%s", id)
		details, err := u.gateway.GetPaymentDetails(ctx, id)
		if err != nil {
			log.Printf("[payment][usecase] gateway details failed gateway_id=%s err=%v", id, err)
			return UpdateStatusOutput{}, fmt.Errorf("fetching payment details: %w", err)
		}

		newStatus = MapGatewayStatus(details.Status)

		// The gateway echoes our payment id back as external_reference.
		p, err := u.repo.FindByID(ctx, details.ExternalReference)
		if err != nil {
			return UpdateStatusOutput{}, err
		}
		if p.ID == "" {
			log.Printf("[payment][usecase] no local payment for external_reference=%s", details.ExternalReference)
			return UpdateStatusOutput{}, ErrPaymentNotFound
		}
		internalID = p.ID
	}

	if err := u.repo.UpdateStatus(ctx, internalID, newStatus); err != nil {
		log.Printf("[payment][usecase] status update failed payment_id=%s err=%v", internalID, err)
		return UpdateStatusOutput{}, err
	}

	// Best effort: the saga may have already finished, or never started for
	// this payment. A failed signal never undoes the local update.
	if u.engine != nil {
		if err := u.engine.SignalStatus(ctx, internalID, newStatus); err != nil {
			log.Printf("[payment][usecase] saga signal failed payment_id=%s status=%s err=%v", internalID, newStatus, err)
		}
	}

	log.Printf("[payment][usecase] status updated payment_id=%s status=%s", internalID, newStatus)
	return UpdateStatusOutput{ID: internalID, Status: newStatus}, nil
}
