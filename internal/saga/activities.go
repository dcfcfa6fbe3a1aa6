package saga

import (
	"context"
	"fmt"
	"log"

	"go.temporal.io/sdk/temporal"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase"
	"pagamentos/internal/usecase/interfaces"
)

// Activities are the saga's units of work. Each one is retried independently
// by the runtime under the policy set in the workflow.

type Activities struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

func NewActivities(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *Activities {
	return &Activities{repo: repo, gateway: gateway}
}

// CreateExternalPreference opens a checkout preference on the gateway and
// binds the returned external id to the payment record. A missing payment is
// retryable here: the coordinator's transaction may not be visible yet.
func (a *Activities) CreateExternalPreference(ctx context.Context, paymentID string) (interfaces.Preference, error) {
	p, err := a.repo.FindByID(ctx, paymentID)
	if err != nil {
		return interfaces.Preference{}, err
	}
	if p.ID == "" {
		return interfaces.Preference{}, fmt.Errorf("payment %s not found", paymentID)
	}

	pref, err := a.gateway.CreatePreference(ctx, interfaces.PreferenceInput{
		ID:          p.ID,
		Description: p.Description,
		Amount:      p.Amount,
	})
	if err != nil {
		log.Printf("[payment][activity] preference creation failed payment_id=%s err=%v", paymentID, err)
		return interfaces.Preference{}, err
	}

	if err := a.repo.UpdateExternalID(ctx, p.ID, pref.ExternalID); err != nil {
		return interfaces.Preference{}, err
	}

	log.Printf("[payment][activity] preference created payment_id=%s external_id=%s", paymentID, pref.ExternalID)
	return pref, nil
}

// SyncStatusWithGateway fetches the settlement status for the bound external
// reference, maps it and persists it. A missing payment record at this point
// is a data integrity fault, not a transient one, and is not retried.
func (a *Activities) SyncStatusWithGateway(ctx context.Context, paymentID, externalID string) (entities.PaymentStatus, error) {
	p, err := a.repo.FindByID(ctx, paymentID)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("payment %s not found", paymentID), "PaymentNotFound", nil)
	}

	if externalID == "" {
		externalID = p.ExternalID
	}
	if externalID == "" {
		return "", temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("payment %s has no external id", paymentID), "MissingExternalID", nil)
	}

	gatewayStatus, err := a.gateway.GetStatus(ctx, externalID)
	if err != nil {
		log.Printf("[payment][activity] status sync failed payment_id=%s err=%v", paymentID, err)
		return "", err
	}

	status := usecase.MapGatewayStatus(gatewayStatus)
	if err := a.repo.UpdateStatus(ctx, paymentID, status); err != nil {
		return "", err
	}

	log.Printf("[payment][activity] status synced payment_id=%s gateway_status=%s status=%s", paymentID, gatewayStatus, status)
	return status, nil
}

// MarkPaymentAsFailed is the saga's only compensation. It is idempotent:
// re-running it just rewrites FAIL.
func (a *Activities) MarkPaymentAsFailed(ctx context.Context, paymentID string) error {
	log.Printf("[payment][activity] marking payment as failed payment_id=%s", paymentID)
	return a.repo.UpdateStatus(ctx, paymentID, entities.PaymentStatusFail)
}
