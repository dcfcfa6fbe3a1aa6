package saga

import (
	"context"
	"errors"
	"testing"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/mock/gomock"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
	mock_interfaces "pagamentos/internal/usecase/interfaces/mocks"
)

func pendingPayment(id string) entities.Payment {
	return entities.Payment{
		ID:          id,
		CPF:         "76187209087",
		Description: "Pagamento Teste",
		Amount:      150.50,
		Method:      entities.PaymentMethodCreditCard,
		Status:      entities.PaymentStatusPending,
	}
}

func TestActivities_CreateExternalPreference(t *testing.T) {
	t.Run("creates and binds the external id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(pendingPayment("pay-1"), nil)
		gateway.EXPECT().CreatePreference(gomock.Any(), interfaces.PreferenceInput{
			ID:          "pay-1",
			Description: "Pagamento Teste",
			Amount:      150.50,
		}).Return(interfaces.Preference{ExternalID: "mp-42", CheckoutURL: "https://mp.test/checkout/42"}, nil)
		repo.EXPECT().UpdateExternalID(gomock.Any(), "pay-1", "mp-42").Return(nil)

		pref, err := a.CreateExternalPreference(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pref.ExternalID != "mp-42" || pref.CheckoutURL != "https://mp.test/checkout/42" {
			t.Fatalf("unexpected preference: %+v", pref)
		}
	})

	t.Run("missing payment is a plain retryable error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := a.CreateExternalPreference(context.Background(), "pay-1")
		if err == nil {
			t.Fatal("expected error for missing payment")
		}
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.NonRetryable() {
			t.Fatalf("missing payment must stay retryable here, got %v", err)
		}
	})

	t.Run("gateway failure propagates without binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		gatewayErr := errors.New("mercado pago unavailable")
		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(pendingPayment("pay-1"), nil)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(interfaces.Preference{}, gatewayErr)

		_, err := a.CreateExternalPreference(context.Background(), "pay-1")
		if !errors.Is(err, gatewayErr) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestActivities_SyncStatusWithGateway(t *testing.T) {
	t.Run("maps and persists the settlement status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(pendingPayment("pay-1"), nil)
		gateway.EXPECT().GetStatus(gomock.Any(), "mp-42").Return("approved", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPaid).Return(nil)

		status, err := a.SyncStatusWithGateway(context.Background(), "pay-1", "mp-42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID, got %s", status)
		}
	})

	t.Run("missing payment is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := a.SyncStatusWithGateway(context.Background(), "pay-1", "mp-42")
		var appErr *temporal.ApplicationError
		if !errors.As(err, &appErr) {
			t.Fatalf("expected ApplicationError, got %v", err)
		}
		if !appErr.NonRetryable() || appErr.Type() != "PaymentNotFound" {
			t.Fatalf("expected non-retryable PaymentNotFound, got type=%s nonRetryable=%v", appErr.Type(), appErr.NonRetryable())
		}
	})

	t.Run("falls back to the stored external id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		p := pendingPayment("pay-1")
		p.ExternalID = "mp-stored"
		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().GetStatus(gomock.Any(), "mp-stored").Return("rejected", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusFail).Return(nil)

		status, err := a.SyncStatusWithGateway(context.Background(), "pay-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.PaymentStatusFail {
			t.Fatalf("expected FAIL, got %s", status)
		}
	})

	t.Run("no external id anywhere is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		a := NewActivities(repo, gateway)

		repo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(pendingPayment("pay-1"), nil)

		_, err := a.SyncStatusWithGateway(context.Background(), "pay-1", "")
		var appErr *temporal.ApplicationError
		if !errors.As(err, &appErr) || appErr.Type() != "MissingExternalID" {
			t.Fatalf("expected MissingExternalID, got %v", err)
		}
	})
}

func TestActivities_MarkPaymentAsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	a := NewActivities(repo, gateway)

	repo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusFail).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		if err := a.MarkPaymentAsFailed(context.Background(), "pay-1"); err != nil {
			t.Fatalf("unexpected error on run %d: %v", i, err)
		}
	}
}
