package usecase

import (
	"context"
	"errors"
	"testing"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
	mock_interfaces "pagamentos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const validCPF = "76187209087"

func validInput() CreatePaymentInput {
	return CreatePaymentInput{
		CPF:         validCPF,
		Description: "Pagamento Teste",
		Amount:      150.50,
		Method:      entities.PaymentMethodPix,
	}
}

func TestCreatePaymentUseCase_Validations(t *testing.T) {
	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		input := validInput()
		input.Method = ""

		// No transaction is opened before the method check.
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, ErrMissingPaymentMethod) {
			t.Fatalf("expected ErrMissingPaymentMethod, got %v", err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		uc := NewCreatePaymentUseCase(nil, engine, false)

		_, err := uc.Execute(context.Background(), validInput())
		if err == nil || err.Error() != "payment repository not configured" {
			t.Fatalf("expected repository not configured error, got %v", err)
		}
	})

	t.Run("entity validation rolls back and propagates unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Rollback().Return(nil)

		input := validInput()
		input.CPF = "12345678900"

		_, err := uc.Execute(context.Background(), input)
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "cpf" {
			t.Fatalf("expected cpf validation failure, got %q", verr.Field)
		}
	})
}

func TestCreatePaymentUseCase_TransactionOutcomes(t *testing.T) {
	t.Run("begin transaction fails, no rollback attempted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		dbErr := errors.New("db down")
		repo.EXPECT().BeginTx(gomock.Any()).Return(nil, dbErr)

		_, err := uc.Execute(context.Background(), validInput())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("insert fails, saga never started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		insertErr := errors.New("insert failed")
		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).Return(entities.Payment{}, insertErr)
		tx.EXPECT().Rollback().Return(nil)

		_, err := uc.Execute(context.Background(), validInput())
		if !errors.Is(err, insertErr) {
			t.Fatalf("expected insert error, got %v", err)
		}
	})

	t.Run("saga start fails, transaction rolled back, original error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		sagaErr := errors.New("temporal unavailable")
		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.Tx) (entities.Payment, error) {
				return p, nil
			})
		engine.EXPECT().StartPaymentWorkflow(gomock.Any(), gomock.Any()).Return(nil, sagaErr)
		tx.EXPECT().Rollback().Return(nil)

		_, err := uc.Execute(context.Background(), validInput())
		if !errors.Is(err, sagaErr) {
			t.Fatalf("expected saga error, got %v", err)
		}
	})

	t.Run("rollback failure never masks the original error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		sagaErr := errors.New("temporal unavailable")
		rollbackErr := errors.New("rollback failed")
		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.Tx) (entities.Payment, error) {
				return p, nil
			})
		engine.EXPECT().StartPaymentWorkflow(gomock.Any(), gomock.Any()).Return(nil, sagaErr)
		tx.EXPECT().Rollback().Return(rollbackErr)

		_, err := uc.Execute(context.Background(), validInput())
		if !errors.Is(err, sagaErr) {
			t.Fatalf("expected saga error, got %v", err)
		}
		if errors.Is(err, rollbackErr) {
			t.Fatalf("rollback error leaked into the result: %v", err)
		}
	})

	t.Run("commit failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		run := mock_interfaces.NewMockIWorkflowRun(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		commitErr := errors.New("commit failed")
		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.Tx) (entities.Payment, error) {
				return p, nil
			})
		engine.EXPECT().StartPaymentWorkflow(gomock.Any(), gomock.Any()).Return(run, nil)
		tx.EXPECT().Commit().Return(commitErr)

		_, err := uc.Execute(context.Background(), validInput())
		if !errors.Is(err, commitErr) {
			t.Fatalf("expected commit error, got %v", err)
		}
	})
}

func TestCreatePaymentUseCase_Success(t *testing.T) {
	t.Run("dispatch without awaiting the saga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		run := mock_interfaces.NewMockIWorkflowRun(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, false)

		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.Tx) (entities.Payment, error) {
				return p, nil
			})
		engine.EXPECT().StartPaymentWorkflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (interfaces.IWorkflowRun, error) {
				if p.Status != entities.PaymentStatusPending {
					t.Fatalf("expected PENDING payment dispatched, got %s", p.Status)
				}
				return run, nil
			})
		tx.EXPECT().Commit().Return(nil)

		out, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.PaymentStatusPending {
			t.Fatalf("expected PENDING, got %s", out.Status)
		}
		if out.CheckoutURL != "" {
			t.Fatalf("expected no checkout url, got %q", out.CheckoutURL)
		}
	})

	t.Run("awaited pix saga yields placeholder checkout url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		run := mock_interfaces.NewMockIWorkflowRun(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, true)

		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.Tx) (entities.Payment, error) {
				return p, nil
			})
		engine.EXPECT().StartPaymentWorkflow(gomock.Any(), gomock.Any()).Return(run, nil)
		tx.EXPECT().Commit().Return(nil)
		run.EXPECT().Get(gomock.Any()).Return(interfaces.SagaResult{}, nil)

		out, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.PaymentStatusProcessing {
			t.Fatalf("expected PROCESSING, got %s", out.Status)
		}
		if out.CheckoutURL != CheckoutURLUnavailable {
			t.Fatalf("expected placeholder checkout url, got %q", out.CheckoutURL)
		}
	})

	t.Run("awaited saga failure surfaces as opaque error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		engine := mock_interfaces.NewMockIWorkflowEngine(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		run := mock_interfaces.NewMockIWorkflowRun(ctrl)
		uc := NewCreatePaymentUseCase(repo, engine, true)

		sagaErr := errors.New("activity retries exhausted")
		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Register(gomock.Any(), gomock.Any(), tx).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.Tx) (entities.Payment, error) {
				return p, nil
			})
		engine.EXPECT().StartPaymentWorkflow(gomock.Any(), gomock.Any()).Return(run, nil)
		tx.EXPECT().Commit().Return(nil)
		run.EXPECT().Get(gomock.Any()).Return(interfaces.SagaResult{}, sagaErr)

		_, err := uc.Execute(context.Background(), validInput())
		if !errors.Is(err, sagaErr) {
			t.Fatalf("expected saga error, got %v", err)
		}
	})
}
