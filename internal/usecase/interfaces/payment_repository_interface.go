package interfaces

import (
	"context"

	"pagamentos/internal/domain/entities"
)

// Tx is an open store transaction. Register may run inside one; commit only
// after the saga dispatch was accepted.
type Tx interface {
	Commit() error
	Rollback() error
}

// PaymentFilters narrows FindByFilters. Zero-value fields are ignored.
type PaymentFilters struct {
	CPF    string
	Method entities.PaymentMethod
	Status entities.PaymentStatus
}

// IPaymentRepository abstracts relational persistence for Payment.
//
// FindByID returns a zero-value Payment and nil error when no record exists;
// callers check p.ID == "".

type IPaymentRepository interface {
	BeginTx(ctx context.Context) (Tx, error)
	Register(ctx context.Context, p entities.Payment, tx Tx) (entities.Payment, error)
	FindByID(ctx context.Context, id string) (entities.Payment, error)
	FindByFilters(ctx context.Context, f PaymentFilters) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error
	UpdateExternalID(ctx context.Context, id, externalID string) error
	Remove(ctx context.Context, id string) error
}
