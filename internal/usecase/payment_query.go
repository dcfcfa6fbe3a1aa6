package usecase

import (
	"context"
	"log"
	"strings"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
)

// IPaymentQueryUseCase groups the administrative read/remove operations.

type IPaymentQueryUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, filters interfaces.PaymentFilters) ([]entities.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PaymentQueryUseCase struct {
	repo interfaces.IPaymentRepository
}

var _ IPaymentQueryUseCase = (*PaymentQueryUseCase)(nil)

func NewPaymentQueryUseCase(repo interfaces.IPaymentRepository) *PaymentQueryUseCase {
	return &PaymentQueryUseCase{repo: repo}
}

func (u *PaymentQueryUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentQueryUseCase) List(ctx context.Context, filters interfaces.PaymentFilters) ([]entities.Payment, error) {
	return u.repo.FindByFilters(ctx, filters)
}

// Delete is an administrative removal, unrelated to the saga; a payment is
// never deleted as part of compensation.
func (u *PaymentQueryUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	log.Printf("[payment][usecase] removing payment payment_id=%s status=%s", p.ID, p.Status)
	return u.repo.Remove(ctx, p.ID)
}
