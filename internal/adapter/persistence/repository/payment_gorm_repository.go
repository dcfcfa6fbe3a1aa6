package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase/interfaces"
)

type paymentRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	CPF         string    `gorm:"column:cpf;index"`
	Description string    `gorm:"column:description"`
	Amount      float64   `gorm:"column:amount"`
	Method      string    `gorm:"column:payment_method"`
	Status      string    `gorm:"column:status"`
	ExternalID  string    `gorm:"column:external_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (paymentRow) TableName() string { return getenvDefault("PAYMENTS_TABLE_NAME", "payments") }

// AutoMigrate creates/updates the payments table. Called once during wiring.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&paymentRow{})
}

// PaymentGormRepository persists Payment entities in Postgres.

type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

type gormTx struct {
	tx *gorm.DB
}

func (t *gormTx) Commit() error   { return t.tx.Commit().Error }
func (t *gormTx) Rollback() error { return t.tx.Rollback().Error }

func (r *PaymentGormRepository) BeginTx(ctx context.Context) (interfaces.Tx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{tx: tx}, nil
}

// Register inserts the payment, inside tx when one is passed.
func (r *PaymentGormRepository) Register(ctx context.Context, p entities.Payment, tx interfaces.Tx) (entities.Payment, error) {
	db := r.db.WithContext(ctx)
	if g, ok := tx.(*gormTx); ok && g != nil {
		db = g.tx
	}
	if err := db.Create(toPaymentRow(p)).Error; err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) FindByID(ctx context.Context, id string) (entities.Payment, error) {
	var row paymentRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentGormRepository) FindByFilters(ctx context.Context, f interfaces.PaymentFilters) ([]entities.Payment, error) {
	query := r.db.WithContext(ctx).Model(&paymentRow{})
	if f.CPF != "" {
		query = query.Where("cpf = ?", f.CPF)
	}
	if f.Method != "" {
		query = query.Where("payment_method = ?", string(f.Method))
	}
	if f.Status != "" {
		query = query.Where("status = ?", string(f.Status))
	}

	var rows []paymentRow
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, fromPaymentRow(row))
	}
	return payments, nil
}

func (r *PaymentGormRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&paymentRow{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *PaymentGormRepository) UpdateExternalID(ctx context.Context, id, externalID string) error {
	return r.db.WithContext(ctx).
		Model(&paymentRow{}).
		Where("id = ?", id).
		Update("external_id", externalID).Error
}

func (r *PaymentGormRepository) Remove(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&paymentRow{}, "id = ?", id).Error
}

func toPaymentRow(p entities.Payment) *paymentRow {
	return &paymentRow{
		ID:          p.ID,
		CPF:         p.CPF,
		Description: p.Description,
		Amount:      p.Amount,
		Method:      string(p.Method),
		Status:      string(p.Status),
		ExternalID:  p.ExternalID,
		CreatedAt:   p.CreatedAt,
	}
}

func fromPaymentRow(row paymentRow) entities.Payment {
	return entities.Payment{
		ID:          row.ID,
		CPF:         row.CPF,
		Description: row.Description,
		Amount:      row.Amount,
		Method:      entities.PaymentMethod(row.Method),
		Status:      entities.PaymentStatus(row.Status),
		ExternalID:  row.ExternalID,
		CreatedAt:   row.CreatedAt,
	}
}
