package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paemuri/brdoc"
)

// PaymentMethod selects how the payment is settled. CREDIT_CARD requires a
// checkout preference on the gateway; PIX settles without one.

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
)

// PaymentStatus is the internal lifecycle of a payment.
//
// Transitions:
//   - PENDING is the initial state set by NewPayment.
//   - PROCESSING is reported while the saga is in flight.
//   - PAID / FAIL are terminal, written by the saga activities or by
//     status reconciliation.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusFail       PaymentStatus = "FAIL"
)

// ValidationError identifies which construction invariant was violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Payment is the aggregate root persisted by the service.
//
// ExternalID is empty until the saga creates a checkout preference on the
// gateway. Status is the only field updated in place after creation.

type Payment struct {
	ID          string        `json:"id"`
	CPF         string        `json:"cpf"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"payment_method"`
	Status      PaymentStatus `json:"status"`
	ExternalID  string        `json:"external_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NewPayment builds a valid pending payment with a fresh id.
//
// Validation order is fixed: amount, then CPF, then description. The CPF is
// normalized to digits before the checksum runs and is stored normalized.
func NewPayment(cpf, description string, amount float64, method PaymentMethod) (Payment, error) {
	if amount <= 0 {
		return Payment{}, &ValidationError{Field: "amount", Message: "o valor do pagamento deve ser maior que zero"}
	}

	cpf = nonDigits.ReplaceAllString(cpf, "")
	if !brdoc.IsCPF(cpf) {
		return Payment{}, &ValidationError{Field: "cpf", Message: "CPF informado é inválido"}
	}

	if strings.TrimSpace(description) == "" {
		return Payment{}, &ValidationError{Field: "description", Message: "a descrição é obrigatória"}
	}

	return Payment{
		ID:          uuid.NewString(),
		CPF:         cpf,
		Description: description,
		Amount:      amount,
		Method:      method,
		Status:      PaymentStatusPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
