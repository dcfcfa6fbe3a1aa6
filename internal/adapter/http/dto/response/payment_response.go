package response

import (
	"time"

	"pagamentos/internal/domain/entities"
	"pagamentos/internal/usecase"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	CPF         string    `json:"cpf"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"payment_method"`
	Status      string    `json:"status"`
	ExternalID  string    `json:"external_id,omitempty"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
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

func FromCreateOutput(out usecase.CreatePaymentOutput) PaymentResponse {
	resp := FromPayment(out.Payment)
	resp.Status = string(out.Status)
	resp.CheckoutURL = out.CheckoutURL
	return resp
}

type UpdateStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromUpdateStatus(out usecase.UpdateStatusOutput) UpdateStatusResponse {
	return UpdateStatusResponse{ID: out.ID, Status: string(out.Status)}
}
