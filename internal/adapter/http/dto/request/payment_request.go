package request

// CreatePaymentRequest is the payload for POST /v1/payments.

type CreatePaymentRequest struct {
	CPF         string  `json:"cpf" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"payment_method" binding:"required"`
}

// UpdateStatusRequest is the payload for PUT /v1/payments/:id.

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WebhookRequest is the Mercado Pago notification envelope. Fields vary by
// integration; only type and data.id matter here.

type WebhookRequest struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	Data  struct {
		ID string `json:"id"`
	} `json:"data"`
}
