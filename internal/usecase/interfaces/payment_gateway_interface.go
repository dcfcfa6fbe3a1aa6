package interfaces

import "context"

// PreferenceInput is the subset of a payment the gateway needs to open a
// checkout. ID doubles as the external reference echoed back on settlement.
type PreferenceInput struct {
	ID          string
	Description string
	Amount      float64
}

// Preference is a created checkout on the gateway side.
type Preference struct {
	ExternalID  string `json:"external_id"`
	CheckoutURL string `json:"checkout_url"`
}

// PaymentDetails is the settlement view reported by the gateway for one of
// its own payment ids.
type PaymentDetails struct {
	Status            string
	ExternalReference string
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).

type IPaymentGateway interface {
	CreatePreference(ctx context.Context, in PreferenceInput) (Preference, error)
	GetStatus(ctx context.Context, externalID string) (string, error)
	GetPaymentDetails(ctx context.Context, gatewayID string) (PaymentDetails, error)
}
