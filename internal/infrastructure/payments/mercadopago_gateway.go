package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"pagamentos/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements interfaces.IPaymentGateway over the official
// SDK. Checkout preferences carry the local payment id as external_reference
// so settlement events can be reconciled back to our records.

type MercadoPagoGateway struct {
	preferenceClient preference.Client
	paymentClient    payment.Client
	notificationURL  string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferenceClient: preference.NewClient(cfg),
		paymentClient:    payment.NewClient(cfg),
		notificationURL:  os.Getenv("WEBHOOK_URL"),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, in interfaces.PreferenceInput) (interfaces.Preference, error) {
	log.Printf("[payment][gateway] preference create start payment_id=%s amount=%.2f", in.ID, in.Amount)

	title := in.Description
	if title == "" {
		title = "Pedido"
	}

	resp, err := g.preferenceClient.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:        in.ID,
			Title:     title,
			UnitPrice: in.Amount,
			Quantity:  1,
		}},
		ExternalReference: in.ID,
		NotificationURL:   g.notificationURL,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed payment_id=%s err=%v", in.ID, err)
		return interfaces.Preference{}, wrapGatewayError(err)
	}
	if resp.ID == "" || resp.InitPoint == "" {
		return interfaces.Preference{}, &GatewayError{Message: "Resposta incompleta do Mercado Pago"}
	}

	log.Printf("[payment][gateway] preference created payment_id=%s preference_id=%s", in.ID, resp.ID)
	return interfaces.Preference{ExternalID: resp.ID, CheckoutURL: resp.InitPoint}, nil
}

// GetStatus resolves the current settlement status for an external
// reference. Numeric ids are gateway payment ids and fetched directly.
// Anything else is a preference id; payments spawned from a preference
// inherit its external_reference, so the search runs on that key. No payment
// yet is an error so the caller's retry policy keeps polling.
func (g *MercadoPagoGateway) GetStatus(ctx context.Context, externalID string) (string, error) {
	if _, err := strconv.Atoi(externalID); err == nil {
		details, err := g.GetPaymentDetails(ctx, externalID)
		if err != nil {
			return "", err
		}
		return details.Status, nil
	}

	reference := externalID
	if pref, err := g.preferenceClient.Get(ctx, externalID); err == nil && pref.ExternalReference != "" {
		reference = pref.ExternalReference
	}

	resp, err := g.paymentClient.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": reference},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk search failed external_reference=%s err=%v", externalID, err)
		return "", wrapGatewayError(err)
	}
	if len(resp.Results) == 0 {
		return "", &GatewayError{Message: "Nenhum pagamento encontrado para a referência informada"}
	}

	status := resp.Results[0].Status
	log.Printf("[payment][gateway] status fetched external_reference=%s status=%s", externalID, status)
	return status, nil
}

func (g *MercadoPagoGateway) GetPaymentDetails(ctx context.Context, gatewayID string) (interfaces.PaymentDetails, error) {
	id, err := strconv.Atoi(gatewayID)
	if err != nil {
		return interfaces.PaymentDetails{}, &GatewayError{Message: "Identificador de pagamento do Mercado Pago inválido", Err: err}
	}

	resp, err := g.paymentClient.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed gateway_id=%s err=%v", gatewayID, err)
		return interfaces.PaymentDetails{}, wrapGatewayError(err)
	}

	log.Printf("[payment][gateway] details fetched gateway_id=%s status=%s external_reference=%s", gatewayID, resp.Status, resp.ExternalReference)
	return interfaces.PaymentDetails{
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
