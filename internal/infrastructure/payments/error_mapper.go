package payments

import "strings"

// GatewayError is a provider failure already translated to a stable,
// user-facing message. The raw SDK error stays wrapped for logs.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string { return e.Message }
func (e *GatewayError) Unwrap() error { return e.Err }

// rejectionMessages maps Mercado Pago card rejection codes to messages safe
// to show a payer.
var rejectionMessages = map[string]string{
	"cc_rejected_insufficient_amount":      "O cartão possui saldo insuficiente.",
	"cc_rejected_bad_filled_number":        "O número do cartão está incorreto.",
	"cc_rejected_bad_filled_card_number":   "Número do cartão inválido.",
	"cc_rejected_bad_filled_date":          "Data de vencimento do cartão inválida.",
	"cc_rejected_bad_filled_security_code": "O código de segurança (CVV) é inválido.",
	"cc_rejected_expired":                  "O cartão está expirado.",
	"cc_rejected_call_for_authorize":       "O pagamento não foi autorizado pelo banco emissor.",
	"payment_method_not_found":             "Método de pagamento não suportado.",
	"cc_rejected_duplicated_payment":       "Pagamento duplicado. Aguarde alguns minutos antes de tentar novamente.",
}

// TranslateRejection resolves a rejection code to its message, with a generic
// fallback for unmapped codes.
func TranslateRejection(code string) string {
	if msg, ok := rejectionMessages[code]; ok {
		return msg
	}
	return "Ocorreu um erro inesperado ao processar o pagamento."
}

// MapGatewayError derives a stable message from a raw SDK error. The SDK
// surfaces the provider's JSON error body in err.Error(), so we classify by
// status family and known code substrings, the same way rejections arrive.
func MapGatewayError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())

	for code, translated := range rejectionMessages {
		if strings.Contains(msg, code) {
			return translated
		}
	}

	switch {
	case strings.Contains(msg, `"status":400`), strings.Contains(msg, "invalid_parameter"), strings.Contains(msg, "bad_request"):
		return "Os dados enviados são inválidos. Verifique as informações do pagamento."
	case strings.Contains(msg, `"status":401`), strings.Contains(msg, "unauthorized"):
		return "Erro de autenticação com o provedor de pagamento."
	case strings.Contains(msg, `"status":404`), strings.Contains(msg, "not_found"):
		return "Recurso não encontrado no provedor de pagamento."
	case strings.Contains(msg, `"status":500`), strings.Contains(msg, "internal_server_error"):
		return "Erro interno no servidor do Mercado Pago."
	default:
		return "Erro inesperado no provedor de pagamento"
	}
}

func wrapGatewayError(err error) error {
	return &GatewayError{Message: MapGatewayError(err), Err: err}
}
