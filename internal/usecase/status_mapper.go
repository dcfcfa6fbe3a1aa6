package usecase

import "pagamentos/internal/domain/entities"

// MapGatewayStatus translates a Mercado Pago status code into the internal
// status. Unknown or empty codes fall back to PENDING so an ambiguous
// reconciliation pass never marks a payment paid or failed by accident.
func MapGatewayStatus(gatewayStatus string) entities.PaymentStatus {
	switch gatewayStatus {
	case "approved":
		return entities.PaymentStatusPaid
	case "rejected", "cancelled":
		return entities.PaymentStatusFail
	case "pending", "in_process":
		return entities.PaymentStatusPending
	default:
		return entities.PaymentStatusPending
	}
}
