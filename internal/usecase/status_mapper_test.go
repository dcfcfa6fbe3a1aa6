package usecase

import (
	"testing"

	"pagamentos/internal/domain/entities"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		gatewayStatus string
		want          entities.PaymentStatus
	}{
		{"approved", entities.PaymentStatusPaid},
		{"rejected", entities.PaymentStatusFail},
		{"cancelled", entities.PaymentStatusFail},
		{"pending", entities.PaymentStatusPending},
		{"in_process", entities.PaymentStatusPending},
		{"refunded", entities.PaymentStatusPending},
		{"", entities.PaymentStatusPending},
	}

	for _, c := range cases {
		name := c.gatewayStatus
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			if got := MapGatewayStatus(c.gatewayStatus); got != c.want {
				t.Fatalf("MapGatewayStatus(%q) = %s, want %s", c.gatewayStatus, got, c.want)
			}
		})
	}
}
