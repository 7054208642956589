package mercadopago

import (
	"strings"

	"inspection-billing/internal/core/domain"
)

var statusTable = map[string]domain.PaymentStatus{
	"approved":     domain.PaymentStatusPaid,
	"authorized":   domain.PaymentStatusPending,
	"pending":      domain.PaymentStatusPending,
	"in_process":   domain.PaymentStatusPending,
	"in_mediation": domain.PaymentStatusPending,
	"rejected":     domain.PaymentStatusFailed,
	"cancelled":    domain.PaymentStatusCanceled,
	"canceled":     domain.PaymentStatusCanceled,
	"expired":      domain.PaymentStatusCanceled,
	"refunded":     domain.PaymentStatusRefunded,
	"charged_back": domain.PaymentStatusRefunded,
}

// MapStatus is total: anything unknown is PENDING.
func MapStatus(raw string) domain.PaymentStatus {
	if s, ok := statusTable[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return domain.PaymentStatusPending
}
