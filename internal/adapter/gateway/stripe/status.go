package stripe

import (
	"strings"

	"inspection-billing/internal/core/domain"
)

// Event types and session statuses share this table. Neither a completed
// session nor its completion event proves the payment settled, so both stay
// PENDING; only payment_status paid (see sessionStatus) or an explicit
// success event means PAID.
var statusTable = map[string]domain.PaymentStatus{
	"checkout.session.completed":               domain.PaymentStatusPending,
	"checkout.session.async_payment_succeeded": domain.PaymentStatusPaid,
	"checkout.session.async_payment_failed":    domain.PaymentStatusFailed,
	"checkout.session.expired":                 domain.PaymentStatusCanceled,
	"charge.refunded":                          domain.PaymentStatusRefunded,
	"payment_intent.succeeded":                 domain.PaymentStatusPaid,
	"payment_intent.payment_failed":            domain.PaymentStatusFailed,
	"payment_intent.canceled":                  domain.PaymentStatusCanceled,

	"open":     domain.PaymentStatusPending,
	"complete": domain.PaymentStatusPending,
	"expired":  domain.PaymentStatusCanceled,
	"paid":     domain.PaymentStatusPaid,
	"unpaid":   domain.PaymentStatusPending,
}

// MapStatus is total: anything unknown is PENDING.
func MapStatus(raw string) domain.PaymentStatus {
	if s, ok := statusTable[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return domain.PaymentStatusPending
}
