package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentIntent is one attempted or settled charge for one inspection.
// UnitCountSnapshot and the amounts are frozen at creation.
type PaymentIntent struct {
	ID                  uuid.UUID     `json:"id"`
	InspectionID        uuid.UUID     `json:"inspection_id"`
	UnitCountSnapshot   int           `json:"unit_count_snapshot"`
	ReportFee           Money         `json:"report_fee"`
	PricePerUnit        Money         `json:"price_per_unit"`
	TotalAmount         Money         `json:"total_amount"`
	Provider            Provider      `json:"provider"`
	Status              PaymentStatus `json:"status"`
	ProviderChargeID    *string       `json:"provider_charge_id,omitempty"`
	ProviderCheckoutURL *string       `json:"provider_checkout_url,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	PaidAt              *time.Time    `json:"paid_at,omitempty"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// ApplyStatus moves the intent to incoming if it differs from the stored
// status. PaidAt is stamped only on the first transition into PAID.
// Returns true when the intent changed and must be persisted.
func (p *PaymentIntent) ApplyStatus(incoming PaymentStatus, now time.Time) bool {
	if incoming == p.Status {
		return false
	}
	p.Status = incoming
	if incoming == PaymentStatusPaid && p.PaidAt == nil {
		paidAt := now
		p.PaidAt = &paidAt
	}
	p.UpdatedAt = now
	return true
}

// ShouldReconcile reports whether a stale-intent sweep should poll the gateway.
func (p *PaymentIntent) ShouldReconcile(minAge time.Duration, now time.Time) bool {
	if p.Status.IsTerminal() {
		return false
	}
	return p.CreatedAt.IsZero() || p.CreatedAt.Before(now.Add(-minAge))
}

// ChargeID returns the gateway charge id, or "" when none was recorded.
func (p *PaymentIntent) ChargeID() string {
	if p.ProviderChargeID == nil {
		return ""
	}
	return *p.ProviderChargeID
}

// CheckoutURL returns the gateway checkout URL, or "".
func (p *PaymentIntent) CheckoutURL() string {
	if p.ProviderCheckoutURL == nil {
		return ""
	}
	return *p.ProviderCheckoutURL
}
