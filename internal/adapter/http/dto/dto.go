package dto

import (
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
)

// InspectionURI binds /inspections/:inspection_id.
type InspectionURI struct {
	InspectionID string `uri:"inspection_id" binding:"required,uuid"`
}

// IntentURI binds /payments/:intent_id.
type IntentURI struct {
	IntentID string `uri:"intent_id" binding:"required,uuid"`
}

// PaymentResponse is the public view of a payment intent.
type PaymentResponse struct {
	IntentID     string `json:"intent_id"`
	InspectionID string `json:"inspection_id"`
	UnitCount    int    `json:"unit_count"`
	TotalAmount  string `json:"total_amount"`
	Status       string `json:"status"`
	Provider     string `json:"provider"`
	CheckoutURL  string `json:"checkout_url,omitempty"`
}

// NewPaymentResponse renders amounts as two-decimal strings.
func NewPaymentResponse(a *ports.PaymentAnswer) PaymentResponse {
	return PaymentResponse{
		IntentID:     a.IntentID.String(),
		InspectionID: a.InspectionID.String(),
		UnitCount:    a.UnitCount,
		TotalAmount:  a.TotalAmount.String(),
		Status:       string(a.Status),
		Provider:     string(a.Provider),
		CheckoutURL:  a.CheckoutURL,
	}
}

// BillingSummaryResponse is the response for the billing summary.
type BillingSummaryResponse struct {
	Paid                  bool `json:"paid"`
	SnapshotMatches       bool `json:"snapshot_matches"`
	CurrentUnitCount      int  `json:"current_unit_count"`
	PaidSnapshotUnitCount *int `json:"paid_snapshot_unit_count,omitempty"`
}

func NewBillingSummaryResponse(s *domain.BillingSummary) BillingSummaryResponse {
	return BillingSummaryResponse{
		Paid:                  s.Paid,
		SnapshotMatches:       s.SnapshotMatches,
		CurrentUnitCount:      s.CurrentUnitCount,
		PaidSnapshotUnitCount: s.PaidSnapshotUnitCount,
	}
}

// WebhookAckResponse acknowledges an accepted notification.
type WebhookAckResponse struct {
	Outcome  string  `json:"outcome"`
	EventID  string  `json:"event_id"`
	IntentID *string `json:"intent_id,omitempty"`
	Status   string  `json:"status,omitempty"`
}

func NewWebhookAckResponse(r *ports.WebhookResult) WebhookAckResponse {
	resp := WebhookAckResponse{
		Outcome: r.Outcome,
		EventID: r.EventID,
		Status:  string(r.Status),
	}
	if r.IntentID != nil {
		id := r.IntentID.String()
		resp.IntentID = &id
	}
	return resp
}
