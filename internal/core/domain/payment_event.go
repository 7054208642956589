package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent is one deduplicated inbound gateway notification, kept verbatim.
// (Provider, ProviderEventID) is the idempotency key.
type PaymentEvent struct {
	ID               uuid.UUID     `json:"id"`
	Provider         Provider      `json:"provider"`
	ProviderEventID  string        `json:"provider_event_id"`
	ProviderChargeID *string       `json:"provider_charge_id,omitempty"`
	Status           PaymentStatus `json:"status"`
	RawPayload       []byte        `json:"-"`
	ReceivedAt       time.Time     `json:"received_at"`
}
