package ports

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"inspection-billing/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks
//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// --- Outbound Ports (Collaborators) ---

// InspectionOracle answers questions owned by the inspection domain.
type InspectionOracle interface {
	CountBillableUnits(ctx context.Context, inspectionID uuid.UUID) (int, error)
	// AssertCanPay returns apperror AUTH_002 when requester may not pay.
	AssertCanPay(ctx context.Context, inspectionID, requesterID uuid.UUID) error
}

// ChargeRequest is what a gateway needs to open a remote charge.
type ChargeRequest struct {
	IntentID     uuid.UUID
	InspectionID uuid.UUID
	UnitCount    int
	TotalAmount  domain.Money
}

// Charge is the gateway's answer to CreateCharge.
type Charge struct {
	Provider    domain.Provider
	ChargeID    string
	CheckoutURL string
}

// ChargeState is the gateway's own view of the charge a notification names.
// IntentID is set when the gateway echoes back the reference we sent at
// charge creation; ChargeID is set when the gateway reports our charge id.
type ChargeState struct {
	ChargeID string
	IntentID uuid.UUID
	Status   domain.PaymentStatus
}

// GatewayClient talks to one payment provider.
type GatewayClient interface {
	Provider() domain.Provider
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	GetStatus(ctx context.Context, chargeID string) (domain.PaymentStatus, error)
	// ResolveNotification fetches the state behind a notification's resource
	// reference. It returns nil, nil when the gateway does not know ref.
	ResolveNotification(ctx context.Context, ref string) (*ChargeState, error)
	// MapStatus is total: unknown values map to PENDING.
	MapStatus(raw string) domain.PaymentStatus
}

// GatewayResolver picks the client for a provider.
type GatewayResolver interface {
	Default() GatewayClient
	Get(provider domain.Provider) (GatewayClient, bool)
}

// SignatureValidator authenticates an inbound notification.
type SignatureValidator interface {
	IsValid(provider domain.Provider, payload []byte, headers http.Header, query url.Values) bool
}

// ParsedNotification is the normalized tuple extracted from a webhook.
// RawStatus is empty when the payload carries none.
type ParsedNotification struct {
	EventID   string
	ChargeID  string
	RawStatus string
}

// WebhookParser extracts identifiers from a provider payload.
type WebhookParser interface {
	Parse(provider domain.Provider, payload []byte, query url.Values) (*ParsedNotification, error)
}

// EventCache is the Redis-layer webhook dedup check (fast path).
type EventCache interface {
	Seen(ctx context.Context, provider domain.Provider, eventID string) (bool, error)
	MarkSeen(ctx context.Context, provider domain.Provider, eventID string, ttl time.Duration) error
}

// PaymentMetrics records business counters.
type PaymentMetrics interface {
	IntentCreated(provider domain.Provider)
	WebhookProcessed(provider domain.Provider, outcome string)
	Reconciled(outcome string)
	GatewayCall(provider domain.Provider, op string, d time.Duration, err error)
}

// TokenService validates JWTs issued by the identity provider.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SubjectID uuid.UUID
	Roles     []string
}

// --- Service Ports (Business Logic) ---

// PaymentAnswer is the public view of an intent.
type PaymentAnswer struct {
	IntentID     uuid.UUID
	InspectionID uuid.UUID
	UnitCount    int
	TotalAmount  domain.Money
	Status       domain.PaymentStatus
	Provider     domain.Provider
	CheckoutURL  string
}

// NewPaymentAnswer projects an intent onto its public fields.
func NewPaymentAnswer(p *domain.PaymentIntent) *PaymentAnswer {
	return &PaymentAnswer{
		IntentID:     p.ID,
		InspectionID: p.InspectionID,
		UnitCount:    p.UnitCountSnapshot,
		TotalAmount:  p.TotalAmount,
		Status:       p.Status,
		Provider:     p.Provider,
		CheckoutURL:  p.CheckoutURL(),
	}
}

// PaymentService creates and reads charges for inspections.
type PaymentService interface {
	CreatePaymentForInspection(ctx context.Context, inspectionID, requesterID uuid.UUID) (*PaymentAnswer, error)
	GetLatestPayment(ctx context.Context, inspectionID, requesterID uuid.UUID) (*PaymentAnswer, error)
}

// WebhookRequest carries an inbound notification untouched.
type WebhookRequest struct {
	Provider domain.Provider
	Payload  []byte
	Headers  http.Header
	Query    url.Values
}

// Webhook outcomes.
const (
	WebhookApplied   = "applied"
	WebhookUnchanged = "unchanged"
	WebhookDuplicate = "duplicate"
	WebhookUnmatched = "unmatched"
	WebhookRejected  = "rejected"
)

// WebhookResult tells the caller what happened to an accepted notification.
type WebhookResult struct {
	Outcome  string
	EventID  string
	IntentID *uuid.UUID
	Status   domain.PaymentStatus
}

// WebhookService ingests gateway notifications.
type WebhookService interface {
	HandleNotification(ctx context.Context, req WebhookRequest) (*WebhookResult, error)
}

// SweepResult summarizes one stale-intent sweep.
type SweepResult struct {
	Scanned int
	Changed int
	Failed  int
}

// ReconcileService polls the gateway for intent status.
type ReconcileService interface {
	Reconcile(ctx context.Context, intentID uuid.UUID) (*PaymentAnswer, error)
	// ReconcileAs is Reconcile on behalf of a user who must be allowed to
	// pay for the intent's inspection.
	ReconcileAs(ctx context.Context, intentID, requesterID uuid.UUID) (*PaymentAnswer, error)
	SweepStale(ctx context.Context, minAge time.Duration, limit int) (*SweepResult, error)
}

// BillingService is the read-side policy over an inspection's payments.
type BillingService interface {
	// AssertCanView applies the payer check to billing reads.
	AssertCanView(ctx context.Context, inspectionID, requesterID uuid.UUID) error
	IsPaid(ctx context.Context, inspectionID uuid.UUID) (bool, error)
	RequireCanGenerateFinalReport(ctx context.Context, inspectionID uuid.UUID) error
	GetBillingSummary(ctx context.Context, inspectionID uuid.UUID) (*domain.BillingSummary, error)
}
