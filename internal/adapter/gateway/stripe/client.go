// Package stripe is the Stripe Checkout gateway client.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"inspection-billing/config"
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"

	"github.com/google/uuid"
	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
)

type sessionAPI interface {
	New(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
	Get(id string, params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

// Client implements ports.GatewayClient over Checkout Sessions.
// The session id is the charge id.
type Client struct {
	cfg      config.StripeConfig
	sessions sessionAPI
}

// NewClient creates a Stripe client. httpClient carries the gateway timeout.
func NewClient(cfg config.StripeConfig, httpClient *http.Client) *Client {
	backendCfg := &stripego.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripego.Int64(0),
	}
	if cfg.APIBase != "" {
		backendCfg.URL = stripego.String(strings.TrimRight(cfg.APIBase, "/"))
	}
	return NewClientWithBackend(cfg, stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg))
}

// NewClientWithBackend is NewClient against an explicit API backend.
func NewClientWithBackend(cfg config.StripeConfig, backend stripego.Backend) *Client {
	if cfg.Currency == "" {
		cfg.Currency = "brl"
	}
	api := client.New(cfg.SecretKey, &stripego.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &Client{cfg: cfg, sessions: api.CheckoutSessions}
}

func (c *Client) Provider() domain.Provider {
	return domain.ProviderStripe
}

// CreateCharge opens a one-line payment-mode Checkout Session.
func (c *Client) CreateCharge(ctx context.Context, req ports.ChargeRequest) (*ports.Charge, error) {
	params := &stripego.CheckoutSessionParams{
		Mode:              stripego.String(string(stripego.CheckoutSessionModePayment)),
		ClientReferenceID: stripego.String(req.IntentID.String()),
		LineItems: []*stripego.CheckoutSessionLineItemParams{{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(strings.ToLower(c.cfg.Currency)),
				UnitAmount: stripego.Int64(req.TotalAmount.Cents()),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(fmt.Sprintf("Inspection report (%d units)", req.UnitCount)),
				},
			},
			Quantity: stripego.Int64(1),
		}},
	}
	if c.cfg.SuccessURL != "" {
		params.SuccessURL = stripego.String(c.cfg.SuccessURL)
	}
	if c.cfg.CancelURL != "" {
		params.CancelURL = stripego.String(c.cfg.CancelURL)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IntentID.String())
	params.AddMetadata("intent_id", req.IntentID.String())
	params.AddMetadata("inspection_id", req.InspectionID.String())

	sess, err := c.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &ports.Charge{
		Provider:    domain.ProviderStripe,
		ChargeID:    sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// GetStatus reads the session back.
func (c *Client) GetStatus(ctx context.Context, chargeID string) (domain.PaymentStatus, error) {
	sess, err := c.getSession(ctx, chargeID)
	if err != nil {
		return "", fmt.Errorf("get checkout session: %w", err)
	}
	return sessionStatus(sess), nil
}

// ResolveNotification reads back the session a webhook names. Events about
// other objects (charges, customers) name ids that are not sessions and
// resolve to nil.
func (c *Client) ResolveNotification(ctx context.Context, ref string) (*ports.ChargeState, error) {
	sess, err := c.getSession(ctx, ref)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	state := &ports.ChargeState{ChargeID: sess.ID, Status: sessionStatus(sess)}
	if id, err := uuid.Parse(sess.ClientReferenceID); err == nil {
		state.IntentID = id
	}
	return state, nil
}

func (c *Client) getSession(ctx context.Context, id string) (*stripego.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	return c.sessions.Get(id, params)
}

// sessionStatus is PAID only once the payment settled. A complete session
// paid with a delayed method stays PENDING until then.
func sessionStatus(sess *stripego.CheckoutSession) domain.PaymentStatus {
	switch sess.PaymentStatus {
	case stripego.CheckoutSessionPaymentStatusPaid, stripego.CheckoutSessionPaymentStatusNoPaymentRequired:
		return domain.PaymentStatusPaid
	}
	return MapStatus(string(sess.Status))
}

// MapStatus translates a Stripe event type or session status.
func (c *Client) MapStatus(raw string) domain.PaymentStatus {
	return MapStatus(raw)
}
