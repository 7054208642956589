// Package mercadopago is the Mercado Pago Checkout Pro gateway client.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"inspection-billing/config"
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"

	"github.com/google/uuid"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.GatewayClient. A charge is a checkout preference;
// its id is the charge id stored on the intent. Payments made against the
// preference carry the intent id as external_reference.
type Client struct {
	cfg        config.MercadoPagoConfig
	httpClient HTTPClient
}

// NewClient creates a Mercado Pago client. httpClient carries the gateway timeout.
func NewClient(cfg config.MercadoPagoConfig, httpClient HTTPClient) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, httpClient: httpClient}
}

func (c *Client) Provider() domain.Provider {
	return domain.ProviderMercadoPago
}

type preferenceItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

type backURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	NotificationURL   string           `json:"notification_url,omitempty"`
	BackURLs          *backURLs        `json:"back_urls,omitempty"`
	Metadata          map[string]any   `json:"metadata,omitempty"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CreateCharge opens a checkout preference for the whole amount.
func (c *Client) CreateCharge(ctx context.Context, req ports.ChargeRequest) (*ports.Charge, error) {
	body := preferenceRequest{
		Items: []preferenceItem{{
			ID:         req.InspectionID.String(),
			Title:      fmt.Sprintf("Inspection report (%d units)", req.UnitCount),
			Quantity:   1,
			CurrencyID: "BRL",
			UnitPrice:  float64(req.TotalAmount.Cents()) / 100,
		}},
		ExternalReference: req.IntentID.String(),
		NotificationURL:   c.cfg.NotificationURL,
		Metadata: map[string]any{
			"intent_id":     req.IntentID.String(),
			"inspection_id": req.InspectionID.String(),
		},
	}
	if c.cfg.SuccessURL != "" || c.cfg.FailureURL != "" {
		body.BackURLs = &backURLs{Success: c.cfg.SuccessURL, Failure: c.cfg.FailureURL}
	}

	var pref preferenceResponse
	headers := http.Header{"X-Idempotency-Key": []string{req.IntentID.String()}}
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", headers, body, &pref); err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &ports.Charge{
		Provider:    domain.ProviderMercadoPago,
		ChargeID:    pref.ID,
		CheckoutURL: pref.InitPoint,
	}, nil
}

type paymentSearchResponse struct {
	Results []struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"results"`
}

// GetStatus looks up the newest payment made against the preference.
// No payment yet means the buyer has not paid: PENDING.
func (c *Client) GetStatus(ctx context.Context, chargeID string) (domain.PaymentStatus, error) {
	q := url.Values{}
	q.Set("preference_id", chargeID)
	q.Set("sort", "date_created")
	q.Set("criteria", "desc")
	q.Set("limit", "1")

	var res paymentSearchResponse
	if err := c.do(ctx, http.MethodGet, "/v1/payments/search?"+q.Encode(), nil, nil, &res); err != nil {
		return "", fmt.Errorf("search payments: %w", err)
	}
	if len(res.Results) == 0 {
		return domain.PaymentStatusPending, nil
	}
	return c.MapStatus(res.Results[0].Status), nil
}

type paymentResponse struct {
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

// ResolveNotification reads the payment a notification points at. Mercado
// Pago notifies payment ids, not preference ids, so the intent is identified
// by the external_reference set in CreateCharge.
func (c *Client) ResolveNotification(ctx context.Context, ref string) (*ports.ChargeState, error) {
	var p paymentResponse
	err := c.do(ctx, http.MethodGet, "/v1/payments/"+url.PathEscape(ref), nil, nil, &p)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	state := &ports.ChargeState{Status: c.MapStatus(p.Status)}
	if id, err := uuid.Parse(p.ExternalReference); err == nil {
		state.IntentID = id
	}
	return state, nil
}

// MapStatus translates a Mercado Pago payment status.
func (c *Client) MapStatus(raw string) domain.PaymentStatus {
	return MapStatus(raw)
}

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, in, out any) error {
	var reader io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// APIError is a non-2xx answer from Mercado Pago.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: http %d: %s", e.StatusCode, e.Body)
}
