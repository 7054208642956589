package mercadopago

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inspection-billing/config"
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.MercadoPagoConfig{
		BaseURL:         srv.URL + "/",
		AccessToken:     "TEST-token",
		NotificationURL: "https://billing.example/api/v1/webhooks/mercadopago",
		SuccessURL:      "https://app.example/paid",
	}, &http.Client{Timeout: 5 * time.Second})
}

func TestClient_CreateCharge(t *testing.T) {
	req := ports.ChargeRequest{
		IntentID:     uuid.New(),
		InspectionID: uuid.New(),
		UnitCount:    3,
		TotalAmount:  7000,
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))
		assert.Equal(t, req.IntentID.String(), r.Header.Get("X-Idempotency-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var pref preferenceRequest
		require.NoError(t, json.Unmarshal(body, &pref))
		require.Len(t, pref.Items, 1)
		assert.Equal(t, 70.0, pref.Items[0].UnitPrice)
		assert.Equal(t, 1, pref.Items[0].Quantity)
		assert.Equal(t, req.IntentID.String(), pref.ExternalReference)
		require.NotNil(t, pref.BackURLs)
		assert.Equal(t, "https://app.example/paid", pref.BackURLs.Success)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"123-pref","init_point":"https://www.mercadopago.com/checkout?pref_id=123-pref"}`))
	})

	charge, err := client.CreateCharge(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderMercadoPago, charge.Provider)
	assert.Equal(t, "123-pref", charge.ChargeID)
	assert.Contains(t, charge.CheckoutURL, "pref_id=123-pref")
}

func TestClient_CreateCharge_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid access token"}`))
	})

	_, err := client.CreateCharge(context.Background(), ports.ChargeRequest{IntentID: uuid.New(), TotalAmount: 100})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_GetStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected domain.PaymentStatus
	}{
		{"no payment yet", `{"results":[]}`, domain.PaymentStatusPending},
		{"approved", `{"results":[{"id":1,"status":"approved"}]}`, domain.PaymentStatusPaid},
		{"rejected", `{"results":[{"id":2,"status":"rejected"}]}`, domain.PaymentStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payments/search", r.URL.Path)
				assert.Equal(t, "123-pref", r.URL.Query().Get("preference_id"))
				_, _ = w.Write([]byte(tt.body))
			})

			status, err := client.GetStatus(context.Background(), "123-pref")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestClient_GetStatus_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetStatus(ctx, "123-pref")
	assert.Error(t, err)
}

func TestClient_ResolveNotification(t *testing.T) {
	intentID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payments/987654", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":987654,"status":"approved","external_reference":"` + intentID.String() + `"}`))
	})

	state, err := client.ResolveNotification(context.Background(), "987654")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, intentID, state.IntentID)
	assert.Equal(t, domain.PaymentStatusPaid, state.Status)
	assert.Empty(t, state.ChargeID)
}

func TestClient_ResolveNotification_ForeignReference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"status":"pending","external_reference":"order-77"}`))
	})

	state, err := client.ResolveNotification(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, uuid.Nil, state.IntentID)
	assert.Equal(t, domain.PaymentStatusPending, state.Status)
}

func TestClient_ResolveNotification_UnknownPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Payment not found"}`))
	})

	state, err := client.ResolveNotification(context.Background(), "123")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestClient_ResolveNotification_GatewayDown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ResolveNotification(context.Background(), "123")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestMapStatus(t *testing.T) {
	tests := map[string]domain.PaymentStatus{
		"approved":     domain.PaymentStatusPaid,
		"APPROVED":     domain.PaymentStatusPaid,
		"in_process":   domain.PaymentStatusPending,
		"rejected":     domain.PaymentStatusFailed,
		"cancelled":    domain.PaymentStatusCanceled,
		"refunded":     domain.PaymentStatusRefunded,
		"charged_back": domain.PaymentStatusRefunded,
		"":             domain.PaymentStatusPending,
		"weird":        domain.PaymentStatusPending,
	}
	for raw, expected := range tests {
		assert.Equal(t, expected, MapStatus(raw), "raw=%q", raw)
	}
}
