package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_001", "Inspection has no confirmed payment", http.StatusPaymentRequired),
			expected: "[PAY_001] Inspection has no confirmed payment",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("PAY_001", "test", http.StatusBadRequest).Unwrap())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "PAY_003", CodeOf(fmt.Errorf("create: %w", ErrPaymentInFlight())))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"AuthorizationDenied", ErrAuthorizationDenied(), "AUTH_002", 403},
		{"PaymentRequired", ErrPaymentRequired(), "PAY_001", 402},
		{"InvalidArgument", ErrInvalidArgument("unit count must be positive"), "PAY_002", 400},
		{"PaymentInFlight", ErrPaymentInFlight(), "PAY_003", 409},
		{"NotFound", ErrNotFound("payment intent"), "PAY_004", 404},
		{"UnitCountChanged", ErrUnitCountChanged(), "PAY_005", 409},
		{"NothingToCharge", ErrNothingToCharge(), "PAY_006", 422},
		{"MissingChargeID", ErrMissingChargeID(), "PAY_007", 422},
		{"Gateway", ErrGateway(errors.New("timeout")), "GW_001", 502},
		{"WebhookSignature", ErrInvalidWebhookSignature(), "WH_001", 401},
		{"WebhookPayload", ErrInvalidWebhookPayload(errors.New("eof")), "WH_002", 400},
		{"UnknownProvider", ErrUnknownProvider("paypal"), "WH_003", 404},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.True(t, errors.Is(internal, inner))
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Payment intent")
	assert.Contains(t, err.Message, "Payment intent")
	assert.Equal(t, "PAY_004", err.Code)
}
