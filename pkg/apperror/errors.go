package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAuthorizationDenied() *AppError {
	return New("AUTH_002", "Requester may not pay for this inspection", http.StatusForbidden)
}

// ---- Payment Business Logic (PAY) ----

func ErrPaymentRequired() *AppError {
	return New("PAY_001", "Inspection has no confirmed payment", http.StatusPaymentRequired)
}

func ErrInvalidArgument(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}

func ErrPaymentInFlight() *AppError {
	return New("PAY_003", "A pending payment already exists for this inspection", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnitCountChanged() *AppError {
	return New("PAY_005", "Billable units changed after payment; a new charge is required", http.StatusConflict)
}

func ErrNothingToCharge() *AppError {
	return New("PAY_006", "Inspection has no billable units", http.StatusUnprocessableEntity)
}

func ErrMissingChargeID() *AppError {
	return New("PAY_007", "Payment has no gateway charge to reconcile", http.StatusUnprocessableEntity)
}

// ---- Gateway (GW) ----

func ErrGateway(err error) *AppError {
	return Wrap("GW_001", "Payment gateway request failed", http.StatusBadGateway, err)
}

// ---- Webhooks (WH) ----

func ErrInvalidWebhookSignature() *AppError {
	return New("WH_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrInvalidWebhookPayload(err error) *AppError {
	return Wrap("WH_002", "Unparsable webhook payload", http.StatusBadRequest, err)
}

func ErrUnknownProvider(provider string) *AppError {
	return New("WH_003", fmt.Sprintf("Unknown payment provider %q", provider), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return ErrInvalidArgument(message)
}
