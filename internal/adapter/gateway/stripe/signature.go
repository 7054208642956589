package stripe

import (
	"net/http"
	"net/url"

	"github.com/stripe/stripe-go/v80/webhook"
)

// SignatureValidator checks the Stripe-Signature header, including the
// default timestamp tolerance.
type SignatureValidator struct {
	secret string
}

// NewSignatureValidator creates a validator for the endpoint signing secret.
func NewSignatureValidator(secret string) *SignatureValidator {
	return &SignatureValidator{secret: secret}
}

func (v *SignatureValidator) IsValid(payload []byte, headers http.Header, _ url.Values) bool {
	if v.secret == "" {
		return false
	}
	return webhook.ValidatePayload(payload, headers.Get("Stripe-Signature"), v.secret) == nil
}
