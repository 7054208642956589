package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stripeSignature(secret string, payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts.Unix(), payload)))
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestSignatureValidator_IsValid(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)
	v := NewSignatureValidator("whsec_test")

	t.Run("valid", func(t *testing.T) {
		h := http.Header{"Stripe-Signature": {stripeSignature("whsec_test", payload, time.Now())}}
		assert.True(t, v.IsValid(payload, h, nil))
	})

	t.Run("wrong secret", func(t *testing.T) {
		h := http.Header{"Stripe-Signature": {stripeSignature("whsec_other", payload, time.Now())}}
		assert.False(t, v.IsValid(payload, h, nil))
	})

	t.Run("tampered payload", func(t *testing.T) {
		h := http.Header{"Stripe-Signature": {stripeSignature("whsec_test", payload, time.Now())}}
		assert.False(t, v.IsValid(append([]byte{}, `{"id":"evt_2"}`...), h, nil))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		h := http.Header{"Stripe-Signature": {stripeSignature("whsec_test", payload, time.Now().Add(-time.Hour))}}
		assert.False(t, v.IsValid(payload, h, nil))
	})

	t.Run("missing header", func(t *testing.T) {
		assert.False(t, v.IsValid(payload, http.Header{}, nil))
	})
}
