package mercadopago

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTolerance bounds how old a signed notification may be.
const DefaultTolerance = 5 * time.Minute

// SignatureValidator checks the x-signature header Mercado Pago sends with
// notifications. The signed manifest is
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" with absent parts omitted.
// Only the query data.id is covered by the signature, never the body, so a
// notification without it is rejected.
type SignatureValidator struct {
	secret    string
	tolerance time.Duration
	now       func() time.Time
}

// NewSignatureValidator creates a validator for the account's webhook secret.
func NewSignatureValidator(secret string) *SignatureValidator {
	return &SignatureValidator{secret: secret, tolerance: DefaultTolerance, now: time.Now}
}

// IsValid reports whether headers carry a valid, fresh signature for the
// notification.
func (v *SignatureValidator) IsValid(_ []byte, headers http.Header, query url.Values) bool {
	if v.secret == "" {
		return false
	}
	dataID := query.Get("data.id")
	if dataID == "" {
		return false
	}
	ts, sig := parseSignatureHeader(headers.Get("X-Signature"))
	if ts == "" || sig == "" {
		return false
	}
	if !v.fresh(ts) {
		return false
	}

	expected := Sign(v.secret, Manifest(dataID, headers.Get("X-Request-Id"), ts))
	return hmac.Equal([]byte(strings.ToLower(sig)), []byte(expected))
}

// fresh accepts ts in seconds or milliseconds since the epoch.
func (v *SignatureValidator) fresh(ts string) bool {
	n, err := strconv.ParseInt(ts, 10, 64)
	if err != nil || n <= 0 {
		return false
	}
	signedAt := time.Unix(n, 0)
	if n > 1e12 {
		signedAt = time.UnixMilli(n)
	}
	age := v.now().Sub(signedAt)
	if age < 0 {
		age = -age
	}
	return age <= v.tolerance
}

// Manifest builds the string Mercado Pago signs.
func Manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

// Sign returns the hex HMAC-SHA256 of manifest.
func Sign(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}
