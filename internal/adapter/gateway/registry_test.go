package gateway_test

import (
	"net/http"
	"net/url"
	"testing"

	"inspection-billing/config"
	"inspection-billing/internal/adapter/gateway"
	"inspection-billing/internal/adapter/gateway/mercadopago"
	"inspection-billing/internal/adapter/gateway/stripe"
	"inspection-billing/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	mp := mercadopago.NewClient(config.MercadoPagoConfig{BaseURL: "http://mp.invalid"}, http.DefaultClient)
	st := stripe.NewClient(config.StripeConfig{SecretKey: "sk_test"}, http.DefaultClient)

	reg, err := gateway.NewRegistry(domain.ProviderStripe, mp, st)
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderStripe, reg.Default().Provider())

	c, ok := reg.Get(domain.ProviderMercadoPago)
	require.True(t, ok)
	assert.Equal(t, domain.ProviderMercadoPago, c.Provider())

	_, ok = reg.Get(domain.Provider("PAYPAL"))
	assert.False(t, ok)
}

func TestRegistry_DefaultMustBeConfigured(t *testing.T) {
	mp := mercadopago.NewClient(config.MercadoPagoConfig{}, http.DefaultClient)
	_, err := gateway.NewRegistry(domain.ProviderStripe, mp)
	assert.Error(t, err)
}

func TestValidators_Dispatch(t *testing.T) {
	v := gateway.Validators{
		domain.ProviderMercadoPago: mercadopago.NewSignatureValidator("secret"),
	}

	h := http.Header{}
	h.Set("X-Signature", "ts=1,v1="+mercadopago.Sign("secret", mercadopago.Manifest("42", "", "1")))
	q := url.Values{"data.id": {"42"}}

	assert.True(t, v.IsValid(domain.ProviderMercadoPago, nil, h, q))
	assert.False(t, v.IsValid(domain.ProviderStripe, nil, h, q), "no validator registered")
}
