// Package gateway resolves payment provider clients and webhook validators.
package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
)

// Registry implements ports.GatewayResolver.
type Registry struct {
	defaultProvider domain.Provider
	clients         map[domain.Provider]ports.GatewayClient
}

// NewRegistry indexes clients by provider. defaultProvider must be one of them.
func NewRegistry(defaultProvider domain.Provider, clients ...ports.GatewayClient) (*Registry, error) {
	r := &Registry{
		defaultProvider: defaultProvider,
		clients:         make(map[domain.Provider]ports.GatewayClient, len(clients)),
	}
	for _, c := range clients {
		r.clients[c.Provider()] = c
	}
	if _, ok := r.clients[defaultProvider]; !ok {
		return nil, fmt.Errorf("default provider %q has no configured client", defaultProvider)
	}
	return r, nil
}

// Default returns the client new charges are opened with.
func (r *Registry) Default() ports.GatewayClient {
	return r.clients[r.defaultProvider]
}

func (r *Registry) Get(provider domain.Provider) (ports.GatewayClient, bool) {
	c, ok := r.clients[provider]
	return c, ok
}

// ProviderValidator checks the signature of one provider's notifications.
type ProviderValidator interface {
	IsValid(payload []byte, headers http.Header, query url.Values) bool
}

// Validators implements ports.SignatureValidator by dispatching on provider.
// A provider without a validator is always rejected.
type Validators map[domain.Provider]ProviderValidator

func (v Validators) IsValid(provider domain.Provider, payload []byte, headers http.Header, query url.Values) bool {
	pv, ok := v[provider]
	if !ok || pv == nil {
		return false
	}
	return pv.IsValid(payload, headers, query)
}
