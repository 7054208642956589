// Package observability exposes Prometheus metrics for the billing flows.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"inspection-billing/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inspection_billing"

// Metrics implements ports.PaymentMetrics on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	intentsCreated *prometheus.CounterVec
	webhooks       *prometheus.CounterVec
	reconciles     *prometheus.CounterVec
	gatewayCalls   *prometheus.CounterVec
	gatewayLatency *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors, including Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		intentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_intents_created_total",
			Help:      "Payment intents created, by provider.",
		}, []string{"provider"}),
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_processed_total",
			Help:      "Inbound webhook notifications, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		reconciles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Pull-based reconciliations, by outcome.",
		}, []string{"outcome"}),
		gatewayCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_calls_total",
			Help:      "Gateway API calls, by provider, operation and result.",
		}, []string{"provider", "op", "result"}),
		gatewayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_call_duration_seconds",
			Help:      "Gateway API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "op"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"method", "route", "code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.intentsCreated,
		m.webhooks,
		m.reconciles,
		m.gatewayCalls,
		m.gatewayLatency,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) IntentCreated(provider domain.Provider) {
	m.intentsCreated.WithLabelValues(string(provider)).Inc()
}

func (m *Metrics) WebhookProcessed(provider domain.Provider, outcome string) {
	m.webhooks.WithLabelValues(string(provider), outcome).Inc()
}

func (m *Metrics) Reconciled(outcome string) {
	m.reconciles.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GatewayCall(provider domain.Provider, op string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.gatewayCalls.WithLabelValues(string(provider), op, result).Inc()
	m.gatewayLatency.WithLabelValues(string(provider), op).Observe(d.Seconds())
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Nop discards everything.
type Nop struct{}

func (Nop) IntentCreated(domain.Provider)                             {}
func (Nop) WebhookProcessed(domain.Provider, string)                  {}
func (Nop) Reconciled(string)                                         {}
func (Nop) GatewayCall(domain.Provider, string, time.Duration, error) {}
func (Nop) ObserveHTTP(string, string, int, time.Duration)            {}
