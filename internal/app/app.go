// Package app wires configuration, storage, gateways and services into a
// runnable billing server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"inspection-billing/config"
	apidocs "inspection-billing/docs/api"
	"inspection-billing/internal/adapter/gateway"
	"inspection-billing/internal/adapter/gateway/mercadopago"
	"inspection-billing/internal/adapter/gateway/stripe"
	"inspection-billing/internal/adapter/http/handler"
	"inspection-billing/internal/adapter/http/middleware"
	"inspection-billing/internal/adapter/storage/memory"
	"inspection-billing/internal/adapter/storage/postgres"
	redisStore "inspection-billing/internal/adapter/storage/redis"
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
	"inspection-billing/internal/observability"
	"inspection-billing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// App is the assembled service graph.
type App struct {
	Router     *gin.Engine
	Payments   *service.PaymentServiceImpl
	Reconciler *service.ReconcileServiceImpl
	Billing    *service.BillingServiceImpl
	Webhooks   ports.WebhookService
	Pricing    *service.Pricing
	Metrics    *observability.Metrics

	// Inspections is set only for the memory driver, where nothing else
	// owns inspection rows.
	Inspections *memory.InspectionOracle

	closers []func()
}

type storage struct {
	intents    ports.PaymentIntentRepository
	events     ports.PaymentEventRepository
	oracle     ports.InspectionOracle
	transactor ports.DBTransactor
	checkers   []ports.HealthChecker
}

// New builds the application from cfg. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	store, err := a.openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	var (
		cache     ports.EventCache
		rateStore middleware.RateLimitStore
	)
	checkers := store.checkers
	if cfg.Redis.Enabled {
		rdb, err := redisStore.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		cache = redisStore.NewEventCache(rdb)
		rateStore = redisStore.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStore.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("redis disabled: webhook dedup falls back to the event log and rate limiting is off")
	}

	registry, validators, err := newGateways(cfg)
	if err != nil {
		return nil, err
	}

	parser, err := newParser(cfg.Webhook.Parsers)
	if err != nil {
		return nil, err
	}

	reportFee, perUnit, err := cfg.Pricing.Amounts()
	if err != nil {
		return nil, err
	}
	a.Pricing = service.NewPricing(reportFee, perUnit)
	cfg.WatchPricing(func(p config.PricingConfig) {
		fee, unit, _ := p.Amounts()
		a.Pricing.Update(fee, unit)
		log.Info().Str("report_fee", fee.String()).Str("price_per_unit", unit.String()).Msg("pricing reloaded")
	}, func(err error) {
		log.Error().Err(err).Msg("pricing reload rejected, keeping previous prices")
	})

	a.Metrics = observability.NewMetrics()
	timeout := cfg.Gateway.Timeout

	a.Payments = service.NewPaymentService(store.intents, store.oracle, registry, a.Pricing, store.transactor, a.Metrics, timeout, log)
	a.Reconciler = service.NewReconcileService(store.intents, store.oracle, registry, store.transactor, a.Metrics, timeout, log)
	a.Billing = service.NewBillingService(store.intents, store.oracle)
	a.Webhooks = service.NewWebhookService(
		store.intents, store.events, registry, validators, parser,
		cache, cfg.Webhook.DedupTTL, timeout, store.transactor, a.Metrics, log,
	)

	a.Router = handler.SetupRouter(handler.RouterDeps{
		PaymentSvc:     a.Payments,
		ReconcileSvc:   a.Reconciler,
		BillingSvc:     a.Billing,
		WebhookSvc:     a.Webhooks,
		TokenSvc:       service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer),
		RateLimitStore: rateStore,
		WebhookLimit:   middleware.RateLimitRule{Limit: int64(cfg.Webhook.RateLimit), Window: cfg.Webhook.RateWindow},
		HealthCheckers: checkers,
		Metrics:        a.Metrics,
		MetricsHandler: a.Metrics.Handler(),
		OpenAPISpec:    apidocs.OpenAPI,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	ok = true
	return a, nil
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Database.Driver {
	case DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		return &storage{
			intents:    postgres.NewIntentRepo(pool),
			events:     postgres.NewEventRepo(pool),
			oracle:     postgres.NewInspectionOracle(pool),
			transactor: postgres.NewTransactor(pool),
			checkers:   []ports.HealthChecker{postgres.NewHealthCheck(pool)},
		}, nil
	case DriverMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		st := memory.NewStore()
		a.Inspections = memory.NewInspectionOracle(st)
		return &storage{
			intents:    memory.NewIntentRepo(st),
			events:     memory.NewEventRepo(st),
			oracle:     a.Inspections,
			transactor: memory.NewTransactor(st),
		}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func newGateways(cfg *config.Config) (*gateway.Registry, gateway.Validators, error) {
	defaultProvider, ok := domain.ParseProvider(cfg.Gateway.DefaultProvider)
	if !ok {
		return nil, nil, fmt.Errorf("gateway.default_provider: unknown provider %q", cfg.Gateway.DefaultProvider)
	}

	httpClient := &http.Client{Timeout: cfg.Gateway.Timeout}
	registry, err := gateway.NewRegistry(defaultProvider,
		mercadopago.NewClient(cfg.Gateway.MercadoPago, httpClient),
		stripe.NewClient(cfg.Gateway.Stripe, httpClient),
	)
	if err != nil {
		return nil, nil, err
	}

	validators := gateway.Validators{
		domain.ProviderMercadoPago: mercadopago.NewSignatureValidator(cfg.Webhook.MercadoPagoSecret),
		domain.ProviderStripe:      stripe.NewSignatureValidator(cfg.Webhook.StripeSecret),
	}
	return registry, validators, nil
}

func newParser(parsers map[string]config.ParserConfig) (*service.PathParser, error) {
	paths := make(map[domain.Provider]service.ParserPaths, len(parsers))
	for name, pc := range parsers {
		provider, ok := domain.ParseProvider(name)
		if !ok {
			return nil, fmt.Errorf("webhook.parsers: unknown provider %q", name)
		}
		paths[provider] = service.ParserPaths{
			EventIDPath:   pc.EventIDPath,
			ChargeIDPath:  pc.ChargeIDPath,
			StatusPath:    pc.StatusPath,
			ChargeIDQuery: pc.ChargeIDQuery,
		}
	}
	return service.NewPathParser(paths), nil
}
