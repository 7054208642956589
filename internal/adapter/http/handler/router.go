package handler

import (
	"net/http"
	"time"

	"inspection-billing/internal/adapter/http/middleware"
	"inspection-billing/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	ReconcileSvc   ports.ReconcileService
	BillingSvc     ports.BillingService
	WebhookSvc     ports.WebhookService
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	WebhookLimit   middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        middleware.HTTPObserver // nil = no HTTP metrics
	MetricsHandler http.Handler            // served at /metrics when set
	OpenAPISpec    []byte
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec(deps.OpenAPISpec))
	}

	v1 := r.Group("/api/v1")

	// --- Gateway notifications (signature-authenticated) ---
	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	webhookMW := []gin.HandlerFunc{}
	if deps.RateLimitStore != nil && deps.WebhookLimit.Limit > 0 {
		window := deps.WebhookLimit.Window
		if window <= 0 {
			window = time.Minute
		}
		rule := middleware.RateLimitRule{Limit: deps.WebhookLimit.Limit, Window: window}
		webhookMW = append(webhookMW, middleware.RateLimiter(deps.RateLimitStore, "webhooks", rule, deps.Logger))
	}
	v1.POST("/webhooks/:provider", append(webhookMW, webhookHandler.Receive)...)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.ReconcileSvc)
	billingHandler := NewBillingHandler(deps.BillingSvc)

	inspections := v1.Group("/inspections/:inspection_id", jwtAuth)
	{
		inspections.POST("/payments", paymentHandler.CreatePayment)
		inspections.GET("/payments/latest", paymentHandler.GetLatestPayment)
		inspections.GET("/billing", billingHandler.GetSummary)
		inspections.GET("/billing/final-report", billingHandler.FinalReportGate)
	}

	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("/:intent_id/reconcile", paymentHandler.Reconcile)
	}

	return r
}
