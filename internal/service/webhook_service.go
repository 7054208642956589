package service

import (
	"context"
	"fmt"
	"time"

	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// webhookService implements ports.WebhookService.
type webhookService struct {
	intentRepo ports.PaymentIntentRepository
	eventRepo  ports.PaymentEventRepository
	gateways   ports.GatewayResolver
	validator  ports.SignatureValidator
	parser     ports.WebhookParser
	cache      ports.EventCache // optional
	dedupTTL   time.Duration
	timeout    time.Duration
	transactor ports.DBTransactor
	metrics    ports.PaymentMetrics
	log        zerolog.Logger
	now        func() time.Time
}

// NewWebhookService creates a new webhook ingestor. cache may be nil.
// gatewayTimeout bounds the read-back of each notified charge.
func NewWebhookService(
	intentRepo ports.PaymentIntentRepository,
	eventRepo ports.PaymentEventRepository,
	gateways ports.GatewayResolver,
	validator ports.SignatureValidator,
	parser ports.WebhookParser,
	cache ports.EventCache,
	dedupTTL time.Duration,
	gatewayTimeout time.Duration,
	transactor ports.DBTransactor,
	metrics ports.PaymentMetrics,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		intentRepo: intentRepo,
		eventRepo:  eventRepo,
		gateways:   gateways,
		validator:  validator,
		parser:     parser,
		cache:      cache,
		dedupTTL:   dedupTTL,
		timeout:    gatewayTimeout,
		transactor: transactor,
		metrics:    metrics,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// HandleNotification authenticates, records and applies one notification.
// Duplicates and notifications for unknown charges succeed without effect.
// A rejected notification writes nothing.
//
// The notification only names a charge. Its status is read back from the
// gateway, so a body that claims a status is never trusted. If the read-back
// fails nothing is written and the gateway is expected to redeliver.
func (s *webhookService) HandleNotification(ctx context.Context, req ports.WebhookRequest) (*ports.WebhookResult, error) {
	gw, ok := s.gateways.Get(req.Provider)
	if !ok {
		return nil, apperror.ErrUnknownProvider(string(req.Provider))
	}

	if !s.validator.IsValid(req.Provider, req.Payload, req.Headers, req.Query) {
		s.metrics.WebhookProcessed(req.Provider, ports.WebhookRejected)
		s.log.Warn().Str("provider", string(req.Provider)).Msg("webhook signature rejected")
		return nil, apperror.ErrInvalidWebhookSignature()
	}

	parsed, err := s.parser.Parse(req.Provider, req.Payload, req.Query)
	if err != nil {
		s.metrics.WebhookProcessed(req.Provider, ports.WebhookRejected)
		s.log.Warn().Err(err).Str("provider", string(req.Provider)).Msg("webhook payload rejected")
		return nil, apperror.ErrInvalidWebhookPayload(err)
	}

	logger := s.log.With().
		Str("provider", string(req.Provider)).
		Str("event_id", parsed.EventID).
		Str("charge_id", parsed.ChargeID).
		Logger()

	// Layer 1: Redis dedup check
	if s.cache != nil {
		seen, err := s.cache.Seen(ctx, req.Provider, parsed.EventID)
		if err != nil {
			logger.Warn().Err(err).Msg("redis dedup check failed, falling through to DB")
		}
		if seen {
			return s.duplicate(req.Provider, parsed.EventID, logger), nil
		}
	}

	// Layer 2: DB dedup check
	exists, err := s.eventRepo.Exists(ctx, req.Provider, parsed.EventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("event exists: %w", err))
	}
	if exists {
		s.markSeen(ctx, req.Provider, parsed.EventID, logger)
		return s.duplicate(req.Provider, parsed.EventID, logger), nil
	}

	var state *ports.ChargeState
	if parsed.ChargeID != "" {
		state, err = s.resolve(ctx, gw, parsed.ChargeID)
		if err != nil {
			logger.Error().Err(err).Msg("webhook charge read-back failed")
			return nil, apperror.ErrGateway(err)
		}
	}

	status := domain.PaymentStatusPending
	if state != nil {
		status = state.Status
	}

	now := s.now()
	event := &domain.PaymentEvent{
		ID:              uuid.New(),
		Provider:        req.Provider,
		ProviderEventID: parsed.EventID,
		Status:          status,
		RawPayload:      req.Payload,
		ReceivedAt:      now,
	}
	if parsed.ChargeID != "" {
		event.ProviderChargeID = &parsed.ChargeID
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	inserted, err := s.eventRepo.Append(ctx, dbTx, event)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	if !inserted {
		// Lost the race against a concurrent delivery of the same event.
		return s.duplicate(req.Provider, parsed.EventID, logger), nil
	}

	result := &ports.WebhookResult{Outcome: ports.WebhookUnmatched, EventID: parsed.EventID}

	if state != nil {
		intent, err := s.findIntent(ctx, dbTx, req.Provider, state)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if intent != nil {
			result.IntentID = &intent.ID
			result.Outcome = ports.WebhookUnchanged
			if intent.ApplyStatus(status, now) {
				if err := s.intentRepo.UpdateStatus(ctx, dbTx, intent); err != nil {
					return nil, apperror.InternalError(fmt.Errorf("update intent status: %w", err))
				}
				result.Outcome = ports.WebhookApplied
			}
			result.Status = intent.Status
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.markSeen(ctx, req.Provider, parsed.EventID, logger)
	s.metrics.WebhookProcessed(req.Provider, result.Outcome)

	ev := logger.Info().Str("outcome", result.Outcome).Str("status", string(status))
	if result.IntentID != nil {
		ev = ev.Str("intent_id", result.IntentID.String())
	}
	ev.Msg("webhook processed")

	return result, nil
}

func (s *webhookService) resolve(ctx context.Context, gw ports.GatewayClient, ref string) (*ports.ChargeState, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	state, err := gw.ResolveNotification(ctx, ref)
	s.metrics.GatewayCall(gw.Provider(), "resolve_notification", time.Since(start), err)
	return state, err
}

// findIntent locks the intent the gateway attributes the charge to. An
// intent of another provider, or one holding a different charge id, is not
// a match.
func (s *webhookService) findIntent(ctx context.Context, tx pgx.Tx, provider domain.Provider, state *ports.ChargeState) (*domain.PaymentIntent, error) {
	if state.IntentID == uuid.Nil {
		if state.ChargeID == "" {
			return nil, nil
		}
		intent, err := s.intentRepo.GetByProviderChargeForUpdate(ctx, tx, provider, state.ChargeID)
		if err != nil {
			return nil, fmt.Errorf("find intent by charge: %w", err)
		}
		return intent, nil
	}

	intent, err := s.intentRepo.GetByIDForUpdate(ctx, tx, state.IntentID)
	if err != nil {
		return nil, fmt.Errorf("find intent by reference: %w", err)
	}
	if intent == nil || intent.Provider != provider {
		return nil, nil
	}
	if state.ChargeID != "" && intent.ChargeID() != state.ChargeID {
		return nil, nil
	}
	return intent, nil
}

func (s *webhookService) duplicate(provider domain.Provider, eventID string, logger zerolog.Logger) *ports.WebhookResult {
	s.metrics.WebhookProcessed(provider, ports.WebhookDuplicate)
	logger.Debug().Msg("duplicate webhook ignored")
	return &ports.WebhookResult{Outcome: ports.WebhookDuplicate, EventID: eventID}
}

// markSeen is best-effort; the event log stays authoritative.
func (s *webhookService) markSeen(ctx context.Context, provider domain.Provider, eventID string, logger zerolog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkSeen(ctx, provider, eventID, s.dedupTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache webhook event in redis")
	}
}
