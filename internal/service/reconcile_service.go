package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reconcile outcomes.
const (
	reconcileTerminal  = "terminal"
	reconcileChanged   = "changed"
	reconcileUnchanged = "unchanged"
	reconcileFailed    = "failed"
)

// ReconcileServiceImpl implements ports.ReconcileService.
type ReconcileServiceImpl struct {
	intentRepo     ports.PaymentIntentRepository
	oracle         ports.InspectionOracle
	gateways       ports.GatewayResolver
	transactor     ports.DBTransactor
	metrics        ports.PaymentMetrics
	gatewayTimeout time.Duration
	log            zerolog.Logger
	now            func() time.Time
}

// NewReconcileService creates a new ReconcileServiceImpl.
func NewReconcileService(
	intentRepo ports.PaymentIntentRepository,
	oracle ports.InspectionOracle,
	gateways ports.GatewayResolver,
	transactor ports.DBTransactor,
	metrics ports.PaymentMetrics,
	gatewayTimeout time.Duration,
	log zerolog.Logger,
) *ReconcileServiceImpl {
	return &ReconcileServiceImpl{
		intentRepo:     intentRepo,
		oracle:         oracle,
		gateways:       gateways,
		transactor:     transactor,
		metrics:        metrics,
		gatewayTimeout: gatewayTimeout,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile polls the gateway for a non-terminal intent and applies the result.
// Terminal intents are returned untouched without a remote call.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, intentID uuid.UUID) (*ports.PaymentAnswer, error) {
	intent, _, err := s.reconcile(ctx, intentID)
	if err != nil {
		return nil, err
	}
	return ports.NewPaymentAnswer(intent), nil
}

// ReconcileAs checks that requesterID may pay for the intent's inspection,
// then reconciles it.
func (s *ReconcileServiceImpl) ReconcileAs(ctx context.Context, intentID, requesterID uuid.UUID) (*ports.PaymentAnswer, error) {
	intent, err := s.intentRepo.GetByID(ctx, intentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get intent: %w", err))
	}
	if intent == nil {
		return nil, apperror.ErrNotFound("payment intent")
	}
	if err := s.oracle.AssertCanPay(ctx, intent.InspectionID, requesterID); err != nil {
		return nil, appErrorOr(err, "assert can pay")
	}
	return s.Reconcile(ctx, intentID)
}

func (s *ReconcileServiceImpl) reconcile(ctx context.Context, intentID uuid.UUID) (*domain.PaymentIntent, bool, error) {
	intent, err := s.intentRepo.GetByID(ctx, intentID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("get intent: %w", err))
	}
	if intent == nil {
		return nil, false, apperror.ErrNotFound("payment intent")
	}

	if intent.Status.IsTerminal() {
		s.metrics.Reconciled(reconcileTerminal)
		return intent, false, nil
	}

	chargeID := intent.ChargeID()
	if chargeID == "" {
		s.metrics.Reconciled(reconcileFailed)
		return nil, false, apperror.ErrMissingChargeID()
	}

	gw, ok := s.gateways.Get(intent.Provider)
	if !ok {
		s.metrics.Reconciled(reconcileFailed)
		return nil, false, apperror.ErrGateway(fmt.Errorf("no client for provider %s", intent.Provider))
	}

	// Remote call stays outside the transaction so a slow gateway never holds a row lock.
	remote, err := s.fetchStatus(ctx, gw, chargeID)
	if err != nil {
		s.metrics.Reconciled(reconcileFailed)
		return nil, false, apperror.ErrGateway(err)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.intentRepo.GetByIDForUpdate(ctx, dbTx, intentID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("lock intent: %w", err))
	}
	if locked == nil {
		return nil, false, apperror.ErrNotFound("payment intent")
	}

	// A webhook may have settled the intent while we were polling.
	if locked.Status.IsTerminal() {
		s.metrics.Reconciled(reconcileTerminal)
		return locked, false, nil
	}

	changed := locked.ApplyStatus(remote, s.now())
	if changed {
		if err := s.intentRepo.UpdateStatus(ctx, dbTx, locked); err != nil {
			return nil, false, apperror.InternalError(fmt.Errorf("update intent status: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	outcome := reconcileUnchanged
	if changed {
		outcome = reconcileChanged
	}
	s.metrics.Reconciled(outcome)
	s.log.Info().
		Str("intent_id", intentID.String()).
		Str("remote_status", string(remote)).
		Str("status", string(locked.Status)).
		Bool("changed", changed).
		Msg("payment intent reconciled")

	return locked, changed, nil
}

func (s *ReconcileServiceImpl) fetchStatus(ctx context.Context, gw ports.GatewayClient, chargeID string) (domain.PaymentStatus, error) {
	if s.gatewayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.gatewayTimeout)
		defer cancel()
	}

	start := time.Now()
	status, err := gw.GetStatus(ctx, chargeID)
	s.metrics.GatewayCall(gw.Provider(), "get_status", time.Since(start), err)
	return status, err
}

// SweepStale reconciles up to limit PENDING intents older than minAge.
// Per-intent failures are counted and logged; the sweep keeps going.
func (s *ReconcileServiceImpl) SweepStale(ctx context.Context, minAge time.Duration, limit int) (*ports.SweepResult, error) {
	if limit <= 0 {
		return nil, apperror.ErrInvalidArgument("limit must be positive")
	}

	now := s.now()
	stale, err := s.intentRepo.ListStale(ctx, now.Add(-minAge), limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list stale intents: %w", err))
	}

	res := &ports.SweepResult{}
	for i := range stale {
		intent := &stale[i]
		if !intent.ShouldReconcile(minAge, now) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Scanned++

		_, changed, err := s.reconcile(ctx, intent.ID)
		if err != nil {
			res.Failed++
			lvl := s.log.Warn()
			if !isExpected(err) {
				lvl = s.log.Error()
			}
			lvl.Err(err).Str("intent_id", intent.ID.String()).Msg("stale intent reconcile failed")
			continue
		}
		if changed {
			res.Changed++
		}
	}

	s.log.Info().
		Int("scanned", res.Scanned).
		Int("changed", res.Changed).
		Int("failed", res.Failed).
		Msg("stale sweep finished")

	return res, nil
}

// isExpected reports whether err is a business outcome rather than a fault.
func isExpected(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus < 500
}
