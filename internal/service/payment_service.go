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

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	intentRepo     ports.PaymentIntentRepository
	oracle         ports.InspectionOracle
	gateways       ports.GatewayResolver
	pricing        *Pricing
	transactor     ports.DBTransactor
	metrics        ports.PaymentMetrics
	gatewayTimeout time.Duration
	log            zerolog.Logger
	now            func() time.Time
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	intentRepo ports.PaymentIntentRepository,
	oracle ports.InspectionOracle,
	gateways ports.GatewayResolver,
	pricing *Pricing,
	transactor ports.DBTransactor,
	metrics ports.PaymentMetrics,
	gatewayTimeout time.Duration,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		intentRepo:     intentRepo,
		oracle:         oracle,
		gateways:       gateways,
		pricing:        pricing,
		transactor:     transactor,
		metrics:        metrics,
		gatewayTimeout: gatewayTimeout,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// CreatePaymentForInspection opens a remote charge for the inspection's
// current billable units and records it as a PENDING intent.
// The latest-intent check and the insert run under a per-inspection lock
// so concurrent callers cannot both pass the duplicate guard.
func (s *PaymentServiceImpl) CreatePaymentForInspection(ctx context.Context, inspectionID, requesterID uuid.UUID) (*ports.PaymentAnswer, error) {
	if err := s.oracle.AssertCanPay(ctx, inspectionID, requesterID); err != nil {
		return nil, appErrorOr(err, "assert can pay")
	}

	units, err := s.oracle.CountBillableUnits(ctx, inspectionID)
	if err != nil {
		return nil, appErrorOr(err, "count billable units")
	}
	if units < 1 {
		return nil, apperror.ErrNothingToCharge()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.intentRepo.LockInspection(ctx, dbTx, inspectionID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock inspection: %w", err))
	}

	latest, err := s.intentRepo.GetLatestByInspectionTx(ctx, dbTx, inspectionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("latest intent: %w", err))
	}
	if latest != nil && latest.Status == domain.PaymentStatusPending {
		return nil, apperror.ErrPaymentInFlight()
	}

	prices := s.pricing.Snapshot()
	total, err := prices.Total(units)
	if err != nil {
		return nil, err
	}

	gw := s.gateways.Default()
	intentID := uuid.New()

	charge, err := s.createCharge(ctx, gw, ports.ChargeRequest{
		IntentID:     intentID,
		InspectionID: inspectionID,
		UnitCount:    units,
		TotalAmount:  total,
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("inspection_id", inspectionID.String()).
			Str("provider", string(gw.Provider())).
			Msg("gateway charge creation failed")
		return nil, apperror.ErrGateway(err)
	}

	now := s.now()
	intent := &domain.PaymentIntent{
		ID:                  intentID,
		InspectionID:        inspectionID,
		UnitCountSnapshot:   units,
		ReportFee:           prices.ReportFee,
		PricePerUnit:        prices.PricePerUnit,
		TotalAmount:         total,
		Provider:            charge.Provider,
		Status:              domain.PaymentStatusPending,
		ProviderChargeID:    &charge.ChargeID,
		ProviderCheckoutURL: &charge.CheckoutURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.intentRepo.Create(ctx, dbTx, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create intent: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.IntentCreated(intent.Provider)
	s.log.Info().
		Str("intent_id", intent.ID.String()).
		Str("inspection_id", inspectionID.String()).
		Int("unit_count", units).
		Str("total_amount", total.String()).
		Str("provider", string(intent.Provider)).
		Msg("payment intent created")

	return ports.NewPaymentAnswer(intent), nil
}

// GetLatestPayment returns the most recent intent for the inspection.
func (s *PaymentServiceImpl) GetLatestPayment(ctx context.Context, inspectionID, requesterID uuid.UUID) (*ports.PaymentAnswer, error) {
	if err := s.oracle.AssertCanPay(ctx, inspectionID, requesterID); err != nil {
		return nil, appErrorOr(err, "assert can pay")
	}

	latest, err := s.intentRepo.GetLatestByInspection(ctx, inspectionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("latest intent: %w", err))
	}
	if latest == nil {
		return nil, apperror.ErrNotFound("payment intent")
	}
	return ports.NewPaymentAnswer(latest), nil
}

func (s *PaymentServiceImpl) createCharge(ctx context.Context, gw ports.GatewayClient, req ports.ChargeRequest) (*ports.Charge, error) {
	if s.gatewayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.gatewayTimeout)
		defer cancel()
	}

	start := time.Now()
	charge, err := gw.CreateCharge(ctx, req)
	s.metrics.GatewayCall(gw.Provider(), "create_charge", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if charge == nil || charge.ChargeID == "" || charge.CheckoutURL == "" {
		return nil, errors.New("gateway returned no charge id or checkout url")
	}
	if charge.Provider == "" {
		charge.Provider = gw.Provider()
	}
	return charge, nil
}

// appErrorOr passes coded errors through and wraps everything else as SYS_001.
func appErrorOr(err error, op string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
