package service

import (
	"context"
	"fmt"

	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
)

// BillingServiceImpl implements ports.BillingService.
type BillingServiceImpl struct {
	intentRepo ports.PaymentIntentRepository
	oracle     ports.InspectionOracle
}

// NewBillingService creates a new BillingServiceImpl.
func NewBillingService(intentRepo ports.PaymentIntentRepository, oracle ports.InspectionOracle) *BillingServiceImpl {
	return &BillingServiceImpl{intentRepo: intentRepo, oracle: oracle}
}

// AssertCanView allows billing reads to whoever may pay for the inspection.
func (s *BillingServiceImpl) AssertCanView(ctx context.Context, inspectionID, requesterID uuid.UUID) error {
	if err := s.oracle.AssertCanPay(ctx, inspectionID, requesterID); err != nil {
		return appErrorOr(err, "assert can view")
	}
	return nil
}

// IsPaid reports whether the latest intent for the inspection is PAID.
func (s *BillingServiceImpl) IsPaid(ctx context.Context, inspectionID uuid.UUID) (bool, error) {
	latest, err := s.latest(ctx, inspectionID)
	if err != nil {
		return false, err
	}
	return isPaid(latest), nil
}

// RequireCanGenerateFinalReport fails with PAY_001 unless the latest intent
// is PAID, and with PAY_005 when units changed after that payment.
func (s *BillingServiceImpl) RequireCanGenerateFinalReport(ctx context.Context, inspectionID uuid.UUID) error {
	latest, err := s.latest(ctx, inspectionID)
	if err != nil {
		return err
	}
	if !isPaid(latest) {
		return apperror.ErrPaymentRequired()
	}

	units, err := s.oracle.CountBillableUnits(ctx, inspectionID)
	if err != nil {
		return appErrorOr(err, "count billable units")
	}
	if units != latest.UnitCountSnapshot {
		return apperror.ErrUnitCountChanged()
	}
	return nil
}

// GetBillingSummary reports payment state without failing on it.
func (s *BillingServiceImpl) GetBillingSummary(ctx context.Context, inspectionID uuid.UUID) (*domain.BillingSummary, error) {
	latest, err := s.latest(ctx, inspectionID)
	if err != nil {
		return nil, err
	}

	units, err := s.oracle.CountBillableUnits(ctx, inspectionID)
	if err != nil {
		return nil, appErrorOr(err, "count billable units")
	}

	summary := &domain.BillingSummary{CurrentUnitCount: units}
	if isPaid(latest) {
		snapshot := latest.UnitCountSnapshot
		summary.Paid = true
		summary.PaidSnapshotUnitCount = &snapshot
		summary.SnapshotMatches = snapshot == units
	}
	return summary, nil
}

func (s *BillingServiceImpl) latest(ctx context.Context, inspectionID uuid.UUID) (*domain.PaymentIntent, error) {
	latest, err := s.intentRepo.GetLatestByInspection(ctx, inspectionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("latest intent: %w", err))
	}
	return latest, nil
}

func isPaid(p *domain.PaymentIntent) bool {
	return p != nil && p.Status == domain.PaymentStatusPaid
}
