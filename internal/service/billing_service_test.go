package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports/mocks"
	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupBillingService(t *testing.T) (*BillingServiceImpl, *mocks.MockPaymentIntentRepository, *mocks.MockInspectionOracle) {
	ctrl := gomock.NewController(t)
	intentRepo := mocks.NewMockPaymentIntentRepository(ctrl)
	oracle := mocks.NewMockInspectionOracle(ctrl)
	return NewBillingService(intentRepo, oracle), intentRepo, oracle
}

func paidIntent(inspectionID uuid.UUID, units int) *domain.PaymentIntent {
	now := time.Now()
	return &domain.PaymentIntent{
		ID: uuid.New(), InspectionID: inspectionID, UnitCountSnapshot: units,
		Status: domain.PaymentStatusPaid, PaidAt: &now,
	}
}

func TestBillingService_AssertCanView(t *testing.T) {
	ctx := context.Background()
	inspectionID, requester := uuid.New(), uuid.New()

	t.Run("payer", func(t *testing.T) {
		svc, _, oracle := setupBillingService(t)
		oracle.EXPECT().AssertCanPay(ctx, inspectionID, requester).Return(nil)
		assert.NoError(t, svc.AssertCanView(ctx, inspectionID, requester))
	})

	t.Run("stranger", func(t *testing.T) {
		svc, _, oracle := setupBillingService(t)
		oracle.EXPECT().AssertCanPay(ctx, inspectionID, requester).Return(apperror.ErrAuthorizationDenied())
		assertAppError(t, svc.AssertCanView(ctx, inspectionID, requester), "AUTH_002")
	})

	t.Run("oracle failure", func(t *testing.T) {
		svc, _, oracle := setupBillingService(t)
		oracle.EXPECT().AssertCanPay(ctx, inspectionID, requester).Return(errors.New("db down"))
		assertAppError(t, svc.AssertCanView(ctx, inspectionID, requester), "SYS_001")
	})
}

func TestBillingService_IsPaid(t *testing.T) {
	tests := []struct {
		name   string
		latest *domain.PaymentIntent
		want   bool
	}{
		{"no intent", nil, false},
		{"pending", &domain.PaymentIntent{Status: domain.PaymentStatusPending}, false},
		{"refunded", &domain.PaymentIntent{Status: domain.PaymentStatusRefunded}, false},
		{"paid", &domain.PaymentIntent{Status: domain.PaymentStatusPaid}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := setupBillingService(t)
			id := uuid.New()
			repo.EXPECT().GetLatestByInspection(gomock.Any(), id).Return(tt.latest, nil)

			paid, err := svc.IsPaid(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, paid)
		})
	}
}

func TestBillingService_RequireCanGenerateFinalReport(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid", func(t *testing.T) {
		svc, repo, _ := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(&domain.PaymentIntent{Status: domain.PaymentStatusPending}, nil)

		assertAppError(t, svc.RequireCanGenerateFinalReport(ctx, id), "PAY_001")
	})

	t.Run("no intent", func(t *testing.T) {
		svc, repo, _ := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(nil, nil)

		assertAppError(t, svc.RequireCanGenerateFinalReport(ctx, id), "PAY_001")
	})

	t.Run("paid and matching", func(t *testing.T) {
		svc, repo, oracle := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(paidIntent(id, 2), nil)
		oracle.EXPECT().CountBillableUnits(ctx, id).Return(2, nil)

		assert.NoError(t, svc.RequireCanGenerateFinalReport(ctx, id))
	})

	t.Run("units added after payment", func(t *testing.T) {
		svc, repo, oracle := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(paidIntent(id, 2), nil)
		oracle.EXPECT().CountBillableUnits(ctx, id).Return(3, nil)

		assertAppError(t, svc.RequireCanGenerateFinalReport(ctx, id), "PAY_005")
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo, _ := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(nil, errors.New("db down"))

		assertAppError(t, svc.RequireCanGenerateFinalReport(ctx, id), "SYS_001")
	})
}

func TestBillingService_GetBillingSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("paid snapshot drifted", func(t *testing.T) {
		svc, repo, oracle := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(paidIntent(id, 2), nil)
		oracle.EXPECT().CountBillableUnits(ctx, id).Return(3, nil)

		s, err := svc.GetBillingSummary(ctx, id)
		require.NoError(t, err)
		assert.True(t, s.Paid)
		assert.False(t, s.SnapshotMatches)
		assert.Equal(t, 3, s.CurrentUnitCount)
		require.NotNil(t, s.PaidSnapshotUnitCount)
		assert.Equal(t, 2, *s.PaidSnapshotUnitCount)
	})

	t.Run("never paid", func(t *testing.T) {
		svc, repo, oracle := setupBillingService(t)
		id := uuid.New()
		repo.EXPECT().GetLatestByInspection(ctx, id).Return(nil, nil)
		oracle.EXPECT().CountBillableUnits(ctx, id).Return(0, nil)

		s, err := svc.GetBillingSummary(ctx, id)
		require.NoError(t, err)
		assert.False(t, s.Paid)
		assert.False(t, s.SnapshotMatches)
		assert.Nil(t, s.PaidSnapshotUnitCount)
	})
}
