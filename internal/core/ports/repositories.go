package ports

import (
	"context"
	"time"

	"inspection-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentIntentRepository defines persistence operations for payment intents.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type PaymentIntentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, intent *domain.PaymentIntent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentIntent, error)
	// GetLatestByInspection returns the most recently created intent, or nil.
	GetLatestByInspection(ctx context.Context, inspectionID uuid.UUID) (*domain.PaymentIntent, error)
	GetLatestByInspectionTx(ctx context.Context, tx pgx.Tx, inspectionID uuid.UUID) (*domain.PaymentIntent, error)
	// GetByProviderChargeForUpdate returns nil when no intent carries the charge id.
	GetByProviderChargeForUpdate(ctx context.Context, tx pgx.Tx, provider domain.Provider, chargeID string) (*domain.PaymentIntent, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, intent *domain.PaymentIntent) error
	// LockInspection serializes intent creation per inspection until tx ends.
	LockInspection(ctx context.Context, tx pgx.Tx, inspectionID uuid.UUID) error
	// ListStale returns PENDING intents created before olderThan, oldest first.
	ListStale(ctx context.Context, olderThan time.Time, limit int) ([]domain.PaymentIntent, error)
}

// PaymentEventRepository defines the append-only webhook event log.
type PaymentEventRepository interface {
	Exists(ctx context.Context, provider domain.Provider, eventID string) (bool, error)
	// Append reports false when (provider, eventID) was already recorded.
	Append(ctx context.Context, tx pgx.Tx, event *domain.PaymentEvent) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
