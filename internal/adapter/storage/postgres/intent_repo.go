package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inspection-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const intentColumns = `id, inspection_id, unit_count_snapshot, report_fee_cents, price_per_unit_cents,
		total_amount_cents, provider, status, provider_charge_id, provider_checkout_url,
		created_at, paid_at, updated_at`

// IntentRepo implements ports.PaymentIntentRepository.
type IntentRepo struct {
	pool Pool
}

// NewIntentRepo creates a new IntentRepo.
func NewIntentRepo(pool Pool) *IntentRepo {
	return &IntentRepo{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIntent(row rowScanner) (*domain.PaymentIntent, error) {
	var (
		p                         domain.PaymentIntent
		reportFee, perUnit, total int64
		provider, status          string
		chargeID, checkoutURL     *string
		paidAt                    *time.Time
	)
	err := row.Scan(
		&p.ID, &p.InspectionID, &p.UnitCountSnapshot, &reportFee, &perUnit,
		&total, &provider, &status, &chargeID, &checkoutURL,
		&p.CreatedAt, &paidAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ReportFee = domain.Money(reportFee)
	p.PricePerUnit = domain.Money(perUnit)
	p.TotalAmount = domain.Money(total)
	p.Provider = domain.Provider(provider)
	p.Status = domain.PaymentStatus(status)
	p.ProviderChargeID = chargeID
	p.ProviderCheckoutURL = checkoutURL
	p.PaidAt = paidAt
	return &p, nil
}

// Create inserts a new intent within a transaction.
func (r *IntentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PaymentIntent) error {
	query := `INSERT INTO payment_intents (` + intentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.InspectionID, p.UnitCountSnapshot, p.ReportFee.Cents(), p.PricePerUnit.Cents(),
		p.TotalAmount.Cents(), string(p.Provider), string(p.Status), p.ProviderChargeID, p.ProviderCheckoutURL,
		p.CreatedAt, p.PaidAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment intent: %w", err)
	}
	return nil
}

// GetByID fetches an intent by its UUID (without locking).
func (r *IntentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE id = $1`

	p, err := scanIntent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment intent by id: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches an intent by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *IntentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE id = $1 FOR UPDATE`

	p, err := scanIntent(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment intent for update: %w", err)
	}
	return p, nil
}

// GetLatestByInspection returns the most recently created intent.
func (r *IntentRepo) GetLatestByInspection(ctx context.Context, inspectionID uuid.UUID) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents
		WHERE inspection_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`

	p, err := scanIntent(r.pool.QueryRow(ctx, query, inspectionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest payment intent: %w", err)
	}
	return p, nil
}

// GetLatestByInspectionTx is GetLatestByInspection inside tx, so it observes
// rows written by transactions that held the inspection lock before us.
func (r *IntentRepo) GetLatestByInspectionTx(ctx context.Context, tx pgx.Tx, inspectionID uuid.UUID) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents
		WHERE inspection_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`

	p, err := scanIntent(tx.QueryRow(ctx, query, inspectionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest payment intent in tx: %w", err)
	}
	return p, nil
}

// GetByProviderChargeForUpdate locks the intent carrying chargeID.
func (r *IntentRepo) GetByProviderChargeForUpdate(ctx context.Context, tx pgx.Tx, provider domain.Provider, chargeID string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents
		WHERE provider = $1 AND provider_charge_id = $2 FOR UPDATE`

	p, err := scanIntent(tx.QueryRow(ctx, query, string(provider), chargeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment intent by charge: %w", err)
	}
	return p, nil
}

// UpdateStatus persists status, paid_at and updated_at.
func (r *IntentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, p *domain.PaymentIntent) error {
	query := `UPDATE payment_intents SET status = $1, paid_at = $2, updated_at = $3 WHERE id = $4`

	tag, err := tx.Exec(ctx, query, string(p.Status), p.PaidAt, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update payment intent status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment intent not found: %s", p.ID)
	}
	return nil
}

// LockInspection takes a transaction-scoped advisory lock keyed on the
// inspection id. It is released on commit or rollback.
func (r *IntentRepo) LockInspection(ctx context.Context, tx pgx.Tx, inspectionID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, inspectionID.String())
	if err != nil {
		return fmt.Errorf("lock inspection: %w", err)
	}
	return nil
}

// ListStale returns PENDING intents created before olderThan, oldest first.
func (r *IntentRepo) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, string(domain.PaymentStatusPending), olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale payment intents: %w", err)
	}
	defer rows.Close()

	var intents []domain.PaymentIntent
	for rows.Next() {
		p, err := scanIntent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stale payment intent: %w", err)
		}
		intents = append(intents, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale payment intents: %w", err)
	}
	return intents, nil
}
