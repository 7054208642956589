package postgres

import (
	"context"
	"fmt"

	"inspection-billing/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.PaymentEventRepository (append-only).
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Exists reports whether (provider, eventID) has been recorded.
func (r *EventRepo) Exists(ctx context.Context, provider domain.Provider, eventID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payment_events WHERE provider = $1 AND provider_event_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, string(provider), eventID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check payment event: %w", err)
	}
	return exists, nil
}

// Append records the event. The unique index on (provider, provider_event_id)
// makes a concurrent redelivery insert nothing, reported as false.
func (r *EventRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.PaymentEvent) (bool, error) {
	query := `INSERT INTO payment_events (id, provider, provider_event_id, provider_charge_id, status, raw_payload, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (provider, provider_event_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		e.ID, string(e.Provider), e.ProviderEventID, e.ProviderChargeID,
		string(e.Status), e.RawPayload, e.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert payment event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
