package postgres

import (
	"context"
	"errors"
	"fmt"

	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InspectionOracle implements ports.InspectionOracle against the inspection
// tables. Those tables are owned by the inspection service; billing reads them.
type InspectionOracle struct {
	pool Pool
}

// NewInspectionOracle creates a new InspectionOracle.
func NewInspectionOracle(pool Pool) *InspectionOracle {
	return &InspectionOracle{pool: pool}
}

// CountBillableUnits counts the billable machines of an inspection.
func (o *InspectionOracle) CountBillableUnits(ctx context.Context, inspectionID uuid.UUID) (int, error) {
	query := `SELECT COUNT(m.id) FILTER (WHERE m.billable)
		FROM inspections i
		LEFT JOIN inspection_machines m ON m.inspection_id = i.id
		WHERE i.id = $1
		GROUP BY i.id`

	var units int64
	err := o.pool.QueryRow(ctx, query, inspectionID).Scan(&units)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.ErrNotFound("inspection")
		}
		return 0, fmt.Errorf("count billable units: %w", err)
	}
	return int(units), nil
}

// AssertCanPay allows only the inspection owner to pay.
func (o *InspectionOracle) AssertCanPay(ctx context.Context, inspectionID, requesterID uuid.UUID) error {
	query := `SELECT owner_id FROM inspections WHERE id = $1`

	var ownerID uuid.UUID
	err := o.pool.QueryRow(ctx, query, inspectionID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.ErrNotFound("inspection")
		}
		return fmt.Errorf("load inspection owner: %w", err)
	}
	if ownerID != requesterID {
		return apperror.ErrAuthorizationDenied()
	}
	return nil
}
