package memory

import (
	"context"

	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
)

type inspectionRow struct {
	ownerID uuid.UUID
	units   int
}

// InspectionOracle implements ports.InspectionOracle from seeded rows.
type InspectionOracle struct {
	store *Store
}

// NewInspectionOracle creates an oracle over store.
func NewInspectionOracle(store *Store) *InspectionOracle {
	return &InspectionOracle{store: store}
}

// Put creates or replaces an inspection.
func (o *InspectionOracle) Put(inspectionID, ownerID uuid.UUID, units int) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()
	o.store.inspections[inspectionID.String()] = &inspectionRow{ownerID: ownerID, units: units}
}

// SetUnits changes the billable unit count of an existing inspection.
func (o *InspectionOracle) SetUnits(inspectionID uuid.UUID, units int) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()
	if row, ok := o.store.inspections[inspectionID.String()]; ok {
		row.units = units
	}
}

func (o *InspectionOracle) CountBillableUnits(_ context.Context, inspectionID uuid.UUID) (int, error) {
	o.store.mu.RLock()
	defer o.store.mu.RUnlock()
	row, ok := o.store.inspections[inspectionID.String()]
	if !ok {
		return 0, apperror.ErrNotFound("inspection")
	}
	return row.units, nil
}

func (o *InspectionOracle) AssertCanPay(_ context.Context, inspectionID, requesterID uuid.UUID) error {
	o.store.mu.RLock()
	defer o.store.mu.RUnlock()
	row, ok := o.store.inspections[inspectionID.String()]
	if !ok {
		return apperror.ErrNotFound("inspection")
	}
	if row.ownerID != requesterID {
		return apperror.ErrAuthorizationDenied()
	}
	return nil
}
