package postgres

import (
	"context"
	"testing"

	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectionOracle_CountBillableUnits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	oracle := NewInspectionOracle(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT COUNT\\(m.id\\) FILTER").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	units, err := oracle.CountBillableUnits(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, units)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectionOracle_CountBillableUnits_UnknownInspection(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	oracle := NewInspectionOracle(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}))

	_, err = oracle.CountBillableUnits(context.Background(), id)
	assert.Equal(t, "PAY_004", apperror.CodeOf(err))
}

func TestInspectionOracle_AssertCanPay(t *testing.T) {
	owner := uuid.New()
	tests := []struct {
		name      string
		requester uuid.UUID
		wantCode  string
	}{
		{"owner may pay", owner, ""},
		{"stranger is denied", uuid.New(), "AUTH_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			id := uuid.New()
			mock.ExpectQuery("SELECT owner_id FROM inspections").
				WithArgs(id).
				WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow(owner))

			err = NewInspectionOracle(mock).AssertCanPay(context.Background(), id, tt.requester)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
