package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/vportnov/airport-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows maps to not found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name: "email unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			},
			expected: store.ErrEmailExists,
		},
		{
			name: "seat unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "tickets_flight_id_row_seat_key",
			},
			expected: store.ErrSeatTaken,
		},
		{
			name: "other unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "some_other_key",
			},
			expected: store.ErrDuplicate,
		},
		{
			name: "foreign key violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.ForeignKeyViolation,
				ConstraintName: "flights_route_id_fkey",
			},
			expected: store.ErrInvalidEntity,
		},
		{
			name: "check violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.CheckViolation,
				ConstraintName: "routes_source_destination_check",
			},
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tt.err)
			if tt.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("connection reset")
	assert.Equal(t, err, MapError(err))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(store.ErrFlightNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", store.ErrNotFound)))
	assert.False(t, IsNotFoundError(errors.New("some other error")))
}
