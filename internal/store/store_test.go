package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vportnov/airport-api/internal/store"
)

// TestErrorDefinitions ensures the sentinel errors wrap their generic
// counterparts so callers can match with errors.Is at either level.
func TestErrorDefinitions(t *testing.T) {
	t.Parallel()

	notFoundErrs := []error{
		store.ErrUserNotFound,
		store.ErrCrewNotFound,
		store.ErrAirportNotFound,
		store.ErrRouteNotFound,
		store.ErrAirplaneTypeNotFound,
		store.ErrAirplaneNotFound,
		store.ErrFlightNotFound,
		store.ErrOrderNotFound,
	}

	for _, err := range notFoundErrs {
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.True(t, store.IsNotFoundError(err))
		assert.False(t, store.IsDuplicateError(err))
	}

	duplicateErrs := []error{
		store.ErrEmailExists,
		store.ErrSeatTaken,
	}

	for _, err := range duplicateErrs {
		assert.ErrorIs(t, err, store.ErrDuplicate)
		assert.True(t, store.IsDuplicateError(err))
		assert.False(t, store.IsNotFoundError(err))
	}

	// Wrapping preserves matchability
	wrapped := fmt.Errorf("creating order: %w", store.ErrSeatTaken)
	assert.ErrorIs(t, wrapped, store.ErrSeatTaken)
	assert.True(t, store.IsDuplicateError(wrapped))

	assert.False(t, store.IsNotFoundError(errors.New("other")))
}

func TestListParamsNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		params     store.ListParams
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "zero value uses defaults",
			params:     store.ListParams{},
			wantLimit:  store.DefaultPageSize,
			wantOffset: 0,
		},
		{
			name:       "explicit page and size",
			params:     store.ListParams{Page: 3, PageSize: 10},
			wantLimit:  10,
			wantOffset: 20,
		},
		{
			name:       "page size capped",
			params:     store.ListParams{Page: 1, PageSize: 500},
			wantLimit:  store.MaxPageSize,
			wantOffset: 0,
		},
		{
			name:       "negative page clamped to first",
			params:     store.ListParams{Page: -2, PageSize: 10},
			wantLimit:  10,
			wantOffset: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantLimit, tc.params.Limit())
			assert.Equal(t, tc.wantOffset, tc.params.Offset())
		})
	}
}
