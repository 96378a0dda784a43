package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
)

// AirportStore defines the interface for airport persistence.
type AirportStore interface {
	// Create saves a new airport to the store.
	// Returns validation errors from the domain Airport if data is invalid.
	Create(ctx context.Context, airport *domain.Airport) error

	// GetByID retrieves an airport by its unique ID.
	// Returns ErrAirportNotFound if the airport does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error)

	// List retrieves one page of airports in creation order, together with
	// the total number of airports.
	List(ctx context.Context, params ListParams) ([]domain.Airport, int, error)

	// Update modifies an existing airport.
	// Returns ErrAirportNotFound if the airport does not exist.
	Update(ctx context.Context, airport *domain.Airport) error

	// Delete removes an airport. Routes touching the airport, and the
	// flights and tickets on those routes, are removed with it.
	// Returns ErrAirportNotFound if the airport does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AirportStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AirportStore
}
