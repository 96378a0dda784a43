package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
)

// AirplaneDetail is an airplane together with its type, as read queries
// return it.
type AirplaneDetail struct {
	Airplane domain.Airplane
	Type     domain.AirplaneType
}

// AirplaneTypeStore defines the interface for airplane type persistence.
type AirplaneTypeStore interface {
	// Create saves a new airplane type to the store.
	// Returns validation errors from the domain AirplaneType if data is invalid.
	Create(ctx context.Context, airplaneType *domain.AirplaneType) error

	// GetByID retrieves an airplane type by its unique ID.
	// Returns ErrAirplaneTypeNotFound if the type does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error)

	// List retrieves one page of airplane types in creation order, together
	// with the total number of types.
	List(ctx context.Context, params ListParams) ([]domain.AirplaneType, int, error)

	// Update modifies an existing airplane type.
	// Returns ErrAirplaneTypeNotFound if the type does not exist.
	Update(ctx context.Context, airplaneType *domain.AirplaneType) error

	// Delete removes an airplane type. Airplanes of the type, and the
	// flights and tickets using them, are removed with it.
	// Returns ErrAirplaneTypeNotFound if the type does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AirplaneTypeStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AirplaneTypeStore
}

// AirplaneStore defines the interface for airplane persistence.
type AirplaneStore interface {
	// Create saves a new airplane to the store.
	// Returns ErrInvalidEntity if the airplane type does not exist.
	// Returns validation errors from the domain Airplane if data is invalid.
	Create(ctx context.Context, airplane *domain.Airplane) error

	// GetByID retrieves an airplane with its type by the airplane's unique ID.
	// Returns ErrAirplaneNotFound if the airplane does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*AirplaneDetail, error)

	// List retrieves one page of airplanes ordered by name, together with
	// the total number of airplanes.
	List(ctx context.Context, params ListParams) ([]AirplaneDetail, int, error)

	// Update modifies an existing airplane.
	// Returns ErrAirplaneNotFound if the airplane does not exist.
	// Returns ErrInvalidEntity if the airplane type does not exist.
	Update(ctx context.Context, airplane *domain.Airplane) error

	// Delete removes an airplane. Flights using the airplane, and their
	// tickets, are removed with it.
	// Returns ErrAirplaneNotFound if the airplane does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateImage stores the airplane's image bytes.
	// Returns ErrAirplaneNotFound if the airplane does not exist.
	UpdateImage(ctx context.Context, id uuid.UUID, image []byte) error

	// GetImage retrieves the airplane's image bytes.
	// Returns ErrAirplaneNotFound if the airplane does not exist or carries
	// no image.
	GetImage(ctx context.Context, id uuid.UUID) ([]byte, error)

	// WithTx returns a new AirplaneStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AirplaneStore
}
