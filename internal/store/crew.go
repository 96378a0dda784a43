package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
)

// CrewStore defines the interface for crew member persistence.
type CrewStore interface {
	// Create saves a new crew member to the store.
	// Returns validation errors from the domain Crew if data is invalid.
	Create(ctx context.Context, crew *domain.Crew) error

	// GetByID retrieves a crew member by their unique ID.
	// Returns ErrCrewNotFound if the crew member does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Crew, error)

	// List retrieves one page of crew members in creation order, together
	// with the total number of crew members.
	List(ctx context.Context, params ListParams) ([]domain.Crew, int, error)

	// Update modifies an existing crew member.
	// Returns ErrCrewNotFound if the crew member does not exist.
	Update(ctx context.Context, crew *domain.Crew) error

	// Delete removes a crew member. Flight assignments referencing the crew
	// member are removed with it.
	// Returns ErrCrewNotFound if the crew member does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CrewStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CrewStore
}
