package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
)

// FlightDetail is a flight together with its route, airplane, and seat
// availability, as read queries return it. Crew and TakenPlaces are filled
// only by GetByID; listings leave them nil.
type FlightDetail struct {
	Flight           domain.Flight
	Route            RouteDetail
	Airplane         AirplaneDetail
	TicketsAvailable int
	Crew             []domain.Crew
	TakenPlaces      []domain.Ticket
}

// FlightFilter narrows flight listings. Zero fields match everything.
// City matches are case-insensitive against the airports' closest big cities;
// Date matches the departure day in UTC.
type FlightFilter struct {
	SourceCity      string
	DestinationCity string
	AirportCity     string
	Date            *time.Time
}

// IsZero reports whether the filter matches everything.
func (f FlightFilter) IsZero() bool {
	return f.SourceCity == "" && f.DestinationCity == "" && f.AirportCity == "" && f.Date == nil
}

// FlightStore defines the interface for flight persistence.
type FlightStore interface {
	// Create saves a new flight and its crew assignments atomically.
	// Returns ErrInvalidEntity if the route, airplane, or any crew member
	// does not exist.
	// Returns validation errors from the domain Flight if data is invalid.
	Create(ctx context.Context, flight *domain.Flight) error

	// GetByID retrieves a flight with its route, airplane, crew, and taken
	// places by the flight's unique ID.
	// Returns ErrFlightNotFound if the flight does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*FlightDetail, error)

	// List retrieves one page of flights matching the filter, ordered by
	// departure time descending, together with the total number of matches.
	List(ctx context.Context, filter FlightFilter, params ListParams) ([]FlightDetail, int, error)

	// Update modifies an existing flight, replacing its crew assignments.
	// Returns ErrFlightNotFound if the flight does not exist.
	// Returns ErrInvalidEntity if the route, airplane, or any crew member
	// does not exist.
	Update(ctx context.Context, flight *domain.Flight) error

	// Delete removes a flight and its tickets.
	// Returns ErrFlightNotFound if the flight does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new FlightStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) FlightStore
}
