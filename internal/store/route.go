package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
)

// RouteDetail is a route together with its source and destination airports,
// as read queries return it. Serialization layers pick the fields they need.
type RouteDetail struct {
	Route       domain.Route
	Source      domain.Airport
	Destination domain.Airport
}

// CitiesRoute formats the detail as "SourceCity - DestinationCity".
func (d RouteDetail) CitiesRoute() string {
	return domain.CitiesRoute(d.Source.ClosestBigCity, d.Destination.ClosestBigCity)
}

// RouteFilter narrows route listings. Empty fields match everything.
// City matches are case-insensitive against the airports' closest big cities.
type RouteFilter struct {
	SourceCity      string
	DestinationCity string
}

// RouteStore defines the interface for route persistence.
type RouteStore interface {
	// Create saves a new route to the store.
	// Returns ErrInvalidEntity if either airport does not exist.
	// Returns validation errors from the domain Route if data is invalid.
	Create(ctx context.Context, route *domain.Route) error

	// GetByID retrieves a route with its airports by the route's unique ID.
	// Returns ErrRouteNotFound if the route does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*RouteDetail, error)

	// List retrieves one page of routes matching the filter, ordered by
	// distance descending, together with the total number of matches.
	List(ctx context.Context, filter RouteFilter, params ListParams) ([]RouteDetail, int, error)

	// ListBySource retrieves all routes departing the given airport, ordered
	// by distance descending. Used when serializing a single airport.
	ListBySource(ctx context.Context, airportID uuid.UUID) ([]RouteDetail, error)

	// Update modifies an existing route.
	// Returns ErrRouteNotFound if the route does not exist.
	// Returns ErrInvalidEntity if either airport does not exist.
	Update(ctx context.Context, route *domain.Route) error

	// Delete removes a route. Flights on the route, and their tickets, are
	// removed with it.
	// Returns ErrRouteNotFound if the route does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new RouteStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) RouteStore
}
