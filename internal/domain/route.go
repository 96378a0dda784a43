package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Route
var (
	ErrEmptyRouteID          = validationSentinel("route ID cannot be empty")
	ErrEmptyRouteSource      = validationSentinel("route source airport cannot be empty")
	ErrEmptyRouteDestination = validationSentinel("route destination airport cannot be empty")
	ErrSameSourceDestination = validationSentinel("route source and destination airports must differ")
	ErrInvalidRouteDistance  = validationSentinel("route distance must be at least 1 km")
)

// Route represents a directed connection between two airports.
// Source and destination must be different airports.
type Route struct {
	ID            uuid.UUID `json:"id"`
	SourceID      uuid.UUID `json:"source"`
	DestinationID uuid.UUID `json:"destination"`
	Distance      int       `json:"distance"` // kilometers
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewRoute creates a new Route between the given airports.
// It generates a new UUID for the route ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewRoute(sourceID, destinationID uuid.UUID, distance int) (*Route, error) {
	route := &Route{
		ID:            uuid.New(),
		SourceID:      sourceID,
		DestinationID: destinationID,
		Distance:      distance,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if err := route.Validate(); err != nil {
		return nil, err
	}

	return route, nil
}

// Validate checks if the Route has valid data.
// Returns an error if any field fails validation.
func (r *Route) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRouteID
	}

	if r.SourceID == uuid.Nil {
		return ErrEmptyRouteSource
	}

	if r.DestinationID == uuid.Nil {
		return ErrEmptyRouteDestination
	}

	if r.SourceID == r.DestinationID {
		return ErrSameSourceDestination
	}

	if r.Distance < 1 {
		return ErrInvalidRouteDistance
	}

	return nil
}

// CitiesRoute formats the route as "SourceCity - DestinationCity" given the
// two airports' closest big cities.
func CitiesRoute(sourceCity, destinationCity string) string {
	return sourceCity + " - " + destinationCity
}
