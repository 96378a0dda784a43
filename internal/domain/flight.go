package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Flight
var (
	ErrEmptyFlightID          = validationSentinel("flight ID cannot be empty")
	ErrEmptyFlightRoute       = validationSentinel("flight route cannot be empty")
	ErrEmptyFlightAirplane    = validationSentinel("flight airplane cannot be empty")
	ErrEmptyDepartureTime     = validationSentinel("flight departure time cannot be empty")
	ErrEmptyArrivalTime       = validationSentinel("flight arrival time cannot be empty")
	ErrArrivalBeforeDeparture = validationSentinel("flight arrival time must be after departure time")
	ErrEmptyCrewMember        = validationSentinel("flight crew member ID cannot be empty")
)

// Flight represents a scheduled flight of an airplane along a route.
// CrewIDs carries the assigned crew members; the many-to-many assignment
// itself lives in storage.
type Flight struct {
	ID            uuid.UUID   `json:"id"`
	RouteID       uuid.UUID   `json:"route"`
	AirplaneID    uuid.UUID   `json:"airplane"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
	CrewIDs       []uuid.UUID `json:"crew"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewFlight creates a new Flight on the given route and airplane.
// It generates a new UUID for the flight ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewFlight(
	routeID, airplaneID uuid.UUID,
	departureTime, arrivalTime time.Time,
	crewIDs []uuid.UUID,
) (*Flight, error) {
	flight := &Flight{
		ID:            uuid.New(),
		RouteID:       routeID,
		AirplaneID:    airplaneID,
		DepartureTime: departureTime.UTC(),
		ArrivalTime:   arrivalTime.UTC(),
		CrewIDs:       crewIDs,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if err := flight.Validate(); err != nil {
		return nil, err
	}

	return flight, nil
}

// Validate checks if the Flight has valid data.
// Returns an error if any field fails validation.
func (f *Flight) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFlightID
	}

	if f.RouteID == uuid.Nil {
		return ErrEmptyFlightRoute
	}

	if f.AirplaneID == uuid.Nil {
		return ErrEmptyFlightAirplane
	}

	if f.DepartureTime.IsZero() {
		return ErrEmptyDepartureTime
	}

	if f.ArrivalTime.IsZero() {
		return ErrEmptyArrivalTime
	}

	if !f.ArrivalTime.After(f.DepartureTime) {
		return ErrArrivalBeforeDeparture
	}

	for _, crewID := range f.CrewIDs {
		if crewID == uuid.Nil {
			return ErrEmptyCrewMember
		}
	}

	return nil
}
