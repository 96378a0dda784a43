package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Airport
var (
	ErrEmptyAirportID   = validationSentinel("airport ID cannot be empty")
	ErrEmptyAirportName = validationSentinel("airport name cannot be empty")
	ErrEmptyAirportCity = validationSentinel("airport closest big city cannot be empty")
)

// Airport represents an airport that routes connect. The closest big city is
// what travellers search by, so route filtering matches on it rather than on
// the airport name.
type Airport struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ClosestBigCity string    `json:"closest_big_city"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAirport creates a new Airport with the given name and closest big city.
// It generates a new UUID for the airport ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewAirport(name, closestBigCity string) (*Airport, error) {
	airport := &Airport{
		ID:             uuid.New(),
		Name:           name,
		ClosestBigCity: closestBigCity,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := airport.Validate(); err != nil {
		return nil, err
	}

	return airport, nil
}

// Validate checks if the Airport has valid data.
// Returns an error if any field fails validation.
func (a *Airport) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAirportID
	}

	if a.Name == "" {
		return ErrEmptyAirportName
	}

	if a.ClosestBigCity == "" {
		return ErrEmptyAirportCity
	}

	return nil
}
