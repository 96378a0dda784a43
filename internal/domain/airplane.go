package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Airplane
var (
	ErrEmptyAirplaneID     = validationSentinel("airplane ID cannot be empty")
	ErrEmptyAirplaneName   = validationSentinel("airplane name cannot be empty")
	ErrEmptyAirplaneType   = validationSentinel("airplane type cannot be empty")
	ErrInvalidAirplaneRows = validationSentinel("airplane must have at least 1 row")
	ErrInvalidSeatsInRow   = validationSentinel("airplane must have at least 1 seat in a row")
)

// Airplane represents a physical airplane with a fixed seat grid.
// Seats are addressed by (row, seat) with both axes starting at 1.
type Airplane struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Rows           int       `json:"rows"`
	SeatsInRow     int       `json:"seats_in_row"`
	AirplaneTypeID uuid.UUID `json:"airplane_type"`
	HasImage       bool      `json:"-"` // Image bytes live in storage, not on the entity
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAirplane creates a new Airplane with the given seat grid and type.
// It generates a new UUID for the airplane ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewAirplane(name string, rows, seatsInRow int, airplaneTypeID uuid.UUID) (*Airplane, error) {
	airplane := &Airplane{
		ID:             uuid.New(),
		Name:           name,
		Rows:           rows,
		SeatsInRow:     seatsInRow,
		AirplaneTypeID: airplaneTypeID,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := airplane.Validate(); err != nil {
		return nil, err
	}

	return airplane, nil
}

// Capacity returns the total number of seats on the airplane.
func (a *Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// Validate checks if the Airplane has valid data.
// Returns an error if any field fails validation.
func (a *Airplane) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAirplaneID
	}

	if a.Name == "" {
		return ErrEmptyAirplaneName
	}

	if a.Rows < 1 {
		return ErrInvalidAirplaneRows
	}

	if a.SeatsInRow < 1 {
		return ErrInvalidSeatsInRow
	}

	if a.AirplaneTypeID == uuid.Nil {
		return ErrEmptyAirplaneType
	}

	return nil
}
