package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for AirplaneType
var (
	ErrEmptyAirplaneTypeID   = validationSentinel("airplane type ID cannot be empty")
	ErrEmptyAirplaneTypeName = validationSentinel("airplane type name cannot be empty")
)

// AirplaneType represents a model of airplane (e.g. "Boeing 737").
type AirplaneType struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAirplaneType creates a new AirplaneType with the given name.
// It generates a new UUID for the type ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewAirplaneType(name string) (*AirplaneType, error) {
	airplaneType := &AirplaneType{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := airplaneType.Validate(); err != nil {
		return nil, err
	}

	return airplaneType, nil
}

// Validate checks if the AirplaneType has valid data.
// Returns an error if any field fails validation.
func (t *AirplaneType) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyAirplaneTypeID
	}

	if t.Name == "" {
		return ErrEmptyAirplaneTypeName
	}

	return nil
}
