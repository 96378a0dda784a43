package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Crew
var (
	ErrEmptyCrewID        = validationSentinel("crew ID cannot be empty")
	ErrEmptyCrewFirstName = validationSentinel("crew first name cannot be empty")
	ErrEmptyCrewLastName  = validationSentinel("crew last name cannot be empty")
)

// Crew represents a single crew member who can be assigned to flights.
type Crew struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCrew creates a new Crew with the given names.
// It generates a new UUID for the crew ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewCrew(firstName, lastName string) (*Crew, error) {
	crew := &Crew{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := crew.Validate(); err != nil {
		return nil, err
	}

	return crew, nil
}

// FullName returns the crew member's display name ("First Last").
func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validate checks if the Crew has valid data.
// Returns an error if any field fails validation.
func (c *Crew) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCrewID
	}

	if c.FirstName == "" {
		return ErrEmptyCrewFirstName
	}

	if c.LastName == "" {
		return ErrEmptyCrewLastName
	}

	return nil
}
