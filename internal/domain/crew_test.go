package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewCrew(t *testing.T) {
	crew, err := NewCrew("Meredith", "Palmer")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if crew.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if crew.FullName() != "Meredith Palmer" {
		t.Errorf("Expected full name %q, got %q", "Meredith Palmer", crew.FullName())
	}

	if crew.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewCrew("", "Palmer")
	if err != ErrEmptyCrewFirstName {
		t.Errorf("Expected error %v, got %v", ErrEmptyCrewFirstName, err)
	}

	_, err = NewCrew("Meredith", "")
	if err != ErrEmptyCrewLastName {
		t.Errorf("Expected error %v, got %v", ErrEmptyCrewLastName, err)
	}
}

func TestCrewValidate(t *testing.T) {
	crew := Crew{ID: uuid.New(), FirstName: "Jim", LastName: "Halpert"}

	if err := crew.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := crew
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); err != ErrEmptyCrewID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCrewID, err)
	}
}
