package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAirport(t *testing.T) {
	airport, err := NewAirport("Boryspil International", "Kyiv")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if airport.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if airport.ClosestBigCity != "Kyiv" {
		t.Errorf("Expected closest big city Kyiv, got %s", airport.ClosestBigCity)
	}

	_, err = NewAirport("", "Kyiv")
	if err != ErrEmptyAirportName {
		t.Errorf("Expected error %v, got %v", ErrEmptyAirportName, err)
	}

	_, err = NewAirport("Boryspil International", "")
	if err != ErrEmptyAirportCity {
		t.Errorf("Expected error %v, got %v", ErrEmptyAirportCity, err)
	}
}
