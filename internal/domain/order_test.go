package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewOrder(t *testing.T) {
	userID := uuid.New()

	order, err := NewOrder(userID)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if order.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if order.UserID != userID {
		t.Error("Expected order to keep its user")
	}

	_, err = NewOrder(uuid.Nil)
	if err != ErrEmptyOrderUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyOrderUserID, err)
	}
}

func TestOrderValidate(t *testing.T) {
	order, err := NewOrder(uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// An order without tickets is not storable
	if err := order.Validate(); err != ErrNoTickets {
		t.Errorf("Expected error %v, got %v", ErrNoTickets, err)
	}

	if err := order.AddTicket(3, 4, uuid.New()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := order.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if order.Tickets[0].OrderID != order.ID {
		t.Error("Expected ticket to belong to the order")
	}
}

func TestTicketValidateSeatBoundaries(t *testing.T) {
	airplane := &Airplane{
		ID:             uuid.New(),
		Name:           "Dream",
		Rows:           10,
		SeatsInRow:     4,
		AirplaneTypeID: uuid.New(),
	}

	ticket, err := NewTicket(10, 4, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := ticket.ValidateSeat(airplane); err != nil {
		t.Errorf("Expected boundary seat to be valid, got %v", err)
	}

	ticket.Row = 11
	err = ticket.ValidateSeat(airplane)
	if !errors.Is(err, ErrSeatOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrSeatOutOfRange, err)
	}
	if !strings.Contains(err.Error(), "(1, 10)") {
		t.Errorf("Expected message to name the row range, got %q", err.Error())
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "row" {
		t.Errorf("Expected validation error on field row, got %v", err)
	}

	ticket.Row = 1
	ticket.Seat = 5
	err = ticket.ValidateSeat(airplane)
	if !errors.Is(err, ErrSeatOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrSeatOutOfRange, err)
	}
	if !strings.Contains(err.Error(), "(1, 4)") {
		t.Errorf("Expected message to name the seat range, got %q", err.Error())
	}

	ticket.Seat = 0
	if err := ticket.ValidateSeat(airplane); !errors.Is(err, ErrSeatOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrSeatOutOfRange, err)
	}
}
