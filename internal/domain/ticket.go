package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Ticket
var (
	ErrEmptyTicketID     = validationSentinel("ticket ID cannot be empty")
	ErrEmptyTicketFlight = validationSentinel("ticket flight cannot be empty")
	ErrEmptyTicketOrder  = validationSentinel("ticket order cannot be empty")
	ErrSeatOutOfRange    = validationSentinel("seat out of available range")
)

// Ticket represents a booked seat on a flight. Tickets exist only as part of
// an order; (flight, row, seat) is unique across all orders.
type Ticket struct {
	ID        uuid.UUID `json:"id"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
	FlightID  uuid.UUID `json:"flight"`
	OrderID   uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// NewTicket creates a new Ticket for the given seat on a flight.
// Seat bounds are checked separately against the airplane via ValidateSeat,
// since the airplane is not known to the ticket itself.
func NewTicket(row, seat int, flightID, orderID uuid.UUID) (*Ticket, error) {
	ticket := &Ticket{
		ID:        uuid.New(),
		Row:       row,
		Seat:      seat,
		FlightID:  flightID,
		OrderID:   orderID,
		CreatedAt: time.Now().UTC(),
	}

	if err := ticket.Validate(); err != nil {
		return nil, err
	}

	return ticket, nil
}

// Validate checks if the Ticket has valid references.
// Seat bounds require the airplane and are checked by ValidateSeat.
func (t *Ticket) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTicketID
	}

	if t.FlightID == uuid.Nil {
		return ErrEmptyTicketFlight
	}

	if t.OrderID == uuid.Nil {
		return ErrEmptyTicketOrder
	}

	return nil
}

// ValidateSeat checks that the ticket's row and seat fall within the
// airplane's seat grid. The returned ValidationError names the offending
// attribute and its allowed range.
func (t *Ticket) ValidateSeat(airplane *Airplane) error {
	if t.Row < 1 || t.Row > airplane.Rows {
		return NewValidationError(
			"row",
			fmt.Sprintf("row number must be in available range: (1, rows): (1, %d)", airplane.Rows),
			ErrSeatOutOfRange,
		)
	}

	if t.Seat < 1 || t.Seat > airplane.SeatsInRow {
		return NewValidationError(
			"seat",
			fmt.Sprintf("seat number must be in available range: (1, seats_in_row): (1, %d)", airplane.SeatsInRow),
			ErrSeatOutOfRange,
		)
	}

	return nil
}
