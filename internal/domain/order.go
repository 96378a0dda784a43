package domain

import (
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Order
var (
	ErrEmptyOrderID     = validationSentinel("order ID cannot be empty")
	ErrEmptyOrderUserID = validationSentinel("order user ID cannot be empty")
	ErrNoTickets        = validationSentinel("order must contain at least one ticket")
)

// Order represents a booking made by a user. An order owns its tickets and is
// created atomically with them; orders are never updated after creation.
type Order struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Tickets   []Ticket  `json:"tickets"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrder creates a new empty Order for the given user.
// Tickets are attached with AddTicket before the order is stored.
func NewOrder(userID uuid.UUID) (*Order, error) {
	order := &Order{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := order.validateHeader(); err != nil {
		return nil, err
	}

	return order, nil
}

// AddTicket creates a ticket for the given seat and attaches it to the order.
func (o *Order) AddTicket(row, seat int, flightID uuid.UUID) error {
	ticket, err := NewTicket(row, seat, flightID, o.ID)
	if err != nil {
		return err
	}

	o.Tickets = append(o.Tickets, *ticket)
	return nil
}

// Validate checks if the Order has valid data, including that it carries at
// least one valid ticket.
func (o *Order) Validate() error {
	if err := o.validateHeader(); err != nil {
		return err
	}

	if len(o.Tickets) == 0 {
		return ErrNoTickets
	}

	for i := range o.Tickets {
		if err := o.Tickets[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (o *Order) validateHeader() error {
	if o.ID == uuid.Nil {
		return ErrEmptyOrderID
	}

	if o.UserID == uuid.Nil {
		return ErrEmptyOrderUserID
	}

	return nil
}
