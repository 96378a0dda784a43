package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
)

// TicketDetail is a ticket together with the flight it books, in the
// flight's listing shape.
type TicketDetail struct {
	Ticket domain.Ticket
	Flight FlightDetail
}

// OrderDetail is an order together with its tickets and their flights, as
// read queries return it.
type OrderDetail struct {
	Order   domain.Order
	Tickets []TicketDetail
}

// OrderStore defines the interface for order persistence. Orders are
// created whole and never updated; deleting an order releases its seats.
type OrderStore interface {
	// Create saves a new order and all its tickets in one transaction.
	// Seat bounds are checked against the booked flights' airplanes; the
	// (flight, row, seat) uniqueness is guaranteed by a storage constraint.
	// Returns ErrSeatTaken if any requested seat is already booked.
	// Returns ErrInvalidEntity if a booked flight does not exist.
	// Returns validation errors from the domain Order if data is invalid.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order with its tickets by the order's unique ID.
	// The caller is responsible for checking ownership.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*OrderDetail, error)

	// List retrieves one page of the user's orders, newest first, together
	// with the user's total number of orders.
	List(ctx context.Context, userID uuid.UUID, params ListParams) ([]OrderDetail, int, error)

	// Delete removes an order and its tickets, releasing the seats.
	// Returns ErrOrderNotFound if the order does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new OrderStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) OrderStore
}
