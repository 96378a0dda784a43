package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/store"
)

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface. If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// Create implements store.OrderStore.Create
// Callers wrap the call in a transaction via WithTx so the order and all its
// tickets commit or roll back together. Seat bounds are validated against
// each booked flight's airplane before inserting; already-booked seats are
// caught by the application pre-check on the common path and by the
// tickets(flight_id, row, seat) unique constraint under concurrency.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during create",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	// One airplane lookup per distinct flight in the order.
	airplanes := make(map[uuid.UUID]*domain.Airplane)
	for i := range order.Tickets {
		ticket := &order.Tickets[i]

		airplane, ok := airplanes[ticket.FlightID]
		if !ok {
			var err error
			airplane, err = s.flightAirplane(ctx, ticket.FlightID)
			if err != nil {
				log.Warn("failed to resolve flight airplane for ticket",
					slog.String("error", err.Error()),
					slog.String("flight_id", ticket.FlightID.String()))
				return err
			}
			airplanes[ticket.FlightID] = airplane
		}

		if err := ticket.ValidateSeat(airplane); err != nil {
			log.Debug("ticket seat out of range",
				slog.String("flight_id", ticket.FlightID.String()),
				slog.Int("row", ticket.Row),
				slog.Int("seat", ticket.Seat))
			return err
		}

		if err := s.checkSeatFree(ctx, ticket); err != nil {
			log.Debug("ticket seat already booked",
				slog.String("flight_id", ticket.FlightID.String()),
				slog.Int("row", ticket.Row),
				slog.Int("seat", ticket.Seat))
			return err
		}
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO orders (id, user_id, created_at) VALUES ($1, $2, $3)`,
		order.ID,
		order.UserID,
		order.CreatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to create order",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return mapped
	}

	for i := range order.Tickets {
		ticket := &order.Tickets[i]
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO tickets (id, "row", seat, flight_id, order_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			ticket.ID,
			ticket.Row,
			ticket.Seat,
			ticket.FlightID,
			ticket.OrderID,
			ticket.CreatedAt,
		)
		if err != nil {
			mapped := MapError(err)
			log.Warn("failed to create ticket",
				slog.String("error", err.Error()),
				slog.String("order_id", order.ID.String()),
				slog.String("flight_id", ticket.FlightID.String()))
			return mapped
		}
	}

	log.Info("order created successfully",
		slog.String("order_id", order.ID.String()),
		slog.Int("ticket_count", len(order.Tickets)))
	return nil
}

// GetByID implements store.OrderStore.GetByID
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*store.OrderDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var detail store.OrderDetail
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, created_at FROM orders WHERE id = $1`,
		id,
	).Scan(&detail.Order.ID, &detail.Order.UserID, &detail.Order.CreatedAt)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("order not found", slog.String("order_id", id.String()))
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to get order by ID",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()))
		return nil, err
	}

	tickets, err := s.queryTickets(ctx, id)
	if err != nil {
		log.Error("failed to load order tickets",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()))
		return nil, err
	}
	detail.Tickets = tickets

	return &detail, nil
}

// List implements store.OrderStore.List
// Orders are scoped to the given user and returned newest first.
func (s *PostgresOrderStore) List(ctx context.Context, userID uuid.UUID, params store.ListParams) ([]store.OrderDetail, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`,
		userID,
	).Scan(&total)
	if err != nil {
		log.Error("failed to count orders", slog.String("error", err.Error()))
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, user_id, created_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		userID,
		params.Limit(),
		params.Offset(),
	)
	if err != nil {
		log.Error("failed to list orders", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	var orders []store.OrderDetail
	for rows.Next() {
		var detail store.OrderDetail
		if err := rows.Scan(&detail.Order.ID, &detail.Order.UserID, &detail.Order.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		tickets, err := s.queryTickets(ctx, orders[i].Order.ID)
		if err != nil {
			log.Error("failed to load order tickets",
				slog.String("error", err.Error()),
				slog.String("order_id", orders[i].Order.ID.String()))
			return nil, 0, err
		}
		orders[i].Tickets = tickets
	}

	return orders, total, nil
}

// Delete implements store.OrderStore.Delete
// The order's tickets cascade with the row, releasing the seats.
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete order",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrOrderNotFound); err != nil {
		log.Debug("order not found for delete", slog.String("order_id", id.String()))
		return err
	}

	log.Info("order deleted successfully", slog.String("order_id", id.String()))
	return nil
}

// WithTx implements store.OrderStore.WithTx
func (s *PostgresOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return &PostgresOrderStore{
		db:     tx,
		logger: s.logger,
	}
}

// flightAirplane loads the seat grid of the airplane flying the given flight.
// Returns store.ErrInvalidEntity when the flight does not exist, since a
// ticket referencing it cannot be stored.
func (s *PostgresOrderStore) flightAirplane(ctx context.Context, flightID uuid.UUID) (*domain.Airplane, error) {
	query := `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, a.created_at, a.updated_at
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1
	`

	var airplane domain.Airplane
	err := s.db.QueryRowContext(ctx, query, flightID).Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplane.CreatedAt,
		&airplane.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrInvalidEntity
		}
		return nil, err
	}

	return &airplane, nil
}

// checkSeatFree reports ErrSeatTaken when the ticket's seat is already
// booked. The unique constraint remains the authority under concurrent
// bookings; this pre-check only produces the friendlier error on the
// common path.
func (s *PostgresOrderStore) checkSeatFree(ctx context.Context, ticket *domain.Ticket) error {
	var taken bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM tickets WHERE flight_id = $1 AND "row" = $2 AND seat = $3)`,
		ticket.FlightID,
		ticket.Row,
		ticket.Seat,
	).Scan(&taken)
	if err != nil {
		return err
	}

	if taken {
		return store.ErrSeatTaken
	}
	return nil
}

// queryTickets loads the order's tickets with their flights in list shape,
// ordered by the flights' departure times, newest first.
func (s *PostgresOrderStore) queryTickets(ctx context.Context, orderID uuid.UUID) ([]store.TicketDetail, error) {
	columns := append([]string{`tk.id`, `tk."row"`, `tk.seat`, `tk.order_id`}, flightDetailColumns...)

	query, args, err := psql.Select(columns...).
		From("tickets tk").
		Join("flights f ON f.id = tk.flight_id").
		Join("routes r ON r.id = f.route_id").
		Join("airports src ON src.id = r.source_id").
		Join("airports dst ON dst.id = r.destination_id").
		Join("airplanes a ON a.id = f.airplane_id").
		Join("airplane_types t ON t.id = a.airplane_type_id").
		Where(sq.Eq{"tk.order_id": orderID}).
		OrderBy(`f.departure_time DESC`, `tk."row"`, `tk.seat`).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tickets []store.TicketDetail
	for rows.Next() {
		var detail store.TicketDetail
		if err := scanTicketDetail(rows, &detail); err != nil {
			return nil, err
		}
		tickets = append(tickets, detail)
	}

	return tickets, rows.Err()
}

// scanTicketDetail reads one ticket row joined with its flight detail.
func scanTicketDetail(row rowScanner, detail *store.TicketDetail) error {
	var booked int
	err := row.Scan(
		&detail.Ticket.ID,
		&detail.Ticket.Row,
		&detail.Ticket.Seat,
		&detail.Ticket.OrderID,
		&detail.Flight.Flight.ID,
		&detail.Flight.Flight.RouteID,
		&detail.Flight.Flight.AirplaneID,
		&detail.Flight.Flight.DepartureTime,
		&detail.Flight.Flight.ArrivalTime,
		&detail.Flight.Flight.CreatedAt,
		&detail.Flight.Flight.UpdatedAt,
		&detail.Flight.Route.Route.ID,
		&detail.Flight.Route.Route.SourceID,
		&detail.Flight.Route.Route.DestinationID,
		&detail.Flight.Route.Route.Distance,
		&detail.Flight.Route.Route.CreatedAt,
		&detail.Flight.Route.Route.UpdatedAt,
		&detail.Flight.Route.Source.ID,
		&detail.Flight.Route.Source.Name,
		&detail.Flight.Route.Source.ClosestBigCity,
		&detail.Flight.Route.Source.CreatedAt,
		&detail.Flight.Route.Source.UpdatedAt,
		&detail.Flight.Route.Destination.ID,
		&detail.Flight.Route.Destination.Name,
		&detail.Flight.Route.Destination.ClosestBigCity,
		&detail.Flight.Route.Destination.CreatedAt,
		&detail.Flight.Route.Destination.UpdatedAt,
		&detail.Flight.Airplane.Airplane.ID,
		&detail.Flight.Airplane.Airplane.Name,
		&detail.Flight.Airplane.Airplane.Rows,
		&detail.Flight.Airplane.Airplane.SeatsInRow,
		&detail.Flight.Airplane.Airplane.AirplaneTypeID,
		&detail.Flight.Airplane.Airplane.HasImage,
		&detail.Flight.Airplane.Airplane.CreatedAt,
		&detail.Flight.Airplane.Airplane.UpdatedAt,
		&detail.Flight.Airplane.Type.ID,
		&detail.Flight.Airplane.Type.Name,
		&detail.Flight.Airplane.Type.CreatedAt,
		&detail.Flight.Airplane.Type.UpdatedAt,
		&booked,
	)
	if err != nil {
		return err
	}

	detail.Ticket.FlightID = detail.Flight.Flight.ID
	detail.Flight.TicketsAvailable = detail.Flight.Airplane.Airplane.Capacity() - booked
	return nil
}
