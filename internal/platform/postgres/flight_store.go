package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/store"
)

// flightDetailColumns is the joined column list shared by flight reads:
// the flight row, its route with both airports, its airplane with type, and
// the number of tickets already booked.
var flightDetailColumns = []string{
	"f.id", "f.route_id", "f.airplane_id", "f.departure_time", "f.arrival_time",
	"f.created_at", "f.updated_at",
	"r.id", "r.source_id", "r.destination_id", "r.distance", "r.created_at", "r.updated_at",
	"src.id", "src.name", "src.closest_big_city", "src.created_at", "src.updated_at",
	"dst.id", "dst.name", "dst.closest_big_city", "dst.created_at", "dst.updated_at",
	"a.id", "a.name", "a.rows", "a.seats_in_row", "a.airplane_type_id",
	"(a.image IS NOT NULL)", "a.created_at", "a.updated_at",
	"t.id", "t.name", "t.created_at", "t.updated_at",
	"(SELECT COUNT(*) FROM tickets tk WHERE tk.flight_id = f.id) AS tickets_booked",
}

// PostgresFlightStore implements the store.FlightStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFlightStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlightStore creates a new PostgreSQL implementation of the
// FlightStore interface. If logger is nil, a default logger will be used.
func NewPostgresFlightStore(db store.DBTX, logger *slog.Logger) *PostgresFlightStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlightStore{
		db:     db,
		logger: logger.With(slog.String("component", "flight_store")),
	}
}

// Ensure PostgresFlightStore implements store.FlightStore interface
var _ store.FlightStore = (*PostgresFlightStore)(nil)

// Create implements store.FlightStore.Create
// Callers group the flight insert and its crew assignments in one
// transaction via WithTx so a failed assignment rolls the flight back.
// Returns store.ErrInvalidEntity if the route, airplane, or any crew member
// does not exist.
func (s *PostgresFlightStore) Create(ctx context.Context, flight *domain.Flight) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := flight.Validate(); err != nil {
		log.Warn("flight validation failed during create",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return err
	}

	query := `
		INSERT INTO flights (id, route_id, airplane_id, departure_time, arrival_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		flight.ID,
		flight.RouteID,
		flight.AirplaneID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to create flight",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return mapped
	}

	if err := s.insertCrewAssignments(ctx, flight.ID, flight.CrewIDs); err != nil {
		log.Warn("failed to assign crew to flight",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return err
	}

	log.Info("flight created successfully",
		slog.String("flight_id", flight.ID.String()),
		slog.Int("crew_count", len(flight.CrewIDs)))
	return nil
}

// GetByID implements store.FlightStore.GetByID
// Returns store.ErrFlightNotFound if the flight does not exist.
func (s *PostgresFlightStore) GetByID(ctx context.Context, id uuid.UUID) (*store.FlightDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.detailQuery().Where(sq.Eq{"f.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var detail store.FlightDetail
	err = scanFlightDetail(s.db.QueryRowContext(ctx, query, args...), &detail)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("flight not found", slog.String("flight_id", id.String()))
			return nil, store.ErrFlightNotFound
		}
		log.Error("failed to get flight by ID",
			slog.String("error", err.Error()),
			slog.String("flight_id", id.String()))
		return nil, err
	}

	crew, err := s.queryCrew(ctx, id)
	if err != nil {
		log.Error("failed to load flight crew",
			slog.String("error", err.Error()),
			slog.String("flight_id", id.String()))
		return nil, err
	}
	detail.Crew = crew

	taken, err := s.queryTakenPlaces(ctx, id)
	if err != nil {
		log.Error("failed to load flight taken places",
			slog.String("error", err.Error()),
			slog.String("flight_id", id.String()))
		return nil, err
	}
	detail.TakenPlaces = taken

	return &detail, nil
}

// List implements store.FlightStore.List
// Flights are ordered by departure time descending, soonest-departed first.
func (s *PostgresFlightStore) List(ctx context.Context, filter store.FlightFilter, params store.ListParams) ([]store.FlightDetail, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := flightFilterConditions(filter)

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("flights f").
		Join("routes r ON r.id = f.route_id").
		Join("airports src ON src.id = r.source_id").
		Join("airports dst ON dst.id = r.destination_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Error("failed to count flights", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query, args, err := s.detailQuery().
		Where(where).
		OrderBy("f.departure_time DESC", "f.id").
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	flights, err := s.queryDetails(ctx, query, args...)
	if err != nil {
		log.Error("failed to list flights", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return flights, total, nil
}

// Update implements store.FlightStore.Update
// Crew assignments are replaced wholesale; callers wrap the update in a
// transaction via WithTx.
// Returns store.ErrFlightNotFound if the flight does not exist.
// Returns store.ErrInvalidEntity if the route, airplane, or any crew member
// does not exist.
func (s *PostgresFlightStore) Update(ctx context.Context, flight *domain.Flight) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := flight.Validate(); err != nil {
		log.Warn("flight validation failed during update",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return err
	}

	flight.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE flights
		SET route_id = $1, airplane_id = $2, departure_time = $3, arrival_time = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		flight.RouteID,
		flight.AirplaneID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.UpdatedAt,
		flight.ID,
	)

	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to update flight",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrFlightNotFound); err != nil {
		log.Debug("flight not found for update", slog.String("flight_id", flight.ID.String()))
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM flight_crew WHERE flight_id = $1`, flight.ID); err != nil {
		log.Warn("failed to clear flight crew assignments",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return MapError(err)
	}

	if err := s.insertCrewAssignments(ctx, flight.ID, flight.CrewIDs); err != nil {
		log.Warn("failed to assign crew to flight",
			slog.String("error", err.Error()),
			slog.String("flight_id", flight.ID.String()))
		return err
	}

	log.Info("flight updated successfully", slog.String("flight_id", flight.ID.String()))
	return nil
}

// Delete implements store.FlightStore.Delete
// Tickets on the flight cascade with the row.
// Returns store.ErrFlightNotFound if the flight does not exist.
func (s *PostgresFlightStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete flight",
			slog.String("error", err.Error()),
			slog.String("flight_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrFlightNotFound); err != nil {
		log.Debug("flight not found for delete", slog.String("flight_id", id.String()))
		return err
	}

	log.Info("flight deleted successfully", slog.String("flight_id", id.String()))
	return nil
}

// WithTx implements store.FlightStore.WithTx
func (s *PostgresFlightStore) WithTx(tx *sql.Tx) store.FlightStore {
	return &PostgresFlightStore{
		db:     tx,
		logger: s.logger,
	}
}

// insertCrewAssignments writes the flight_crew join rows for the flight.
// A nonexistent crew member surfaces as store.ErrInvalidEntity via the
// foreign key on flight_crew.crew_id.
func (s *PostgresFlightStore) insertCrewAssignments(ctx context.Context, flightID uuid.UUID, crewIDs []uuid.UUID) error {
	for _, crewID := range crewIDs {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`,
			flightID,
			crewID,
		)
		if err != nil {
			return MapError(err)
		}
	}
	return nil
}

// queryCrew loads the crew members assigned to the flight, ordered by name.
func (s *PostgresFlightStore) queryCrew(ctx context.Context, flightID uuid.UUID) ([]domain.Crew, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.created_at, c.updated_at
		FROM crews c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1
		ORDER BY c.first_name, c.last_name
	`

	rows, err := s.db.QueryContext(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var crew []domain.Crew
	for rows.Next() {
		var member domain.Crew
		err := rows.Scan(
			&member.ID,
			&member.FirstName,
			&member.LastName,
			&member.CreatedAt,
			&member.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		crew = append(crew, member)
	}

	return crew, rows.Err()
}

// queryTakenPlaces loads the booked seats on the flight ordered by row, seat.
func (s *PostgresFlightStore) queryTakenPlaces(ctx context.Context, flightID uuid.UUID) ([]domain.Ticket, error) {
	query := `
		SELECT id, "row", seat, flight_id, order_id, created_at
		FROM tickets
		WHERE flight_id = $1
		ORDER BY "row", seat
	`

	rows, err := s.db.QueryContext(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tickets []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.FlightID,
			&ticket.OrderID,
			&ticket.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// detailQuery is the base SELECT joining flights with route, airports,
// airplane, and airplane type.
func (s *PostgresFlightStore) detailQuery() sq.SelectBuilder {
	return psql.Select(flightDetailColumns...).
		From("flights f").
		Join("routes r ON r.id = f.route_id").
		Join("airports src ON src.id = r.source_id").
		Join("airports dst ON dst.id = r.destination_id").
		Join("airplanes a ON a.id = f.airplane_id").
		Join("airplane_types t ON t.id = a.airplane_type_id")
}

// queryDetails runs a detail query and scans all rows.
func (s *PostgresFlightStore) queryDetails(ctx context.Context, query string, args ...any) ([]store.FlightDetail, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var flights []store.FlightDetail
	for rows.Next() {
		var detail store.FlightDetail
		if err := scanFlightDetail(rows, &detail); err != nil {
			return nil, err
		}
		flights = append(flights, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return flights, nil
}

// flightFilterConditions translates a FlightFilter into squirrel conditions.
func flightFilterConditions(filter store.FlightFilter) sq.And {
	conditions := sq.And{}
	if filter.SourceCity != "" {
		conditions = append(conditions,
			sq.Expr("LOWER(src.closest_big_city) = LOWER(?)", filter.SourceCity))
	}
	if filter.DestinationCity != "" {
		conditions = append(conditions,
			sq.Expr("LOWER(dst.closest_big_city) = LOWER(?)", filter.DestinationCity))
	}
	if filter.AirportCity != "" {
		conditions = append(conditions,
			sq.Expr("LOWER(src.closest_big_city) = LOWER(?)", filter.AirportCity))
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		conditions = append(conditions,
			sq.GtOrEq{"f.departure_time": day},
			sq.Lt{"f.departure_time": day.Add(24 * time.Hour)})
	}
	return conditions
}

// scanFlightDetail reads one joined flight row. Crew and taken places are
// loaded separately; TicketsAvailable is derived from the airplane's seat
// grid and the booked-ticket count.
func scanFlightDetail(row rowScanner, detail *store.FlightDetail) error {
	var booked int
	err := row.Scan(
		&detail.Flight.ID,
		&detail.Flight.RouteID,
		&detail.Flight.AirplaneID,
		&detail.Flight.DepartureTime,
		&detail.Flight.ArrivalTime,
		&detail.Flight.CreatedAt,
		&detail.Flight.UpdatedAt,
		&detail.Route.Route.ID,
		&detail.Route.Route.SourceID,
		&detail.Route.Route.DestinationID,
		&detail.Route.Route.Distance,
		&detail.Route.Route.CreatedAt,
		&detail.Route.Route.UpdatedAt,
		&detail.Route.Source.ID,
		&detail.Route.Source.Name,
		&detail.Route.Source.ClosestBigCity,
		&detail.Route.Source.CreatedAt,
		&detail.Route.Source.UpdatedAt,
		&detail.Route.Destination.ID,
		&detail.Route.Destination.Name,
		&detail.Route.Destination.ClosestBigCity,
		&detail.Route.Destination.CreatedAt,
		&detail.Route.Destination.UpdatedAt,
		&detail.Airplane.Airplane.ID,
		&detail.Airplane.Airplane.Name,
		&detail.Airplane.Airplane.Rows,
		&detail.Airplane.Airplane.SeatsInRow,
		&detail.Airplane.Airplane.AirplaneTypeID,
		&detail.Airplane.Airplane.HasImage,
		&detail.Airplane.Airplane.CreatedAt,
		&detail.Airplane.Airplane.UpdatedAt,
		&detail.Airplane.Type.ID,
		&detail.Airplane.Type.Name,
		&detail.Airplane.Type.CreatedAt,
		&detail.Airplane.Type.UpdatedAt,
		&booked,
	)
	if err != nil {
		return err
	}

	detail.TicketsAvailable = detail.Airplane.Airplane.Capacity() - booked
	return nil
}
