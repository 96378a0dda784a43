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

// psql builds queries with PostgreSQL $N placeholders. Shared by the stores
// that assemble filters dynamically.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// routeDetailColumns is the joined column list shared by route reads.
var routeDetailColumns = []string{
	"r.id", "r.source_id", "r.destination_id", "r.distance", "r.created_at", "r.updated_at",
	"src.id", "src.name", "src.closest_big_city", "src.created_at", "src.updated_at",
	"dst.id", "dst.name", "dst.closest_big_city", "dst.created_at", "dst.updated_at",
}

// PostgresRouteStore implements the store.RouteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRouteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRouteStore creates a new PostgreSQL implementation of the
// RouteStore interface. If logger is nil, a default logger will be used.
func NewPostgresRouteStore(db store.DBTX, logger *slog.Logger) *PostgresRouteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRouteStore{
		db:     db,
		logger: logger.With(slog.String("component", "route_store")),
	}
}

// Ensure PostgresRouteStore implements store.RouteStore interface
var _ store.RouteStore = (*PostgresRouteStore)(nil)

// Create implements store.RouteStore.Create
// Returns store.ErrInvalidEntity if either airport does not exist.
func (s *PostgresRouteStore) Create(ctx context.Context, route *domain.Route) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := route.Validate(); err != nil {
		log.Warn("route validation failed during create",
			slog.String("error", err.Error()),
			slog.String("route_id", route.ID.String()))
		return err
	}

	query := `
		INSERT INTO routes (id, source_id, destination_id, distance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		route.ID,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to create route",
			slog.String("error", err.Error()),
			slog.String("route_id", route.ID.String()))
		return mapped
	}

	log.Info("route created successfully", slog.String("route_id", route.ID.String()))
	return nil
}

// GetByID implements store.RouteStore.GetByID
// Returns store.ErrRouteNotFound if the route does not exist.
func (s *PostgresRouteStore) GetByID(ctx context.Context, id uuid.UUID) (*store.RouteDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.detailQuery().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var detail store.RouteDetail
	err = scanRouteDetail(s.db.QueryRowContext(ctx, query, args...), &detail)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("route not found", slog.String("route_id", id.String()))
			return nil, store.ErrRouteNotFound
		}
		log.Error("failed to get route by ID",
			slog.String("error", err.Error()),
			slog.String("route_id", id.String()))
		return nil, err
	}

	return &detail, nil
}

// List implements store.RouteStore.List
// Routes are ordered by distance descending, longest first.
func (s *PostgresRouteStore) List(ctx context.Context, filter store.RouteFilter, params store.ListParams) ([]store.RouteDetail, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := routeFilterConditions(filter)

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("routes r").
		Join("airports src ON src.id = r.source_id").
		Join("airports dst ON dst.id = r.destination_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Error("failed to count routes", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query, args, err := s.detailQuery().
		Where(where).
		OrderBy("r.distance DESC", "r.id").
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	routes, err := s.queryDetails(ctx, query, args...)
	if err != nil {
		log.Error("failed to list routes", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return routes, total, nil
}

// ListBySource implements store.RouteStore.ListBySource
func (s *PostgresRouteStore) ListBySource(ctx context.Context, airportID uuid.UUID) ([]store.RouteDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.detailQuery().
		Where(sq.Eq{"r.source_id": airportID}).
		OrderBy("r.distance DESC", "r.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	routes, err := s.queryDetails(ctx, query, args...)
	if err != nil {
		log.Error("failed to list routes by source",
			slog.String("error", err.Error()),
			slog.String("airport_id", airportID.String()))
		return nil, err
	}

	return routes, nil
}

// Update implements store.RouteStore.Update
// Returns store.ErrRouteNotFound if the route does not exist.
// Returns store.ErrInvalidEntity if either airport does not exist.
func (s *PostgresRouteStore) Update(ctx context.Context, route *domain.Route) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := route.Validate(); err != nil {
		log.Warn("route validation failed during update",
			slog.String("error", err.Error()),
			slog.String("route_id", route.ID.String()))
		return err
	}

	route.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE routes
		SET source_id = $1, destination_id = $2, distance = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.UpdatedAt,
		route.ID,
	)

	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to update route",
			slog.String("error", err.Error()),
			slog.String("route_id", route.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrRouteNotFound); err != nil {
		log.Debug("route not found for update", slog.String("route_id", route.ID.String()))
		return err
	}

	log.Info("route updated successfully", slog.String("route_id", route.ID.String()))
	return nil
}

// Delete implements store.RouteStore.Delete
// Flights on the route cascade with the row, taking their tickets along.
// Returns store.ErrRouteNotFound if the route does not exist.
func (s *PostgresRouteStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete route",
			slog.String("error", err.Error()),
			slog.String("route_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrRouteNotFound); err != nil {
		log.Debug("route not found for delete", slog.String("route_id", id.String()))
		return err
	}

	log.Info("route deleted successfully", slog.String("route_id", id.String()))
	return nil
}

// WithTx implements store.RouteStore.WithTx
func (s *PostgresRouteStore) WithTx(tx *sql.Tx) store.RouteStore {
	return &PostgresRouteStore{
		db:     tx,
		logger: s.logger,
	}
}

// detailQuery is the base SELECT joining routes with both airports.
func (s *PostgresRouteStore) detailQuery() sq.SelectBuilder {
	return psql.Select(routeDetailColumns...).
		From("routes r").
		Join("airports src ON src.id = r.source_id").
		Join("airports dst ON dst.id = r.destination_id")
}

// queryDetails runs a detail query and scans all rows.
func (s *PostgresRouteStore) queryDetails(ctx context.Context, query string, args ...any) ([]store.RouteDetail, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var routes []store.RouteDetail
	for rows.Next() {
		var detail store.RouteDetail
		if err := scanRouteDetail(rows, &detail); err != nil {
			return nil, err
		}
		routes = append(routes, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

// routeFilterConditions translates a RouteFilter into squirrel conditions.
func routeFilterConditions(filter store.RouteFilter) sq.And {
	conditions := sq.And{}
	if filter.SourceCity != "" {
		conditions = append(conditions,
			sq.Expr("LOWER(src.closest_big_city) = LOWER(?)", filter.SourceCity))
	}
	if filter.DestinationCity != "" {
		conditions = append(conditions,
			sq.Expr("LOWER(dst.closest_big_city) = LOWER(?)", filter.DestinationCity))
	}
	return conditions
}

// scanRouteDetail reads one joined route row.
func scanRouteDetail(row rowScanner, detail *store.RouteDetail) error {
	return row.Scan(
		&detail.Route.ID,
		&detail.Route.SourceID,
		&detail.Route.DestinationID,
		&detail.Route.Distance,
		&detail.Route.CreatedAt,
		&detail.Route.UpdatedAt,
		&detail.Source.ID,
		&detail.Source.Name,
		&detail.Source.ClosestBigCity,
		&detail.Source.CreatedAt,
		&detail.Source.UpdatedAt,
		&detail.Destination.ID,
		&detail.Destination.Name,
		&detail.Destination.ClosestBigCity,
		&detail.Destination.CreatedAt,
		&detail.Destination.UpdatedAt,
	)
}
