package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/store"
)

// PostgresAirportStore implements the store.AirportStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAirportStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAirportStore creates a new PostgreSQL implementation of the
// AirportStore interface. If logger is nil, a default logger will be used.
func NewPostgresAirportStore(db store.DBTX, logger *slog.Logger) *PostgresAirportStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAirportStore{
		db:     db,
		logger: logger.With(slog.String("component", "airport_store")),
	}
}

// Ensure PostgresAirportStore implements store.AirportStore interface
var _ store.AirportStore = (*PostgresAirportStore)(nil)

// Create implements store.AirportStore.Create
func (s *PostgresAirportStore) Create(ctx context.Context, airport *domain.Airport) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := airport.Validate(); err != nil {
		log.Warn("airport validation failed during create",
			slog.String("error", err.Error()),
			slog.String("airport_id", airport.ID.String()))
		return err
	}

	query := `
		INSERT INTO airports (id, name, closest_big_city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		airport.ID,
		airport.Name,
		airport.ClosestBigCity,
		airport.CreatedAt,
		airport.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create airport",
			slog.String("error", err.Error()),
			slog.String("airport_id", airport.ID.String()))
		return MapError(err)
	}

	log.Info("airport created successfully", slog.String("airport_id", airport.ID.String()))
	return nil
}

// GetByID implements store.AirportStore.GetByID
// Returns store.ErrAirportNotFound if the airport does not exist.
func (s *PostgresAirportStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, closest_big_city, created_at, updated_at
		FROM airports
		WHERE id = $1
	`

	var airport domain.Airport
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&airport.ID,
		&airport.Name,
		&airport.ClosestBigCity,
		&airport.CreatedAt,
		&airport.UpdatedAt,
	)

	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("airport not found", slog.String("airport_id", id.String()))
			return nil, store.ErrAirportNotFound
		}
		log.Error("failed to get airport by ID",
			slog.String("error", err.Error()),
			slog.String("airport_id", id.String()))
		return nil, err
	}

	return &airport, nil
}

// List implements store.AirportStore.List
func (s *PostgresAirportStore) List(ctx context.Context, params store.ListParams) ([]domain.Airport, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM airports`).Scan(&total); err != nil {
		log.Error("failed to count airports", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `
		SELECT id, name, closest_big_city, created_at, updated_at
		FROM airports
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		log.Error("failed to list airports", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	airports := make([]domain.Airport, 0, params.Limit())
	for rows.Next() {
		var airport domain.Airport
		if err := rows.Scan(
			&airport.ID,
			&airport.Name,
			&airport.ClosestBigCity,
			&airport.CreatedAt,
			&airport.UpdatedAt,
		); err != nil {
			log.Error("failed to scan airport row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		airports = append(airports, airport)
	}

	if err := rows.Err(); err != nil {
		log.Error("airport rows iteration failed", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return airports, total, nil
}

// Update implements store.AirportStore.Update
// Returns store.ErrAirportNotFound if the airport does not exist.
func (s *PostgresAirportStore) Update(ctx context.Context, airport *domain.Airport) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := airport.Validate(); err != nil {
		log.Warn("airport validation failed during update",
			slog.String("error", err.Error()),
			slog.String("airport_id", airport.ID.String()))
		return err
	}

	airport.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE airports
		SET name = $1, closest_big_city = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		airport.Name,
		airport.ClosestBigCity,
		airport.UpdatedAt,
		airport.ID,
	)

	if err != nil {
		log.Error("failed to update airport",
			slog.String("error", err.Error()),
			slog.String("airport_id", airport.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAirportNotFound); err != nil {
		log.Debug("airport not found for update", slog.String("airport_id", airport.ID.String()))
		return err
	}

	log.Info("airport updated successfully", slog.String("airport_id", airport.ID.String()))
	return nil
}

// Delete implements store.AirportStore.Delete
// Routes touching the airport cascade with the row, taking their flights
// and tickets along.
// Returns store.ErrAirportNotFound if the airport does not exist.
func (s *PostgresAirportStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete airport",
			slog.String("error", err.Error()),
			slog.String("airport_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAirportNotFound); err != nil {
		log.Debug("airport not found for delete", slog.String("airport_id", id.String()))
		return err
	}

	log.Info("airport deleted successfully", slog.String("airport_id", id.String()))
	return nil
}

// WithTx implements store.AirportStore.WithTx
func (s *PostgresAirportStore) WithTx(tx *sql.Tx) store.AirportStore {
	return &PostgresAirportStore{
		db:     tx,
		logger: s.logger,
	}
}
