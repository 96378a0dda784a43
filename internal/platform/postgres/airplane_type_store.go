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

// PostgresAirplaneTypeStore implements the store.AirplaneTypeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAirplaneTypeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAirplaneTypeStore creates a new PostgreSQL implementation of the
// AirplaneTypeStore interface. If logger is nil, a default logger will be used.
func NewPostgresAirplaneTypeStore(db store.DBTX, logger *slog.Logger) *PostgresAirplaneTypeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAirplaneTypeStore{
		db:     db,
		logger: logger.With(slog.String("component", "airplane_type_store")),
	}
}

// Ensure PostgresAirplaneTypeStore implements store.AirplaneTypeStore interface
var _ store.AirplaneTypeStore = (*PostgresAirplaneTypeStore)(nil)

// Create implements store.AirplaneTypeStore.Create
func (s *PostgresAirplaneTypeStore) Create(ctx context.Context, airplaneType *domain.AirplaneType) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := airplaneType.Validate(); err != nil {
		log.Warn("airplane type validation failed during create",
			slog.String("error", err.Error()),
			slog.String("airplane_type_id", airplaneType.ID.String()))
		return err
	}

	query := `
		INSERT INTO airplane_types (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		airplaneType.ID,
		airplaneType.Name,
		airplaneType.CreatedAt,
		airplaneType.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create airplane type",
			slog.String("error", err.Error()),
			slog.String("airplane_type_id", airplaneType.ID.String()))
		return MapError(err)
	}

	log.Info("airplane type created successfully",
		slog.String("airplane_type_id", airplaneType.ID.String()))
	return nil
}

// GetByID implements store.AirplaneTypeStore.GetByID
// Returns store.ErrAirplaneTypeNotFound if the type does not exist.
func (s *PostgresAirplaneTypeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM airplane_types
		WHERE id = $1
	`

	var airplaneType domain.AirplaneType
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&airplaneType.ID,
		&airplaneType.Name,
		&airplaneType.CreatedAt,
		&airplaneType.UpdatedAt,
	)

	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("airplane type not found", slog.String("airplane_type_id", id.String()))
			return nil, store.ErrAirplaneTypeNotFound
		}
		log.Error("failed to get airplane type by ID",
			slog.String("error", err.Error()),
			slog.String("airplane_type_id", id.String()))
		return nil, err
	}

	return &airplaneType, nil
}

// List implements store.AirplaneTypeStore.List
func (s *PostgresAirplaneTypeStore) List(ctx context.Context, params store.ListParams) ([]domain.AirplaneType, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM airplane_types`).Scan(&total); err != nil {
		log.Error("failed to count airplane types", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM airplane_types
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		log.Error("failed to list airplane types", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	types := make([]domain.AirplaneType, 0, params.Limit())
	for rows.Next() {
		var airplaneType domain.AirplaneType
		if err := rows.Scan(
			&airplaneType.ID,
			&airplaneType.Name,
			&airplaneType.CreatedAt,
			&airplaneType.UpdatedAt,
		); err != nil {
			log.Error("failed to scan airplane type row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		types = append(types, airplaneType)
	}

	if err := rows.Err(); err != nil {
		log.Error("airplane type rows iteration failed", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return types, total, nil
}

// Update implements store.AirplaneTypeStore.Update
// Returns store.ErrAirplaneTypeNotFound if the type does not exist.
func (s *PostgresAirplaneTypeStore) Update(ctx context.Context, airplaneType *domain.AirplaneType) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := airplaneType.Validate(); err != nil {
		log.Warn("airplane type validation failed during update",
			slog.String("error", err.Error()),
			slog.String("airplane_type_id", airplaneType.ID.String()))
		return err
	}

	airplaneType.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE airplane_types
		SET name = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		airplaneType.Name,
		airplaneType.UpdatedAt,
		airplaneType.ID,
	)

	if err != nil {
		log.Error("failed to update airplane type",
			slog.String("error", err.Error()),
			slog.String("airplane_type_id", airplaneType.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAirplaneTypeNotFound); err != nil {
		log.Debug("airplane type not found for update",
			slog.String("airplane_type_id", airplaneType.ID.String()))
		return err
	}

	log.Info("airplane type updated successfully",
		slog.String("airplane_type_id", airplaneType.ID.String()))
	return nil
}

// Delete implements store.AirplaneTypeStore.Delete
// Airplanes of the type cascade with the row, taking their flights and
// tickets along.
// Returns store.ErrAirplaneTypeNotFound if the type does not exist.
func (s *PostgresAirplaneTypeStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete airplane type",
			slog.String("error", err.Error()),
			slog.String("airplane_type_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAirplaneTypeNotFound); err != nil {
		log.Debug("airplane type not found for delete",
			slog.String("airplane_type_id", id.String()))
		return err
	}

	log.Info("airplane type deleted successfully", slog.String("airplane_type_id", id.String()))
	return nil
}

// WithTx implements store.AirplaneTypeStore.WithTx
func (s *PostgresAirplaneTypeStore) WithTx(tx *sql.Tx) store.AirplaneTypeStore {
	return &PostgresAirplaneTypeStore{
		db:     tx,
		logger: s.logger,
	}
}
