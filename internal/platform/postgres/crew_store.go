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

// PostgresCrewStore implements the store.CrewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCrewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCrewStore creates a new PostgreSQL implementation of the
// CrewStore interface. If logger is nil, a default logger will be used.
func NewPostgresCrewStore(db store.DBTX, logger *slog.Logger) *PostgresCrewStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCrewStore{
		db:     db,
		logger: logger.With(slog.String("component", "crew_store")),
	}
}

// Ensure PostgresCrewStore implements store.CrewStore interface
var _ store.CrewStore = (*PostgresCrewStore)(nil)

// Create implements store.CrewStore.Create
func (s *PostgresCrewStore) Create(ctx context.Context, crew *domain.Crew) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := crew.Validate(); err != nil {
		log.Warn("crew validation failed during create",
			slog.String("error", err.Error()),
			slog.String("crew_id", crew.ID.String()))
		return err
	}

	query := `
		INSERT INTO crews (id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		crew.ID,
		crew.FirstName,
		crew.LastName,
		crew.CreatedAt,
		crew.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create crew",
			slog.String("error", err.Error()),
			slog.String("crew_id", crew.ID.String()))
		return MapError(err)
	}

	log.Info("crew created successfully", slog.String("crew_id", crew.ID.String()))
	return nil
}

// GetByID implements store.CrewStore.GetByID
// Returns store.ErrCrewNotFound if the crew member does not exist.
func (s *PostgresCrewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Crew, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM crews
		WHERE id = $1
	`

	var crew domain.Crew
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
		&crew.CreatedAt,
		&crew.UpdatedAt,
	)

	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("crew not found", slog.String("crew_id", id.String()))
			return nil, store.ErrCrewNotFound
		}
		log.Error("failed to get crew by ID",
			slog.String("error", err.Error()),
			slog.String("crew_id", id.String()))
		return nil, err
	}

	return &crew, nil
}

// List implements store.CrewStore.List
func (s *PostgresCrewStore) List(ctx context.Context, params store.ListParams) ([]domain.Crew, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM crews`).Scan(&total); err != nil {
		log.Error("failed to count crews", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM crews
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		log.Error("failed to list crews", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	crews := make([]domain.Crew, 0, params.Limit())
	for rows.Next() {
		var crew domain.Crew
		if err := rows.Scan(
			&crew.ID,
			&crew.FirstName,
			&crew.LastName,
			&crew.CreatedAt,
			&crew.UpdatedAt,
		); err != nil {
			log.Error("failed to scan crew row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		crews = append(crews, crew)
	}

	if err := rows.Err(); err != nil {
		log.Error("crew rows iteration failed", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return crews, total, nil
}

// Update implements store.CrewStore.Update
// Returns store.ErrCrewNotFound if the crew member does not exist.
func (s *PostgresCrewStore) Update(ctx context.Context, crew *domain.Crew) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := crew.Validate(); err != nil {
		log.Warn("crew validation failed during update",
			slog.String("error", err.Error()),
			slog.String("crew_id", crew.ID.String()))
		return err
	}

	crew.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE crews
		SET first_name = $1, last_name = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		crew.FirstName,
		crew.LastName,
		crew.UpdatedAt,
		crew.ID,
	)

	if err != nil {
		log.Error("failed to update crew",
			slog.String("error", err.Error()),
			slog.String("crew_id", crew.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCrewNotFound); err != nil {
		log.Debug("crew not found for update", slog.String("crew_id", crew.ID.String()))
		return err
	}

	log.Info("crew updated successfully", slog.String("crew_id", crew.ID.String()))
	return nil
}

// Delete implements store.CrewStore.Delete
// Flight assignments cascade with the row.
// Returns store.ErrCrewNotFound if the crew member does not exist.
func (s *PostgresCrewStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete crew",
			slog.String("error", err.Error()),
			slog.String("crew_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCrewNotFound); err != nil {
		log.Debug("crew not found for delete", slog.String("crew_id", id.String()))
		return err
	}

	log.Info("crew deleted successfully", slog.String("crew_id", id.String()))
	return nil
}

// WithTx implements store.CrewStore.WithTx
func (s *PostgresCrewStore) WithTx(tx *sql.Tx) store.CrewStore {
	return &PostgresCrewStore{
		db:     tx,
		logger: s.logger,
	}
}
