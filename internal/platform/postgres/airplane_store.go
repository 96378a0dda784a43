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

// airplaneDetailColumns is the joined column list shared by airplane reads.
const airplaneDetailColumns = `
	a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, a.image IS NOT NULL,
	a.created_at, a.updated_at,
	t.id, t.name, t.created_at, t.updated_at
`

// PostgresAirplaneStore implements the store.AirplaneStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAirplaneStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAirplaneStore creates a new PostgreSQL implementation of the
// AirplaneStore interface. If logger is nil, a default logger will be used.
func NewPostgresAirplaneStore(db store.DBTX, logger *slog.Logger) *PostgresAirplaneStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAirplaneStore{
		db:     db,
		logger: logger.With(slog.String("component", "airplane_store")),
	}
}

// Ensure PostgresAirplaneStore implements store.AirplaneStore interface
var _ store.AirplaneStore = (*PostgresAirplaneStore)(nil)

// Create implements store.AirplaneStore.Create
// Returns store.ErrInvalidEntity if the airplane type does not exist.
func (s *PostgresAirplaneStore) Create(ctx context.Context, airplane *domain.Airplane) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := airplane.Validate(); err != nil {
		log.Warn("airplane validation failed during create",
			slog.String("error", err.Error()),
			slog.String("airplane_id", airplane.ID.String()))
		return err
	}

	query := `
		INSERT INTO airplanes (id, name, rows, seats_in_row, airplane_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		airplane.ID,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRow,
		airplane.AirplaneTypeID,
		airplane.CreatedAt,
		airplane.UpdatedAt,
	)

	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to create airplane",
			slog.String("error", err.Error()),
			slog.String("airplane_id", airplane.ID.String()),
			slog.String("airplane_type_id", airplane.AirplaneTypeID.String()))
		return mapped
	}

	log.Info("airplane created successfully", slog.String("airplane_id", airplane.ID.String()))
	return nil
}

// GetByID implements store.AirplaneStore.GetByID
// Returns store.ErrAirplaneNotFound if the airplane does not exist.
func (s *PostgresAirplaneStore) GetByID(ctx context.Context, id uuid.UUID) (*store.AirplaneDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + airplaneDetailColumns + `
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE a.id = $1
	`

	var detail store.AirplaneDetail
	err := scanAirplaneDetail(s.db.QueryRowContext(ctx, query, id), &detail)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("airplane not found", slog.String("airplane_id", id.String()))
			return nil, store.ErrAirplaneNotFound
		}
		log.Error("failed to get airplane by ID",
			slog.String("error", err.Error()),
			slog.String("airplane_id", id.String()))
		return nil, err
	}

	return &detail, nil
}

// List implements store.AirplaneStore.List
func (s *PostgresAirplaneStore) List(ctx context.Context, params store.ListParams) ([]store.AirplaneDetail, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM airplanes`).Scan(&total); err != nil {
		log.Error("failed to count airplanes", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `
		SELECT ` + airplaneDetailColumns + `
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		ORDER BY a.name, a.id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		log.Error("failed to list airplanes", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	airplanes := make([]store.AirplaneDetail, 0, params.Limit())
	for rows.Next() {
		var detail store.AirplaneDetail
		if err := scanAirplaneDetail(rows, &detail); err != nil {
			log.Error("failed to scan airplane row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		airplanes = append(airplanes, detail)
	}

	if err := rows.Err(); err != nil {
		log.Error("airplane rows iteration failed", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return airplanes, total, nil
}

// Update implements store.AirplaneStore.Update
// Returns store.ErrAirplaneNotFound if the airplane does not exist.
// Returns store.ErrInvalidEntity if the airplane type does not exist.
func (s *PostgresAirplaneStore) Update(ctx context.Context, airplane *domain.Airplane) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := airplane.Validate(); err != nil {
		log.Warn("airplane validation failed during update",
			slog.String("error", err.Error()),
			slog.String("airplane_id", airplane.ID.String()))
		return err
	}

	airplane.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE airplanes
		SET name = $1, rows = $2, seats_in_row = $3, airplane_type_id = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRow,
		airplane.AirplaneTypeID,
		airplane.UpdatedAt,
		airplane.ID,
	)

	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to update airplane",
			slog.String("error", err.Error()),
			slog.String("airplane_id", airplane.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrAirplaneNotFound); err != nil {
		log.Debug("airplane not found for update", slog.String("airplane_id", airplane.ID.String()))
		return err
	}

	log.Info("airplane updated successfully", slog.String("airplane_id", airplane.ID.String()))
	return nil
}

// Delete implements store.AirplaneStore.Delete
// Flights using the airplane cascade with the row, taking their tickets along.
// Returns store.ErrAirplaneNotFound if the airplane does not exist.
func (s *PostgresAirplaneStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete airplane",
			slog.String("error", err.Error()),
			slog.String("airplane_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAirplaneNotFound); err != nil {
		log.Debug("airplane not found for delete", slog.String("airplane_id", id.String()))
		return err
	}

	log.Info("airplane deleted successfully", slog.String("airplane_id", id.String()))
	return nil
}

// UpdateImage implements store.AirplaneStore.UpdateImage
// Returns store.ErrAirplaneNotFound if the airplane does not exist.
func (s *PostgresAirplaneStore) UpdateImage(ctx context.Context, id uuid.UUID, image []byte) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE airplanes
		SET image = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, image, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update airplane image",
			slog.String("error", err.Error()),
			slog.String("airplane_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAirplaneNotFound); err != nil {
		log.Debug("airplane not found for image update", slog.String("airplane_id", id.String()))
		return err
	}

	log.Info("airplane image updated successfully",
		slog.String("airplane_id", id.String()),
		slog.Int("size_bytes", len(image)))
	return nil
}

// GetImage implements store.AirplaneStore.GetImage
// Returns store.ErrAirplaneNotFound if the airplane does not exist or has
// no image.
func (s *PostgresAirplaneStore) GetImage(ctx context.Context, id uuid.UUID) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var image []byte
	err := s.db.QueryRowContext(ctx, `SELECT image FROM airplanes WHERE id = $1`, id).Scan(&image)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("airplane not found for image read", slog.String("airplane_id", id.String()))
			return nil, store.ErrAirplaneNotFound
		}
		log.Error("failed to get airplane image",
			slog.String("error", err.Error()),
			slog.String("airplane_id", id.String()))
		return nil, err
	}

	if len(image) == 0 {
		return nil, store.ErrAirplaneNotFound
	}

	return image, nil
}

// WithTx implements store.AirplaneStore.WithTx
func (s *PostgresAirplaneStore) WithTx(tx *sql.Tx) store.AirplaneStore {
	return &PostgresAirplaneStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner lets the detail scanners work on both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAirplaneDetail reads one joined airplane row.
func scanAirplaneDetail(row rowScanner, detail *store.AirplaneDetail) error {
	return row.Scan(
		&detail.Airplane.ID,
		&detail.Airplane.Name,
		&detail.Airplane.Rows,
		&detail.Airplane.SeatsInRow,
		&detail.Airplane.AirplaneTypeID,
		&detail.Airplane.HasImage,
		&detail.Airplane.CreatedAt,
		&detail.Airplane.UpdatedAt,
		&detail.Type.ID,
		&detail.Type.Name,
		&detail.Type.CreatedAt,
		&detail.Type.UpdatedAt,
	)
}
