package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/showroom-api/internal/domain"
	"github.com/phrazzld/showroom-api/internal/platform/logger"
	"github.com/phrazzld/showroom-api/internal/store"
)

// AutoStore implements the store.AutoStore interface
// using a PostgreSQL database as the storage backend.
type AutoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAutoStore creates a new PostgreSQL implementation of the AutoStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewAutoStore(db store.DBTX, logger *slog.Logger) *AutoStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AutoStore{
		db:     db,
		logger: logger.With(slog.String("component", "auto_store")),
	}
}

// Ensure AutoStore implements store.AutoStore interface
var _ store.AutoStore = (*AutoStore)(nil)

// Create implements store.AutoStore.Create
// It saves a new auto to the database and assigns its ID.
// Returns store.ErrInvalidEntity wrapping the domain validation failure
// if the data is invalid.
func (s *AutoStore) Create(ctx context.Context, auto *domain.Auto) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := auto.Validate(); err != nil {
		log.Warn("auto validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO autos (title, release_date)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, auto.Title, auto.ReleaseDate).Scan(&auto.ID)
	if err != nil {
		log.Error("failed to create auto",
			slog.String("error", err.Error()),
			slog.String("title", auto.Title))
		return err
	}

	log.Info("auto created successfully",
		slog.Int64("auto_id", auto.ID),
		slog.String("title", auto.Title))
	return nil
}

// List implements store.AutoStore.List
// It retrieves all autos ordered by ID. The Buyers field is left empty;
// relationship loading is an explicit step performed by callers.
func (s *AutoStore) List(ctx context.Context) ([]*domain.Auto, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, release_date
		FROM autos
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query autos", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var autos []*domain.Auto
	for rows.Next() {
		var auto domain.Auto
		if err := rows.Scan(&auto.ID, &auto.Title, &auto.ReleaseDate); err != nil {
			log.Error("failed to scan auto row", slog.String("error", err.Error()))
			return nil, err
		}
		autos = append(autos, &auto)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no autos found
	if autos == nil {
		autos = []*domain.Auto{}
	}

	log.Debug("listed autos", slog.Int("count", len(autos)))
	return autos, nil
}

// GetByID implements store.AutoStore.GetByID
// It retrieves an auto by its unique ID.
// Returns store.ErrAutoNotFound if the auto does not exist.
func (s *AutoStore) GetByID(ctx context.Context, id int64) (*domain.Auto, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving auto by ID", slog.Int64("auto_id", id))

	query := `
		SELECT id, title, release_date
		FROM autos
		WHERE id = $1
	`

	var auto domain.Auto
	err := s.db.QueryRowContext(ctx, query, id).Scan(&auto.ID, &auto.Title, &auto.ReleaseDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("auto not found", slog.Int64("auto_id", id))
			return nil, store.ErrAutoNotFound
		}
		log.Error("failed to get auto by ID",
			slog.String("error", err.Error()),
			slog.Int64("auto_id", id))
		return nil, err
	}

	return &auto, nil
}

// Update implements store.AutoStore.Update
// It overwrites the title and release date of an existing auto.
// Returns store.ErrAutoNotFound if the auto does not exist.
func (s *AutoStore) Update(ctx context.Context, auto *domain.Auto) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := auto.Validate(); err != nil {
		log.Warn("auto validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("auto_id", auto.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE autos
		SET title = $1, release_date = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, auto.Title, auto.ReleaseDate, auto.ID)
	if err != nil {
		log.Error("failed to update auto",
			slog.String("error", err.Error()),
			slog.Int64("auto_id", auto.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("auto_id", auto.ID))
		return err
	}

	// If no rows were affected, the auto didn't exist
	if rowsAffected == 0 {
		log.Debug("auto not found for update", slog.Int64("auto_id", auto.ID))
		return store.ErrAutoNotFound
	}

	log.Info("auto updated successfully", slog.Int64("auto_id", auto.ID))
	return nil
}

// Delete implements store.AutoStore.Delete
// It removes an auto from the store by its ID. Buyers referencing the
// auto have their reference nulled by the ON DELETE SET NULL constraint.
// Returns store.ErrAutoNotFound if the auto does not exist.
func (s *AutoStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM autos
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete auto",
			slog.String("error", err.Error()),
			slog.Int64("auto_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("auto_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("auto not found for delete", slog.Int64("auto_id", id))
		return store.ErrAutoNotFound
	}

	log.Info("auto deleted successfully", slog.Int64("auto_id", id))
	return nil
}
