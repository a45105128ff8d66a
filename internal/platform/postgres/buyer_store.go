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

// BuyerStore implements the store.BuyerStore interface
// using a PostgreSQL database as the storage backend.
type BuyerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBuyerStore creates a new PostgreSQL implementation of the BuyerStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewBuyerStore(db store.DBTX, logger *slog.Logger) *BuyerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &BuyerStore{
		db:     db,
		logger: logger.With(slog.String("component", "buyer_store")),
	}
}

// Ensure BuyerStore implements store.BuyerStore interface
var _ store.BuyerStore = (*BuyerStore)(nil)

// Create implements store.BuyerStore.Create
// It saves a new buyer to the database and assigns its ID.
// Returns store.ErrInvalidEntity wrapping the domain validation failure
// if the data is invalid, and store.ErrInvalidReference if the buyer's
// auto ID doesn't exist (foreign key violation).
func (s *BuyerStore) Create(ctx context.Context, buyer *domain.Buyer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := buyer.Validate(); err != nil {
		log.Warn("buyer validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO buyers (name, age, gender, auto_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, buyer.Name, buyer.Age, buyer.Gender, buyer.AutoID).
		Scan(&buyer.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during buyer creation",
				slog.String("error", err.Error()),
				slog.Any("auto_id", buyer.AutoID))
			return fmt.Errorf("%w: auto with ID %v not found",
				store.ErrInvalidReference, derefAutoID(buyer.AutoID))
		}

		log.Error("failed to create buyer",
			slog.String("error", err.Error()),
			slog.String("name", buyer.Name))
		return err
	}

	log.Info("buyer created successfully",
		slog.Int64("buyer_id", buyer.ID),
		slog.String("name", buyer.Name))
	return nil
}

// List implements store.BuyerStore.List
// It retrieves all buyers ordered by ID.
func (s *BuyerStore) List(ctx context.Context) ([]*domain.Buyer, error) {
	return s.query(ctx, `
		SELECT id, name, age, gender, auto_id
		FROM buyers
		ORDER BY id
	`)
}

// FindByAutoID implements store.BuyerStore.FindByAutoID
// It retrieves all buyers referencing the given auto, ordered by ID.
// Returns an empty slice if no buyers match.
func (s *BuyerStore) FindByAutoID(ctx context.Context, autoID int64) ([]*domain.Buyer, error) {
	return s.query(ctx, `
		SELECT id, name, age, gender, auto_id
		FROM buyers
		WHERE auto_id = $1
		ORDER BY id
	`, autoID)
}

// query runs a buyer SELECT and scans the result rows.
func (s *BuyerStore) query(ctx context.Context, query string, args ...any) ([]*domain.Buyer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query buyers", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var buyers []*domain.Buyer
	for rows.Next() {
		var buyer domain.Buyer
		if err := rows.Scan(&buyer.ID, &buyer.Name, &buyer.Age, &buyer.Gender, &buyer.AutoID); err != nil {
			log.Error("failed to scan buyer row", slog.String("error", err.Error()))
			return nil, err
		}
		buyers = append(buyers, &buyer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no buyers found
	if buyers == nil {
		buyers = []*domain.Buyer{}
	}

	log.Debug("listed buyers", slog.Int("count", len(buyers)))
	return buyers, nil
}

// GetByID implements store.BuyerStore.GetByID
// It retrieves a buyer by its unique ID.
// Returns store.ErrBuyerNotFound if the buyer does not exist.
func (s *BuyerStore) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving buyer by ID", slog.Int64("buyer_id", id))

	query := `
		SELECT id, name, age, gender, auto_id
		FROM buyers
		WHERE id = $1
	`

	var buyer domain.Buyer
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&buyer.ID, &buyer.Name, &buyer.Age, &buyer.Gender, &buyer.AutoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("buyer not found", slog.Int64("buyer_id", id))
			return nil, store.ErrBuyerNotFound
		}
		log.Error("failed to get buyer by ID",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", id))
		return nil, err
	}

	return &buyer, nil
}

// Update implements store.BuyerStore.Update
// It overwrites the fields of an existing buyer.
// Returns store.ErrBuyerNotFound if the buyer does not exist.
// Returns store.ErrInvalidReference if the new auto ID doesn't exist.
func (s *BuyerStore) Update(ctx context.Context, buyer *domain.Buyer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := buyer.Validate(); err != nil {
		log.Warn("buyer validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", buyer.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE buyers
		SET name = $1, age = $2, gender = $3, auto_id = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		buyer.Name, buyer.Age, buyer.Gender, buyer.AutoID, buyer.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during buyer update",
				slog.String("error", err.Error()),
				slog.Int64("buyer_id", buyer.ID),
				slog.Any("auto_id", buyer.AutoID))
			return fmt.Errorf("%w: auto with ID %v not found",
				store.ErrInvalidReference, derefAutoID(buyer.AutoID))
		}

		log.Error("failed to update buyer",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", buyer.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", buyer.ID))
		return err
	}

	// If no rows were affected, the buyer didn't exist
	if rowsAffected == 0 {
		log.Debug("buyer not found for update", slog.Int64("buyer_id", buyer.ID))
		return store.ErrBuyerNotFound
	}

	log.Info("buyer updated successfully", slog.Int64("buyer_id", buyer.ID))
	return nil
}

// Delete implements store.BuyerStore.Delete
// It removes a buyer from the store by its ID.
// Returns store.ErrBuyerNotFound if the buyer does not exist.
func (s *BuyerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM buyers
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete buyer",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("buyer not found for delete", slog.Int64("buyer_id", id))
		return store.ErrBuyerNotFound
	}

	log.Info("buyer deleted successfully", slog.Int64("buyer_id", id))
	return nil
}

// derefAutoID renders a nullable auto reference for error messages.
func derefAutoID(id *int64) any {
	if id == nil {
		return "<nil>"
	}
	return *id
}
