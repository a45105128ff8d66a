package store

import (
	"context"

	"github.com/phrazzld/showroom-api/internal/domain"
)

// AutoStore defines the interface for auto data persistence.
type AutoStore interface {
	// Create saves a new auto to the store and assigns its ID.
	// Each call is an immediate, durable write; there is no pending state.
	// Returns ErrInvalidEntity wrapping the validation failure if the
	// auto data is invalid.
	Create(ctx context.Context, auto *domain.Auto) error

	// List retrieves all autos ordered by ID.
	// The returned autos do not have their Buyers field populated; callers
	// that need the relationship perform an explicit fetch per auto.
	List(ctx context.Context) ([]*domain.Auto, error)

	// GetByID retrieves an auto by its unique ID.
	// Returns ErrAutoNotFound if the auto does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Auto, error)

	// Update overwrites an existing auto's title and release date.
	// Returns ErrAutoNotFound if the auto does not exist and
	// ErrInvalidEntity if the new data is invalid.
	Update(ctx context.Context, auto *domain.Auto) error

	// Delete removes an auto from the store by its ID.
	// Buyers referencing the auto keep existing with their reference
	// nulled by the database (ON DELETE SET NULL); there is no cascade.
	// Returns ErrAutoNotFound if the auto does not exist.
	Delete(ctx context.Context, id int64) error
}
