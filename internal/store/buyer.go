package store

import (
	"context"

	"github.com/phrazzld/showroom-api/internal/domain"
)

// BuyerStore defines the interface for buyer data persistence.
type BuyerStore interface {
	// Create saves a new buyer to the store and assigns its ID.
	// Returns ErrInvalidEntity if the buyer data is invalid and
	// ErrInvalidReference if the buyer's AutoID does not reference an
	// existing auto (detected at write time, not pre-validated).
	Create(ctx context.Context, buyer *domain.Buyer) error

	// List retrieves all buyers ordered by ID.
	List(ctx context.Context) ([]*domain.Buyer, error)

	// GetByID retrieves a buyer by its unique ID.
	// Returns ErrBuyerNotFound if the buyer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)

	// FindByAutoID retrieves all buyers referencing the given auto,
	// ordered by ID. Returns an empty slice when none match.
	FindByAutoID(ctx context.Context, autoID int64) ([]*domain.Buyer, error)

	// Update overwrites an existing buyer's fields.
	// Returns ErrBuyerNotFound if the buyer does not exist,
	// ErrInvalidEntity if the new data is invalid, and
	// ErrInvalidReference if the new AutoID does not reference an
	// existing auto.
	Update(ctx context.Context, buyer *domain.Buyer) error

	// Delete removes a buyer from the store by its ID.
	// Returns ErrBuyerNotFound if the buyer does not exist.
	Delete(ctx context.Context, id int64) error
}
