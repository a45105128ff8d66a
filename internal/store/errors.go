package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrAutoNotFound, ErrBuyerNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidReference is returned when a write references an entity
	// that does not exist (a foreign key violation at commit time).
	ErrInvalidReference = errors.New("invalid entity reference")

	// Entity-specific "not found" errors

	// ErrAutoNotFound indicates that the requested auto does not exist in the store.
	ErrAutoNotFound = fmt.Errorf("%w: auto", ErrNotFound)

	// ErrBuyerNotFound indicates that the requested buyer does not exist in the store.
	ErrBuyerNotFound = fmt.Errorf("%w: buyer", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
