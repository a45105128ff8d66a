package domain

import (
	"errors"
	"time"
)

// Common validation errors for Auto
var (
	ErrEmptyAutoTitle       = errors.New("auto title cannot be empty")
	ErrEmptyAutoReleaseDate = errors.New("auto release date cannot be empty")
)

// Auto represents a listed automobile. It is the parent side of the
// one-to-many relationship with Buyer.
type Auto struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`

	// Buyers holds the buyers referencing this auto. It is populated by an
	// explicit fetch step when formatting an auto for output, not by the
	// store's row scans.
	Buyers []*Buyer `json:"buyers,omitempty"`
}

// NewAuto creates a new Auto with the given title and release date.
// The ID is assigned by the store on creation.
// Returns an error if validation fails.
func NewAuto(title string, releaseDate time.Time) (*Auto, error) {
	auto := &Auto{
		Title:       title,
		ReleaseDate: releaseDate,
	}

	if err := auto.Validate(); err != nil {
		return nil, err
	}

	return auto, nil
}

// Validate checks if the Auto has valid data.
// Returns an error if any field fails validation.
func (a *Auto) Validate() error {
	if a.Title == "" {
		return ErrEmptyAutoTitle
	}

	if a.ReleaseDate.IsZero() {
		return ErrEmptyAutoReleaseDate
	}

	return nil
}
