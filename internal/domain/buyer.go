package domain

import "errors"

// Common validation errors for Buyer
var (
	ErrEmptyBuyerName     = errors.New("buyer name cannot be empty")
	ErrInvalidBuyerAge    = errors.New("buyer age must be positive")
	ErrInvalidBuyerGender = errors.New("buyer gender must be a single character")
)

// Buyer represents a person interested in an auto. AutoID is nullable:
// a buyer may exist without a referenced auto, and deleting an auto
// nulls the reference rather than removing the buyer.
type Buyer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	AutoID *int64 `json:"auto_id"`
}

// NewBuyer creates a new Buyer with the given fields.
// The ID is assigned by the store on creation.
// Returns an error if validation fails.
func NewBuyer(name string, age int, gender string, autoID *int64) (*Buyer, error) {
	buyer := &Buyer{
		Name:   name,
		Age:    age,
		Gender: gender,
		AutoID: autoID,
	}

	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	return buyer, nil
}

// Validate checks if the Buyer has valid data.
// Returns an error if any field fails validation.
func (b *Buyer) Validate() error {
	if b.Name == "" {
		return ErrEmptyBuyerName
	}

	if b.Age <= 0 {
		return ErrInvalidBuyerAge
	}

	if len([]rune(b.Gender)) != 1 {
		return ErrInvalidBuyerGender
	}

	return nil
}
