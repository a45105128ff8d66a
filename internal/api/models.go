package api

import (
	"time"

	"github.com/phrazzld/showroom-api/internal/domain"
)

// AutoResponse represents an auto formatted for output, with its buyers
// eagerly materialized.
type AutoResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	ReleaseDate string          `json:"release_date"`
	Buyers      []BuyerResponse `json:"buyers"`
}

// BuyerResponse represents a buyer formatted for output.
type BuyerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	AutoID *int64 `json:"auto_id"`
}

// autoListResponse is the body for GET /autos.
type autoListResponse struct {
	Success bool           `json:"success"`
	Autos   []AutoResponse `json:"autos"`
}

// buyerListResponse is the body for GET /buyers.
type buyerListResponse struct {
	Success bool            `json:"success"`
	Buyers  []BuyerResponse `json:"buyers"`
}

// createResponse is the body for successful creates; the created entity
// itself is not returned.
type createResponse struct {
	Success bool `json:"success"`
}

// deleteResponse is the body for successful deletes.
type deleteResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// updatedAutoResponse is the body for PATCH /autos/{id}.
type updatedAutoResponse struct {
	Success bool         `json:"success"`
	Updated AutoResponse `json:"updated"`
}

// updatedBuyerResponse is the body for PATCH /buyers/{id}.
type updatedBuyerResponse struct {
	Success bool          `json:"success"`
	Updated BuyerResponse `json:"updated"`
}

// autoToResponse converts a domain.Auto to an AutoResponse.
// The auto's Buyers field must already have been populated by the
// caller's fetch step.
func autoToResponse(auto *domain.Auto) AutoResponse {
	buyers := make([]BuyerResponse, 0, len(auto.Buyers))
	for _, buyer := range auto.Buyers {
		buyers = append(buyers, buyerToResponse(buyer))
	}

	return AutoResponse{
		ID:          auto.ID,
		Title:       auto.Title,
		ReleaseDate: auto.ReleaseDate.Format(time.RFC3339),
		Buyers:      buyers,
	}
}

// buyerToResponse converts a domain.Buyer to a BuyerResponse.
func buyerToResponse(buyer *domain.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:     buyer.ID,
		Name:   buyer.Name,
		Age:    buyer.Age,
		Gender: buyer.Gender,
		AutoID: buyer.AutoID,
	}
}
