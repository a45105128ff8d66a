package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/showroom-api/internal/api/shared"
	"github.com/phrazzld/showroom-api/internal/domain"
	"github.com/phrazzld/showroom-api/internal/platform/logger"
	"github.com/phrazzld/showroom-api/internal/store"
)

// CreateBuyerRequest represents the request body for creating a new buyer.
// All four fields are mandatory on create, unlike update.
type CreateBuyerRequest struct {
	Name   *string `json:"name" validate:"required"`
	Age    *int    `json:"age" validate:"required"`
	Gender *string `json:"gender" validate:"required"`
	AutoID *int64  `json:"auto_id" validate:"required"`
}

// UpdateBuyerRequest represents the request body for partially updating a
// buyer. Absent and zero values leave the corresponding field unchanged.
type UpdateBuyerRequest struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
	AutoID *int64  `json:"auto_id"`
}

// BuyerHandler handles buyer-related HTTP requests.
type BuyerHandler struct {
	buyerStore store.BuyerStore
	logger     *slog.Logger
}

// NewBuyerHandler creates a new BuyerHandler.
// If logger is nil, a default logger will be used.
func NewBuyerHandler(buyerStore store.BuyerStore, logger *slog.Logger) *BuyerHandler {
	if buyerStore == nil {
		panic("buyerStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &BuyerHandler{
		buyerStore: buyerStore,
		logger:     logger.With(slog.String("component", "buyer_handler")),
	}
}

// ListBuyers handles GET /buyers requests.
func (h *BuyerHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.buyerStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	responses := make([]BuyerResponse, 0, len(buyers))
	for _, buyer := range buyers {
		responses = append(responses, buyerToResponse(buyer))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, buyerListResponse{
		Success: true,
		Buyers:  responses,
	})
}

// CreateBuyer handles POST /buyers requests.
// Requires name, age, gender, and auto_id; responds with the success
// flag only. A nonexistent auto_id is not pre-validated and surfaces as
// 400 from the store's foreign key check.
func (h *BuyerHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	var req CreateBuyerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing field for Buyer")
		return
	}

	buyer, err := domain.NewBuyer(*req.Name, *req.Age, *req.Gender, req.AutoID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing field for Buyer")
		return
	}

	if err := h.buyerStore.Create(r.Context(), buyer); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				fmt.Sprintf("Bad formatted request due to nonexistent auto id %d", *req.AutoID))
			return
		}
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, FallbackMessage(status), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, createResponse{Success: true})
}

// DeleteBuyer handles DELETE /buyers/{id} requests.
func (h *BuyerHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	if _, err := h.buyerStore.GetByID(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("No buyer with given id %d is found", id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	if err := h.buyerStore.Delete(r.Context(), id); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, FallbackMessage(status), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deleteResponse{
		Success: true,
		Deleted: id,
	})
}

// UpdateBuyer handles PATCH /buyers/{id} requests.
// Only supplied, non-zero fields overwrite the stored values. A new
// auto_id pointing at a nonexistent auto is detected at commit time and
// surfaces as 400.
func (h *BuyerHandler) UpdateBuyer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	buyer, err := h.buyerStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("Buyer with id: %d could not be found.", id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	var req UpdateBuyerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	if req.Name != nil && *req.Name != "" {
		buyer.Name = *req.Name
	}
	if req.Age != nil && *req.Age != 0 {
		buyer.Age = *req.Age
	}
	if req.Gender != nil && *req.Gender != "" {
		buyer.Gender = *req.Gender
	}
	if req.AutoID != nil && *req.AutoID != 0 {
		buyer.AutoID = req.AutoID
	}

	if err := h.buyerStore.Update(r.Context(), buyer); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				fmt.Sprintf("Bad formatted request due to nonexistent auto id %d", *buyer.AutoID))
			return
		}
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, FallbackMessage(status), err)
		return
	}

	log.Debug("buyer updated", slog.Int64("buyer_id", id))

	shared.RespondWithJSON(w, r, http.StatusOK, updatedBuyerResponse{
		Success: true,
		Updated: buyerToResponse(buyer),
	})
}
