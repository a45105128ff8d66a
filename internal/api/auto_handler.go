package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/showroom-api/internal/api/shared"
	"github.com/phrazzld/showroom-api/internal/domain"
	"github.com/phrazzld/showroom-api/internal/platform/logger"
	"github.com/phrazzld/showroom-api/internal/store"
)

// CreateAutoRequest represents the request body for creating a new auto.
// Pointer fields distinguish absent values from zero values; required
// here means the field was present, not that it was non-empty.
type CreateAutoRequest struct {
	Title       *string `json:"title" validate:"required"`
	ReleaseDate *string `json:"release_date" validate:"required"`
}

// UpdateAutoRequest represents the request body for partially updating an
// auto. Absent and empty values leave the corresponding field unchanged.
type UpdateAutoRequest struct {
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
}

// AutoHandler handles auto-related HTTP requests.
type AutoHandler struct {
	autoStore  store.AutoStore
	buyerStore store.BuyerStore
	logger     *slog.Logger
}

// NewAutoHandler creates a new AutoHandler.
// If logger is nil, a default logger will be used.
func NewAutoHandler(autoStore store.AutoStore, buyerStore store.BuyerStore, logger *slog.Logger) *AutoHandler {
	if autoStore == nil || buyerStore == nil {
		panic("stores cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AutoHandler{
		autoStore:  autoStore,
		buyerStore: buyerStore,
		logger:     logger.With(slog.String("component", "auto_handler")),
	}
}

// ListAutos handles GET /autos requests.
// Each auto in the response carries its buyers, materialized by an
// explicit fetch step.
func (h *AutoHandler) ListAutos(w http.ResponseWriter, r *http.Request) {
	autos, err := h.autoStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	responses := make([]AutoResponse, 0, len(autos))
	for _, auto := range autos {
		formatted, err := h.formatAuto(r.Context(), auto)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				FallbackMessage(http.StatusInternalServerError), err)
			return
		}
		responses = append(responses, formatted)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, autoListResponse{
		Success: true,
		Autos:   responses,
	})
}

// CreateAuto handles POST /autos requests.
// Requires title and release_date; responds with the success flag only.
func (h *AutoHandler) CreateAuto(w http.ResponseWriter, r *http.Request) {
	var req CreateAutoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing field for Auto")
		return
	}

	releaseDate, err := parseReleaseDate(*req.ReleaseDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid release date for Auto")
		return
	}

	auto, err := domain.NewAuto(*req.Title, releaseDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing field for Auto")
		return
	}

	if err := h.autoStore.Create(r.Context(), auto); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, FallbackMessage(status), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, createResponse{Success: true})
}

// DeleteAuto handles DELETE /autos/{id} requests.
// Existence is checked explicitly before the delete, so a missing auto
// surfaces as 404 rather than a store-level failure.
func (h *AutoHandler) DeleteAuto(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	if _, err := h.autoStore.GetByID(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("No auto with given id %d is found", id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	if err := h.autoStore.Delete(r.Context(), id); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, FallbackMessage(status), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deleteResponse{
		Success: true,
		Deleted: id,
	})
}

// UpdateAuto handles PATCH /autos/{id} requests.
// Only supplied, non-empty fields overwrite the stored values; a PATCH
// carrying an empty string leaves the field unchanged.
func (h *AutoHandler) UpdateAuto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	auto, err := h.autoStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("Auto with id: %d could not be found.", id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	var req UpdateAutoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FallbackMessage(http.StatusBadRequest))
		return
	}

	if req.Title != nil && *req.Title != "" {
		auto.Title = *req.Title
	}
	if req.ReleaseDate != nil && *req.ReleaseDate != "" {
		releaseDate, err := parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid release date for Auto")
			return
		}
		auto.ReleaseDate = releaseDate
	}

	if err := h.autoStore.Update(r.Context(), auto); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, FallbackMessage(status), err)
		return
	}

	formatted, err := h.formatAuto(r.Context(), auto)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			FallbackMessage(http.StatusInternalServerError), err)
		return
	}

	log.Debug("auto updated", slog.Int64("auto_id", id))

	shared.RespondWithJSON(w, r, http.StatusOK, updatedAutoResponse{
		Success: true,
		Updated: formatted,
	})
}

// formatAuto materializes the auto's buyers and converts it to a
// response DTO. This is the explicit eager-load step for the
// auto-to-buyers relationship.
func (h *AutoHandler) formatAuto(ctx context.Context, auto *domain.Auto) (AutoResponse, error) {
	buyers, err := h.buyerStore.FindByAutoID(ctx, auto.ID)
	if err != nil {
		return AutoResponse{}, err
	}
	auto.Buyers = buyers
	return autoToResponse(auto), nil
}
