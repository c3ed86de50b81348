package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/service"
	"go.uber.org/zap"
)

// AssetHandler handles HTTP requests for customer assets
type AssetHandler struct {
	assetService *service.AssetService
	logger       *zap.Logger
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{assetService: assetService, logger: logger}
}

// ListAssetsByCustomer godoc
// @Summary List assets for a customer
// @Description Get a customer's machines
// @Tags Assets
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} domain.AssetDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /customers/{customerId}/assets [get]
func (h *AssetHandler) ListAssetsByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	assets, err := h.assetService.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Error("failed to list assets", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, assets)
}

// GetAsset godoc
// @Summary Get asset
// @Description Get an asset by ID
// @Tags Assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} domain.AssetDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	asset, err := h.assetService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, asset)
}

// CreateAsset godoc
// @Summary Create asset
// @Description Register a machine for a customer
// @Tags Assets
// @Accept json
// @Produce json
// @Param request body domain.CreateAssetRequest true "Asset data"
// @Success 201 {object} domain.AssetDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	asset, err := h.assetService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset godoc
// @Summary Update asset
// @Description Update an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param request body domain.UpdateAssetRequest true "Asset data"
// @Success 200 {object} domain.AssetDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var req domain.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	asset, err := h.assetService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, asset)
}

// DeleteAsset godoc
// @Summary Delete asset
// @Description Delete an asset
// @Tags Assets
// @Param id path string true "Asset ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	if err := h.assetService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
