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

// ZoneHandler handles HTTP requests for service zones
type ZoneHandler struct {
	zoneService *service.ZoneService
	logger      *zap.Logger
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zoneService *service.ZoneService, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService, logger: logger}
}

// ListZones godoc
// @Summary List zones
// @Description Get all service zones
// @Tags Zones
// @Produce json
// @Param includeInactive query bool false "Include inactive zones"
// @Success 200 {array} domain.ZoneDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /zones [get]
func (h *ZoneHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	zones, err := h.zoneService.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("failed to list zones", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, zones)
}

// GetZone godoc
// @Summary Get zone
// @Description Get a service zone by ID
// @Tags Zones
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} domain.ZoneDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /zones/{id} [get]
func (h *ZoneHandler) GetZone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid zone ID")
		return
	}

	zone, err := h.zoneService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, zone)
}

// CreateZone godoc
// @Summary Create zone
// @Description Create a new service zone (admin only)
// @Tags Zones
// @Accept json
// @Produce json
// @Param request body domain.CreateZoneRequest true "Zone data"
// @Success 201 {object} domain.ZoneDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /zones [post]
func (h *ZoneHandler) CreateZone(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	zone, err := h.zoneService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, zone)
}

// UpdateZone godoc
// @Summary Update zone
// @Description Update a service zone (admin only)
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Param request body domain.UpdateZoneRequest true "Zone data"
// @Success 200 {object} domain.ZoneDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /zones/{id} [put]
func (h *ZoneHandler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid zone ID")
		return
	}

	var req domain.UpdateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	zone, err := h.zoneService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, zone)
}
