package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/service"
	"go.uber.org/zap"
)

// TargetHandler handles HTTP requests for sales targets
type TargetHandler struct {
	targetService *service.TargetService
	logger        *zap.Logger
}

// NewTargetHandler creates a new TargetHandler
func NewTargetHandler(targetService *service.TargetService, logger *zap.Logger) *TargetHandler {
	return &TargetHandler{targetService: targetService, logger: logger}
}

// ListTargets godoc
// @Summary List targets
// @Description Get paginated list of targets scoped to the user's zones
// @Tags Targets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param zoneId query string false "Filter by zone"
// @Param userId query string false "Filter by user"
// @Param period query string false "Filter by period (YYYY-MM or YYYY)"
// @Param periodType query string false "Filter by period type" Enums(monthly, yearly)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /targets [get]
func (h *TargetHandler) ListTargets(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filter := repository.TargetFilter{
		Period:     r.URL.Query().Get("period"),
		PeriodType: domain.TargetPeriodType(r.URL.Query().Get("periodType")),
	}
	if filter.PeriodType != "" && !filter.PeriodType.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Invalid periodType: must be monthly or yearly")
		return
	}
	if raw := r.URL.Query().Get("zoneId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid zoneId: must be a valid UUID")
			return
		}
		filter.ZoneID = &id
	}
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid userId: must be a valid UUID")
			return
		}
		filter.UserID = &id
	}

	targets, total, err := h.targetService.List(r.Context(), page, pageSize, filter)
	if err != nil {
		h.logger.Error("failed to list targets", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, paginatedResponse(targets, total, page, pageSize))
}

// GetTarget godoc
// @Summary Get target
// @Description Get a target by ID
// @Tags Targets
// @Produce json
// @Param id path string true "Target ID"
// @Success 200 {object} domain.TargetDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /targets/{id} [get]
func (h *TargetHandler) GetTarget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID")
		return
	}

	target, err := h.targetService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, target)
}

// GetTargetAchievement godoc
// @Summary Get target achievement
// @Description Get a target with actuals computed from booked offers
// @Tags Targets
// @Produce json
// @Param id path string true "Target ID"
// @Success 200 {object} domain.TargetAchievementDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /targets/{id}/achievement [get]
func (h *TargetHandler) GetTargetAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID")
		return
	}

	achievement, err := h.targetService.GetAchievement(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, achievement)
}

// CreateTarget godoc
// @Summary Create target
// @Description Create a zone- or user-scoped target (admin only)
// @Tags Targets
// @Accept json
// @Produce json
// @Param request body domain.CreateTargetRequest true "Target data"
// @Success 201 {object} domain.TargetDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /targets [post]
func (h *TargetHandler) CreateTarget(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	target, err := h.targetService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, target)
}

// UpdateTarget godoc
// @Summary Update target
// @Description Update a target's value and count (admin only)
// @Tags Targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID"
// @Param request body domain.UpdateTargetRequest true "Target data"
// @Success 200 {object} domain.TargetDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /targets/{id} [put]
func (h *TargetHandler) UpdateTarget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID")
		return
	}

	var req domain.UpdateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	target, err := h.targetService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, target)
}

// DeleteTarget godoc
// @Summary Delete target
// @Description Delete a target (admin only)
// @Tags Targets
// @Param id path string true "Target ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /targets/{id} [delete]
func (h *TargetHandler) DeleteTarget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID")
		return
	}

	if err := h.targetService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
