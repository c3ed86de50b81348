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

// OfferHandler handles HTTP requests for offers
type OfferHandler struct {
	offerService *service.OfferService
	logger       *zap.Logger
}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler(offerService *service.OfferService, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{offerService: offerService, logger: logger}
}

// ListOffers godoc
// @Summary List offers
// @Description Get paginated list of offers scoped to the user's zones
// @Tags Offers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param customerId query string false "Filter by customer"
// @Param userId query string false "Filter by assigned user"
// @Param zoneId query string false "Filter by zone"
// @Param stage query string false "Filter by stage" Enums(initial, proposal_sent, negotiation, final_approval, po_received, order_booked, won, lost)
// @Param status query string false "Filter by status" Enums(active, on_hold, closed)
// @Param productType query string false "Filter by product type"
// @Param offerMonth query string false "Filter by offer month (YYYY-MM)"
// @Param search query string false "Search by reference number or remarks"
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /offers [get]
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filter := repository.OfferFilter{
		Stage:       domain.OfferStage(r.URL.Query().Get("stage")),
		Status:      domain.OfferStatus(r.URL.Query().Get("status")),
		ProductType: domain.ProductType(r.URL.Query().Get("productType")),
		OfferMonth:  r.URL.Query().Get("offerMonth"),
		Search:      r.URL.Query().Get("search"),
	}
	if filter.Stage != "" && !filter.Stage.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Invalid stage")
		return
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if filter.ProductType != "" && !filter.ProductType.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Invalid productType")
		return
	}

	for param, dest := range map[string]**uuid.UUID{
		"customerId": &filter.CustomerID,
		"userId":     &filter.UserID,
		"zoneId":     &filter.ZoneID,
	} {
		if raw := r.URL.Query().Get(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid "+param+": must be a valid UUID")
				return
			}
			*dest = &id
		}
	}

	offers, total, err := h.offerService.List(r.Context(), page, pageSize, filter)
	if err != nil {
		h.logger.Error("failed to list offers", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, paginatedResponse(offers, total, page, pageSize))
}

// GetOffer godoc
// @Summary Get offer
// @Description Get an offer by ID with its relations
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /offers/{id} [get]
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	offer, err := h.offerService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// CreateOffer godoc
// @Summary Create offer
// @Description Create a new offer in the initial stage. The reference number is generated when omitted.
// @Tags Offers
// @Accept json
// @Produce json
// @Param request body domain.CreateOfferRequest true "Offer data"
// @Success 201 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /offers [post]
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	offer, err := h.offerService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, offer)
}

// UpdateOffer godoc
// @Summary Update offer
// @Description Update an open offer's fields
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.UpdateOfferRequest true "Offer data"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /offers/{id} [put]
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	var req domain.UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	offer, err := h.offerService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// AdvanceOfferStage godoc
// @Summary Advance offer stage
// @Description Move an offer forward in the funnel. Stages only move forward; a PO value is required from po_received onward; won and lost freeze the offer.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.AdvanceOfferStageRequest true "Stage change"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /offers/{id}/stage [put]
func (h *OfferHandler) AdvanceOfferStage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	var req domain.AdvanceOfferStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	offer, err := h.offerService.AdvanceStage(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// DeleteOffer godoc
// @Summary Delete offer
// @Description Delete an offer (admin only)
// @Tags Offers
// @Param id path string true "Offer ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	if err := h.offerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
