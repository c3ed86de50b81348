package handler

import (
	"net/http"

	"github.com/kardex/offerfunnel-api/internal/service"
	"go.uber.org/zap"
)

// DashboardHandler serves funnel and forecast aggregations
type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// GetFunnelSummary godoc
// @Summary Funnel summary
// @Description Get active offer counts and values per funnel stage
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.FunnelSummaryDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /dashboard/funnel [get]
func (h *DashboardHandler) GetFunnelSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetFunnelSummary(r.Context())
	if err != nil {
		h.logger.Error("failed to load funnel summary", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetZonePerformance godoc
// @Summary Zone performance
// @Description Get per-zone offer totals and win rates
// @Tags Dashboard
// @Produce json
// @Success 200 {array} domain.ZonePerformanceDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /dashboard/zones [get]
func (h *DashboardHandler) GetZonePerformance(w http.ResponseWriter, r *http.Request) {
	performance, err := h.dashboardService.GetZonePerformance(r.Context())
	if err != nil {
		h.logger.Error("failed to load zone performance", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, performance)
}

// GetMonthlyForecast godoc
// @Summary Monthly forecast
// @Description Get expected PO value per month for open offers
// @Tags Dashboard
// @Produce json
// @Success 200 {array} domain.MonthlyForecastDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /dashboard/forecast [get]
func (h *DashboardHandler) GetMonthlyForecast(w http.ResponseWriter, r *http.Request) {
	forecast, err := h.dashboardService.GetMonthlyForecast(r.Context())
	if err != nil {
		h.logger.Error("failed to load forecast", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, forecast)
}
