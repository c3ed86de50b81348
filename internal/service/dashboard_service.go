package service

import (
	"context"
	"fmt"

	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
)

type DashboardService struct {
	offerRepo *repository.OfferRepository
	logger    *zap.Logger
}

func NewDashboardService(offerRepo *repository.OfferRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{offerRepo: offerRepo, logger: logger}
}

// GetFunnelSummary groups active offers by stage in funnel order
func (s *DashboardService) GetFunnelSummary(ctx context.Context) (*domain.FunnelSummaryDTO, error) {
	aggregates, err := s.offerRepo.FunnelBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load funnel breakdown: %w", err)
	}

	byStage := make(map[domain.OfferStage]repository.StageAggregate, len(aggregates))
	for _, agg := range aggregates {
		byStage[agg.Stage] = agg
	}

	summary := &domain.FunnelSummaryDTO{}
	for _, stage := range domain.FunnelStages() {
		agg := byStage[stage]
		summary.Stages = append(summary.Stages, domain.FunnelStageDTO{
			Stage:      stage,
			OfferCount: agg.OfferCount,
			TotalValue: agg.TotalValue,
		})
		summary.TotalCount += agg.OfferCount
		summary.TotalValue += agg.TotalValue
	}

	return summary, nil
}

// GetZonePerformance returns per-zone offer counts, values and win totals
func (s *DashboardService) GetZonePerformance(ctx context.Context) ([]domain.ZonePerformanceDTO, error) {
	aggregates, err := s.offerRepo.ZonePerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone performance: %w", err)
	}

	dtos := make([]domain.ZonePerformanceDTO, len(aggregates))
	for i, agg := range aggregates {
		dtos[i] = domain.ZonePerformanceDTO{
			ZoneID:     agg.ZoneID,
			ZoneName:   agg.ZoneName,
			OfferCount: agg.OfferCount,
			TotalValue: agg.TotalValue,
			WonCount:   agg.WonCount,
			WonValue:   agg.WonValue,
		}
		if agg.OfferCount > 0 {
			dtos[i].WinRatePct = float64(agg.WonCount) / float64(agg.OfferCount) * 100
		}
	}

	return dtos, nil
}

// GetMonthlyForecast returns expected PO value per month for open offers
func (s *DashboardService) GetMonthlyForecast(ctx context.Context) ([]domain.MonthlyForecastDTO, error) {
	aggregates, err := s.offerRepo.MonthlyForecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load forecast: %w", err)
	}

	dtos := make([]domain.MonthlyForecastDTO, len(aggregates))
	for i, agg := range aggregates {
		dtos[i] = domain.MonthlyForecastDTO{
			Month:         agg.Month,
			OfferCount:    agg.OfferCount,
			ExpectedValue: agg.ExpectedValue,
		}
	}

	return dtos, nil
}
