package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
)

// StageAggregate holds per-stage offer counts and values
type StageAggregate struct {
	Stage      domain.OfferStage
	OfferCount int
	TotalValue float64
}

// ZoneAggregate holds per-zone offer counts and values
type ZoneAggregate struct {
	ZoneID     uuid.UUID
	ZoneName   domain.ZoneName
	OfferCount int
	TotalValue float64
	WonCount   int
	WonValue   float64
}

// MonthAggregate holds per-month expected PO values for forecasting
type MonthAggregate struct {
	Month         string
	OfferCount    int
	ExpectedValue float64
}

// FunnelBreakdown groups offers by stage, scoped to the requesting user's zones
func (r *OfferRepository) FunnelBreakdown(ctx context.Context) ([]StageAggregate, error) {
	var rows []StageAggregate
	query := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select("stage, COUNT(*) AS offer_count, COALESCE(SUM(offer_value), 0) AS total_value").
		Where("status = ?", domain.OfferStatusActive).
		Group("stage")
	query = ApplyZoneFilter(ctx, query)
	err := query.Scan(&rows).Error
	return rows, err
}

// ZonePerformance groups offers by zone with win totals
func (r *OfferRepository) ZonePerformance(ctx context.Context) ([]ZoneAggregate, error) {
	var rows []ZoneAggregate
	query := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select(`service_zones.id AS zone_id,
			service_zones.name AS zone_name,
			COUNT(offers.id) AS offer_count,
			COALESCE(SUM(offers.offer_value), 0) AS total_value,
			COALESCE(SUM(CASE WHEN offers.stage = ? THEN 1 ELSE 0 END), 0) AS won_count,
			COALESCE(SUM(CASE WHEN offers.stage = ? THEN offers.offer_value ELSE 0 END), 0) AS won_value`,
			domain.StageWon, domain.StageWon).
		Joins("JOIN service_zones ON service_zones.id = offers.zone_id").
		Group("service_zones.id, service_zones.name")
	query = ApplyZoneFilterWithColumn(ctx, query, "offers.zone_id")
	err := query.Scan(&rows).Error
	return rows, err
}

// MonthlyForecast groups open offers by expected PO month. The expected
// value is the PO value when known, otherwise the probability-weighted
// offer value.
func (r *OfferRepository) MonthlyForecast(ctx context.Context) ([]MonthAggregate, error) {
	var rows []MonthAggregate
	query := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select(`po_expected_month AS month,
			COUNT(*) AS offer_count,
			COALESCE(SUM(CASE WHEN po_value > 0 THEN po_value
				ELSE offer_value * probability_percentage / 100.0 END), 0) AS expected_value`).
		Where("po_expected_month <> '' AND status = ? AND stage NOT IN ?",
			domain.OfferStatusActive, []domain.OfferStage{domain.StageWon, domain.StageLost}).
		Group("po_expected_month").
		Order("po_expected_month ASC")
	query = ApplyZoneFilter(ctx, query)
	err := query.Scan(&rows).Error
	return rows, err
}

// TargetActuals sums booked offers matching a target's scope and period.
// Booked means the offer reached order_booked or won. Monthly targets match
// offer_month exactly; yearly targets match the year prefix.
func (r *OfferRepository) TargetActuals(ctx context.Context, target *domain.Target) (float64, int, error) {
	var result struct {
		Total float64
		Count int
	}

	query := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select("COALESCE(SUM(CASE WHEN po_value > 0 THEN po_value ELSE offer_value END), 0) AS total, COUNT(*) AS count").
		Where("stage IN ?", []domain.OfferStage{domain.StageOrderBooked, domain.StageWon})

	if target.ZoneID != nil {
		query = query.Where("zone_id = ?", *target.ZoneID)
	}
	if target.UserID != nil {
		query = query.Where("user_id = ?", *target.UserID)
	}
	if target.ProductType != nil {
		query = query.Where("product_type = ?", *target.ProductType)
	}

	if target.PeriodType == domain.PeriodYearly {
		query = query.Where("offer_month LIKE ?", target.Period+"-%")
	} else {
		query = query.Where("offer_month = ?", target.Period)
	}

	err := query.Scan(&result).Error
	return result.Total, result.Count, err
}
