package service_test

import (
	"context"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/service"
	"github.com/kardex/offerfunnel-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupDashboardService(t *testing.T) (*service.DashboardService, *offerFixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	sales := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser, *zone)
	customer := testutil.CreateCustomer(t, db, "Acme Industries", &zone.ID)

	svc := service.NewDashboardService(repository.NewOfferRepository(db), zap.NewNop())
	return svc, &offerFixtures{db: db, zone: zone, sales: sales, customer: customer}
}

func TestFunnelSummary(t *testing.T) {
	svc, f := setupDashboardService(t)
	ctx := context.Background()

	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageInitial
		o.OfferValue = 10000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageInitial
		o.OfferValue = 20000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageNegotiation
		o.OfferValue = 50000
	})
	// closed offers stay out of the funnel
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageLost
		o.Status = domain.OfferStatusClosed
		o.OfferValue = 999999
	})

	summary, err := svc.GetFunnelSummary(ctx)
	require.NoError(t, err)

	require.Len(t, summary.Stages, len(domain.FunnelStages()))
	assert.Equal(t, 3, summary.TotalCount)
	assert.Equal(t, 80000.0, summary.TotalValue)

	assert.Equal(t, domain.StageInitial, summary.Stages[0].Stage)
	assert.Equal(t, 2, summary.Stages[0].OfferCount)
	assert.Equal(t, 30000.0, summary.Stages[0].TotalValue)

	assert.Equal(t, domain.StageNegotiation, summary.Stages[2].Stage)
	assert.Equal(t, 1, summary.Stages[2].OfferCount)

	// stages with no offers still render with zero counts
	assert.Equal(t, domain.StageWon, summary.Stages[len(summary.Stages)-1].Stage)
	assert.Equal(t, 0, summary.Stages[len(summary.Stages)-1].OfferCount)
}

func TestZonePerformance(t *testing.T) {
	svc, f := setupDashboardService(t)
	ctx := context.Background()

	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.Status = domain.OfferStatusClosed
		o.OfferValue = 100000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageNegotiation
		o.OfferValue = 60000
	})

	rows, err := svc.GetZonePerformance(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, f.zone.ID, rows[0].ZoneID)
	assert.Equal(t, domain.ZoneWest, rows[0].ZoneName)
	assert.Equal(t, 2, rows[0].OfferCount)
	assert.Equal(t, 160000.0, rows[0].TotalValue)
	assert.Equal(t, 1, rows[0].WonCount)
	assert.Equal(t, 100000.0, rows[0].WonValue)
	assert.Equal(t, 50.0, rows[0].WinRatePct)
}

func TestMonthlyForecast(t *testing.T) {
	svc, f := setupDashboardService(t)
	ctx := context.Background()

	// PO value known: counts as-is
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StagePOReceived
		o.POValue = 50000
		o.POExpectedMonth = "2025-06"
	})
	// no PO value: probability-weighted offer value
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageNegotiation
		o.OfferValue = 100000
		o.ProbabilityPercentage = 40
		o.POExpectedMonth = "2025-06"
	})
	// terminal offers are excluded from the forecast
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.POValue = 999999
		o.POExpectedMonth = "2025-06"
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageProposalSent
		o.OfferValue = 20000
		o.ProbabilityPercentage = 50
		o.POExpectedMonth = "2025-07"
	})

	rows, err := svc.GetMonthlyForecast(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-06", rows[0].Month)
	assert.Equal(t, 2, rows[0].OfferCount)
	assert.Equal(t, 90000.0, rows[0].ExpectedValue)

	assert.Equal(t, "2025-07", rows[1].Month)
	assert.Equal(t, 10000.0, rows[1].ExpectedValue)
}
