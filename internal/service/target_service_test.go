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
	"gorm.io/gorm"
)

func setupTargetService(t *testing.T) (*service.TargetService, *offerFixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	admin := testutil.CreateUser(t, db, "Admin User", "admin@example.com", domain.RoleAdmin)
	sales := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser, *zone)
	customer := testutil.CreateCustomer(t, db, "Acme Industries", &zone.ID)

	svc := service.NewTargetService(
		repository.NewTargetRepository(db),
		repository.NewOfferRepository(db),
		zap.NewNop(),
	)
	return svc, &offerFixtures{db: db, zone: zone, admin: admin, sales: sales, customer: customer}
}

func TestTargetCreateRequiresScope(t *testing.T) {
	svc, _ := setupTargetService(t)

	_, err := svc.Create(context.Background(), &domain.CreateTargetRequest{
		Period:      "2025-05",
		PeriodType:  domain.PeriodMonthly,
		TargetValue: 500000,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTargetCreateRejectsDuplicateScope(t *testing.T) {
	svc, f := setupTargetService(t)
	ctx := context.Background()

	req := &domain.CreateTargetRequest{
		ZoneID:      &f.zone.ID,
		Period:      "2025-05",
		PeriodType:  domain.PeriodMonthly,
		TargetValue: 500000,
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrDuplicateTarget)
}

func TestTargetAchievement(t *testing.T) {
	svc, f := setupTargetService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateTargetRequest{
		ZoneID:           &f.zone.ID,
		Period:           "2025-05",
		PeriodType:       domain.PeriodMonthly,
		TargetValue:      200000,
		TargetOfferCount: 4,
	})
	require.NoError(t, err)

	// booked offers count toward the target; open and lost offers do not
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.Status = domain.OfferStatusClosed
		o.OfferMonth = "2025-05"
		o.OfferValue = 80000
		o.POValue = 90000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageOrderBooked
		o.OfferMonth = "2025-05"
		o.OfferValue = 60000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageNegotiation
		o.OfferMonth = "2025-05"
		o.OfferValue = 999999
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.OfferMonth = "2025-06"
		o.OfferValue = 999999
	})

	achievement, err := svc.GetAchievement(ctx, dto.ID)
	require.NoError(t, err)

	// PO value wins over offer value when set: 90000 + 60000
	assert.Equal(t, 150000.0, achievement.ActualValue)
	assert.Equal(t, 2, achievement.ActualOfferCount)
	assert.Equal(t, 75.0, achievement.ValueAchievedPct)
	assert.Equal(t, 50.0, achievement.CountAchievedPct)
}

func TestTargetYearlyAchievementMatchesYearPrefix(t *testing.T) {
	svc, f := setupTargetService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateTargetRequest{
		UserID:      &f.sales.ID,
		Period:      "2025",
		PeriodType:  domain.PeriodYearly,
		TargetValue: 100000,
	})
	require.NoError(t, err)

	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.OfferMonth = "2025-03"
		o.OfferValue = 40000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageOrderBooked
		o.OfferMonth = "2025-11"
		o.OfferValue = 60000
	})
	testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.OfferMonth = "2024-12"
		o.OfferValue = 999999
	})

	achievement, err := svc.GetAchievement(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, achievement.ActualValue)
	assert.Equal(t, 100.0, achievement.ValueAchievedPct)
}

func TestTargetUpdateAndDelete(t *testing.T) {
	svc, f := setupTargetService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateTargetRequest{
		ZoneID:      &f.zone.ID,
		Period:      "2025-07",
		PeriodType:  domain.PeriodMonthly,
		TargetValue: 100000,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, dto.ID, &domain.UpdateTargetRequest{
		TargetValue:      250000,
		TargetOfferCount: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 250000.0, updated.TargetValue)
	assert.Equal(t, 5, updated.TargetOfferCount)

	require.NoError(t, svc.Delete(ctx, dto.ID))
	_, err = svc.GetByID(ctx, dto.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
