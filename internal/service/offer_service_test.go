package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/service"
	"github.com/kardex/offerfunnel-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }

type offerFixtures struct {
	db       *gorm.DB
	zone     *domain.ServiceZone
	other    *domain.ServiceZone
	admin    *domain.User
	sales    *domain.User
	customer *domain.Customer
}

func setupOfferService(t *testing.T) (*service.OfferService, *offerFixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	other := testutil.CreateZone(t, db, domain.ZoneEast)
	admin := testutil.CreateUser(t, db, "Admin User", "admin@example.com", domain.RoleAdmin)
	sales := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser, *zone)
	customer := testutil.CreateCustomer(t, db, "Acme Industries", &zone.ID)

	svc := service.NewOfferService(
		repository.NewOfferRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewZoneRepository(db),
		repository.NewUserRepository(db),
		&config.ImportConfig{ReferencePrefix: "OF"},
		zap.NewNop(),
	)
	return svc, &offerFixtures{db: db, zone: zone, other: other, admin: admin, sales: sales, customer: customer}
}

func (f *offerFixtures) asZoneUser(ctx context.Context) context.Context {
	return auth.WithUserContext(ctx, &auth.UserContext{
		UserID:  f.sales.ID,
		Name:    f.sales.Name,
		Role:    domain.RoleZoneUser,
		ZoneIDs: []uuid.UUID{f.zone.ID},
	})
}

func TestOfferCreate(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := f.asZoneUser(context.Background())

	dto, err := svc.Create(ctx, &domain.CreateOfferRequest{
		CustomerID: f.customer.ID,
		UserID:     f.sales.ID,
		ZoneID:     f.zone.ID,
		OfferValue: 200000,
		OfferMonth: "2025-05",
	})
	require.NoError(t, err)

	assert.Contains(t, dto.OfferReferenceNumber, "OF-")
	assert.Equal(t, domain.StageInitial, dto.Stage)
	assert.Equal(t, domain.OfferStatusActive, dto.Status)
	assert.Equal(t, domain.PriorityMedium, dto.Priority)
	assert.Equal(t, 200000.0, dto.OfferValue)
}

func TestOfferCreateDeniedOutsideAssignedZones(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := f.asZoneUser(context.Background())

	_, err := svc.Create(ctx, &domain.CreateOfferRequest{
		CustomerID: f.customer.ID,
		UserID:     f.sales.ID,
		ZoneID:     f.other.ID,
		OfferValue: 1000,
	})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
}

func TestOfferCreateRejectsDuplicateReference(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := context.Background()

	req := &domain.CreateOfferRequest{
		OfferReferenceNumber: "OF-DUP-1",
		CustomerID:           f.customer.ID,
		UserID:               f.sales.ID,
		ZoneID:               f.zone.ID,
		OfferValue:           1000,
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestOfferAdvanceStageForwardOnly(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := context.Background()
	offer := testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageNegotiation
	})

	// backwards is rejected
	_, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage: domain.StageProposalSent,
	})
	assert.ErrorIs(t, err, service.ErrInvalidStageTransition)

	// same stage is rejected
	_, err = svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage: domain.StageNegotiation,
	})
	assert.ErrorIs(t, err, service.ErrInvalidStageTransition)

	// forward works
	dto, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage: domain.StageFinalApproval,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StageFinalApproval, dto.Stage)
}

func TestOfferAdvanceStageRequiresPOValue(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := context.Background()
	offer := testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageFinalApproval
	})

	_, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage: domain.StagePOReceived,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	dto, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage:   domain.StagePOReceived,
		POValue: floatPtr(95000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StagePOReceived, dto.Stage)
	assert.Equal(t, 95000.0, dto.POValue)
}

func TestOfferCanBeLostFromAnyOpenStage(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := context.Background()
	offer := testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageInitial
	})

	dto, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage:   domain.StageLost,
		Remarks: "went with a competitor",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StageLost, dto.Stage)
	assert.Equal(t, domain.OfferStatusClosed, dto.Status)
}

func TestTerminalOfferIsFrozen(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := context.Background()
	offer := testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageWon
		o.Status = domain.OfferStatusClosed
	})

	_, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage: domain.StageLost,
	})
	assert.ErrorIs(t, err, service.ErrOfferClosed)

	_, err = svc.Update(ctx, offer.ID, &domain.UpdateOfferRequest{
		UserID:     f.sales.ID,
		OfferValue: 1,
	})
	assert.ErrorIs(t, err, service.ErrOfferClosed)
}

func TestOfferWinSetsClosedStatus(t *testing.T) {
	svc, f := setupOfferService(t)
	ctx := context.Background()
	offer := testutil.CreateOffer(t, f.db, f.customer, f.sales, f.zone, func(o *domain.Offer) {
		o.Stage = domain.StageOrderBooked
		o.POValue = 120000
	})

	dto, err := svc.AdvanceStage(ctx, offer.ID, &domain.AdvanceOfferStageRequest{
		Stage: domain.StageWon,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StageWon, dto.Stage)
	assert.Equal(t, domain.OfferStatusClosed, dto.Status)
}
