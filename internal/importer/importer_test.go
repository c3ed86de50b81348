package importer_test

import (
	"context"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type importFixtures struct {
	db       *gorm.DB
	zone     *domain.ServiceZone
	admin    *domain.User
	sales    *domain.User
	customer *domain.Customer
	resolver *importer.Resolver
}

func setupImportFixtures(t *testing.T) *importFixtures {
	t.Helper()
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	admin := testutil.CreateUser(t, db, "Admin User", "admin@example.com", domain.RoleAdmin)
	sales := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser, *zone)
	customer := testutil.CreateCustomer(t, db, "Acme Industries", &zone.ID)

	resolver := setupResolver(t, db)
	return &importFixtures{
		db:       db,
		zone:     zone,
		admin:    admin,
		sales:    sales,
		customer: customer,
		resolver: resolver,
	}
}

func newTestImporter(f *importFixtures, dryRun bool) *importer.Importer {
	cfg := &config.ImportConfig{BatchSize: 2, ReferencePrefix: "OF"}
	return importer.NewImporter(f.db, f.resolver, cfg, f.admin.ID, dryRun, zap.NewNop())
}

func TestImportOffers(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	ctx := context.Background()

	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-1001",
			CompanyName:     "Acme Industries Pvt Ltd",
			ContactPerson:   "Sunil Shetty",
			ContactNumber:   "9876543210",
			AssetName:       "Shuttle XP 500",
			SerialNumber:    "SN-1001",
			ProductType:     "Ccontarct",
			Stage:           "PO received",
			OfferValue:      250000,
			POValue:         250000,
			Probability:     90,
			OfferMonth:      "April",
			SalesPerson:     "Ramesh",
			Zone:            "WEST",
		},
		{
			ReferenceNumber: "OF-1002",
			CompanyName:     "Unknown Company",
			SalesPerson:     "Ramesh",
			Zone:            "WEST",
			OfferValue:      50000,
		},
		{
			ReferenceNumber: "OF-1003",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh",
			Zone:            "CENTRAL",
			OfferValue:      75000,
		},
	}

	stats, err := imp.ImportOffers(ctx, rows)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalRows)
	assert.Equal(t, 1, stats.ImportedOffers)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 1, stats.ContactsCreated)
	assert.Equal(t, 1, stats.AssetsCreated)
	assert.Equal(t, 2, stats.ErrorCount)
	assert.Equal(t, stats.TotalRows, stats.ImportedOffers+stats.Skipped)

	offers := repository.NewOfferRepository(f.db)
	offer, err := offers.GetByReferenceNumber(ctx, "OF-1001")
	require.NoError(t, err)
	assert.Equal(t, f.customer.ID, offer.CustomerID)
	assert.Equal(t, f.sales.ID, offer.UserID)
	assert.Equal(t, f.zone.ID, offer.ZoneID)
	assert.Equal(t, domain.StagePOReceived, offer.Stage)
	require.NotNil(t, offer.ProductType)
	assert.Equal(t, domain.ProductTypeContract, *offer.ProductType)
	assert.Equal(t, "2025-04", offer.OfferMonth)
	assert.NotNil(t, offer.ContactID)
	assert.NotNil(t, offer.AssetID)
	require.NotNil(t, offer.CreatedByID)
	assert.Equal(t, f.admin.ID, *offer.CreatedByID)
}

func TestImportOffersIsIdempotent(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	ctx := context.Background()

	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-2001",
			CompanyName:     "Acme Industries",
			ContactPerson:   "Sunil Shetty",
			SerialNumber:    "SN-2001",
			AssetName:       "Megamat RS",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "WEST",
			OfferValue:      120000,
		},
	}

	stats, err := imp.ImportOffers(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ImportedOffers)

	// second run must not duplicate the offer, its contact or its asset
	stats, err = imp.ImportOffers(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ImportedOffers)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.ContactsCreated)
	assert.Equal(t, 0, stats.AssetsCreated)
	assert.Equal(t, 0, stats.ErrorCount)

	var offerCount int64
	require.NoError(t, f.db.Model(&domain.Offer{}).Where("offer_reference_number = ?", "OF-2001").Count(&offerCount).Error)
	assert.Equal(t, int64(1), offerCount)
}

func TestImportOffersGeneratesReference(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)

	rows := []importer.OfferRow{
		{
			CompanyName: "Acme Industries",
			SalesPerson: "Ramesh Kumar",
			Zone:        "WEST",
			OfferValue:  30000,
		},
	}

	stats, err := imp.ImportOffers(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ImportedOffers)

	var offer domain.Offer
	require.NoError(t, f.db.Where("customer_id = ?", f.customer.ID).First(&offer).Error)
	assert.Contains(t, offer.OfferReferenceNumber, "OF-")
}

func TestImportOffersDryRun(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, true)

	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-3001",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "WEST",
			OfferValue:      99000,
		},
	}

	stats, err := imp.ImportOffers(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ImportedOffers)

	var count int64
	require.NoError(t, f.db.Model(&domain.Offer{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestImportCustomers(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	ctx := context.Background()

	rows := []importer.CustomerRow{
		{CompanyName: "ACME INDUSTRIES", Zone: "WEST"},
		{CompanyName: "Globex Corporation", Location: "Pune", Zone: "WEST"},
		{CompanyName: "Initech", Zone: "NOWHERE"},
	}

	stats := &importer.Stats{}
	require.NoError(t, imp.ImportCustomers(ctx, rows, stats))

	// the existing customer is skipped; the unknown zone row is created zoneless
	assert.Equal(t, 2, stats.CustomersCreated)

	var globex domain.Customer
	require.NoError(t, f.db.Where("company_name = ?", "Globex Corporation").First(&globex).Error)
	require.NotNil(t, globex.ZoneID)
	assert.Equal(t, f.zone.ID, *globex.ZoneID)

	var initech domain.Customer
	require.NoError(t, f.db.Where("company_name = ?", "Initech").First(&initech).Error)
	assert.Nil(t, initech.ZoneID)

	// created customers join the cache and resolve immediately
	_, ok := f.resolver.ResolveCustomer("Globex Corporation")
	assert.True(t, ok)
}
