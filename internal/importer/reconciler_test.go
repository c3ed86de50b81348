package importer_test

import (
	"context"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReconcileZone(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	rec := importer.NewReconciler(f.db, f.resolver, imp, zap.NewNop())
	ctx := context.Background()

	// one offer already in the database
	seedExistingOffer(t, f)

	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-REC-1",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "WEST",
			OfferValue:      100000,
		},
		{
			ReferenceNumber: "OF-REC-2",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "WEST",
			OfferValue:      50000,
		},
		{
			// no reference number, cannot be matched
			CompanyName: "Acme Industries",
			Zone:        "WEST",
			OfferValue:  0,
		},
		{
			ReferenceNumber: "OF-REC-9",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "EAST",
			OfferValue:      999999,
		},
	}

	report, err := rec.ReconcileZone(ctx, "WEST", rows)
	require.NoError(t, err)

	// the EAST row is out of scope, the blank-reference row is invalid
	assert.Equal(t, 3, report.SpreadsheetRows)
	assert.Equal(t, 150000.0, report.SpreadsheetTotal)
	assert.Equal(t, int64(1), report.CountBefore)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.SkippedInvalid)
	assert.Equal(t, int64(2), report.CountAfter)
	assert.Equal(t, 150000.0, report.TotalAfter)
	assert.Equal(t, 0.0, report.DifferencePct)
	assert.Equal(t, "perfect match", report.Classification)

	// re-running converges: nothing left to import
	report, err = rec.ReconcileZone(ctx, "WEST", rows)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, int64(2), report.CountAfter)
}

func TestReconcileZoneBlankZoneCell(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	rec := importer.NewReconciler(f.db, f.resolver, imp, zap.NewNop())
	ctx := context.Background()

	// sheets without a zone column leave the cell empty; the zone is
	// implied by the reconciliation scope
	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-NOZ-1",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			OfferValue:      100000,
		},
	}

	report, err := rec.ReconcileZone(ctx, "WEST", rows)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, int64(1), report.CountAfter)

	var offer domain.Offer
	require.NoError(t, f.db.First(&offer, "offer_reference_number = ?", "OF-NOZ-1").Error)
	assert.Equal(t, f.zone.ID, offer.ZoneID)

	// the row has left the missing set, so a second pass imports nothing
	report, err = rec.ReconcileZone(ctx, "WEST", rows)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, int64(1), report.CountAfter)
}

func TestReconcileZoneUnknownZone(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	rec := importer.NewReconciler(f.db, f.resolver, imp, zap.NewNop())

	_, err := rec.ReconcileZone(context.Background(), "CENTRAL", nil)
	assert.Error(t, err)
}

func TestReconcileZoneClassification(t *testing.T) {
	f := setupImportFixtures(t)
	imp := newTestImporter(f, false)
	rec := importer.NewReconciler(f.db, f.resolver, imp, zap.NewNop())

	// sheet total 100000 vs imported 93000 leaves a 7% difference
	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-CLS-1",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "WEST",
			OfferValue:      93000,
		},
		{
			// invalid row still counts toward the spreadsheet total
			CompanyName: "Acme Industries",
			Zone:        "WEST",
			OfferValue:  7000,
		},
	}

	report, err := rec.ReconcileZone(context.Background(), "WEST", rows)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, report.SpreadsheetTotal)
	assert.Equal(t, 93000.0, report.TotalAfter)
	assert.InDelta(t, 7.0, report.DifferencePct, 0.001)
	assert.Equal(t, "good match", report.Classification)
}

// seedExistingOffer seeds the offer the spreadsheet's first row
// refers to, so reconciliation only needs to import the rest.
func seedExistingOffer(t *testing.T, f *importFixtures) {
	t.Helper()
	offer := &domain.Offer{
		OfferReferenceNumber: "OF-REC-1",
		CustomerID:           f.customer.ID,
		UserID:               f.sales.ID,
		ZoneID:               f.zone.ID,
		Stage:                domain.StageInitial,
		Status:               domain.OfferStatusActive,
		Priority:             domain.PriorityMedium,
		OfferValue:           100000,
	}
	require.NoError(t, f.db.Create(offer).Error)
}
