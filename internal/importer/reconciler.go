package importer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ZoneReport is the outcome of reconciling one zone against its spreadsheet
type ZoneReport struct {
	ZoneName         string  `json:"zoneName"`
	SpreadsheetRows  int     `json:"spreadsheetRows"`
	SpreadsheetTotal float64 `json:"spreadsheetTotal"`
	CountBefore      int64   `json:"countBefore"`
	TotalBefore      float64 `json:"totalBefore"`
	Imported         int     `json:"imported"`
	SkippedInvalid   int     `json:"skippedInvalid"`
	CountAfter       int64   `json:"countAfter"`
	TotalAfter       float64 `json:"totalAfter"`
	DifferencePct    float64 `json:"differencePct"`
	Classification   string  `json:"classification"`
}

// Reconciler imports spreadsheet offers missing from the database and
// reports the residual per-zone discrepancy. Re-running is safe: already
// imported reference numbers drop out of the missing set on the next pass.
type Reconciler struct {
	db       *gorm.DB
	resolver *Resolver
	importer *Importer
	logger   *zap.Logger
}

func NewReconciler(db *gorm.DB, resolver *Resolver, importer *Importer, logger *zap.Logger) *Reconciler {
	return &Reconciler{db: db, resolver: resolver, importer: importer, logger: logger}
}

// ReconcileZone diffs one zone's spreadsheet rows against stored offers by
// reference number, imports the missing ones, then re-diffs. Rows without a
// reference number or company name cannot be matched and count as invalid.
func (r *Reconciler) ReconcileZone(ctx context.Context, zoneName string, rows []OfferRow) (*ZoneReport, error) {
	zoneID, ok := r.resolver.ResolveZone(zoneName)
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", zoneName)
	}

	report := &ZoneReport{ZoneName: zoneName}

	var zoneRows []OfferRow
	for _, row := range rows {
		if row.Zone != "" && !strings.EqualFold(strings.TrimSpace(row.Zone), zoneName) {
			continue
		}
		zoneRows = append(zoneRows, row)
		report.SpreadsheetRows++
		report.SpreadsheetTotal += row.OfferValue
	}

	offers := repository.NewOfferRepository(r.db)

	count, total, err := offers.ZoneTotals(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to read zone totals: %w", err)
	}
	report.CountBefore = count
	report.TotalBefore = total

	missing, skippedInvalid, err := r.findMissing(ctx, offers, zoneID, zoneName, zoneRows)
	if err != nil {
		return nil, err
	}
	report.SkippedInvalid = skippedInvalid

	r.logger.Info("zone discrepancy computed",
		zap.String("zone", zoneName),
		zap.Int("spreadsheetRows", report.SpreadsheetRows),
		zap.Int64("dbCount", count),
		zap.Int("missing", len(missing)),
		zap.Int("invalid", skippedInvalid),
	)

	if len(missing) > 0 {
		stats, err := r.importer.ImportOffers(ctx, missing)
		if err != nil {
			return nil, err
		}
		report.Imported = stats.ImportedOffers
	}

	count, total, err = offers.ZoneTotals(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read zone totals: %w", err)
	}
	report.CountAfter = count
	report.TotalAfter = total
	report.DifferencePct = differencePct(report.TotalAfter, report.SpreadsheetTotal)
	report.Classification = classify(report.DifferencePct)

	return report, nil
}

// findMissing returns spreadsheet rows whose reference number is absent from
// the zone's stored offers, with the zone forced so the importer resolves it.
func (r *Reconciler) findMissing(ctx context.Context, offers *repository.OfferRepository, zoneID uuid.UUID, zoneName string, rows []OfferRow) ([]OfferRow, int, error) {
	existing, err := offers.ListReferenceNumbersByZone(ctx, zoneID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reference numbers: %w", err)
	}

	var missing []OfferRow
	invalid := 0
	for _, row := range rows {
		if row.ReferenceNumber == "" || row.CompanyName == "" {
			invalid++
			continue
		}
		if existing[row.ReferenceNumber] {
			continue
		}
		// A blank zone cell means the zone is implied by the scope of this
		// run; the importer still needs it to resolve.
		row.Zone = zoneName
		missing = append(missing, row)
	}
	return missing, invalid, nil
}

func differencePct(dbTotal, sheetTotal float64) float64 {
	if sheetTotal == 0 {
		if dbTotal == 0 {
			return 0
		}
		return 100
	}
	return math.Abs(dbTotal-sheetTotal) / sheetTotal * 100
}

func classify(pct float64) string {
	switch {
	case pct < 1:
		return "perfect match"
	case pct < 5:
		return "excellent match"
	case pct < 10:
		return "good match"
	default:
		return "remaining difference"
	}
}
