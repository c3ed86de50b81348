package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errorPreviewLimit caps how many row errors the stats carry verbatim;
// anything beyond it is summarized by count.
const errorPreviewLimit = 10

// Stats accumulates the outcome of one import run. Every input row ends up
// either imported or skipped, so ImportedOffers+Skipped always equals
// TotalRows.
type Stats struct {
	TotalRows        int      `json:"totalRows"`
	CustomersCreated int      `json:"customersCreated"`
	ContactsCreated  int      `json:"contactsCreated"`
	AssetsCreated    int      `json:"assetsCreated"`
	ImportedOffers   int      `json:"importedOffers"`
	Skipped          int      `json:"skipped"`
	ErrorCount       int      `json:"errorCount"`
	Errors           []string `json:"errors"`
}

func (s *Stats) recordError(msg string) {
	s.ErrorCount++
	if len(s.Errors) < errorPreviewLimit {
		s.Errors = append(s.Errors, msg)
	}
}

// Summary renders the stats for console output, truncating the error list
// to the preview cap.
func (s *Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d imported=%d skipped=%d customers=%d contacts=%d assets=%d",
		s.TotalRows, s.ImportedOffers, s.Skipped, s.CustomersCreated, s.ContactsCreated, s.AssetsCreated)
	for _, e := range s.Errors {
		fmt.Fprintf(&b, "\n  - %s", e)
	}
	if s.ErrorCount > len(s.Errors) {
		fmt.Fprintf(&b, "\n  ... and %d more errors", s.ErrorCount-len(s.Errors))
	}
	return b.String()
}

// Importer materializes spreadsheet rows as customers, contacts, assets and
// offers. Each offer row is written in its own transaction so one bad row
// never poisons the batch.
type Importer struct {
	db       *gorm.DB
	resolver *Resolver
	cfg      *config.ImportConfig
	logger   *zap.Logger
	dryRun   bool

	// importedBy stamps audit columns on created rows
	importedBy uuid.UUID
}

func NewImporter(db *gorm.DB, resolver *Resolver, cfg *config.ImportConfig, importedBy uuid.UUID, dryRun bool, logger *zap.Logger) *Importer {
	return &Importer{
		db:         db,
		resolver:   resolver,
		cfg:        cfg,
		logger:     logger,
		dryRun:     dryRun,
		importedBy: importedBy,
	}
}

// ImportCustomers creates customers that are not yet in the resolver cache.
// The zone is resolved by exact name; rows with an unknown zone are created
// without one rather than skipped.
func (imp *Importer) ImportCustomers(ctx context.Context, rows []CustomerRow, stats *Stats) error {
	customers := repository.NewCustomerRepository(imp.db)

	for _, row := range rows {
		if _, ok := imp.resolver.customers.ids[normalizeKey(row.CompanyName)]; ok {
			continue
		}

		customer := &domain.Customer{
			CompanyName: row.CompanyName,
			Location:    row.Location,
			Department:  row.Department,
			IsActive:    true,
		}
		if imp.importedBy != uuid.Nil {
			createdBy := imp.importedBy
			customer.CreatedByID = &createdBy
		}
		if zoneID, ok := imp.resolver.ResolveZone(row.Zone); ok {
			customer.ZoneID = &zoneID
		}

		if imp.dryRun {
			imp.logger.Info("dry run: would create customer", zap.String("companyName", row.CompanyName))
			stats.CustomersCreated++
			continue
		}

		if err := customers.Create(ctx, customer); err != nil {
			stats.recordError(fmt.Sprintf("customer %q: %v", row.CompanyName, err))
			continue
		}
		imp.resolver.customers.add(customer.CompanyName, customer.ID)
		stats.CustomersCreated++
	}

	return nil
}

// ImportOffers processes offer rows in fixed-size batches with a pause
// between them to avoid hammering the database. Rows are handled in source
// order and each failure is independent.
func (imp *Importer) ImportOffers(ctx context.Context, rows []OfferRow) (*Stats, error) {
	stats := &Stats{TotalRows: len(rows)}
	batchSize := imp.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			imp.importRow(ctx, rows[i], stats)
		}

		imp.logger.Info("batch complete",
			zap.Int("processed", end),
			zap.Int("total", len(rows)),
			zap.Int("imported", stats.ImportedOffers),
			zap.Int("skipped", stats.Skipped),
		)

		if end < len(rows) {
			time.Sleep(imp.cfg.BatchPause())
		}
	}

	return stats, nil
}

// importRow resolves every required reference before writing anything, then
// creates contact, asset and offer inside one transaction.
func (imp *Importer) importRow(ctx context.Context, row OfferRow, stats *Stats) {
	rowRef := row.ReferenceNumber
	if rowRef == "" {
		rowRef = fmt.Sprintf("%s row %d", row.SourceSheet, row.SourceRow)
	}

	customerID, ok := imp.resolver.ResolveCustomer(row.CompanyName)
	if !ok {
		stats.Skipped++
		stats.recordError(fmt.Sprintf("%s: customer %q not found", rowRef, row.CompanyName))
		return
	}
	userID, ok := imp.resolver.ResolveUser(row.SalesPerson)
	if !ok {
		stats.Skipped++
		stats.recordError(fmt.Sprintf("%s: user %q not found", rowRef, row.SalesPerson))
		return
	}
	zoneID, ok := imp.resolver.ResolveZone(row.Zone)
	if !ok {
		stats.Skipped++
		stats.recordError(fmt.Sprintf("%s: zone %q not found", rowRef, row.Zone))
		return
	}

	reference := row.ReferenceNumber
	if reference == "" {
		reference = domain.NewOfferReference(imp.cfg.ReferencePrefix)
	}

	if imp.dryRun {
		imp.logger.Info("dry run: would import offer",
			zap.String("reference", reference),
			zap.String("companyName", row.CompanyName),
		)
		stats.ImportedOffers++
		return
	}

	err := imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offers := repository.NewOfferRepository(tx)

		if _, err := offers.GetByReferenceNumber(ctx, reference); err == nil {
			return errAlreadyImported
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		contactID, created, err := imp.ensureContact(ctx, tx, customerID, row)
		if err != nil {
			return err
		}
		if created {
			stats.ContactsCreated++
		}

		assetID, created, err := imp.ensureAsset(ctx, tx, customerID, row)
		if err != nil {
			return err
		}
		if created {
			stats.AssetsCreated++
		}

		offer := imp.buildOffer(row, reference, customerID, userID, zoneID, contactID, assetID)
		return offers.Create(ctx, offer)
	})

	switch {
	case err == nil:
		stats.ImportedOffers++
	case errors.Is(err, errAlreadyImported):
		stats.Skipped++
	default:
		stats.Skipped++
		stats.recordError(fmt.Sprintf("%s: %v", rowRef, err))
	}
}

var errAlreadyImported = errors.New("offer already imported")

func (imp *Importer) ensureContact(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, row OfferRow) (*uuid.UUID, bool, error) {
	if row.ContactPerson == "" {
		return nil, false, nil
	}

	contacts := repository.NewContactRepository(tx)
	existing, err := contacts.FindActiveByName(ctx, customerID, row.ContactPerson)
	if err == nil {
		return &existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	contact := &domain.Contact{
		CustomerID:        customerID,
		ContactPersonName: row.ContactPerson,
		ContactNumber:     row.ContactNumber,
		Email:             row.ContactEmail,
		IsActive:          true,
	}
	if err := contacts.Create(ctx, contact); err != nil {
		return nil, false, err
	}
	return &contact.ID, true, nil
}

func (imp *Importer) ensureAsset(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, row OfferRow) (*uuid.UUID, bool, error) {
	if row.SerialNumber == "" && row.AssetName == "" {
		return nil, false, nil
	}

	assets := repository.NewAssetRepository(tx)
	if row.SerialNumber != "" {
		existing, err := assets.FindActiveBySerial(ctx, customerID, row.SerialNumber)
		if err == nil {
			return &existing.ID, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	asset := &domain.Asset{
		CustomerID:          customerID,
		AssetName:           row.AssetName,
		MachineSerialNumber: row.SerialNumber,
		Model:               row.Model,
		IsActive:            true,
	}
	if err := assets.Create(ctx, asset); err != nil {
		return nil, false, err
	}
	return &asset.ID, true, nil
}

func (imp *Importer) buildOffer(row OfferRow, reference string, customerID, userID, zoneID uuid.UUID, contactID, assetID *uuid.UUID) *domain.Offer {
	offer := &domain.Offer{
		OfferReferenceNumber:  reference,
		CustomerID:            customerID,
		ContactID:             contactID,
		UserID:                userID,
		ZoneID:                zoneID,
		AssetID:               assetID,
		Stage:                 InferStage(row.Stage),
		Status:                domain.OfferStatusActive,
		Priority:              domain.PriorityMedium,
		OfferValue:            row.OfferValue,
		POValue:               row.POValue,
		ProbabilityPercentage: row.Probability,
		Remarks:               row.Remarks,
	}

	if pt, ok := NormalizeProductType(row.ProductType); ok {
		offer.ProductType = &pt
	}
	if month, ok := ConvertMonth(row.OfferMonth); ok {
		offer.OfferMonth = month
	}
	if month, ok := ConvertMonth(row.POExpectedMonth); ok {
		offer.POExpectedMonth = month
	}
	if imp.importedBy != uuid.Nil {
		createdBy := imp.importedBy
		offer.CreatedByID = &createdBy
	}

	return offer
}
