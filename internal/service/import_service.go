package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImportService runs workbook imports triggered over HTTP. Uploaded files
// are archived to storage before processing so a bad import can be replayed.
type ImportService struct {
	db           *gorm.DB
	customerRepo *repository.CustomerRepository
	userRepo     *repository.UserRepository
	zoneRepo     *repository.ZoneRepository
	store        storage.Storage
	cfg          *config.ImportConfig
	logger       *zap.Logger
}

func NewImportService(
	db *gorm.DB,
	customerRepo *repository.CustomerRepository,
	userRepo *repository.UserRepository,
	zoneRepo *repository.ZoneRepository,
	store storage.Storage,
	cfg *config.ImportConfig,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		db:           db,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		zoneRepo:     zoneRepo,
		store:        store,
		cfg:          cfg,
		logger:       logger,
	}
}

// ImportWorkbook parses an uploaded Excel workbook, creates any customers
// from the Customers sheet, then imports the offer rows. dryRun reports what
// would happen without writing.
func (s *ImportService) ImportWorkbook(ctx context.Context, filename string, data io.Reader, dryRun bool) (*importer.Stats, error) {
	content, err := io.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if s.cfg.ArchiveEnabled && !dryRun {
		path, size, err := s.store.Upload(ctx, filename,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			bytes.NewReader(content))
		if err != nil {
			s.logger.Warn("failed to archive workbook", zap.Error(err))
		} else {
			s.logger.Info("workbook archived", zap.String("path", path), zap.Int64("size", size))
		}
	}

	wb, err := importer.ReadWorkbookFrom(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	resolver, err := importer.NewResolver(ctx, s.customerRepo, s.userRepo, s.zoneRepo, importer.ContainmentMatcher{}, s.logger)
	if err != nil {
		return nil, err
	}

	importedBy := uuid.Nil
	if userCtx, ok := auth.FromContext(ctx); ok {
		importedBy = userCtx.UserID
	}

	imp := importer.NewImporter(s.db, resolver, s.cfg, importedBy, dryRun, s.logger)

	stats := &importer.Stats{}
	if err := imp.ImportCustomers(ctx, wb.Customers, stats); err != nil {
		return nil, err
	}

	offerStats, err := imp.ImportOffers(ctx, wb.Offers)
	if err != nil {
		return nil, err
	}
	offerStats.CustomersCreated = stats.CustomersCreated

	s.logger.Info("workbook import finished",
		zap.Int("rows", offerStats.TotalRows),
		zap.Int("imported", offerStats.ImportedOffers),
		zap.Int("skipped", offerStats.Skipped),
	)

	return offerStats, nil
}
