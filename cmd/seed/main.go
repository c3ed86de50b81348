package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/database"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/kardex/offerfunnel-api/internal/logger"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/storage"
	"go.uber.org/zap"
)

// seed imports legacy offer data from an Excel workbook or pre-processed
// JSON files. Rows that cannot be resolved to an existing customer, user and
// zone are skipped and reported, never partially written.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		file          = flag.String("file", "", "Excel workbook or all-offers.json to import")
		customersFile = flag.String("customers", "", "Optional customers.json to import first")
		batch         = flag.Int("batch", 0, "Override the configured import batch size")
		dryRun        = flag.Bool("dry-run", false, "Resolve and report without writing")
		useFuzzy      = flag.Bool("fuzzy", false, "Use fuzzy name matching instead of containment")
	)
	flag.Parse()

	if *file == "" {
		return fmt.Errorf("usage: seed -file <workbook.xlsx|all-offers.json> [-customers customers.json] [-batch n] [-dry-run] [-fuzzy]")
	}
	if _, err := os.Stat(*file); err != nil {
		return fmt.Errorf("input file not found: %s", *file)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *batch > 0 {
		cfg.Import.BatchSize = *batch
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()

	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	zoneRepo := repository.NewZoneRepository(db)

	// Imported rows are stamped with the first admin's id
	admin, err := userRepo.FindFirstAdmin(ctx)
	if err != nil {
		return fmt.Errorf("no active admin user found, seed one first: %w", err)
	}

	var matcher importer.NameMatcher = importer.ContainmentMatcher{}
	if *useFuzzy {
		matcher = importer.FuzzyMatcher{}
	}

	resolver, err := importer.NewResolver(ctx, customerRepo, userRepo, zoneRepo, matcher, log)
	if err != nil {
		return err
	}

	imp := importer.NewImporter(db, resolver, &cfg.Import, admin.ID, *dryRun, log)

	var customerRows []importer.CustomerRow
	var offerRows []importer.OfferRow

	if strings.EqualFold(filepath.Ext(*file), ".json") {
		offerRows, err = importer.ReadJSONOffers(*file)
		if err != nil {
			return err
		}
	} else {
		wb, err := importer.ReadWorkbook(*file)
		if err != nil {
			return err
		}
		customerRows = wb.Customers
		offerRows = wb.Offers
	}

	if *customersFile != "" {
		extra, err := importer.ReadJSONCustomers(*customersFile)
		if err != nil {
			return err
		}
		customerRows = append(customerRows, extra...)
	}

	stats := &importer.Stats{}
	if len(customerRows) > 0 {
		if err := imp.ImportCustomers(ctx, customerRows, stats); err != nil {
			return err
		}
		log.Info("customers imported", zap.Int("created", stats.CustomersCreated))
	}

	offerStats, err := imp.ImportOffers(ctx, offerRows)
	if err != nil {
		return err
	}
	offerStats.CustomersCreated = stats.CustomersCreated

	if cfg.Import.ArchiveEnabled && !*dryRun {
		archiveSource(ctx, cfg, *file, log)
	}

	fmt.Println(offerStats.Summary())
	return nil
}

// archiveSource copies the imported file to the configured storage backend so
// the run can be audited or replayed. Archive failures do not fail the import.
func archiveSource(ctx context.Context, cfg *config.Config, file string, log *zap.Logger) {
	store, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		log.Warn("failed to initialize archive storage", zap.Error(err))
		return
	}

	src, err := os.Open(file)
	if err != nil {
		log.Warn("failed to open source file for archiving", zap.Error(err))
		return
	}
	defer src.Close()

	path, size, err := store.Upload(ctx, filepath.Base(file), "application/octet-stream", src)
	if err != nil {
		log.Warn("failed to archive source file", zap.Error(err))
		return
	}
	log.Info("source file archived", zap.String("path", path), zap.Int64("size", size))
}
