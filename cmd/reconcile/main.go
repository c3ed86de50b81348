package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/database"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/kardex/offerfunnel-api/internal/logger"
	"github.com/kardex/offerfunnel-api/internal/repository"
)

// reconcile diffs a workbook's offers against the database per zone, imports
// the missing ones by reference number, and prints how close the totals are
// afterwards. Safe to re-run: imported references drop out of the missing
// set on the next pass.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		file = flag.String("file", "", "Excel workbook to reconcile against")
		zone = flag.String("zone", "", "Reconcile a single zone (default: all zones)")
	)
	flag.Parse()

	if *file == "" {
		return fmt.Errorf("usage: reconcile -file <workbook.xlsx> [-zone WEST]")
	}
	if _, err := os.Stat(*file); err != nil {
		return fmt.Errorf("input file not found: %s", *file)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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

	admin, err := userRepo.FindFirstAdmin(ctx)
	if err != nil {
		return fmt.Errorf("no active admin user found, seed one first: %w", err)
	}

	resolver, err := importer.NewResolver(ctx, customerRepo, userRepo, zoneRepo, importer.ContainmentMatcher{}, log)
	if err != nil {
		return err
	}

	imp := importer.NewImporter(db, resolver, &cfg.Import, admin.ID, false, log)
	rec := importer.NewReconciler(db, resolver, imp, log)

	wb, err := importer.ReadWorkbook(*file)
	if err != nil {
		return err
	}

	var zoneNames []string
	if *zone != "" {
		zoneNames = []string{*zone}
	} else {
		zones, err := zoneRepo.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to list zones: %w", err)
		}
		for _, z := range zones {
			zoneNames = append(zoneNames, string(z.Name))
		}
	}

	for _, name := range zoneNames {
		report, err := rec.ReconcileZone(ctx, name, wb.Offers)
		if err != nil {
			return fmt.Errorf("zone %s: %w", name, err)
		}
		printReport(report)
	}

	return nil
}

func printReport(r *importer.ZoneReport) {
	fmt.Printf("Zone %s\n", r.ZoneName)
	fmt.Printf("  spreadsheet: %d rows, total %.2f\n", r.SpreadsheetRows, r.SpreadsheetTotal)
	fmt.Printf("  database:    %d -> %d offers, total %.2f -> %.2f\n",
		r.CountBefore, r.CountAfter, r.TotalBefore, r.TotalAfter)
	fmt.Printf("  imported %d, invalid rows %d\n", r.Imported, r.SkippedInvalid)
	fmt.Printf("  difference %.2f%% (%s)\n", r.DifferencePct, r.Classification)
}
