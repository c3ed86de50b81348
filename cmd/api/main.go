package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kardex/offerfunnel-api/docs"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/database"
	"github.com/kardex/offerfunnel-api/internal/http/handler"
	"github.com/kardex/offerfunnel-api/internal/http/middleware"
	"github.com/kardex/offerfunnel-api/internal/http/router"
	"github.com/kardex/offerfunnel-api/internal/jobs"
	"github.com/kardex/offerfunnel-api/internal/logger"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/service"
	"github.com/kardex/offerfunnel-api/internal/storage"
	"go.uber.org/zap"
)

// @title Offer Funnel API
// @version 1.0
// @description Sales offer funnel API for customer, offer and target management across service zones

// @contact.name API Support
// @contact.email support@kardex.example

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	if basicCfg.App.Environment == "development" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize storage for workbook archives
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	zoneRepo := repository.NewZoneRepository(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	targetRepo := repository.NewTargetRepository(db)

	// Initialize auth
	tokenManager, err := auth.NewTokenManager(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	// Initialize services
	zoneService := service.NewZoneService(zoneRepo, log)
	userService := service.NewUserService(userRepo, zoneRepo, tokenManager, log)
	customerService := service.NewCustomerService(customerRepo, log)
	contactService := service.NewContactService(contactRepo, customerRepo, log)
	assetService := service.NewAssetService(assetRepo, customerRepo, log)
	offerService := service.NewOfferService(offerRepo, customerRepo, zoneRepo, userRepo, &cfg.Import, log)
	targetService := service.NewTargetService(targetRepo, offerRepo, log)
	dashboardService := service.NewDashboardService(offerRepo, log)
	importService := service.NewImportService(db, customerRepo, userRepo, zoneRepo, fileStorage, &cfg.Import, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(tokenManager, cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, log)
	zoneHandler := handler.NewZoneHandler(zoneService, log)
	userHandler := handler.NewUserHandler(userService, log)
	customerHandler := handler.NewCustomerHandler(customerService, log)
	contactHandler := handler.NewContactHandler(contactService, log)
	assetHandler := handler.NewAssetHandler(assetService, log)
	offerHandler := handler.NewOfferHandler(offerService, log)
	targetHandler := handler.NewTargetHandler(targetService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	importHandler := handler.NewImportHandler(importService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		authHandler,
		zoneHandler,
		userHandler,
		customerHandler,
		contactHandler,
		assetHandler,
		offerHandler,
		targetHandler,
		dashboardHandler,
		importHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.TargetSnapshotEnabled {
		scheduler = jobs.NewScheduler(log)

		snapshotJob := jobs.NewTargetSnapshotJob(targetRepo, offerRepo, log)
		if err := scheduler.AddJob(snapshotJob.Name(), cfg.Jobs.TargetSnapshotCron, snapshotJob.Run); err != nil {
			log.Error("Failed to register target snapshot job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with target snapshot job",
				zap.String("cron_expr", cfg.Jobs.TargetSnapshotCron),
			)
		}
	} else {
		log.Info("Target snapshot job disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
