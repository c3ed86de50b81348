package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/database"
	"github.com/kardex/offerfunnel-api/internal/http/handler"
	"github.com/kardex/offerfunnel-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/kardex/offerfunnel-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	authHandler      *handler.AuthHandler
	zoneHandler      *handler.ZoneHandler
	userHandler      *handler.UserHandler
	customerHandler  *handler.CustomerHandler
	contactHandler   *handler.ContactHandler
	assetHandler     *handler.AssetHandler
	offerHandler     *handler.OfferHandler
	targetHandler    *handler.TargetHandler
	dashboardHandler *handler.DashboardHandler
	importHandler    *handler.ImportHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	zoneHandler *handler.ZoneHandler,
	userHandler *handler.UserHandler,
	customerHandler *handler.CustomerHandler,
	contactHandler *handler.ContactHandler,
	assetHandler *handler.AssetHandler,
	offerHandler *handler.OfferHandler,
	targetHandler *handler.TargetHandler,
	dashboardHandler *handler.DashboardHandler,
	importHandler *handler.ImportHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		authHandler:      authHandler,
		zoneHandler:      zoneHandler,
		userHandler:      userHandler,
		customerHandler:  customerHandler,
		contactHandler:   contactHandler,
		assetHandler:     assetHandler,
		offerHandler:     offerHandler,
		targetHandler:    targetHandler,
		dashboardHandler: dashboardHandler,
		importHandler:    importHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// Auth
			r.Get("/auth/me", rt.authHandler.Me)

			// Zones
			r.Route("/zones", func(r chi.Router) {
				r.Get("/", rt.zoneHandler.ListZones)
				r.Get("/{id}", rt.zoneHandler.GetZone)
				r.Group(func(r chi.Router) {
					r.Use(rt.authMiddleware.RequireAdmin)
					r.Post("/", rt.zoneHandler.CreateZone)
					r.Put("/{id}", rt.zoneHandler.UpdateZone)
				})
			})

			// Users (admin only)
			r.Route("/users", func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireAdmin)
				r.Get("/", rt.userHandler.ListUsers)
				r.Post("/", rt.userHandler.CreateUser)
				r.Get("/{id}", rt.userHandler.GetUser)
				r.Put("/{id}", rt.userHandler.UpdateUser)
				r.Put("/{id}/password", rt.userHandler.ResetPassword)
				r.Delete("/{id}", rt.userHandler.DeleteUser)
			})

			// Customers
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", rt.customerHandler.ListCustomers)
				r.Post("/", rt.customerHandler.CreateCustomer)
				r.Get("/{id}", rt.customerHandler.GetCustomer)
				r.Put("/{id}", rt.customerHandler.UpdateCustomer)
				r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.customerHandler.DeleteCustomer)
				r.Get("/{customerId}/contacts", rt.contactHandler.ListContactsByCustomer)
				r.Get("/{customerId}/assets", rt.assetHandler.ListAssetsByCustomer)
			})

			// Contacts
			r.Route("/contacts", func(r chi.Router) {
				r.Post("/", rt.contactHandler.CreateContact)
				r.Get("/{id}", rt.contactHandler.GetContact)
				r.Put("/{id}", rt.contactHandler.UpdateContact)
				r.Delete("/{id}", rt.contactHandler.DeleteContact)
			})

			// Assets
			r.Route("/assets", func(r chi.Router) {
				r.Post("/", rt.assetHandler.CreateAsset)
				r.Get("/{id}", rt.assetHandler.GetAsset)
				r.Put("/{id}", rt.assetHandler.UpdateAsset)
				r.Delete("/{id}", rt.assetHandler.DeleteAsset)
			})

			// Offers
			r.Route("/offers", func(r chi.Router) {
				r.Get("/", rt.offerHandler.ListOffers)
				r.Post("/", rt.offerHandler.CreateOffer)
				r.Get("/{id}", rt.offerHandler.GetOffer)
				r.Put("/{id}", rt.offerHandler.UpdateOffer)
				r.Put("/{id}/stage", rt.offerHandler.AdvanceOfferStage)
				r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.offerHandler.DeleteOffer)
			})

			// Targets
			r.Route("/targets", func(r chi.Router) {
				r.Get("/", rt.targetHandler.ListTargets)
				r.Get("/{id}", rt.targetHandler.GetTarget)
				r.Get("/{id}/achievement", rt.targetHandler.GetTargetAchievement)
				r.Group(func(r chi.Router) {
					r.Use(rt.authMiddleware.RequireAdmin)
					r.Post("/", rt.targetHandler.CreateTarget)
					r.Put("/{id}", rt.targetHandler.UpdateTarget)
					r.Delete("/{id}", rt.targetHandler.DeleteTarget)
				})
			})

			// Dashboard
			r.Get("/dashboard/funnel", rt.dashboardHandler.GetFunnelSummary)
			r.Get("/dashboard/zones", rt.dashboardHandler.GetZonePerformance)
			r.Get("/dashboard/forecast", rt.dashboardHandler.GetMonthlyForecast)

			// Import (admin only)
			r.With(rt.authMiddleware.RequireAdmin).
				Post("/import/workbook", rt.importHandler.ImportWorkbook)
		})
	})

	return r
}
