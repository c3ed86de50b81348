package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/http/handler"
	"github.com/kardex/offerfunnel-api/internal/http/middleware"
	"github.com/kardex/offerfunnel-api/internal/http/router"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/service"
	"github.com/kardex/offerfunnel-api/internal/storage"
	"github.com/kardex/offerfunnel-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routerFixtures struct {
	handler    http.Handler
	zone       *domain.ServiceZone
	admin      *domain.User
	sales      *domain.User
	customer   *domain.Customer
	adminToken string
	salesToken string
}

func setupTestServer(t *testing.T) *routerFixtures {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	admin := testutil.CreateUser(t, db, "Admin User", "admin@example.com", domain.RoleAdmin)
	sales := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser, *zone)
	customer := testutil.CreateCustomer(t, db, "Acme Industries", &zone.ID)

	cfg := &config.Config{
		App: config.AppConfig{Name: "offerfunnel-api", Environment: "test"},
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-at-least-32-characters",
			TokenTTL:  3600,
			Issuer:    "offerfunnel-test",
		},
		Import: config.ImportConfig{BatchSize: 10, ReferencePrefix: "OF"},
	}

	tokens, err := auth.NewTokenManager(&cfg.Auth)
	require.NoError(t, err)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	zoneRepo := repository.NewZoneRepository(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	targetRepo := repository.NewTargetRepository(db)

	zoneService := service.NewZoneService(zoneRepo, log)
	userService := service.NewUserService(userRepo, zoneRepo, tokens, log)
	customerService := service.NewCustomerService(customerRepo, log)
	contactService := service.NewContactService(contactRepo, customerRepo, log)
	assetService := service.NewAssetService(assetRepo, customerRepo, log)
	offerService := service.NewOfferService(offerRepo, customerRepo, zoneRepo, userRepo, &cfg.Import, log)
	targetService := service.NewTargetService(targetRepo, offerRepo, log)
	dashboardService := service.NewDashboardService(offerRepo, log)
	importService := service.NewImportService(db, customerRepo, userRepo, zoneRepo, store, &cfg.Import, log)

	rt := router.NewRouter(
		cfg, log, db,
		auth.NewMiddleware(tokens, cfg, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewAuthHandler(userService, log),
		handler.NewZoneHandler(zoneService, log),
		handler.NewUserHandler(userService, log),
		handler.NewCustomerHandler(customerService, log),
		handler.NewContactHandler(contactService, log),
		handler.NewAssetHandler(assetService, log),
		handler.NewOfferHandler(offerService, log),
		handler.NewTargetHandler(targetService, log),
		handler.NewDashboardHandler(dashboardService, log),
		handler.NewImportHandler(importService, log),
	)

	adminToken, _, err := tokens.IssueToken(admin)
	require.NoError(t, err)
	salesToken, _, err := tokens.IssueToken(sales)
	require.NoError(t, err)

	return &routerFixtures{
		handler:    rt.Setup(),
		zone:       zone,
		admin:      admin,
		sales:      sales,
		customer:   customer,
		adminToken: adminToken,
		salesToken: salesToken,
	}
}

func (f *routerFixtures) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	f := setupTestServer(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := setupTestServer(t)

	rec := f.do(t, http.MethodGet, "/api/v1/offers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/offers", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginAndMe(t *testing.T) {
	f := setupTestServer(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "test-password-123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login domain.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	rec = f.do(t, http.MethodGet, "/api/v1/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me domain.UserDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&me))
	assert.Equal(t, f.sales.ID, me.ID)
	assert.Equal(t, "ramesh@example.com", me.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := setupTestServer(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	f := setupTestServer(t)

	rec := f.do(t, http.MethodGet, "/api/v1/users", f.salesToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/users", f.adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferLifecycleOverHTTP(t *testing.T) {
	f := setupTestServer(t)

	rec := f.do(t, http.MethodPost, "/api/v1/offers", f.adminToken, domain.CreateOfferRequest{
		CustomerID: f.customer.ID,
		UserID:     f.sales.ID,
		ZoneID:     f.zone.ID,
		OfferValue: 250000,
		OfferMonth: "2025-05",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.OfferDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Contains(t, created.OfferReferenceNumber, "OF-")
	assert.Equal(t, domain.StageInitial, created.Stage)

	rec = f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/offers/%s/stage", created.ID), f.adminToken,
		domain.AdvanceOfferStageRequest{Stage: domain.StageProposalSent})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/offers/%s", created.ID), f.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched domain.OfferDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, domain.StageProposalSent, fetched.Stage)

	// backwards transitions surface as 400 over the wire
	rec = f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/offers/%s/stage", created.ID), f.adminToken,
		domain.AdvanceOfferStageRequest{Stage: domain.StageInitial})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// deletes are admin only
	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/offers/%s", created.ID), f.salesToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/offers/%s", created.ID), f.adminToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestValidationErrorPayload(t *testing.T) {
	f := setupTestServer(t)

	// missing required fields come back RFC-7807 style with per-field messages
	rec := f.do(t, http.MethodPost, "/api/v1/offers", f.adminToken, map[string]interface{}{
		"offerValue": 1000,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "customerId")
}
