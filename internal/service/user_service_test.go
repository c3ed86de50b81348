package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/service"
	"github.com/kardex/offerfunnel-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupUserService(t *testing.T) (*service.UserService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	tokens, err := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret: "test-secret-at-least-32-characters",
		TokenTTL:  3600,
		Issuer:    "offerfunnel-test",
	})
	require.NoError(t, err)

	svc := service.NewUserService(
		repository.NewUserRepository(db),
		repository.NewZoneRepository(db),
		tokens,
		zap.NewNop(),
	)
	return svc, db
}

func TestLogin(t *testing.T) {
	svc, db := setupUserService(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateUserRequest{
		Name:     "Ramesh Kumar",
		Email:    "ramesh@example.com",
		Password: "strong-password-1",
		Role:     domain.RoleZoneUser,
		ZoneIDs:  []uuid.UUID{zone.ID},
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "strong-password-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.ExpiresAt)
	assert.Equal(t, created.ID, resp.User.ID)

	// successful login records the timestamp
	var user domain.User
	require.NoError(t, db.First(&user, "email = ?", "ramesh@example.com").Error)
	assert.NotNil(t, user.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db := setupUserService(t)
	testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser)
	ctx := context.Background()

	_, err := svc.Login(ctx, &domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// unknown email yields the same error, not a not-found leak
	_, err = svc.Login(ctx, &domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, db := setupUserService(t)
	user := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "test-password-123",
	})
	assert.ErrorIs(t, err, service.ErrUserInactive)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	svc, db := setupUserService(t)
	testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser)

	_, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Name:     "Another Ramesh",
		Email:    "ramesh@example.com",
		Password: "strong-password-1",
		Role:     domain.RoleZoneUser,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestResetPassword(t *testing.T) {
	svc, db := setupUserService(t)
	user := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser)
	ctx := context.Background()

	require.NoError(t, svc.ResetPassword(ctx, user.ID, &domain.ResetPasswordRequest{
		Password: "brand-new-password",
	}))

	_, err := svc.Login(ctx, &domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "test-password-123",
	})
	assert.Error(t, err)

	resp, err := svc.Login(ctx, &domain.LoginRequest{
		Email:    "ramesh@example.com",
		Password: "brand-new-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
