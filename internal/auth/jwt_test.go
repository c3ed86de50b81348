package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret: "test-secret-at-least-32-characters",
		TokenTTL:  3600,
		Issuer:    "offerfunnel-test",
	})
	require.NoError(t, err)
	return tm
}

func TestTokenRoundTrip(t *testing.T) {
	tm := newTestTokenManager(t)

	zoneID := uuid.New()
	user := &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      "Ramesh Kumar",
		Email:     "ramesh@example.com",
		Role:      domain.RoleZoneUser,
		Zones:     []domain.ServiceZone{{BaseModel: domain.BaseModel{ID: zoneID}, Name: domain.ZoneWest}},
	}

	token, expiresAt, err := tm.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	userCtx, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, user.Email, userCtx.Email)
	assert.Equal(t, domain.RoleZoneUser, userCtx.Role)
	require.Len(t, userCtx.ZoneIDs, 1)
	assert.Equal(t, zoneID, userCtx.ZoneIDs[0])
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	tm := newTestTokenManager(t)

	user := &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Email:     "ramesh@example.com",
		Role:      domain.RoleZoneUser,
	}
	token, _, err := tm.IssueToken(user)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = tm.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	tm := newTestTokenManager(t)
	other, err := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret: "a-completely-different-secret-value",
		TokenTTL:  3600,
		Issuer:    "offerfunnel-test",
	})
	require.NoError(t, err)

	user := &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Email:     "ramesh@example.com",
		Role:      domain.RoleAdmin,
	}
	token, _, err := other.IssueToken(user)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := auth.NewTokenManager(&config.AuthConfig{})
	assert.Error(t, err)
}
