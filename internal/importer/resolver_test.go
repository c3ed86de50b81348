package importer_test

import (
	"context"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"github.com/kardex/offerfunnel-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupResolver(t *testing.T, db *gorm.DB) *importer.Resolver {
	t.Helper()
	resolver, err := importer.NewResolver(
		context.Background(),
		repository.NewCustomerRepository(db),
		repository.NewUserRepository(db),
		repository.NewZoneRepository(db),
		importer.ContainmentMatcher{},
		zap.NewNop(),
	)
	require.NoError(t, err)
	return resolver
}

func TestResolverCustomer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	acme := testutil.CreateCustomer(t, db, "Acme Industries", &zone.ID)
	testutil.CreateCustomer(t, db, "Globex Corporation", &zone.ID)

	resolver := setupResolver(t, db)

	// exact match is case-insensitive
	id, ok := resolver.ResolveCustomer("ACME INDUSTRIES")
	assert.True(t, ok)
	assert.Equal(t, acme.ID, id)

	// containment fallback handles suffixed spreadsheet names
	id, ok = resolver.ResolveCustomer("Acme Industries Pvt Ltd")
	assert.True(t, ok)
	assert.Equal(t, acme.ID, id)

	_, ok = resolver.ResolveCustomer("Umbrella Corp")
	assert.False(t, ok)

	_, ok = resolver.ResolveCustomer("")
	assert.False(t, ok)
}

func TestResolverUserFirstToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	ramesh := testutil.CreateUser(t, db, "Ramesh Kumar", "ramesh@example.com", domain.RoleZoneUser, *zone)

	resolver := setupResolver(t, db)

	id, ok := resolver.ResolveUser("Ramesh Kumar")
	assert.True(t, ok)
	assert.Equal(t, ramesh.ID, id)

	// sheet names often carry only the first name
	id, ok = resolver.ResolveUser("Ramesh")
	assert.True(t, ok)
	assert.Equal(t, ramesh.ID, id)

	_, ok = resolver.ResolveUser("Nobody Here")
	assert.False(t, ok)
}

func TestResolverZoneExactOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)

	resolver := setupResolver(t, db)

	id, ok := resolver.ResolveZone("west")
	assert.True(t, ok)
	assert.Equal(t, zone.ID, id)

	// no fuzzy fallback for zones
	_, ok = resolver.ResolveZone("WES")
	assert.False(t, ok)
}

func TestResolverSkipsInactiveRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := testutil.CreateZone(t, db, domain.ZoneWest)
	gone := testutil.CreateCustomer(t, db, "Defunct Industries", &zone.ID)
	require.NoError(t, db.Model(gone).Update("is_active", false).Error)

	resolver := setupResolver(t, db)

	_, ok := resolver.ResolveCustomer("Defunct Industries")
	assert.False(t, ok)
}
