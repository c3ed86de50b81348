// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/database"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory SQLite database with the full
// schema applied. MaxOpenConns is pinned to 1 because each SQLite memory
// connection is its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "failed to migrate schema")
	return db
}

// CreateZone inserts a service zone fixture
func CreateZone(t *testing.T, db *gorm.DB, name domain.ZoneName) *domain.ServiceZone {
	t.Helper()
	zone := &domain.ServiceZone{
		Name:      name,
		ShortForm: string(name[0]),
		IsActive:  true,
	}
	require.NoError(t, db.Create(zone).Error)
	return zone
}

// CreateUser inserts a user fixture assigned to the given zones
func CreateUser(t *testing.T, db *gorm.DB, name, email string, role domain.UserRole, zones ...domain.ServiceZone) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("test-password-123")
	require.NoError(t, err)
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Zones:        zones,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateCustomer inserts a customer fixture in the given zone
func CreateCustomer(t *testing.T, db *gorm.DB, companyName string, zoneID *uuid.UUID) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		CompanyName: companyName,
		ZoneID:      zoneID,
		IsActive:    true,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// CreateOffer inserts an offer fixture with sane defaults
func CreateOffer(t *testing.T, db *gorm.DB, customer *domain.Customer, user *domain.User, zone *domain.ServiceZone, mutate ...func(*domain.Offer)) *domain.Offer {
	t.Helper()
	offer := &domain.Offer{
		OfferReferenceNumber:  domain.NewOfferReference("TST"),
		CustomerID:            customer.ID,
		UserID:                user.ID,
		ZoneID:                zone.ID,
		Stage:                 domain.StageInitial,
		Status:                domain.OfferStatusActive,
		Priority:              domain.PriorityMedium,
		OfferValue:            100000,
		ProbabilityPercentage: 50,
		OfferMonth:            "2025-04",
	}
	for _, fn := range mutate {
		fn(offer)
	}
	require.NoError(t, db.Create(offer).Error)
	return offer
}
