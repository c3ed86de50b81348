package repository

import (
	"context"
	"strings"

	"github.com/kardex/offerfunnel-api/internal/auth"
	"gorm.io/gorm"
)

// MaxPageSize is the maximum allowed page size for paginated queries
const MaxPageSize = 200

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortConfig holds sorting configuration for list queries
type SortConfig struct {
	Field string    // The field to sort by (API field name)
	Order SortOrder // asc or desc
}

// DefaultSortConfig returns a default sort configuration (updated_at DESC)
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Field: "updatedAt",
		Order: SortOrderDesc,
	}
}

// ParseSortOrder parses a string into SortOrder, defaulting to desc
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == "asc" {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// BuildOrderClause builds the SQL ORDER BY clause from field mapping and sort config
// fieldMap maps API field names to database column names
// Returns the default sort if field is not in whitelist
func BuildOrderClause(config SortConfig, fieldMap map[string]string, defaultColumn string) string {
	column, ok := fieldMap[config.Field]
	if !ok {
		column = defaultColumn
	}

	order := "DESC"
	if config.Order == SortOrderAsc {
		order = "ASC"
	}

	return column + " " + order
}

// ApplyZoneFilter scopes a query to the zones the requesting user may see.
// Admins (nil filter) see everything; zone users only their assigned zones.
func ApplyZoneFilter(ctx context.Context, query *gorm.DB) *gorm.DB {
	zoneIDs := auth.GetEffectiveZoneFilter(ctx)
	if len(zoneIDs) > 0 {
		return query.Where("zone_id IN ?", zoneIDs)
	}
	return query
}

// ApplyZoneFilterWithColumn applies the zone filter using a specific column name.
// Use this when the zone_id column needs table qualification in a join.
func ApplyZoneFilterWithColumn(ctx context.Context, query *gorm.DB, columnName string) *gorm.DB {
	zoneIDs := auth.GetEffectiveZoneFilter(ctx)
	if len(zoneIDs) > 0 {
		return query.Where(columnName+" IN ?", zoneIDs)
	}
	return query
}
