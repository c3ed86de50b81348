package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
)

// UserContext holds authenticated user information
type UserContext struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Role    domain.UserRole
	ZoneIDs []uuid.UUID
}

type contextKey string

const userContextKey contextKey = "userContext"
const zoneFilterKey contextKey = "zoneFilter"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// MustFromContext extracts user context or panics
func MustFromContext(ctx context.Context) *UserContext {
	user, ok := FromContext(ctx)
	if !ok {
		panic("user context not found in context")
	}
	return user
}

// IsAdmin checks if the user has the admin role
func (u *UserContext) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// CanAccessZone checks if the user can access data for a specific zone.
// Admins can access every zone; zone users only their assigned zones.
func (u *UserContext) CanAccessZone(zoneID uuid.UUID) bool {
	if u.IsAdmin() {
		return true
	}
	for _, id := range u.ZoneIDs {
		if id == zoneID {
			return true
		}
	}
	return false
}

// GetZoneFilter returns the zone IDs to filter queries by.
// Returns nil for admins (no filtering needed).
func (u *UserContext) GetZoneFilter() []uuid.UUID {
	if u.IsAdmin() {
		return nil
	}
	return u.ZoneIDs
}

// ZoneFilter represents the effective zone filter for queries.
// It is set by middleware based on user context and query parameters.
type ZoneFilter struct {
	// ZoneIDs are the zones to filter by (nil means no filter / all zones)
	ZoneIDs []uuid.UUID
}

// WithZoneFilter adds a zone filter to the context
func WithZoneFilter(ctx context.Context, filter *ZoneFilter) context.Context {
	return context.WithValue(ctx, zoneFilterKey, filter)
}

// ZoneFilterFromContext extracts the zone filter from the context
func ZoneFilterFromContext(ctx context.Context) (*ZoneFilter, bool) {
	filter, ok := ctx.Value(zoneFilterKey).(*ZoneFilter)
	return filter, ok
}

// GetEffectiveZoneFilter returns the zone IDs to filter queries by.
// Repositories use this to scope zone users to their assigned zones.
// Returns nil if no filtering should be applied.
func GetEffectiveZoneFilter(ctx context.Context) []uuid.UUID {
	if filter, ok := ZoneFilterFromContext(ctx); ok && filter != nil {
		return filter.ZoneIDs
	}
	if userCtx, ok := FromContext(ctx); ok {
		return userCtx.GetZoneFilter()
	}
	return nil
}
