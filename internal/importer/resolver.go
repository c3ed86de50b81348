package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
)

// nameCache maps lower-cased trimmed names to ids, preserving insertion
// order for the fallback matcher.
type nameCache struct {
	keys []string
	ids  map[string]uuid.UUID
}

func newNameCache() *nameCache {
	return &nameCache{ids: make(map[string]uuid.UUID)}
}

func (c *nameCache) add(name string, id uuid.UUID) {
	key := normalizeKey(name)
	if key == "" {
		return
	}
	if _, exists := c.ids[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.ids[key] = id
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolver resolves free-text spreadsheet names to database ids. Caches are
// built once per run from active rows and read-only afterwards.
type Resolver struct {
	customers *nameCache
	users     *nameCache
	zones     *nameCache
	matcher   NameMatcher
	logger    *zap.Logger
}

// NewResolver builds the customer, user and zone name caches from the
// database. Only active rows are cached.
func NewResolver(
	ctx context.Context,
	customers *repository.CustomerRepository,
	users *repository.UserRepository,
	zones *repository.ZoneRepository,
	matcher NameMatcher,
	logger *zap.Logger,
) (*Resolver, error) {
	r := &Resolver{
		customers: newNameCache(),
		users:     newNameCache(),
		zones:     newNameCache(),
		matcher:   matcher,
		logger:    logger,
	}
	if r.matcher == nil {
		r.matcher = ContainmentMatcher{}
	}

	customerRows, err := customers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	for i := range customerRows {
		r.customers.add(customerRows[i].CompanyName, customerRows[i].ID)
	}

	userRows, err := users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range userRows {
		r.users.add(userRows[i].Name, userRows[i].ID)
	}

	zoneRows, err := zones.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}
	for i := range zoneRows {
		r.zones.add(string(zoneRows[i].Name), zoneRows[i].ID)
	}

	logger.Info("resolver caches built",
		zap.Int("customers", len(r.customers.keys)),
		zap.Int("users", len(r.users.keys)),
		zap.Int("zones", len(r.zones.keys)),
	)

	return r, nil
}

// ResolveCustomer resolves a company name. Exact case-insensitive match
// first, then the fallback matcher. A miss is not an error: callers must
// skip the record.
func (r *Resolver) ResolveCustomer(name string) (uuid.UUID, bool) {
	key := normalizeKey(name)
	if key == "" {
		return uuid.Nil, false
	}

	if id, ok := r.customers.ids[key]; ok {
		return id, true
	}

	if matched, ok := r.matcher.Match(key, r.customers.keys); ok {
		r.logger.Debug("customer resolved by fallback match",
			zap.String("input", name),
			zap.String("matched", matched),
		)
		return r.customers.ids[matched], true
	}

	r.logger.Warn("customer not resolved", zap.String("name", name))
	return uuid.Nil, false
}

// ResolveUser resolves a user display name. Exact match first, then the
// fallback matcher applied to the first whitespace token of the input.
func (r *Resolver) ResolveUser(name string) (uuid.UUID, bool) {
	key := normalizeKey(name)
	if key == "" {
		return uuid.Nil, false
	}

	if id, ok := r.users.ids[key]; ok {
		return id, true
	}

	fields := strings.Fields(key)
	if len(fields) > 0 {
		if matched, ok := r.matcher.Match(fields[0], r.users.keys); ok {
			r.logger.Debug("user resolved by first-token match",
				zap.String("input", name),
				zap.String("matched", matched),
			)
			return r.users.ids[matched], true
		}
	}

	r.logger.Warn("user not resolved", zap.String("name", name))
	return uuid.Nil, false
}

// ResolveZone resolves a zone name. Exact match only, no fuzzy fallback.
func (r *Resolver) ResolveZone(name string) (uuid.UUID, bool) {
	key := normalizeKey(name)
	if key == "" {
		return uuid.Nil, false
	}

	if id, ok := r.zones.ids[key]; ok {
		return id, true
	}

	r.logger.Warn("zone not resolved", zap.String("name", name))
	return uuid.Nil, false
}
