package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"gorm.io/gorm"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// OfferFilter narrows offer list queries
type OfferFilter struct {
	CustomerID  *uuid.UUID
	UserID      *uuid.UUID
	ZoneID      *uuid.UUID
	Stage       domain.OfferStage
	Status      domain.OfferStatus
	ProductType domain.ProductType
	OfferMonth  string
	Search      string
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	var offer domain.Offer
	query := r.db.WithContext(ctx).
		Preload("Customer").Preload("Contact").Preload("User").Preload("Zone").Preload("Asset").
		Where("id = ?", id)
	query = ApplyZoneFilter(ctx, query)
	err := query.First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) GetByReferenceNumber(ctx context.Context, ref string) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.db.WithContext(ctx).Where("offer_reference_number = ?", ref).First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Offer{}, "id = ?", id).Error
}

func (r *OfferRepository) List(ctx context.Context, page, pageSize int, filter OfferFilter) ([]domain.Offer, int64, error) {
	var offers []domain.Offer
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Offer{})
	query = ApplyZoneFilter(ctx, query)
	query = applyOfferFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Customer").Preload("Contact").Preload("User").Preload("Zone").
		Offset(offset).Limit(pageSize).Order("created_at DESC").
		Find(&offers).Error

	return offers, total, err
}

func applyOfferFilter(query *gorm.DB, filter OfferFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ZoneID != nil {
		query = query.Where("zone_id = ?", *filter.ZoneID)
	}
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductType != "" {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	if filter.OfferMonth != "" {
		query = query.Where("offer_month = ?", filter.OfferMonth)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(offer_reference_number) LIKE ? OR LOWER(remarks) LIKE ?", searchPattern, searchPattern)
	}
	return query
}

// ListReferenceNumbersByZone returns the set of reference numbers already
// stored for a zone. The reconciler diffs spreadsheet rows against it.
func (r *OfferRepository) ListReferenceNumbersByZone(ctx context.Context, zoneID uuid.UUID) (map[string]bool, error) {
	var refs []string
	err := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Where("zone_id = ?", zoneID).
		Pluck("offer_reference_number", &refs).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(refs))
	for _, ref := range refs {
		set[ref] = true
	}
	return set, nil
}

// ZoneTotals returns the offer count and summed offer value for a zone
func (r *OfferRepository) ZoneTotals(ctx context.Context, zoneID uuid.UUID) (int64, float64, error) {
	var result struct {
		Count int64
		Total float64
	}
	err := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select("COUNT(*) AS count, COALESCE(SUM(offer_value), 0) AS total").
		Where("zone_id = ?", zoneID).
		Scan(&result).Error
	return result.Count, result.Total, err
}
