package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"gorm.io/gorm"
)

type TargetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

func (r *TargetRepository) Create(ctx context.Context, target *domain.Target) error {
	return r.db.WithContext(ctx).Create(target).Error
}

func (r *TargetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Target, error) {
	var target domain.Target
	query := r.db.WithContext(ctx).Preload("Zone").Preload("User").Where("id = ?", id)
	query = ApplyZoneFilter(ctx, query)
	err := query.First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *TargetRepository) Update(ctx context.Context, target *domain.Target) error {
	return r.db.WithContext(ctx).Save(target).Error
}

func (r *TargetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Target{}, "id = ?", id).Error
}

// TargetFilter narrows target list queries
type TargetFilter struct {
	ZoneID     *uuid.UUID
	UserID     *uuid.UUID
	Period     string
	PeriodType domain.TargetPeriodType
}

func (r *TargetRepository) List(ctx context.Context, page, pageSize int, filter TargetFilter) ([]domain.Target, int64, error) {
	var targets []domain.Target
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Target{})
	query = ApplyZoneFilter(ctx, query)

	if filter.ZoneID != nil {
		query = query.Where("zone_id = ?", *filter.ZoneID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Period != "" {
		query = query.Where("period = ?", filter.Period)
	}
	if filter.PeriodType != "" {
		query = query.Where("period_type = ?", filter.PeriodType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Zone").Preload("User").
		Offset(offset).Limit(pageSize).Order("period DESC, created_at DESC").
		Find(&targets).Error

	return targets, total, err
}

// FindExisting looks up a target with the same scope and period, used to
// reject duplicates on create. Returns gorm.ErrRecordNotFound when absent.
func (r *TargetRepository) FindExisting(ctx context.Context, target *domain.Target) (*domain.Target, error) {
	var existing domain.Target

	query := r.db.WithContext(ctx).
		Where("period = ? AND period_type = ?", target.Period, target.PeriodType)

	if target.ZoneID != nil {
		query = query.Where("zone_id = ?", *target.ZoneID)
	} else {
		query = query.Where("zone_id IS NULL")
	}
	if target.UserID != nil {
		query = query.Where("user_id = ?", *target.UserID)
	} else {
		query = query.Where("user_id IS NULL")
	}
	if target.ProductType != nil {
		query = query.Where("product_type = ?", *target.ProductType)
	} else {
		query = query.Where("product_type IS NULL")
	}

	err := query.First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// ListForPeriod returns all targets for a period, used by the snapshot job
func (r *TargetRepository) ListForPeriod(ctx context.Context, period string) ([]domain.Target, error) {
	var targets []domain.Target
	err := r.db.WithContext(ctx).Preload("Zone").Preload("User").
		Where("period = ?", period).Find(&targets).Error
	return targets, err
}
