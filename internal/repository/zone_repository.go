package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"gorm.io/gorm"
)

type ZoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

func (r *ZoneRepository) Create(ctx context.Context, zone *domain.ServiceZone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *ZoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceZone, error) {
	var zone domain.ServiceZone
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *ZoneRepository) GetByName(ctx context.Context, name domain.ZoneName) (*domain.ServiceZone, error) {
	var zone domain.ServiceZone
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *ZoneRepository) Update(ctx context.Context, zone *domain.ServiceZone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

func (r *ZoneRepository) ListActive(ctx context.Context) ([]domain.ServiceZone, error) {
	var zones []domain.ServiceZone
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&zones).Error
	return zones, err
}

func (r *ZoneRepository) List(ctx context.Context) ([]domain.ServiceZone, error) {
	var zones []domain.ServiceZone
	err := r.db.WithContext(ctx).Order("name ASC").Find(&zones).Error
	return zones, err
}
