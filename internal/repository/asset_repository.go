package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.db.WithContext(ctx).Preload("Customer").Where("id = ?", id).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Asset{}, "id = ?", id).Error
}

func (r *AssetRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Asset, int64, error) {
	var assets []domain.Asset
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Asset{})

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(asset_name) LIKE ? OR LOWER(machine_serial_number) LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Customer").Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&assets).Error

	return assets, total, err
}

func (r *AssetRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Asset, error) {
	var assets []domain.Asset
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("asset_name ASC").
		Find(&assets).Error
	return assets, err
}

// FindActiveBySerial looks up an active asset by its import dedup key
// (customer + machine serial number). Returns gorm.ErrRecordNotFound when absent.
func (r *AssetRepository) FindActiveBySerial(ctx context.Context, customerID uuid.UUID, serialNumber string) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND machine_serial_number = ? AND is_active = ?", customerID, serialNumber, true).
		First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
