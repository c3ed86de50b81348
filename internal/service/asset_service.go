package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/mapper"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
)

type AssetService struct {
	assetRepo    *repository.AssetRepository
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

func NewAssetService(
	assetRepo *repository.AssetRepository,
	customerRepo *repository.CustomerRepository,
	logger *zap.Logger,
) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *AssetService) Create(ctx context.Context, req *domain.CreateAssetRequest) (*domain.AssetDTO, error) {
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	asset := &domain.Asset{
		CustomerID:          req.CustomerID,
		AssetName:           req.AssetName,
		MachineSerialNumber: req.MachineSerialNumber,
		Model:               req.Model,
		IsActive:            true,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	dto := mapper.ToAssetDTO(asset)
	return &dto, nil
}

func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetDTO, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	dto := mapper.ToAssetDTO(asset)
	return &dto, nil
}

func (s *AssetService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.AssetDTO, error) {
	assets, err := s.assetRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	dtos := make([]domain.AssetDTO, len(assets))
	for i, asset := range assets {
		dtos[i] = mapper.ToAssetDTO(&asset)
	}

	return dtos, nil
}

func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateAssetRequest) (*domain.AssetDTO, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("asset not found: %w", err)
	}

	asset.AssetName = req.AssetName
	asset.MachineSerialNumber = req.MachineSerialNumber
	asset.Model = req.Model
	if req.IsActive != nil {
		asset.IsActive = *req.IsActive
	}

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	dto := mapper.ToAssetDTO(asset)
	return &dto, nil
}

func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
