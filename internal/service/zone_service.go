package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/mapper"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ZoneService struct {
	zoneRepo *repository.ZoneRepository
	logger   *zap.Logger
}

func NewZoneService(zoneRepo *repository.ZoneRepository, logger *zap.Logger) *ZoneService {
	return &ZoneService{zoneRepo: zoneRepo, logger: logger}
}

func (s *ZoneService) Create(ctx context.Context, req *domain.CreateZoneRequest) (*domain.ZoneDTO, error) {
	name := req.Name
	if !name.IsValid() {
		return nil, fmt.Errorf("%w: unknown zone name %q", ErrInvalidInput, string(req.Name))
	}

	if _, err := s.zoneRepo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: zone %q already exists", ErrConflict, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check zone: %w", err)
	}

	zone := &domain.ServiceZone{
		Name:        name,
		ShortForm:   req.ShortForm,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, fmt.Errorf("failed to create zone: %w", err)
	}

	s.logger.Info("zone created", zap.String("name", string(zone.Name)))

	dto := mapper.ToZoneDTO(zone)
	return &dto, nil
}

func (s *ZoneService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZoneDTO, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}

	dto := mapper.ToZoneDTO(zone)
	return &dto, nil
}

func (s *ZoneService) List(ctx context.Context, includeInactive bool) ([]domain.ZoneDTO, error) {
	var zones []domain.ServiceZone
	var err error
	if includeInactive {
		zones, err = s.zoneRepo.List(ctx)
	} else {
		zones, err = s.zoneRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	dtos := make([]domain.ZoneDTO, len(zones))
	for i, zone := range zones {
		dtos[i] = mapper.ToZoneDTO(&zone)
	}

	return dtos, nil
}

func (s *ZoneService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateZoneRequest) (*domain.ZoneDTO, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("zone not found: %w", err)
	}

	zone.ShortForm = req.ShortForm
	zone.Description = req.Description
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	if err := s.zoneRepo.Update(ctx, zone); err != nil {
		return nil, fmt.Errorf("failed to update zone: %w", err)
	}

	dto := mapper.ToZoneDTO(zone)
	return &dto, nil
}
