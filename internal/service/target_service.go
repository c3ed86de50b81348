package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/mapper"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TargetService struct {
	targetRepo *repository.TargetRepository
	offerRepo  *repository.OfferRepository
	logger     *zap.Logger
}

func NewTargetService(
	targetRepo *repository.TargetRepository,
	offerRepo *repository.OfferRepository,
	logger *zap.Logger,
) *TargetService {
	return &TargetService{
		targetRepo: targetRepo,
		offerRepo:  offerRepo,
		logger:     logger,
	}
}

func (s *TargetService) Create(ctx context.Context, req *domain.CreateTargetRequest) (*domain.TargetDTO, error) {
	if req.ZoneID == nil && req.UserID == nil {
		return nil, fmt.Errorf("%w: target needs a zone or a user scope", ErrInvalidInput)
	}
	if !req.PeriodType.IsValid() {
		return nil, fmt.Errorf("%w: unknown period type %q", ErrInvalidInput, string(req.PeriodType))
	}
	if req.ProductType != nil && !req.ProductType.IsValid() {
		return nil, fmt.Errorf("%w: unknown product type %q", ErrInvalidInput, string(*req.ProductType))
	}

	target := &domain.Target{
		ZoneID:           req.ZoneID,
		UserID:           req.UserID,
		Period:           req.Period,
		PeriodType:       req.PeriodType,
		ProductType:      req.ProductType,
		TargetValue:      req.TargetValue,
		TargetOfferCount: req.TargetOfferCount,
	}

	if _, err := s.targetRepo.FindExisting(ctx, target); err == nil {
		return nil, ErrDuplicateTarget
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing target: %w", err)
	}

	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		target.CreatedByID = &userID
	}

	if err := s.targetRepo.Create(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	s.logger.Info("target created",
		zap.String("period", target.Period),
		zap.String("periodType", string(target.PeriodType)),
	)

	dto := mapper.ToTargetDTO(target)
	return &dto, nil
}

func (s *TargetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetDTO, error) {
	target, err := s.targetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get target: %w", err)
	}

	dto := mapper.ToTargetDTO(target)
	return &dto, nil
}

func (s *TargetService) List(ctx context.Context, page, pageSize int, filter repository.TargetFilter) ([]domain.TargetDTO, int64, error) {
	targets, total, err := s.targetRepo.List(ctx, page, pageSize, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list targets: %w", err)
	}

	dtos := make([]domain.TargetDTO, len(targets))
	for i, target := range targets {
		dtos[i] = mapper.ToTargetDTO(&target)
	}

	return dtos, total, nil
}

func (s *TargetService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTargetRequest) (*domain.TargetDTO, error) {
	target, err := s.targetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("target not found: %w", err)
	}

	target.TargetValue = req.TargetValue
	target.TargetOfferCount = req.TargetOfferCount

	if err := s.targetRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update target: %w", err)
	}

	dto := mapper.ToTargetDTO(target)
	return &dto, nil
}

func (s *TargetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.targetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}
	return nil
}

// GetAchievement computes the achievement of one target from the offers that
// reached order_booked or won within its scope and period. Actuals are never
// stored, so the numbers are always current.
func (s *TargetService) GetAchievement(ctx context.Context, id uuid.UUID) (*domain.TargetAchievementDTO, error) {
	target, err := s.targetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("target not found: %w", err)
	}

	actualValue, actualCount, err := s.offerRepo.TargetActuals(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to compute actuals: %w", err)
	}

	achievement := &domain.TargetAchievementDTO{
		Target:           mapper.ToTargetDTO(target),
		ActualValue:      actualValue,
		ActualOfferCount: actualCount,
	}
	if target.TargetValue > 0 {
		achievement.ValueAchievedPct = actualValue / target.TargetValue * 100
	}
	if target.TargetOfferCount > 0 {
		achievement.CountAchievedPct = float64(actualCount) / float64(target.TargetOfferCount) * 100
	}

	return achievement, nil
}
