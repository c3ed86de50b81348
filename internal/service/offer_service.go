package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/config"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/mapper"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OfferService struct {
	offerRepo    *repository.OfferRepository
	customerRepo *repository.CustomerRepository
	zoneRepo     *repository.ZoneRepository
	userRepo     *repository.UserRepository
	cfg          *config.ImportConfig
	logger       *zap.Logger
}

func NewOfferService(
	offerRepo *repository.OfferRepository,
	customerRepo *repository.CustomerRepository,
	zoneRepo *repository.ZoneRepository,
	userRepo *repository.UserRepository,
	cfg *config.ImportConfig,
	logger *zap.Logger,
) *OfferService {
	return &OfferService{
		offerRepo:    offerRepo,
		customerRepo: customerRepo,
		zoneRepo:     zoneRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *OfferService) Create(ctx context.Context, req *domain.CreateOfferRequest) (*domain.OfferDTO, error) {
	if userCtx, ok := auth.FromContext(ctx); ok && !userCtx.CanAccessZone(req.ZoneID) {
		return nil, fmt.Errorf("%w: zone not assigned to user", ErrPermissionDenied)
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if _, err := s.zoneRepo.GetByID(ctx, req.ZoneID); err != nil {
		return nil, fmt.Errorf("zone not found: %w", err)
	}

	reference := req.OfferReferenceNumber
	if reference == "" {
		reference = domain.NewOfferReference(s.cfg.ReferencePrefix)
	} else {
		if _, err := s.offerRepo.GetByReferenceNumber(ctx, reference); err == nil {
			return nil, fmt.Errorf("%w: reference number %q already in use", ErrConflict, reference)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check reference number: %w", err)
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, string(req.Priority))
	}
	if req.ProductType != nil && !req.ProductType.IsValid() {
		return nil, fmt.Errorf("%w: unknown product type %q", ErrInvalidInput, string(*req.ProductType))
	}

	offer := &domain.Offer{
		OfferReferenceNumber:  reference,
		CustomerID:            req.CustomerID,
		ContactID:             req.ContactID,
		UserID:                req.UserID,
		ZoneID:                req.ZoneID,
		AssetID:               req.AssetID,
		ProductType:           req.ProductType,
		Stage:                 domain.StageInitial,
		Status:                domain.OfferStatusActive,
		Priority:              priority,
		OfferValue:            req.OfferValue,
		ProbabilityPercentage: req.ProbabilityPercentage,
		OfferMonth:            req.OfferMonth,
		POExpectedMonth:       req.POExpectedMonth,
		Remarks:               req.Remarks,
	}

	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		offer.CreatedByID = &userID
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	s.logger.Info("offer created",
		zap.String("reference", offer.OfferReferenceNumber),
		zap.String("customerId", offer.CustomerID.String()),
	)

	return s.GetByID(ctx, offer.ID)
}

func (s *OfferService) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferDTO, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	dto := mapper.ToOfferDTO(offer)
	return &dto, nil
}

func (s *OfferService) List(ctx context.Context, page, pageSize int, filter repository.OfferFilter) ([]domain.OfferDTO, int64, error) {
	offers, total, err := s.offerRepo.List(ctx, page, pageSize, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list offers: %w", err)
	}

	dtos := make([]domain.OfferDTO, len(offers))
	for i, offer := range offers {
		dtos[i] = mapper.ToOfferDTO(&offer)
	}

	return dtos, total, nil
}

func (s *OfferService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateOfferRequest) (*domain.OfferDTO, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("offer not found: %w", err)
	}

	if offer.Stage.IsTerminal() {
		return nil, ErrOfferClosed
	}

	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, string(req.Status))
		}
		offer.Status = req.Status
	}
	if req.Priority != "" {
		if !req.Priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, string(req.Priority))
		}
		offer.Priority = req.Priority
	}
	if req.ProductType != nil {
		if !req.ProductType.IsValid() {
			return nil, fmt.Errorf("%w: unknown product type %q", ErrInvalidInput, string(*req.ProductType))
		}
		offer.ProductType = req.ProductType
	}

	offer.ContactID = req.ContactID
	offer.UserID = req.UserID
	offer.AssetID = req.AssetID
	offer.OfferValue = req.OfferValue
	offer.POValue = req.POValue
	offer.ProbabilityPercentage = req.ProbabilityPercentage
	offer.OfferMonth = req.OfferMonth
	offer.POExpectedMonth = req.POExpectedMonth
	offer.Remarks = req.Remarks

	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		offer.UpdatedByID = &userID
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	return s.GetByID(ctx, offer.ID)
}

// AdvanceStage moves an offer forward through the funnel. Transitions only
// go forward, terminal offers are frozen, and a PO value must be known
// before the offer reaches po_received.
func (s *OfferService) AdvanceStage(ctx context.Context, id uuid.UUID, req *domain.AdvanceOfferStageRequest) (*domain.OfferDTO, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("offer not found: %w", err)
	}

	if !req.Stage.IsValid() {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, string(req.Stage))
	}
	if offer.Stage.IsTerminal() {
		return nil, ErrOfferClosed
	}
	if req.Stage.Order() <= offer.Stage.Order() && req.Stage != domain.StageLost {
		return nil, fmt.Errorf("%w: cannot move from %s to %s",
			ErrInvalidStageTransition, offer.Stage, req.Stage)
	}

	if req.POValue != nil {
		offer.POValue = *req.POValue
	}
	if req.Stage.Order() >= domain.StagePOReceived.Order() && req.Stage != domain.StageLost && offer.POValue <= 0 {
		return nil, fmt.Errorf("%w: PO value required for stage %s", ErrInvalidInput, req.Stage)
	}

	offer.Stage = req.Stage
	if req.Remarks != "" {
		offer.Remarks = req.Remarks
	}
	if req.Stage.IsTerminal() {
		offer.Status = domain.OfferStatusClosed
	}

	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		offer.UpdatedByID = &userID
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	s.logger.Info("offer stage advanced",
		zap.String("reference", offer.OfferReferenceNumber),
		zap.String("stage", string(offer.Stage)),
	)

	return s.GetByID(ctx, offer.ID)
}

func (s *OfferService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.offerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}
