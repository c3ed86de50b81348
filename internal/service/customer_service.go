package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kardex/offerfunnel-api/internal/auth"
	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/mapper"
	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo *repository.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	customer := &domain.Customer{
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Department:  req.Department,
		ZoneID:      req.ZoneID,
		IsActive:    true,
	}

	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		customer.CreatedByID = &userID
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created", zap.String("companyName", customer.CompanyName))

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// GetWithDetails returns a customer with its related records and counts
func (s *CustomerService) GetWithDetails(ctx context.Context, id uuid.UUID) (*domain.CustomerWithDetailsDTO, error) {
	customer, err := s.customerRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	details := &domain.CustomerWithDetailsDTO{
		CustomerDTO: mapper.ToCustomerDTO(customer),
		Stats:       &domain.CustomerStatsDTO{},
	}

	if details.Stats.TotalContacts, err = s.customerRepo.GetContactsCount(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	if details.Stats.TotalAssets, err = s.customerRepo.GetAssetsCount(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to count assets: %w", err)
	}
	if details.Stats.ActiveOffers, err = s.customerRepo.GetOffersCount(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to count offers: %w", err)
	}

	for i := range customer.Contacts {
		details.Contacts = append(details.Contacts, mapper.ToContactDTO(&customer.Contacts[i]))
	}
	for i := range customer.Assets {
		details.Assets = append(details.Assets, mapper.ToAssetDTO(&customer.Assets[i]))
	}
	for i := range customer.Offers {
		details.Offers = append(details.Offers, mapper.ToOfferDTO(&customer.Offers[i]))
		details.Stats.TotalOfferValue += customer.Offers[i].OfferValue
	}

	return details, nil
}

func (s *CustomerService) List(ctx context.Context, page, pageSize int, search string) ([]domain.CustomerDTO, int64, error) {
	customers, total, err := s.customerRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	dtos := make([]domain.CustomerDTO, len(customers))
	for i, customer := range customers {
		dtos[i] = mapper.ToCustomerDTO(&customer)
	}

	return dtos, total, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	customer.CompanyName = req.CompanyName
	customer.Location = req.Location
	customer.Department = req.Department
	customer.ZoneID = req.ZoneID
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if userCtx, ok := auth.FromContext(ctx); ok {
		userID := userCtx.UserID
		customer.UpdatedByID = &userID
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// Delete removes a customer and, through the cascade constraints, its
// contacts, assets and offers
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted", zap.String("id", id.String()))
	return nil
}
