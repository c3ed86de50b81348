package mapper

import (
	"github.com/kardex/offerfunnel-api/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

// ToZoneDTO converts ServiceZone to ZoneDTO
func ToZoneDTO(zone *domain.ServiceZone) domain.ZoneDTO {
	return domain.ZoneDTO{
		ID:          zone.ID,
		Name:        zone.Name,
		ShortForm:   zone.ShortForm,
		Description: zone.Description,
		IsActive:    zone.IsActive,
		CreatedAt:   zone.CreatedAt.Format(timeFormat),
		UpdatedAt:   zone.UpdatedAt.Format(timeFormat),
	}
}

// ToUserDTO converts User to UserDTO. The password hash never leaves the domain layer.
func ToUserDTO(user *domain.User) domain.UserDTO {
	dto := domain.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(timeFormat),
		UpdatedAt: user.UpdatedAt.Format(timeFormat),
	}
	if user.LastLoginAt != nil {
		s := user.LastLoginAt.Format(timeFormat)
		dto.LastLoginAt = &s
	}
	for i := range user.Zones {
		dto.Zones = append(dto.Zones, ToZoneDTO(&user.Zones[i]))
	}
	return dto
}

// ToCustomerDTO converts Customer to CustomerDTO
func ToCustomerDTO(customer *domain.Customer) domain.CustomerDTO {
	dto := domain.CustomerDTO{
		ID:          customer.ID,
		CompanyName: customer.CompanyName,
		Location:    customer.Location,
		Department:  customer.Department,
		ZoneID:      customer.ZoneID,
		IsActive:    customer.IsActive,
		CreatedAt:   customer.CreatedAt.Format(timeFormat),
		UpdatedAt:   customer.UpdatedAt.Format(timeFormat),
	}
	if customer.Zone != nil {
		dto.ZoneName = customer.Zone.Name
	}
	return dto
}

// ToContactDTO converts Contact to ContactDTO
func ToContactDTO(contact *domain.Contact) domain.ContactDTO {
	dto := domain.ContactDTO{
		ID:                contact.ID,
		CustomerID:        contact.CustomerID,
		ContactPersonName: contact.ContactPersonName,
		ContactNumber:     contact.ContactNumber,
		Email:             contact.Email,
		IsPrimary:         contact.IsPrimary,
		IsActive:          contact.IsActive,
		CreatedAt:         contact.CreatedAt.Format(timeFormat),
		UpdatedAt:         contact.UpdatedAt.Format(timeFormat),
	}
	if contact.Customer != nil {
		dto.CustomerName = contact.Customer.CompanyName
	}
	return dto
}

// ToAssetDTO converts Asset to AssetDTO
func ToAssetDTO(asset *domain.Asset) domain.AssetDTO {
	dto := domain.AssetDTO{
		ID:                  asset.ID,
		CustomerID:          asset.CustomerID,
		AssetName:           asset.AssetName,
		MachineSerialNumber: asset.MachineSerialNumber,
		Model:               asset.Model,
		IsActive:            asset.IsActive,
		CreatedAt:           asset.CreatedAt.Format(timeFormat),
		UpdatedAt:           asset.UpdatedAt.Format(timeFormat),
	}
	if asset.Customer != nil {
		dto.CustomerName = asset.Customer.CompanyName
	}
	return dto
}

// ToOfferDTO converts Offer to OfferDTO
func ToOfferDTO(offer *domain.Offer) domain.OfferDTO {
	dto := domain.OfferDTO{
		ID:                    offer.ID,
		OfferReferenceNumber:  offer.OfferReferenceNumber,
		CustomerID:            offer.CustomerID,
		ContactID:             offer.ContactID,
		UserID:                offer.UserID,
		ZoneID:                offer.ZoneID,
		AssetID:               offer.AssetID,
		ProductType:           offer.ProductType,
		Stage:                 offer.Stage,
		Status:                offer.Status,
		Priority:              offer.Priority,
		OfferValue:            offer.OfferValue,
		POValue:               offer.POValue,
		ProbabilityPercentage: offer.ProbabilityPercentage,
		OfferMonth:            offer.OfferMonth,
		POExpectedMonth:       offer.POExpectedMonth,
		Remarks:               offer.Remarks,
		CreatedAt:             offer.CreatedAt.Format(timeFormat),
		UpdatedAt:             offer.UpdatedAt.Format(timeFormat),
	}
	if offer.Customer != nil {
		dto.CustomerName = offer.Customer.CompanyName
	}
	if offer.Contact != nil {
		dto.ContactName = offer.Contact.ContactPersonName
	}
	if offer.User != nil {
		dto.UserName = offer.User.Name
	}
	if offer.Zone != nil {
		dto.ZoneName = offer.Zone.Name
	}
	return dto
}

// ToTargetDTO converts Target to TargetDTO
func ToTargetDTO(target *domain.Target) domain.TargetDTO {
	dto := domain.TargetDTO{
		ID:               target.ID,
		ZoneID:           target.ZoneID,
		UserID:           target.UserID,
		Period:           target.Period,
		PeriodType:       target.PeriodType,
		ProductType:      target.ProductType,
		TargetValue:      target.TargetValue,
		TargetOfferCount: target.TargetOfferCount,
		CreatedAt:        target.CreatedAt.Format(timeFormat),
		UpdatedAt:        target.UpdatedAt.Format(timeFormat),
	}
	if target.Zone != nil {
		dto.ZoneName = target.Zone.Name
	}
	if target.User != nil {
		dto.UserName = target.User.Name
	}
	return dto
}
