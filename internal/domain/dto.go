package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses

type ZoneDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        ZoneName  `json:"name"`
	ShortForm   string    `json:"shortForm"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   string    `json:"createdAt"` // ISO 8601
	UpdatedAt   string    `json:"updatedAt"` // ISO 8601
}

type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        UserRole  `json:"role"`
	Zones       []ZoneDTO `json:"zones,omitempty"`
	IsActive    bool      `json:"isActive"`
	LastLoginAt *string   `json:"lastLoginAt,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type CustomerDTO struct {
	ID          uuid.UUID  `json:"id"`
	CompanyName string     `json:"companyName"`
	Location    string     `json:"location,omitempty"`
	Department  string     `json:"department,omitempty"`
	ZoneID      *uuid.UUID `json:"zoneId,omitempty"`
	ZoneName    ZoneName   `json:"zoneName,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// CustomerWithDetailsDTO includes customer data with related entities and statistics
type CustomerWithDetailsDTO struct {
	CustomerDTO
	Stats    *CustomerStatsDTO `json:"stats,omitempty"`
	Contacts []ContactDTO      `json:"contacts,omitempty"`
	Assets   []AssetDTO        `json:"assets,omitempty"`
	Offers   []OfferDTO        `json:"offers,omitempty"`
}

// CustomerStatsDTO holds aggregated statistics for a customer
type CustomerStatsDTO struct {
	TotalOfferValue float64 `json:"totalOfferValue"`
	ActiveOffers    int     `json:"activeOffers"`
	TotalContacts   int     `json:"totalContacts"`
	TotalAssets     int     `json:"totalAssets"`
}

type ContactDTO struct {
	ID                uuid.UUID `json:"id"`
	CustomerID        uuid.UUID `json:"customerId"`
	CustomerName      string    `json:"customerName,omitempty"`
	ContactPersonName string    `json:"contactPersonName"`
	ContactNumber     string    `json:"contactNumber,omitempty"`
	Email             string    `json:"email,omitempty"`
	IsPrimary         bool      `json:"isPrimary"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         string    `json:"createdAt"`
	UpdatedAt         string    `json:"updatedAt"`
}

type AssetDTO struct {
	ID                  uuid.UUID `json:"id"`
	CustomerID          uuid.UUID `json:"customerId"`
	CustomerName        string    `json:"customerName,omitempty"`
	AssetName           string    `json:"assetName"`
	MachineSerialNumber string    `json:"machineSerialNumber,omitempty"`
	Model               string    `json:"model,omitempty"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           string    `json:"createdAt"`
	UpdatedAt           string    `json:"updatedAt"`
}

type OfferDTO struct {
	ID                    uuid.UUID     `json:"id"`
	OfferReferenceNumber  string        `json:"offerReferenceNumber"`
	CustomerID            uuid.UUID     `json:"customerId"`
	CustomerName          string        `json:"customerName,omitempty"`
	ContactID             *uuid.UUID    `json:"contactId,omitempty"`
	ContactName           string        `json:"contactName,omitempty"`
	UserID                uuid.UUID     `json:"userId"`
	UserName              string        `json:"userName,omitempty"`
	ZoneID                uuid.UUID     `json:"zoneId"`
	ZoneName              ZoneName      `json:"zoneName,omitempty"`
	AssetID               *uuid.UUID    `json:"assetId,omitempty"`
	ProductType           *ProductType  `json:"productType,omitempty"`
	Stage                 OfferStage    `json:"stage"`
	Status                OfferStatus   `json:"status"`
	Priority              OfferPriority `json:"priority"`
	OfferValue            float64       `json:"offerValue"`
	POValue               float64       `json:"poValue"`
	ProbabilityPercentage int           `json:"probabilityPercentage"`
	OfferMonth            string        `json:"offerMonth,omitempty"`
	POExpectedMonth       string        `json:"poExpectedMonth,omitempty"`
	Remarks               string        `json:"remarks,omitempty"`
	CreatedAt             string        `json:"createdAt"`
	UpdatedAt             string        `json:"updatedAt"`
}

type TargetDTO struct {
	ID               uuid.UUID        `json:"id"`
	ZoneID           *uuid.UUID       `json:"zoneId,omitempty"`
	ZoneName         ZoneName         `json:"zoneName,omitempty"`
	UserID           *uuid.UUID       `json:"userId,omitempty"`
	UserName         string           `json:"userName,omitempty"`
	Period           string           `json:"period"`
	PeriodType       TargetPeriodType `json:"periodType"`
	ProductType      *ProductType     `json:"productType,omitempty"`
	TargetValue      float64          `json:"targetValue"`
	TargetOfferCount int              `json:"targetOfferCount"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
}

// TargetAchievementDTO pairs a target with actuals computed from offers
type TargetAchievementDTO struct {
	Target           TargetDTO `json:"target"`
	ActualValue      float64   `json:"actualValue"`
	ActualOfferCount int       `json:"actualOfferCount"`
	ValueAchievedPct float64   `json:"valueAchievedPct"`
	CountAchievedPct float64   `json:"countAchievedPct"`
}

// Dashboard DTOs

type FunnelStageDTO struct {
	Stage      OfferStage `json:"stage"`
	OfferCount int        `json:"offerCount"`
	TotalValue float64    `json:"totalValue"`
}

type FunnelSummaryDTO struct {
	Stages     []FunnelStageDTO `json:"stages"`
	TotalCount int              `json:"totalCount"`
	TotalValue float64          `json:"totalValue"`
}

type ZonePerformanceDTO struct {
	ZoneID     uuid.UUID `json:"zoneId"`
	ZoneName   ZoneName  `json:"zoneName"`
	OfferCount int       `json:"offerCount"`
	TotalValue float64   `json:"totalValue"`
	WonCount   int       `json:"wonCount"`
	WonValue   float64   `json:"wonValue"`
	WinRatePct float64   `json:"winRatePct"`
}

type MonthlyForecastDTO struct {
	Month         string  `json:"month"` // YYYY-MM
	OfferCount    int     `json:"offerCount"`
	ExpectedValue float64 `json:"expectedValue"` // sum(poValue or offerValue, weighted by probability)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// API Response wrapper
type APIResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expiresAt"`
	User      UserDTO `json:"user"`
}

type CreateZoneRequest struct {
	Name        ZoneName `json:"name" validate:"required,max=20"`
	ShortForm   string   `json:"shortForm" validate:"required,max=10"`
	Description string   `json:"description,omitempty" validate:"max=500"`
}

type UpdateZoneRequest struct {
	ShortForm   string `json:"shortForm" validate:"required,max=10"`
	Description string `json:"description,omitempty" validate:"max=500"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required,max=200"`
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     UserRole    `json:"role" validate:"required"`
	ZoneIDs  []uuid.UUID `json:"zoneIds,omitempty"`
}

type UpdateUserRequest struct {
	Name     string      `json:"name" validate:"required,max=200"`
	Role     UserRole    `json:"role" validate:"required"`
	ZoneIDs  []uuid.UUID `json:"zoneIds,omitempty"`
	IsActive *bool       `json:"isActive,omitempty"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateCustomerRequest struct {
	CompanyName string     `json:"companyName" validate:"required,max=200"`
	Location    string     `json:"location,omitempty" validate:"max=200"`
	Department  string     `json:"department,omitempty" validate:"max=100"`
	ZoneID      *uuid.UUID `json:"zoneId,omitempty"`
}

type UpdateCustomerRequest struct {
	CompanyName string     `json:"companyName" validate:"required,max=200"`
	Location    string     `json:"location,omitempty" validate:"max=200"`
	Department  string     `json:"department,omitempty" validate:"max=100"`
	ZoneID      *uuid.UUID `json:"zoneId,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}

type CreateContactRequest struct {
	CustomerID        uuid.UUID `json:"customerId" validate:"required"`
	ContactPersonName string    `json:"contactPersonName" validate:"required,max=200"`
	ContactNumber     string    `json:"contactNumber,omitempty" validate:"max=50"`
	Email             string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	IsPrimary         bool      `json:"isPrimary,omitempty"`
}

type UpdateContactRequest struct {
	ContactPersonName string `json:"contactPersonName" validate:"required,max=200"`
	ContactNumber     string `json:"contactNumber,omitempty" validate:"max=50"`
	Email             string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	IsPrimary         *bool  `json:"isPrimary,omitempty"`
	IsActive          *bool  `json:"isActive,omitempty"`
}

type CreateAssetRequest struct {
	CustomerID          uuid.UUID `json:"customerId" validate:"required"`
	AssetName           string    `json:"assetName" validate:"required,max=200"`
	MachineSerialNumber string    `json:"machineSerialNumber,omitempty" validate:"max=100"`
	Model               string    `json:"model,omitempty" validate:"max=100"`
}

type UpdateAssetRequest struct {
	AssetName           string `json:"assetName" validate:"required,max=200"`
	MachineSerialNumber string `json:"machineSerialNumber,omitempty" validate:"max=100"`
	Model               string `json:"model,omitempty" validate:"max=100"`
	IsActive            *bool  `json:"isActive,omitempty"`
}

type CreateOfferRequest struct {
	OfferReferenceNumber  string        `json:"offerReferenceNumber,omitempty" validate:"max=50"`
	CustomerID            uuid.UUID     `json:"customerId" validate:"required"`
	ContactID             *uuid.UUID    `json:"contactId,omitempty"`
	UserID                uuid.UUID     `json:"userId" validate:"required"`
	ZoneID                uuid.UUID     `json:"zoneId" validate:"required"`
	AssetID               *uuid.UUID    `json:"assetId,omitempty"`
	ProductType           *ProductType  `json:"productType,omitempty"`
	Priority              OfferPriority `json:"priority,omitempty"`
	OfferValue            float64       `json:"offerValue" validate:"gte=0"`
	ProbabilityPercentage int           `json:"probabilityPercentage,omitempty" validate:"gte=0,lte=100"`
	OfferMonth            string        `json:"offerMonth,omitempty" validate:"max=7"`
	POExpectedMonth       string        `json:"poExpectedMonth,omitempty" validate:"max=7"`
	Remarks               string        `json:"remarks,omitempty"`
}

type UpdateOfferRequest struct {
	ContactID             *uuid.UUID    `json:"contactId,omitempty"`
	UserID                uuid.UUID     `json:"userId" validate:"required"`
	AssetID               *uuid.UUID    `json:"assetId,omitempty"`
	ProductType           *ProductType  `json:"productType,omitempty"`
	Status                OfferStatus   `json:"status,omitempty"`
	Priority              OfferPriority `json:"priority,omitempty"`
	OfferValue            float64       `json:"offerValue" validate:"gte=0"`
	POValue               float64       `json:"poValue,omitempty" validate:"gte=0"`
	ProbabilityPercentage int           `json:"probabilityPercentage,omitempty" validate:"gte=0,lte=100"`
	OfferMonth            string        `json:"offerMonth,omitempty" validate:"max=7"`
	POExpectedMonth       string        `json:"poExpectedMonth,omitempty" validate:"max=7"`
	Remarks               string        `json:"remarks,omitempty"`
}

type AdvanceOfferStageRequest struct {
	Stage   OfferStage `json:"stage" validate:"required"`
	POValue *float64   `json:"poValue,omitempty" validate:"omitempty,gte=0"`
	Remarks string     `json:"remarks,omitempty"`
}

type CreateTargetRequest struct {
	ZoneID           *uuid.UUID       `json:"zoneId,omitempty"`
	UserID           *uuid.UUID       `json:"userId,omitempty"`
	Period           string           `json:"period" validate:"required,max=7"`
	PeriodType       TargetPeriodType `json:"periodType" validate:"required"`
	ProductType      *ProductType     `json:"productType,omitempty"`
	TargetValue      float64          `json:"targetValue" validate:"gte=0"`
	TargetOfferCount int              `json:"targetOfferCount,omitempty" validate:"gte=0"`
}

type UpdateTargetRequest struct {
	TargetValue      float64 `json:"targetValue" validate:"gte=0"`
	TargetOfferCount int     `json:"targetOfferCount,omitempty" validate:"gte=0"`
}
