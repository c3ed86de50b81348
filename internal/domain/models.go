package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an id when the caller has not set one
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ZoneName represents one of the four geographic service zones
type ZoneName string

const (
	ZoneWest  ZoneName = "WEST"
	ZoneSouth ZoneName = "SOUTH"
	ZoneNorth ZoneName = "NORTH"
	ZoneEast  ZoneName = "EAST"
)

// IsValid checks if the ZoneName is a valid enum value
func (z ZoneName) IsValid() bool {
	switch z {
	case ZoneWest, ZoneSouth, ZoneNorth, ZoneEast:
		return true
	}
	return false
}

// ServiceZone represents a geographic sales territory
type ServiceZone struct {
	BaseModel
	Name        ZoneName `gorm:"type:varchar(20);not null;unique"`
	ShortForm   string   `gorm:"type:varchar(10);not null;column:short_form"`
	Description string   `gorm:"type:varchar(500)"`
	IsActive    bool     `gorm:"not null;default:true;column:is_active"`
	Users       []User   `gorm:"many2many:user_zones"`
}

// TableName overrides the default table name to match the migration
func (ServiceZone) TableName() string {
	return "service_zones"
}

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleZoneUser UserRole = "zone_user"
)

// IsValid checks if the UserRole is a valid enum value
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleZoneUser:
		return true
	}
	return false
}

// User represents a salesperson or administrator
type User struct {
	BaseModel
	Name         string        `gorm:"type:varchar(200);not null;index"`
	Email        string        `gorm:"type:varchar(255);not null;unique"`
	PasswordHash string        `gorm:"type:varchar(255);not null;column:password_hash"`
	Role         UserRole      `gorm:"type:varchar(50);not null;default:'zone_user';index"`
	Zones        []ServiceZone `gorm:"many2many:user_zones"`
	IsActive     bool          `gorm:"not null;default:true;column:is_active"`
	LastLoginAt  *time.Time    `gorm:"column:last_login_at"`
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Customer represents a company buying machines or service contracts.
// CompanyName is the natural key the import pipeline matches on.
type Customer struct {
	BaseModel
	CompanyName string       `gorm:"type:varchar(200);not null;index;column:company_name"`
	Location    string       `gorm:"type:varchar(200)"`
	Department  string       `gorm:"type:varchar(100)"`
	ZoneID      *uuid.UUID   `gorm:"type:uuid;index;column:zone_id"`
	Zone        *ServiceZone `gorm:"foreignKey:ZoneID"`
	IsActive    bool         `gorm:"not null;default:true;column:is_active"`
	CreatedByID *uuid.UUID   `gorm:"type:uuid;column:created_by_id"`
	UpdatedByID *uuid.UUID   `gorm:"type:uuid;column:updated_by_id"`
	Contacts    []Contact    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Assets      []Asset      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Offers      []Offer      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// Contact represents a person at a customer site
type Contact struct {
	BaseModel
	CustomerID        uuid.UUID `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer          *Customer `gorm:"foreignKey:CustomerID"`
	ContactPersonName string    `gorm:"type:varchar(200);not null;column:contact_person_name"`
	ContactNumber     string    `gorm:"type:varchar(50);column:contact_number"`
	Email             string    `gorm:"type:varchar(255)"`
	IsPrimary         bool      `gorm:"not null;default:false;column:is_primary"`
	IsActive          bool      `gorm:"not null;default:true;column:is_active"`
}

// Asset represents an installed machine at a customer site
type Asset struct {
	BaseModel
	CustomerID          uuid.UUID `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer            *Customer `gorm:"foreignKey:CustomerID"`
	AssetName           string    `gorm:"type:varchar(200);not null;column:asset_name"`
	MachineSerialNumber string    `gorm:"type:varchar(100);index;column:machine_serial_number"`
	Model               string    `gorm:"type:varchar(100)"`
	IsActive            bool      `gorm:"not null;default:true;column:is_active"`
}

// ProductType represents what an offer is selling
type ProductType string

const (
	ProductTypeNewMachine     ProductType = "new_machine"
	ProductTypeContract       ProductType = "contract"
	ProductTypeMidlifeUpgrade ProductType = "midlife_upgrade"
	ProductTypeSpareParts     ProductType = "spare_parts"
	ProductTypeRetrofit       ProductType = "retrofit"
	ProductTypeRelocation     ProductType = "relocation"
	ProductTypeOther          ProductType = "other"
)

// IsValid checks if the ProductType is a valid enum value
func (pt ProductType) IsValid() bool {
	switch pt {
	case ProductTypeNewMachine, ProductTypeContract, ProductTypeMidlifeUpgrade,
		ProductTypeSpareParts, ProductTypeRetrofit, ProductTypeRelocation, ProductTypeOther:
		return true
	}
	return false
}

// OfferStage represents where an offer sits in the sales funnel
type OfferStage string

const (
	StageInitial       OfferStage = "initial"
	StageProposalSent  OfferStage = "proposal_sent"
	StageNegotiation   OfferStage = "negotiation"
	StageFinalApproval OfferStage = "final_approval"
	StagePOReceived    OfferStage = "po_received"
	StageOrderBooked   OfferStage = "order_booked"
	StageWon           OfferStage = "won"
	StageLost          OfferStage = "lost"
)

// IsValid checks if the OfferStage is a valid enum value
func (s OfferStage) IsValid() bool {
	switch s {
	case StageInitial, StageProposalSent, StageNegotiation, StageFinalApproval,
		StagePOReceived, StageOrderBooked, StageWon, StageLost:
		return true
	}
	return false
}

// IsTerminal reports whether the stage ends the funnel
func (s OfferStage) IsTerminal() bool {
	return s == StageWon || s == StageLost
}

// Order returns the position of the stage in the funnel. Terminal stages
// share the highest position; unknown stages return -1.
func (s OfferStage) Order() int {
	switch s {
	case StageInitial:
		return 0
	case StageProposalSent:
		return 1
	case StageNegotiation:
		return 2
	case StageFinalApproval:
		return 3
	case StagePOReceived:
		return 4
	case StageOrderBooked:
		return 5
	case StageWon, StageLost:
		return 6
	}
	return -1
}

// FunnelStages returns the non-terminal stages plus won in funnel order,
// the order dashboards render them in
func FunnelStages() []OfferStage {
	return []OfferStage{
		StageInitial,
		StageProposalSent,
		StageNegotiation,
		StageFinalApproval,
		StagePOReceived,
		StageOrderBooked,
		StageWon,
	}
}

// OfferStatus represents the administrative state of an offer
type OfferStatus string

const (
	OfferStatusActive OfferStatus = "active"
	OfferStatusOnHold OfferStatus = "on_hold"
	OfferStatusClosed OfferStatus = "closed"
)

// IsValid checks if the OfferStatus is a valid enum value
func (os OfferStatus) IsValid() bool {
	switch os {
	case OfferStatusActive, OfferStatusOnHold, OfferStatusClosed:
		return true
	}
	return false
}

// OfferPriority represents the urgency of an offer
type OfferPriority string

const (
	PriorityLow    OfferPriority = "low"
	PriorityMedium OfferPriority = "medium"
	PriorityHigh   OfferPriority = "high"
	PriorityUrgent OfferPriority = "urgent"
)

// IsValid checks if the OfferPriority is a valid enum value
func (p OfferPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Offer represents a sales opportunity in the funnel
type Offer struct {
	BaseModel
	OfferReferenceNumber  string        `gorm:"type:varchar(50);not null;uniqueIndex;column:offer_reference_number"`
	CustomerID            uuid.UUID     `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer              *Customer     `gorm:"foreignKey:CustomerID"`
	ContactID             *uuid.UUID    `gorm:"type:uuid;index;column:contact_id"`
	Contact               *Contact      `gorm:"foreignKey:ContactID"`
	UserID                uuid.UUID     `gorm:"type:uuid;not null;index;column:user_id"`
	User                  *User         `gorm:"foreignKey:UserID"`
	ZoneID                uuid.UUID     `gorm:"type:uuid;not null;index;column:zone_id"`
	Zone                  *ServiceZone  `gorm:"foreignKey:ZoneID"`
	AssetID               *uuid.UUID    `gorm:"type:uuid;index;column:asset_id"`
	Asset                 *Asset        `gorm:"foreignKey:AssetID"`
	ProductType           *ProductType  `gorm:"type:varchar(50);index;column:product_type"`
	Stage                 OfferStage    `gorm:"type:varchar(50);not null;default:'initial';index"`
	Status                OfferStatus   `gorm:"type:varchar(50);not null;default:'active';index"`
	Priority              OfferPriority `gorm:"type:varchar(50);not null;default:'medium'"`
	OfferValue            float64       `gorm:"type:decimal(15,2);not null;default:0;column:offer_value"`
	POValue               float64       `gorm:"type:decimal(15,2);not null;default:0;column:po_value"`
	ProbabilityPercentage int           `gorm:"type:int;not null;default:0;column:probability_percentage"`
	OfferMonth            string        `gorm:"type:varchar(7);index;column:offer_month"`
	POExpectedMonth       string        `gorm:"type:varchar(7);index;column:po_expected_month"`
	Remarks               string        `gorm:"type:text"`
	CreatedByID           *uuid.UUID    `gorm:"type:uuid;column:created_by_id"`
	UpdatedByID           *uuid.UUID    `gorm:"type:uuid;column:updated_by_id"`
}

// TargetPeriodType represents the granularity of a target period
type TargetPeriodType string

const (
	PeriodMonthly TargetPeriodType = "monthly"
	PeriodYearly  TargetPeriodType = "yearly"
)

// IsValid checks if the TargetPeriodType is a valid enum value
func (pt TargetPeriodType) IsValid() bool {
	switch pt {
	case PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Target represents a sales goal scoped to a zone or a user for a period.
// Period is "YYYY-MM" for monthly targets and "YYYY" for yearly ones.
// Actuals are never stored; they are computed against offers at read time.
type Target struct {
	BaseModel
	ZoneID           *uuid.UUID       `gorm:"type:uuid;index;column:zone_id"`
	Zone             *ServiceZone     `gorm:"foreignKey:ZoneID"`
	UserID           *uuid.UUID       `gorm:"type:uuid;index;column:user_id"`
	User             *User            `gorm:"foreignKey:UserID"`
	Period           string           `gorm:"type:varchar(7);not null;index"`
	PeriodType       TargetPeriodType `gorm:"type:varchar(20);not null;default:'monthly';column:period_type"`
	ProductType      *ProductType     `gorm:"type:varchar(50);column:product_type"`
	TargetValue      float64          `gorm:"type:decimal(15,2);not null;default:0;column:target_value"`
	TargetOfferCount int              `gorm:"type:int;not null;default:0;column:target_offer_count"`
	CreatedByID      *uuid.UUID       `gorm:"type:uuid;column:created_by_id"`
}
