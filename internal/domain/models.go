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

// BeforeCreate assigns an id when the caller didn't set one.
// Generated in the application so the same models work on Postgres and SQLite.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// EventStatus represents the lifecycle status of an event
type EventStatus string

const (
	EventStatusEstimation       EventStatus = "estimation"
	EventStatusRequestQuotation EventStatus = "request_quotation"
	EventStatusQuotation        EventStatus = "quotation"
	EventStatusConfirmation     EventStatus = "confirmation"
	EventStatusOngoing          EventStatus = "ongoing"
	EventStatusCompleted        EventStatus = "completed"
	EventStatusDeclined         EventStatus = "declined"
)

// IsValid checks if the EventStatus is a valid enum value
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusEstimation, EventStatusRequestQuotation, EventStatusQuotation,
		EventStatusConfirmation, EventStatusOngoing, EventStatusCompleted, EventStatusDeclined:
		return true
	}
	return false
}

// ShiftStatus represents the lifecycle status of a shift.
// It mirrors EventStatus plus two shift-only terminal states.
type ShiftStatus string

const (
	ShiftStatusEstimation       ShiftStatus = "estimation"
	ShiftStatusRequestQuotation ShiftStatus = "request_quotation"
	ShiftStatusQuotation        ShiftStatus = "quotation"
	ShiftStatusConfirmation     ShiftStatus = "confirmation"
	ShiftStatusOngoing          ShiftStatus = "ongoing"
	ShiftStatusCompleted        ShiftStatus = "completed"
	ShiftStatusDeclined         ShiftStatus = "declined"
	ShiftStatusCancelled        ShiftStatus = "cancelled"
	ShiftStatusDeleted          ShiftStatus = "deleted"
)

// IsValid checks if the ShiftStatus is a valid enum value
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusEstimation, ShiftStatusRequestQuotation, ShiftStatusQuotation,
		ShiftStatusConfirmation, ShiftStatusOngoing, ShiftStatusCompleted,
		ShiftStatusDeclined, ShiftStatusCancelled, ShiftStatusDeleted:
		return true
	}
	return false
}

// ShiftStatusPrecedence is the fixed total order used to derive an event's
// status from its shifts, highest precedence first. Declined, cancelled and
// deleted shifts never map to an event status.
var ShiftStatusPrecedence = []ShiftStatus{
	ShiftStatusCompleted,
	ShiftStatusOngoing,
	ShiftStatusConfirmation,
	ShiftStatusQuotation,
	ShiftStatusRequestQuotation,
	ShiftStatusEstimation,
}

// EventStatusFor maps a shift status to the equivalent event status.
// The second return value is false for statuses that never roll up.
func EventStatusFor(s ShiftStatus) (EventStatus, bool) {
	switch s {
	case ShiftStatusEstimation, ShiftStatusRequestQuotation, ShiftStatusQuotation,
		ShiftStatusConfirmation, ShiftStatusOngoing, ShiftStatusCompleted:
		return EventStatus(s), true
	}
	return "", false
}

// Location represents a named geographic point used by events and shifts.
// Coordinates are stored as a projected planar point, not geodetic degrees.
type Location struct {
	BaseModel
	Name string  `gorm:"type:varchar(255);not null"`
	Lat  float64 `gorm:"type:decimal(12,8);not null;default:0"`
	Lng  float64 `gorm:"type:decimal(12,8);not null;default:0"`
}

// CrewDepartment represents a crew home base; travel expense is computed
// between a shift's location and its department's location.
type CrewDepartment struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);not null"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;column:location_id"`
	Location   *Location `gorm:"foreignKey:LocationID"`
}

// Equipment is a catalog item with a default charge rate per shift
type Equipment struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;index"`
	Description string  `gorm:"type:text"`
	ChargeRate  float64 `gorm:"type:decimal(15,2);not null;default:0;column:charge_rate"`
}

// Qualification is a catalog item describing a crew skill with its charge
// rates, including the additional rate applied per crew chief
type Qualification struct {
	BaseModel
	Name                string  `gorm:"type:varchar(255);not null;index"`
	Description         string  `gorm:"type:text"`
	ChargeRate          float64 `gorm:"type:decimal(15,2);not null;default:0;column:charge_rate"`
	ChiefAddlChargeRate float64 `gorm:"type:decimal(15,2);not null;default:0;column:chief_addl_charge_rate"`
}

// Client represents the customer organization that books events
type Client struct {
	BaseModel
	CompanyName  string `gorm:"type:varchar(255);not null;index;column:company_name"`
	ContactName  string `gorm:"type:varchar(255);column:contact_name"`
	ContactEmail string `gorm:"type:varchar(255);column:contact_email"`
	ContactPhone string `gorm:"type:varchar(50);column:contact_phone"`
}

// SupplierSetting is the tenant-wide pricing singleton. Exactly one row is
// expected; RatePerKm is the fallback travel rate when a shift carries none.
type SupplierSetting struct {
	BaseModel
	RatePerKm float64 `gorm:"type:decimal(15,2);not null;default:0;column:rate_per_km"`
}

// EventType tags events with a category (wedding, conference, ...)
type EventType struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
}

// Event is a top-level booking for a client, composed of shifts.
// SubTotal is the sum of TotalShiftCost over child shifts; TotalCost is
// derived from SubTotal, Discount and TaxPercentage on every save.
type Event struct {
	BaseModel
	Name          string      `gorm:"type:varchar(255);not null;index"`
	EventTypeID   *uuid.UUID  `gorm:"type:uuid;column:event_type_id"`
	EventType     *EventType  `gorm:"foreignKey:EventTypeID"`
	Status        EventStatus `gorm:"type:varchar(50);not null;default:'estimation';index"`
	ClientID      uuid.UUID   `gorm:"type:uuid;not null;index;column:client_id"`
	Client        *Client     `gorm:"foreignKey:ClientID"`
	StartDate     *time.Time  `gorm:"column:start_date"`
	EndDate       *time.Time  `gorm:"column:end_date"`
	Locations     []Location  `gorm:"many2many:event_locations"`
	SubTotal      float64     `gorm:"type:decimal(15,2);not null;default:0;column:sub_total"`
	TotalCost     float64     `gorm:"type:decimal(15,2);not null;default:0;column:total_cost"`
	Discount      float64     `gorm:"type:decimal(15,2);not null;default:0"`
	TaxPercentage float64     `gorm:"type:decimal(5,2);not null;default:0;column:tax_percentage"`
	Comments      string      `gorm:"type:text"`
	PONumber      string      `gorm:"type:varchar(255);column:po_number"`
	RefNumber     string      `gorm:"type:varchar(255);column:ref_number"`
	IsArchived    bool        `gorm:"not null;default:false;column:is_archived;index"`
	Shifts        []Shift     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// Shift is a scheduled work block under an event, the unit that accrues
// travel, equipment and qualification cost
type Shift struct {
	BaseModel
	Name                 string          `gorm:"type:varchar(255);not null;index"`
	EventID              uuid.UUID       `gorm:"type:uuid;not null;index;column:event_id"`
	Event                *Event          `gorm:"foreignKey:EventID"`
	StartDate            *time.Time      `gorm:"column:start_date"`
	EndDate              *time.Time      `gorm:"column:end_date"`
	TotalShiftHours      float64         `gorm:"type:decimal(10,2);not null;default:0;column:total_shift_hours"`
	LocationID           *uuid.UUID      `gorm:"type:uuid;column:location_id"`
	Location             *Location       `gorm:"foreignKey:LocationID"`
	DepartmentID         uuid.UUID       `gorm:"type:uuid;not null;column:department_id"`
	Department           *CrewDepartment `gorm:"foreignKey:DepartmentID"`
	NoOfResources        int             `gorm:"not null;default:1;column:no_of_resources"`
	NoOfCrewChiefs       int             `gorm:"not null;default:0;column:no_of_crew_chiefs"`
	Status               ShiftStatus     `gorm:"type:varchar(50);not null;default:'estimation';index"`
	DistanceRate         float64         `gorm:"type:decimal(15,2);not null;default:0;column:distance_rate"`
	TravelExpenses       float64         `gorm:"type:decimal(15,2);not null;default:0;column:travel_expenses"`
	QualificationCharges float64         `gorm:"type:decimal(15,2);not null;default:0;column:qualification_charges"`
	EquipmentCharges     float64         `gorm:"type:decimal(15,2);not null;default:0;column:equipment_charges"`
	TotalShiftCost       float64         `gorm:"type:decimal(15,2);not null;default:0;column:total_shift_cost"`

	EquipmentLines     []ShiftEquipment     `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	QualificationLines []ShiftQualification `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// ShiftEquipment is an equipment line item owned by exactly one shift.
// EquipmentShiftCharge defaults from the catalog item when left at zero.
type ShiftEquipment struct {
	BaseModel
	ShiftID              uuid.UUID  `gorm:"type:uuid;not null;index;column:shift_id"`
	Shift                *Shift     `gorm:"foreignKey:ShiftID"`
	EquipmentID          uuid.UUID  `gorm:"type:uuid;not null;column:equipment_id"`
	Equipment            *Equipment `gorm:"foreignKey:EquipmentID"`
	Count                int        `gorm:"not null;default:1"`
	EquipmentShiftCharge float64    `gorm:"type:decimal(15,2);not null;default:0;column:equipment_shift_charge"`
	EquipmentCost        float64    `gorm:"type:decimal(15,2);not null;default:0;column:equipment_cost"`
}

// ShiftQualification is a crew-requirement line item owned by exactly one
// shift. Rates default from the linked qualification when left at zero; the
// cost terms read the parent shift's hours and crew-chief count.
type ShiftQualification struct {
	BaseModel
	ShiftID             uuid.UUID      `gorm:"type:uuid;not null;index;column:shift_id"`
	Shift               *Shift         `gorm:"foreignKey:ShiftID"`
	QualificationID     *uuid.UUID     `gorm:"type:uuid;column:qualification_id"`
	Qualification       *Qualification `gorm:"foreignKey:QualificationID"`
	ChargeRate          float64        `gorm:"type:decimal(15,2);not null;default:0;column:charge_rate"`
	AddChiefChargeRate  float64        `gorm:"type:decimal(15,2);not null;default:0;column:add_chief_charge_rate"`
	TotalAddChiefCharge float64        `gorm:"type:decimal(15,2);not null;default:0;column:total_add_chief_charge"`
	NoOfResources       int            `gorm:"not null;default:0;column:no_of_resources"`
	QualificationCost   float64        `gorm:"type:decimal(15,2);not null;default:0;column:qualification_cost"`
}

// QuickQuote is a flat lead-capture record with no derived state
type QuickQuote struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(255);not null;column:first_name"`
	LastName     string `gorm:"type:varchar(255);not null;column:last_name"`
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(30);not null"`
	EventDetails string `gorm:"type:text;column:event_details"`
}
