package domain

import (
	"github.com/google/uuid"
)

// DTOs returned by the API

type LocationDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Lat  float64   `json:"lat"`
	Lng  float64   `json:"lng"`
}

type EventTypeDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type EventDTO struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	EventTypeID   *uuid.UUID    `json:"eventTypeId,omitempty"`
	EventTypeName string        `json:"eventTypeName,omitempty"`
	Status        EventStatus   `json:"status"`
	ClientID      uuid.UUID     `json:"clientId"`
	ClientName    string        `json:"clientName,omitempty"`
	StartDate     *string       `json:"startDate,omitempty"`
	EndDate       *string       `json:"endDate,omitempty"`
	Locations     []LocationDTO `json:"locations,omitempty"`
	SubTotal      float64       `json:"subTotal"`
	TotalCost     float64       `json:"totalCost"`
	Discount      float64       `json:"discount"`
	TaxPercentage float64       `json:"taxPercentage"`
	Comments      string        `json:"comments,omitempty"`
	PONumber      string        `json:"poNumber,omitempty"`
	RefNumber     string        `json:"refNumber,omitempty"`
	IsArchived    bool          `json:"isArchived"`
	Shifts        []ShiftDTO    `json:"shifts,omitempty"`
	CreatedAt     string        `json:"createdAt"` // ISO 8601
	UpdatedAt     string        `json:"updatedAt"` // ISO 8601
}

// EventLiteDTO is the compact listing shape used by schedule views
type EventLiteDTO struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Status    EventStatus `json:"status"`
	StartDate *string     `json:"startDate,omitempty"`
	EndDate   *string     `json:"endDate,omitempty"`
	TotalCost float64     `json:"totalCost"`
}

type ShiftDTO struct {
	ID                   uuid.UUID                `json:"id"`
	Name                 string                   `json:"name"`
	EventID              uuid.UUID                `json:"eventId"`
	StartDate            *string                  `json:"startDate,omitempty"`
	EndDate              *string                  `json:"endDate,omitempty"`
	TotalShiftHours      float64                  `json:"totalShiftHours"`
	LocationID           *uuid.UUID               `json:"locationId,omitempty"`
	LocationName         string                   `json:"locationName,omitempty"`
	DepartmentID         uuid.UUID                `json:"departmentId"`
	DepartmentName       string                   `json:"departmentName,omitempty"`
	NoOfResources        int                      `json:"noOfResources"`
	NoOfCrewChiefs       int                      `json:"noOfCrewChiefs"`
	Status               ShiftStatus              `json:"status"`
	DistanceRate         float64                  `json:"distanceRate"`
	TravelExpenses       float64                  `json:"travelExpenses"`
	QualificationCharges float64                  `json:"qualificationCharges"`
	EquipmentCharges     float64                  `json:"equipmentCharges"`
	TotalShiftCost       float64                  `json:"totalShiftCost"`
	EquipmentLines       []ShiftEquipmentDTO      `json:"equipmentLines,omitempty"`
	QualificationLines   []ShiftQualificationDTO  `json:"qualificationLines,omitempty"`
	CreatedAt            string                   `json:"createdAt"`
	UpdatedAt            string                   `json:"updatedAt"`
}

type ShiftEquipmentDTO struct {
	ID                   uuid.UUID `json:"id"`
	ShiftID              uuid.UUID `json:"shiftId"`
	EquipmentID          uuid.UUID `json:"equipmentId"`
	EquipmentName        string    `json:"equipmentName,omitempty"`
	Count                int       `json:"count"`
	EquipmentShiftCharge float64   `json:"equipmentShiftCharge"`
	EquipmentCost        float64   `json:"equipmentCost"`
}

type ShiftQualificationDTO struct {
	ID                  uuid.UUID  `json:"id"`
	ShiftID             uuid.UUID  `json:"shiftId"`
	QualificationID     *uuid.UUID `json:"qualificationId,omitempty"`
	QualificationName   string     `json:"qualificationName,omitempty"`
	ChargeRate          float64    `json:"chargeRate"`
	AddChiefChargeRate  float64    `json:"addChiefChargeRate"`
	TotalAddChiefCharge float64    `json:"totalAddChiefCharge"`
	NoOfResources       int        `json:"noOfResources"`
	QualificationCost   float64    `json:"qualificationCost"`
}

type ClientDTO struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"companyName"`
	ContactName  string    `json:"contactName,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
}

type QuickQuoteDTO struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	EventDetails string    `json:"eventDetails,omitempty"`
	CreatedAt    string    `json:"createdAt"`
}

type SupplierSettingDTO struct {
	ID        uuid.UUID `json:"id"`
	RatePerKm float64   `json:"ratePerKm"`
	UpdatedAt string    `json:"updatedAt"`
}

// TravelExpenseDTO is the priced breakdown returned alongside a shift
type TravelExpenseDTO struct {
	DistanceKm float64 `json:"distanceKm"`
	RatePerKm  float64 `json:"ratePerKm"`
	Cost       float64 `json:"cost"`
}

// Requests

type CreateEventRequest struct {
	Name          string       `json:"name" validate:"required,max=255"`
	EventTypeID   *uuid.UUID   `json:"eventTypeId,omitempty"`
	ClientID      uuid.UUID    `json:"clientId" validate:"required"`
	Status        EventStatus  `json:"status,omitempty"`
	StartDate     *string      `json:"startDate,omitempty"`
	EndDate       *string      `json:"endDate,omitempty"`
	LocationIDs   []uuid.UUID  `json:"locationIds,omitempty"`
	Discount      float64      `json:"discount" validate:"gte=0"`
	TaxPercentage float64      `json:"taxPercentage" validate:"gte=0,lte=100"`
	Comments      string       `json:"comments,omitempty"`
	PONumber      string       `json:"poNumber,omitempty" validate:"max=255"`
	RefNumber     string       `json:"refNumber,omitempty" validate:"max=255"`
}

type UpdateEventRequest struct {
	Name          string      `json:"name" validate:"required,max=255"`
	EventTypeID   *uuid.UUID  `json:"eventTypeId,omitempty"`
	StartDate     *string     `json:"startDate,omitempty"`
	EndDate       *string     `json:"endDate,omitempty"`
	LocationIDs   []uuid.UUID `json:"locationIds,omitempty"`
	Discount      float64     `json:"discount" validate:"gte=0"`
	TaxPercentage float64     `json:"taxPercentage" validate:"gte=0,lte=100"`
	Comments      string      `json:"comments,omitempty"`
	PONumber      string      `json:"poNumber,omitempty" validate:"max=255"`
	RefNumber     string      `json:"refNumber,omitempty" validate:"max=255"`
	IsArchived    *bool       `json:"isArchived,omitempty"`
}

type ChangeEventStatusRequest struct {
	Status EventStatus `json:"status" validate:"required"`
}

// ShiftLineInput references a catalog item with a count, used when creating
// or updating a shift with its requirement lines in one request
type ShiftLineInput struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Count int       `json:"count" validate:"gte=0"`
}

type CreateShiftRequest struct {
	Name           string           `json:"name" validate:"required,max=255"`
	EventID        uuid.UUID        `json:"eventId" validate:"required"`
	StartDate      *string          `json:"startDate,omitempty"`
	EndDate        *string          `json:"endDate,omitempty"`
	LocationID     *uuid.UUID       `json:"locationId,omitempty"`
	DepartmentID   uuid.UUID        `json:"departmentId" validate:"required"`
	NoOfResources  int              `json:"noOfResources" validate:"gte=1"`
	NoOfCrewChiefs int              `json:"noOfCrewChiefs" validate:"gte=0"`
	Status         ShiftStatus      `json:"status,omitempty"`
	DistanceRate   float64          `json:"distanceRate" validate:"gte=0"`
	Equipment      []ShiftLineInput `json:"equipment,omitempty"`
	Qualifications []ShiftLineInput `json:"qualifications,omitempty"`
}

type UpdateShiftRequest struct {
	Name           string           `json:"name" validate:"required,max=255"`
	StartDate      *string          `json:"startDate,omitempty"`
	EndDate        *string          `json:"endDate,omitempty"`
	LocationID     *uuid.UUID       `json:"locationId,omitempty"`
	DepartmentID   uuid.UUID        `json:"departmentId" validate:"required"`
	NoOfResources  int              `json:"noOfResources" validate:"gte=1"`
	NoOfCrewChiefs int              `json:"noOfCrewChiefs" validate:"gte=0"`
	Status         ShiftStatus      `json:"status,omitempty"`
	DistanceRate   float64          `json:"distanceRate" validate:"gte=0"`
	Equipment      []ShiftLineInput `json:"equipment,omitempty"`
	Qualifications []ShiftLineInput `json:"qualifications,omitempty"`
}

type CreateShiftEquipmentRequest struct {
	EquipmentID          uuid.UUID `json:"equipmentId" validate:"required"`
	Count                int       `json:"count" validate:"gte=1"`
	EquipmentShiftCharge float64   `json:"equipmentShiftCharge" validate:"gte=0"`
}

type UpdateShiftEquipmentRequest struct {
	Count                int     `json:"count" validate:"gte=1"`
	EquipmentShiftCharge float64 `json:"equipmentShiftCharge" validate:"gte=0"`
}

type CreateShiftQualificationRequest struct {
	QualificationID    uuid.UUID `json:"qualificationId" validate:"required"`
	NoOfResources      int       `json:"noOfResources" validate:"gte=0"`
	ChargeRate         float64   `json:"chargeRate" validate:"gte=0"`
	AddChiefChargeRate float64   `json:"addChiefChargeRate" validate:"gte=0"`
}

type UpdateShiftQualificationRequest struct {
	NoOfResources      int     `json:"noOfResources" validate:"gte=0"`
	ChargeRate         float64 `json:"chargeRate" validate:"gte=0"`
	AddChiefChargeRate float64 `json:"addChiefChargeRate" validate:"gte=0"`
}

// BulkShiftStatusRequest selects shifts under an event either by explicit id
// list or by their current status, and moves them to NewStatus.
type BulkShiftStatusRequest struct {
	EventID       uuid.UUID    `json:"eventId" validate:"required"`
	ShiftIDs      []uuid.UUID  `json:"shiftIds,omitempty"`
	CurrentStatus *ShiftStatus `json:"currentStatus,omitempty"`
	NewStatus     ShiftStatus  `json:"newStatus" validate:"required"`
}

// BulkShiftStatusResponse reports the outcome of a bulk status change
type BulkShiftStatusResponse struct {
	UpdatedShifts int         `json:"updatedShifts"`
	EventStatus   EventStatus `json:"eventStatus"`
}

type CreateQuickQuoteRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=255"`
	LastName     string `json:"lastName" validate:"required,max=255"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"required,max=30"`
	EventDetails string `json:"eventDetails,omitempty"`
}

type UpdateSupplierSettingRequest struct {
	RatePerKm float64 `json:"ratePerKm" validate:"gte=0"`
}
