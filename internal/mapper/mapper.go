package mapper

import (
	"time"

	"github.com/crewstack/staffing-api/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timeLayout)
	return &s
}

// ToLocationDTO converts Location to LocationDTO
func ToLocationDTO(loc *domain.Location) domain.LocationDTO {
	return domain.LocationDTO{
		ID:   loc.ID,
		Name: loc.Name,
		Lat:  loc.Lat,
		Lng:  loc.Lng,
	}
}

// ToEventTypeDTO converts EventType to EventTypeDTO
func ToEventTypeDTO(et *domain.EventType) domain.EventTypeDTO {
	return domain.EventTypeDTO{
		ID:          et.ID,
		Name:        et.Name,
		Description: et.Description,
	}
}

// ToClientDTO converts Client to ClientDTO
func ToClientDTO(client *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		ID:           client.ID,
		CompanyName:  client.CompanyName,
		ContactName:  client.ContactName,
		ContactEmail: client.ContactEmail,
		ContactPhone: client.ContactPhone,
	}
}

// ToEventDTO converts Event to EventDTO, including shifts when loaded
func ToEventDTO(event *domain.Event) domain.EventDTO {
	dto := domain.EventDTO{
		ID:            event.ID,
		Name:          event.Name,
		EventTypeID:   event.EventTypeID,
		Status:        event.Status,
		ClientID:      event.ClientID,
		StartDate:     formatTimePtr(event.StartDate),
		EndDate:       formatTimePtr(event.EndDate),
		SubTotal:      event.SubTotal,
		TotalCost:     event.TotalCost,
		Discount:      event.Discount,
		TaxPercentage: event.TaxPercentage,
		Comments:      event.Comments,
		PONumber:      event.PONumber,
		RefNumber:     event.RefNumber,
		IsArchived:    event.IsArchived,
		CreatedAt:     event.CreatedAt.Format(timeLayout),
		UpdatedAt:     event.UpdatedAt.Format(timeLayout),
	}
	if event.EventType != nil {
		dto.EventTypeName = event.EventType.Name
	}
	if event.Client != nil {
		dto.ClientName = event.Client.CompanyName
	}
	for i := range event.Locations {
		dto.Locations = append(dto.Locations, ToLocationDTO(&event.Locations[i]))
	}
	for i := range event.Shifts {
		dto.Shifts = append(dto.Shifts, ToShiftDTO(&event.Shifts[i]))
	}
	return dto
}

// ToEventLiteDTO converts Event to the compact listing shape
func ToEventLiteDTO(event *domain.Event) domain.EventLiteDTO {
	return domain.EventLiteDTO{
		ID:        event.ID,
		Name:      event.Name,
		Status:    event.Status,
		StartDate: formatTimePtr(event.StartDate),
		EndDate:   formatTimePtr(event.EndDate),
		TotalCost: event.TotalCost,
	}
}

// ToShiftDTO converts Shift to ShiftDTO, including lines when loaded
func ToShiftDTO(shift *domain.Shift) domain.ShiftDTO {
	dto := domain.ShiftDTO{
		ID:                   shift.ID,
		Name:                 shift.Name,
		EventID:              shift.EventID,
		StartDate:            formatTimePtr(shift.StartDate),
		EndDate:              formatTimePtr(shift.EndDate),
		TotalShiftHours:      shift.TotalShiftHours,
		LocationID:           shift.LocationID,
		DepartmentID:         shift.DepartmentID,
		NoOfResources:        shift.NoOfResources,
		NoOfCrewChiefs:       shift.NoOfCrewChiefs,
		Status:               shift.Status,
		DistanceRate:         shift.DistanceRate,
		TravelExpenses:       shift.TravelExpenses,
		QualificationCharges: shift.QualificationCharges,
		EquipmentCharges:     shift.EquipmentCharges,
		TotalShiftCost:       shift.TotalShiftCost,
		CreatedAt:            shift.CreatedAt.Format(timeLayout),
		UpdatedAt:            shift.UpdatedAt.Format(timeLayout),
	}
	if shift.Location != nil {
		dto.LocationName = shift.Location.Name
	}
	if shift.Department != nil {
		dto.DepartmentName = shift.Department.Name
	}
	for i := range shift.EquipmentLines {
		dto.EquipmentLines = append(dto.EquipmentLines, ToShiftEquipmentDTO(&shift.EquipmentLines[i]))
	}
	for i := range shift.QualificationLines {
		dto.QualificationLines = append(dto.QualificationLines, ToShiftQualificationDTO(&shift.QualificationLines[i]))
	}
	return dto
}

// ToShiftEquipmentDTO converts ShiftEquipment to ShiftEquipmentDTO
func ToShiftEquipmentDTO(line *domain.ShiftEquipment) domain.ShiftEquipmentDTO {
	dto := domain.ShiftEquipmentDTO{
		ID:                   line.ID,
		ShiftID:              line.ShiftID,
		EquipmentID:          line.EquipmentID,
		Count:                line.Count,
		EquipmentShiftCharge: line.EquipmentShiftCharge,
		EquipmentCost:        line.EquipmentCost,
	}
	if line.Equipment != nil {
		dto.EquipmentName = line.Equipment.Name
	}
	return dto
}

// ToShiftQualificationDTO converts ShiftQualification to ShiftQualificationDTO
func ToShiftQualificationDTO(line *domain.ShiftQualification) domain.ShiftQualificationDTO {
	dto := domain.ShiftQualificationDTO{
		ID:                  line.ID,
		ShiftID:             line.ShiftID,
		QualificationID:     line.QualificationID,
		ChargeRate:          line.ChargeRate,
		AddChiefChargeRate:  line.AddChiefChargeRate,
		TotalAddChiefCharge: line.TotalAddChiefCharge,
		NoOfResources:       line.NoOfResources,
		QualificationCost:   line.QualificationCost,
	}
	if line.Qualification != nil {
		dto.QualificationName = line.Qualification.Name
	}
	return dto
}

// ToQuickQuoteDTO converts QuickQuote to QuickQuoteDTO
func ToQuickQuoteDTO(quote *domain.QuickQuote) domain.QuickQuoteDTO {
	return domain.QuickQuoteDTO{
		ID:           quote.ID,
		FirstName:    quote.FirstName,
		LastName:     quote.LastName,
		Email:        quote.Email,
		Phone:        quote.Phone,
		EventDetails: quote.EventDetails,
		CreatedAt:    quote.CreatedAt.Format(timeLayout),
	}
}

// ToSupplierSettingDTO converts SupplierSetting to SupplierSettingDTO
func ToSupplierSettingDTO(setting *domain.SupplierSetting) domain.SupplierSettingDTO {
	return domain.SupplierSettingDTO{
		ID:        setting.ID,
		RatePerKm: setting.RatePerKm,
		UpdatedAt: setting.UpdatedAt.Format(timeLayout),
	}
}
