package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/mapper"
)

func TestToEventDTO(t *testing.T) {
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	event := &domain.Event{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		Name:          "Summer Festival",
		Status:        domain.EventStatusQuotation,
		ClientID:      uuid.New(),
		Client:        &domain.Client{CompanyName: "Acme Events"},
		EventType:     &domain.EventType{Name: "Festival"},
		StartDate:     &start,
		EndDate:       &end,
		SubTotal:      860,
		TotalCost:     846,
		Discount:      100,
		TaxPercentage: 10,
		Locations:     []domain.Location{{Name: "City Arena"}},
		Shifts:        []domain.Shift{{Name: "Load In", TotalShiftCost: 860}},
	}

	dto := mapper.ToEventDTO(event)

	assert.Equal(t, event.ID, dto.ID)
	assert.Equal(t, "Acme Events", dto.ClientName)
	assert.Equal(t, "Festival", dto.EventTypeName)
	require.NotNil(t, dto.StartDate)
	assert.Equal(t, "2026-07-01T10:00:00Z", *dto.StartDate)
	require.Len(t, dto.Locations, 1)
	require.Len(t, dto.Shifts, 1)
	assert.InDelta(t, 860, dto.Shifts[0].TotalShiftCost, 1e-9)
}

func TestToEventDTO_NilOptionalFields(t *testing.T) {
	event := &domain.Event{Name: "Bare", Status: domain.EventStatusEstimation}

	dto := mapper.ToEventDTO(event)

	assert.Nil(t, dto.StartDate)
	assert.Empty(t, dto.ClientName)
	assert.Empty(t, dto.EventTypeName)
	assert.Empty(t, dto.Locations)
	assert.Empty(t, dto.Shifts)
}

func TestToShiftDTO_NormalizesToUTC(t *testing.T) {
	cest := time.FixedZone("CEST", 2*60*60)
	start := time.Date(2026, 7, 1, 12, 0, 0, 0, cest)

	shift := &domain.Shift{
		Name:       "Load In",
		StartDate:  &start,
		Location:   &domain.Location{Name: "City Arena"},
		Department: &domain.CrewDepartment{Name: "Stage Crew"},
	}

	dto := mapper.ToShiftDTO(shift)

	require.NotNil(t, dto.StartDate)
	assert.Equal(t, "2026-07-01T10:00:00Z", *dto.StartDate)
	assert.Equal(t, "City Arena", dto.LocationName)
	assert.Equal(t, "Stage Crew", dto.DepartmentName)
}

func TestToShiftQualificationDTO(t *testing.T) {
	qualID := uuid.New()
	line := &domain.ShiftQualification{
		QualificationID:     &qualID,
		Qualification:       &domain.Qualification{Name: "Rigger"},
		ChargeRate:          20,
		NoOfResources:       3,
		QualificationCost:   480,
		TotalAddChiefCharge: 80,
	}

	dto := mapper.ToShiftQualificationDTO(line)
	assert.Equal(t, "Rigger", dto.QualificationName)
	assert.Equal(t, &qualID, dto.QualificationID)
	assert.InDelta(t, 480, dto.QualificationCost, 1e-9)
}
