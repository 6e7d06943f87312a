package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/service"
)

// seedLineFixtures builds an event with one 8-hour shift carrying 2 crew
// chiefs, ready to receive lines
func seedLineFixtures(t *testing.T, db *gorm.DB) (*fixtures, *domain.Event, *domain.Shift) {
	f := seedFixtures(t, db)
	event := createTestEvent(t, db, f.client.ID, domain.EventStatusEstimation, 0, 0)
	shift := &domain.Shift{
		Name:            "Show Day",
		EventID:         event.ID,
		DepartmentID:    f.department.ID,
		TotalShiftHours: 8,
		NoOfResources:   4,
		NoOfCrewChiefs:  2,
		Status:          domain.ShiftStatusEstimation,
	}
	require.NoError(t, db.Create(shift).Error)
	return f, event, shift
}

func TestShiftLineService_AddEquipment_FallsBackToCatalogRate(t *testing.T) {
	db := setupTestDB(t)
	f, event, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)
	ctx := context.Background()

	dto, err := svc.AddEquipment(ctx, shift.ID, &domain.CreateShiftEquipmentRequest{
		EquipmentID: f.equipment.ID,
		Count:       3,
	})
	require.NoError(t, err)

	// Zero charge in the request means the catalog rate applies
	assert.InDelta(t, 50, dto.EquipmentShiftCharge, 1e-9)
	assert.InDelta(t, 150, dto.EquipmentCost, 1e-9)
	assert.Equal(t, "Forklift", dto.EquipmentName)

	// The line rolled up into the shift and onward into the event
	got := reloadShift(t, db, shift.ID)
	assert.InDelta(t, 150, got.EquipmentCharges, 1e-9)
	assert.InDelta(t, 150, got.TotalShiftCost, 1e-9)
	assert.InDelta(t, 150, reloadEvent(t, db, event.ID).SubTotal, 1e-9)
}

func TestShiftLineService_AddEquipment_ExplicitChargeWins(t *testing.T) {
	db := setupTestDB(t)
	f, _, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)

	dto, err := svc.AddEquipment(context.Background(), shift.ID, &domain.CreateShiftEquipmentRequest{
		EquipmentID:          f.equipment.ID,
		Count:                2,
		EquipmentShiftCharge: 75,
	})
	require.NoError(t, err)
	assert.InDelta(t, 75, dto.EquipmentShiftCharge, 1e-9)
	assert.InDelta(t, 150, dto.EquipmentCost, 1e-9)
}

func TestShiftLineService_UpdateEquipment_Reprices(t *testing.T) {
	db := setupTestDB(t)
	f, event, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)
	ctx := context.Background()

	line, err := svc.AddEquipment(ctx, shift.ID, &domain.CreateShiftEquipmentRequest{
		EquipmentID: f.equipment.ID,
		Count:       1,
	})
	require.NoError(t, err)

	dto, err := svc.UpdateEquipment(ctx, line.ID, &domain.UpdateShiftEquipmentRequest{
		Count:                4,
		EquipmentShiftCharge: 60,
	})
	require.NoError(t, err)

	assert.InDelta(t, 240, dto.EquipmentCost, 1e-9)
	assert.InDelta(t, 240, reloadShift(t, db, shift.ID).EquipmentCharges, 1e-9)
	assert.InDelta(t, 240, reloadEvent(t, db, event.ID).SubTotal, 1e-9)
}

func TestShiftLineService_DeleteEquipment_RollsDown(t *testing.T) {
	db := setupTestDB(t)
	f, event, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)
	ctx := context.Background()

	line, err := svc.AddEquipment(ctx, shift.ID, &domain.CreateShiftEquipmentRequest{
		EquipmentID: f.equipment.ID,
		Count:       2,
	})
	require.NoError(t, err)
	require.InDelta(t, 100, reloadEvent(t, db, event.ID).SubTotal, 1e-9)

	require.NoError(t, svc.DeleteEquipment(ctx, line.ID))

	assert.InDelta(t, 0, reloadShift(t, db, shift.ID).EquipmentCharges, 1e-9)
	assert.InDelta(t, 0, reloadEvent(t, db, event.ID).SubTotal, 1e-9)

	assert.ErrorIs(t, svc.DeleteEquipment(ctx, line.ID), service.ErrNotFound)
}

func TestShiftLineService_AddQualification_ChiefSurcharge(t *testing.T) {
	db := setupTestDB(t)
	f, event, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)
	ctx := context.Background()

	dto, err := svc.AddQualification(ctx, shift.ID, &domain.CreateShiftQualificationRequest{
		QualificationID: f.qualification.ID,
		NoOfResources:   3,
	})
	require.NoError(t, err)

	// Rates fall back to the catalog item: 20/h and 5/h extra per chief
	assert.InDelta(t, 20, dto.ChargeRate, 1e-9)
	// 20/h x 8h x 3 heads
	assert.InDelta(t, 480, dto.QualificationCost, 1e-9)
	// 5/h x 8h x 2 chiefs
	assert.InDelta(t, 80, dto.TotalAddChiefCharge, 1e-9)

	got := reloadShift(t, db, shift.ID)
	assert.InDelta(t, 560, got.QualificationCharges, 1e-9)
	assert.InDelta(t, 560, got.TotalShiftCost, 1e-9)
	assert.InDelta(t, 560, reloadEvent(t, db, event.ID).SubTotal, 1e-9)
}

func TestShiftLineService_AddQualification_NoChiefsNoSurcharge(t *testing.T) {
	db := setupTestDB(t)
	f, _, shift := seedLineFixtures(t, db)
	require.NoError(t, db.Model(shift).Update("no_of_crew_chiefs", 0).Error)
	shift.NoOfCrewChiefs = 0
	svc := createShiftLineService(db)

	dto, err := svc.AddQualification(context.Background(), shift.ID, &domain.CreateShiftQualificationRequest{
		QualificationID: f.qualification.ID,
		NoOfResources:   3,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, dto.TotalAddChiefCharge, 1e-9)
}

func TestShiftLineService_UpdateQualification_Reprices(t *testing.T) {
	db := setupTestDB(t)
	f, event, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)
	ctx := context.Background()

	line, err := svc.AddQualification(ctx, shift.ID, &domain.CreateShiftQualificationRequest{
		QualificationID: f.qualification.ID,
		NoOfResources:   3,
	})
	require.NoError(t, err)

	dto, err := svc.UpdateQualification(ctx, line.ID, &domain.UpdateShiftQualificationRequest{
		NoOfResources: 1,
		ChargeRate:    30,
	})
	require.NoError(t, err)

	// 30/h x 8h x 1 head; the chief rate fell back to the catalog again
	assert.InDelta(t, 240, dto.QualificationCost, 1e-9)
	assert.InDelta(t, 80, dto.TotalAddChiefCharge, 1e-9)
	assert.InDelta(t, 320, reloadEvent(t, db, event.ID).SubTotal, 1e-9)
}

func TestShiftLineService_DeleteQualification_RollsDown(t *testing.T) {
	db := setupTestDB(t)
	f, event, shift := seedLineFixtures(t, db)
	svc := createShiftLineService(db)
	ctx := context.Background()

	line, err := svc.AddQualification(ctx, shift.ID, &domain.CreateShiftQualificationRequest{
		QualificationID: f.qualification.ID,
		NoOfResources:   2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQualification(ctx, line.ID))
	assert.InDelta(t, 0, reloadShift(t, db, shift.ID).QualificationCharges, 1e-9)
	assert.InDelta(t, 0, reloadEvent(t, db, event.ID).SubTotal, 1e-9)
}

func TestShiftLineService_AddEquipment_UnknownShift(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	svc := createShiftLineService(db)

	_, err := svc.AddEquipment(context.Background(), uuid.New(), &domain.CreateShiftEquipmentRequest{
		EquipmentID: f.equipment.ID,
		Count:       1,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}
