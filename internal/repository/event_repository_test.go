package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/repository"
)

func TestEventRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	acme := createClient(t, db, "Acme")
	other := createClient(t, db, "Other")
	createEvent(t, db, acme, domain.EventStatusEstimation)
	quoted := createEvent(t, db, acme, domain.EventStatusQuotation)
	createEvent(t, db, other, domain.EventStatusQuotation)

	status := domain.EventStatusQuotation
	events, err := repo.List(ctx, repository.EventListFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = repo.List(ctx, repository.EventListFilter{Status: &status, ClientID: &acme.ID})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, quoted.ID, events[0].ID)

	events, err = repo.List(ctx, repository.EventListFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestEventRepository_ListArchivedFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	live := createEvent(t, db, client, domain.EventStatusEstimation)
	archived := createEvent(t, db, client, domain.EventStatusEstimation)
	require.NoError(t, db.Model(archived).Update("is_archived", true).Error)

	notArchived := false
	events, err := repo.List(ctx, repository.EventListFilter{Archived: &notArchived})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, live.ID, events[0].ID)

	isArchived := true
	events, err = repo.List(ctx, repository.EventListFilter{Archived: &isArchived})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, archived.ID, events[0].ID)
}

func TestEventRepository_ListIDs_SkipsArchived(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	live := createEvent(t, db, client, domain.EventStatusEstimation)
	archived := createEvent(t, db, client, domain.EventStatusEstimation)
	require.NoError(t, db.Model(archived).Update("is_archived", true).Error)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, live.ID, ids[0])
}

func TestEventRepository_CountShiftsAtLocation(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	dep := createDepartment(t, db)
	event := createEvent(t, db, client, domain.EventStatusEstimation)
	venue := &domain.Location{Name: "Venue"}
	require.NoError(t, db.Create(venue).Error)

	shift := createShift(t, db, event, dep, domain.ShiftStatusEstimation, 0)
	require.NoError(t, db.Model(shift).Update("location_id", venue.ID).Error)
	createShift(t, db, event, dep, domain.ShiftStatusEstimation, 0)

	count, err := repo.CountShiftsAtLocation(ctx, event.ID, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountShiftsAtLocation(ctx, event.ID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEventRepository_GetByIDWithShifts_PreloadsLines(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	dep := createDepartment(t, db)
	event := createEvent(t, db, client, domain.EventStatusEstimation)
	shift := createShift(t, db, event, dep, domain.ShiftStatusEstimation, 50)

	equipment := &domain.Equipment{Name: "Truss", ChargeRate: 25}
	require.NoError(t, db.Create(equipment).Error)
	require.NoError(t, db.Create(&domain.ShiftEquipment{
		ShiftID: shift.ID, EquipmentID: equipment.ID, Count: 2, EquipmentCost: 50,
	}).Error)

	got, err := repo.GetByIDWithShifts(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, got.Shifts, 1)
	require.Len(t, got.Shifts[0].EquipmentLines, 1)
	assert.InDelta(t, 50, got.Shifts[0].EquipmentLines[0].EquipmentCost, 1e-9)
}

func TestEventRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewEventRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
