package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/repository"
)

func TestShiftRepository_SumCostsByEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShiftRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	dep := createDepartment(t, db)
	event := createEvent(t, db, client, domain.EventStatusEstimation)
	createShift(t, db, event, dep, domain.ShiftStatusEstimation, 120.5)
	createShift(t, db, event, dep, domain.ShiftStatusQuotation, 79.5)

	sum, err := repo.SumCostsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.InDelta(t, 200, sum, 1e-9)

	// An event without shifts sums to zero, not an error
	empty := createEvent(t, db, client, domain.EventStatusEstimation)
	sum, err = repo.SumCostsByEvent(ctx, empty.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, sum, 1e-9)
}

func TestShiftRepository_ListStatusesByEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShiftRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	dep := createDepartment(t, db)
	event := createEvent(t, db, client, domain.EventStatusEstimation)
	createShift(t, db, event, dep, domain.ShiftStatusEstimation, 0)
	createShift(t, db, event, dep, domain.ShiftStatusEstimation, 0)
	createShift(t, db, event, dep, domain.ShiftStatusOngoing, 0)

	statuses, err := repo.ListStatusesByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.ShiftStatus{domain.ShiftStatusEstimation, domain.ShiftStatusOngoing}, statuses)
}

func TestShiftRepository_ListByEventAndIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShiftRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	dep := createDepartment(t, db)
	event := createEvent(t, db, client, domain.EventStatusEstimation)
	other := createEvent(t, db, client, domain.EventStatusEstimation)
	mine := createShift(t, db, event, dep, domain.ShiftStatusEstimation, 0)
	foreign := createShift(t, db, other, dep, domain.ShiftStatusEstimation, 0)

	// Shifts of other events never match, even when their id is asked for
	shifts, err := repo.ListByEventAndIDs(ctx, event.ID, []uuid.UUID{mine.ID, foreign.ID})
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, mine.ID, shifts[0].ID)
}

func TestShiftRepository_GetByIDWithLines(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShiftRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Acme")
	dep := createDepartment(t, db)
	event := createEvent(t, db, client, domain.EventStatusEstimation)
	shift := createShift(t, db, event, dep, domain.ShiftStatusEstimation, 0)

	qualification := &domain.Qualification{Name: "Rigger", ChargeRate: 20}
	require.NoError(t, db.Create(qualification).Error)
	qualID := qualification.ID
	require.NoError(t, db.Create(&domain.ShiftQualification{
		ShiftID: shift.ID, QualificationID: &qualID, ChargeRate: 20, NoOfResources: 2,
	}).Error)

	got, err := repo.GetByIDWithLines(ctx, shift.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	assert.Equal(t, dep.Name, got.Department.Name)
	require.Len(t, got.QualificationLines, 1)
	assert.Equal(t, 2, got.QualificationLines[0].NoOfResources)
}
