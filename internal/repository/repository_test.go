package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/crewstack/staffing-api/internal/database"
	"github.com/crewstack/staffing-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createClient(t *testing.T, db *gorm.DB, name string) *domain.Client {
	client := &domain.Client{CompanyName: name}
	require.NoError(t, db.Create(client).Error)
	return client
}

func createDepartment(t *testing.T, db *gorm.DB) *domain.CrewDepartment {
	loc := &domain.Location{Name: "Base"}
	require.NoError(t, db.Create(loc).Error)
	dep := &domain.CrewDepartment{Name: "Crew", LocationID: loc.ID}
	require.NoError(t, db.Create(dep).Error)
	return dep
}

func createEvent(t *testing.T, db *gorm.DB, client *domain.Client, status domain.EventStatus) *domain.Event {
	event := &domain.Event{Name: "Event", Status: status, ClientID: client.ID}
	require.NoError(t, db.Create(event).Error)
	return event
}

func createShift(t *testing.T, db *gorm.DB, event *domain.Event, dep *domain.CrewDepartment, status domain.ShiftStatus, cost float64) *domain.Shift {
	shift := &domain.Shift{
		Name:           "Shift",
		EventID:        event.ID,
		DepartmentID:   dep.ID,
		NoOfResources:  1,
		Status:         status,
		TotalShiftCost: cost,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift
}
