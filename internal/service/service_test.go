package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/crewstack/staffing-api/internal/database"
	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/repository"
	"github.com/crewstack/staffing-api/internal/service"
)

// setupTestDB creates an isolated in-memory database with the full schema.
// The database is named after the test so every pooled connection shares it;
// a plain ":memory:" DSN gives each new connection its own empty database.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// fixtures is the seed data most service tests share: a client, a venue and a
// crew home base 5km apart, and one catalog item of each kind.
type fixtures struct {
	client        *domain.Client
	homeLocation  *domain.Location
	venue         *domain.Location
	department    *domain.CrewDepartment
	equipment     *domain.Equipment
	qualification *domain.Qualification
}

func seedFixtures(t *testing.T, db *gorm.DB) *fixtures {
	f := &fixtures{
		client:       &domain.Client{CompanyName: "Acme Events", ContactEmail: "booking@acme.test"},
		homeLocation: &domain.Location{Name: "Warehouse", Lat: 0, Lng: 0},
		// 0.05 planar units from the warehouse, i.e. 5km at the fixed scale
		venue:         &domain.Location{Name: "City Arena", Lat: 0, Lng: 0.05},
		equipment:     &domain.Equipment{Name: "Forklift", ChargeRate: 50},
		qualification: &domain.Qualification{Name: "Rigger", ChargeRate: 20, ChiefAddlChargeRate: 5},
	}
	require.NoError(t, db.Create(f.client).Error)
	require.NoError(t, db.Create(f.homeLocation).Error)
	require.NoError(t, db.Create(f.venue).Error)
	require.NoError(t, db.Create(f.equipment).Error)
	require.NoError(t, db.Create(f.qualification).Error)

	f.department = &domain.CrewDepartment{Name: "Stage Crew", LocationID: f.homeLocation.ID, Location: f.homeLocation}
	require.NoError(t, db.Omit("Location").Create(f.department).Error)
	return f
}

func createEventService(db *gorm.DB) *service.EventService {
	return service.NewEventService(
		db,
		repository.NewEventRepository(db),
		repository.NewShiftRepository(db),
		repository.NewClientRepository(db),
		repository.NewEventTypeRepository(db),
		repository.NewLocationRepository(db),
		zap.NewNop(),
	)
}

func createShiftService(db *gorm.DB, publisher service.CrewSchedulePublisher) *service.ShiftService {
	return service.NewShiftService(
		db,
		repository.NewShiftRepository(db),
		repository.NewEventRepository(db),
		repository.NewEquipmentRepository(db),
		repository.NewQualificationRepository(db),
		repository.NewLocationRepository(db),
		repository.NewCrewDepartmentRepository(db),
		repository.NewSupplierSettingRepository(db),
		publisher,
		zap.NewNop(),
	)
}

func createShiftLineService(db *gorm.DB) *service.ShiftLineService {
	return service.NewShiftLineService(
		db,
		repository.NewShiftRepository(db),
		repository.NewShiftEquipmentRepository(db),
		repository.NewShiftQualificationRepository(db),
		repository.NewEquipmentRepository(db),
		repository.NewQualificationRepository(db),
		zap.NewNop(),
	)
}

// createTestEvent inserts an event directly, bypassing the service layer
func createTestEvent(t *testing.T, db *gorm.DB, clientID uuid.UUID, status domain.EventStatus, discount, taxPercentage float64) *domain.Event {
	event := &domain.Event{
		Name:          "Test Event",
		Status:        status,
		ClientID:      clientID,
		Discount:      discount,
		TaxPercentage: taxPercentage,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

// createTestShift inserts a shift directly with the given status and cost
func createTestShift(t *testing.T, db *gorm.DB, eventID, departmentID uuid.UUID, status domain.ShiftStatus, totalCost float64) *domain.Shift {
	shift := &domain.Shift{
		Name:           "Test Shift",
		EventID:        eventID,
		DepartmentID:   departmentID,
		NoOfResources:  1,
		Status:         status,
		TotalShiftCost: totalCost,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift
}

func reloadEvent(t *testing.T, db *gorm.DB, id uuid.UUID) *domain.Event {
	var event domain.Event
	require.NoError(t, db.First(&event, "id = ?", id).Error)
	return &event
}

func reloadShift(t *testing.T, db *gorm.DB, id uuid.UUID) *domain.Shift {
	var shift domain.Shift
	require.NoError(t, db.First(&shift, "id = ?", id).Error)
	return &shift
}

// capturingPublisher records published shift ids, or fails every publish when
// err is set
type capturingPublisher struct {
	published []uuid.UUID
	err       error
}

func (p *capturingPublisher) PublishShiftScheduled(_ context.Context, shiftID uuid.UUID) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, shiftID)
	return nil
}
