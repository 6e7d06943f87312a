package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/crewstack/staffing-api/internal/database"
	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/http/handler"
	"github.com/crewstack/staffing-api/internal/repository"
	"github.com/crewstack/staffing-api/internal/service"
)

// testAPI wires the event handler over an in-memory database and mounts it
// on the same route shapes as the production router
type testAPI struct {
	db     *gorm.DB
	router chi.Router
	client *domain.Client
	dep    *domain.CrewDepartment
}

func setupTestAPI(t *testing.T) *testAPI {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	logger := zap.NewNop()
	eventService := service.NewEventService(
		db,
		repository.NewEventRepository(db),
		repository.NewShiftRepository(db),
		repository.NewClientRepository(db),
		repository.NewEventTypeRepository(db),
		repository.NewLocationRepository(db),
		logger,
	)
	h := handler.NewEventHandler(eventService, logger)

	r := chi.NewRouter()
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
			r.Put("/status", h.ChangeStatus)
			r.Post("/status/reconcile", h.ReconcileStatus)
			r.Put("/shifts/status", h.BulkChangeShiftStatus)
		})
	})

	client := &domain.Client{CompanyName: "Acme Events"}
	require.NoError(t, db.Create(client).Error)
	loc := &domain.Location{Name: "Base"}
	require.NoError(t, db.Create(loc).Error)
	dep := &domain.CrewDepartment{Name: "Crew", LocationID: loc.ID}
	require.NoError(t, db.Create(dep).Error)

	return &testAPI{db: db, router: r, client: client, dep: dep}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) domain.APIError {
	var apiErr domain.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestEventHandler_CreateAndGet(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodPost, "/events", domain.CreateEventRequest{
		Name:          "Summer Festival",
		ClientID:      api.client.ID,
		Discount:      100,
		TaxPercentage: 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.EventDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Summer Festival", created.Name)
	assert.Equal(t, domain.EventStatusEstimation, created.Status)

	rec = api.do(t, http.MethodGet, "/events/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.EventDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.InDelta(t, -100, got.TotalCost, 1e-9)
}

func TestEventHandler_Create_ValidationError(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodPost, "/events", domain.CreateEventRequest{
		ClientID: api.client.ID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "name")
}

func TestEventHandler_Get_NotFound(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/events/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ErrorTypeNotFound, decodeAPIError(t, rec).Type)
}

func TestEventHandler_Get_InvalidID(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/events/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.ErrorTypeBadRequest, decodeAPIError(t, rec).Type)
}

func TestEventHandler_ChangeStatus_InvalidStatus(t *testing.T) {
	api := setupTestAPI(t)

	event := &domain.Event{Name: "Event", Status: domain.EventStatusEstimation, ClientID: api.client.ID}
	require.NoError(t, api.db.Create(event).Error)

	rec := api.do(t, http.MethodPut, fmt.Sprintf("/events/%s/status", event.ID), domain.ChangeEventStatusRequest{
		Status: domain.EventStatus("archived"),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_BulkChangeShiftStatus(t *testing.T) {
	api := setupTestAPI(t)

	event := &domain.Event{Name: "Event", Status: domain.EventStatusEstimation, ClientID: api.client.ID}
	require.NoError(t, api.db.Create(event).Error)
	shift := &domain.Shift{
		Name: "Shift", EventID: event.ID, DepartmentID: api.dep.ID,
		NoOfResources: 1, Status: domain.ShiftStatusEstimation,
	}
	require.NoError(t, api.db.Create(shift).Error)

	rec := api.do(t, http.MethodPut, fmt.Sprintf("/events/%s/shifts/status", event.ID), domain.BulkShiftStatusRequest{
		ShiftIDs:  []uuid.UUID{shift.ID},
		NewStatus: domain.ShiftStatusConfirmation,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.BulkShiftStatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.UpdatedShifts)
	assert.Equal(t, domain.EventStatusConfirmation, resp.EventStatus)
}

func TestEventHandler_BulkChangeShiftStatus_ForeignShiftConflicts(t *testing.T) {
	api := setupTestAPI(t)

	event := &domain.Event{Name: "Event", Status: domain.EventStatusEstimation, ClientID: api.client.ID}
	require.NoError(t, api.db.Create(event).Error)

	rec := api.do(t, http.MethodPut, fmt.Sprintf("/events/%s/shifts/status", event.ID), domain.BulkShiftStatusRequest{
		ShiftIDs:  []uuid.UUID{uuid.New()},
		NewStatus: domain.ShiftStatusConfirmation,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.ErrorTypeConflict, decodeAPIError(t, rec).Type)
}

func TestEventHandler_ReconcileStatus(t *testing.T) {
	api := setupTestAPI(t)

	event := &domain.Event{Name: "Event", Status: domain.EventStatusEstimation, ClientID: api.client.ID}
	require.NoError(t, api.db.Create(event).Error)
	shift := &domain.Shift{
		Name: "Shift", EventID: event.ID, DepartmentID: api.dep.ID,
		NoOfResources: 1, Status: domain.ShiftStatusOngoing,
	}
	require.NoError(t, api.db.Create(shift).Error)

	rec := api.do(t, http.MethodPost, fmt.Sprintf("/events/%s/status/reconcile", event.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, string(domain.EventStatusOngoing), resp["status"])
}

func TestEventHandler_Delete(t *testing.T) {
	api := setupTestAPI(t)

	event := &domain.Event{Name: "Event", Status: domain.EventStatusEstimation, ClientID: api.client.ID}
	require.NoError(t, api.db.Create(event).Error)

	rec := api.do(t, http.MethodDelete, "/events/"+event.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, "/events/"+event.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
