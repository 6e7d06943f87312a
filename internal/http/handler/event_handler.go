package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/service"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventService *service.EventService
	logger       *zap.Logger
}

// NewEventHandler creates a new EventHandler instance
func NewEventHandler(eventService *service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// List returns events, optionally filtered
// @Summary List events
// @Description Get events, optionally filtered by status, client or archive flag
// @Tags events
// @Accept json
// @Produce json
// @Param status query string false "Event status"
// @Param clientId query string false "Client ID"
// @Param archived query boolean false "Archive flag"
// @Success 200 {array} domain.EventDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	status, clientID, archived, err := parseEventListQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.eventService.List(r.Context(), status, clientID, archived)
	if err != nil {
		respondServiceError(w, h.logger, err, "list events")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// ListLite returns the compact event listing used by schedule views
// @Summary List events (compact)
// @Description Get a compact event listing, optionally filtered by status, client or archive flag
// @Tags events
// @Accept json
// @Produce json
// @Param status query string false "Event status"
// @Param clientId query string false "Client ID"
// @Param archived query boolean false "Archive flag"
// @Success 200 {array} domain.EventLiteDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/lite [get]
func (h *EventHandler) ListLite(w http.ResponseWriter, r *http.Request) {
	status, clientID, archived, err := parseEventListQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.eventService.ListLite(r.Context(), status, clientID, archived)
	if err != nil {
		respondServiceError(w, h.logger, err, "list events")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func parseEventListQuery(r *http.Request) (*domain.EventStatus, *uuid.UUID, *bool, error) {
	var status *domain.EventStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.EventStatus(v)
		status = &s
	}
	var clientID *uuid.UUID
	if v := r.URL.Query().Get("clientId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, nil, nil, errors.New("Invalid client ID")
		}
		clientID = &id
	}
	var archived *bool
	switch r.URL.Query().Get("archived") {
	case "true":
		t := true
		archived = &t
	case "false":
		f := false
		archived = &f
	}
	return status, clientID, archived, nil
}

// Get returns a single event with its shifts
// @Summary Get event
// @Description Get an event with its shifts and cost breakdown
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.EventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.eventService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get event")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// Create creates a new event
// @Summary Create event
// @Description Create a new event for a client
// @Tags events
// @Accept json
// @Produce json
// @Param request body domain.CreateEventRequest true "Event details"
// @Success 201 {object} domain.EventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create event")
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

// Update updates an event
// @Summary Update event
// @Description Update event details; total cost is re-derived from the new discount and tax
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body domain.UpdateEventRequest true "Event details"
// @Success 200 {object} domain.EventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id} [put]
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req domain.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	event, err := h.eventService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update event")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// Delete removes an event with its shifts
// @Summary Delete event
// @Description Delete an event together with its shifts and their lines
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete event")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ChangeStatus sets an event's status and drags along matching shifts
// @Summary Change event status
// @Description Set the event's status; shifts that were tracking the previous status move with it
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body domain.ChangeEventStatusRequest true "New status"
// @Success 200 {object} domain.EventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id}/status [put]
func (h *EventHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req domain.ChangeEventStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	event, err := h.eventService.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, h.logger, err, "change event status")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// ReconcileStatus re-derives an event's status from its shifts
// @Summary Reconcile event status
// @Description Re-derive the event's status from its shifts by precedence
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id}/status/reconcile [post]
func (h *EventHandler) ReconcileStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	status, err := h.eventService.ReconcileStatus(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "reconcile event status")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

// BulkChangeShiftStatus moves a selection of an event's shifts to a new status
// @Summary Bulk change shift status
// @Description Move shifts selected by id list or current status to a new status, then re-derive the event's status
// @Tags events,shifts
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body domain.BulkShiftStatusRequest true "Selection and new status"
// @Success 200 {object} domain.BulkShiftStatusResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id}/shifts/status [put]
func (h *EventHandler) BulkChangeShiftStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req domain.BulkShiftStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.EventID = id
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.eventService.BulkChangeShiftStatus(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "change shift statuses")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
