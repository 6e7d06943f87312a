package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/service"
)

// ShiftHandler handles HTTP requests for shifts
type ShiftHandler struct {
	shiftService *service.ShiftService
	logger       *zap.Logger
}

// NewShiftHandler creates a new ShiftHandler instance
func NewShiftHandler(shiftService *service.ShiftService, logger *zap.Logger) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
		logger:       logger,
	}
}

// ListByEvent returns all shifts under an event
// @Summary List shifts for an event
// @Description Get all shifts belonging to an event, optionally filtered by status
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param status query string false "Filter by shift status"
// @Success 200 {array} domain.ShiftDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events/{id}/shifts [get]
func (h *ShiftHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var status *domain.ShiftStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.ShiftStatus(v)
		status = &s
	}

	shifts, err := h.shiftService.ListByEvent(r.Context(), eventID, status)
	if err != nil {
		respondServiceError(w, h.logger, err, "list shifts")
		return
	}
	respondJSON(w, http.StatusOK, shifts)
}

// Get returns a single shift with its lines
// @Summary Get shift
// @Description Get a shift with its equipment and qualification lines
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} domain.ShiftDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id} [get]
func (h *ShiftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get shift")
		return
	}
	respondJSON(w, http.StatusOK, shift)
}

// TravelExpense returns the priced travel breakdown for a shift
// @Summary Get shift travel expense
// @Description Get the distance, rate and cost of travel between the shift's location and its department's home base
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} domain.TravelExpenseDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id}/travel-expense [get]
func (h *ShiftHandler) TravelExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	expense, err := h.shiftService.TravelBreakdown(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "travel expense")
		return
	}
	respondJSON(w, http.StatusOK, expense)
}

// Create creates a shift under an event
// @Summary Create shift
// @Description Create a shift with its requirement lines; costs roll up into the event
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body domain.CreateShiftRequest true "Shift details"
// @Success 201 {object} domain.ShiftDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts [post]
func (h *ShiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	shift, err := h.shiftService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create shift")
		return
	}
	respondJSON(w, http.StatusCreated, shift)
}

// Update updates a shift
// @Summary Update shift
// @Description Update shift details; hours, travel and line costs are re-derived as needed and roll up into the event
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body domain.UpdateShiftRequest true "Shift details"
// @Success 200 {object} domain.ShiftDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id} [put]
func (h *ShiftHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	var req domain.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	shift, err := h.shiftService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update shift")
		return
	}
	respondJSON(w, http.StatusOK, shift)
}

// Delete removes a shift
// @Summary Delete shift
// @Description Delete a shift and its lines; the event's totals and status are re-derived
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete shift")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
