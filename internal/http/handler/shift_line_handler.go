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

// ShiftLineHandler handles HTTP requests for shift equipment and qualification lines
type ShiftLineHandler struct {
	lineService *service.ShiftLineService
	logger      *zap.Logger
}

// NewShiftLineHandler creates a new ShiftLineHandler instance
func NewShiftLineHandler(lineService *service.ShiftLineService, logger *zap.Logger) *ShiftLineHandler {
	return &ShiftLineHandler{
		lineService: lineService,
		logger:      logger,
	}
}

// ListEquipment returns a shift's equipment lines
// @Summary List shift equipment
// @Tags shifts,equipment
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {array} domain.ShiftEquipmentDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id}/equipment [get]
func (h *ShiftLineHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	shiftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	lines, err := h.lineService.ListEquipment(r.Context(), shiftID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list equipment lines")
		return
	}
	respondJSON(w, http.StatusOK, lines)
}

// AddEquipment attaches an equipment line to a shift
// @Summary Add shift equipment
// @Description Attach a priced equipment line; costs roll up into the shift and event
// @Tags shifts,equipment
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body domain.CreateShiftEquipmentRequest true "Equipment line"
// @Success 201 {object} domain.ShiftEquipmentDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id}/equipment [post]
func (h *ShiftLineHandler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	shiftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	var req domain.CreateShiftEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	line, err := h.lineService.AddEquipment(r.Context(), shiftID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add equipment line")
		return
	}
	respondJSON(w, http.StatusCreated, line)
}

// UpdateEquipment reprices an equipment line
// @Summary Update shift equipment
// @Tags shifts,equipment
// @Accept json
// @Produce json
// @Param lineId path string true "Line ID"
// @Param request body domain.UpdateShiftEquipmentRequest true "Equipment line"
// @Success 200 {object} domain.ShiftEquipmentDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shift-equipment/{lineId} [put]
func (h *ShiftLineHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid line ID")
		return
	}

	var req domain.UpdateShiftEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	line, err := h.lineService.UpdateEquipment(r.Context(), lineID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update equipment line")
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// DeleteEquipment removes an equipment line
// @Summary Delete shift equipment
// @Tags shifts,equipment
// @Accept json
// @Produce json
// @Param lineId path string true "Line ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shift-equipment/{lineId} [delete]
func (h *ShiftLineHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid line ID")
		return
	}

	if err := h.lineService.DeleteEquipment(r.Context(), lineID); err != nil {
		respondServiceError(w, h.logger, err, "delete equipment line")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListQualifications returns a shift's qualification lines
// @Summary List shift qualifications
// @Tags shifts,qualifications
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {array} domain.ShiftQualificationDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id}/qualifications [get]
func (h *ShiftLineHandler) ListQualifications(w http.ResponseWriter, r *http.Request) {
	shiftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	lines, err := h.lineService.ListQualifications(r.Context(), shiftID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list qualification lines")
		return
	}
	respondJSON(w, http.StatusOK, lines)
}

// AddQualification attaches a crew-requirement line to a shift
// @Summary Add shift qualification
// @Description Attach a priced crew-requirement line; costs roll up into the shift and event
// @Tags shifts,qualifications
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body domain.CreateShiftQualificationRequest true "Qualification line"
// @Success 201 {object} domain.ShiftQualificationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shifts/{id}/qualifications [post]
func (h *ShiftLineHandler) AddQualification(w http.ResponseWriter, r *http.Request) {
	shiftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shift ID")
		return
	}

	var req domain.CreateShiftQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	line, err := h.lineService.AddQualification(r.Context(), shiftID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add qualification line")
		return
	}
	respondJSON(w, http.StatusCreated, line)
}

// UpdateQualification reprices a crew-requirement line
// @Summary Update shift qualification
// @Tags shifts,qualifications
// @Accept json
// @Produce json
// @Param lineId path string true "Line ID"
// @Param request body domain.UpdateShiftQualificationRequest true "Qualification line"
// @Success 200 {object} domain.ShiftQualificationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shift-qualifications/{lineId} [put]
func (h *ShiftLineHandler) UpdateQualification(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid line ID")
		return
	}

	var req domain.UpdateShiftQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	line, err := h.lineService.UpdateQualification(r.Context(), lineID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update qualification line")
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// DeleteQualification removes a crew-requirement line
// @Summary Delete shift qualification
// @Tags shifts,qualifications
// @Accept json
// @Produce json
// @Param lineId path string true "Line ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /shift-qualifications/{lineId} [delete]
func (h *ShiftLineHandler) DeleteQualification(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid line ID")
		return
	}

	if err := h.lineService.DeleteQualification(r.Context(), lineID); err != nil {
		respondServiceError(w, h.logger, err, "delete qualification line")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
