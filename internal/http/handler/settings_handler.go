package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/service"
)

// SettingsHandler handles HTTP requests for supplier settings
type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get returns the supplier settings
// @Summary Get supplier settings
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} domain.SupplierSettingDTO
// @Failure 500 {object} domain.APIError
// @Router /settings/supplier [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settingsService.Get(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "get supplier settings")
		return
	}
	respondJSON(w, http.StatusOK, setting)
}

// Update sets the fallback travel rate
// @Summary Update supplier settings
// @Description Set the fallback rate per km used when a shift carries no rate
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateSupplierSettingRequest true "Settings"
// @Success 200 {object} domain.SupplierSettingDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /settings/supplier [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSupplierSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	setting, err := h.settingsService.Update(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update supplier settings")
		return
	}
	respondJSON(w, http.StatusOK, setting)
}
