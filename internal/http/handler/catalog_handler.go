package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/service"
)

// CatalogHandler handles HTTP requests for reference data
type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListEquipment returns the equipment catalog
// @Summary List equipment catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Equipment
// @Failure 500 {object} domain.APIError
// @Router /equipment [get]
func (h *CatalogHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListEquipment(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list equipment")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListQualifications returns the qualification catalog
// @Summary List qualification catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Qualification
// @Failure 500 {object} domain.APIError
// @Router /qualifications [get]
func (h *CatalogHandler) ListQualifications(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListQualifications(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list qualifications")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListLocations returns all locations
// @Summary List locations
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.LocationDTO
// @Failure 500 {object} domain.APIError
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListLocations(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list locations")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListDepartments returns all crew departments
// @Summary List crew departments
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.CrewDepartment
// @Failure 500 {object} domain.APIError
// @Router /departments [get]
func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListDepartments(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list departments")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListEventTypes returns all event types
// @Summary List event types
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.EventTypeDTO
// @Failure 500 {object} domain.APIError
// @Router /event-types [get]
func (h *CatalogHandler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListEventTypes(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list event types")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListClients returns all clients
// @Summary List clients
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.ClientDTO
// @Failure 500 {object} domain.APIError
// @Router /clients [get]
func (h *CatalogHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListClients(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list clients")
		return
	}
	respondJSON(w, http.StatusOK, items)
}
