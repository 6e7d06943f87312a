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

// QuickQuoteHandler handles HTTP requests for quick quote submissions
type QuickQuoteHandler struct {
	quoteService *service.QuickQuoteService
	logger       *zap.Logger
}

// NewQuickQuoteHandler creates a new QuickQuoteHandler instance
func NewQuickQuoteHandler(quoteService *service.QuickQuoteService, logger *zap.Logger) *QuickQuoteHandler {
	return &QuickQuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// Create records an inbound quote request
// @Summary Submit quick quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body domain.CreateQuickQuoteRequest true "Quote request"
// @Success 201 {object} domain.QuickQuoteDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /quick-quotes [post]
func (h *QuickQuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateQuickQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	quote, err := h.quoteService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create quick quote")
		return
	}
	respondJSON(w, http.StatusCreated, quote)
}

// List returns all quote requests
// @Summary List quick quotes
// @Tags quotes
// @Accept json
// @Produce json
// @Success 200 {array} domain.QuickQuoteDTO
// @Failure 500 {object} domain.APIError
// @Router /quick-quotes [get]
func (h *QuickQuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quoteService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list quick quotes")
		return
	}
	respondJSON(w, http.StatusOK, quotes)
}

// Delete removes a quote request
// @Summary Delete quick quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /quick-quotes/{id} [delete]
func (h *QuickQuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	if err := h.quoteService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete quick quote")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
