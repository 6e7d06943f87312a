package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/config"
	"github.com/crewstack/staffing-api/internal/database"
	"github.com/crewstack/staffing-api/internal/http/handler"
	"github.com/crewstack/staffing-api/internal/http/middleware"

	_ "github.com/crewstack/staffing-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg               *config.Config
	logger            *zap.Logger
	db                *gorm.DB
	rateLimiter       *middleware.RateLimiter
	eventHandler      *handler.EventHandler
	shiftHandler      *handler.ShiftHandler
	shiftLineHandler  *handler.ShiftLineHandler
	quickQuoteHandler *handler.QuickQuoteHandler
	settingsHandler   *handler.SettingsHandler
	catalogHandler    *handler.CatalogHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	eventHandler *handler.EventHandler,
	shiftHandler *handler.ShiftHandler,
	shiftLineHandler *handler.ShiftLineHandler,
	quickQuoteHandler *handler.QuickQuoteHandler,
	settingsHandler *handler.SettingsHandler,
	catalogHandler *handler.CatalogHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		db:                db,
		rateLimiter:       rateLimiter,
		eventHandler:      eventHandler,
		shiftHandler:      shiftHandler,
		shiftLineHandler:  shiftLineHandler,
		quickQuoteHandler: quickQuoteHandler,
		settingsHandler:   settingsHandler,
		catalogHandler:    catalogHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Events
		r.Route("/events", func(r chi.Router) {
			r.Get("/", rt.eventHandler.List)
			r.Get("/lite", rt.eventHandler.ListLite)
			r.Post("/", rt.eventHandler.Create)
			r.Get("/{id}", rt.eventHandler.Get)
			r.Put("/{id}", rt.eventHandler.Update)
			r.Delete("/{id}", rt.eventHandler.Delete)

			r.Put("/{id}/status", rt.eventHandler.ChangeStatus)
			r.Post("/{id}/status/reconcile", rt.eventHandler.ReconcileStatus)

			r.Get("/{id}/shifts", rt.shiftHandler.ListByEvent)
			r.Put("/{id}/shifts/status", rt.eventHandler.BulkChangeShiftStatus)
		})

		// Shifts
		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", rt.shiftHandler.Create)
			r.Get("/{id}", rt.shiftHandler.Get)
			r.Put("/{id}", rt.shiftHandler.Update)
			r.Delete("/{id}", rt.shiftHandler.Delete)

			r.Get("/{id}/travel-expense", rt.shiftHandler.TravelExpense)

			r.Get("/{id}/equipment", rt.shiftLineHandler.ListEquipment)
			r.Post("/{id}/equipment", rt.shiftLineHandler.AddEquipment)
			r.Get("/{id}/qualifications", rt.shiftLineHandler.ListQualifications)
			r.Post("/{id}/qualifications", rt.shiftLineHandler.AddQualification)
		})

		// Line items addressed directly
		r.Route("/shift-equipment", func(r chi.Router) {
			r.Put("/{lineId}", rt.shiftLineHandler.UpdateEquipment)
			r.Delete("/{lineId}", rt.shiftLineHandler.DeleteEquipment)
		})
		r.Route("/shift-qualifications", func(r chi.Router) {
			r.Put("/{lineId}", rt.shiftLineHandler.UpdateQualification)
			r.Delete("/{lineId}", rt.shiftLineHandler.DeleteQualification)
		})

		// Quick quotes
		r.Route("/quick-quotes", func(r chi.Router) {
			r.Get("/", rt.quickQuoteHandler.List)
			r.Post("/", rt.quickQuoteHandler.Create)
			r.Delete("/{id}", rt.quickQuoteHandler.Delete)
		})

		// Supplier settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/supplier", rt.settingsHandler.Get)
			r.Put("/supplier", rt.settingsHandler.Update)
		})

		// Reference data
		r.Get("/equipment", rt.catalogHandler.ListEquipment)
		r.Get("/qualifications", rt.catalogHandler.ListQualifications)
		r.Get("/locations", rt.catalogHandler.ListLocations)
		r.Get("/departments", rt.catalogHandler.ListDepartments)
		r.Get("/event-types", rt.catalogHandler.ListEventTypes)
		r.Get("/clients", rt.catalogHandler.ListClients)
	})

	return r
}
