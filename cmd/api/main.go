package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/docs"
	"github.com/crewstack/staffing-api/internal/config"
	"github.com/crewstack/staffing-api/internal/database"
	"github.com/crewstack/staffing-api/internal/http/handler"
	"github.com/crewstack/staffing-api/internal/http/middleware"
	"github.com/crewstack/staffing-api/internal/http/router"
	"github.com/crewstack/staffing-api/internal/jobs"
	"github.com/crewstack/staffing-api/internal/logger"
	"github.com/crewstack/staffing-api/internal/queue"
	"github.com/crewstack/staffing-api/internal/repository"
	"github.com/crewstack/staffing-api/internal/service"
)

// @title CrewStack Staffing API
// @version 1.0
// @description Event staffing API for quoting, shift planning and cost tracking

// @contact.name API Support
// @contact.email support@crewstack.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connect to the message broker (optional - shift saves work without it)
	var publisher *queue.Publisher
	if cfg.Queue.Enabled {
		publisher, err = queue.NewPublisher(&cfg.Queue, log)
		if err != nil {
			log.Warn("Message broker connection failed, continuing without crew scheduling dispatch",
				zap.Error(err),
			)
			publisher = nil
		}
	} else {
		log.Info("Message broker not configured, skipping")
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	shiftEquipRepo := repository.NewShiftEquipmentRepository(db)
	shiftQualRepo := repository.NewShiftQualificationRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	qualificationRepo := repository.NewQualificationRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	departmentRepo := repository.NewCrewDepartmentRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	settingRepo := repository.NewSupplierSettingRepository(db)
	quoteRepo := repository.NewQuickQuoteRepository(db)

	// Initialize services
	eventService := service.NewEventService(db, eventRepo, shiftRepo, clientRepo, eventTypeRepo, locationRepo, log)

	var crewPublisher service.CrewSchedulePublisher
	if publisher != nil {
		crewPublisher = publisher
	}
	shiftService := service.NewShiftService(db, shiftRepo, eventRepo, equipmentRepo, qualificationRepo,
		locationRepo, departmentRepo, settingRepo, crewPublisher, log)
	lineService := service.NewShiftLineService(db, shiftRepo, shiftEquipRepo, shiftQualRepo,
		equipmentRepo, qualificationRepo, log)
	quoteService := service.NewQuickQuoteService(quoteRepo, log)
	settingsService := service.NewSettingsService(settingRepo, log)
	catalogService := service.NewCatalogService(equipmentRepo, qualificationRepo, locationRepo,
		departmentRepo, eventTypeRepo, clientRepo)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	eventHandler := handler.NewEventHandler(eventService, log)
	shiftHandler := handler.NewShiftHandler(shiftService, log)
	shiftLineHandler := handler.NewShiftLineHandler(lineService, log)
	quoteHandler := handler.NewQuickQuoteHandler(quoteService, log)
	settingsHandler := handler.NewSettingsHandler(settingsService, log)
	catalogHandler := handler.NewCatalogHandler(catalogService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		eventHandler,
		shiftHandler,
		shiftLineHandler,
		quoteHandler,
		settingsHandler,
		catalogHandler,
	)

	// Initialize and start scheduler for the cost reconciliation job
	var scheduler *jobs.Scheduler
	if cfg.Jobs.RecomputeEnabled {
		scheduler = jobs.NewScheduler(log)
		recomputeJob := jobs.NewRecomputeJob(eventService, log, cfg.Jobs.RecomputeTimeoutDuration())

		if err := scheduler.AddJob(jobs.RecomputeJobName, cfg.Jobs.RecomputeCron, recomputeJob.Run); err != nil {
			log.Error("Failed to register recompute job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with cost reconciliation job",
				zap.String("cron_expr", cfg.Jobs.RecomputeCron),
				zap.Duration("timeout", cfg.Jobs.RecomputeTimeoutDuration()),
			)
			if cfg.Jobs.RunStartupRecompute {
				go recomputeJob.Run()
			}
		}
	} else {
		log.Info("Cost reconciliation job disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if publisher != nil {
			if err := publisher.Close(); err != nil {
				log.Warn("Error closing broker connection", zap.Error(err))
			}
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
