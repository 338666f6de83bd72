package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/doodledaron/findcare/backend/internal/adapters/cache"
	"github.com/doodledaron/findcare/backend/internal/adapters/database"
	"github.com/doodledaron/findcare/backend/internal/adapters/events"
	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/adapters/providers/intake"
	"github.com/doodledaron/findcare/backend/internal/adapters/providers/search"
	"github.com/doodledaron/findcare/backend/internal/api/handlers"
	"github.com/doodledaron/findcare/backend/internal/api/routes"
	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/clients/postgres"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/clients/redis"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/observability"
	"github.com/doodledaron/findcare/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize record stores for the configured backend
	var (
		doctorRepo      repositories.DoctorRepository
		hospitalRepo    repositories.HospitalRepository
		appointmentRepo repositories.AppointmentRepository
	)

	switch cfg.Store.Backend {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		log.Info().Msg("PostgreSQL client initialized successfully")

		doctorRepo = database.NewDoctorAdapter(pgClient)
		hospitalRepo = database.NewHospitalAdapter(pgClient)
		appointmentRepo = database.NewAppointmentAdapter(pgClient)
	default:
		log.Info().Msg("Using in-memory record stores with the fixture catalog")

		doctorRepo = memory.NewDoctorAdapter()
		hospitalRepo = memory.NewHospitalAdapter()
		appointmentRepo = memory.NewAppointmentAdapter()
	}

	// Department, symptom and navigation catalogs are static fixture data
	catalogRepo := memory.NewCatalogAdapter()
	navigationRepo := memory.NewNavigationAdapter()

	// Initialize Redis client for caching and queue events
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis client; continuing without cache and events")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("Event bus initialized successfully")
	} else {
		log.Info().Msg("Event bus disabled (Redis not available)")
	}

	// Webhook-backed providers
	searchProvider := search.NewRankingAdapter(cfg.Search.WebhookURL, cfg.Search.TimeoutSeconds)
	if cfg.Search.WebhookURL == "" {
		log.Warn().Msg("HOSPITAL_SEARCH_URL is not set; ranked search will fall back to the static catalog")
	}

	intakeProvider := intake.NewIntakeAdapter(cfg.Intake.WebhookURL, cfg.Intake.TimeoutSeconds)
	if cfg.Intake.WebhookURL == "" {
		log.Warn().Msg("SYMPTOM_INTAKE_URL is not set; intake completion will yield the default assessment")
	}

	// Initialize services
	doctorService := services.NewDoctorService(doctorRepo)
	hospitalService := services.NewHospitalService(hospitalRepo, doctorRepo, searchProvider, cacheProvider)
	queueService := services.NewQueueService(doctorRepo, appointmentRepo, eventBus)
	appointmentService := services.NewAppointmentService(appointmentRepo, doctorRepo, hospitalRepo, queueService)
	checkinService := services.NewCheckinService(navigationRepo)
	assessmentService := services.NewAssessmentService(intakeProvider, cacheProvider, catalogRepo)

	// Initialize handlers
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	hospitalHandler := handlers.NewHospitalHandler(hospitalService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, metrics)
	queueHandler := handlers.NewQueueHandler(queueService)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	navigationHandler := handlers.NewNavigationHandler(checkinService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	// Set up router
	router := routes.NewRouter(
		doctorHandler,
		hospitalHandler,
		appointmentHandler,
		queueHandler,
		catalogHandler,
		navigationHandler,
		assessmentHandler,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing event bus")
		}
	}

	log.Info().Msg("Server stopped")
}
