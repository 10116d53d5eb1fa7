package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mavpath/advisor-backend/internal/advisor"
	"github.com/mavpath/advisor-backend/internal/config"
	"github.com/mavpath/advisor-backend/internal/database"
	"github.com/mavpath/advisor-backend/internal/handler"
	"github.com/mavpath/advisor-backend/internal/knowledge"
	"github.com/mavpath/advisor-backend/internal/logger"
	"github.com/mavpath/advisor-backend/internal/repository"
	"github.com/mavpath/advisor-backend/internal/router"
	"github.com/mavpath/advisor-backend/internal/service"
	"github.com/mavpath/advisor-backend/internal/validator"
	"github.com/mavpath/advisor-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting MavPath Advisor Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Load Knowledge Fixtures ───────────────────────────────────────
	store := knowledge.NewStore(cfg.DataDir, log)
	if err := store.Load(); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("Failed to load knowledge fixtures")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	preferenceRepo := repository.NewPreferenceRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	studentService := service.NewStudentService(studentRepo)
	preferenceService := service.NewPreferenceService(preferenceRepo)
	knowledgeService := service.NewKnowledgeService(store, cfg, rdb, log)
	scheduleService := service.NewScheduleService(rdb, log)

	// The remote LLM client is optional. Without an API key every advisor
	// query is answered by the offline planner.
	var advisorClient advisor.Client
	if cfg.AdvisorAPIKey != "" {
		client, err := advisor.NewOpenAIClient(cfg.AdvisorAPIKey, cfg.AdvisorModel, cfg.AdvisorBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize advisor client")
		}
		advisorClient = client
		log.Info().Str("model", cfg.AdvisorModel).Msg("Remote advisor configured")
	} else {
		log.Warn().Msg("No advisor API key set; using offline planner only")
	}
	advisorService := service.NewAdvisorService(advisorClient, knowledgeService, preferenceService, scheduleService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Health:     handler.NewHealthHandler(knowledgeService, advisorService),
		Auth:       handler.NewAuthHandler(authService, studentService),
		Preference: handler.NewPreferenceHandler(preferenceService),
		Advisor:    handler.NewAdvisorHandler(advisorService),
		Schedule:   handler.NewScheduleHandler(scheduleService),
		WS:         handler.NewWSHandler(advisorService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	knowledgeWorker := worker.NewKnowledgeWorker(store, knowledgeService, cfg.KnowledgeRefresh, log)
	go knowledgeWorker.Start(workerCtx)

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Push the compacted prompt payload into Redis BEFORE accepting
	// traffic so the first advisor query does not pay the compaction cost.
	knowledgeService.RefreshCache(ctx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the refresh worker.
	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
