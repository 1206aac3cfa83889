package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-triage-service/internal/adapters"
	"clinic-triage-service/internal/api/handlers"
	"clinic-triage-service/internal/config"
	"clinic-triage-service/internal/domain/repositories"
	"clinic-triage-service/internal/services"
	"clinic-triage-service/internal/triage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stdout })).With().Timestamp().Caller().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	log = log.Level(level)

	if cfg.Triage.APIKey == "" {
		log.Warn().Msg("TRIAGE_API_KEY is not set, symptom analyses will return the fallback message")
	}

	patients := repositories.NewInMemoryPatientRepository()
	consultations := repositories.NewInMemoryConsultationRepository()
	analyses := repositories.NewInMemorySymptomAnalysisRepository()

	records := services.NewRecordService(patients, consultations, analyses, log)
	analytics := services.NewAnalyticsService(patients, consultations, analyses, log)
	triageClient := triage.NewClient(triage.Config(cfg.Triage), log)
	triageService := services.NewTriageService(triageClient, records, log)

	queue := adapters.NewInMemoryQueueAdapter(log)
	transfer := services.NewTransferService(records, queue, log)
	if err := transfer.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start transfer service")
	}

	app := fiber.New(fiber.Config{
		AppName:               "clinic-triage-service",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	handlers.RegisterPatientRoutes(app, handlers.NewPatientHandler(records, log))
	// the analysis itself is bounded by the client timeout; leave room for the store
	handlers.RegisterTriageRoutes(app, handlers.NewTriageHandler(triageService, cfg.Triage.Timeout+5*time.Second, log))
	handlers.RegisterAnalyticsRoutes(app, handlers.NewAnalyticsHandler(analytics, cfg.TrendWindowDays, log))
	handlers.RegisterTransferRoutes(app, handlers.NewTransferHandler(transfer, log))

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("Starting server")
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	if err := transfer.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to stop transfer service")
	}
	if err := queue.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close queue adapter")
	}
	log.Info().Msg("Server stopped")
}
