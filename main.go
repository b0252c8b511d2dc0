package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/explorai/explorai-api/app/observability/metrics"
	"github.com/explorai/explorai-api/app/tracer"
	"github.com/explorai/explorai-api/config"
	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/api/chat"
	generativeAI "github.com/explorai/explorai-api/internal/api/generative_ai"
	"github.com/explorai/explorai-api/internal/api/itinerary"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/api/recommendation"
	"github.com/explorai/explorai-api/internal/router"

	appMiddleware "github.com/explorai/explorai-api/app/middleware"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracer.InitTracingAndMetrics(cfg.Metrics.Port)
	metrics.InitAppMetrics()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	catalogRepo := catalog.NewInMemoryRepository()
	sessionStore := preferences.NewCacheStore(cfg.Session.TTL, cfg.Session.CleanupInterval, logger)

	// A missing or broken Gemini setup keeps the rest of the service up;
	// chat and generated content run in fallback mode.
	var generator chat.Generator
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.Model)
	if err != nil {
		logger.Warn("Generative AI unavailable, chat runs in fallback mode", slog.Any("error", err))
	} else {
		generator = aiClient
	}

	recommendationService := recommendation.NewService(catalogRepo, logger, rand.New(rand.NewSource(time.Now().UnixNano())))
	chatService := chat.NewService(generator, catalogRepo, logger,
		cfg.Gemini.Temperature, cfg.Gemini.MaxTokens, cfg.Gemini.CallTimeout)
	itineraryService := itinerary.NewService(generator, catalogRepo, logger,
		cfg.Gemini.Temperature, cfg.Gemini.MaxTokens, cfg.Gemini.CallTimeout)

	resolve := preferences.SessionResolver(appMiddleware.SessionFromContext)

	mux := router.New(router.Config{
		CatalogHandler:        catalog.NewHandler(catalogRepo, logger),
		PreferencesHandler:    preferences.NewHandler(resolve, recommendationService, cfg.Recommendation.TopN, logger),
		RecommendationHandler: recommendation.NewHandler(recommendationService, resolve, cfg.Recommendation.TopN, logger),
		ChatHandler:           chat.NewHandler(chatService, resolve, logger),
		ItineraryHandler:      itinerary.NewHandler(itineraryService, resolve, logger),
		SessionStore:          sessionStore,
		Logger:                logger,
		Timeout:               cfg.Server.Timeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      mux,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Server.HTTPPort), slog.String("mode", cfg.Mode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func setupLogger(mode string) *slog.Logger {
	var handler slog.Handler
	switch mode {
	case "production":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.New(handler)
}
