package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"headshotai/internal/http/handlers"
	"headshotai/internal/http/httpapi"
	"headshotai/internal/imageprep"
	"headshotai/internal/infra"
	"headshotai/internal/providers/genai"
	"headshotai/internal/providers/headshot"
	"headshotai/internal/uploads"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store, err := uploads.NewStore(cfg.UploadDir, cfg.CleanupDelay, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init upload store")
	}

	preparer := &imageprep.Preparer{OutputDir: store.Dir}

	client := genai.NewClient(genai.Options{
		APIKey:  cfg.GoogleAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GeminiTimeout,
		Logger:  logger,
	})
	generator := headshot.NewGeminiGenerator(client, logger)

	app := handlers.NewApp(cfg, logger, store, preparer, generator)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("model", cfg.GeminiModel).
			Str("upload_dir", store.Dir).
			Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
