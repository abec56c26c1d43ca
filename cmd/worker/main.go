// cmd/worker/main.go
package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"songblog-backend/internal/config"
	"songblog-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.LoadWorker()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load worker config")
	}
	logger.Init(os.Getenv("APP_ENV"))

	// Outbound client dùng chung cho mọi job
	client := &http.Client{Timeout: cfg.HTTPClient.Timeout}

	// Initialize handlers
	handlers := initializeHandlers(client)

	// Perform health checks trước khi nhận task
	if err := checkRedis(cfg); err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Setup scheduler
	scheduler := setupScheduler(cfg)

	// Wait for shutdown signal
	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] Stopped")
}
