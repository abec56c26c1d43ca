package main

import (
	"github.com/rs/zerolog/log"

	"songblog-backend/internal/config"
	"songblog-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler with additional functionality
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler creates and configures the scheduler
func setupScheduler(cfg *config.WorkerConfig) *asynqScheduler {
	scheduler := queue.NewScheduler(redisOpt(cfg))

	// Register cron jobs
	if err := scheduler.RegisterKeepalive(cfg.KeepaliveCron, cfg.KeepaliveURL); err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] Failed to register")
	}

	// Start scheduler in goroutine
	go func() {
		log.Info().Msg("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("[Scheduler] Failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler
func (s *asynqScheduler) Shutdown() {
	log.Info().Msg("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Info().Msg("[Scheduler] Stopped")
}
