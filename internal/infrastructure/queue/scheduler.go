package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"songblog-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisOpt asynq.RedisClientOpt) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// ================================================
// JOB: Site keepalive (cron từ KEEPALIVE_CRON)
// ================================================
func (s *Scheduler) RegisterKeepalive(cronspec, baseURL string) error {
	task, err := NewKeepaliveTask(baseURL)
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(cronspec, task)
	if err != nil {
		logger.Error("Failed to register keepalive job", err)
		return err
	}

	logger.Info("Registered keepalive job", map[string]interface{}{
		"entry_id": entryID,
		"cron":     cronspec,
		"url":      baseURL,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
