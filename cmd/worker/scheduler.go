package main

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/infrastructure/queue"
)

type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler đăng ký cron reconcile rồi chạy scheduler trong goroutine riêng
func setupScheduler(redisOpt asynq.RedisClientOpt, reconcileCron string) (*asynqScheduler, error) {
	scheduler := queue.NewScheduler(redisOpt, reconcileCron)

	if err := scheduler.RegisterJobs(); err != nil {
		return nil, fmt.Errorf("register scheduled jobs: %w", err)
	}

	go func() {
		log.Info().Str("reconcile_cron", reconcileCron).Msg("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Error().Err(err).Msg("[Scheduler] Stopped with error")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}, nil
}

func (s *asynqScheduler) Shutdown() {
	s.Scheduler.Shutdown()
	log.Info().Msg("[Scheduler] ✓ Stopped")
}
