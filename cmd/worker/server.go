package main

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/shared"
)

type asynqServer struct {
	*asynq.Server
}

// logTaskFailure - ErrorHandler cho mọi task, kể cả lần retry cuối
func logTaskFailure(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	log.Error().
		Err(err).
		Str("type", task.Type()).
		Int("retried", retried).
		Int("max_retry", maxRetry).
		Bool("final", retried >= maxRetry).
		Msg("[Asynq] ❌ Task failed")
}

// setupAsynqServer start server (non-blocking), signal do run() xử lý
func setupAsynqServer(redisOpt asynq.RedisClientOpt, concurrency int, handlers *HandlerRegistry) (*asynqServer, error) {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			shared.QueueCourse: 10,
			"default":          5,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(logTaskFailure),
	})

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asynq server: %w", err)
	}
	log.Info().Int("concurrency", concurrency).Msg("[Worker] Started")

	return &asynqServer{Server: srv}, nil
}

// Shutdown chờ task đang chạy xong (asynq.Config.ShutdownTimeout, mặc định 8s)
func (s *asynqServer) Shutdown() {
	s.Server.Shutdown()
	log.Info().Msg("[Worker] ✓ Gracefully stopped")
}
