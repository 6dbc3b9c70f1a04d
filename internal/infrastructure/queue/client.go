package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/shared"
)

// Client bọc asynq.Client, API dùng để đẩy background task sang cmd/worker
type Client struct {
	client *asynq.Client
}

func NewClient(redisOpt asynq.RedisClientOpt) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
	}
}

// taskOptions - queue + retry policy theo task type
func taskOptions(taskType string) []asynq.Option {
	switch taskType {
	case shared.TypeCascadeCourseSoftDelete:
		return []asynq.Option{
			asynq.Queue(shared.QueueCourse),
			asynq.MaxRetry(5),
			asynq.Timeout(2 * time.Minute),
		}
	default:
		return []asynq.Option{asynq.Queue(shared.QueueCourse)}
	}
}

// Enqueue marshal payload sang JSON và đẩy task
func (c *Client) Enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), taskOptions(taskType)...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Str("type", taskType).
		Str("queue", info.Queue).
		Msg("Task enqueued")
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
