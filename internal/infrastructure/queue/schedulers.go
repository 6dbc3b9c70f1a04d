package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"course-admin-backend/internal/shared"
	"course-admin-backend/pkg/logger"
)

// ReconcileBatchLimit - số course tối đa xử lý trong một lần reconcile
const ReconcileBatchLimit = 500

type Scheduler struct {
	scheduler     *asynq.Scheduler
	reconcileCron string
}

func NewScheduler(redisOpt asynq.RedisClientOpt, reconcileCron string) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:     scheduler,
		reconcileCron: reconcileCron,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerReconcileDeletedCoursesJob()
}

// ================================================
// JOB: Reconcile Deleted Courses (mặc định 3 AM hằng ngày)
// ================================================
// Bắt các cascade task bị mất (enqueue lỗi hoặc hết retry)
func (s *Scheduler) registerReconcileDeletedCoursesJob() error {
	payload, err := json.Marshal(shared.ReconcileDeletedCoursesPayload{Limit: ReconcileBatchLimit})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeReconcileDeletedCourses, payload)

	_, err = s.scheduler.Register(
		s.reconcileCron,
		task,
		asynq.Queue(shared.QueueCourse),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register ReconcileDeletedCourses job", err)
		return err
	}

	logger.Info("✓ Registered ReconcileDeletedCourses", map[string]interface{}{
		"cron": s.reconcileCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	logger.Info("Starting asynq scheduler", map[string]interface{}{})
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
