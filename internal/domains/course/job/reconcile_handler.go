package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/course/service"
	"course-admin-backend/internal/shared"
)

const defaultReconcileLimit = 500

// ReconcileDeletedHandler - scheduled job, bắt các cascade bị bỏ sót
type ReconcileDeletedHandler struct {
	cascadeService service.CascadeServiceInterface
}

func NewReconcileDeletedHandler(cascadeService service.CascadeServiceInterface) *ReconcileDeletedHandler {
	return &ReconcileDeletedHandler{
		cascadeService: cascadeService,
	}
}

func (h *ReconcileDeletedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	start := time.Now()

	var payload shared.ReconcileDeletedCoursesPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if payload.Limit <= 0 {
		payload.Limit = defaultReconcileLimit
	}

	log.Info().Int("limit", payload.Limit).Msg("Starting deleted course reconciliation")

	processed, err := h.cascadeService.ReconcileDeleted(ctx, payload.Limit)
	if err != nil {
		log.Error().Err(err).Int("processed", processed).Msg("Reconciliation failed")
		return err
	}

	log.Info().
		Int("processed", processed).
		Dur("duration", time.Since(start)).
		Msg("Deleted course reconciliation completed")
	return nil
}
