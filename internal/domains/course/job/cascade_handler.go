package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/course/model"
	"course-admin-backend/internal/domains/course/service"
	"course-admin-backend/internal/shared"
)

// CascadeSoftDeleteHandler xử lý task course:cascade_soft_delete
type CascadeSoftDeleteHandler struct {
	cascadeService service.CascadeServiceInterface
}

func NewCascadeSoftDeleteHandler(cascadeService service.CascadeServiceInterface) *CascadeSoftDeleteHandler {
	return &CascadeSoftDeleteHandler{
		cascadeService: cascadeService,
	}
}

func (h *CascadeSoftDeleteHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.CascadeSoftDeletePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal CascadeSoftDelete payload")
		// Payload hỏng thì retry cũng vô ích
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if payload.CourseID <= 0 {
		return fmt.Errorf("invalid course_id %d: %w", payload.CourseID, asynq.SkipRetry)
	}

	result, err := h.cascadeService.CascadeSoftDelete(ctx, payload.CourseID)
	if err != nil {
		if errors.Is(err, model.ErrCourseNotFound) {
			log.Warn().Int64("course_id", payload.CourseID).Msg("Course not found, skipping cascade")
			return nil
		}
		log.Error().
			Err(err).
			Int64("course_id", payload.CourseID).
			Msg("Failed to cascade soft delete")
		return err
	}

	if result.Skipped {
		log.Info().Int64("course_id", payload.CourseID).Msg("Course is no longer deleted, cascade skipped")
		return nil
	}

	log.Info().
		Int64("course_id", payload.CourseID).
		Int("chapters", result.Chapters).
		Int("lessons", result.Lessons).
		Msg("Course children soft deleted")

	return nil
}
