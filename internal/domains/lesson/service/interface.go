package service

import (
	"context"

	"course-admin-backend/internal/domains/lesson/model"
)

type ServiceInterface interface {
	GetLesson(ctx context.Context, id int64) (*model.LessonRes, error)
}
