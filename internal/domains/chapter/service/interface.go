package service

import (
	"context"

	"course-admin-backend/internal/domains/chapter/model"
)

type ServiceInterface interface {
	GetChapter(ctx context.Context, id int64) (*model.ChapterRes, error)
}
