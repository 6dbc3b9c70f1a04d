package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"course-admin-backend/internal/domains/chapter/model"
)

type RepositoryInterface interface {
	// GetByID - Errors: model.ErrChapterNotFound
	GetByID(ctx context.Context, id int64) (*model.Chapter, error)

	// SoftDeleteByCourseID chạy trong tx của cascade job
	SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error)
}
