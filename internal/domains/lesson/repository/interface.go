package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"course-admin-backend/internal/domains/lesson/model"
)

type RepositoryInterface interface {
	// GetLessonByID trả về (nil, nil) khi không tồn tại, caller tự quyết định 404
	GetLessonByID(ctx context.Context, id int64) (*model.Lesson, error)

	// ListByChapterID - lessons của chapter, sắp xếp theo order
	ListByChapterID(ctx context.Context, chapterID int64) ([]model.Lesson, error)

	// SoftDeleteByCourseID chạy trong tx của cascade job
	// Returns: id các lesson vừa bị chuyển sang deleted
	SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error)

	// InvalidateCache xóa cache sau khi tx commit
	InvalidateCache(ctx context.Context, ids ...int64)
}
