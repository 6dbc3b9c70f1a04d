package repository

import (
	"context"

	"course-admin-backend/internal/domains/course/model"
	"course-admin-backend/internal/shared"
)

// =====================================================
// COURSE REPOSITORY INTERFACE
// =====================================================

type RepositoryInterface interface {
	// Create inserts a new course
	// Returns: course với id, created_date, updated_date do DB sinh ra
	Create(ctx context.Context, course *model.Course) (*model.Course, error)

	// GetByID retrieves course by id (read-through cache)
	// Errors: model.ErrCourseNotFound
	GetByID(ctx context.Context, id int64) (*model.Course, error)

	// Update ghi đè toàn bộ field có thể sửa, updated_date = NOW()
	// Errors: model.ErrCourseNotFound
	Update(ctx context.Context, course *model.Course) (*model.Course, error)

	// UpdateStatus chỉ đổi status (soft delete)
	// Errors: model.ErrCourseNotFound
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Search trả về một page + tổng số record match filter (không phụ thuộc page size)
	Search(ctx context.Context, filter model.CourseFilter, page shared.PageRequest) ([]model.Course, int64, error)

	// ListDeletedWithActiveChildren - id các course đã soft delete nhưng vẫn còn
	// chapter/lesson chưa bị xóa (dùng cho reconcile job)
	ListDeletedWithActiveChildren(ctx context.Context, limit int) ([]int64, error)
}
