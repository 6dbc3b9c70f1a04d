package service

import (
	"context"

	"course-admin-backend/internal/domains/course/model"
)

// ServiceInterface - business logic cho course
type ServiceInterface interface {
	CreateCourse(ctx context.Context, req model.CourseCreateReq) (*model.CourseRes, error)
	UpdateCourse(ctx context.Context, id int64, req model.CourseUpdateReq) (*model.CourseRes, error)
	SoftDeleteCourse(ctx context.Context, id int64) error
	GetCourse(ctx context.Context, id int64) (*model.CourseRes, error)
	GetCourses(ctx context.Context, req model.CourseSearchReq, query SearchQuery) (*model.CourseSearchRes, error)
}

// SearchQuery - page/page_size/sort lấy từ query string
type SearchQuery struct {
	Page     int
	PageSize int
	Sort     string
}

// TaskEnqueuer - queue.Client thỏa interface này
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload interface{}) error
}
