package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/course/model"
	"course-admin-backend/internal/domains/course/repository"
	"course-admin-backend/internal/shared"
)

// sortableColumns - field API → column, dùng cho ORDER BY whitelist
var sortableColumns = map[string]string{
	"id":           "id",
	"name":         "name",
	"status":       "status",
	"teacher":      "teacher",
	"created_date": "created_date",
	"updated_date": "updated_date",
}

const defaultSort = "created_date"

// CourseService - Implements ServiceInterface
type CourseService struct {
	repo     repository.RepositoryInterface
	enqueuer TaskEnqueuer
	limits   shared.PageLimits
}

// NewCourseService - enqueuer có thể nil (không cascade async, reconcile job sẽ xử lý)
func NewCourseService(repo repository.RepositoryInterface, enqueuer TaskEnqueuer, limits shared.PageLimits) ServiceInterface {
	return &CourseService{
		repo:     repo,
		enqueuer: enqueuer,
		limits:   limits,
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, req model.CourseCreateReq) (*model.CourseRes, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("course_id", created.ID).Str("status", created.Status).Msg("Course created")
	return created.ToResponse(), nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req model.CourseUpdateReq) (*model.CourseRes, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	// 1. Load current state (404 nếu không tồn tại)
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Merge field được gửi lên
	req.ApplyTo(existing)

	// 3. Persist
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

// SoftDeleteCourse chuyển status sang deleted, chapters/lessons được cascade
// bởi worker. Gọi lại trên course đã xóa là no-op.
func (s *CourseService) SoftDeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidID
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsDeleted() {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, shared.StatusDeleted); err != nil {
		return err
	}

	log.Info().Int64("course_id", id).Msg("Course soft deleted")

	if s.enqueuer == nil {
		return nil
	}
	// Enqueue lỗi không làm fail request: reconcile job sẽ cascade sau
	payload := shared.CascadeSoftDeletePayload{CourseID: id}
	if err := s.enqueuer.Enqueue(ctx, shared.TypeCascadeCourseSoftDelete, payload); err != nil {
		log.Error().Err(err).Int64("course_id", id).Msg("Failed to enqueue cascade soft delete")
	}

	return nil
}

func (s *CourseService) GetCourse(ctx context.Context, id int64) (*model.CourseRes, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.ToResponse(), nil
}

func (s *CourseService) GetCourses(ctx context.Context, req model.CourseSearchReq, query SearchQuery) (*model.CourseSearchRes, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	page, err := shared.NewPageRequest(
		query.Page,
		query.PageSize,
		query.Sort,
		sortableColumns,
		defaultSort,
		s.limits.DefaultSize,
		s.limits.MaxSize,
	)
	if err != nil {
		return nil, err
	}

	courses, total, err := s.repo.Search(ctx, req.ToFilter(), page)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}

	items := make([]model.CourseRes, 0, len(courses))
	for i := range courses {
		items = append(items, *courses[i].ToResponse())
	}

	return &model.CourseSearchRes{
		Courses:       items,
		Page:          page.Page,
		PageSize:      page.PageSize,
		TotalElements: total,
		TotalPages:    shared.TotalPages(total, page.PageSize),
	}, nil
}
