package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/course/repository"
	"course-admin-backend/pkg/database"
)

// ChildSoftDeleter - chapter và lesson repository đều thỏa interface này
type ChildSoftDeleter interface {
	SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error)
}

// LessonCascader - lesson repository còn phải xóa cache sau khi commit
type LessonCascader interface {
	ChildSoftDeleter
	InvalidateCache(ctx context.Context, ids ...int64)
}

// CascadeResult - số chapter/lesson vừa bị soft delete
type CascadeResult struct {
	CourseID int64
	Chapters int
	Lessons  int
	Skipped  bool // course đã được khôi phục trước khi job chạy
}

// CascadeServiceInterface - dùng bởi worker job
type CascadeServiceInterface interface {
	CascadeSoftDelete(ctx context.Context, courseID int64) (*CascadeResult, error)
	ReconcileDeleted(ctx context.Context, limit int) (int, error)
}

type CascadeService struct {
	db         database.TxBeginner
	courseRepo repository.RepositoryInterface
	chapters   ChildSoftDeleter
	lessons    LessonCascader
}

func NewCascadeService(
	db database.TxBeginner,
	courseRepo repository.RepositoryInterface,
	chapters ChildSoftDeleter,
	lessons LessonCascader,
) CascadeServiceInterface {
	return &CascadeService{
		db:         db,
		courseRepo: courseRepo,
		chapters:   chapters,
		lessons:    lessons,
	}
}

// CascadeSoftDelete soft delete toàn bộ chapters + lessons của course trong một tx.
// Không làm gì nếu course không còn ở trạng thái deleted.
func (s *CascadeService) CascadeSoftDelete(ctx context.Context, courseID int64) (*CascadeResult, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	result := &CascadeResult{CourseID: courseID}
	if !course.IsDeleted() {
		result.Skipped = true
		return result, nil
	}

	var lessonIDs []int64
	err = database.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		ids, err := s.lessons.SoftDeleteByCourseID(ctx, tx, courseID)
		if err != nil {
			return err
		}
		lessonIDs = ids

		chapterIDs, err := s.chapters.SoftDeleteByCourseID(ctx, tx, courseID)
		if err != nil {
			return err
		}
		result.Chapters = len(chapterIDs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cascade soft delete course %d: %w", courseID, err)
	}

	s.lessons.InvalidateCache(ctx, lessonIDs...)
	result.Lessons = len(lessonIDs)
	return result, nil
}

// ReconcileDeleted cascade các course đã xóa nhưng còn con active.
// Lỗi từng course chỉ được log, trả về số course đã xử lý thành công.
func (s *CascadeService) ReconcileDeleted(ctx context.Context, limit int) (int, error) {
	ids, err := s.courseRepo.ListDeletedWithActiveChildren(ctx, limit)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}

		res, err := s.CascadeSoftDelete(ctx, id)
		if err != nil {
			log.Error().Err(err).Int64("course_id", id).Msg("Reconcile cascade failed")
			continue
		}
		if !res.Skipped {
			processed++
		}
	}

	return processed, nil
}
