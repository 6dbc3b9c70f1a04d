package service

import (
	"context"

	"course-admin-backend/internal/domains/lesson/model"
	"course-admin-backend/internal/domains/lesson/repository"
)

type LessonService struct {
	repo repository.RepositoryInterface
}

func NewLessonService(repo repository.RepositoryInterface) ServiceInterface {
	return &LessonService{repo: repo}
}

// GetLesson - repository trả về nil khi không có, ở đây đổi thành ErrLessonNotFound
func (s *LessonService) GetLesson(ctx context.Context, id int64) (*model.LessonRes, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	l, err := s.repo.GetLessonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, model.ErrLessonNotFound
	}

	return l.ToResponse(), nil
}
