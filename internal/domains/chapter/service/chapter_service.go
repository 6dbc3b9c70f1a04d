package service

import (
	"context"
	"fmt"

	"course-admin-backend/internal/domains/chapter/model"
	"course-admin-backend/internal/domains/chapter/repository"
	lessonRepo "course-admin-backend/internal/domains/lesson/repository"
)

type ChapterService struct {
	repo       repository.RepositoryInterface
	lessonRepo lessonRepo.RepositoryInterface
}

func NewChapterService(repo repository.RepositoryInterface, lessonRepo lessonRepo.RepositoryInterface) ServiceInterface {
	return &ChapterService{
		repo:       repo,
		lessonRepo: lessonRepo,
	}
}

func (s *ChapterService) GetChapter(ctx context.Context, id int64) (*model.ChapterRes, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	ch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.ListByChapterID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list lessons of chapter %d: %w", id, err)
	}

	return ch.ToResponse(lessons), nil
}
