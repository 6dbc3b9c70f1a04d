package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-admin-backend/internal/domains/lesson/model"
)

type fakeLessonRepo struct {
	lessons map[int64]model.Lesson
	err     error
}

func (f *fakeLessonRepo) GetLessonByID(ctx context.Context, id int64) (*model.Lesson, error) {
	if f.err != nil {
		return nil, f.err
	}
	l, ok := f.lessons[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *fakeLessonRepo) ListByChapterID(ctx context.Context, chapterID int64) ([]model.Lesson, error) {
	return nil, nil
}

func (f *fakeLessonRepo) SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error) {
	return nil, nil
}

func (f *fakeLessonRepo) InvalidateCache(ctx context.Context, ids ...int64) {}

func TestGetLesson(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := &fakeLessonRepo{lessons: map[int64]model.Lesson{
		4: {ID: 4, CourseID: 1, ChapterID: 2, Name: "Intro", Status: "active", Type: "video", Order: 0, CreatedDate: created},
	}}
	svc := NewLessonService(repo)

	res, err := svc.GetLesson(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.ID)
	assert.Equal(t, int64(2), res.ChapterID)
	assert.Equal(t, "video", res.Type)
	assert.Equal(t, "2024-03-01 08:00:00", res.CreatedDate.String())
	assert.Nil(t, res.UpdatedDate)
}

func TestGetLesson_Errors(t *testing.T) {
	dbErr := errors.New("timeout")

	tests := []struct {
		name    string
		id      int64
		repoErr error
		want    error
	}{
		{"missing", 100, nil, model.ErrLessonNotFound},
		{"zero id", 0, nil, model.ErrInvalidID},
		{"repository failure", 1, dbErr, dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLessonService(&fakeLessonRepo{lessons: map[int64]model.Lesson{}, err: tt.repoErr})
			_, err := svc.GetLesson(context.Background(), tt.id)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
