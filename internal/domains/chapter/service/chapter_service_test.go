package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-admin-backend/internal/domains/chapter/model"
	lessonModel "course-admin-backend/internal/domains/lesson/model"
)

type fakeChapterRepo struct {
	chapters map[int64]model.Chapter
}

func (f *fakeChapterRepo) GetByID(ctx context.Context, id int64) (*model.Chapter, error) {
	ch, ok := f.chapters[id]
	if !ok {
		return nil, model.ErrChapterNotFound
	}
	return &ch, nil
}

func (f *fakeChapterRepo) SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error) {
	return nil, nil
}

type fakeLessonRepo struct {
	byChapter map[int64][]lessonModel.Lesson
	err       error
}

func (f *fakeLessonRepo) GetLessonByID(ctx context.Context, id int64) (*lessonModel.Lesson, error) {
	return nil, nil
}

func (f *fakeLessonRepo) ListByChapterID(ctx context.Context, chapterID int64) ([]lessonModel.Lesson, error) {
	return f.byChapter[chapterID], f.err
}

func (f *fakeLessonRepo) SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error) {
	return nil, nil
}

func (f *fakeLessonRepo) InvalidateCache(ctx context.Context, ids ...int64) {}

func TestGetChapter_IncludesLessonsInOrder(t *testing.T) {
	chapters := &fakeChapterRepo{chapters: map[int64]model.Chapter{
		3: {ID: 3, CourseID: 1, Name: "Sorting", Status: "active", Order: 1},
	}}
	lessons := &fakeLessonRepo{byChapter: map[int64][]lessonModel.Lesson{
		3: {
			{ID: 10, ChapterID: 3, Name: "Bubble sort", Order: 0},
			{ID: 11, ChapterID: 3, Name: "Quicksort", Order: 1},
		},
	}}
	svc := NewChapterService(chapters, lessons)

	res, err := svc.GetChapter(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Sorting", res.Name)
	require.Len(t, res.Lessons, 2)
	assert.Equal(t, int64(10), res.Lessons[0].ID)
	assert.Equal(t, int64(11), res.Lessons[1].ID)
}

func TestGetChapter_EmptyLessonsSerializeAsArray(t *testing.T) {
	chapters := &fakeChapterRepo{chapters: map[int64]model.Chapter{5: {ID: 5, Name: "Empty"}}}
	svc := NewChapterService(chapters, &fakeLessonRepo{})

	res, err := svc.GetChapter(context.Background(), 5)
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lessons":[]`)
}

func TestGetChapter_Errors(t *testing.T) {
	chapters := &fakeChapterRepo{chapters: map[int64]model.Chapter{1: {ID: 1}}}

	_, err := NewChapterService(chapters, &fakeLessonRepo{}).GetChapter(context.Background(), 2)
	assert.ErrorIs(t, err, model.ErrChapterNotFound)

	_, err = NewChapterService(chapters, &fakeLessonRepo{}).GetChapter(context.Background(), -1)
	assert.ErrorIs(t, err, model.ErrInvalidID)

	lessonErr := errors.New("lessons unavailable")
	_, err = NewChapterService(chapters, &fakeLessonRepo{err: lessonErr}).GetChapter(context.Background(), 1)
	assert.ErrorIs(t, err, lessonErr)
	assert.Equal(t, 500, model.ToHTTPStatus(err))
}
