package model

import (
	"time"

	lessonModel "course-admin-backend/internal/domains/lesson/model"
	"course-admin-backend/internal/shared"
)

type Chapter struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Order       int       `json:"order" db:"order"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
	UpdatedDate time.Time `json:"updated_date" db:"updated_date"`
}

// ChapterRes - chapter kèm lessons theo thứ tự order
type ChapterRes struct {
	ID          int64                   `json:"id"`
	CourseID    int64                   `json:"course_id,omitempty"`
	Name        string                  `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Status      string                  `json:"status,omitempty"`
	Order       int                     `json:"order"`
	CreatedDate *shared.DateTime        `json:"created_date,omitempty"`
	UpdatedDate *shared.DateTime        `json:"updated_date,omitempty"`
	Lessons     []lessonModel.LessonRes `json:"lessons"`
}

func (c *Chapter) ToResponse(lessons []lessonModel.Lesson) *ChapterRes {
	items := make([]lessonModel.LessonRes, 0, len(lessons))
	for i := range lessons {
		items = append(items, *lessons[i].ToResponse())
	}

	return &ChapterRes{
		ID:          c.ID,
		CourseID:    c.CourseID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		Order:       c.Order,
		CreatedDate: shared.NewDateTime(c.CreatedDate),
		UpdatedDate: shared.NewDateTime(c.UpdatedDate),
		Lessons:     items,
	}
}
