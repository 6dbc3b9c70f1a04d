package model

import (
	"time"

	"course-admin-backend/internal/shared"
)

// Lesson - row của bảng lessons, luôn thuộc một chapter của một course
type Lesson struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	ChapterID   int64     `json:"chapter_id" db:"chapter_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Type        string    `json:"type" db:"type"`
	Order       int       `json:"order" db:"order"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
	UpdatedDate time.Time `json:"updated_date" db:"updated_date"`
}

// LessonRes - GET /api/v1/lessons/:lesson_id
// order không omitempty: lesson đầu tiên có order = 0 vẫn phải hiển thị
type LessonRes struct {
	ID          int64            `json:"id"`
	CourseID    int64            `json:"course_id,omitempty"`
	ChapterID   int64            `json:"chapter_id,omitempty"`
	Name        string           `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      string           `json:"status,omitempty"`
	Type        string           `json:"type,omitempty"`
	Order       int              `json:"order"`
	CreatedDate *shared.DateTime `json:"created_date,omitempty"`
	UpdatedDate *shared.DateTime `json:"updated_date,omitempty"`
}

func (l *Lesson) ToResponse() *LessonRes {
	return &LessonRes{
		ID:          l.ID,
		CourseID:    l.CourseID,
		ChapterID:   l.ChapterID,
		Name:        l.Name,
		Description: l.Description,
		Status:      l.Status,
		Type:        l.Type,
		Order:       l.Order,
		CreatedDate: shared.NewDateTime(l.CreatedDate),
		UpdatedDate: shared.NewDateTime(l.UpdatedDate),
	}
}
