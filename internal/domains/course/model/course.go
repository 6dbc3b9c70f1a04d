package model

import (
	"time"

	"course-admin-backend/internal/shared"
)

// Constants for validation
const (
	MaxNameLength        = 255
	MaxTeacherLength     = 100
	MaxDescriptionLength = 5000
)

// Course - row của bảng courses
// Soft delete = Status chuyển sang shared.StatusDeleted, row không bao giờ bị xóa
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Teacher     string    `json:"teacher" db:"teacher"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
	UpdatedDate time.Time `json:"updated_date" db:"updated_date"`
}

func (c *Course) IsDeleted() bool {
	return c.Status == shared.StatusDeleted
}

// CourseFilter - điều kiện search đã chuẩn hóa cho repository (AND giữa các field)
type CourseFilter struct {
	Name        string // substring, case-insensitive
	Status      string // equality
	Teacher     string // substring, case-insensitive
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
