package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"course-admin-backend/internal/shared"
)

// =====================================================
// CREATE COURSE REQUEST - POST /api/v1/courses
// =====================================================
type CourseCreateReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Teacher     string  `json:"teacher"`
}

// Normalize trim khoảng trắng để "   " bị coi là blank
func (r *CourseCreateReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Teacher = strings.TrimSpace(r.Teacher)
}

func (r CourseCreateReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name must not be blank."),
			validation.RuneLength(1, MaxNameLength).Error("Name must not exceed 255 characters."),
		),
		validation.Field(&r.Description,
			validation.RuneLength(0, MaxDescriptionLength).Error("Description must not exceed 5000 characters."),
		),
		validation.Field(&r.Status,
			validation.Required.Error("Status must not be blank."),
			validation.In(shared.EditableStatuses...).Error("Status must be one of: active, inactive, draft, archived."),
		),
		validation.Field(&r.Teacher,
			validation.Required.Error("Teacher must not be blank."),
			validation.RuneLength(1, MaxTeacherLength).Error("Teacher must not exceed 100 characters."),
		),
	)
}

func (r CourseCreateReq) ToEntity() *Course {
	return &Course{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Teacher:     r.Teacher,
	}
}

// =====================================================
// UPDATE COURSE REQUEST - PUT /api/v1/courses/:course_id
// =====================================================
// Field nil = giữ nguyên giá trị cũ
type CourseUpdateReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Teacher     *string `json:"teacher,omitempty"`
}

func (r *CourseUpdateReq) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Teacher)
	if r.Status != nil {
		*r.Status = strings.ToLower(strings.TrimSpace(*r.Status))
	}
}

func (r CourseUpdateReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("Name must not be blank."),
			validation.RuneLength(1, MaxNameLength).Error("Name must not exceed 255 characters."),
		),
		validation.Field(&r.Description,
			validation.RuneLength(0, MaxDescriptionLength).Error("Description must not exceed 5000 characters."),
		),
		validation.Field(&r.Status,
			validation.NilOrNotEmpty.Error("Status must not be blank."),
			validation.In(shared.EditableStatuses...).Error("Status must be one of: active, inactive, draft, archived."),
		),
		validation.Field(&r.Teacher,
			validation.NilOrNotEmpty.Error("Teacher must not be blank."),
			validation.RuneLength(1, MaxTeacherLength).Error("Teacher must not exceed 100 characters."),
		),
	)
}

// ApplyTo ghi đè các field được gửi lên entity hiện tại
func (r CourseUpdateReq) ApplyTo(c *Course) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.Teacher != nil {
		c.Teacher = *r.Teacher
	}
}

// =====================================================
// SEARCH COURSE REQUEST - GET /api/v1/courses (JSON body)
// =====================================================
type CourseSearchReq struct {
	Name            string           `json:"name,omitempty"`
	Status          string           `json:"status,omitempty"`
	TeacherName     string           `json:"teacher_name,omitempty"`
	CreatedDateFrom *shared.DateTime `json:"created_date_from,omitempty"`
	CreatedDateTo   *shared.DateTime `json:"created_date_to,omitempty"`
}

// Normalize trim filter và lowercase status trước khi validate
func (r *CourseSearchReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.TeacherName = strings.TrimSpace(r.TeacherName)
}

func (r CourseSearchReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.In(shared.SearchableStatuses...).Error("Status must be one of: active, inactive, draft, archived, deleted."),
		),
		validation.Field(&r.CreatedDateTo,
			validation.By(func(interface{}) error {
				from, to := r.CreatedDateFrom.TimePtr(), r.CreatedDateTo.TimePtr()
				if from != nil && to != nil && to.Before(*from) {
					return errors.New("created_date_to must not be before created_date_from")
				}
				return nil
			}),
		),
	)
}

// ToFilter chuẩn hóa request thành filter cho repository
func (r CourseSearchReq) ToFilter() CourseFilter {
	return CourseFilter{
		Name:        strings.TrimSpace(r.Name),
		Status:      strings.ToLower(strings.TrimSpace(r.Status)),
		Teacher:     strings.TrimSpace(r.TeacherName),
		CreatedFrom: r.CreatedDateFrom.TimePtr(),
		CreatedTo:   r.CreatedDateTo.TimePtr(),
	}
}

// =====================================================
// RESPONSES
// =====================================================
type CourseRes struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      string           `json:"status,omitempty"`
	Teacher     string           `json:"teacher,omitempty"`
	CreatedDate *shared.DateTime `json:"created_date,omitempty"`
	UpdatedDate *shared.DateTime `json:"updated_date,omitempty"`
}

type CourseSearchRes struct {
	Courses       []CourseRes `json:"courses"`
	Page          int         `json:"page"`
	PageSize      int         `json:"page_size"`
	TotalElements int64       `json:"total_elements"`
	TotalPages    int         `json:"total_pages"`
}

// ToResponse converts Course entity to CourseRes DTO
func (c *Course) ToResponse() *CourseRes {
	return &CourseRes{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		Teacher:     c.Teacher,
		CreatedDate: shared.NewDateTime(c.CreatedDate),
		UpdatedDate: shared.NewDateTime(c.UpdatedDate),
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
