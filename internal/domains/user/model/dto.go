package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	addressModel "course-admin-backend/internal/domains/address/model"
	"course-admin-backend/internal/shared"
)

// =====================================================
// USER INFO REQUEST - POST /users, PUT /users/:user_id
// =====================================================
// Create: username + password bắt buộc. Update: nil = giữ nguyên.
type UserInfoReq struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
}

func (r *UserInfoReq) Normalize() {
	if r.Username != nil {
		*r.Username = strings.TrimSpace(*r.Username)
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

// rules phải build trên cùng struct được ValidateStruct kiểm tra
func (r *UserInfoReq) rules(create bool) []*validation.FieldRules {
	usernameRules := []validation.Rule{
		validation.RuneLength(1, MaxUsernameLength).Error("Username must not exceed 50 characters."),
	}
	passwordRules := []validation.Rule{
		validation.RuneLength(MinPasswordLength, MaxPasswordLength).Error("Password must be between 6 and 20 characters."),
		validation.By(passwordBytes),
	}
	if create {
		usernameRules = append([]validation.Rule{validation.Required.Error("Username must not be blank.")}, usernameRules...)
		passwordRules = append([]validation.Rule{validation.Required.Error("Password must not be blank.")}, passwordRules...)
	} else {
		usernameRules = append([]validation.Rule{validation.NilOrNotEmpty.Error("Username must not be blank.")}, usernameRules...)
		passwordRules = append([]validation.Rule{validation.NilOrNotEmpty.Error("Password must not be blank.")}, passwordRules...)
	}

	return []*validation.FieldRules{
		validation.Field(&r.Username, usernameRules...),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.Name,
			validation.Required.Error("Name must not be blank."),
			validation.RuneLength(1, MaxNameLength).Error("Name must not exceed 50 characters."),
		),
		validation.Field(&r.Status,
			validation.Required.Error("Status must not be blank."),
			validation.RuneLength(1, MaxStatusLength).Error("Status must not exceed 50 characters."),
			validation.In(shared.EditableStatuses...).Error("Status must be one of: active, inactive, draft, archived."),
		),
	}
}

// passwordBytes chặn password nhiều byte vượt quá giới hạn của bcrypt
func passwordBytes(value interface{}) error {
	p, _ := value.(*string)
	if p != nil && len(*p) > MaxPasswordBytes {
		return validation.NewError("validation_password_bytes", "Password must not exceed 72 bytes.")
	}
	return nil
}

func (r UserInfoReq) ValidateCreate() error {
	return validation.ValidateStruct(&r, r.rules(true)...)
}

func (r UserInfoReq) ValidateUpdate() error {
	return validation.ValidateStruct(&r, r.rules(false)...)
}

// =====================================================
// SEARCH USER REQUEST - GET /users (JSON body)
// =====================================================
type UserSearchReq struct {
	Username        string           `json:"username,omitempty"`
	Name            string           `json:"name,omitempty"`
	Status          string           `json:"status,omitempty"`
	CreatedDateFrom *shared.DateTime `json:"created_date_from,omitempty"`
	CreatedDateTo   *shared.DateTime `json:"created_date_to,omitempty"`
}

func (r *UserSearchReq) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r UserSearchReq) Validate() error {
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

func (r UserSearchReq) ToFilter() UserFilter {
	return UserFilter{
		Username:    strings.TrimSpace(r.Username),
		Name:        strings.TrimSpace(r.Name),
		Status:      strings.ToLower(strings.TrimSpace(r.Status)),
		CreatedFrom: r.CreatedDateFrom.TimePtr(),
		CreatedTo:   r.CreatedDateTo.TimePtr(),
	}
}

// =====================================================
// RESPONSES
// =====================================================

// UserUpdateRes - kết quả create/update, không bao giờ chứa password
type UserUpdateRes struct {
	ID          int64            `json:"id"`
	Username    string           `json:"username,omitempty"`
	Name        string           `json:"name,omitempty"`
	CreatedDate *shared.DateTime `json:"created_date,omitempty"`
	UpdatedDate *shared.DateTime `json:"updated_date,omitempty"`
	Status      string           `json:"status,omitempty"`
}

// UserResponseDto - chi tiết user cho màn hình admin
type UserResponseDto struct {
	ID                int64                     `json:"id"`
	FullName          *FullName                 `json:"full_name,omitempty"`
	Addresses         []addressModel.AddressRes `json:"addresses"`
	Status            string                    `json:"status,omitempty"`
	Username          string                    `json:"username,omitempty"`
	Nickname          *string                   `json:"nickname,omitempty"`
	CreatedDate       *shared.DateTime          `json:"created_date,omitempty"`
	UpdatedDate       *shared.DateTime          `json:"updated_date,omitempty"`
	NumCourseRegister int                       `json:"num_course_register"`
}

type UserSearchRes struct {
	Users         []UserResponseDto `json:"users"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
}

func (u *User) ToUpdateRes() *UserUpdateRes {
	return &UserUpdateRes{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		CreatedDate: shared.NewDateTime(u.CreatedDate),
		UpdatedDate: shared.NewDateTime(u.UpdatedDate),
		Status:      u.Status,
	}
}

func (u *User) ToResponseDto(addrs []addressModel.Address) UserResponseDto {
	return UserResponseDto{
		ID:                u.ID,
		FullName:          SplitFullName(u.Name),
		Addresses:         addressModel.ToResponses(addrs),
		Status:            u.Status,
		Username:          u.Username,
		Nickname:          u.Nickname,
		CreatedDate:       shared.NewDateTime(u.CreatedDate),
		UpdatedDate:       shared.NewDateTime(u.UpdatedDate),
		NumCourseRegister: u.NumCourseRegister,
	}
}
