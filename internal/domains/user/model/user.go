package model

import (
	"strings"
	"time"

	"course-admin-backend/internal/shared"
)

// Constants for validation
const (
	MaxUsernameLength = 50
	MinPasswordLength = 6
	MaxPasswordLength = 20
	MaxPasswordBytes  = 72 // giới hạn input của bcrypt
	MaxNameLength     = 50
	MaxStatusLength   = 50
)

type User struct {
	ID          int64     `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Password    string    `json:"-" db:"password"` // bcrypt hash, never expose in JSON
	Name        string    `json:"name" db:"name"`
	Nickname    *string   `json:"nickname" db:"nickname"`
	Status      string    `json:"status" db:"status"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
	UpdatedDate time.Time `json:"updated_date" db:"updated_date"`

	// Derived: COUNT course_registrations chưa bị xóa
	NumCourseRegister int `json:"num_course_register" db:"num_course_register"`
}

func (u *User) IsDeleted() bool {
	return u.Status == shared.StatusDeleted
}

// FullName - name tách theo khoảng trắng: họ, tên đệm, tên
type FullName struct {
	FamilyName string `json:"family_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
}

// SplitFullName: "Nguyen Van An" → {Nguyen, Van, An}
// Một từ duy nhất được coi là given name; chuỗi rỗng → nil
func SplitFullName(name string) *FullName {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return &FullName{GivenName: parts[0]}
	default:
		return &FullName{
			FamilyName: parts[0],
			MiddleName: strings.Join(parts[1:len(parts)-1], " "),
			GivenName:  parts[len(parts)-1],
		}
	}
}

// UserFilter - điều kiện search đã chuẩn hóa
type UserFilter struct {
	Username    string // substring, case-insensitive
	Name        string // substring, case-insensitive
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
