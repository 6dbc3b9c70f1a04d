package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addressModel "course-admin-backend/internal/domains/address/model"
)

func strPtr(s string) *string { return &s }

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *FullName
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single word", "Linus", &FullName{GivenName: "Linus"}},
		{"two words", "Ada Lovelace", &FullName{FamilyName: "Ada", GivenName: "Lovelace"}},
		{"three words", "Nguyen Van An", &FullName{FamilyName: "Nguyen", MiddleName: "Van", GivenName: "An"}},
		{"many words", "Tran  Thi Thu   Ha", &FullName{FamilyName: "Tran", MiddleName: "Thi Thu", GivenName: "Ha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFullName(tt.in))
		})
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	return errs
}

func TestUserInfoReq_ValidateCreate(t *testing.T) {
	valid := func() UserInfoReq {
		return UserInfoReq{Username: strPtr("ada"), Password: strPtr("secret1"), Name: "Ada Lovelace", Status: "active"}
	}

	tests := []struct {
		name      string
		mutate    func(r *UserInfoReq)
		wantField string
	}{
		{"missing username", func(r *UserInfoReq) { r.Username = nil }, "username"},
		{"blank username", func(r *UserInfoReq) { r.Username = strPtr("") }, "username"},
		{"long username", func(r *UserInfoReq) { r.Username = strPtr(strings.Repeat("u", 51)) }, "username"},
		{"missing password", func(r *UserInfoReq) { r.Password = nil }, "password"},
		{"short password", func(r *UserInfoReq) { r.Password = strPtr("12345") }, "password"},
		{"long password", func(r *UserInfoReq) { r.Password = strPtr(strings.Repeat("p", 21)) }, "password"},
		{"multibyte password over 72 bytes", func(r *UserInfoReq) { r.Password = strPtr(strings.Repeat("😀", 20)) }, "password"},
		{"blank name", func(r *UserInfoReq) { r.Name = "" }, "name"},
		{"long name", func(r *UserInfoReq) { r.Name = strings.Repeat("n", 51) }, "name"},
		{"deleted status", func(r *UserInfoReq) { r.Status = "deleted" }, "status"},
	}

	require.NoError(t, valid().ValidateCreate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			errs := fieldErrors(t, req.ValidateCreate())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestUserInfoReq_ValidateUpdate(t *testing.T) {
	req := UserInfoReq{Name: "Ada", Status: "inactive"}
	assert.NoError(t, req.ValidateUpdate(), "username and password are optional on update")

	req.Password = strPtr("abc")
	errs := fieldErrors(t, req.ValidateUpdate())
	assert.Contains(t, errs, "password")

	req.Password = nil
	req.Username = strPtr("")
	errs = fieldErrors(t, req.ValidateUpdate())
	assert.Contains(t, errs, "username")
}

func TestUserInfoReq_Normalize(t *testing.T) {
	req := UserInfoReq{Username: strPtr("  ada "), Name: " Ada ", Status: " ACTIVE"}
	req.Normalize()

	assert.Equal(t, "ada", *req.Username)
	assert.Equal(t, "Ada", req.Name)
	assert.Equal(t, "active", req.Status)
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := User{ID: 1, Username: "ada", Password: "$2a$10$hash", Name: "Ada Lovelace", Status: "active",
		CreatedDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}

	for _, v := range []interface{}{u, u.ToUpdateRes(), u.ToResponseDto(nil)} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "password")
		assert.NotContains(t, string(data), "$2a$")
	}
}

func TestUser_ToResponseDto(t *testing.T) {
	u := User{ID: 7, Username: "an", Name: "Nguyen Van An", Status: "active", NumCourseRegister: 3}
	addrs := []addressModel.Address{{ID: 1, UserID: 7, Street: "1 Le Loi", City: "Hue", IsDefault: true}}

	dto := u.ToResponseDto(addrs)

	assert.Equal(t, &FullName{FamilyName: "Nguyen", MiddleName: "Van", GivenName: "An"}, dto.FullName)
	assert.Len(t, dto.Addresses, 1)
	assert.Equal(t, 3, dto.NumCourseRegister)

	data, err := json.Marshal(u.ToResponseDto(nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"addresses":[]`)
	assert.Contains(t, string(data), `"num_course_register":3`)

	fresh := User{ID: 8, Username: "binh"}
	data, err = json.Marshal(fresh.ToResponseDto(nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"addresses":[]`)
	assert.Contains(t, string(data), `"num_course_register":0`)
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrUserNotFound))
	assert.Equal(t, 409, ToHTTPStatus(ErrUsernameExists))
	assert.Equal(t, "USERNAME_EXISTS", ToErrorCode(ErrUsernameExists))
	assert.Equal(t, 400, ToHTTPStatus(ErrInvalidID))
}
