package model

import (
	"errors"
	"net/http"

	"course-admin-backend/internal/shared"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidID      = errors.New("course id must be a positive integer")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return "COURSE_NOT_FOUND"
	case errors.Is(err, shared.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, shared.ErrInvalidSort), errors.Is(err, ErrInvalidID):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrValidation),
		errors.Is(err, shared.ErrInvalidSort),
		errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
