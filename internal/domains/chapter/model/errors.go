package model

import (
	"errors"
	"net/http"
)

var (
	ErrChapterNotFound = errors.New("chapter not found")
	ErrInvalidID       = errors.New("chapter id must be a positive integer")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrChapterNotFound):
		return "CHAPTER_NOT_FOUND"
	case errors.Is(err, ErrInvalidID):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrChapterNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
