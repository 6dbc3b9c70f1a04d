package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"course-admin-backend/internal/domains/lesson/model"
)

type fakeService struct {
	res *model.LessonRes
	err error
}

func (f *fakeService) GetLesson(ctx context.Context, id int64) (*model.LessonRes, error) {
	return f.res, f.err
}

func TestGetLesson_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		path     string
		svc      *fakeService
		wantCode int
		wantBody string
	}{
		{
			name:     "found with order zero",
			path:     "/lessons/1",
			svc:      &fakeService{res: &model.LessonRes{ID: 1, Name: "Intro", Order: 0}},
			wantCode: http.StatusOK,
			wantBody: `{"id":1,"name":"Intro","order":0}`,
		},
		{
			name:     "not found",
			path:     "/lessons/2",
			svc:      &fakeService{err: model.ErrLessonNotFound},
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"error":{"code":"LESSON_NOT_FOUND","message":"lesson not found"}}`,
		},
		{
			name:     "invalid id",
			path:     "/lessons/x",
			svc:      &fakeService{},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"error":{"code":"BAD_REQUEST","message":"lesson id must be a positive integer"}}`,
		},
		{
			name:     "internal error",
			path:     "/lessons/3",
			svc:      &fakeService{err: errors.New("boom")},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"error":{"code":"INTERNAL_SERVER_ERROR","message":"Internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/lessons/:lesson_id", NewHandler(tt.svc).GetLesson)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
