package service

import (
	"context"

	"course-admin-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, req model.UserInfoReq) (*model.UserUpdateRes, error)
	UpdateUser(ctx context.Context, id int64, req model.UserInfoReq) (*model.UserUpdateRes, error)
	SoftDeleteUser(ctx context.Context, id int64) error
	GetUser(ctx context.Context, id int64) (*model.UserResponseDto, error)
	SearchUsers(ctx context.Context, req model.UserSearchReq, query SearchQuery) (*model.UserSearchRes, error)
}

// SearchQuery - page/page_size/sort lấy từ query string
type SearchQuery struct {
	Page     int
	PageSize int
	Sort     string
}
