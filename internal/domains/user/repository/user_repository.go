package repository

import (
	"context"

	"course-admin-backend/internal/domains/user/model"
	"course-admin-backend/internal/shared"
)

type UserRepository interface {
	// Create - Errors: model.ErrUsernameExists
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// GetByID kèm num_course_register - Errors: model.ErrUserNotFound
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// ExistsByUsername - excludeID > 0 bỏ qua chính user đang update
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)

	// Update - Errors: model.ErrUserNotFound, model.ErrUsernameExists
	Update(ctx context.Context, user *model.User) (*model.User, error)

	// UpdateStatus - Errors: model.ErrUserNotFound
	UpdateStatus(ctx context.Context, id int64, status string) error

	Search(ctx context.Context, filter model.UserFilter, page shared.PageRequest) ([]model.User, int64, error)
}
