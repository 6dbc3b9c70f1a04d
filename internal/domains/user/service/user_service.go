package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	addressRepo "course-admin-backend/internal/domains/address/repository"
	"course-admin-backend/internal/domains/user/model"
	"course-admin-backend/internal/domains/user/repository"
	"course-admin-backend/internal/shared"
)

var sortableColumns = map[string]string{
	"id":           "id",
	"username":     "username",
	"name":         "name",
	"status":       "status",
	"created_date": "created_date",
	"updated_date": "updated_date",
}

const defaultSort = "created_date"

type userService struct {
	repo        repository.UserRepository
	addressRepo addressRepo.Repository
	limits      shared.PageLimits
	bcryptCost  int
}

func NewUserService(repo repository.UserRepository, addressRepo addressRepo.Repository, limits shared.PageLimits) ServiceInterface {
	return &userService{
		repo:        repo,
		addressRepo: addressRepo,
		limits:      limits,
		bcryptCost:  bcrypt.DefaultCost,
	}
}

func (s *userService) hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser - username unique, password lưu dạng bcrypt hash
func (s *userService) CreateUser(ctx context.Context, req model.UserInfoReq) (*model.UserUpdateRes, error) {
	req.Normalize()
	if err := req.ValidateCreate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	// Pre-check cho message rõ ràng, UNIQUE constraint vẫn chặn race
	exists, err := s.repo.ExistsByUsername(ctx, *req.Username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	hash, err := s.hashPassword(*req.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.User{
		Username: *req.Username,
		Password: hash,
		Name:     req.Name,
		Status:   req.Status,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("User created")
	return created.ToUpdateRes(), nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req model.UserInfoReq) (*model.UserUpdateRes, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	req.Normalize()
	if err := req.ValidateUpdate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != existing.Username {
		exists, err := s.repo.ExistsByUsername(ctx, *req.Username, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.ErrUsernameExists
		}
		existing.Username = *req.Username
	}

	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		existing.Password = hash
	}

	existing.Name = req.Name
	existing.Status = req.Status

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	return updated.ToUpdateRes(), nil
}

// SoftDeleteUser - idempotent, user đã xóa thì không ghi lại
func (s *userService) SoftDeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidID
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsDeleted() {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, shared.StatusDeleted); err != nil {
		return err
	}

	log.Info().Int64("user_id", id).Msg("User soft deleted")
	return nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.UserResponseDto, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addrs, err := s.addressRepo.ListByUserIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}

	dto := u.ToResponseDto(addrs[id])
	return &dto, nil
}

func (s *userService) SearchUsers(ctx context.Context, req model.UserSearchReq, query SearchQuery) (*model.UserSearchRes, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	page, err := shared.NewPageRequest(
		query.Page,
		query.PageSize,
		query.Sort,
		sortableColumns,
		defaultSort,
		s.limits.DefaultSize,
		s.limits.MaxSize,
	)
	if err != nil {
		return nil, err
	}

	users, total, err := s.repo.Search(ctx, req.ToFilter(), page)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	// Batch load địa chỉ cho cả page trong một query
	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	addrs, err := s.addressRepo.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]model.UserResponseDto, 0, len(users))
	for i := range users {
		items = append(items, users[i].ToResponseDto(addrs[users[i].ID]))
	}

	return &model.UserSearchRes{
		Users:         items,
		Page:          page.Page,
		PageSize:      page.PageSize,
		TotalElements: total,
		TotalPages:    shared.TotalPages(total, page.PageSize),
	}, nil
}
