package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"course-admin-backend/internal/domains/user/model"
	"course-admin-backend/internal/shared"
	"course-admin-backend/internal/shared/utils"
	"course-admin-backend/pkg/database"
)

const userColumns = `u.id, u.username, u.password, u.name, u.nickname, u.status, u.created_date, u.updated_date`

// numCourseRegisterExpr - correlated subquery, chỉ đếm registration chưa bị xóa
const numCourseRegisterExpr = `(
	SELECT COUNT(*) FROM course_registrations cr
	WHERE cr.user_id = u.id AND cr.status <> 'deleted'
) AS num_course_register`

type postgresRepository struct {
	pool database.Querier
}

func NewPostgresRepository(pool database.Querier) UserRepository {
	return &postgresRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	// Error code 23505 = unique_violation (username đã tồn tại)
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanUser(row pgx.Row, withCount bool) (*model.User, error) {
	var u model.User
	dest := []interface{}{
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Name,
		&u.Nickname,
		&u.Status,
		&u.CreatedDate,
		&u.UpdatedDate,
	}
	if withCount {
		dest = append(dest, &u.NumCourseRegister)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		INSERT INTO users AS u (username, password, name, nickname, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		u.Username,
		u.Password,
		u.Name,
		u.Nickname,
		u.Status,
	), false)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + `, ` + numCourseRegisterExpr + ` FROM users u WHERE u.id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		UPDATE users AS u
		SET username = $1,
		    password = $2,
		    name = $3,
		    status = $4,
		    updated_date = NOW()
		WHERE u.id = $5
		RETURNING ` + userColumns

	updated, err := scanUser(r.pool.QueryRow(ctx, query,
		u.Username,
		u.Password,
		u.Name,
		u.Status,
		u.ID,
	), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE users SET status = $1, updated_date = NOW() WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func buildSearchWhere(filter model.UserFilter) *utils.WhereBuilder {
	w := &utils.WhereBuilder{}

	if filter.Username != "" {
		w.Add("u.username ILIKE $%d", "%"+utils.EscapeLike(filter.Username)+"%")
	}
	if filter.Name != "" {
		w.Add("u.name ILIKE $%d", "%"+utils.EscapeLike(filter.Name)+"%")
	}
	if filter.Status != "" {
		w.Add("u.status = $%d", filter.Status)
	}
	if filter.CreatedFrom != nil {
		w.Add("u.created_date >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		w.Add("u.created_date <= $%d", *filter.CreatedTo)
	}

	return w
}

// buildSearchQuery - sort column đã whitelist ở service
func buildSearchQuery(filter model.UserFilter, page shared.PageRequest) (string, string, []interface{}) {
	w := buildSearchWhere(filter)
	where := w.Clause()

	limitPos := w.NextArg()
	selectQuery := `SELECT ` + userColumns + `, ` + numCourseRegisterExpr +
		` FROM users u` + where +
		` ORDER BY ` + page.OrderByAlias("u") +
		` LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)
	countQuery := `SELECT COUNT(*) FROM users u` + where

	args := append(w.Args(), page.PageSize, page.Offset())
	return selectQuery, countQuery, args
}

func (r *postgresRepository) Search(ctx context.Context, filter model.UserFilter, page shared.PageRequest) ([]model.User, int64, error) {
	selectQuery, countQuery, args := buildSearchQuery(filter, page)

	rows, err := r.pool.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, page.PageSize)
	for rows.Next() {
		u, err := scanUser(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating users: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}
