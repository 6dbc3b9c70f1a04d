package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"course-admin-backend/internal/domains/chapter/model"
	"course-admin-backend/internal/shared"
	"course-admin-backend/pkg/database"
)

type postgresRepository struct {
	pool database.Querier
}

func NewPostgresRepository(pool database.Querier) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Chapter, error) {
	query := `
		SELECT id, course_id, name, description, status, "order", created_date, updated_date
		FROM chapters
		WHERE id = $1
	`

	var ch model.Chapter
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ch.ID,
		&ch.CourseID,
		&ch.Name,
		&ch.Description,
		&ch.Status,
		&ch.Order,
		&ch.CreatedDate,
		&ch.UpdatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrChapterNotFound
		}
		return nil, fmt.Errorf("failed to get chapter by id: %w", err)
	}

	return &ch, nil
}

func (r *postgresRepository) SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error) {
	query := `
		UPDATE chapters
		SET status = $1, updated_date = NOW()
		WHERE course_id = $2 AND status <> $1
		RETURNING id
	`

	rows, err := tx.Query(ctx, query, shared.StatusDeleted, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to soft delete chapters: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect chapter ids: %w", err)
	}
	return ids, nil
}
