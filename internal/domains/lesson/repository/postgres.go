package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/lesson/model"
	"course-admin-backend/internal/shared"
	"course-admin-backend/pkg/cache"
	"course-admin-backend/pkg/database"
)

const lessonCacheKeyPrefix = "lesson:"

const lessonColumns = `id, course_id, chapter_id, name, description, status, type, "order", created_date, updated_date`

type postgresRepository struct {
	pool     database.Querier
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(pool database.Querier, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func scanLesson(row pgx.Row) (*model.Lesson, error) {
	var l model.Lesson
	err := row.Scan(
		&l.ID,
		&l.CourseID,
		&l.ChapterID,
		&l.Name,
		&l.Description,
		&l.Status,
		&l.Type,
		&l.Order,
		&l.CreatedDate,
		&l.UpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *postgresRepository) GetLessonByID(ctx context.Context, id int64) (*model.Lesson, error) {
	cacheKey := lessonCacheKey(id)

	if r.cache != nil {
		var cached model.Lesson
		found, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("lesson cache get failed")
		}
		if found {
			return &cached, nil
		}
	}

	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	l, err := scanLesson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, l, r.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("lesson cache set failed")
		}
	}

	return l, nil
}

func (r *postgresRepository) ListByChapterID(ctx context.Context, chapterID int64) ([]model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE chapter_id = $1 ORDER BY "order" ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := make([]model.Lesson, 0)
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lessons: %w", err)
	}

	return lessons, nil
}

func (r *postgresRepository) SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error) {
	query := `
		UPDATE lessons
		SET status = $1, updated_date = NOW()
		WHERE course_id = $2 AND status <> $1
		RETURNING id
	`

	rows, err := tx.Query(ctx, query, shared.StatusDeleted, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to soft delete lessons: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect lesson ids: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) InvalidateCache(ctx context.Context, ids ...int64) {
	if r.cache == nil || len(ids) == 0 {
		return
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = lessonCacheKey(id)
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Int("count", len(keys)).Msg("lesson cache invalidate failed")
	}
}

func lessonCacheKey(id int64) string {
	return lessonCacheKeyPrefix + strconv.FormatInt(id, 10)
}
