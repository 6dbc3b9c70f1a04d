package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/course/model"
	"course-admin-backend/internal/shared"
	"course-admin-backend/internal/shared/utils"
	"course-admin-backend/pkg/cache"
	"course-admin-backend/pkg/database"
)

// Cache key constants
const (
	courseCacheKeyPrefix = "course:"
)

const courseColumns = `id, name, description, status, teacher, created_date, updated_date`

// postgresRepository implements RepositoryInterface
// Uses pgxpool for PostgreSQL and Redis for caching GetByID
type postgresRepository struct {
	pool     database.Querier
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPostgresRepository - cache có thể nil (tắt cache)
func NewPostgresRepository(pool database.Querier, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var c model.Course
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Status,
		&c.Teacher,
		&c.CreatedDate,
		&c.UpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresRepository) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	query := `
		INSERT INTO courses (name, description, status, teacher)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + courseColumns

	created, err := scanCourse(r.pool.QueryRow(ctx, query,
		c.Name,
		c.Description,
		c.Status,
		c.Teacher,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return created, nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	cacheKey := courseCacheKey(id)

	if r.cache != nil {
		var cached model.Course
		found, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("course cache get failed")
		}
		if found {
			return &cached, nil
		}
	}

	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	c, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, c, r.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("course cache set failed")
		}
	}

	return c, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresRepository) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	query := `
		UPDATE courses
		SET name = $1,
		    description = $2,
		    status = $3,
		    teacher = $4,
		    updated_date = NOW()
		WHERE id = $5
		RETURNING ` + courseColumns

	updated, err := scanCourse(r.pool.QueryRow(ctx, query,
		c.Name,
		c.Description,
		c.Status,
		c.Teacher,
		c.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	r.invalidate(ctx, c.ID)
	return updated, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE courses SET status = $1, updated_date = NOW() WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update course status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrCourseNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// =====================================================
// SEARCH
// =====================================================

// buildSearchWhere - AND tất cả filter, ILIKE cho substring (đã escape wildcard)
func buildSearchWhere(filter model.CourseFilter) *utils.WhereBuilder {
	w := &utils.WhereBuilder{}

	if filter.Name != "" {
		w.Add("name ILIKE $%d", "%"+utils.EscapeLike(filter.Name)+"%")
	}
	if filter.Status != "" {
		w.Add("status = $%d", filter.Status)
	}
	if filter.Teacher != "" {
		w.Add("teacher ILIKE $%d", "%"+utils.EscapeLike(filter.Teacher)+"%")
	}
	if filter.CreatedFrom != nil {
		w.Add("created_date >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		w.Add("created_date <= $%d", *filter.CreatedTo)
	}

	return w
}

// buildSearchQuery trả về (select query, count query, args cho select)
// count query dùng args[:len(args)-2] (bỏ LIMIT/OFFSET)
func buildSearchQuery(filter model.CourseFilter, page shared.PageRequest) (string, string, []interface{}) {
	w := buildSearchWhere(filter)
	where := w.Clause()

	limitPos := w.NextArg()
	selectQuery := `SELECT ` + courseColumns + ` FROM courses` + where +
		` ORDER BY ` + page.OrderBy() +
		` LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)
	countQuery := `SELECT COUNT(*) FROM courses` + where

	args := append(w.Args(), page.PageSize, page.Offset())
	return selectQuery, countQuery, args
}

func (r *postgresRepository) Search(ctx context.Context, filter model.CourseFilter, page shared.PageRequest) ([]model.Course, int64, error) {
	selectQuery, countQuery, args := buildSearchQuery(filter, page)

	rows, err := r.pool.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]model.Course, 0, page.PageSize)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating courses: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	return courses, total, nil
}

func (r *postgresRepository) ListDeletedWithActiveChildren(ctx context.Context, limit int) ([]int64, error) {
	query := `
		SELECT c.id
		FROM courses c
		WHERE c.status = $1
		  AND (
		      EXISTS (SELECT 1 FROM chapters ch WHERE ch.course_id = c.id AND ch.status <> $1)
		   OR EXISTS (SELECT 1 FROM lessons l WHERE l.course_id = c.id AND l.status <> $1)
		  )
		ORDER BY c.id
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, shared.StatusDeleted, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted courses: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect course ids: %w", err)
	}
	return ids, nil
}

// Cache helper methods

func courseCacheKey(id int64) string {
	return courseCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, courseCacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("course_id", id).Msg("course cache invalidate failed")
	}
}
