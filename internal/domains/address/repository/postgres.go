package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"course-admin-backend/internal/domains/address/model"
	"course-admin-backend/pkg/database"
)

// Repository - load địa chỉ theo batch user id (tránh N+1 khi search user)
type Repository interface {
	ListByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]model.Address, error)
}

type postgresRepository struct {
	pool database.Querier
}

func NewPostgresRepository(pool database.Querier) Repository {
	return &postgresRepository{pool: pool}
}

// ListByUserIDs - default address đứng đầu mỗi nhóm
func (r *postgresRepository) ListByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]model.Address, error) {
	result := make(map[int64][]model.Address, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, user_id, street, ward, district, city, is_default
		FROM addresses
		WHERE user_id = ANY($1)
		ORDER BY user_id, is_default DESC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, pq.Int64Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Address
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Street,
			&a.Ward,
			&a.District,
			&a.City,
			&a.IsDefault,
		); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		result[a.UserID] = append(result[a.UserID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating addresses: %w", err)
	}

	return result, nil
}
