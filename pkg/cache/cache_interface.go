package cache

import (
	"context"
	"time"
)

// Cache - key/value cache với giá trị JSON, repository dùng cho read-through theo id.
// Lỗi cache không bao giờ được làm fail request: caller chỉ log và đọc DB.
type Cache interface {
	// Get trả về found = false khi miss; dest chỉ được ghi khi hit
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete bỏ qua key không tồn tại
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
	Close() error
}
