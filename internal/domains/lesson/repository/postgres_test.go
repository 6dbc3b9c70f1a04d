package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-admin-backend/internal/domains/lesson/model"
)

// memoryCache - cache.Cache trong bộ nhớ, lưu JSON giống RedisCache
type memoryCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func (m *memoryCache) Close() error { return nil }

func TestGetLessonByID_CacheHit(t *testing.T) {
	c := newMemoryCache()
	cached := model.Lesson{ID: 5, CourseID: 1, ChapterID: 2, Name: "Cached", Order: 3}
	require.NoError(t, c.Set(context.Background(), lessonCacheKey(5), cached, time.Minute))

	// pool nil: cache hit không được chạm tới database
	repo := NewPostgresRepository(nil, c, time.Minute)

	got, err := repo.GetLessonByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cached.ID, got.ID)
	assert.Equal(t, cached.Name, got.Name)
	assert.Equal(t, cached.Order, got.Order)
}

func TestInvalidateCache(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, c.Set(ctx, lessonCacheKey(id), model.Lesson{ID: id}, time.Minute))
	}
	repo := NewPostgresRepository(nil, c, time.Minute)

	repo.InvalidateCache(ctx, 1, 3)

	assert.Equal(t, []string{"lesson:1", "lesson:3"}, c.deleted)
	assert.Contains(t, c.data, "lesson:2")
	assert.NotContains(t, c.data, "lesson:1")

	repo.InvalidateCache(ctx)
	assert.Len(t, c.deleted, 2)
}

func TestInvalidateCache_NilCache(t *testing.T) {
	repo := NewPostgresRepository(nil, nil, time.Minute)
	assert.NotPanics(t, func() { repo.InvalidateCache(context.Background(), 1) })
}
