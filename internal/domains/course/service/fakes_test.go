package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"course-admin-backend/internal/domains/course/model"
	"course-admin-backend/internal/shared"
)

// fakeCourseRepo - in-memory RepositoryInterface, created_date tăng 1 phút mỗi lần Create
type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[int64]model.Course
	nextID  int64
	clock   time.Time

	writes      int
	searchErr   error
	lastPage    shared.PageRequest
	deletedKids []int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses: make(map[int64]model.Course),
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeCourseRepo) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	created := *c
	created.ID = r.nextID
	created.CreatedDate = r.clock
	created.UpdatedDate = r.clock
	r.courses[created.ID] = created
	r.writes++
	return &created, nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, model.ErrCourseNotFound
	}
	return &c, nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.courses[c.ID]
	if !ok {
		return nil, model.ErrCourseNotFound
	}
	updated := *c
	updated.CreatedDate = existing.CreatedDate
	updated.UpdatedDate = existing.UpdatedDate.Add(time.Second)
	r.courses[c.ID] = updated
	r.writes++
	return &updated, nil
}

func (r *fakeCourseRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.courses[id]
	if !ok {
		return model.ErrCourseNotFound
	}
	c.Status = status
	r.courses[id] = c
	r.writes++
	return nil
}

func (r *fakeCourseRepo) Search(ctx context.Context, f model.CourseFilter, page shared.PageRequest) ([]model.Course, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastPage = page
	if r.searchErr != nil {
		return nil, 0, r.searchErr
	}

	var matched []model.Course
	for _, c := range r.courses {
		if f.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Teacher != "" && !strings.Contains(strings.ToLower(c.Teacher), strings.ToLower(f.Teacher)) {
			continue
		}
		if f.CreatedFrom != nil && c.CreatedDate.Before(*f.CreatedFrom) {
			continue
		}
		if f.CreatedTo != nil && c.CreatedDate.After(*f.CreatedTo) {
			continue
		}
		matched = append(matched, c)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		var less bool
		switch page.SortColumn {
		case "name":
			less = a.Name < b.Name || (a.Name == b.Name && a.ID < b.ID)
		case "created_date":
			less = a.CreatedDate.Before(b.CreatedDate) || (a.CreatedDate.Equal(b.CreatedDate) && a.ID < b.ID)
		default:
			less = a.ID < b.ID
		}
		if page.SortDesc {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeCourseRepo) ListDeletedWithActiveChildren(ctx context.Context, limit int) ([]int64, error) {
	if len(r.deletedKids) > limit {
		return r.deletedKids[:limit], nil
	}
	return r.deletedKids, nil
}

type enqueuedTask struct {
	taskType string
	payload  interface{}
}

type fakeEnqueuer struct {
	tasks []enqueuedTask
	err   error
}

func (e *fakeEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}) error {
	if e.err != nil {
		return e.err
	}
	e.tasks = append(e.tasks, enqueuedTask{taskType: taskType, payload: payload})
	return nil
}

// fakeTx - chỉ Commit/Rollback được WithTransaction gọi
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	txs []*fakeTx
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{}
	d.txs = append(d.txs, tx)
	return tx, nil
}

type fakeChildDeleter struct {
	ids         map[int64][]int64
	err         error
	calls       []int64
	invalidated []int64
}

func (f *fakeChildDeleter) SoftDeleteByCourseID(ctx context.Context, tx pgx.Tx, courseID int64) ([]int64, error) {
	f.calls = append(f.calls, courseID)
	if f.err != nil {
		return nil, f.err
	}
	ids := f.ids[courseID]
	delete(f.ids, courseID)
	return ids, nil
}

func (f *fakeChildDeleter) InvalidateCache(ctx context.Context, ids ...int64) {
	f.invalidated = append(f.invalidated, ids...)
}
