package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-admin-backend/internal/domains/user/model"
	"course-admin-backend/internal/shared"
)

var userRowColumns = []string{"id", "username", "password", "name", "nickname", "status", "created_date", "updated_date"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresRepository(mock)
}

func testUser() *model.User {
	return &model.User{Username: "an", Password: "$2a$04$hash", Name: "Nguyen Van An", Status: "active"}
}

func TestPostgresRepository_Create(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("returns inserted row", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		u := testUser()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users AS u")).
			WithArgs(u.Username, u.Password, u.Name, (*string)(nil), u.Status).
			WillReturnRows(pgxmock.NewRows(userRowColumns).
				AddRow(int64(1), "an", u.Password, u.Name, (*string)(nil), "active", now, now))

		created, err := repo.Create(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, now, created.CreatedDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to username exists", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		u := testUser()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users AS u")).
			WithArgs(u.Username, u.Password, u.Name, (*string)(nil), u.Status).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		_, err := repo.Create(context.Background(), u)

		assert.ErrorIs(t, err, model.ErrUsernameExists)
		assert.Equal(t, 409, model.ToHTTPStatus(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_GetByID_WithRegistrationCount(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users u WHERE u.id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(append(userRowColumns, "num_course_register")).
			AddRow(int64(7), "an", "$2a$04$hash", "Nguyen Van An", (*string)(nil), "active", now, now, 4))

	u, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 4, u.NumCourseRegister)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Update(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"missing row", pgx.ErrNoRows, model.ErrUserNotFound},
		{"username taken", &pgconn.PgError{Code: "23505"}, model.ErrUsernameExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			u := testUser()
			u.ID = 9

			mock.ExpectQuery(regexp.QuoteMeta("UPDATE users AS u")).
				WithArgs(u.Username, u.Password, u.Name, u.Status, int64(9)).
				WillReturnError(tt.dbErr)

			_, err := repo.Update(context.Background(), u)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_UpdateStatus_NoRowsIsNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = $1")).
		WithArgs(shared.StatusDeleted, int64(12)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), 12, shared.StatusDeleted)

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Search(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	page := shared.PageRequest{Page: 0, PageSize: 10, SortColumn: "created_date"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM users u WHERE u.name ILIKE $1")).
		WithArgs("%an%", 10, 0).
		WillReturnRows(pgxmock.NewRows(append(userRowColumns, "num_course_register")).
			AddRow(int64(1), "an", "h", "Nguyen Van An", (*string)(nil), "active", now, now, 2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users u WHERE u.name ILIKE $1")).
		WithArgs("%an%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	users, total, err := repo.Search(context.Background(), model.UserFilter{Name: "an"}, page)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, 2, users[0].NumCourseRegister)
	assert.NoError(t, mock.ExpectationsWereMet())
}
