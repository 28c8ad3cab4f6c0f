package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "created_at", "updated_at", "setup_at", "email", "password_hash", "display_name",
	"image_url", "bio", "date_of_birth", "gender", "device_token",
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "jane@poetree.art", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	user := &models.User{Email: "jane@poetree.art", PasswordHash: "hash"}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &models.User{Email: "jane@poetree.art", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	id := uuid.New()
	now := time.Now().UTC()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(id.String(), now, now, nil, "jane@poetree.art", "hash", "Jane", nil, nil, nil, int64(1), nil))

		user, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "Jane", *user.DisplayName)
		assert.Equal(t, 1, *user.Gender)
		assert.Nil(t, user.SetupAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_EmailTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	self := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)")).
		WithArgs("jane@poetree.art", self).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.EmailTaken(context.Background(), "jane@poetree.art", self)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserRepository_Update_MarksSetup(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("setup_at = CASE WHEN $9::BOOLEAN THEN COALESCE(setup_at, NOW())")).
		WithArgs(id, nil, "Jane", nil, "bio", sqlmock.AnyArg(), int64(0), nil, true).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(id.String(), now, now, now, "jane@poetree.art", "hash", "Jane", nil, "bio", now, int64(0), nil))

	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	user, err := repo.Update(context.Background(), id, models.UserUpdate{
		DisplayName: ptr("Jane"),
		Bio:         ptr("bio"),
		DateOfBirth: &dob,
		Gender:      ptr(0),
		MarkSetup:   true,
	})

	require.NoError(t, err)
	require.NotNil(t, user.SetupAt)
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	viewer := uuid.New()
	other := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("display_name ILIKE $2 OR email ILIKE $2")).
		WithArgs(viewer, "%jan%", 21, 0).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(other.String(), now, now, now, "jane@poetree.art", "hash", "Jane", nil, nil, nil, nil, nil))

	users, err := repo.Search(context.Background(), viewer, ptr("jan"), 21, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, other, users[0].ID)
}
