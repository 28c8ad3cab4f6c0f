package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_Consume(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db, nil)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE user_id = $1 AND token_digest = $2 AND expires_at > NOW()")).
		WithArgs(userID, "digest").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens")).
		WithArgs(userID, "digest").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Consume(context.Background(), userID, "digest")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Consume(context.Background(), userID, "digest")
	require.NoError(t, err)
	assert.False(t, ok, "a token is redeemable once")
}

func TestTokenRepository_SaveWithinTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db, transaction.FromContext)
	userID := uuid.New()
	expires := time.Now().Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WithArgs(sqlmock.AnyArg(), userID, "digest", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE user_id = $1 AND expires_at <= NOW()")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := transaction.NewManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
		if err := repo.Save(ctx, userID, "digest", expires); err != nil {
			return err
		}
		n, err := repo.DeleteExpired(ctx, userID)
		assert.EqualValues(t, 2, n)
		return err
	})
	assert.NoError(t, err)
}

func TestTokenRepository_DeleteAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db, func(ctx context.Context) *sqlx.Tx { return nil })
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteAll(context.Background(), userID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
