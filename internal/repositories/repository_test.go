package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

func ptr[T any](v T) *T { return &v }

func TestTranslate(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "poems_topic_id_fkey"}, ErrForeignKey},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, nil},
		{"plain error", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			if tt.want == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
	assert.NoError(t, translate(nil))
}

func TestContainsPattern(t *testing.T) {
	assert.Nil(t, containsPattern(nil))
	assert.Nil(t, containsPattern(ptr("   ")))
	assert.Equal(t, "%rain%", *containsPattern(ptr(" rain ")))
	assert.Equal(t, `%100\% \_sure\\%`, *containsPattern(ptr(`100% _sure\`)))
}
