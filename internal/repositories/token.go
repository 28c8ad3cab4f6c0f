package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TokenRepository stores digests of issued refresh tokens.
type TokenRepository struct {
	executor
}

func NewTokenRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TokenRepository {
	return &TokenRepository{executor{db: db, txGetter: txGetter}}
}

func (r *TokenRepository) Save(ctx context.Context, userID uuid.UUID, digest string, expiresAt time.Time) error {
	const query = `
		INSERT INTO refresh_tokens (id, created_at, user_id, token_digest, expires_at)
		VALUES ($1, NOW(), $2, $3, $4)
	`
	_, err := r.exec(ctx, query, uuid.New(), userID, digest, expiresAt)
	return err
}

// Consume deletes an unexpired token of the user. It reports false when there was nothing to
// delete, so a token can be redeemed at most once.
func (r *TokenRepository) Consume(ctx context.Context, userID uuid.UUID, digest string) (bool, error) {
	const query = `
		DELETE FROM refresh_tokens
		WHERE user_id = $1 AND token_digest = $2 AND expires_at > NOW()
	`
	n, err := r.exec(ctx, query, userID, digest)
	return n > 0, err
}

func (r *TokenRepository) DeleteExpired(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE user_id = $1 AND expires_at <= NOW()`
	return r.exec(ctx, query, userID)
}

func (r *TokenRepository) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE user_id = $1`
	return r.exec(ctx, query, userID)
}
