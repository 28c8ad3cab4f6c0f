package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EngagementRepository records likes, bookmarks and reads. Each table is unique on
// (target, user), so an insert either creates the single row or does nothing.
type EngagementRepository struct {
	executor
}

func NewEngagementRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EngagementRepository {
	return &EngagementRepository{executor{db: db, txGetter: txGetter}}
}

func (r *EngagementRepository) LikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO poem_likes (id, created_at, poem_id, user_id)
		VALUES ($1, NOW(), $2, $3)
		ON CONFLICT (poem_id, user_id) DO NOTHING
	`
	return r.insert(ctx, query, poemID, userID)
}

func (r *EngagementRepository) UnlikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	const query = `DELETE FROM poem_likes WHERE poem_id = $1 AND user_id = $2`
	return r.remove(ctx, query, poemID, userID)
}

func (r *EngagementRepository) BookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO poem_bookmarks (id, created_at, poem_id, user_id)
		VALUES ($1, NOW(), $2, $3)
		ON CONFLICT (poem_id, user_id) DO NOTHING
	`
	return r.insert(ctx, query, poemID, userID)
}

func (r *EngagementRepository) UnbookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	const query = `DELETE FROM poem_bookmarks WHERE poem_id = $1 AND user_id = $2`
	return r.remove(ctx, query, poemID, userID)
}

func (r *EngagementRepository) MarkPoemRead(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO poem_reads (id, created_at, poem_id, user_id)
		VALUES ($1, NOW(), $2, $3)
		ON CONFLICT (poem_id, user_id) DO NOTHING
	`
	return r.insert(ctx, query, poemID, userID)
}

func (r *EngagementRepository) LikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO comment_likes (id, created_at, comment_id, user_id)
		VALUES ($1, NOW(), $2, $3)
		ON CONFLICT (comment_id, user_id) DO NOTHING
	`
	return r.insert(ctx, query, commentID, userID)
}

func (r *EngagementRepository) UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	const query = `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`
	return r.remove(ctx, query, commentID, userID)
}

// insert reports true when the row was created by this call.
func (r *EngagementRepository) insert(ctx context.Context, query string, targetID, userID uuid.UUID) (bool, error) {
	n, err := r.exec(ctx, query, uuid.New(), targetID, userID)
	return n > 0, err
}

// remove reports true when a row was deleted.
func (r *EngagementRepository) remove(ctx context.Context, query string, targetID, userID uuid.UUID) (bool, error) {
	n, err := r.exec(ctx, query, targetID, userID)
	return n > 0, err
}
