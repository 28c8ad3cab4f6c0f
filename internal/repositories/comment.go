package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/models"
)

const commentColumns = `id, created_at, updated_at, content, author_id, poem_id`

type CommentRepository struct {
	executor
}

func NewCommentRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentRepository {
	return &CommentRepository{executor{db: db, txGetter: txGetter}}
}

// Create fails with ErrForeignKey when the poem is gone.
func (r *CommentRepository) Create(ctx context.Context, authorID, poemID uuid.UUID, content string) (*models.Comment, error) {
	const query = `
		INSERT INTO comments (id, created_at, content, author_id, poem_id)
		VALUES ($1, NOW(), $2, $3, $4)
		RETURNING ` + commentColumns

	var comment models.Comment
	if _, err := r.get(ctx, &comment, query, uuid.New(), content, authorID, poemID); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	const query = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	var comment models.Comment
	found, err := r.get(ctx, &comment, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	const query = `
		UPDATE comments SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + commentColumns

	var comment models.Comment
	found, err := r.get(ctx, &comment, query, id, content)
	if err != nil || !found {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM comments WHERE id = $1`

	n, err := r.exec(ctx, query, id)
	return n > 0, err
}
