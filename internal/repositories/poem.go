package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/models"
)

const poemColumns = `id, created_at, updated_at, edited_at, title, content, content_html, author_id, topic_id`

// PoemRepository writes poems. Enriched reads live in FeedRepository.
type PoemRepository struct {
	executor
}

func NewPoemRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PoemRepository {
	return &PoemRepository{executor{db: db, txGetter: txGetter}}
}

func (r *PoemRepository) Create(ctx context.Context, poem *models.Poem) error {
	const query = `
		INSERT INTO poems (id, created_at, updated_at, title, content, content_html, author_id, topic_id)
		VALUES ($1, NOW(), NOW(), $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	if poem.ID == uuid.Nil {
		poem.ID = uuid.New()
	}

	var stamps struct {
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	_, err := r.get(ctx, &stamps, query,
		poem.ID, poem.Title, poem.Content, poem.ContentHTML, poem.AuthorID, poem.TopicID,
	)
	if err != nil {
		return err
	}
	poem.CreatedAt = stamps.CreatedAt
	poem.UpdatedAt = stamps.UpdatedAt
	return nil
}

// GetByID returns nil without error when the poem does not exist.
func (r *PoemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Poem, error) {
	const query = `SELECT ` + poemColumns + ` FROM poems WHERE id = $1`

	var poem models.Poem
	found, err := r.get(ctx, &poem, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &poem, nil
}

func (r *PoemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM poems WHERE id = $1)`

	var exists bool
	_, err := r.get(ctx, &exists, query, id)
	return exists, err
}

// Update applies the non-nil fields of in and stamps edited_at.
func (r *PoemRepository) Update(ctx context.Context, id uuid.UUID, in models.PoemInput) (*models.Poem, error) {
	const query = `
		UPDATE poems SET
			title = COALESCE($2, title),
			content = COALESCE($3, content),
			content_html = COALESCE($4, content_html),
			topic_id = COALESCE($5::INT, topic_id),
			edited_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + poemColumns

	var poem models.Poem
	found, err := r.get(ctx, &poem, query, id, in.Title, in.Content, in.ContentHTML, in.TopicID)
	if err != nil || !found {
		return nil, err
	}
	return &poem, nil
}

func (r *PoemRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM poems WHERE id = $1`

	n, err := r.exec(ctx, query, id)
	return n > 0, err
}
