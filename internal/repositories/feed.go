package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/models"
)

// Every flag and count is its own correlated sub-query scoped to one poem, so the totals
// stay exact no matter how many engagement rows exist.
const poemFeedSelect = `
	SELECT p.id, p.created_at, p.updated_at, p.edited_at, p.title, p.content, p.content_html,
		p.author_id, p.topic_id,
		u.display_name AS author_name,
		u.image_url AS author_image,
		t.name AS topic_name,
		t.color AS topic_color,
		EXISTS (SELECT 1 FROM poem_reads x WHERE x.poem_id = p.id AND x.user_id = $1) AS is_read,
		EXISTS (SELECT 1 FROM poem_likes x WHERE x.poem_id = p.id AND x.user_id = $1) AS is_liked,
		EXISTS (SELECT 1 FROM poem_bookmarks x WHERE x.poem_id = p.id AND x.user_id = $1) AS is_bookmarked,
		EXISTS (SELECT 1 FROM comments x WHERE x.poem_id = p.id AND x.author_id = $1) AS is_commented,
		(SELECT COUNT(*) FROM poem_reads x WHERE x.poem_id = p.id) AS reads,
		(SELECT COUNT(*) FROM poem_likes x WHERE x.poem_id = p.id) AS likes,
		(SELECT COUNT(*) FROM poem_bookmarks x WHERE x.poem_id = p.id) AS bookmarks,
		(SELECT COUNT(*) FROM comments x WHERE x.poem_id = p.id) AS comments
	FROM poems p
	JOIN users u ON u.id = p.author_id
	JOIN topics t ON t.id = p.topic_id
`

const commentFeedSelect = `
	SELECT c.id, c.created_at, c.updated_at, c.content, c.author_id, c.poem_id,
		u.display_name AS author_name,
		u.image_url AS author_image,
		EXISTS (SELECT 1 FROM comment_likes x WHERE x.comment_id = c.id AND x.user_id = $1) AS is_liked,
		(SELECT COUNT(*) FROM comment_likes x WHERE x.comment_id = c.id) AS likes
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

// FeedRepository runs the enriched, viewer-scoped reads of poems and comments.
type FeedRepository struct {
	executor
}

func NewFeedRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FeedRepository {
	return &FeedRepository{executor{db: db, txGetter: txGetter}}
}

// ListPoems returns one page of the feed, newest first.
func (r *FeedRepository) ListPoems(ctx context.Context, f models.FeedFilter) ([]models.PoemFeedRow, error) {
	const query = poemFeedSelect + `
		WHERE ($2::TEXT IS NULL OR p.title ILIKE $2 OR p.content ILIKE $2)
		  AND ($3::INT IS NULL OR p.topic_id = $3)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $4 OFFSET $5
	`

	var rows []models.PoemFeedRow
	err := r.selectRows(ctx, &rows, query, f.ViewerID, containsPattern(f.Query), f.TopicID, f.Limit, f.Offset)
	return rows, err
}

// GetPoem returns nil without error when the poem does not exist.
func (r *FeedRepository) GetPoem(ctx context.Context, viewer, id uuid.UUID) (*models.PoemFeedRow, error) {
	const query = poemFeedSelect + `WHERE p.id = $2`

	var row models.PoemFeedRow
	found, err := r.get(ctx, &row, query, viewer, id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

// ListComments returns one page of a poem's comments, newest first.
func (r *FeedRepository) ListComments(ctx context.Context, viewer, poemID uuid.UUID, limit, offset int) ([]models.CommentFeedRow, error) {
	const query = commentFeedSelect + `
		WHERE c.poem_id = $2
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $3 OFFSET $4
	`

	var rows []models.CommentFeedRow
	err := r.selectRows(ctx, &rows, query, viewer, poemID, limit, offset)
	return rows, err
}

func (r *FeedRepository) GetComment(ctx context.Context, viewer, id uuid.UUID) (*models.CommentFeedRow, error) {
	const query = commentFeedSelect + `WHERE c.id = $2`

	var row models.CommentFeedRow
	found, err := r.get(ctx, &row, query, viewer, id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}
