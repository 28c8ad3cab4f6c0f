package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/models"
)

const topicColumns = `id, created_at, updated_at, name, color`

type TopicRepository struct {
	executor
}

func NewTopicRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TopicRepository {
	return &TopicRepository{executor{db: db, txGetter: txGetter}}
}

func (r *TopicRepository) Create(ctx context.Context, name, color string) (*models.Topic, error) {
	const query = `
		INSERT INTO topics (created_at, name, color)
		VALUES (NOW(), $1, $2)
		RETURNING ` + topicColumns

	var topic models.Topic
	if _, err := r.get(ctx, &topic, query, name, color); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepository) GetByID(ctx context.Context, id int) (*models.Topic, error) {
	const query = `SELECT ` + topicColumns + ` FROM topics WHERE id = $1`

	var topic models.Topic
	found, err := r.get(ctx, &topic, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &topic, nil
}

// Exists is used to check a poem's topic before writing the poem.
func (r *TopicRepository) Exists(ctx context.Context, id int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM topics WHERE id = $1)`

	var exists bool
	_, err := r.get(ctx, &exists, query, id)
	return exists, err
}

// Taken reports whether a topic other than exclude already uses name or color.
func (r *TopicRepository) Taken(ctx context.Context, name, color *string, exclude int) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM topics
			WHERE id <> $3
			  AND (($1::VARCHAR IS NOT NULL AND LOWER(name) = LOWER($1))
			    OR ($2::VARCHAR IS NOT NULL AND LOWER(color) = LOWER($2)))
		)
	`

	var taken bool
	_, err := r.get(ctx, &taken, query, name, color, exclude)
	return taken, err
}

func (r *TopicRepository) List(ctx context.Context, limit, offset int) ([]models.Topic, error) {
	const query = `
		SELECT ` + topicColumns + `
		FROM topics
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	var topics []models.Topic
	err := r.selectRows(ctx, &topics, query, limit, offset)
	return topics, err
}

// Update returns nil without error when the topic does not exist.
func (r *TopicRepository) Update(ctx context.Context, id int, name, color *string) (*models.Topic, error) {
	const query = `
		UPDATE topics SET
			name = COALESCE($2, name),
			color = COALESCE($3, color),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + topicColumns

	var topic models.Topic
	found, err := r.get(ctx, &topic, query, id, name, color)
	if err != nil || !found {
		return nil, err
	}
	return &topic, nil
}

// Delete fails with ErrForeignKey while poems still use the topic.
func (r *TopicRepository) Delete(ctx context.Context, id int) (bool, error) {
	const query = `DELETE FROM topics WHERE id = $1`

	n, err := r.exec(ctx, query, id)
	return n > 0, err
}
