package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		setup_at TIMESTAMPTZ,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(128) NOT NULL,
		display_name VARCHAR(50),
		image_url TEXT,
		bio VARCHAR(125),
		date_of_birth DATE,
		gender SMALLINT CHECK (gender IN (0, 1)),
		device_token TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		token_digest VARCHAR(64) NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS topics (
		id SERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		name VARCHAR(50) NOT NULL UNIQUE,
		color CHAR(7) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS poems (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		edited_at TIMESTAMPTZ,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		content_html TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		topic_id INT NOT NULL REFERENCES topics (id) ON DELETE RESTRICT
	)`,
	`CREATE INDEX IF NOT EXISTS poems_created_at_idx ON poems (created_at DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		content TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		poem_id UUID NOT NULL REFERENCES poems (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS comments_poem_idx ON comments (poem_id, created_at DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS poem_likes (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		poem_id UUID NOT NULL REFERENCES poems (id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		UNIQUE (poem_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS poem_bookmarks (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		poem_id UUID NOT NULL REFERENCES poems (id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		UNIQUE (poem_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS poem_reads (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		poem_id UUID NOT NULL REFERENCES poems (id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		UNIQUE (poem_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comment_likes (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		comment_id UUID NOT NULL REFERENCES comments (id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		UNIQUE (comment_id, user_id)
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}
