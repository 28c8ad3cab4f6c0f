package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a row of the comments table.
type Comment struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	Content   string     `db:"content"`
	AuthorID  uuid.UUID  `db:"author_id"`
	PoemID    uuid.UUID  `db:"poem_id"`
}

// CommentFeedRow is a comment with its author and the viewer's like state.
type CommentFeedRow struct {
	Comment
	AuthorName  *string `db:"author_name"`
	AuthorImage *string `db:"author_image"`
	IsLiked     bool    `db:"is_liked"`
	Likes       int64   `db:"likes"`
}

// CommentDTO is the client projection of a comment row.
// swagger:model CommentDTO
type CommentDTO struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
	Content   string  `json:"content"`
	AuthorID  string  `json:"userId"`
	PoemID    string  `json:"poemId"`
}

// CommentFeedDTO is a comment listing item.
// swagger:model CommentFeedDTO
type CommentFeedDTO struct {
	ID        string    `json:"id"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt *string   `json:"updatedAt"`
	Content   string    `json:"content"`
	PoemID    string    `json:"poemId"`
	Author    AuthorDTO `json:"user"`
	Liked     bool      `json:"isLiked"`
	Likes     int64     `json:"likes"`
}

// CommentRequest creates a comment or updates its content.
// swagger:model CommentRequest
type CommentRequest struct {
	PoemID  *string `json:"poemId"`
	Content string  `json:"content" validate:"notblank"`
}
