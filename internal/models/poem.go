package models

import (
	"time"

	"github.com/google/uuid"
)

// Poem represents a row of the poems table.
type Poem struct {
	ID          uuid.UUID  `db:"id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	EditedAt    *time.Time `db:"edited_at"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	ContentHTML string     `db:"content_html"`
	AuthorID    uuid.UUID  `db:"author_id"`
	TopicID     int        `db:"topic_id"`
}

// PoemFeedRow is a poem enriched with author and topic display fields and with the
// viewer's engagement flags and the poem's engagement totals.
type PoemFeedRow struct {
	Poem
	AuthorName   *string `db:"author_name"`
	AuthorImage  *string `db:"author_image"`
	TopicName    string  `db:"topic_name"`
	TopicColor   string  `db:"topic_color"`
	IsRead       bool    `db:"is_read"`
	IsLiked      bool    `db:"is_liked"`
	IsBookmarked bool    `db:"is_bookmarked"`
	IsCommented  bool    `db:"is_commented"`
	Reads        int64   `db:"reads"`
	Likes        int64   `db:"likes"`
	Bookmarks    int64   `db:"bookmarks"`
	Comments     int64   `db:"comments"`
}

// FeedFilter selects and pages the poem feed for a viewer.
type FeedFilter struct {
	ViewerID uuid.UUID
	Query    *string // case-insensitive substring of title or content
	TopicID  *int
	Limit    int
	Offset   int
}

// PoemInput is the validated content of a create or update.
type PoemInput struct {
	Title       *string
	Content     *string
	ContentHTML *string
	TopicID     *int
}

// PoemDTO is the client projection of a poem row.
// swagger:model PoemDTO
type PoemDTO struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	EditedAt  *string `json:"editedAt"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	HTML      string  `json:"html"`
	AuthorID  string  `json:"userId"`
	TopicID   int     `json:"topic"`
}

// AuthorDTO is the author summary embedded in feed items.
type AuthorDTO struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// TopicSummaryDTO is the topic summary embedded in feed items.
type TopicSummaryDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PoemFeedDTO is a feed item.
// swagger:model PoemFeedDTO
type PoemFeedDTO struct {
	ID         string          `json:"id"`
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
	EditedAt   *string         `json:"editedAt"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	HTML       string          `json:"html"`
	Author     AuthorDTO       `json:"user"`
	Topic      TopicSummaryDTO `json:"topic"`
	Read       bool            `json:"isRead"`
	Liked      bool            `json:"isLiked"`
	Bookmarked bool            `json:"isBookmarked"`
	Commented  bool            `json:"isCommented"`
	Reads      int64           `json:"reads"`
	Likes      int64           `json:"likes"`
	Bookmarks  int64           `json:"bookmarks"`
	Comments   int64           `json:"comments"`
}

// PoemRequest creates or partially updates a poem.
// swagger:model PoemRequest
type PoemRequest struct {
	// example: Rain
	Title *string `json:"title"`
	// example: It rained all day
	Content *string `json:"content"`
	// example: <p>It rained all day</p>
	HTML *string `json:"html"`
	// example: 1
	Topic *int `json:"topic"`
}
