package models

// Engagement event types published to Kafka.
const (
	EventPoemLiked      = "poem_liked"
	EventPoemBookmarked = "poem_bookmarked"
	EventPoemRead       = "poem_read"
	EventCommentCreated = "comment_created"
	EventCommentLiked   = "comment_liked"
)

// EngagementEvent is published after an engagement row is created.
type EngagementEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	TargetID  string `json:"target_id"`
	Timestamp int64  `json:"timestamp"`
}
