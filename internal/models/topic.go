package models

import "time"

// Topic represents a row of the topics table.
type Topic struct {
	ID        int        `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
	Name      string     `db:"name" json:"name"`
	Color     string     `db:"color" json:"color"`
}

// TopicDTO is the client projection of a topic.
// swagger:model TopicDTO
type TopicDTO struct {
	ID        int     `json:"id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
}

// TopicRequest creates or updates a topic. On update either field may be omitted.
// swagger:model TopicRequest
type TopicRequest struct {
	// example: Love
	Name *string `json:"name" validate:"omitempty,max=50"`
	// example: #ff0066
	Color *string `json:"color" validate:"omitempty,len=7,hexcolor"`
}
