// Package mappers converts storage rows into the DTOs returned to clients.
package mappers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/validation"
)

var (
	ErrNilRow      = errors.New("mappers: nil row")
	ErrMissingID   = errors.New("mappers: row without id")
	ErrMissingTime = errors.New("mappers: row without created_at")
)

// FormatTime renders timestamps as RFC3339 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validation.DateLayout)
	return &s
}

func checkRow(id uuid.UUID, createdAt time.Time) error {
	if id == uuid.Nil {
		return ErrMissingID
	}
	if createdAt.IsZero() {
		return fmt.Errorf("%w: %s", ErrMissingTime, id)
	}
	return nil
}

// User maps a user row including the email address. Use it only for the account owner.
func User(u *models.User) (*models.UserDTO, error) {
	if u == nil {
		return nil, ErrNilRow
	}
	if err := checkRow(u.ID, u.CreatedAt); err != nil {
		return nil, err
	}
	return &models.UserDTO{
		ID:          u.ID.String(),
		CreatedAt:   FormatTime(u.CreatedAt),
		UpdatedAt:   FormatTime(u.UpdatedAt),
		SetupAt:     formatTimePtr(u.SetupAt),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		ImageURL:    u.ImageURL,
		Bio:         u.Bio,
		DateOfBirth: formatDatePtr(u.DateOfBirth),
		Gender:      u.Gender,
	}, nil
}

// UserDetails maps a user with totals. The email is dropped unless owner is set.
func UserDetails(d *models.UserDetails, owner bool) (*models.UserDetailsDTO, error) {
	if d == nil {
		return nil, ErrNilRow
	}
	u, err := User(&d.User)
	if err != nil {
		return nil, err
	}
	if !owner {
		u.Email = ""
	}
	return &models.UserDetailsDTO{
		UserDTO:   *u,
		Poems:     d.Poems,
		Reads:     d.Reads,
		Likes:     d.Likes,
		Bookmarks: d.Bookmarks,
	}, nil
}

func UserMinimal(u models.User) (models.UserMinimalDTO, error) {
	if err := checkRow(u.ID, u.CreatedAt); err != nil {
		return models.UserMinimalDTO{}, err
	}
	return models.UserMinimalDTO{
		ID:          u.ID.String(),
		CreatedAt:   FormatTime(u.CreatedAt),
		DisplayName: u.DisplayName,
		ImageURL:    u.ImageURL,
	}, nil
}

func Topic(t models.Topic) (models.TopicDTO, error) {
	if t.ID <= 0 {
		return models.TopicDTO{}, ErrMissingID
	}
	if t.CreatedAt.IsZero() {
		return models.TopicDTO{}, fmt.Errorf("%w: topic %d", ErrMissingTime, t.ID)
	}
	return models.TopicDTO{
		ID:        t.ID,
		CreatedAt: FormatTime(t.CreatedAt),
		UpdatedAt: formatTimePtr(t.UpdatedAt),
		Name:      t.Name,
		Color:     t.Color,
	}, nil
}

func Poem(p *models.Poem) (*models.PoemDTO, error) {
	if p == nil {
		return nil, ErrNilRow
	}
	if err := checkRow(p.ID, p.CreatedAt); err != nil {
		return nil, err
	}
	return &models.PoemDTO{
		ID:        p.ID.String(),
		CreatedAt: FormatTime(p.CreatedAt),
		UpdatedAt: FormatTime(p.UpdatedAt),
		EditedAt:  formatTimePtr(p.EditedAt),
		Title:     p.Title,
		Content:   p.Content,
		HTML:      p.ContentHTML,
		AuthorID:  p.AuthorID.String(),
		TopicID:   p.TopicID,
	}, nil
}

// PoemFeed maps an aggregated feed row.
func PoemFeed(r models.PoemFeedRow) (models.PoemFeedDTO, error) {
	if err := checkRow(r.ID, r.CreatedAt); err != nil {
		return models.PoemFeedDTO{}, err
	}
	return models.PoemFeedDTO{
		ID:        r.ID.String(),
		CreatedAt: FormatTime(r.CreatedAt),
		UpdatedAt: FormatTime(r.UpdatedAt),
		EditedAt:  formatTimePtr(r.EditedAt),
		Title:     r.Title,
		Content:   r.Content,
		HTML:      r.ContentHTML,
		Author: models.AuthorDTO{
			ID:    r.AuthorID.String(),
			Name:  r.AuthorName,
			Image: r.AuthorImage,
		},
		Topic: models.TopicSummaryDTO{
			ID:    r.TopicID,
			Name:  r.TopicName,
			Color: r.TopicColor,
		},
		Read:       r.IsRead,
		Liked:      r.IsLiked,
		Bookmarked: r.IsBookmarked,
		Commented:  r.IsCommented,
		Reads:      r.Reads,
		Likes:      r.Likes,
		Bookmarks:  r.Bookmarks,
		Comments:   r.Comments,
	}, nil
}

func Comment(c *models.Comment) (*models.CommentDTO, error) {
	if c == nil {
		return nil, ErrNilRow
	}
	if err := checkRow(c.ID, c.CreatedAt); err != nil {
		return nil, err
	}
	return &models.CommentDTO{
		ID:        c.ID.String(),
		CreatedAt: FormatTime(c.CreatedAt),
		UpdatedAt: formatTimePtr(c.UpdatedAt),
		Content:   c.Content,
		AuthorID:  c.AuthorID.String(),
		PoemID:    c.PoemID.String(),
	}, nil
}

func CommentFeed(r models.CommentFeedRow) (models.CommentFeedDTO, error) {
	if err := checkRow(r.ID, r.CreatedAt); err != nil {
		return models.CommentFeedDTO{}, err
	}
	return models.CommentFeedDTO{
		ID:        r.ID.String(),
		CreatedAt: FormatTime(r.CreatedAt),
		UpdatedAt: formatTimePtr(r.UpdatedAt),
		Content:   r.Content,
		PoemID:    r.PoemID.String(),
		Author: models.AuthorDTO{
			ID:    r.AuthorID.String(),
			Name:  r.AuthorName,
			Image: r.AuthorImage,
		},
		Liked: r.IsLiked,
		Likes: r.Likes,
	}, nil
}
