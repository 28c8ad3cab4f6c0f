package services

//go:generate mockgen -source=services.go -destination=services_mock.go -package=services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/jwt"
	"github.com/sbilibin2017/poetree/internal/models"
)

// UserRepository defines storage operations on accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*models.UserDetails, error)
	Search(ctx context.Context, viewer uuid.UUID, q *string, limit, offset int) ([]models.User, error)
}

// TokenRepository stores digests of refresh tokens.
type TokenRepository interface {
	Save(ctx context.Context, userID uuid.UUID, digest string, expiresAt time.Time) error
	Consume(ctx context.Context, userID uuid.UUID, digest string) (bool, error)
	DeleteExpired(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

// TokenIssuer signs and verifies JWTs.
type TokenIssuer interface {
	GeneratePair(ctx context.Context, userID uuid.UUID) (*jwt.Pair, error)
	GetRefreshUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// PasswordHasher hashes passwords and refresh tokens.
type PasswordHasher interface {
	Hash(password string) string
	Verify(password, stored string) bool
	Digest(token string) string
}

type TopicRepository interface {
	Create(ctx context.Context, name, color string) (*models.Topic, error)
	GetByID(ctx context.Context, id int) (*models.Topic, error)
	Exists(ctx context.Context, id int) (bool, error)
	Taken(ctx context.Context, name, color *string, exclude int) (bool, error)
	List(ctx context.Context, limit, offset int) ([]models.Topic, error)
	Update(ctx context.Context, id int, name, color *string) (*models.Topic, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// TopicCache is a read-through cache in front of TopicRepository.
type TopicCache interface {
	Get(ctx context.Context, id int) (*models.Topic, error)
	Set(ctx context.Context, topic *models.Topic) error
	Invalidate(ctx context.Context, id int) error
}

type PoemRepository interface {
	Create(ctx context.Context, poem *models.Poem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Poem, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, in models.PoemInput) (*models.Poem, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// FeedRepository runs the enriched reads scoped to a viewer.
type FeedRepository interface {
	ListPoems(ctx context.Context, f models.FeedFilter) ([]models.PoemFeedRow, error)
	GetPoem(ctx context.Context, viewer, id uuid.UUID) (*models.PoemFeedRow, error)
	ListComments(ctx context.Context, viewer, poemID uuid.UUID, limit, offset int) ([]models.CommentFeedRow, error)
	GetComment(ctx context.Context, viewer, id uuid.UUID) (*models.CommentFeedRow, error)
}

type CommentRepository interface {
	Create(ctx context.Context, authorID, poemID uuid.UUID, content string) (*models.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// EngagementRepository records likes, bookmarks and reads. Each call reports whether a row
// was created or removed.
type EngagementRepository interface {
	LikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	UnlikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	BookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	UnbookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	MarkPoemRead(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	LikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
	UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher publishes engagement events. Publishing never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, event models.EngagementEvent)
}

func newEvent(eventType string, userID, targetID uuid.UUID) models.EngagementEvent {
	return models.EngagementEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		TargetID:  targetID.String(),
		Timestamp: time.Now().Unix(),
	}
}

func publish(ctx context.Context, p EventPublisher, event models.EngagementEvent) {
	if p == nil {
		return
	}
	p.Publish(ctx, event)
}

// blank reports whether s is nil or only whitespace.
func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// trimmed returns nil for blank values and the trimmed value otherwise.
func trimmed(s *string) *string {
	if blank(s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
