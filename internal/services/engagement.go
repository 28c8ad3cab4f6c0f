package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
)

// EngagementService records likes, bookmarks and reads. Actions are idempotent: the returned
// bool is true only when this call changed anything.
type EngagementService struct {
	engagements EngagementRepository
	poems       PoemRepository
	comments    CommentRepository
	publisher   EventPublisher
	tx          Transactor
}

func NewEngagementService(
	engagements EngagementRepository,
	poems PoemRepository,
	comments CommentRepository,
	publisher EventPublisher,
	tx Transactor,
) *EngagementService {
	return &EngagementService{
		engagements: engagements,
		poems:       poems,
		comments:    comments,
		publisher:   publisher,
		tx:          tx,
	}
}

type engageFunc func(ctx context.Context, userID, targetID uuid.UUID) (bool, error)

func (svc *EngagementService) LikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	return svc.onPoem(ctx, "like poem", svc.engagements.LikePoem, userID, poemID, models.EventPoemLiked)
}

func (svc *EngagementService) UnlikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	return svc.onPoem(ctx, "unlike poem", svc.engagements.UnlikePoem, userID, poemID, "")
}

func (svc *EngagementService) BookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	return svc.onPoem(ctx, "bookmark poem", svc.engagements.BookmarkPoem, userID, poemID, models.EventPoemBookmarked)
}

func (svc *EngagementService) UnbookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	return svc.onPoem(ctx, "unbookmark poem", svc.engagements.UnbookmarkPoem, userID, poemID, "")
}

func (svc *EngagementService) MarkPoemRead(ctx context.Context, userID, poemID uuid.UUID) (bool, error) {
	return svc.onPoem(ctx, "mark poem read", svc.engagements.MarkPoemRead, userID, poemID, models.EventPoemRead)
}

func (svc *EngagementService) LikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	return svc.onComment(ctx, "like comment", svc.engagements.LikeComment, userID, commentID, models.EventCommentLiked)
}

func (svc *EngagementService) UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	return svc.onComment(ctx, "unlike comment", svc.engagements.UnlikeComment, userID, commentID, "")
}

func (svc *EngagementService) onPoem(ctx context.Context, action string, fn engageFunc, userID, poemID uuid.UUID, eventType string) (bool, error) {
	exists := func(ctx context.Context) (bool, error) {
		return svc.poems.Exists(ctx, poemID)
	}
	return svc.engage(ctx, action, exists, msgPoemNotFound, fn, userID, poemID, eventType)
}

func (svc *EngagementService) onComment(ctx context.Context, action string, fn engageFunc, userID, commentID uuid.UUID, eventType string) (bool, error) {
	exists := func(ctx context.Context) (bool, error) {
		comment, err := svc.comments.GetByID(ctx, commentID)
		return comment != nil, err
	}
	return svc.engage(ctx, action, exists, msgCommentNotFound, fn, userID, commentID, eventType)
}

// engage checks the target, applies fn and publishes eventType once the row is committed.
func (svc *EngagementService) engage(
	ctx context.Context,
	action string,
	exists func(ctx context.Context) (bool, error),
	missing string,
	fn engageFunc,
	userID, targetID uuid.UUID,
	eventType string,
) (bool, error) {
	var changed bool
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := exists(ctx)
		if err != nil {
			logger.Log.Errorw("failed to check target", "action", action, "target_id", targetID, "error", err)
			return err
		}
		if !ok {
			return notFound(missing)
		}

		changed, err = fn(ctx, userID, targetID)
		if err != nil {
			if errors.Is(err, repositories.ErrForeignKey) {
				return notFound(missing)
			}
			logger.Log.Errorw("failed to "+action, "user_id", userID, "target_id", targetID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed && eventType != "" {
		publish(ctx, svc.publisher, newEvent(eventType, userID, targetID))
	}
	return changed, nil
}
