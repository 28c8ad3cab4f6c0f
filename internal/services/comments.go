package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/mappers"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
)

const (
	msgCommentNotFound = "comment not found"
	msgCommentNotYours = "this comment is not yours"
)

type CommentService struct {
	comments  CommentRepository
	poems     PoemRepository
	feed      FeedRepository
	publisher EventPublisher
	tx        Transactor
}

func NewCommentService(comments CommentRepository, poems PoemRepository, feed FeedRepository, publisher EventPublisher, tx Transactor) *CommentService {
	return &CommentService{comments: comments, poems: poems, feed: feed, publisher: publisher, tx: tx}
}

func (svc *CommentService) Create(ctx context.Context, userID uuid.UUID, req models.CommentRequest) (*models.CommentDTO, error) {
	if blank(req.PoemID) {
		return nil, validationFailed("poemId cannot be blank")
	}
	poemID, err := uuid.Parse(strings.TrimSpace(*req.PoemID))
	if err != nil {
		return nil, validationFailed("invalid poemId")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	var comment *models.Comment
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := svc.poems.Exists(ctx, poemID)
		if err != nil {
			logger.Log.Errorw("failed to check poem", "poem_id", poemID, "error", err)
			return err
		}
		if !exists {
			return notFound(msgPoemNotFound)
		}

		comment, err = svc.comments.Create(ctx, userID, poemID, req.Content)
		if err != nil {
			if errors.Is(err, repositories.ErrForeignKey) {
				return notFound(msgPoemNotFound)
			}
			logger.Log.Errorw("failed to create comment", "poem_id", poemID, "user_id", userID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, svc.publisher, newEvent(models.EventCommentCreated, userID, poemID))
	return mapComment(comment)
}

func (svc *CommentService) Get(ctx context.Context, viewer, id uuid.UUID) (*models.CommentFeedDTO, error) {
	row, err := svc.feed.GetComment(ctx, viewer, id)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, notFound(msgCommentNotFound)
	}
	dto, err := mappers.CommentFeed(*row)
	if err != nil {
		logger.Log.Errorw("failed to map comment", "comment_id", id, "error", err)
		return nil, err
	}
	return &dto, nil
}

func (svc *CommentService) Update(ctx context.Context, userID, id uuid.UUID, req models.CommentRequest) (*models.CommentDTO, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var comment *models.Comment
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkOwner(ctx, userID, id); err != nil {
			return err
		}

		var err error
		comment, err = svc.comments.Update(ctx, id, req.Content)
		if err != nil {
			logger.Log.Errorw("failed to update comment", "comment_id", id, "error", err)
			return err
		}
		if comment == nil {
			return notFound(msgCommentNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapComment(comment)
}

func (svc *CommentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkOwner(ctx, userID, id); err != nil {
			return err
		}
		if _, err := svc.comments.Delete(ctx, id); err != nil {
			logger.Log.Errorw("failed to delete comment", "comment_id", id, "error", err)
			return err
		}
		return nil
	})
}

func (svc *CommentService) checkOwner(ctx context.Context, userID, id uuid.UUID) error {
	comment, err := svc.comments.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", id, "error", err)
		return err
	}
	if comment == nil {
		return notFound(msgCommentNotFound)
	}
	if comment.AuthorID != userID {
		logger.Log.Infow("comment ownership check failed", "comment_id", id, "user_id", userID)
		return forbidden(msgCommentNotYours)
	}
	return nil
}

func mapComment(comment *models.Comment) (*models.CommentDTO, error) {
	dto, err := mappers.Comment(comment)
	if err != nil {
		logger.Log.Errorw("failed to map comment", "error", err)
		return nil, err
	}
	return dto, nil
}
