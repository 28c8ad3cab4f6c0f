package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/mappers"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
)

const (
	msgPoemNotFound = "poem not found"
	msgPoemNotYours = "this poem is not yours"
)

// PoemService manages poems and serves the feed.
type PoemService struct {
	poems  PoemRepository
	topics TopicRepository
	feed   FeedRepository
	tx     Transactor
}

func NewPoemService(poems PoemRepository, topics TopicRepository, feed FeedRepository, tx Transactor) *PoemService {
	return &PoemService{poems: poems, topics: topics, feed: feed, tx: tx}
}

func (svc *PoemService) Create(ctx context.Context, userID uuid.UUID, req models.PoemRequest) (*models.PoemDTO, error) {
	in := poemInput(req)
	switch {
	case in.Title == nil:
		return nil, validationFailed("title cannot be blank")
	case in.Content == nil:
		return nil, validationFailed("content cannot be blank")
	case in.ContentHTML == nil:
		return nil, validationFailed("html cannot be blank")
	case in.TopicID == nil:
		return nil, validationFailed("topic cannot be blank")
	}

	poem := &models.Poem{
		Title:       *in.Title,
		Content:     *in.Content,
		ContentHTML: *in.ContentHTML,
		AuthorID:    userID,
		TopicID:     *in.TopicID,
	}
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkTopic(ctx, poem.TopicID); err != nil {
			return err
		}
		if err := svc.poems.Create(ctx, poem); err != nil {
			if errors.Is(err, repositories.ErrForeignKey) {
				return notFound(msgTopicNotFound)
			}
			logger.Log.Errorw("failed to create poem", "user_id", userID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapPoem(poem)
}

// Get returns the poem enriched for the viewer.
func (svc *PoemService) Get(ctx context.Context, viewer, id uuid.UUID) (*models.PoemFeedDTO, error) {
	row, err := svc.feed.GetPoem(ctx, viewer, id)
	if err != nil {
		logger.Log.Errorw("failed to get poem", "poem_id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, notFound(msgPoemNotFound)
	}
	dto, err := mappers.PoemFeed(*row)
	if err != nil {
		logger.Log.Errorw("failed to map poem", "poem_id", id, "error", err)
		return nil, err
	}
	return &dto, nil
}

// List returns a page of the feed, optionally filtered by a search term and a topic.
func (svc *PoemService) List(ctx context.Context, viewer uuid.UUID, q *string, topicID *int, page int) (models.Page[models.PoemFeedDTO], error) {
	limit, offset := models.LimitOffset(page)

	rows, err := svc.feed.ListPoems(ctx, models.FeedFilter{
		ViewerID: viewer,
		Query:    trimmed(q),
		TopicID:  topicID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		logger.Log.Errorw("failed to list poems", "viewer", viewer, "page", page, "error", err)
		return models.Page[models.PoemFeedDTO]{}, err
	}

	out, err := models.MapPage(models.NewPage(page, rows), mappers.PoemFeed)
	if err != nil {
		logger.Log.Errorw("failed to map poems", "error", err)
	}
	return out, err
}

// Update edits the caller's poem. Only the given fields change and edited_at is stamped.
func (svc *PoemService) Update(ctx context.Context, userID, id uuid.UUID, req models.PoemRequest) (*models.PoemDTO, error) {
	in := poemInput(req)
	if in.Title == nil && in.Content == nil && in.ContentHTML == nil && in.TopicID == nil {
		return nil, validationFailed("nothing to update")
	}

	var poem *models.Poem
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkOwner(ctx, userID, id); err != nil {
			return err
		}
		if in.TopicID != nil {
			if err := svc.checkTopic(ctx, *in.TopicID); err != nil {
				return err
			}
		}

		var err error
		poem, err = svc.poems.Update(ctx, id, in)
		if err != nil {
			logger.Log.Errorw("failed to update poem", "poem_id", id, "error", err)
			return err
		}
		if poem == nil {
			return notFound(msgPoemNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapPoem(poem)
}

func (svc *PoemService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkOwner(ctx, userID, id); err != nil {
			return err
		}
		if _, err := svc.poems.Delete(ctx, id); err != nil {
			logger.Log.Errorw("failed to delete poem", "poem_id", id, "error", err)
			return err
		}
		return nil
	})
}

// ListComments returns a page of the poem's comments, newest first.
func (svc *PoemService) ListComments(ctx context.Context, viewer, poemID uuid.UUID, page int) (models.Page[models.CommentFeedDTO], error) {
	exists, err := svc.poems.Exists(ctx, poemID)
	if err != nil {
		logger.Log.Errorw("failed to check poem", "poem_id", poemID, "error", err)
		return models.Page[models.CommentFeedDTO]{}, err
	}
	if !exists {
		return models.Page[models.CommentFeedDTO]{}, notFound(msgPoemNotFound)
	}

	limit, offset := models.LimitOffset(page)
	rows, err := svc.feed.ListComments(ctx, viewer, poemID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "poem_id", poemID, "error", err)
		return models.Page[models.CommentFeedDTO]{}, err
	}

	out, err := models.MapPage(models.NewPage(page, rows), mappers.CommentFeed)
	if err != nil {
		logger.Log.Errorw("failed to map comments", "error", err)
	}
	return out, err
}

func (svc *PoemService) checkTopic(ctx context.Context, topicID int) error {
	exists, err := svc.topics.Exists(ctx, topicID)
	if err != nil {
		logger.Log.Errorw("failed to check topic", "topic_id", topicID, "error", err)
		return err
	}
	if !exists {
		return notFound(msgTopicNotFound)
	}
	return nil
}

func (svc *PoemService) checkOwner(ctx context.Context, userID, id uuid.UUID) error {
	poem, err := svc.poems.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get poem", "poem_id", id, "error", err)
		return err
	}
	if poem == nil {
		return notFound(msgPoemNotFound)
	}
	if poem.AuthorID != userID {
		logger.Log.Infow("poem ownership check failed", "poem_id", id, "user_id", userID)
		return forbidden(msgPoemNotYours)
	}
	return nil
}

// poemInput drops blank text fields so they count as absent.
func poemInput(req models.PoemRequest) models.PoemInput {
	return models.PoemInput{
		Title:       trimmed(req.Title),
		Content:     nonBlank(req.Content),
		ContentHTML: nonBlank(req.HTML),
		TopicID:     req.Topic,
	}
}

// nonBlank keeps the value as written unless it is blank.
func nonBlank(s *string) *string {
	if blank(s) {
		return nil
	}
	return s
}

func mapPoem(poem *models.Poem) (*models.PoemDTO, error) {
	dto, err := mappers.Poem(poem)
	if err != nil {
		logger.Log.Errorw("failed to map poem", "error", err)
		return nil, err
	}
	return dto, nil
}
