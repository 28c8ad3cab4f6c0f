package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/mappers"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
)

const (
	msgTopicNotFound = "topic not found"
	msgTopicExists   = "topic with this name or color already exists"
)

// TopicService manages topics. Single topic reads go through the cache.
type TopicService struct {
	topics TopicRepository
	cache  TopicCache
	tx     Transactor
}

func NewTopicService(topics TopicRepository, cache TopicCache, tx Transactor) *TopicService {
	return &TopicService{topics: topics, cache: cache, tx: tx}
}

func (svc *TopicService) Create(ctx context.Context, req models.TopicRequest) (*models.TopicDTO, error) {
	req.Name, req.Color = trimmed(req.Name), normalizeColor(req.Color)
	if req.Name == nil {
		return nil, validationFailed("name cannot be blank")
	}
	if req.Color == nil {
		return nil, validationFailed("color cannot be blank")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	var topic *models.Topic
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := svc.topics.Taken(ctx, req.Name, req.Color, 0)
		if err != nil {
			logger.Log.Errorw("failed to check topic uniqueness", "name", *req.Name, "error", err)
			return err
		}
		if taken {
			return conflict(msgTopicExists)
		}

		topic, err = svc.topics.Create(ctx, *req.Name, *req.Color)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return conflict(msgTopicExists)
			}
			logger.Log.Errorw("failed to create topic", "name", *req.Name, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapTopic(topic)
}

// Get reads the topic from the cache, falling back to the database and filling the cache.
// Cache failures are logged and otherwise ignored.
func (svc *TopicService) Get(ctx context.Context, id int) (*models.TopicDTO, error) {
	topic, err := svc.cache.Get(ctx, id)
	if err != nil {
		logger.Log.Warnw("topic cache read failed", "topic_id", id, "error", err)
	}
	if topic != nil {
		return mapTopic(topic)
	}

	topic, err = svc.topics.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get topic", "topic_id", id, "error", err)
		return nil, err
	}
	if topic == nil {
		return nil, notFound(msgTopicNotFound)
	}

	if err := svc.cache.Set(ctx, topic); err != nil {
		logger.Log.Warnw("topic cache write failed", "topic_id", id, "error", err)
	}
	return mapTopic(topic)
}

func (svc *TopicService) List(ctx context.Context, page int) (models.Page[models.TopicDTO], error) {
	limit, offset := models.LimitOffset(page)

	topics, err := svc.topics.List(ctx, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list topics", "page", page, "error", err)
		return models.Page[models.TopicDTO]{}, err
	}

	out, err := models.MapPage(models.NewPage(page, topics), mappers.Topic)
	if err != nil {
		logger.Log.Errorw("failed to map topics", "error", err)
	}
	return out, err
}

// Update changes name and/or color. Uniqueness is checked against the other topics only.
func (svc *TopicService) Update(ctx context.Context, id int, req models.TopicRequest) (*models.TopicDTO, error) {
	req.Name, req.Color = trimmed(req.Name), normalizeColor(req.Color)
	if req.Name == nil && req.Color == nil {
		return nil, validationFailed("nothing to update")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	var topic *models.Topic
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := svc.topics.Taken(ctx, req.Name, req.Color, id)
		if err != nil {
			logger.Log.Errorw("failed to check topic uniqueness", "topic_id", id, "error", err)
			return err
		}
		if taken {
			return conflict(msgTopicExists)
		}

		topic, err = svc.topics.Update(ctx, id, req.Name, req.Color)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return conflict(msgTopicExists)
			}
			logger.Log.Errorw("failed to update topic", "topic_id", id, "error", err)
			return err
		}
		if topic == nil {
			return notFound(msgTopicNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.invalidate(ctx, id)
	return mapTopic(topic)
}

// Delete removes a topic that no poem uses.
func (svc *TopicService) Delete(ctx context.Context, id int) error {
	deleted, err := svc.topics.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return conflict("topic still has poems")
		}
		logger.Log.Errorw("failed to delete topic", "topic_id", id, "error", err)
		return err
	}
	if !deleted {
		return notFound(msgTopicNotFound)
	}

	svc.invalidate(ctx, id)
	return nil
}

func (svc *TopicService) invalidate(ctx context.Context, id int) {
	if err := svc.cache.Invalidate(ctx, id); err != nil {
		logger.Log.Warnw("topic cache invalidation failed", "topic_id", id, "error", err)
	}
}

func mapTopic(topic *models.Topic) (*models.TopicDTO, error) {
	dto, err := mappers.Topic(*topic)
	if err != nil {
		logger.Log.Errorw("failed to map topic", "topic_id", topic.ID, "error", err)
		return nil, err
	}
	return &dto, nil
}

func normalizeColor(color *string) *string {
	c := trimmed(color)
	if c == nil {
		return nil
	}
	lower := strings.ToLower(*c)
	return &lower
}
