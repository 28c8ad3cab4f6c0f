package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/models"
)

// TopicCacheRepository keeps topics in Redis for read-through lookups.
type TopicCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached topics
}

func NewTopicCacheRepository(client *redis.Client, expiration time.Duration) *TopicCacheRepository {
	return &TopicCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func topicKey(id int) string {
	return fmt.Sprintf("topic:%d", id)
}

// Get returns nil without error on a cache miss.
func (r *TopicCacheRepository) Get(ctx context.Context, id int) (*models.Topic, error) {
	key := topicKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("key", key, "result", "miss")
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "error", err)
		return nil, err
	}

	var topic models.Topic
	if err := json.Unmarshal(val, &topic); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", "hit")
	return &topic, nil
}

func (r *TopicCacheRepository) Set(ctx context.Context, topic *models.Topic) error {
	key := topicKey(topic.ID)

	val, err := json.Marshal(topic)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", r.exp,
		"error", err,
	)
	return err
}

func (r *TopicCacheRepository) Invalidate(ctx context.Context, id int) error {
	key := topicKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("key", key, "result", "invalidated", "error", err)
	return err
}
