// Package events publishes engagement events to Kafka.
package events

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the subset of *kafka.Writer the publisher needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// publishTimeout caps how long a request can spend handing an event to the writer.
const publishTimeout = 2 * time.Second

// Publisher writes engagement events keyed by target id, so events about one poem or
// comment land on the same partition.
type Publisher struct {
	writer  KafkaWriter
	timeout time.Duration
}

// NewPublisher returns a publisher. A nil writer turns Publish into a logged no-op.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer, timeout: publishTimeout}
}

// NewWriter builds an async Kafka writer for the given brokers, or nil when none are
// configured. Delivery failures surface in the completion callback, not in WriteMessages.
func NewWriter(brokers []string, topic string) KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  true,
		MaxAttempts:            3,
		WriteTimeout:           publishTimeout,
		Completion:             logCompletion,
	}
}

func logCompletion(messages []kafka.Message, err error) {
	if err != nil {
		logger.Log.Errorw("failed to deliver events", "count", len(messages), "error", err)
		return
	}
	logger.Log.Debugw("events delivered", "count", len(messages))
}

// Publish is best effort: failures are logged and never returned.
func (p *Publisher) Publish(ctx context.Context, event models.EngagementEvent) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("kafka writer not configured, skipping event", "event_id", event.EventID, "type", event.Type)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TargetID),
		Value: payload,
		Time:  time.Unix(event.Timestamp, 0),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	// The request may finish before delivery; only the timeout bounds the write.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", event.EventID, "type", event.Type, "error", err)
		return
	}
	logger.Log.Infow("event queued", "event_id", event.EventID, "type", event.Type, "target_id", event.TargetID)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
