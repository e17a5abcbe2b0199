package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes CloudEvents to Kafka topics.
type Producer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewProducer creates a producer. The topic is chosen per message.
func NewProducer(brokers []string, logger *zap.Logger) *Producer {
	return &Producer{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// PublishEvent writes the event to topic, keyed by its subject or, without one, its ID.
func (p *Producer) PublishEvent(ctx context.Context, topic string, event CloudEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal cloud event: %w", err)
	}

	key := event.Subject
	if key == "" {
		key = event.ID
	}

	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}

	p.logger.Debug("event published",
		zap.String("topic", topic),
		zap.String("type", event.Type),
		zap.String("id", event.ID),
	)
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// MessageHandler processes one message. Returning an error leaves the offset uncommitted.
type MessageHandler func(ctx context.Context, msg kafkago.Message) error

const (
	minFetchBackoff = 200 * time.Millisecond
	maxFetchBackoff = 10 * time.Second
)

// messageReader is the subset of *kafkago.Reader used by Consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Consumer reads a single topic as part of a consumer group.
type Consumer struct {
	reader     messageReader
	logger     *zap.Logger
	minBackoff time.Duration
	maxBackoff time.Duration
}

// NewConsumer creates a group consumer for topic.
func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *Consumer {
	return newConsumer(kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	}), logger)
}

func newConsumer(reader messageReader, logger *zap.Logger) *Consumer {
	return &Consumer{
		reader:     reader,
		logger:     logger,
		minBackoff: minFetchBackoff,
		maxBackoff: maxFetchBackoff,
	}
}

// Consume blocks, dispatching messages to handler until ctx is cancelled.
// Failed fetches are retried with exponential backoff.
func (c *Consumer) Consume(ctx context.Context, handler MessageHandler) error {
	backoff := c.minBackoff
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return context.Canceled
			}
			c.logger.Error("failed to fetch message", zap.Duration("retry_in", backoff), zap.Error(err))

			select {
			case <-ctx.Done():
				return context.Canceled
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, c.maxBackoff)
			continue
		}
		backoff = c.minBackoff

		if err := handler(ctx, msg); err != nil {
			c.logger.Error("message handler failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit message", zap.Error(err))
		}
	}
}

// Close closes the reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
