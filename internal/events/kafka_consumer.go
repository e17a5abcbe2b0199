package events

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/kafka"
	contentevents "github.com/lostxrotimi/service-studio/internal/proto/events"
)

// ContentReloader is the part of the content cache refreshed by events.
type ContentReloader interface {
	Load(ctx context.Context)
	ReloadBookings(ctx context.Context)
}

// ContentEventConsumer listens to content events from other instances and
// refreshes the local content cache.
type ContentEventConsumer struct {
	consumer *kafka.Consumer
	content  ContentReloader
	source   string
	logger   *zap.Logger
}

// NewContentEventConsumer creates a new ContentEventConsumer. Every instance
// needs its own groupID so each one sees every event.
func NewContentEventConsumer(
	brokers []string,
	groupID string,
	topic string,
	source string,
	content ContentReloader,
	logger *zap.Logger,
) *ContentEventConsumer {
	return &ContentEventConsumer{
		consumer: kafka.NewConsumer(brokers, groupID, topic, logger),
		content:  content,
		source:   source,
		logger:   logger,
	}
}

// Start begins consuming content events. This blocks until the context is cancelled.
func (c *ContentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *ContentEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *ContentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from content topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	if cloudEvent.Source == c.source {
		return nil
	}

	switch cloudEvent.Type {
	case contentevents.PhotoUploaded, contentevents.PhotoDeleted:
		c.logger.Info("reloading content after remote photo change",
			zap.String("type", cloudEvent.Type),
			zap.String("source", cloudEvent.Source),
			zap.String("subject", cloudEvent.Subject),
		)
		c.content.Load(ctx)
	case contentevents.BookingSubmitted:
		c.logger.Info("reloading bookings after remote submission",
			zap.String("source", cloudEvent.Source),
			zap.String("subject", cloudEvent.Subject),
		)
		c.content.ReloadBookings(ctx)
	default:
		c.logger.Debug("ignoring unhandled content event type",
			zap.String("type", cloudEvent.Type),
		)
	}
	return nil
}
