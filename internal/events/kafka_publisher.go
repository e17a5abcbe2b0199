package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/kafka"
)

// eventWriter is the subset of *kafka.Producer used by KafkaPublisher.
type eventWriter interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// KafkaPublisher publishes content events as CloudEvents. The source is the
// instance ID so consumers can skip their own events.
type KafkaPublisher struct {
	writer eventWriter
	topic  string
	source string
	logger *zap.Logger
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(writer eventWriter, topic, source string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		source: source,
		logger: logger,
	}
}

// Publish sends one event. Failures are logged, never returned.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, data any) {
	cloudEvent, err := kafka.NewCloudEvent(p.source, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	cloudEvent.Subject = key

	if err := p.writer.PublishEvent(ctx, p.topic, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", p.topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
