package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agrocredito/agrocredito/internal/domain/event"
	"github.com/agrocredito/agrocredito/pkg/kafka"
)

// KafkaEventPublisher implements port.EventPublisher by writing events to
// Kafka. Events are keyed by aggregate ID so consumers see each aggregate's
// events in order.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given topic.
func NewKafkaEventPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises and sends domain events.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		msg := kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
			},
		}
		if err := p.producer.Publish(ctx, p.topic, msg); err != nil {
			return fmt.Errorf("publish event %s: %w", evt.EventType(), err)
		}

		p.logger.InfoContext(ctx, "published domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"topic", p.topic,
		)
	}
	return nil
}
