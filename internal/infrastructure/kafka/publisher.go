package kafka

import (
	"context"
	"fmt"

	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/pkg/events"
	"github.com/academix/ledger-service/pkg/kafka"
)

// Compile-time interface check
var _ port.EventPublisher = (*EventPublisher)(nil)

// EventPublisher implements the EventPublisher port on top of the shared
// Kafka producer. Messages are keyed by aggregate ID so all events of one
// document land in the same partition, in order.
type EventPublisher struct {
	producer *kafka.Producer
}

func NewEventPublisher(producer *kafka.Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

func (p *EventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: evt.Payload(),
			Headers: map[string]string{
				"event_id":   evt.EventID().String(),
				"event_type": evt.EventType(),
			},
		})
	}
	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("publish %d events: %w", len(evts), err)
	}
	return nil
}
