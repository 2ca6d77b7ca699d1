package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/academix/ledger-service/pkg/events"
	"github.com/academix/ledger-service/pkg/kafka"
)

// OutboxRelay drains the outbox table into Kafka. Documents and their events
// commit in one database transaction; the relay delivers those events at
// least once, so consumers must dedupe on event ID.
type OutboxRelay struct {
	outbox    events.OutboxRepository
	producer  *kafka.Producer
	topic     string
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewOutboxRelay(outbox events.OutboxRepository, producer *kafka.Producer, topic string, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		producer:  producer,
		topic:     topic,
		interval:  2 * time.Second,
		batchSize: 100,
		logger:    logger,
	}
}

// Run polls until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox relay cycle failed", "error", err)
			}
		}
	}
}

func (r *OutboxRelay) drainOnce(ctx context.Context) error {
	entries, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, kafka.Message{
			Key:   []byte(e.AggregateID.String()),
			Value: e.Payload,
			Headers: map[string]string{
				"event_id":   e.ID.String(),
				"event_type": e.EventType,
			},
		})
		ids = append(ids, e.ID)
	}

	if err := r.producer.Publish(ctx, r.topic, messages...); err != nil {
		return err
	}
	return r.outbox.MarkPublished(ctx, ids)
}
