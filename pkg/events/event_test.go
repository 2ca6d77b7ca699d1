package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := uuid.New()
	payload := []byte(`{"document_id":"abc"}`)

	evt := NewBaseEvent("ledger.document.posted", aggregateID, "LedgerDocument", payload)

	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, "ledger.document.posted", evt.EventType())
	assert.Equal(t, aggregateID, evt.AggregateID())
	assert.Equal(t, "LedgerDocument", evt.AggregateType())
	assert.Equal(t, payload, evt.Payload())
	assert.WithinDuration(t, time.Now().UTC(), evt.OccurredAt(), time.Second)
}

func TestNewOutboxEntry(t *testing.T) {
	aggregateID := uuid.New()
	evt := NewBaseEvent("ledger.document.voided", aggregateID, "LedgerDocument", []byte("{}"))

	entry := NewOutboxEntry(evt)

	assert.Equal(t, evt.EventID(), entry.ID)
	assert.Equal(t, aggregateID, entry.AggregateID)
	assert.Equal(t, "LedgerDocument", entry.AggregateType)
	assert.Equal(t, "ledger.document.voided", entry.EventType)
	assert.Equal(t, evt.Payload(), entry.Payload)
	assert.Nil(t, entry.PublishedAt)
}
