package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/academix/ledger-service/pkg/events"
)

const AggregateTypeLedgerDocument = "LedgerDocument"

// DocumentPosted is emitted when a ledger document is posted.
type DocumentPosted struct {
	events.BaseEvent
	DocumentID uuid.UUID `json:"document_id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	Kind       string    `json:"kind"`
	Reference  string    `json:"reference"`
	DocDate    time.Time `json:"doc_date"`
}

func NewDocumentPosted(documentID, tenantID uuid.UUID, kind, reference string, docDate time.Time) DocumentPosted {
	payload, _ := json.Marshal(struct {
		DocumentID uuid.UUID `json:"document_id"`
		TenantID   uuid.UUID `json:"tenant_id"`
		Kind       string    `json:"kind"`
		Reference  string    `json:"reference"`
		DocDate    time.Time `json:"doc_date"`
	}{documentID, tenantID, kind, reference, docDate})

	return DocumentPosted{
		BaseEvent:  events.NewBaseEvent("ledger.document.posted", documentID, AggregateTypeLedgerDocument, payload),
		DocumentID: documentID,
		TenantID:   tenantID,
		Kind:       kind,
		Reference:  reference,
		DocDate:    docDate,
	}
}

// DocumentVoided is emitted when a ledger document is voided. Downstream
// consumers (receivables reconciliation, reporting) must drop the document's
// amounts from that moment onward.
type DocumentVoided struct {
	events.BaseEvent
	DocumentID uuid.UUID `json:"document_id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	Reference  string    `json:"reference"`
	Reason     string    `json:"reason"`
}

func NewDocumentVoided(documentID, tenantID uuid.UUID, reference, reason string) DocumentVoided {
	payload, _ := json.Marshal(struct {
		DocumentID uuid.UUID `json:"document_id"`
		TenantID   uuid.UUID `json:"tenant_id"`
		Reference  string    `json:"reference"`
		Reason     string    `json:"reason"`
	}{documentID, tenantID, reference, reason})

	return DocumentVoided{
		BaseEvent:  events.NewBaseEvent("ledger.document.voided", documentID, AggregateTypeLedgerDocument, payload),
		DocumentID: documentID,
		TenantID:   tenantID,
		Reference:  reference,
		Reason:     reason,
	}
}

// PeriodClosed is emitted when a fiscal period is closed.
type PeriodClosed struct {
	events.BaseEvent
	TenantID uuid.UUID `json:"tenant_id"`
	Period   string    `json:"period"`
}

func NewPeriodClosed(tenantID uuid.UUID, period string) PeriodClosed {
	id := uuid.New()
	payload, _ := json.Marshal(struct {
		TenantID uuid.UUID `json:"tenant_id"`
		Period   string    `json:"period"`
	}{tenantID, period})

	return PeriodClosed{
		BaseEvent: events.NewBaseEvent("ledger.period.closed", id, "FiscalPeriod", payload),
		TenantID:  tenantID,
		Period:    period,
	}
}
