package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/academix/ledger-service/internal/domain/event"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	"github.com/academix/ledger-service/pkg/events"
)

// DocumentStatus represents the lifecycle state of a ledger document.
type DocumentStatus string

const (
	StatusDraft  DocumentStatus = "DRAFT"
	StatusPosted DocumentStatus = "POSTED"
	StatusVoid   DocumentStatus = "VOID"
)

// DocumentKind distinguishes manually entered journals from cash/bank vouchers.
type DocumentKind string

const (
	KindJournal        DocumentKind = "JOURNAL"
	KindReceiptVoucher DocumentKind = "RECEIPT"
	KindPaymentVoucher DocumentKind = "PAYMENT"
)

// IsValid reports whether k is one of the known document kinds.
func (k DocumentKind) IsValid() bool {
	switch k {
	case KindJournal, KindReceiptVoucher, KindPaymentVoucher:
		return true
	}
	return false
}

// LedgerDocument is the root aggregate of the accounting bounded context: a
// journal or voucher that owns its lines. Only DRAFT documents are editable;
// posting makes the document and its lines immutable except for the void
// transition, which preserves them for audit.
type LedgerDocument struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	kind         DocumentKind
	reference    string
	docDate      time.Time
	description  string
	status       DocumentStatus
	branchID     uuid.UUID // uuid.Nil = unscoped
	lines        []valueobject.LedgerLine
	createdBy    uuid.UUID
	postedBy     uuid.UUID
	postedAt     time.Time
	voidedBy     uuid.UUID
	voidedAt     time.Time
	voidReason   string
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []events.DomainEvent
}

// NewLedgerDocument creates a document in DRAFT status. Drafts may hold any
// number of lines, balanced or not; balance is enforced at posting time.
func NewLedgerDocument(
	tenantID uuid.UUID,
	kind DocumentKind,
	reference string,
	docDate time.Time,
	description string,
	branchID uuid.UUID,
	createdBy uuid.UUID,
	lines []valueobject.LedgerLine,
	now time.Time,
) (LedgerDocument, error) {
	if tenantID == uuid.Nil {
		return LedgerDocument{}, fmt.Errorf("tenant ID is required")
	}
	if !kind.IsValid() {
		return LedgerDocument{}, fmt.Errorf("invalid document kind %q", kind)
	}
	if reference == "" {
		return LedgerDocument{}, fmt.Errorf("reference is required")
	}
	if docDate.IsZero() {
		return LedgerDocument{}, fmt.Errorf("document date is required")
	}
	if createdBy == uuid.Nil {
		return LedgerDocument{}, fmt.Errorf("creator is required")
	}

	return LedgerDocument{
		id:          uuid.New(),
		tenantID:    tenantID,
		kind:        kind,
		reference:   reference,
		docDate:     docDate,
		description: description,
		status:      StatusDraft,
		branchID:    branchID,
		lines:       append([]valueobject.LedgerLine(nil), lines...),
		createdBy:   createdBy,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructLedgerDocument recreates a LedgerDocument from persistence
// (no validation, no events).
func ReconstructLedgerDocument(
	id, tenantID uuid.UUID,
	kind DocumentKind,
	reference string,
	docDate time.Time,
	description string,
	status DocumentStatus,
	branchID uuid.UUID,
	lines []valueobject.LedgerLine,
	createdBy, postedBy uuid.UUID,
	postedAt time.Time,
	voidedBy uuid.UUID,
	voidedAt time.Time,
	voidReason string,
	version int,
	createdAt, updatedAt time.Time,
) LedgerDocument {
	return LedgerDocument{
		id:          id,
		tenantID:    tenantID,
		kind:        kind,
		reference:   reference,
		docDate:     docDate,
		description: description,
		status:      status,
		branchID:    branchID,
		lines:       lines,
		createdBy:   createdBy,
		postedBy:    postedBy,
		postedAt:    postedAt,
		voidedBy:    voidedBy,
		voidedAt:    voidedAt,
		voidReason:  voidReason,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ReplaceLines swaps the draft's lines (immutable - returns new copy). Any
// other status refuses the edit.
func (d LedgerDocument) ReplaceLines(lines []valueobject.LedgerLine, now time.Time) (LedgerDocument, error) {
	if d.status != StatusDraft {
		return LedgerDocument{}, InvalidTransitionError{DocumentID: d.id, From: d.status, To: StatusDraft}
	}

	updated := d.clone()
	updated.lines = append([]valueobject.LedgerLine(nil), lines...)
	updated.updatedAt = now
	updated.version = d.version + 1
	return updated, nil
}

// Post transitions the document from DRAFT to POSTED, stamping the poster and
// posting time. Callers must run the document validator first; Post itself
// only guards the state machine.
func (d LedgerDocument) Post(postedBy uuid.UUID, now time.Time) (LedgerDocument, error) {
	if d.status != StatusDraft {
		return LedgerDocument{}, InvalidTransitionError{DocumentID: d.id, From: d.status, To: StatusPosted}
	}
	if postedBy == uuid.Nil {
		return LedgerDocument{}, fmt.Errorf("poster identity is required")
	}

	updated := d.clone()
	updated.status = StatusPosted
	updated.postedBy = postedBy
	updated.postedAt = now
	updated.updatedAt = now
	updated.version = d.version + 1
	updated.domainEvents = append(updated.domainEvents,
		event.NewDocumentPosted(d.id, d.tenantID, string(d.kind), d.reference, d.docDate))
	return updated, nil
}

// Void marks the document VOID. Posted documents keep their lines for audit;
// their amounts stop counting toward balances. Voiding a draft is always
// allowed since no financial effect has occurred.
func (d LedgerDocument) Void(voidedBy uuid.UUID, reason string, now time.Time) (LedgerDocument, error) {
	if d.status != StatusPosted && d.status != StatusDraft {
		return LedgerDocument{}, InvalidTransitionError{DocumentID: d.id, From: d.status, To: StatusVoid}
	}
	if voidedBy == uuid.Nil {
		return LedgerDocument{}, fmt.Errorf("voider identity is required")
	}

	updated := d.clone()
	updated.status = StatusVoid
	updated.voidedBy = voidedBy
	updated.voidedAt = now
	updated.voidReason = reason
	updated.updatedAt = now
	updated.version = d.version + 1
	updated.domainEvents = append(updated.domainEvents,
		event.NewDocumentVoided(d.id, d.tenantID, d.reference, reason))
	return updated, nil
}

// CanDelete reports whether the document may be physically deleted.
// Only drafts qualify; posted and voided documents are history.
func (d LedgerDocument) CanDelete() bool {
	return d.status == StatusDraft
}

func (d LedgerDocument) clone() LedgerDocument {
	updated := d
	updated.lines = append([]valueobject.LedgerLine(nil), d.lines...)
	updated.domainEvents = append([]events.DomainEvent(nil), d.domainEvents...)
	return updated
}

// Accessors
func (d LedgerDocument) ID() uuid.UUID                     { return d.id }
func (d LedgerDocument) TenantID() uuid.UUID               { return d.tenantID }
func (d LedgerDocument) Kind() DocumentKind                { return d.kind }
func (d LedgerDocument) Reference() string                 { return d.reference }
func (d LedgerDocument) DocDate() time.Time                { return d.docDate }
func (d LedgerDocument) Description() string               { return d.description }
func (d LedgerDocument) Status() DocumentStatus            { return d.status }
func (d LedgerDocument) BranchID() uuid.UUID               { return d.branchID }
func (d LedgerDocument) Lines() []valueobject.LedgerLine   { return d.lines }
func (d LedgerDocument) CreatedBy() uuid.UUID              { return d.createdBy }
func (d LedgerDocument) PostedBy() uuid.UUID               { return d.postedBy }
func (d LedgerDocument) PostedAt() time.Time               { return d.postedAt }
func (d LedgerDocument) VoidedBy() uuid.UUID               { return d.voidedBy }
func (d LedgerDocument) VoidedAt() time.Time               { return d.voidedAt }
func (d LedgerDocument) VoidReason() string                { return d.voidReason }
func (d LedgerDocument) Version() int                      { return d.version }
func (d LedgerDocument) CreatedAt() time.Time              { return d.createdAt }
func (d LedgerDocument) UpdatedAt() time.Time              { return d.updatedAt }
func (d LedgerDocument) DomainEvents() []events.DomainEvent { return d.domainEvents }
