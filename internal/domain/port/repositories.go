package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	"github.com/academix/ledger-service/pkg/events"
)

// ErrVersionConflict is returned by DocumentRepository.Update when the stored
// version does not match the expected predecessor version, i.e. another
// request transitioned the document concurrently.
var ErrVersionConflict = errors.New("document version conflict")

// DocumentRepository defines persistence operations for ledger documents.
type DocumentRepository interface {
	// Create inserts a new document with its lines.
	Create(ctx context.Context, doc model.LedgerDocument) error
	// Update persists a transitioned or edited document atomically. The
	// update only applies if the stored row still carries the document's
	// predecessor version; otherwise ErrVersionConflict is returned and
	// nothing is written.
	Update(ctx context.Context, doc model.LedgerDocument) error
	// FindByID retrieves a document with its lines.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (model.LedgerDocument, error)
	// DeleteDraft removes a draft document and its lines.
	DeleteDraft(ctx context.Context, tenantID, id uuid.UUID) error
	// ListByTenant returns documents within a date range, newest first.
	ListByTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit, offset int) ([]model.LedgerDocument, int, error)
}

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	Save(ctx context.Context, account model.Account) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (model.Account, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code valueobject.AccountCode) (model.Account, error)
	// ListByTenant returns the full chart ordered by code.
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Account, error)
	// ListChildren resolves the account tree one level at a time.
	ListChildren(ctx context.Context, tenantID, parentID uuid.UUID) ([]model.Account, error)
}

// BalanceRepository aggregates posted line amounts.
type BalanceRepository interface {
	// PostedTotals returns the summed debits and credits against an account
	// over POSTED documents only, up to asOf inclusive. A non-nil branchID
	// restricts the sum to documents of that branch.
	PostedTotals(ctx context.Context, tenantID, accountID uuid.UUID, asOf time.Time, branchID *uuid.UUID) (debits, credits decimal.Decimal, err error)
}

// FiscalPeriodRepository defines persistence operations for fiscal periods.
type FiscalPeriodRepository interface {
	// GetPeriodStatus returns the status of a period; unknown periods are open.
	GetPeriodStatus(ctx context.Context, tenantID uuid.UUID, period valueobject.FiscalPeriod) (valueobject.PeriodStatus, error)
	// ClosePeriod marks a fiscal period as closed.
	ClosePeriod(ctx context.Context, tenantID uuid.UUID, period valueobject.FiscalPeriod) error
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}

// PermissionChecker gates privileged operations. Implementations decide how
// actor roles map to permissions.
type PermissionChecker interface {
	Allowed(actor model.Actor, permission string) bool
}

// Clock supplies the current time so posting timestamps are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
