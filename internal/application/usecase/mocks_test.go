package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	"github.com/academix/ledger-service/pkg/events"
)

// --- Mock implementations ---

// mockDocumentRepository implements port.DocumentRepository for testing.
type mockDocumentRepository struct {
	created      []model.LedgerDocument
	updated      []model.LedgerDocument
	deleted      []uuid.UUID
	createFunc   func(ctx context.Context, doc model.LedgerDocument) error
	updateFunc   func(ctx context.Context, doc model.LedgerDocument) error
	findByIDFunc func(ctx context.Context, tenantID, id uuid.UUID) (model.LedgerDocument, error)
	listFunc     func(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit, offset int) ([]model.LedgerDocument, int, error)
}

func (m *mockDocumentRepository) Create(ctx context.Context, doc model.LedgerDocument) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, doc)
	}
	m.created = append(m.created, doc)
	return nil
}

func (m *mockDocumentRepository) Update(ctx context.Context, doc model.LedgerDocument) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, doc)
	}
	m.updated = append(m.updated, doc)
	return nil
}

func (m *mockDocumentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (model.LedgerDocument, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.LedgerDocument{}, model.NotFoundError{Entity: "ledger document", ID: id.String()}
}

func (m *mockDocumentRepository) DeleteDraft(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDocumentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit, offset int) ([]model.LedgerDocument, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, from, to, limit, offset)
	}
	return nil, 0, nil
}

// mockAccountRepository implements port.AccountRepository for testing.
type mockAccountRepository struct {
	accounts     []model.Account
	findByIDFunc func(ctx context.Context, tenantID, id uuid.UUID) (model.Account, error)
}

func (m *mockAccountRepository) Save(_ context.Context, account model.Account) error {
	m.accounts = append(m.accounts, account)
	return nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (model.Account, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	for _, a := range m.accounts {
		if a.ID() == id {
			return a, nil
		}
	}
	return model.Account{}, model.NotFoundError{Entity: "account", ID: id.String()}
}

func (m *mockAccountRepository) FindByCode(_ context.Context, _ uuid.UUID, code valueobject.AccountCode) (model.Account, error) {
	for _, a := range m.accounts {
		if a.Code().Equal(code) {
			return a, nil
		}
	}
	return model.Account{}, model.NotFoundError{Entity: "account", ID: code.String()}
}

func (m *mockAccountRepository) ListByTenant(_ context.Context, _ uuid.UUID) ([]model.Account, error) {
	return m.accounts, nil
}

func (m *mockAccountRepository) ListChildren(_ context.Context, _ uuid.UUID, parentID uuid.UUID) ([]model.Account, error) {
	var out []model.Account
	for _, a := range m.accounts {
		if a.ParentID() == parentID {
			out = append(out, a)
		}
	}
	return out, nil
}

// mockBalanceRepository implements port.BalanceRepository for testing.
type mockBalanceRepository struct {
	debits  decimal.Decimal
	credits decimal.Decimal
	err     error

	gotAsOf     time.Time
	gotBranchID *uuid.UUID
}

func (m *mockBalanceRepository) PostedTotals(_ context.Context, _, _ uuid.UUID, asOf time.Time, branchID *uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	m.gotAsOf = asOf
	m.gotBranchID = branchID
	if m.err != nil {
		return decimal.Zero, decimal.Zero, m.err
	}
	return m.debits, m.credits, nil
}

// mockFiscalPeriodRepository implements port.FiscalPeriodRepository for testing.
type mockFiscalPeriodRepository struct {
	statuses map[string]valueobject.PeriodStatus
	closed   []string
}

func (m *mockFiscalPeriodRepository) GetPeriodStatus(_ context.Context, _ uuid.UUID, period valueobject.FiscalPeriod) (valueobject.PeriodStatus, error) {
	if s, ok := m.statuses[period.String()]; ok {
		return s, nil
	}
	return valueobject.PeriodStatusOpen, nil
}

func (m *mockFiscalPeriodRepository) ClosePeriod(_ context.Context, _ uuid.UUID, period valueobject.FiscalPeriod) error {
	m.closed = append(m.closed, period.String())
	return nil
}

// mockEventPublisher captures published domain events.
type mockEventPublisher struct {
	published   []events.DomainEvent
	topics      []string
	publishFunc func(ctx context.Context, topic string, evts ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, topic, evts...)
	}
	m.topics = append(m.topics, topic)
	m.published = append(m.published, evts...)
	return nil
}

// mockPermissionChecker grants a fixed permission set.
type mockPermissionChecker struct {
	granted map[string]bool
}

func (m *mockPermissionChecker) Allowed(_ model.Actor, permission string) bool {
	return m.granted[permission]
}

func allowAll() *mockPermissionChecker {
	return &mockPermissionChecker{granted: map[string]bool{
		model.PermissionVoidDocument: true,
		model.PermissionClosePeriod:  true,
	}}
}

func denyAll() *mockPermissionChecker {
	return &mockPermissionChecker{granted: map[string]bool{}}
}

// fixedClock is a port.Clock frozen at a known instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
