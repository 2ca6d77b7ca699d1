package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/model"
)

// LineDTO carries one document line across the application boundary.
type LineDTO struct {
	AccountID    uuid.UUID
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	CostCenterID uuid.UUID // uuid.Nil = none
	Description  string
}

// CreateDocumentRequest creates a draft journal or voucher.
type CreateDocumentRequest struct {
	TenantID    uuid.UUID
	Kind        string
	Reference   string
	DocDate     time.Time
	Description string
	BranchID    uuid.UUID
	Actor       model.Actor
	Lines       []LineDTO
}

// UpdateDocumentLinesRequest replaces a draft's lines.
type UpdateDocumentLinesRequest struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
	Actor      model.Actor
	Lines      []LineDTO
}

// PostDocumentRequest posts a draft document.
type PostDocumentRequest struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
	Actor      model.Actor
}

// VoidDocumentRequest voids a posted (or draft) document.
type VoidDocumentRequest struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
	Actor      model.Actor
	Reason     string
}

// DeleteDocumentRequest deletes a draft document.
type DeleteDocumentRequest struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
	Actor      model.Actor
}

// GetDocumentRequest fetches a single document.
type GetDocumentRequest struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
}

// ListDocumentsRequest pages documents within a date range.
type ListDocumentsRequest struct {
	TenantID uuid.UUID
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// DocumentResponse is the external view of a ledger document.
type DocumentResponse struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Kind        string
	Reference   string
	DocDate     time.Time
	Description string
	Status      string
	BranchID    uuid.UUID
	Lines       []LineDTO
	CreatedBy   uuid.UUID
	PostedBy    uuid.UUID
	PostedAt    time.Time
	VoidedBy    uuid.UUID
	VoidedAt    time.Time
	VoidReason  string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListDocumentsResponse wraps a page of documents with the total match count.
type ListDocumentsResponse struct {
	Documents []DocumentResponse
	Total     int
}

// GetBalanceRequest computes an account balance.
type GetBalanceRequest struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
	AsOf      time.Time  // zero = now
	BranchID  *uuid.UUID // nil = all branches
}

// BalanceResponse reports a signed account balance.
type BalanceResponse struct {
	AccountID     uuid.UUID
	AccountCode   string
	NormalBalance string
	Balance       decimal.Decimal
	AsOf          time.Time
}

// ChartOfAccountsRequest fetches the full chart for a tenant.
type ChartOfAccountsRequest struct {
	TenantID uuid.UUID
}

// AccountResponse is the external view of a chart-of-accounts entry. The tree
// is flat: ParentID points upward, ChildIDs are resolved by index, not by a
// nested object graph.
type AccountResponse struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Type           string
	NormalBalance  string
	ParentID       uuid.UUID
	ChildIDs       []uuid.UUID
	OpeningBalance decimal.Decimal
	BranchID       uuid.UUID
	IsActive       bool
}

// ChartOfAccountsResponse returns the chart ordered by code.
type ChartOfAccountsResponse struct {
	Accounts []AccountResponse
}

// ClosePeriodRequest closes a fiscal period for posting.
type ClosePeriodRequest struct {
	TenantID uuid.UUID
	Year     int
	Month    time.Month
	Actor    model.Actor
}
