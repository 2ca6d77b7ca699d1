package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/application/usecase"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/service"
	"github.com/academix/ledger-service/pkg/auth"
)

const dateLayout = "2006-01-02"

// LedgerHandler implements the gRPC LedgerService server. Tenant and actor
// identity come from the authenticated token claims, never from request
// fields.
type LedgerHandler struct {
	UnimplementedLedgerServiceServer

	createDoc   *usecase.CreateDocument
	updateLines *usecase.UpdateDocumentLines
	postDoc     *usecase.PostDocument
	voidDoc     *usecase.VoidDocument
	deleteDoc   *usecase.DeleteDocument
	getDoc      *usecase.GetDocument
	listDocs    *usecase.ListDocuments
	getBalance  *usecase.GetBalance
	getChart    *usecase.GetChartOfAccounts
	closePeriod *usecase.ClosePeriod
}

func NewLedgerHandler(
	createDoc *usecase.CreateDocument,
	updateLines *usecase.UpdateDocumentLines,
	postDoc *usecase.PostDocument,
	voidDoc *usecase.VoidDocument,
	deleteDoc *usecase.DeleteDocument,
	getDoc *usecase.GetDocument,
	listDocs *usecase.ListDocuments,
	getBalance *usecase.GetBalance,
	getChart *usecase.GetChartOfAccounts,
	closePeriod *usecase.ClosePeriod,
) *LedgerHandler {
	return &LedgerHandler{
		createDoc:   createDoc,
		updateLines: updateLines,
		postDoc:     postDoc,
		voidDoc:     voidDoc,
		deleteDoc:   deleteDoc,
		getDoc:      getDoc,
		listDocs:    listDocs,
		getBalance:  getBalance,
		getChart:    getChart,
		closePeriod: closePeriod,
	}
}

func (h *LedgerHandler) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*CreateDocumentResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	docDate, err := time.Parse(dateLayout, req.DocDate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid doc_date: %v", err)
	}
	branchID, err := parseOptionalUUID(req.BranchID, "branch_id")
	if err != nil {
		return nil, err
	}
	lines, err := linesFromMsg(req.Lines)
	if err != nil {
		return nil, err
	}

	result, err := h.createDoc.Execute(ctx, dto.CreateDocumentRequest{
		TenantID:    claims.TenantID,
		Kind:        req.Kind,
		Reference:   req.Reference,
		DocDate:     docDate,
		Description: req.Description,
		BranchID:    branchID,
		Actor:       actorFromClaims(claims),
		Lines:       lines,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}
	return &CreateDocumentResponse{Document: toDocumentMsg(result)}, nil
}

func (h *LedgerHandler) UpdateDocumentLines(ctx context.Context, req *UpdateDocumentLinesRequest) (*UpdateDocumentLinesResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	docID, err := parseUUID(req.DocumentID, "document_id")
	if err != nil {
		return nil, err
	}
	lines, err := linesFromMsg(req.Lines)
	if err != nil {
		return nil, err
	}

	result, err := h.updateLines.Execute(ctx, dto.UpdateDocumentLinesRequest{
		TenantID:   claims.TenantID,
		DocumentID: docID,
		Actor:      actorFromClaims(claims),
		Lines:      lines,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}
	return &UpdateDocumentLinesResponse{Document: toDocumentMsg(result)}, nil
}

func (h *LedgerHandler) PostDocument(ctx context.Context, req *PostDocumentRequest) (*PostDocumentResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	docID, err := parseUUID(req.DocumentID, "document_id")
	if err != nil {
		return nil, err
	}

	result, err := h.postDoc.Execute(ctx, dto.PostDocumentRequest{
		TenantID:   claims.TenantID,
		DocumentID: docID,
		Actor:      actorFromClaims(claims),
	})
	if err != nil {
		return nil, mapDomainError(err)
	}
	return &PostDocumentResponse{Document: toDocumentMsg(result)}, nil
}

func (h *LedgerHandler) VoidDocument(ctx context.Context, req *VoidDocumentRequest) (*VoidDocumentResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	docID, err := parseUUID(req.DocumentID, "document_id")
	if err != nil {
		return nil, err
	}
	if req.Reason == "" {
		return nil, status.Error(codes.InvalidArgument, "void reason is required")
	}

	result, err := h.voidDoc.Execute(ctx, dto.VoidDocumentRequest{
		TenantID:   claims.TenantID,
		DocumentID: docID,
		Actor:      actorFromClaims(claims),
		Reason:     req.Reason,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}
	return &VoidDocumentResponse{Document: toDocumentMsg(result)}, nil
}

func (h *LedgerHandler) DeleteDocument(ctx context.Context, req *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	docID, err := parseUUID(req.DocumentID, "document_id")
	if err != nil {
		return nil, err
	}

	if err := h.deleteDoc.Execute(ctx, dto.DeleteDocumentRequest{
		TenantID:   claims.TenantID,
		DocumentID: docID,
		Actor:      actorFromClaims(claims),
	}); err != nil {
		return nil, mapDomainError(err)
	}
	return &DeleteDocumentResponse{}, nil
}

func (h *LedgerHandler) GetDocument(ctx context.Context, req *GetDocumentRequest) (*GetDocumentResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	docID, err := parseUUID(req.DocumentID, "document_id")
	if err != nil {
		return nil, err
	}

	result, err := h.getDoc.Execute(ctx, dto.GetDocumentRequest{
		TenantID:   claims.TenantID,
		DocumentID: docID,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}
	return &GetDocumentResponse{Document: toDocumentMsg(result)}, nil
}

func (h *LedgerHandler) ListDocuments(ctx context.Context, req *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	from, err := parseOptionalDate(req.From, "from", time.Time{})
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(req.To, "to", time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}

	result, err := h.listDocs.Execute(ctx, dto.ListDocumentsRequest{
		TenantID: claims.TenantID,
		From:     from,
		To:       to,
		Limit:    int(req.Limit),
		Offset:   int(req.Offset),
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	docs := make([]*DocumentMsg, 0, len(result.Documents))
	for _, d := range result.Documents {
		docs = append(docs, toDocumentMsg(d))
	}
	return &ListDocumentsResponse{Documents: docs, Total: int32(result.Total)}, nil
}

func (h *LedgerHandler) GetBalance(ctx context.Context, req *GetBalanceRequest) (*GetBalanceResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	accountID, err := parseUUID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	asOf, err := parseOptionalDate(req.AsOf, "as_of", time.Time{})
	if err != nil {
		return nil, err
	}

	var branchID *uuid.UUID
	if req.BranchID != "" {
		id, err := parseUUID(req.BranchID, "branch_id")
		if err != nil {
			return nil, err
		}
		branchID = &id
	}

	result, err := h.getBalance.Execute(ctx, dto.GetBalanceRequest{
		TenantID:  claims.TenantID,
		AccountID: accountID,
		AsOf:      asOf,
		BranchID:  branchID,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &GetBalanceResponse{
		AccountID:     result.AccountID.String(),
		AccountCode:   result.AccountCode,
		NormalBalance: result.NormalBalance,
		Balance:       result.Balance.StringFixed(2),
		AsOf:          result.AsOf.Format(dateLayout),
	}, nil
}

func (h *LedgerHandler) GetChartOfAccounts(ctx context.Context, _ *GetChartOfAccountsRequest) (*GetChartOfAccountsResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.getChart.Execute(ctx, dto.ChartOfAccountsRequest{TenantID: claims.TenantID})
	if err != nil {
		return nil, mapDomainError(err)
	}

	accounts := make([]*AccountMsg, 0, len(result.Accounts))
	for _, a := range result.Accounts {
		childIDs := make([]string, 0, len(a.ChildIDs))
		for _, id := range a.ChildIDs {
			childIDs = append(childIDs, id.String())
		}
		accounts = append(accounts, &AccountMsg{
			ID:             a.ID.String(),
			Code:           a.Code,
			Name:           a.Name,
			Type:           a.Type,
			NormalBalance:  a.NormalBalance,
			ParentID:       uuidString(a.ParentID),
			ChildIDs:       childIDs,
			OpeningBalance: a.OpeningBalance.StringFixed(2),
			BranchID:       uuidString(a.BranchID),
			IsActive:       a.IsActive,
		})
	}
	return &GetChartOfAccountsResponse{Accounts: accounts}, nil
}

func (h *LedgerHandler) ClosePeriod(ctx context.Context, req *ClosePeriodRequest) (*ClosePeriodResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.closePeriod.Execute(ctx, dto.ClosePeriodRequest{
		TenantID: claims.TenantID,
		Year:     int(req.Year),
		Month:    time.Month(req.Month),
		Actor:    actorFromClaims(claims),
	}); err != nil {
		return nil, mapDomainError(err)
	}
	return &ClosePeriodResponse{}, nil
}

// --- conversion and error mapping ---

func callerClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing authentication")
	}
	return claims, nil
}

func actorFromClaims(claims *auth.Claims) model.Actor {
	return model.Actor{ID: claims.UserID, Roles: claims.Roles}
}

// mapDomainError translates domain errors into gRPC status codes. Unknown
// errors collapse to Internal without leaking details to the caller.
func mapDomainError(err error) error {
	var (
		validationErr service.ValidationError
		transitionErr model.InvalidTransitionError
		notFoundErr   model.NotFoundError
		permissionErr model.PermissionDeniedError
		periodErr     model.PeriodClosedError
	)
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return status.Error(codes.NotFound, notFoundErr.Error())
	case errors.As(err, &permissionErr):
		return status.Error(codes.PermissionDenied, permissionErr.Error())
	case errors.As(err, &transitionErr):
		return status.Error(codes.FailedPrecondition, transitionErr.Error())
	case errors.As(err, &periodErr):
		return status.Error(codes.FailedPrecondition, periodErr.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return id, nil
}

func parseOptionalUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return parseUUID(s, field)
}

func parseOptionalDate(s, field string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return t, nil
}

func linesFromMsg(in []*LineMsg) ([]dto.LineDTO, error) {
	lines := make([]dto.LineDTO, 0, len(in))
	for i, l := range in {
		debit, err := parseAmount(l.Debit)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "line %d: invalid debit: %v", i, err)
		}
		credit, err := parseAmount(l.Credit)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "line %d: invalid credit: %v", i, err)
		}
		accountID, err := uuid.Parse(l.AccountID)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "line %d: invalid account_id: %v", i, err)
		}
		costCenterID, err := parseOptionalUUID(l.CostCenterID, "cost_center_id")
		if err != nil {
			return nil, err
		}
		lines = append(lines, dto.LineDTO{
			AccountID:    accountID,
			Debit:        debit,
			Credit:       credit,
			CostCenterID: costCenterID,
			Description:  l.Description,
		})
	}
	return lines, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func toDocumentMsg(r dto.DocumentResponse) *DocumentMsg {
	lines := make([]*LineMsg, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, &LineMsg{
			AccountID:    l.AccountID.String(),
			Debit:        l.Debit.StringFixed(2),
			Credit:       l.Credit.StringFixed(2),
			CostCenterID: uuidString(l.CostCenterID),
			Description:  l.Description,
		})
	}
	return &DocumentMsg{
		ID:          r.ID.String(),
		TenantID:    r.TenantID.String(),
		Kind:        r.Kind,
		Reference:   r.Reference,
		DocDate:     r.DocDate.Format(dateLayout),
		Description: r.Description,
		Status:      r.Status,
		BranchID:    uuidString(r.BranchID),
		Lines:       lines,
		CreatedBy:   r.CreatedBy.String(),
		PostedBy:    uuidString(r.PostedBy),
		PostedAt:    timestampOrNil(r.PostedAt),
		VoidedBy:    uuidString(r.VoidedBy),
		VoidedAt:    timestampOrNil(r.VoidedAt),
		VoidReason:  r.VoidReason,
		Version:     int32(r.Version),
		CreatedAt:   timestamppb.New(r.CreatedAt),
		UpdatedAt:   timestamppb.New(r.UpdatedAt),
	}
}

func uuidString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
