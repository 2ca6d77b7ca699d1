package usecase

import (
	"context"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/port"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ListDocuments pages documents within a date range, newest first.
type ListDocuments struct {
	docRepo port.DocumentRepository
}

func NewListDocuments(docRepo port.DocumentRepository) *ListDocuments {
	return &ListDocuments{docRepo: docRepo}
}

func (uc *ListDocuments) Execute(ctx context.Context, req dto.ListDocumentsRequest) (dto.ListDocumentsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	docs, total, err := uc.docRepo.ListByTenant(ctx, req.TenantID, req.From, req.To, limit, offset)
	if err != nil {
		return dto.ListDocumentsResponse{}, fmt.Errorf("failed to list documents: %w", err)
	}

	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return dto.ListDocumentsResponse{Documents: out, Total: total}, nil
}
