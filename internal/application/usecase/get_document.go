package usecase

import (
	"context"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/port"
)

// GetDocument retrieves a single document with its lines.
type GetDocument struct {
	docRepo port.DocumentRepository
}

func NewGetDocument(docRepo port.DocumentRepository) *GetDocument {
	return &GetDocument{docRepo: docRepo}
}

func (uc *GetDocument) Execute(ctx context.Context, req dto.GetDocumentRequest) (dto.DocumentResponse, error) {
	doc, err := uc.docRepo.FindByID(ctx, req.TenantID, req.DocumentID)
	if err != nil {
		return dto.DocumentResponse{}, err
	}
	return toDocumentResponse(doc), nil
}
