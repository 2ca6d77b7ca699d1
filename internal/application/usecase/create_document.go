package usecase

import (
	"context"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
)

// CreateDocument creates a draft journal or voucher. Drafts are allowed to be
// unbalanced; the balance rules apply at posting time.
type CreateDocument struct {
	docRepo port.DocumentRepository
	clock   port.Clock
}

func NewCreateDocument(docRepo port.DocumentRepository, clock port.Clock) *CreateDocument {
	return &CreateDocument{docRepo: docRepo, clock: clock}
}

func (uc *CreateDocument) Execute(ctx context.Context, req dto.CreateDocumentRequest) (dto.DocumentResponse, error) {
	lines, err := linesFromDTO(req.Lines)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	doc, err := model.NewLedgerDocument(
		req.TenantID,
		model.DocumentKind(req.Kind),
		req.Reference,
		req.DocDate,
		req.Description,
		req.BranchID,
		req.Actor.ID,
		lines,
		uc.clock.Now(),
	)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to create document: %w", err)
	}

	if err := uc.docRepo.Create(ctx, doc); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}

	return toDocumentResponse(doc), nil
}
