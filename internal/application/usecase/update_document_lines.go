package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
)

// UpdateDocumentLines replaces the lines of a draft document. Posted and
// voided documents refuse the edit with an InvalidTransitionError.
type UpdateDocumentLines struct {
	docRepo port.DocumentRepository
	clock   port.Clock
}

func NewUpdateDocumentLines(docRepo port.DocumentRepository, clock port.Clock) *UpdateDocumentLines {
	return &UpdateDocumentLines{docRepo: docRepo, clock: clock}
}

func (uc *UpdateDocumentLines) Execute(ctx context.Context, req dto.UpdateDocumentLinesRequest) (dto.DocumentResponse, error) {
	lines, err := linesFromDTO(req.Lines)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	doc, err := uc.docRepo.FindByID(ctx, req.TenantID, req.DocumentID)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	updated, err := doc.ReplaceLines(lines, uc.clock.Now())
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if err := uc.docRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, port.ErrVersionConflict) {
			return dto.DocumentResponse{}, model.InvalidTransitionError{
				DocumentID: doc.ID(), From: doc.Status(), To: doc.Status(),
			}
		}
		return dto.DocumentResponse{}, fmt.Errorf("failed to update document: %w", err)
	}

	return toDocumentResponse(updated), nil
}
