package usecase

import (
	"context"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
)

// DeleteDocument physically removes a draft. Posted and voided documents are
// permanent records and refuse deletion.
type DeleteDocument struct {
	docRepo port.DocumentRepository
}

func NewDeleteDocument(docRepo port.DocumentRepository) *DeleteDocument {
	return &DeleteDocument{docRepo: docRepo}
}

func (uc *DeleteDocument) Execute(ctx context.Context, req dto.DeleteDocumentRequest) error {
	doc, err := uc.docRepo.FindByID(ctx, req.TenantID, req.DocumentID)
	if err != nil {
		return err
	}

	if !doc.CanDelete() {
		return model.InvalidTransitionError{
			DocumentID: doc.ID(), From: doc.Status(), To: model.StatusDraft,
		}
	}

	if err := uc.docRepo.DeleteDraft(ctx, req.TenantID, req.DocumentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
