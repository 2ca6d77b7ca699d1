package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
)

// VoidDocument marks a document VOID. Voiding a posted document reverses a
// financial effect and is gated on ledger:void; voiding a draft is open to
// any actor since nothing has been posted yet. Events land in the outbox
// with the update and are delivered by the relay.
type VoidDocument struct {
	docRepo     port.DocumentRepository
	permissions port.PermissionChecker
	clock       port.Clock
}

func NewVoidDocument(
	docRepo port.DocumentRepository,
	permissions port.PermissionChecker,
	clock port.Clock,
) *VoidDocument {
	return &VoidDocument{
		docRepo:     docRepo,
		permissions: permissions,
		clock:       clock,
	}
}

func (uc *VoidDocument) Execute(ctx context.Context, req dto.VoidDocumentRequest) (dto.DocumentResponse, error) {
	doc, err := uc.docRepo.FindByID(ctx, req.TenantID, req.DocumentID)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if doc.Status() == model.StatusPosted && !uc.permissions.Allowed(req.Actor, model.PermissionVoidDocument) {
		return dto.DocumentResponse{}, model.PermissionDeniedError{
			ActorID:    req.Actor.ID,
			Permission: model.PermissionVoidDocument,
		}
	}

	voided, err := doc.Void(req.Actor.ID, req.Reason, uc.clock.Now())
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if err := uc.docRepo.Update(ctx, voided); err != nil {
		if errors.Is(err, port.ErrVersionConflict) {
			return dto.DocumentResponse{}, model.InvalidTransitionError{
				DocumentID: doc.ID(), From: doc.Status(), To: model.StatusVoid,
			}
		}
		return dto.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}

	return toDocumentResponse(voided), nil
}
