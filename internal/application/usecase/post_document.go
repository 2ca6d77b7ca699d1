package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/service"
	"github.com/academix/ledger-service/internal/domain/valueobject"
)

// PostDocument transitions a draft to POSTED. The balance rules are enforced
// here, against the lines as stored, before the state machine runs. The
// version predicate on the repository update turns a concurrent double-post
// into an InvalidTransitionError with no second write. The DocumentPosted
// event commits to the outbox with the update and the relay delivers it, so
// there is no direct publish on this path.
type PostDocument struct {
	docRepo    port.DocumentRepository
	periodRepo port.FiscalPeriodRepository
	validator  *service.DocumentValidator
	clock      port.Clock
}

func NewPostDocument(
	docRepo port.DocumentRepository,
	periodRepo port.FiscalPeriodRepository,
	validator *service.DocumentValidator,
	clock port.Clock,
) *PostDocument {
	return &PostDocument{
		docRepo:    docRepo,
		periodRepo: periodRepo,
		validator:  validator,
		clock:      clock,
	}
}

func (uc *PostDocument) Execute(ctx context.Context, req dto.PostDocumentRequest) (dto.DocumentResponse, error) {
	doc, err := uc.docRepo.FindByID(ctx, req.TenantID, req.DocumentID)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	period := valueobject.FiscalPeriodFromTime(doc.DocDate())
	status, err := uc.periodRepo.GetPeriodStatus(ctx, req.TenantID, period)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to check fiscal period: %w", err)
	}
	if status == valueobject.PeriodStatusClosed {
		return dto.DocumentResponse{}, model.PeriodClosedError{Period: period.String()}
	}

	if err := uc.validator.ValidateLines(doc.Lines()); err != nil {
		return dto.DocumentResponse{}, err
	}

	posted, err := doc.Post(req.Actor.ID, uc.clock.Now())
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if err := uc.docRepo.Update(ctx, posted); err != nil {
		if errors.Is(err, port.ErrVersionConflict) {
			return dto.DocumentResponse{}, model.InvalidTransitionError{
				DocumentID: doc.ID(), From: model.StatusPosted, To: model.StatusPosted,
			}
		}
		return dto.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}

	return toDocumentResponse(posted), nil
}
