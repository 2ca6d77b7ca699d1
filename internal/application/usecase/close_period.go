package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/event"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	"github.com/academix/ledger-service/pkg/events"
)

// ClosePeriod closes a fiscal period for posting. Documents dated inside a
// closed period can no longer be posted; already-posted documents are
// untouched.
type ClosePeriod struct {
	periodRepo  port.FiscalPeriodRepository
	publisher   port.EventPublisher
	permissions port.PermissionChecker
}

func NewClosePeriod(
	periodRepo port.FiscalPeriodRepository,
	publisher port.EventPublisher,
	permissions port.PermissionChecker,
) *ClosePeriod {
	return &ClosePeriod{periodRepo: periodRepo, publisher: publisher, permissions: permissions}
}

func (uc *ClosePeriod) Execute(ctx context.Context, req dto.ClosePeriodRequest) error {
	if !uc.permissions.Allowed(req.Actor, model.PermissionClosePeriod) {
		return model.PermissionDeniedError{
			ActorID:    req.Actor.ID,
			Permission: model.PermissionClosePeriod,
		}
	}

	period, err := valueobject.NewFiscalPeriod(req.Year, req.Month)
	if err != nil {
		return err
	}

	if err := uc.periodRepo.ClosePeriod(ctx, req.TenantID, period); err != nil {
		return fmt.Errorf("failed to close period %s: %w", period, err)
	}

	var closed events.DomainEvent = event.NewPeriodClosed(req.TenantID, period.String())
	if err := uc.publisher.Publish(ctx, TopicLedgerDocuments, closed); err != nil {
		slog.Warn("failed to publish period closed event",
			"period", period.String(), "error", err)
	}
	return nil
}
