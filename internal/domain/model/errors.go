package model

import (
	"fmt"

	"github.com/google/uuid"
)

// InvalidTransitionError signals an attempted illegal state change on a ledger
// document. No state is mutated when it is returned.
type InvalidTransitionError struct {
	DocumentID uuid.UUID
	From       DocumentStatus
	To         DocumentStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for document %s: %s -> %s", e.DocumentID, e.From, e.To)
}

// NotFoundError signals a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// PermissionDeniedError signals an operation attempted without the required
// permission.
type PermissionDeniedError struct {
	ActorID    uuid.UUID
	Permission string
}

func (e PermissionDeniedError) Error() string {
	return fmt.Sprintf("actor %s lacks permission %q", e.ActorID, e.Permission)
}

// PeriodClosedError signals a posting attempt into a closed fiscal period.
type PeriodClosedError struct {
	Period string
}

func (e PeriodClosedError) Error() string {
	return fmt.Sprintf("fiscal period %s is closed", e.Period)
}
