package model

import "github.com/google/uuid"

// Permissions gating privileged ledger operations.
const (
	PermissionVoidDocument = "ledger:void"
	PermissionClosePeriod  = "ledger:close_period"
)

// Actor is the identity performing an operation. Every use case takes an
// explicit actor; there is no ambient current-user lookup.
type Actor struct {
	ID    uuid.UUID
	Roles []string
}

// HasRole checks whether the actor holds the given role.
func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
