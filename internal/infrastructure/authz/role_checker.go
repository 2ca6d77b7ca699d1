package authz

import (
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/pkg/auth"
)

// Compile-time interface check
var _ port.PermissionChecker = (*RoleChecker)(nil)

// RoleChecker maps ledger permissions onto the platform roles carried in the
// actor's token claims.
type RoleChecker struct {
	grants map[string][]string
}

// NewRoleChecker returns the default permission map: voiding and period
// closing are reserved for admins and finance managers.
func NewRoleChecker() *RoleChecker {
	return &RoleChecker{
		grants: map[string][]string{
			model.PermissionVoidDocument: {auth.RoleAdmin, auth.RoleFinanceManager},
			model.PermissionClosePeriod:  {auth.RoleAdmin, auth.RoleFinanceManager},
		},
	}
}

func (c *RoleChecker) Allowed(actor model.Actor, permission string) bool {
	for _, role := range c.grants[permission] {
		if actor.HasRole(role) {
			return true
		}
	}
	return false
}
