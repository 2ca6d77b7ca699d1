package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims issued by the back-office gateway.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	Roles    []string  `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Back-office role constants.
const (
	RoleAdmin          = "admin"
	RoleFinanceManager = "finance_manager"
	RoleAccountant     = "accountant"
	RoleRegistrar      = "registrar"
	RoleAuditor        = "auditor"
)
