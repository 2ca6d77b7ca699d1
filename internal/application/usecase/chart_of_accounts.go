package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/port"
)

// GetChartOfAccounts returns a tenant's full chart ordered by code, with the
// parent/child structure resolved into child ID lists.
type GetChartOfAccounts struct {
	accountRepo port.AccountRepository
}

func NewGetChartOfAccounts(accountRepo port.AccountRepository) *GetChartOfAccounts {
	return &GetChartOfAccounts{accountRepo: accountRepo}
}

func (uc *GetChartOfAccounts) Execute(ctx context.Context, req dto.ChartOfAccountsRequest) (dto.ChartOfAccountsResponse, error) {
	accounts, err := uc.accountRepo.ListByTenant(ctx, req.TenantID)
	if err != nil {
		return dto.ChartOfAccountsResponse{}, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	children := make(map[uuid.UUID][]uuid.UUID)
	for _, a := range accounts {
		if a.HasParent() {
			children[a.ParentID()] = append(children[a.ParentID()], a.ID())
		}
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp := toAccountResponse(a)
		resp.ChildIDs = children[a.ID()]
		out = append(out, resp)
	}
	return dto.ChartOfAccountsResponse{Accounts: out}, nil
}
