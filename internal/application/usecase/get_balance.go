package usecase

import (
	"context"
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/port"
)

// GetBalance computes an account balance as of a point in time: the opening
// balance plus the signed net of all POSTED lines up to and including asOf.
// Draft and voided documents never contribute. All arithmetic is exact
// decimal.
type GetBalance struct {
	accountRepo port.AccountRepository
	balanceRepo port.BalanceRepository
	clock       port.Clock
}

func NewGetBalance(accountRepo port.AccountRepository, balanceRepo port.BalanceRepository, clock port.Clock) *GetBalance {
	return &GetBalance{accountRepo: accountRepo, balanceRepo: balanceRepo, clock: clock}
}

func (uc *GetBalance) Execute(ctx context.Context, req dto.GetBalanceRequest) (dto.BalanceResponse, error) {
	account, err := uc.accountRepo.FindByID(ctx, req.TenantID, req.AccountID)
	if err != nil {
		return dto.BalanceResponse{}, err
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = uc.clock.Now()
	}

	debits, credits, err := uc.balanceRepo.PostedTotals(ctx, req.TenantID, req.AccountID, asOf, req.BranchID)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("failed to sum posted lines: %w", err)
	}

	balance := account.OpeningBalance().Add(account.SignedNet(debits, credits))

	return dto.BalanceResponse{
		AccountID:     account.ID(),
		AccountCode:   account.Code().String(),
		NormalBalance: string(account.NormalBalance()),
		Balance:       balance,
		AsOf:          asOf,
	}, nil
}
