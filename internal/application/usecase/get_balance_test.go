package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/application/usecase"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/valueobject"
)

func testAccount(t *testing.T, accountType model.AccountType, opening string) model.Account {
	t.Helper()
	account, err := model.NewAccount(
		testTenantID,
		valueobject.MustAccountCode("1010"),
		"Main Cash",
		accountType,
		uuid.Nil,
		decimal.RequireFromString(opening),
		uuid.Nil,
		testNow,
	)
	require.NoError(t, err)
	return account
}

func TestGetBalance_DebitNormalAccount(t *testing.T) {
	account := testAccount(t, model.AccountTypeAsset, "100.00")
	accountRepo := &mockAccountRepository{accounts: []model.Account{account}}
	balanceRepo := &mockBalanceRepository{
		debits:  decimal.RequireFromString("300.00"),
		credits: decimal.RequireFromString("50.00"),
	}
	uc := usecase.NewGetBalance(accountRepo, balanceRepo, fixedClock{now: testNow})

	resp, err := uc.Execute(context.Background(), dto.GetBalanceRequest{
		TenantID:  testTenantID,
		AccountID: account.ID(),
	})
	require.NoError(t, err)

	// 100 opening + (300 - 50)
	assert.True(t, resp.Balance.Equal(decimal.RequireFromString("350.00")),
		"got %s", resp.Balance)
	assert.Equal(t, string(model.NormalBalanceDebit), resp.NormalBalance)
	assert.Equal(t, testNow, resp.AsOf, "asOf defaults to now")
}

func TestGetBalance_CreditNormalAccount(t *testing.T) {
	account := testAccount(t, model.AccountTypeRevenue, "0")
	accountRepo := &mockAccountRepository{accounts: []model.Account{account}}
	balanceRepo := &mockBalanceRepository{
		debits:  decimal.RequireFromString("50.00"),
		credits: decimal.RequireFromString("300.00"),
	}
	uc := usecase.NewGetBalance(accountRepo, balanceRepo, fixedClock{now: testNow})

	resp, err := uc.Execute(context.Background(), dto.GetBalanceRequest{
		TenantID:  testTenantID,
		AccountID: account.ID(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.RequireFromString("250.00")),
		"got %s", resp.Balance)
}

func TestGetBalance_PassesFiltersThrough(t *testing.T) {
	account := testAccount(t, model.AccountTypeAsset, "0")
	accountRepo := &mockAccountRepository{accounts: []model.Account{account}}
	balanceRepo := &mockBalanceRepository{debits: decimal.Zero, credits: decimal.Zero}
	uc := usecase.NewGetBalance(accountRepo, balanceRepo, fixedClock{now: testNow})

	branchID := uuid.New()
	asOf := time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), dto.GetBalanceRequest{
		TenantID:  testTenantID,
		AccountID: account.ID(),
		AsOf:      asOf,
		BranchID:  &branchID,
	})
	require.NoError(t, err)

	assert.Equal(t, asOf, balanceRepo.gotAsOf)
	require.NotNil(t, balanceRepo.gotBranchID)
	assert.Equal(t, branchID, *balanceRepo.gotBranchID)
	assert.Equal(t, asOf, resp.AsOf)
}

func TestGetBalance_UnknownAccount(t *testing.T) {
	uc := usecase.NewGetBalance(&mockAccountRepository{}, &mockBalanceRepository{}, fixedClock{now: testNow})

	_, err := uc.Execute(context.Background(), dto.GetBalanceRequest{
		TenantID:  testTenantID,
		AccountID: uuid.New(),
	})

	var nfErr model.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "account", nfErr.Entity)
}
