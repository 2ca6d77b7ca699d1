package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/application/usecase"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/valueobject"
)

func TestGetChartOfAccounts_ResolvesChildren(t *testing.T) {
	parent, err := model.NewAccount(testTenantID, valueobject.MustAccountCode("1000"),
		"Current Assets", model.AccountTypeAsset, uuid.Nil, decimal.Zero, uuid.Nil, testNow)
	require.NoError(t, err)
	child, err := model.NewAccount(testTenantID, valueobject.MustAccountCode("1000-001"),
		"Cash on Hand", model.AccountTypeAsset, parent.ID(), decimal.Zero, uuid.Nil, testNow)
	require.NoError(t, err)

	accountRepo := &mockAccountRepository{accounts: []model.Account{parent, child}}
	uc := usecase.NewGetChartOfAccounts(accountRepo)

	resp, err := uc.Execute(context.Background(), dto.ChartOfAccountsRequest{TenantID: testTenantID})
	require.NoError(t, err)
	require.Len(t, resp.Accounts, 2)

	assert.Equal(t, "1000", resp.Accounts[0].Code)
	assert.Equal(t, []uuid.UUID{child.ID()}, resp.Accounts[0].ChildIDs)
	assert.Equal(t, parent.ID(), resp.Accounts[1].ParentID)
	assert.Empty(t, resp.Accounts[1].ChildIDs)
	assert.Equal(t, string(model.NormalBalanceDebit), resp.Accounts[1].NormalBalance)
}
