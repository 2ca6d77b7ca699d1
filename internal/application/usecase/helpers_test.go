package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/valueobject"
)

var (
	testTenantID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testActorID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testNow      = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
)

func testActor() model.Actor {
	return model.Actor{ID: testActorID, Roles: []string{"accountant"}}
}

func debitLine(t *testing.T, amount string) valueobject.LedgerLine {
	t.Helper()
	line, err := valueobject.NewLedgerLine(uuid.New(), decimal.RequireFromString(amount), decimal.Zero, uuid.Nil, "")
	require.NoError(t, err)
	return line
}

func creditLine(t *testing.T, amount string) valueobject.LedgerLine {
	t.Helper()
	line, err := valueobject.NewLedgerLine(uuid.New(), decimal.Zero, decimal.RequireFromString(amount), uuid.Nil, "")
	require.NoError(t, err)
	return line
}

func draftDocument(t *testing.T, lines ...valueobject.LedgerLine) model.LedgerDocument {
	t.Helper()
	doc, err := model.NewLedgerDocument(
		testTenantID, model.KindJournal, "JRN-2025-001", testNow, "test entry",
		uuid.Nil, testActorID, lines, testNow)
	require.NoError(t, err)
	return doc
}

func balancedLineDTOs(amount string) []dto.LineDTO {
	return []dto.LineDTO{
		{AccountID: uuid.New(), Debit: decimal.RequireFromString(amount)},
		{AccountID: uuid.New(), Credit: decimal.RequireFromString(amount)},
	}
}
