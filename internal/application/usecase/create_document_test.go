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
)

func TestCreateDocument_Success(t *testing.T) {
	docRepo := &mockDocumentRepository{}
	uc := usecase.NewCreateDocument(docRepo, fixedClock{now: testNow})

	resp, err := uc.Execute(context.Background(), dto.CreateDocumentRequest{
		TenantID:  testTenantID,
		Kind:      "RECEIPT",
		Reference: "RCT-2025-042",
		DocDate:   testNow,
		Actor:     testActor(),
		Lines:     balancedLineDTOs("1200.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(model.StatusDraft), resp.Status)
	assert.Equal(t, "RCT-2025-042", resp.Reference)
	assert.Equal(t, testActorID, resp.CreatedBy)
	assert.Equal(t, 1, resp.Version)
	require.Len(t, docRepo.created, 1)
}

func TestCreateDocument_UnbalancedDraftAllowed(t *testing.T) {
	docRepo := &mockDocumentRepository{}
	uc := usecase.NewCreateDocument(docRepo, fixedClock{now: testNow})

	resp, err := uc.Execute(context.Background(), dto.CreateDocumentRequest{
		TenantID:  testTenantID,
		Kind:      "JOURNAL",
		Reference: "JRN-2025-007",
		DocDate:   testNow,
		Actor:     testActor(),
		Lines: []dto.LineDTO{
			{AccountID: uuid.New(), Debit: decimal.RequireFromString("500.00")},
		},
	})
	require.NoError(t, err, "drafts may be unbalanced; balance is a posting rule")
	assert.Equal(t, string(model.StatusDraft), resp.Status)
}

func TestCreateDocument_InvalidKind(t *testing.T) {
	uc := usecase.NewCreateDocument(&mockDocumentRepository{}, fixedClock{now: testNow})

	_, err := uc.Execute(context.Background(), dto.CreateDocumentRequest{
		TenantID:  testTenantID,
		Kind:      "INVOICE",
		Reference: "X-1",
		DocDate:   testNow,
		Actor:     testActor(),
		Lines:     balancedLineDTOs("10.00"),
	})
	assert.ErrorContains(t, err, "invalid document kind")
}

func TestCreateDocument_RejectsMalformedLine(t *testing.T) {
	uc := usecase.NewCreateDocument(&mockDocumentRepository{}, fixedClock{now: testNow})

	_, err := uc.Execute(context.Background(), dto.CreateDocumentRequest{
		TenantID:  testTenantID,
		Kind:      "JOURNAL",
		Reference: "JRN-2025-008",
		DocDate:   testNow,
		Actor:     testActor(),
		Lines: []dto.LineDTO{
			{AccountID: uuid.New(), Debit: decimal.RequireFromString("-5.00")},
			{AccountID: uuid.New(), Credit: decimal.RequireFromString("5.00")},
		},
	})
	assert.ErrorContains(t, err, "line 0")
}
