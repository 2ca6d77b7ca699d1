package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/application/usecase"
	"github.com/academix/ledger-service/internal/domain/model"
)

func TestClosePeriod_Success(t *testing.T) {
	periodRepo := &mockFiscalPeriodRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewClosePeriod(periodRepo, publisher, allowAll())

	err := uc.Execute(context.Background(), dto.ClosePeriodRequest{
		TenantID: testTenantID,
		Year:     2025,
		Month:    time.February,
		Actor:    model.Actor{ID: testActorID, Roles: []string{"finance_manager"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-02"}, periodRepo.closed)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "ledger.period.closed", publisher.published[0].EventType())
	assert.Equal(t, []string{usecase.TopicLedgerDocuments}, publisher.topics)
}

func TestClosePeriod_PermissionDenied(t *testing.T) {
	periodRepo := &mockFiscalPeriodRepository{}
	uc := usecase.NewClosePeriod(periodRepo, &mockEventPublisher{}, denyAll())

	err := uc.Execute(context.Background(), dto.ClosePeriodRequest{
		TenantID: testTenantID,
		Year:     2025,
		Month:    time.February,
		Actor:    model.Actor{ID: testActorID, Roles: []string{"accountant"}},
	})

	var pErr model.PermissionDeniedError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, model.PermissionClosePeriod, pErr.Permission)
	assert.Empty(t, periodRepo.closed)
}

func TestClosePeriod_InvalidMonth(t *testing.T) {
	uc := usecase.NewClosePeriod(&mockFiscalPeriodRepository{}, &mockEventPublisher{}, allowAll())

	err := uc.Execute(context.Background(), dto.ClosePeriodRequest{
		TenantID: testTenantID,
		Year:     2025,
		Month:    time.Month(13),
		Actor:    testActor(),
	})
	assert.ErrorContains(t, err, "invalid month")
}
