//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	"github.com/academix/ledger-service/internal/infrastructure/postgres"
	"github.com/academix/ledger-service/pkg/testutil"
)

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "internal", "infrastructure", "postgres", "migrations")
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg := testutil.NewPostgresContainer(ctx, t)
	t.Cleanup(func() { pg.Cleanup(t) })

	pg.RunMigrations(t, migrationsDir())
	return pg.Pool
}

func seedAccount(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, code string, accountType model.AccountType, opening string) model.Account {
	t.Helper()
	account, err := model.NewAccount(
		tenantID,
		valueobject.MustAccountCode(code),
		"Account "+code,
		accountType,
		uuid.Nil,
		decimal.RequireFromString(opening),
		uuid.Nil,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	require.NoError(t, err)
	require.NoError(t, postgres.NewAccountRepo(pool).Save(context.Background(), account))
	return account
}

func newDraft(t *testing.T, tenantID uuid.UUID, reference string, docDate time.Time, lines ...valueobject.LedgerLine) model.LedgerDocument {
	t.Helper()
	doc, err := model.NewLedgerDocument(
		tenantID, model.KindJournal, reference, docDate, "integration test entry",
		uuid.Nil, testutil.TestActorID, lines, time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	return doc
}

func line(t *testing.T, accountID uuid.UUID, debit, credit string) valueobject.LedgerLine {
	t.Helper()
	l, err := valueobject.NewLedgerLine(
		accountID,
		decimal.RequireFromString(debit),
		decimal.RequireFromString(credit),
		uuid.Nil, "")
	require.NoError(t, err)
	return l
}

func TestDocumentRepository_CreateAndFind(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewDocumentRepo(pool)
	ctx := context.Background()

	tenantID := testutil.TestTenantID
	cash := seedAccount(t, pool, tenantID, "1010", model.AccountTypeAsset, "0")
	fees := seedAccount(t, pool, tenantID, "4010", model.AccountTypeRevenue, "0")

	docDate := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	doc := newDraft(t, tenantID, "JRN-IT-001", docDate,
		line(t, cash.ID(), "500.00", "0"),
		line(t, fees.ID(), "0", "500.00"))

	require.NoError(t, repo.Create(ctx, doc))

	loaded, err := repo.FindByID(ctx, tenantID, doc.ID())
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, loaded.Status())
	assert.Equal(t, "JRN-IT-001", loaded.Reference())
	require.Len(t, loaded.Lines(), 2)
	assert.True(t, loaded.Lines()[0].Debit().Equal(decimal.RequireFromString("500.00")))
}

func TestDocumentRepository_VersionConflictOnConcurrentPost(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewDocumentRepo(pool)
	ctx := context.Background()

	tenantID := testutil.TestTenantID
	cash := seedAccount(t, pool, tenantID, "1010", model.AccountTypeAsset, "0")
	fees := seedAccount(t, pool, tenantID, "4010", model.AccountTypeRevenue, "0")

	docDate := time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC)
	doc := newDraft(t, tenantID, "JRN-IT-002", docDate,
		line(t, cash.ID(), "100.00", "0"),
		line(t, fees.ID(), "0", "100.00"))
	require.NoError(t, repo.Create(ctx, doc))

	loaded, err := repo.FindByID(ctx, tenantID, doc.ID())
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	first, err := loaded.Post(uuid.New(), now)
	require.NoError(t, err)
	second, err := loaded.Post(uuid.New(), now)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, first))

	// The second racer saw the same stored version; its update must match
	// zero rows and leave the winner's posting untouched.
	err = repo.Update(ctx, second)
	require.ErrorIs(t, err, port.ErrVersionConflict)

	final, err := repo.FindByID(ctx, tenantID, doc.ID())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPosted, final.Status())
	assert.Equal(t, first.PostedBy(), final.PostedBy())
}

func TestDocumentRepository_PostIntoClosedPeriodRefused(t *testing.T) {
	pool := setupTestDB(t)
	docRepo := postgres.NewDocumentRepo(pool)
	periodRepo := postgres.NewFiscalPeriodRepo(pool)
	ctx := context.Background()

	tenantID := testutil.TestTenantID
	cash := seedAccount(t, pool, tenantID, "1010", model.AccountTypeAsset, "0")
	fees := seedAccount(t, pool, tenantID, "4010", model.AccountTypeRevenue, "0")

	docDate := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
	doc := newDraft(t, tenantID, "JRN-IT-006", docDate,
		line(t, cash.ID(), "60.00", "0"),
		line(t, fees.ID(), "0", "60.00"))
	require.NoError(t, docRepo.Create(ctx, doc))

	loaded, err := docRepo.FindByID(ctx, tenantID, doc.ID())
	require.NoError(t, err)
	posted, err := loaded.Post(uuid.New(), time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)

	// The period closes between loading the draft and writing the posting;
	// the guard inside the posting transaction must still catch it.
	period, err := valueobject.NewFiscalPeriod(2025, time.May)
	require.NoError(t, err)
	require.NoError(t, periodRepo.ClosePeriod(ctx, tenantID, period))

	err = docRepo.Update(ctx, posted)
	var pErr model.PeriodClosedError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "2025-05", pErr.Period)

	final, err := docRepo.FindByID(ctx, tenantID, doc.ID())
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, final.Status(), "refused posting leaves the draft untouched")
}

func TestBalanceRepository_PostedLinesOnly(t *testing.T) {
	pool := setupTestDB(t)
	docRepo := postgres.NewDocumentRepo(pool)
	balanceRepo := postgres.NewBalanceRepo(pool)
	ctx := context.Background()

	tenantID := testutil.TestTenantID
	cash := seedAccount(t, pool, tenantID, "1010", model.AccountTypeAsset, "0")
	fees := seedAccount(t, pool, tenantID, "4010", model.AccountTypeRevenue, "0")

	now := time.Now().UTC().Truncate(time.Microsecond)
	docDate := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)

	// A posted document and a draft against the same account; only the
	// posted one may count.
	posted := newDraft(t, tenantID, "JRN-IT-003", docDate,
		line(t, cash.ID(), "300.00", "0"),
		line(t, fees.ID(), "0", "300.00"))
	require.NoError(t, docRepo.Create(ctx, posted))
	postedDoc, err := docRepo.FindByID(ctx, tenantID, posted.ID())
	require.NoError(t, err)
	transitioned, err := postedDoc.Post(uuid.New(), now)
	require.NoError(t, err)
	require.NoError(t, docRepo.Update(ctx, transitioned))

	draft := newDraft(t, tenantID, "JRN-IT-004", docDate,
		line(t, cash.ID(), "999.00", "0"),
		line(t, fees.ID(), "0", "999.00"))
	require.NoError(t, docRepo.Create(ctx, draft))

	asOf := docDate.AddDate(0, 0, 1)
	debits, credits, err := balanceRepo.PostedTotals(ctx, tenantID, cash.ID(), asOf, nil)
	require.NoError(t, err)
	assert.True(t, debits.Equal(decimal.RequireFromString("300.00")), "got debits %s", debits)
	assert.True(t, credits.IsZero())

	// Voiding the document drops its amounts from the sums.
	voided, err := transitioned.Void(uuid.New(), "entered twice", now)
	require.NoError(t, err)
	require.NoError(t, docRepo.Update(ctx, voided))

	debits, _, err = balanceRepo.PostedTotals(ctx, tenantID, cash.ID(), asOf, nil)
	require.NoError(t, err)
	assert.True(t, debits.IsZero(), "voided amounts must not count, got %s", debits)
}

func TestFiscalPeriodRepository_CloseRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewFiscalPeriodRepo(pool)
	ctx := context.Background()

	tenantID := testutil.TestTenantID
	period, err := valueobject.NewFiscalPeriod(2025, time.March)
	require.NoError(t, err)

	status, err := repo.GetPeriodStatus(ctx, tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, valueobject.PeriodStatusOpen, status, "unknown periods are open")

	require.NoError(t, repo.ClosePeriod(ctx, tenantID, period))

	status, err = repo.GetPeriodStatus(ctx, tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, valueobject.PeriodStatusClosed, status)
}

func TestOutboxRepository_RelayCycle(t *testing.T) {
	pool := setupTestDB(t)
	docRepo := postgres.NewDocumentRepo(pool)
	outboxRepo := postgres.NewOutboxRepo(pool)
	ctx := context.Background()

	tenantID := testutil.TestTenantID
	cash := seedAccount(t, pool, tenantID, "1010", model.AccountTypeAsset, "0")
	fees := seedAccount(t, pool, tenantID, "4010", model.AccountTypeRevenue, "0")

	docDate := time.Date(2025, time.April, 13, 0, 0, 0, 0, time.UTC)
	doc := newDraft(t, tenantID, "JRN-IT-005", docDate,
		line(t, cash.ID(), "40.00", "0"),
		line(t, fees.ID(), "0", "40.00"))
	require.NoError(t, docRepo.Create(ctx, doc))

	loaded, err := docRepo.FindByID(ctx, tenantID, doc.ID())
	require.NoError(t, err)
	posted, err := loaded.Post(uuid.New(), time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	require.NoError(t, docRepo.Update(ctx, posted))

	entries, err := outboxRepo.FetchUnpublished(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ledger.document.posted", entries[0].EventType)
	assert.Equal(t, doc.ID(), entries[0].AggregateID)

	require.NoError(t, outboxRepo.MarkPublished(ctx, []uuid.UUID{entries[0].ID}))

	entries, err = outboxRepo.FetchUnpublished(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
