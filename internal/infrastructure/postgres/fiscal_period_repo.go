package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	pgpkg "github.com/academix/ledger-service/pkg/postgres"
)

// Compile-time interface check
var _ port.FiscalPeriodRepository = (*FiscalPeriodRepo)(nil)

// FiscalPeriodRepo implements FiscalPeriodRepository using PostgreSQL.
// Periods without a row are open; a row is only written when a period closes.
type FiscalPeriodRepo struct {
	pool *pgxpool.Pool
}

func NewFiscalPeriodRepo(pool *pgxpool.Pool) *FiscalPeriodRepo {
	return &FiscalPeriodRepo{pool: pool}
}

func (r *FiscalPeriodRepo) GetPeriodStatus(ctx context.Context, tenantID uuid.UUID, period valueobject.FiscalPeriod) (valueobject.PeriodStatus, error) {
	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT status FROM fiscal_periods
		WHERE tenant_id = $1 AND year = $2 AND month = $3
	`, tenantID, period.Year(), int(period.Month())).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return valueobject.PeriodStatusOpen, nil
		}
		return "", fmt.Errorf("query fiscal period: %w", err)
	}
	return valueobject.PeriodStatus(status), nil
}

// ClosePeriod takes the period's advisory lock before writing the CLOSED
// row, so an in-flight posting into the same period either commits before
// the close or observes the closed status and aborts.
func (r *FiscalPeriodRepo) ClosePeriod(ctx context.Context, tenantID uuid.UUID, period valueobject.FiscalPeriod) error {
	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockFiscalPeriod(ctx, tx, tenantID, period); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO fiscal_periods (tenant_id, year, month, status, closed_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (tenant_id, year, month) DO UPDATE SET
				status = EXCLUDED.status,
				closed_at = EXCLUDED.closed_at
		`, tenantID, period.Year(), int(period.Month()), string(valueobject.PeriodStatusClosed), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("close fiscal period: %w", err)
		}
		return nil
	})
}

// lockFiscalPeriod takes a transaction-scoped advisory lock keyed on the
// tenant and period. Both the posting path and ClosePeriod acquire it, which
// is what makes the closed-period check race-free.
func lockFiscalPeriod(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, period valueobject.FiscalPeriod) error {
	key := fmt.Sprintf("fiscal_period:%s:%s", tenantID, period)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("lock fiscal period %s: %w", period, err)
	}
	return nil
}
