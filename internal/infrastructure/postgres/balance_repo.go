package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/port"
)

// Compile-time interface check
var _ port.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implements BalanceRepository using PostgreSQL. Balances are
// derived, never stored: the sums are computed over posted lines at query
// time, so a void is reflected immediately without a compensating write.
type BalanceRepo struct {
	pool *pgxpool.Pool
}

func NewBalanceRepo(pool *pgxpool.Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

func (r *BalanceRepo) PostedTotals(ctx context.Context, tenantID, accountID uuid.UUID, asOf time.Time, branchID *uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	var debits, credits decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(ll.debit), 0), COALESCE(SUM(ll.credit), 0)
		FROM ledger_lines ll
		JOIN ledger_documents ld ON ld.id = ll.document_id
		WHERE ld.tenant_id = $1
		AND ll.account_id = $2
		AND ld.status = 'POSTED'
		AND ld.doc_date <= $3
		AND ($4::uuid IS NULL OR ld.branch_id = $4)
	`, tenantID, accountID, asOf, branchID).Scan(&debits, &credits)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum posted lines: %w", err)
	}
	return debits, credits, nil
}
