package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/valueobject"
)

// Compile-time interface check
var _ port.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implements AccountRepository using PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `
	id, tenant_id, code, name, account_type, normal_balance, parent_id,
	opening_balance, branch_id, is_active, created_at, updated_at`

func (r *AccountRepo) Save(ctx context.Context, account model.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`, account.ID(), account.TenantID(), account.Code().String(), account.Name(),
		string(account.Type()), string(account.NormalBalance()),
		nullUUID(account.ParentID()), account.OpeningBalance(),
		nullUUID(account.BranchID()), account.IsActive(),
		account.CreatedAt(), account.UpdatedAt())
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func (r *AccountRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (model.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.NotFoundError{Entity: "account", ID: id.String()}
		}
		return model.Account{}, fmt.Errorf("query account: %w", err)
	}
	return account, nil
}

func (r *AccountRepo) FindByCode(ctx context.Context, tenantID uuid.UUID, code valueobject.AccountCode) (model.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts WHERE tenant_id = $1 AND code = $2
	`, tenantID, code.String())
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.NotFoundError{Entity: "account", ID: code.String()}
		}
		return model.Account{}, fmt.Errorf("query account by code: %w", err)
	}
	return account, nil
}

func (r *AccountRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts WHERE tenant_id = $1 ORDER BY code
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *AccountRepo) ListChildren(ctx context.Context, tenantID, parentID uuid.UUID) ([]model.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts WHERE tenant_id = $1 AND parent_id = $2 ORDER BY code
	`, tenantID, parentID)
	if err != nil {
		return nil, fmt.Errorf("query child accounts: %w", err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]model.Account, error) {
	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (model.Account, error) {
	var (
		id, tenantID         uuid.UUID
		codeStr, name        string
		accountType, normal  string
		parentID, branchID   *uuid.UUID
		openingBalance       decimal.Decimal
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &tenantID, &codeStr, &name, &accountType, &normal,
		&parentID, &openingBalance, &branchID, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return model.Account{}, err
	}

	code, err := valueobject.NewAccountCode(codeStr)
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid stored account code %q: %w", codeStr, err)
	}

	return model.ReconstructAccount(
		id, tenantID, code, name,
		model.AccountType(accountType), model.NormalBalance(normal),
		derefUUID(parentID), openingBalance, derefUUID(branchID),
		isActive, createdAt, updatedAt,
	), nil
}
