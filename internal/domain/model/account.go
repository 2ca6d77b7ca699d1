package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/valueobject"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// NormalBalance is the side on which an account type naturally increases.
type NormalBalance string

const (
	NormalBalanceDebit  NormalBalance = "DEBIT"
	NormalBalanceCredit NormalBalance = "CREDIT"
)

// DefaultNormalBalance returns the conventional normal balance for the type:
// asset and expense accounts increase with debits, the rest with credits.
func (t AccountType) DefaultNormalBalance() NormalBalance {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return NormalBalanceDebit
	default:
		return NormalBalanceCredit
	}
}

// Account is shared, long-lived reference data in the chart of accounts.
// Parent/child structure is a parent reference only; children are resolved by
// query, never by a loaded object graph.
type Account struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	code           valueobject.AccountCode
	name           string
	accountType    AccountType
	normalBalance  NormalBalance
	parentID       uuid.UUID // uuid.Nil = top-level
	openingBalance decimal.Decimal
	branchID       uuid.UUID // uuid.Nil = shared across branches
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAccount creates an active account. The normal balance defaults from the
// account type.
func NewAccount(
	tenantID uuid.UUID,
	code valueobject.AccountCode,
	name string,
	accountType AccountType,
	parentID uuid.UUID,
	openingBalance decimal.Decimal,
	branchID uuid.UUID,
	now time.Time,
) (Account, error) {
	if tenantID == uuid.Nil {
		return Account{}, fmt.Errorf("tenant ID is required")
	}
	if code.IsZero() {
		return Account{}, fmt.Errorf("account code is required")
	}
	if name == "" {
		return Account{}, fmt.Errorf("account name is required")
	}
	if !accountType.IsValid() {
		return Account{}, fmt.Errorf("invalid account type %q", accountType)
	}

	return Account{
		id:             uuid.New(),
		tenantID:       tenantID,
		code:           code,
		name:           name,
		accountType:    accountType,
		normalBalance:  accountType.DefaultNormalBalance(),
		parentID:       parentID,
		openingBalance: openingBalance,
		branchID:       branchID,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructAccount recreates an Account from persistence without validation.
func ReconstructAccount(
	id, tenantID uuid.UUID,
	code valueobject.AccountCode,
	name string,
	accountType AccountType,
	normalBalance NormalBalance,
	parentID uuid.UUID,
	openingBalance decimal.Decimal,
	branchID uuid.UUID,
	isActive bool,
	createdAt, updatedAt time.Time,
) Account {
	return Account{
		id:             id,
		tenantID:       tenantID,
		code:           code,
		name:           name,
		accountType:    accountType,
		normalBalance:  normalBalance,
		parentID:       parentID,
		openingBalance: openingBalance,
		branchID:       branchID,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Deactivate marks the account inactive (immutable - returns new copy).
// Accounts with posted history are never deleted, only deactivated.
func (a Account) Deactivate(now time.Time) Account {
	updated := a
	updated.isActive = false
	updated.updatedAt = now
	return updated
}

// SignedNet converts raw debit/credit totals into this account's sign
// convention: debit-normal accounts grow with debits, credit-normal accounts
// grow with credits.
func (a Account) SignedNet(debits, credits decimal.Decimal) decimal.Decimal {
	if a.normalBalance == NormalBalanceDebit {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}

// Accessors
func (a Account) ID() uuid.UUID                    { return a.id }
func (a Account) TenantID() uuid.UUID              { return a.tenantID }
func (a Account) Code() valueobject.AccountCode    { return a.code }
func (a Account) Name() string                     { return a.name }
func (a Account) Type() AccountType                { return a.accountType }
func (a Account) NormalBalance() NormalBalance     { return a.normalBalance }
func (a Account) ParentID() uuid.UUID              { return a.parentID }
func (a Account) HasParent() bool                  { return a.parentID != uuid.Nil }
func (a Account) OpeningBalance() decimal.Decimal  { return a.openingBalance }
func (a Account) BranchID() uuid.UUID              { return a.branchID }
func (a Account) IsActive() bool                   { return a.isActive }
func (a Account) CreatedAt() time.Time             { return a.createdAt }
func (a Account) UpdatedAt() time.Time             { return a.updatedAt }
