package valueobject

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerLine is a single row of a ledger document: a debit or a credit against
// one account, optionally attributed to a cost center. Immutable value object.
// A well-formed line carries exactly one non-zero side.
type LedgerLine struct {
	accountID    uuid.UUID
	debit        decimal.Decimal
	credit       decimal.Decimal
	costCenterID uuid.UUID // uuid.Nil = no cost center
	description  string
}

func NewLedgerLine(accountID uuid.UUID, debit, credit decimal.Decimal, costCenterID uuid.UUID, description string) (LedgerLine, error) {
	if accountID == uuid.Nil {
		return LedgerLine{}, fmt.Errorf("account reference is required")
	}
	if debit.IsNegative() {
		return LedgerLine{}, fmt.Errorf("debit must not be negative, got %s", debit)
	}
	if credit.IsNegative() {
		return LedgerLine{}, fmt.Errorf("credit must not be negative, got %s", credit)
	}
	if debit.IsZero() && credit.IsZero() {
		return LedgerLine{}, fmt.Errorf("line must carry a debit or a credit amount")
	}
	if err := checkScale("debit", debit); err != nil {
		return LedgerLine{}, err
	}
	if err := checkScale("credit", credit); err != nil {
		return LedgerLine{}, err
	}
	return LedgerLine{
		accountID:    accountID,
		debit:        debit,
		credit:       credit,
		costCenterID: costCenterID,
		description:  description,
	}, nil
}

// checkScale rejects amounts with more than 2 decimal places. Monetary values
// are exact decimals; sub-cent precision would be silently lost at the
// storage boundary.
func checkScale(side string, amount decimal.Decimal) error {
	hundredths := amount.Mul(decimal.NewFromInt(100))
	if !hundredths.Equal(hundredths.Floor()) {
		return fmt.Errorf("%s %s has more than 2 decimal places", side, amount)
	}
	return nil
}

func (l LedgerLine) AccountID() uuid.UUID    { return l.accountID }
func (l LedgerLine) Debit() decimal.Decimal  { return l.debit }
func (l LedgerLine) Credit() decimal.Decimal { return l.credit }
func (l LedgerLine) CostCenterID() uuid.UUID { return l.costCenterID }
func (l LedgerLine) Description() string     { return l.description }

func (l LedgerLine) HasCostCenter() bool { return l.costCenterID != uuid.Nil }

// IsDebit reports whether this line's non-zero side is the debit side.
func (l LedgerLine) IsDebit() bool { return !l.debit.IsZero() }

// IsCredit reports whether this line's non-zero side is the credit side.
func (l LedgerLine) IsCredit() bool { return !l.credit.IsZero() }

func (l LedgerLine) String() string {
	if l.IsDebit() && !l.IsCredit() {
		return fmt.Sprintf("DR %s: %s", l.accountID, l.debit.StringFixed(2))
	}
	if l.IsCredit() && !l.IsDebit() {
		return fmt.Sprintf("CR %s: %s", l.accountID, l.credit.StringFixed(2))
	}
	return fmt.Sprintf("DR/CR %s: %s/%s", l.accountID, l.debit.StringFixed(2), l.credit.StringFixed(2))
}
