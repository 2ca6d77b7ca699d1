package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/valueobject"
)

// Validation rule identifiers carried on ValidationError.
const (
	RuleMinimumLines    = "minimum_lines"
	RuleSingleSidedLine = "single_sided_line"
	RuleBalancedTotals  = "balanced_totals"
)

// ValidationError describes why a set of lines cannot be posted. For the
// balanced-totals rule both computed sums are reported so the caller can show
// the exact discrepancy.
type ValidationError struct {
	Rule        string
	LineIndex   int // -1 when the rule is not line-scoped
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Description string
}

func (e ValidationError) Error() string {
	if e.LineIndex >= 0 {
		return fmt.Sprintf("rule %s (line %d): %s", e.Rule, e.LineIndex, e.Description)
	}
	return fmt.Sprintf("rule %s: %s", e.Rule, e.Description)
}

// DocumentValidator is the domain service guarding double-entry balance.
// It is pure: no state is read or written.
type DocumentValidator struct{}

func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{}
}

// ValidateLines enforces the posting invariants on a document's lines:
//   - at least two lines (one debit and one credit at minimum),
//   - every line has exactly one non-zero side,
//   - total debits equal total credits, exact decimal comparison.
//
// Totals are accumulated in a single pass; no rounding is introduced.
func (v *DocumentValidator) ValidateLines(lines []valueobject.LedgerLine) error {
	if len(lines) < 2 {
		return ValidationError{
			Rule:        RuleMinimumLines,
			LineIndex:   -1,
			Description: fmt.Sprintf("a balanced document needs at least 2 lines, got %d", len(lines)),
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		if line.IsDebit() && line.IsCredit() {
			return ValidationError{
				Rule:        RuleSingleSidedLine,
				LineIndex:   i,
				Description: fmt.Sprintf("line must not carry both a debit (%s) and a credit (%s)", line.Debit(), line.Credit()),
			}
		}
		totalDebit = totalDebit.Add(line.Debit())
		totalCredit = totalCredit.Add(line.Credit())
	}

	if !totalDebit.Equal(totalCredit) {
		return ValidationError{
			Rule:        RuleBalancedTotals,
			LineIndex:   -1,
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		}
	}

	return nil
}
