package valueobject

import (
	"fmt"
	"regexp"
)

// Institute charts use four-digit class codes ("1010" cash, "4010" tuition
// fees) with an optional three-digit sub-account suffix ("1010-002" for a
// branch till). The leading digit carries the account class, so it cannot
// be zero.
var accountCodePattern = regexp.MustCompile(`^[1-9][0-9]{3}(-[0-9]{3})?$`)

// AccountCode is the chart-of-accounts position of an account, immutable
// once constructed.
type AccountCode struct {
	code string
}

func NewAccountCode(code string) (AccountCode, error) {
	if !accountCodePattern.MatchString(code) {
		return AccountCode{}, fmt.Errorf("account code %q is not a chart position (want e.g. 1010 or 1010-002)", code)
	}
	return AccountCode{code: code}, nil
}

// MustAccountCode panics on an invalid code. For fixtures and seed data only.
func MustAccountCode(code string) AccountCode {
	ac, err := NewAccountCode(code)
	if err != nil {
		panic(err)
	}
	return ac
}

func (a AccountCode) String() string { return a.code }
func (a AccountCode) Code() string   { return a.code }
func (a AccountCode) IsZero() bool   { return a.code == "" }

func (a AccountCode) Equal(other AccountCode) bool {
	return a.code == other.code
}
