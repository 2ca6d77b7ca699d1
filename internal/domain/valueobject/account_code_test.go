package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"1000", true},
		{"1100-002", true},
		{"9999-999", true},
		{"100", false},
		{"10000", false},
		{"0100", false},
		{"1000-1", false},
		{"1000-0001", false},
		{"abcd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ac, err := NewAccountCode(tt.code)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.code, ac.Code())
				assert.False(t, ac.IsZero())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMustAccountCodePanics(t *testing.T) {
	assert.Panics(t, func() { MustAccountCode("not-a-code") })
}

func TestAccountCodeEqual(t *testing.T) {
	a := MustAccountCode("1100")
	b := MustAccountCode("1100")
	c := MustAccountCode("2100")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, AccountCode{}.IsZero())
}
