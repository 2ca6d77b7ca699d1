package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiscalPeriod(t *testing.T) {
	fp, err := NewFiscalPeriod(2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, 2026, fp.Year())
	assert.Equal(t, time.March, fp.Month())
	assert.Equal(t, "2026-03", fp.String())

	_, err = NewFiscalPeriod(1999, time.January)
	assert.Error(t, err)

	_, err = NewFiscalPeriod(2026, time.Month(13))
	assert.Error(t, err)
}

func TestFiscalPeriodFromTime(t *testing.T) {
	fp := FiscalPeriodFromTime(time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, 2026, fp.Year())
	assert.Equal(t, time.August, fp.Month())
}

func TestFiscalPeriodDates(t *testing.T) {
	fp, err := NewFiscalPeriod(2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), fp.StartDate())
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), fp.EndDate())
	assert.True(t, fp.Contains(time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, fp.Contains(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFiscalPeriodNextPrevious(t *testing.T) {
	dec, err := NewFiscalPeriod(2025, time.December)
	require.NoError(t, err)
	assert.Equal(t, "2026-01", dec.Next().String())

	jan, err := NewFiscalPeriod(2026, time.January)
	require.NoError(t, err)
	assert.Equal(t, "2025-12", jan.Previous().String())
}
