package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestPeriodWeek_StartIsMonday(t *testing.T) {
	// Sweep two full weeks so every weekday is covered.
	ref := day(t, "2024-07-01")
	for i := 0; i < 14; i++ {
		d := ref.AddDate(0, 0, i)
		start := PeriodWeek.Start(d)
		assert.Equal(t, time.Monday, start.Weekday(), "start of week for %s", d.Format(DateLayout))
		assert.False(t, start.After(d))
		assert.Equal(t, start.AddDate(0, 0, 6), PeriodWeek.End(d))
	}
}

func TestPeriodWeek_Bounds(t *testing.T) {
	// 2024-07-25 is a Thursday.
	assert.Equal(t, day(t, "2024-07-22"), PeriodWeek.Start(day(t, "2024-07-25")))
	assert.Equal(t, day(t, "2024-07-28"), PeriodWeek.End(day(t, "2024-07-25")))
	// A Monday is its own week start.
	assert.Equal(t, day(t, "2024-07-22"), PeriodWeek.Start(day(t, "2024-07-22")))
}

func TestPeriodMonth_Bounds(t *testing.T) {
	tests := []struct {
		ref, start, end string
	}{
		{"2024-07-25", "2024-07-01", "2024-07-31"},
		{"2024-02-10", "2024-02-01", "2024-02-29"}, // leap year
		{"2023-02-10", "2023-02-01", "2023-02-28"},
		{"2024-12-31", "2024-12-01", "2024-12-31"},
	}
	for _, tt := range tests {
		start := PeriodMonth.Start(day(t, tt.ref))
		end := PeriodMonth.End(day(t, tt.ref))
		assert.Equal(t, day(t, tt.start), start, "start for %s", tt.ref)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, day(t, tt.end), end, "end for %s", tt.ref)
	}
}

func TestPeriodYear_Bounds(t *testing.T) {
	assert.Equal(t, day(t, "2024-01-01"), PeriodYear.Start(day(t, "2024-07-25")))
	assert.Equal(t, day(t, "2024-12-31"), PeriodYear.End(day(t, "2024-07-25")))
}

func TestPeriodDay_Bounds(t *testing.T) {
	d := day(t, "2024-07-25")
	assert.Equal(t, d, PeriodDay.Start(d))
	assert.Equal(t, d, PeriodDay.End(d))
}

func TestPeriod_Advance(t *testing.T) {
	d := day(t, "2024-07-25")

	assert.Equal(t, day(t, "2024-07-26"), PeriodDay.Advance(d, 1))
	assert.Equal(t, day(t, "2024-07-18"), PeriodWeek.Advance(d, -1))
	assert.Equal(t, day(t, "2024-09-25"), PeriodMonth.Advance(d, 2))
	assert.Equal(t, day(t, "2026-07-25"), PeriodYear.Advance(d, 2))
	// Month-end overflow follows AddDate normalization.
	assert.Equal(t, day(t, "2024-12-01"), PeriodMonth.Advance(day(t, "2024-10-31"), 1))
}

func TestPeriod_Contains(t *testing.T) {
	ref := day(t, "2024-07-25")

	assert.True(t, PeriodMonth.Contains(day(t, "2024-07-01"), ref))
	assert.True(t, PeriodMonth.Contains(day(t, "2024-07-31"), ref))
	assert.False(t, PeriodMonth.Contains(day(t, "2024-08-01"), ref))
	assert.True(t, PeriodYear.Contains(day(t, "2024-01-01"), ref))
	assert.False(t, PeriodDay.Contains(day(t, "2024-07-24"), ref))
}

func TestPeriod_DisplayText(t *testing.T) {
	ref := day(t, "2024-07-25")

	assert.Equal(t, "25.07.2024", PeriodDay.DisplayText(ref))
	assert.Equal(t, "22.07.2024 - 28.07.2024", PeriodWeek.DisplayText(ref))
	assert.Equal(t, "July 2024", PeriodMonth.DisplayText(ref))
	assert.Equal(t, "2024", PeriodYear.DisplayText(ref))
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("Month")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, p)

	_, err = ParsePeriod("fortnight")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
