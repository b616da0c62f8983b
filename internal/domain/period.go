package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar granularity used for filtering and navigation.
// The zero value means "no period".
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Periods lists all period kinds in display order.
func Periods() []Period {
	return []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}
}

// ParsePeriod converts a user-supplied string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// Start returns the first calendar day of the period containing ref.
// Weeks start on Monday.
func (p Period) Start(ref time.Time) time.Time {
	ref = DateOf(ref)
	switch p {
	case PeriodWeek:
		// Offset back to the Monday on or before ref.
		offset := (int(ref.Weekday()) + 6) % 7
		return ref.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		return time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return ref
	}
}

// End returns the last calendar day of the period containing ref,
// inclusive.
func (p Period) End(ref time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return p.Start(ref).AddDate(0, 0, 6)
	case PeriodMonth:
		// Day zero of the next month is the last day of this one.
		return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		return time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return DateOf(ref)
	}
}

// Advance shifts ref by count whole periods. Count may be negative.
// Month and year arithmetic follow time.AddDate normalization rules.
func (p Period) Advance(ref time.Time, count int) time.Time {
	ref = DateOf(ref)
	switch p {
	case PeriodWeek:
		return ref.AddDate(0, 0, 7*count)
	case PeriodMonth:
		return ref.AddDate(0, count, 0)
	case PeriodYear:
		return ref.AddDate(count, 0, 0)
	default:
		return ref.AddDate(0, 0, count)
	}
}

// Contains reports whether date falls within the period containing ref,
// bounds inclusive.
func (p Period) Contains(date, ref time.Time) bool {
	date = DateOf(date)
	return !date.Before(p.Start(ref)) && !date.After(p.End(ref))
}

// DisplayText renders the period containing ref for the user:
// a date for a day, a "start - end" pair for a week, month name and year
// for a month, and the year alone for a year.
func (p Period) DisplayText(ref time.Time) string {
	switch p {
	case PeriodWeek:
		return p.Start(ref).Format(DisplayDateLayout) + " - " + p.End(ref).Format(DisplayDateLayout)
	case PeriodMonth:
		return ref.Format("January 2006")
	case PeriodYear:
		return ref.Format("2006")
	default:
		return ref.Format(DisplayDateLayout)
	}
}
