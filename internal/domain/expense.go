package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single recorded spending event. The identifier is assigned
// at creation and never changes; every other field is mutated in place by
// edit operations.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Time        *time.Time
	Location    string
	Amount      decimal.Decimal
	Description string
	ImagePath   *string
	Category    *Category
}

// NewExpense creates an expense with a fresh identifier. The amount must
// not be negative, location and description must fit their maximum
// lengths, and the date is normalized to a bare calendar day.
func NewExpense(date time.Time, location string, amount decimal.Decimal, description string) (*Expense, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if len(location) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	return &Expense{
		ID:          uuid.New(),
		Date:        DateOf(date),
		Location:    location,
		Amount:      amount,
		Description: description,
	}, nil
}

// DateOf strips the clock from t, leaving midnight UTC of the same
// calendar day. Expense dates and period bounds are always in this form.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InMonth reports whether the expense date falls in the calendar month
// containing ref.
func (e *Expense) InMonth(ref time.Time) bool {
	return e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month()
}
