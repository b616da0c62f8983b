package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/store"
)

// BudgetService computes month-to-date spend per category and reports
// overage against the category's monthly limit. It only computes; whether
// to block on an exceeded limit is the caller's decision.
type BudgetService struct {
	expenses *store.ExpenseStore
	now      func() time.Time
}

// NewBudgetService creates a BudgetService reading from the given store.
func NewBudgetService(expenses *store.ExpenseStore) *BudgetService {
	return &BudgetService{expenses: expenses, now: time.Now}
}

// LimitReport is the outcome of a limit evaluation. Overage is the
// positive amount by which the limit would be exceeded, or zero when
// within the limit.
type LimitReport struct {
	WithinLimit bool
	Overage     decimal.Decimal
}

// SpentThisMonth sums the amounts of all expenses in the given category
// dated in the current calendar month.
func (s *BudgetService) SpentThisMonth(category *domain.Category) decimal.Decimal {
	return s.monthToDate(category, uuid.Nil)
}

// Evaluate reports whether committing an expense of the given amount in
// the category would stay within its monthly limit. An expense being
// edited is excluded from the month-to-date sum via excludeID to avoid
// double counting; pass uuid.Nil for a new expense. A category without a
// limit is always within it.
func (s *BudgetService) Evaluate(category *domain.Category, amount decimal.Decimal, excludeID uuid.UUID) LimitReport {
	if category == nil || category.Unlimited() {
		return LimitReport{WithinLimit: true, Overage: decimal.Zero}
	}

	total := s.monthToDate(category, excludeID).Add(amount)
	if total.GreaterThan(category.Limit) {
		return LimitReport{WithinLimit: false, Overage: total.Sub(category.Limit)}
	}
	return LimitReport{WithinLimit: true, Overage: decimal.Zero}
}

func (s *BudgetService) monthToDate(category *domain.Category, excludeID uuid.UUID) decimal.Decimal {
	ref := s.now()

	total := decimal.Zero
	for _, e := range s.expenses.All() {
		if e.ID == excludeID {
			continue
		}
		if !e.Category.Same(category) || !e.InMonth(ref) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}
