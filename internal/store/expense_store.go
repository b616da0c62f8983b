package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/event"
)

// Filter selects expenses by free text, category membership, and calendar
// period. Zero-valued criteria pass everything; active criteria combine
// with logical AND.
type Filter struct {
	// Search matches case-insensitively against location or description.
	Search string
	// Categories restricts matches to expenses referencing one of the
	// given categories. Expenses without a category never match a
	// non-empty set.
	Categories []*domain.Category
	// Period restricts matches to the period containing Reference.
	Period domain.Period
	// Reference anchors the period filter.
	Reference time.Time
}

// ExpenseStore owns the live set of expenses for the process lifetime.
// All methods are safe for concurrent use. Queries never mutate the store.
type ExpenseStore struct {
	mu       sync.RWMutex
	expenses []*domain.Expense
	events   event.Publisher
}

// Ensure the store satisfies the reassignment hook used by CategoryStore.
var _ CategoryReassigner = (*ExpenseStore)(nil)

// NewExpenseStore creates an empty store. events is invoked after every
// mutation and may be nil.
func NewExpenseStore(events event.Publisher) *ExpenseStore {
	if events == nil {
		events = event.NoOpPublisher{}
	}
	return &ExpenseStore{events: events}
}

// Add appends the expense to the store.
func (s *ExpenseStore) Add(expense *domain.Expense) {
	if expense == nil {
		return
	}
	s.mu.Lock()
	s.expenses = append(s.expenses, expense)
	s.mu.Unlock()

	// Published outside the critical section so handlers may read the
	// store.
	s.events.Publish(event.ExpenseCreated(expense))
}

// Remove deletes the expense with the given identifier. It reports false
// when no such expense is stored.
func (s *ExpenseStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	var removed *domain.Expense
	for i, e := range s.expenses {
		if e.ID == id {
			removed = e
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if removed == nil {
		return false
	}
	s.events.Publish(event.ExpenseDeleted(removed))
	return true
}

// Update replaces the stored expense with matching identity. It never
// inserts: updating an unknown expense is a no-op reported as false.
func (s *ExpenseStore) Update(expense *domain.Expense) bool {
	if expense == nil {
		return false
	}
	s.mu.Lock()
	replaced := false
	for i, e := range s.expenses {
		if e.ID == expense.ID {
			s.expenses[i] = expense
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if !replaced {
		return false
	}
	s.events.Publish(event.ExpenseUpdated(expense))
	return true
}

// ByID returns the expense with the given identifier, or
// ErrExpenseNotFound.
func (s *ExpenseStore) ByID(id uuid.UUID) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrExpenseNotFound
}

// All returns a copy of the expense list in insertion order.
func (s *ExpenseStore) All() []*domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// ReplaceAll clears the store and repopulates it from expenses, dropping
// nil entries.
func (s *ExpenseStore) ReplaceAll(expenses []*domain.Expense) {
	s.mu.Lock()
	s.expenses = s.expenses[:0]
	for _, e := range expenses {
		if e != nil {
			s.expenses = append(s.expenses, e)
		}
	}
	count := len(s.expenses)
	s.mu.Unlock()

	s.events.Publish(event.ExpensesReplaced(count))
}

// ReassignCategory sets the category of every expense currently
// referencing old to replacement. CategoryStore calls this on delete (with
// the default category) and on update (with the category itself, as a
// reference refresh).
func (s *ExpenseStore) ReassignCategory(old, replacement *domain.Category) {
	s.mu.Lock()
	changed := 0
	for _, e := range s.expenses {
		if e.Category.Same(old) {
			e.Category = replacement
			changed++
		}
	}
	s.mu.Unlock()

	if changed > 0 {
		s.events.Publish(event.ExpensesReassigned(changed))
	}
}

// Query returns the expenses satisfying every active filter, in the
// store's insertion order. The returned slice is freshly allocated.
func (s *ExpenseStore) Query(filter Filter) []*domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if filter.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e *domain.Expense) bool {
	return f.matchesSearch(e) && f.matchesCategories(e) && f.matchesPeriod(e)
}

func (f Filter) matchesSearch(e *domain.Expense) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(e.Location), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle)
}

func (f Filter) matchesCategories(e *domain.Expense) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if e.Category.Same(c) {
			return true
		}
	}
	return false
}

func (f Filter) matchesPeriod(e *domain.Expense) bool {
	if f.Period == "" {
		return true
	}
	return f.Period.Contains(e.Date, f.Reference)
}
