package store

import (
	"strings"
	"sync"

	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/event"
)

// CategoryReassigner redirects expense category references when a category
// is removed or updated. Implemented by ExpenseStore.
type CategoryReassigner interface {
	ReassignCategory(old, replacement *domain.Category)
}

// CategoryStore owns the live set of categories for the process lifetime.
// It guarantees that the default category always exists and that names are
// unique case-insensitively. All methods are safe for concurrent use.
//
// Mutating methods report no-op conditions through their return value
// rather than an error: a false result means the store was left untouched.
type CategoryStore struct {
	mu         sync.RWMutex
	categories []*domain.Category
	expenses   CategoryReassigner
	events     event.Publisher
}

// NewCategoryStore creates a store seeded with the default category.
// expenses receives reference reassignments on delete and update; events
// is invoked after every mutation and may be nil.
func NewCategoryStore(expenses CategoryReassigner, events event.Publisher) *CategoryStore {
	if events == nil {
		events = event.NoOpPublisher{}
	}
	return &CategoryStore{
		categories: []*domain.Category{domain.NewDefaultCategory()},
		expenses:   expenses,
		events:     events,
	}
}

// Add inserts the category unless one with the same name already exists
// (case-insensitive). A duplicate is silently ignored.
func (s *CategoryStore) Add(category *domain.Category) bool {
	if category == nil {
		return false
	}
	s.mu.Lock()
	if s.byNameLocked(category.Name) != nil {
		s.mu.Unlock()
		return false
	}
	s.categories = append(s.categories, category)
	s.mu.Unlock()

	// Published outside the critical section so handlers may read the
	// store.
	s.events.Publish(event.CategoryCreated(category))
	return true
}

// Remove deletes the category and redirects every expense pointing at it
// to the default category. Removing the default category is a no-op.
func (s *CategoryStore) Remove(category *domain.Category) bool {
	if category == nil || category.IsDefault() {
		return false
	}
	s.mu.Lock()
	idx := -1
	for i, c := range s.categories {
		if c.Same(category) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	fallback := s.byNameLocked(domain.DefaultCategoryName)
	s.mu.Unlock()

	if s.expenses != nil {
		s.expenses.ReassignCategory(category, fallback)
	}
	s.events.Publish(event.CategoryDeleted(category))
	return true
}

// Update applies the name, color, and limit of updated to the stored
// category named oldName, in place. The derived font color is recomputed
// and the expense references for the category are refreshed. The update is
// a no-op when oldName is the default category, when no such category
// exists, or when the new name is already taken by a different category.
func (s *CategoryStore) Update(oldName string, updated *domain.Category) bool {
	if updated == nil || oldName == domain.DefaultCategoryName {
		return false
	}
	s.mu.Lock()
	existing := s.byNameLocked(oldName)
	if existing == nil {
		s.mu.Unlock()
		return false
	}
	if !strings.EqualFold(updated.Name, oldName) && s.byNameLocked(updated.Name) != nil {
		s.mu.Unlock()
		return false
	}

	existing.Name = updated.Name
	existing.SetColor(updated.Color)
	existing.Limit = updated.Limit
	s.mu.Unlock()

	// Self-reassignment refreshes dependent references after an
	// in-place edit.
	if s.expenses != nil {
		s.expenses.ReassignCategory(existing, existing)
	}
	s.events.Publish(event.CategoryUpdated(existing))
	return true
}

// ByName returns the category with the given name, matched
// case-insensitively, or ErrCategoryNotFound.
func (s *CategoryStore) ByName(name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c := s.byNameLocked(name); c != nil {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// All returns a copy of the category list in insertion order.
func (s *CategoryStore) All() []*domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ReplaceAll clears the store and repopulates it from categories, dropping
// nil entries. If the result lacks the default category, one is
// synthesized so the store invariant holds.
func (s *CategoryStore) ReplaceAll(categories []*domain.Category) {
	s.mu.Lock()
	s.categories = s.categories[:0]
	for _, c := range categories {
		if c != nil {
			s.categories = append(s.categories, c)
		}
	}

	hasDefault := false
	for _, c := range s.categories {
		if c.Name == domain.DefaultCategoryName {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		s.categories = append(s.categories, domain.NewDefaultCategory())
	}
	count := len(s.categories)
	s.mu.Unlock()

	s.events.Publish(event.CategoriesReplaced(count))
}

// byNameLocked must be called with the mutex held.
func (s *CategoryStore) byNameLocked(name string) *domain.Category {
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
