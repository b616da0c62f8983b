// Package jsonfile persists the category and expense stores as two
// pretty-printed JSON files under a configurable base directory.
//
// Saving an empty list is a warning-level no-op rather than an error, so a
// freshly started session never overwrites existing data with emptiness.
// Loading from a missing or empty file yields an empty list. Writes go to
// a temporary file first and are moved into place with a rename, so a
// concurrent reader never observes a partial file.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mhellwig/spendbook/internal/domain"
)

const (
	categoriesFile = "categories.json"
	expensesFile   = "expenses.json"
)

// CategoryLookup resolves a persisted category name to the live category
// object. Implemented by store.CategoryStore.
type CategoryLookup interface {
	ByName(name string) (*domain.Category, error)
}

// Store reads and writes the two JSON stores under its base directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if absent.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// SaveCategories writes the category list. An empty or nil list is not
// written: the existing file, if any, is left untouched.
func (s *Store) SaveCategories(categories []*domain.Category) error {
	if len(categories) == 0 {
		log.Warn().Msg("no categories to save")
		return nil
	}

	records := make([]categoryRecord, 0, len(categories))
	for _, c := range categories {
		records = append(records, encodeCategory(c))
	}
	return s.write(categoriesFile, records)
}

// LoadCategories reads the category list. A missing or empty file yields
// an empty list; malformed content is an error.
func (s *Store) LoadCategories() ([]*domain.Category, error) {
	data, ok, err := s.read(categoriesFile)
	if err != nil || !ok {
		return []*domain.Category{}, err
	}

	var records []categoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", categoriesFile, err)
	}

	categories := make([]*domain.Category, 0, len(records))
	for _, rec := range records {
		category, err := decodeCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", categoriesFile, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// SaveExpenses writes the expense list. An empty or nil list is not
// written: the existing file, if any, is left untouched.
func (s *Store) SaveExpenses(expenses []*domain.Expense) error {
	if len(expenses) == 0 {
		log.Warn().Msg("no expenses to save")
		return nil
	}

	records := make([]expenseRecord, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, encodeExpense(e))
	}
	return s.write(expensesFile, records)
}

// LoadExpenses reads the expense list, re-resolving each record's category
// reference by name through categories. A category name with no live match
// yields an expense without a category, not an error. A missing or empty
// file yields an empty list.
func (s *Store) LoadExpenses(categories CategoryLookup) ([]*domain.Expense, error) {
	data, ok, err := s.read(expensesFile)
	if err != nil || !ok {
		return []*domain.Expense{}, err
	}

	var records []expenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", expensesFile, err)
	}

	expenses := make([]*domain.Expense, 0, len(records))
	for _, rec := range records {
		expense, err := decodeExpense(rec, categories)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", expensesFile, err)
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// read returns the file contents and whether there is anything to parse.
func (s *Store) read(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", name).Msg("store file missing, starting empty")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		log.Warn().Str("file", name).Msg("store file empty, starting empty")
		return nil, false, nil
	}
	return data, true, nil
}

// write marshals v pretty-printed and atomically replaces the named file.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
