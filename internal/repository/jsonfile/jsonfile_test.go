package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/store"
	"github.com/mhellwig/spendbook/internal/testutil"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCategories_RoundTrip(t *testing.T) {
	s := newStore(t)

	food := testutil.Category(t, "Food")
	food.Limit = decimal.NewFromFloat(150.50)
	travel := testutil.Category(t, "Travel")

	require.NoError(t, s.SaveCategories([]*domain.Category{food, travel}))

	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, food.ID, loaded[0].ID)
	assert.Equal(t, "Food", loaded[0].Name)
	assert.Equal(t, food.Color, loaded[0].Color)
	assert.Equal(t, food.FontColor, loaded[0].FontColor)
	assert.True(t, loaded[0].Limit.Equal(food.Limit))
	assert.Equal(t, "Travel", loaded[1].Name)
	assert.True(t, loaded[1].Limit.IsZero())
}

func TestExpenses_RoundTrip(t *testing.T) {
	s := newStore(t)

	food := testutil.Category(t, "Food")
	categories := store.NewCategoryStore(store.NewExpenseStore(nil), nil)
	categories.Add(food)

	at := time.Date(0, 1, 1, 18, 45, 0, 0, time.UTC)
	image := "images/receipt.png"
	full := testutil.Expense(t, "2024-07-25", 50.25, "Groceries")
	full.Location = "Market"
	full.Time = &at
	full.ImagePath = &image
	full.Category = food

	bare := testutil.Expense(t, "2024-08-11", 75, "Restaurant")

	require.NoError(t, s.SaveExpenses([]*domain.Expense{full, bare}))

	loaded, err := s.LoadExpenses(categories)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	got := loaded[0]
	assert.Equal(t, full.ID, got.ID)
	assert.True(t, got.Date.Equal(testutil.Date(t, "2024-07-25")))
	require.NotNil(t, got.Time)
	assert.Equal(t, "18:45", got.Time.Format(domain.TimeLayout))
	assert.Equal(t, "Market", got.Location)
	assert.True(t, got.Amount.Equal(full.Amount))
	assert.Equal(t, "Groceries", got.Description)
	require.NotNil(t, got.ImagePath)
	assert.Equal(t, image, *got.ImagePath)
	assert.Same(t, food, got.Category)

	assert.Nil(t, loaded[1].Time)
	assert.Nil(t, loaded[1].ImagePath)
	assert.Nil(t, loaded[1].Category)
}

func TestExpenses_UnknownCategoryNameLoadsWithout(t *testing.T) {
	s := newStore(t)

	orphan := testutil.Category(t, "Gone")
	e := testutil.Expense(t, "2024-07-25", 10, "")
	e.Category = orphan
	require.NoError(t, s.SaveExpenses([]*domain.Expense{e}))

	// A lookup that knows nothing about "Gone".
	empty := store.NewCategoryStore(store.NewExpenseStore(nil), nil)

	loaded, err := s.LoadExpenses(empty)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Nil(t, loaded[0].Category)
}

func TestLoad_MissingFileYieldsEmpty(t *testing.T) {
	s := newStore(t)

	categories, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)

	expenses, err := s.LoadExpenses(store.NewCategoryStore(store.NewExpenseStore(nil), nil))
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestLoad_EmptyFileYieldsEmpty(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), categoriesFile), nil, 0o644))

	categories, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), expensesFile), []byte("{not json"), 0o644))

	_, err := s.LoadExpenses(store.NewCategoryStore(store.NewExpenseStore(nil), nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), expensesFile)
}

func TestLoad_OutOfRangeColorIsAnError(t *testing.T) {
	s := newStore(t)
	record := `[{"id":"","name":"Food","color":{"red":3.5,"green":0,"blue":0,"opacity":1},"fontColor":{"red":0.333,"green":0,"blue":0,"opacity":1},"limit":0}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), categoriesFile), []byte(record), 0o644))

	_, err := s.LoadCategories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color component out of range")
}

func TestSave_EmptyListLeavesFileUntouched(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.SaveCategories([]*domain.Category{testutil.Category(t, "Food")}))
	before, err := os.ReadFile(filepath.Join(s.Dir(), categoriesFile))
	require.NoError(t, err)

	require.NoError(t, s.SaveCategories(nil))

	after, err := os.ReadFile(filepath.Join(s.Dir(), categoriesFile))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSave_AmountsAreJSONNumbers(t *testing.T) {
	s := newStore(t)

	e := testutil.Expense(t, "2024-07-25", 50.25, "")
	require.NoError(t, s.SaveExpenses([]*domain.Expense{e}))

	data, err := os.ReadFile(filepath.Join(s.Dir(), expensesFile))
	require.NoError(t, err)

	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "50.25", string(raw[0]["amount"]))
	assert.False(t, strings.HasPrefix(string(raw[0]["amount"]), `"`))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SaveCategories([]*domain.Category{testutil.Category(t, "Food")}))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, categoriesFile, entries[0].Name())
}

func TestMalformedIDGetsReplaced(t *testing.T) {
	s := newStore(t)
	record := `[{"id":"not-a-uuid","name":"Food","color":{"red":1,"green":0,"blue":0,"opacity":1},"fontColor":{"red":0.333,"green":0,"blue":0,"opacity":1},"limit":0}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), categoriesFile), []byte(record), 0o644))

	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", loaded[0].ID.String())
	assert.Equal(t, "Food", loaded[0].Name)
}
