// Package app wires the stores, services, and persistence gateway into a
// single application context owned by the caller. There are no package
// level singletons: construct one App per process, Load it at startup, and
// Flush it at shutdown.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mhellwig/spendbook/internal/config"
	"github.com/mhellwig/spendbook/internal/event"
	"github.com/mhellwig/spendbook/internal/repository/jsonfile"
	"github.com/mhellwig/spendbook/internal/service"
	"github.com/mhellwig/spendbook/internal/store"
)

// ImagesDirName is the subdirectory of the data directory holding expense
// images.
const ImagesDirName = "images"

// App is the application context: the live stores, the budget service,
// the change-notification bus, and the persistence gateway.
type App struct {
	Categories *store.CategoryStore
	Expenses   *store.ExpenseStore
	Budget     *service.BudgetService
	Bus        *event.Bus

	gateway *jsonfile.Store
	cfg     *config.Config
}

// New builds an App from the configuration. It creates the data directory
// but does not read the stores; call Load for that.
func New(cfg *config.Config) (*App, error) {
	gateway, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	expenses := store.NewExpenseStore(bus)
	categories := store.NewCategoryStore(expenses, bus)

	return &App{
		Categories: categories,
		Expenses:   expenses,
		Budget:     service.NewBudgetService(expenses),
		Bus:        bus,
		gateway:    gateway,
		cfg:        cfg,
	}, nil
}

// Load reads both stores from disk. Categories are loaded first so expense
// category references can be re-resolved by name against the live set.
func (a *App) Load() error {
	categories, err := a.gateway.LoadCategories()
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	a.Categories.ReplaceAll(categories)

	expenses, err := a.gateway.LoadExpenses(a.Categories)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	a.Expenses.ReplaceAll(expenses)

	log.Debug().
		Int("categories", len(a.Categories.All())).
		Int("expenses", len(a.Expenses.All())).
		Msg("stores loaded")
	return nil
}

// Flush writes both stores to disk.
func (a *App) Flush() error {
	if err := a.gateway.SaveExpenses(a.Expenses.All()); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	if err := a.gateway.SaveCategories(a.Categories.All()); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// DataDir returns the base data directory.
func (a *App) DataDir() string {
	return a.cfg.DataDir
}

// ImagesDir returns the directory expense images are copied into.
func (a *App) ImagesDir() string {
	return filepath.Join(a.cfg.DataDir, ImagesDirName)
}
