package jsonfile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhellwig/spendbook/internal/domain"
)

// categoryRecord is the wire shape of a persisted category. The derived
// font color is persisted alongside the primary color, not re-derived on
// load.
type categoryRecord struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Color     domain.Color `json:"color"`
	FontColor domain.Color `json:"fontColor"`
	Limit     float64      `json:"limit"`
}

// expenseRecord is the wire shape of a persisted expense. Time, image
// path, and category are nullable.
type expenseRecord struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Time        *string         `json:"time"`
	Location    string          `json:"location"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	ImagePath   *string         `json:"imagePath"`
	Category    *categoryRecord `json:"category"`
}

func encodeCategory(c *domain.Category) categoryRecord {
	return categoryRecord{
		ID:        c.ID.String(),
		Name:      c.Name,
		Color:     c.Color,
		FontColor: c.FontColor,
		Limit:     c.Limit.InexactFloat64(),
	}
}

func decodeCategory(rec categoryRecord) (*domain.Category, error) {
	if !rec.Color.Valid() || !rec.FontColor.Valid() {
		return nil, fmt.Errorf("category %q: color component out of range", rec.Name)
	}
	return &domain.Category{
		ID:        parseID(rec.ID),
		Name:      rec.Name,
		Color:     rec.Color,
		FontColor: rec.FontColor,
		Limit:     decimal.NewFromFloat(rec.Limit),
	}, nil
}

func encodeExpense(e *domain.Expense) expenseRecord {
	rec := expenseRecord{
		ID:          e.ID.String(),
		Date:        e.Date.Format(domain.DateLayout),
		Location:    e.Location,
		Amount:      e.Amount.InexactFloat64(),
		Description: e.Description,
		ImagePath:   e.ImagePath,
	}
	if e.Time != nil {
		t := e.Time.Format(domain.TimeLayout)
		rec.Time = &t
	}
	if e.Category != nil {
		c := encodeCategory(e.Category)
		rec.Category = &c
	}
	return rec
}

func decodeExpense(rec expenseRecord, categories CategoryLookup) (*domain.Expense, error) {
	date, err := time.Parse(domain.DateLayout, rec.Date)
	if err != nil {
		return nil, fmt.Errorf("expense %s: invalid date %q", rec.ID, rec.Date)
	}

	expense := &domain.Expense{
		ID:          parseID(rec.ID),
		Date:        date,
		Location:    rec.Location,
		Amount:      decimal.NewFromFloat(rec.Amount),
		Description: rec.Description,
		ImagePath:   rec.ImagePath,
	}

	if rec.Time != nil && *rec.Time != "" {
		t, err := time.Parse(domain.TimeLayout, *rec.Time)
		if err != nil {
			return nil, fmt.Errorf("expense %s: invalid time %q", rec.ID, *rec.Time)
		}
		expense.Time = &t
	}

	if rec.Category != nil {
		// Category identity is name-keyed across reload boundaries:
		// identifiers are regenerated per object instance, so the live
		// category is looked up by name. No match means no category.
		if c, err := categories.ByName(rec.Category.Name); err == nil {
			expense.Category = c
		}
	}
	return expense, nil
}

// parseID accepts any well-formed UUID and falls back to a fresh one.
// Identifiers are not stable across sessions; names are the cross-session
// key where one is needed.
func parseID(s string) uuid.UUID {
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.New()
}
