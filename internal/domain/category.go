package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCategoryName is the reserved name of the always-present fallback
// category. It cannot be renamed, recolored, or removed.
const DefaultCategoryName = "Default"

// FontColorFactor is the darkening factor applied to a category's primary
// color to derive a legible foreground color.
const FontColorFactor = 0.333

// DefaultCategoryColor is the fixed gray of the default category.
var DefaultCategoryColor = ColorFromRGBA(128, 128, 128, 255)

// Category groups expenses under a name, a display color, and an optional
// monthly spending limit (zero means unlimited).
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     Color
	FontColor Color
	Limit     decimal.Decimal
}

// NewCategory creates a category with a fresh identifier and the derived
// font color. The name must be non-empty after trimming.
func NewCategory(name string, color Color) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > MaxCategoryNameLength {
		return nil, ErrNameTooLong
	}
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		FontColor: color.Darken(FontColorFactor),
		Limit:     decimal.Zero,
	}, nil
}

// NewDefaultCategory creates a fresh instance of the default category.
func NewDefaultCategory() *Category {
	c, _ := NewCategory(DefaultCategoryName, DefaultCategoryColor)
	return c
}

// SetColor updates the primary color and recomputes the derived font color.
// The font color must never be set independently.
func (c *Category) SetColor(color Color) {
	c.Color = color
	c.FontColor = color.Darken(FontColorFactor)
}

// IsDefault reports whether this is the protected default category.
func (c *Category) IsDefault() bool {
	return c.Name == DefaultCategoryName
}

// Unlimited reports whether the category has no monthly spending limit.
func (c *Category) Unlimited() bool {
	return !c.Limit.IsPositive()
}

// Same reports whether both categories refer to the same identity.
// It is nil-safe on either side.
func (c *Category) Same(other *Category) bool {
	if c == nil || other == nil {
		return false
	}
	return c.ID == other.ID
}
