package domain

import (
	"fmt"
	"math"
	"strings"
)

// Color is the red/green/blue/opacity record used for category colors.
// Each component is a float in [0,1]. The struct doubles as the persisted
// wire shape, so the field names are part of the storage format.
type Color struct {
	Red     float64 `json:"red"`
	Green   float64 `json:"green"`
	Blue    float64 `json:"blue"`
	Opacity float64 `json:"opacity"`
}

// ColorFromRGBA converts 8-bit RGBA channel values into a Color.
func ColorFromRGBA(r, g, b, a uint8) Color {
	return Color{
		Red:     float64(r) / 255,
		Green:   float64(g) / 255,
		Blue:    float64(b) / 255,
		Opacity: float64(a) / 255,
	}
}

// ParseHexColor parses a "#rrggbb" or "#rrggbbaa" string into a Color.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	a := uint8(255)
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, ErrInvalidColor
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, ErrInvalidColor
		}
	default:
		return Color{}, ErrInvalidColor
	}
	return ColorFromRGBA(r, g, b, a), nil
}

// RGBA returns the 8-bit channel values of the color.
func (c Color) RGBA() (r, g, b, a uint8) {
	return channel(c.Red), channel(c.Green), channel(c.Blue), channel(c.Opacity)
}

// Hex returns the color as a "#rrggbb" string. Opacity is dropped.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Darken scales each RGB channel by factor, preserving opacity.
func (c Color) Darken(factor float64) Color {
	return Color{
		Red:     c.Red * factor,
		Green:   c.Green * factor,
		Blue:    c.Blue * factor,
		Opacity: c.Opacity,
	}
}

// Valid reports whether every component is within [0,1].
func (c Color) Valid() bool {
	for _, v := range []float64{c.Red, c.Green, c.Blue, c.Opacity} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func channel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
