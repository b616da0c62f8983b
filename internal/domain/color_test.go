package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromRGBA_RoundTrip(t *testing.T) {
	c := ColorFromRGBA(255, 128, 0, 255)

	r, g, b, a := c.RGBA()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(128), g)
	assert.Equal(t, uint8(0), b)
	assert.Equal(t, uint8(255), a)
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#ff8000", ColorFromRGBA(255, 128, 0, 255).Hex())
	assert.Equal(t, "#000000", Color{}.Hex())
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", c.Hex())
	assert.InDelta(t, 1.0, c.Opacity, 1e-9)

	c, err = ParseHexColor("ff800080")
	require.NoError(t, err)
	r, g, b, a := c.RGBA()
	assert.Equal(t, [4]uint8{255, 128, 0, 128}, [4]uint8{r, g, b, a})

	_, err = ParseHexColor("#zzzzzz")
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = ParseHexColor("#fff")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestColor_Darken_PreservesOpacity(t *testing.T) {
	c := Color{Red: 0.9, Green: 0.6, Blue: 0.3, Opacity: 0.5}

	d := c.Darken(FontColorFactor)

	assert.InDelta(t, 0.9*FontColorFactor, d.Red, 1e-9)
	assert.InDelta(t, 0.6*FontColorFactor, d.Green, 1e-9)
	assert.InDelta(t, 0.3*FontColorFactor, d.Blue, 1e-9)
	assert.InDelta(t, 0.5, d.Opacity, 1e-9)
}

func TestColor_Valid(t *testing.T) {
	assert.True(t, Color{Red: 0, Green: 0.5, Blue: 1, Opacity: 1}.Valid())
	assert.False(t, Color{Red: -0.1, Opacity: 1}.Valid())
	assert.False(t, Color{Blue: 1.2, Opacity: 1}.Valid())
}
