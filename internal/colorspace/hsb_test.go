package colorspace

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightYellow(t *testing.T) {
	c := HSBMode.Color(50, 100, 100).RGBA(HSBMode)
	require.Equal(t, uint8(255), c.R)
	require.InDelta(t, 212, int(c.G), 1)
	require.Equal(t, uint8(0), c.B)
	require.Equal(t, uint8(255), c.A)
}

func TestZeroBrightnessIsBlack(t *testing.T) {
	c := HSBMode.Color(50, 0, 0).RGBA(HSBMode)
	require.Equal(t, color.NRGBA{A: 255}, c)
}

func TestGray(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 255}, HSBMode.Gray(0).RGBA(HSBMode))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, HSBMode.Gray(100).RGBA(HSBMode))
}

func TestAlphaRange(t *testing.T) {
	c := HSB{B: 100, A: 125}.RGBA(HSBMode)
	require.InDelta(t, 128, int(c.A), 1)
}

func TestHueWraps(t *testing.T) {
	red := HSBMode.Color(0, 100, 100).RGBA(HSBMode)
	wrapped := HSBMode.Color(360, 100, 100).RGBA(HSBMode)
	negative := HSBMode.Color(-360, 100, 100).RGBA(HSBMode)
	require.Equal(t, red, wrapped)
	require.Equal(t, red, negative)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, red)
}

func TestOutOfRangeChannelsClamp(t *testing.T) {
	c := HSB{H: 0, S: 250, B: 400, A: 9000}.RGBA(HSBMode)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, c)
}

func TestCustomRanges(t *testing.T) {
	unit := Mode{Hue: 1, Saturation: 1, Brightness: 1, Alpha: 1}
	c := unit.Color(0.5, 1, 1).RGBA(unit)
	require.Equal(t, color.NRGBA{G: 255, B: 255, A: 255}, c)
}
