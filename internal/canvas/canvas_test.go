package canvas

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/molnar/internal/colorspace"
	"github.com/stretchr/testify/require"
)

func rgbaAt(r *Raster, x, y int) color.RGBA {
	return color.RGBAModel.Convert(r.Image().At(x, y)).(color.RGBA)
}

func TestNewRasterRejectsEmptySurface(t *testing.T) {
	_, err := NewRaster(0, 10)
	require.ErrorIs(t, err, ErrSurfaceUnavailable)
	_, err = NewRaster(10, -1)
	require.ErrorIs(t, err, ErrSurfaceUnavailable)
}

func TestRasterClear(t *testing.T) {
	r, err := NewRaster(20, 10)
	require.NoError(t, err)
	require.Equal(t, 20, r.Width())
	require.Equal(t, 10, r.Height())

	r.Clear(colorspace.HSBMode.Gray(100))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgbaAt(r, 0, 0))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgbaAt(r, 19, 9))
}

func TestRasterQuadFill(t *testing.T) {
	r, err := NewRaster(100, 100)
	require.NoError(t, err)
	r.Clear(colorspace.HSBMode.Gray(0))

	red := colorspace.HSBMode.Color(0, 100, 100)
	r.SetStroke(nil)
	r.SetFill(&red)
	r.Quad(Point{20, 20}, Point{80, 20}, Point{80, 80}, Point{20, 80})

	require.Equal(t, color.RGBA{R: 255, A: 255}, rgbaAt(r, 50, 50))
	require.Equal(t, color.RGBA{A: 255}, rgbaAt(r, 5, 5))
}

func TestRasterNoFillLeavesInteriorUntouched(t *testing.T) {
	r, err := NewRaster(100, 100)
	require.NoError(t, err)
	r.Clear(colorspace.HSBMode.Gray(0))

	white := colorspace.HSBMode.Gray(100)
	r.SetFill(nil)
	r.SetStroke(&white)
	r.SetStrokeWeight(2)
	r.Rect(10, 10, 80, 80)

	require.Equal(t, color.RGBA{A: 255}, rgbaAt(r, 50, 50))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgbaAt(r, 10, 50))
}

func TestRasterCopiesColours(t *testing.T) {
	r, err := NewRaster(40, 40)
	require.NoError(t, err)
	r.Clear(colorspace.HSBMode.Gray(0))

	c := colorspace.HSBMode.Color(0, 100, 100)
	r.SetStroke(nil)
	r.SetFill(&c)
	c = colorspace.HSBMode.Color(120, 100, 100)
	r.Rect(0, 0, 40, 40)

	require.Equal(t, color.RGBA{R: 255, A: 255}, rgbaAt(r, 20, 20))
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	yellow := colorspace.HSBMode.Color(50, 100, 100)

	rec.SetColorMode(colorspace.HSBMode)
	rec.SetFill(&yellow)
	rec.SetStroke(nil)
	rec.SetStrokeWeight(1)
	rec.Rect(0, 0, 10, 20)
	rec.Quad(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})

	require.Len(t, rec.Commands, 6)
	require.Equal(t, OpColorMode, rec.Commands[0].Op)
	require.Equal(t, colorspace.HSBMode, rec.Commands[0].Mode)
	require.Equal(t, &yellow, rec.Commands[1].Color)
	require.Nil(t, rec.Commands[2].Color)
	require.Equal(t, []Point{{0, 0}, {10, 20}}, rec.Commands[4].Points)
	require.Len(t, rec.Filter(OpQuad), 1)
	require.Equal(t, "quad", OpQuad.String())
}
