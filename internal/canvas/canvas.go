// Package canvas defines the drawing surface the sketch issues commands to,
// plus a raster implementation backed by gg and a recorder for tests.
package canvas

import (
	"errors"

	"github.com/iburimskiy/molnar/internal/colorspace"
)

// ErrSurfaceUnavailable is returned when no rendering surface can be created.
var ErrSurfaceUnavailable = errors.New("rendering surface unavailable")

// Point is a position in canvas pixels, origin top-left.
type Point struct {
	X, Y float64
}

// Canvas is a stateful immediate-mode drawing surface. Colours passed to
// Clear, SetStroke and SetFill are read in the mode set by SetColorMode;
// a nil stroke or fill disables it.
type Canvas interface {
	SetColorMode(m colorspace.Mode)
	Clear(c colorspace.HSB)
	SetStroke(c *colorspace.HSB)
	SetFill(c *colorspace.HSB)
	SetStrokeWeight(w float64)
	Rect(x, y, w, h float64)
	Quad(p1, p2, p3, p4 Point)
}
