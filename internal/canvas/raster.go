package canvas

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/iburimskiy/molnar/internal/colorspace"
)

// Raster draws onto an in-memory RGBA image.
type Raster struct {
	dc     *gg.Context
	mode   colorspace.Mode
	stroke *colorspace.HSB
	fill   *colorspace.HSB
	weight float64
}

func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceUnavailable, width, height)
	}
	dc := gg.NewContext(width, height)
	black := colorspace.HSBMode.Gray(0)
	return &Raster{
		dc:     dc,
		mode:   colorspace.HSBMode,
		stroke: &black,
		weight: 1,
	}, nil
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Image returns the frame drawn so far.
func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) SetColorMode(m colorspace.Mode) { r.mode = m }

func (r *Raster) Clear(c colorspace.HSB) {
	r.dc.SetColor(c.RGBA(r.mode))
	r.dc.Clear()
}

func (r *Raster) SetStroke(c *colorspace.HSB) { r.stroke = copyColor(c) }
func (r *Raster) SetFill(c *colorspace.HSB)   { r.fill = copyColor(c) }
func (r *Raster) SetStrokeWeight(w float64)   { r.weight = w }

func (r *Raster) Rect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.paint()
}

func (r *Raster) Quad(p1, p2, p3, p4 Point) {
	r.dc.MoveTo(p1.X, p1.Y)
	r.dc.LineTo(p2.X, p2.Y)
	r.dc.LineTo(p3.X, p3.Y)
	r.dc.LineTo(p4.X, p4.Y)
	r.dc.ClosePath()
	r.paint()
}

// paint fills then strokes the current path and always leaves it empty.
func (r *Raster) paint() {
	if r.fill != nil {
		r.dc.SetColor(r.fill.RGBA(r.mode))
		r.dc.FillPreserve()
	}
	if r.stroke != nil && r.weight > 0 {
		r.dc.SetColor(r.stroke.RGBA(r.mode))
		r.dc.SetLineWidth(r.weight)
		r.dc.StrokePreserve()
	}
	r.dc.ClearPath()
}

func copyColor(c *colorspace.HSB) *colorspace.HSB {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
