// Package pattern generates the nested, jittered quadrilaterals of the
// Molnar sketch.
//
// Each ring is a square centred on the canvas whose four corners are moved
// independently by up to Jitter pixels on each axis. Rings shrink linearly
// and their fill alternates between two tones starting with Bright.
package pattern

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/molnar/internal/canvas"
	"github.com/iburimskiy/molnar/internal/colorspace"
	"github.com/iburimskiy/molnar/internal/config"
)

// Tone selects one of the two alternating fills.
type Tone int

const (
	Bright Tone = iota
	Dark
)

// Next returns the tone of the following ring.
func (t Tone) Next() Tone {
	if t == Bright {
		return Dark
	}
	return Bright
}

func (t Tone) String() string {
	switch t {
	case Bright:
		return "bright"
	case Dark:
		return "dark"
	}
	return "unknown"
}

// Palette maps tones to colours.
type Palette map[Tone]colorspace.HSB

// DefaultPalette is a yellow and a black in colorspace.HSBMode.
func DefaultPalette() Palette {
	return Palette{
		Bright: colorspace.HSBMode.Color(50, 100, 100),
		Dark:   colorspace.HSBMode.Color(50, 0, 0),
	}
}

// Ring is one generated quadrilateral.
type Ring struct {
	Index    int
	HalfSize float64
	Tone     Tone
	// Corners run top-left, top-right, bottom-right, bottom-left.
	Corners [4]canvas.Point
	// Offsets holds the jitter applied to each corner as x0,y0,x1,y1,...
	Offsets [8]float64
}

// Generator is immutable and may be reused across draws.
type Generator struct {
	cfg    config.Pattern
	cx, cy float64
	size   float64
}

func New(cfg config.Pattern, width, height int) *Generator {
	return &Generator{
		cfg:  cfg,
		cx:   float64(width) * 0.5,
		cy:   float64(height) * 0.5,
		size: float64(width) * cfg.SizeFraction,
	}
}

// Size is the edge length of the outermost ring before jitter.
func (g *Generator) Size() float64 { return g.size }

// HalfSize returns the un-jittered half edge of ring i. The sequence is
// linear and never goes below zero.
func (g *Generator) HalfSize(i int) float64 {
	h := g.size*0.5 - float64(i)*g.size*g.cfg.ShrinkFraction
	return math.Max(h, 0)
}

// Rings computes every ring, drawing eight offsets per ring from rng.
func (g *Generator) Rings(rng *rand.Rand) []Ring {
	rings := make([]Ring, 0, g.cfg.Rings)
	tone := Bright
	for i := 0; i < g.cfg.Rings; i++ {
		r := Ring{
			Index:    i,
			HalfSize: g.HalfSize(i),
			Tone:     tone,
		}
		for k := range r.Offsets {
			r.Offsets[k] = g.jitter(rng)
		}
		h := r.HalfSize
		square := [4]canvas.Point{
			{X: g.cx - h, Y: g.cy - h},
			{X: g.cx + h, Y: g.cy - h},
			{X: g.cx + h, Y: g.cy + h},
			{X: g.cx - h, Y: g.cy + h},
		}
		for k, p := range square {
			r.Corners[k] = canvas.Point{X: p.X + r.Offsets[2*k], Y: p.Y + r.Offsets[2*k+1]}
		}
		rings = append(rings, r)
		tone = tone.Next()
	}
	return rings
}

// Draw generates the rings and issues one fill and one quad per ring.
func (g *Generator) Draw(c canvas.Canvas, p Palette, rng *rand.Rand) []Ring {
	rings := g.Rings(rng)
	for _, r := range rings {
		fill := p[r.Tone]
		c.SetFill(&fill)
		c.Quad(r.Corners[0], r.Corners[1], r.Corners[2], r.Corners[3])
	}
	return rings
}

// jitter is uniform in [-Jitter, Jitter).
func (g *Generator) jitter(rng *rand.Rand) float64 {
	v := g.cfg.Jitter
	return -v + rng.Float64()*2*v
}
