// Package sketch holds the lifecycle hooks of the Molnar drawing: a size
// hook, a one-time setup and a draw pass.
package sketch

import (
	"math/rand/v2"

	"github.com/iburimskiy/molnar/internal/canvas"
	"github.com/iburimskiy/molnar/internal/colorspace"
	"github.com/iburimskiy/molnar/internal/config"
	"github.com/iburimskiy/molnar/internal/pattern"
	"github.com/rs/zerolog"
)

// Host is what a sketch may ask of the program running it.
type Host interface {
	// NoLoop stops the host from calling Draw again after the first frame.
	NoLoop()
}

// Sketch is driven by a host: Settings once, Setup once, then Draw.
type Sketch interface {
	Settings() config.Canvas
	Setup(c canvas.Canvas, h Host)
	Draw(c canvas.Canvas, rng *rand.Rand)
}

// Molnar draws nested, jittered squares in alternating yellow and black.
type Molnar struct {
	cfg     config.Config
	mode    colorspace.Mode
	palette pattern.Palette
	gen     *pattern.Generator
	log     zerolog.Logger
}

func NewMolnar(cfg config.Config, log zerolog.Logger) *Molnar {
	return &Molnar{
		cfg:     cfg,
		mode:    colorspace.HSBMode,
		palette: pattern.DefaultPalette(),
		gen:     pattern.New(cfg.Pattern, cfg.Canvas.Width, cfg.Canvas.Height),
		log:     log,
	}
}

func (m *Molnar) Settings() config.Canvas {
	return m.cfg.Canvas
}

func (m *Molnar) Setup(c canvas.Canvas, h Host) {
	c.SetColorMode(m.mode)
	stroke := m.mode.Gray(0)
	c.SetStroke(&stroke)
	c.SetStrokeWeight(config.StrokeWeight)
	c.SetFill(nil)
	h.NoLoop()
}

func (m *Molnar) Draw(c canvas.Canvas, rng *rand.Rand) {
	w, h := float64(m.cfg.Canvas.Width), float64(m.cfg.Canvas.Height)

	c.Clear(m.mode.Color(0, 0, 0))
	border := m.mode.Color(0, 0, 100)
	c.SetStroke(&border)
	c.SetFill(nil)
	c.Rect(0, 0, w, h)

	outline := m.mode.Color(0, 0, 0)
	c.SetStroke(&outline)
	rings := m.gen.Draw(c, m.palette, rng)

	m.log.Debug().
		Int("rings", len(rings)).
		Float64("size", m.gen.Size()).
		Float64("jitter", m.cfg.Pattern.Jitter).
		Msg("pattern drawn")
}
