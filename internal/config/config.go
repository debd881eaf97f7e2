package config

import (
	"errors"
	"fmt"
)

const (
	CanvasWidth  = 800
	CanvasHeight = 800

	WindowTitle = "Molnar - Esc: Quit"

	// Colour mode channel maxima
	HueRange        = 360
	SaturationRange = 100
	BrightnessRange = 100
	AlphaRange      = 250

	StrokeWeight = 1

	// Pattern parameters
	RingCount      = 11   // molnar
	SizeFraction   = 0.8  // of canvas width
	ShrinkFraction = 0.05 // of base size, per ring
	Jitter         = 42   // vera
)

// Canvas is the size answered by the sketch's size hook.
type Canvas struct {
	Width  int
	Height int
}

// Pattern holds the constants of the nested quad procedure.
type Pattern struct {
	Rings          int
	SizeFraction   float64
	ShrinkFraction float64
	Jitter         float64
}

// Config is built once at startup and never mutated.
type Config struct {
	Canvas  Canvas
	Pattern Pattern
}

func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  CanvasWidth,
			Height: CanvasHeight,
		},
		Pattern: Pattern{
			Rings:          RingCount,
			SizeFraction:   SizeFraction,
			ShrinkFraction: ShrinkFraction,
			Jitter:         Jitter,
		},
	}
}

var errInvalid = errors.New("invalid config")

// Validate reports the first field that cannot produce a drawing.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", errInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Pattern.Rings < 0:
		return fmt.Errorf("%w: ring count %d", errInvalid, c.Pattern.Rings)
	case c.Pattern.SizeFraction <= 0:
		return fmt.Errorf("%w: size fraction %v", errInvalid, c.Pattern.SizeFraction)
	case c.Pattern.ShrinkFraction < 0:
		return fmt.Errorf("%w: shrink fraction %v", errInvalid, c.Pattern.ShrinkFraction)
	case c.Pattern.Jitter < 0:
		return fmt.Errorf("%w: jitter %v", errInvalid, c.Pattern.Jitter)
	}
	return nil
}

// IsInvalid reports whether err came from Validate.
func IsInvalid(err error) bool {
	return errors.Is(err, errInvalid)
}
