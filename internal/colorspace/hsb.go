// Package colorspace converts hue/saturation/brightness colours with
// configurable channel ranges into RGBA.
package colorspace

import (
	"image/color"
	"math"

	"github.com/iburimskiy/molnar/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Mode holds the maximum value of each channel.
type Mode struct {
	Hue        float64
	Saturation float64
	Brightness float64
	Alpha      float64
}

// HSBMode is the mode the sketch draws in.
var HSBMode = Mode{
	Hue:        config.HueRange,
	Saturation: config.SaturationRange,
	Brightness: config.BrightnessRange,
	Alpha:      config.AlphaRange,
}

// HSB is a colour expressed in the channel ranges of some Mode.
type HSB struct {
	H, S, B, A float64
}

// Color returns an opaque colour in m.
func (m Mode) Color(h, s, b float64) HSB {
	return HSB{H: h, S: s, B: b, A: m.Alpha}
}

// Gray returns an opaque grey of brightness v, like a single-argument stroke call.
func (m Mode) Gray(v float64) HSB {
	return HSB{B: v, A: m.Alpha}
}

// RGBA converts c, read in mode m, to a non-premultiplied colour.
func (c HSB) RGBA(m Mode) color.NRGBA {
	h := math.Mod(ratio(c.H, m.Hue)*360, 360)
	if h < 0 {
		h += 360
	}
	rgb := colorful.Hsv(h, clamp01(ratio(c.S, m.Saturation)), clamp01(ratio(c.B, m.Brightness))).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(ratio(c.A, m.Alpha)) * 255))}
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
