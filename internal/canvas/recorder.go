package canvas

import "github.com/iburimskiy/molnar/internal/colorspace"

type Op int

const (
	OpColorMode Op = iota
	OpClear
	OpStroke
	OpFill
	OpStrokeWeight
	OpRect
	OpQuad
)

func (o Op) String() string {
	switch o {
	case OpColorMode:
		return "colorMode"
	case OpClear:
		return "clear"
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpStrokeWeight:
		return "strokeWeight"
	case OpRect:
		return "rect"
	case OpQuad:
		return "quad"
	}
	return "unknown"
}

// Command is one recorded call. Only the fields relevant to Op are set.
type Command struct {
	Op     Op
	Mode   colorspace.Mode
	Color  *colorspace.HSB
	Weight float64
	Points []Point
}

// Recorder keeps every call in order instead of drawing.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) SetColorMode(m colorspace.Mode) {
	r.Commands = append(r.Commands, Command{Op: OpColorMode, Mode: m})
}

func (r *Recorder) Clear(c colorspace.HSB) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: &c})
}

func (r *Recorder) SetStroke(c *colorspace.HSB) {
	r.Commands = append(r.Commands, Command{Op: OpStroke, Color: copyColor(c)})
}

func (r *Recorder) SetFill(c *colorspace.HSB) {
	r.Commands = append(r.Commands, Command{Op: OpFill, Color: copyColor(c)})
}

func (r *Recorder) SetStrokeWeight(w float64) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeWeight, Weight: w})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.Commands = append(r.Commands, Command{Op: OpRect, Points: []Point{{x, y}, {x + w, y + h}}})
}

func (r *Recorder) Quad(p1, p2, p3, p4 Point) {
	r.Commands = append(r.Commands, Command{Op: OpQuad, Points: []Point{p1, p2, p3, p4}})
}

// Filter returns the recorded commands with the given op.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
