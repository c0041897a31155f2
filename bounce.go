package bounce

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a surface.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default canvas clear color.
var ColorBlack = Color{0, 0, 0, 1}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA returns the color as a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
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

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Axis is a bitmask of canvas axes. Advance reports collisions with it.
type Axis uint8

const (
	AxisX Axis = 1 << iota // horizontal: left or right wall
	AxisY                  // vertical: top or bottom wall
)

// AxisNone means no axis collided this tick.
const AxisNone Axis = 0

// Has reports whether every bit of other is set in a.
func (a Axis) Has(other Axis) bool {
	return other != 0 && a&other == other
}

// Count returns the number of axes set.
func (a Axis) Count() int {
	n := 0
	if a.Has(AxisX) {
		n++
	}
	if a.Has(AxisY) {
		n++
	}
	return n
}

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisX | AxisY:
		return "xy"
	default:
		return "invalid"
	}
}
