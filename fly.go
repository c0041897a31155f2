package bounce

import "math/rand/v2"

// Bounds is the box the logo's top-left corner may occupy:
// [0, MaxX] × [0, MaxY].
type Bounds struct {
	MaxX, MaxY int
}

// BoundsFor returns the bounds of a logo of the given size inside a canvas.
func BoundsFor(canvasW, canvasH, logoW, logoH int) Bounds {
	return Bounds{MaxX: canvasW - logoW, MaxY: canvasH - logoH}
}

// Contains reports whether (x, y) lies inside the box. Edges are inside.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x <= b.MaxX && y >= 0 && y <= b.MaxY
}

// FlyState is the position and per-axis direction of the logo. Directions
// are always -1 or +1; the logo moves one pixel per axis per tick.
type FlyState struct {
	X, Y       int
	DirX, DirY int
}

// NewFlyState places the logo at a random position strictly inside b, so the
// first tick cannot report a wall that the logo has not reached, and points
// it down and to the right. b must have MaxX, MaxY >= 2 (Config.Validate
// guarantees this).
func NewFlyState(b Bounds, rng *rand.Rand) FlyState {
	return FlyState{
		X:    1 + rng.IntN(b.MaxX-1),
		Y:    1 + rng.IntN(b.MaxY-1),
		DirX: 1,
		DirY: 1,
	}
}

// Advance runs one tick. Each axis is checked for a wall, X first: at or
// below zero the direction becomes +1, at or beyond the maximum it becomes
// -1. Only then are both positions stepped by their (possibly flipped)
// direction. The returned Axis holds every axis that hit a wall.
func (s FlyState) Advance(b Bounds) (FlyState, Axis) {
	var hit Axis
	s.DirX, hit = wall(s.X, b.MaxX, s.DirX, hit, AxisX)
	s.DirY, hit = wall(s.Y, b.MaxY, s.DirY, hit, AxisY)
	s.X += s.DirX
	s.Y += s.DirY
	return s, hit
}

func wall(pos, limit, dir int, hit, axis Axis) (int, Axis) {
	switch {
	case pos <= 0:
		return 1, hit | axis
	case pos >= limit:
		return -1, hit | axis
	}
	return dir, hit
}

// Rect returns the destination rectangle of a logo of size w×h.
func (s FlyState) Rect(w, h int) Rect {
	return Rect{X: s.X, Y: s.Y, Width: w, Height: h}
}
