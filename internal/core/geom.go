// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (no Bubble Tea, no
// ebiten) to keep game logic pure and testable.
package core

// Virtual arena resolution. Frontends scale this to whatever they render on.
const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0
)

// MaxFrameDelta caps the delta a frontend feeds the simulation after a stall
// (window drag, suspended terminal). The core itself never clamps.
const MaxFrameDelta = 0.25

// Rect represents an axis-aligned bounding box in arena pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps returns true if this rectangle touches or overlaps another.
// Edges count as contact, so adjacent rectangles overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X <= other.Right() && r.Right() >= other.X &&
		r.Y <= other.Bottom() && r.Bottom() >= other.Y
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
