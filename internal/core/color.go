package core

import "math"

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Predefined colors for game elements.
var (
	ColorBlack  = Color{0, 0, 0, 1}
	ColorWhite  = Color{1, 1, 1, 1}
	ColorGray   = Color{0.51, 0.51, 0.51, 1}
	ColorYellow = Color{0.99, 0.98, 0, 1}
)

// NewColor creates a color, clamping every channel into [0, 1].
func NewColor(r, g, b, a float64) Color {
	return Color{
		R: ClampF(r, 0, 1),
		G: ClampF(g, 0, 1),
		B: ClampF(b, 0, 1),
		A: ClampF(a, 0, 1),
	}
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = ClampF(a, 0, 1)
	return c
}

// RGBA8 returns the color as 8-bit channels, alpha left straight.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Over composites c onto an opaque background and returns an opaque color.
// Terminals have no alpha, so the TUI flattens translucent cells this way.
func (c Color) Over(bg Color) Color {
	return Color{
		R: c.R*c.A + bg.R*(1-c.A),
		G: c.G*c.A + bg.G*(1-c.A),
		B: c.B*c.A + bg.B*(1-c.A),
		A: 1,
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}
