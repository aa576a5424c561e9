package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Effects holds the cosmetic timers. Both decay linearly to zero.
type Effects struct {
	Shake float64
	Flash float64
}

// Decay advances both timers. Shake drains at decayRate units per second.
func (e *Effects) Decay(dt, decayRate float64) {
	e.Shake = max(e.Shake-dt*decayRate, 0)
	e.Flash = max(e.Flash-dt, 0)
}

// ShakeOffset returns a random (dx, dy) jitter for the current shake level.
func (e Effects) ShakeOffset(rng *rand.Rand, amplitude float64) (float64, float64) {
	if e.Shake <= 0 {
		return 0, 0
	}
	r := e.Shake * amplitude
	return uniform(rng, -r, r), uniform(rng, -r, r)
}

// ScoreColor returns the score text color: white normally, pulsing red
// while the flash timer runs.
func (e Effects) ScoreColor() core.Color {
	if e.Flash <= 0 {
		return core.ColorWhite
	}
	pulse := math.Abs(math.Sin(e.Flash * 10))
	return core.NewColor(1, pulse, pulse, 1)
}
