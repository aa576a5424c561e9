package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Particle is a short-lived decorative spark.
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Life       float64 // Seconds left
	MaxLife    float64 // Life at spawn, fixed
	Size       float64
}

// NewParticle creates a particle at full life.
func NewParticle(x, y, velX, velY, life, size float64) Particle {
	return Particle{
		X:       x,
		Y:       y,
		VelX:    velX,
		VelY:    velY,
		Life:    life,
		MaxLife: life,
		Size:    size,
	}
}

// Update advances the particle and reports whether it is still alive.
// Gravity is applied after the position step.
func (p *Particle) Update(dt, gravity float64) bool {
	p.X += p.VelX * dt
	p.Y += p.VelY * dt
	p.Life -= dt
	p.VelY += gravity * dt
	return p.Life > 0
}

// Alpha is the remaining life fraction, used for fading and shrinking.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// ParticleSystem is an unordered bag of live particles.
type ParticleSystem struct {
	items   []Particle
	gravity float64
}

// NewParticleSystem creates an empty system with the given gravity.
func NewParticleSystem(gravity float64) ParticleSystem {
	return ParticleSystem{gravity: gravity}
}

// Burst spawns n particles at (x, y). dirX is +1 to spray right, -1 to spray left.
func (s *ParticleSystem) Burst(rng *rand.Rand, n int, x, y, dirX float64) {
	for range n {
		speedX := uniform(rng, 50, 200)
		s.items = append(s.items, NewParticle(
			x,
			y,
			dirX*speedX,
			uniform(rng, -100, 100),
			uniform(rng, 0.3, 0.8),
			uniform(rng, 2, 5),
		))
	}
}

// Update advances every particle and drops the dead ones in place.
func (s *ParticleSystem) Update(dt float64) {
	live := s.items[:0]
	for i := range s.items {
		if s.items[i].Update(dt, s.gravity) {
			live = append(live, s.items[i])
		}
	}
	clear(s.items[len(live):])
	s.items = live
}

// Clear removes all particles.
func (s *ParticleSystem) Clear() {
	s.items = s.items[:0]
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.items)
}

// Particles returns a copy of the live particles.
func (s *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(s.items))
	copy(out, s.items)
	return out
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
