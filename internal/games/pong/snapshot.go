package pong

// Snapshot is a value copy of everything a renderer needs.
type Snapshot struct {
	State State
	Arena Arena

	Left, Right Paddle
	Ball        Ball
	BallSpeed   float64

	LeftScore  int
	RightScore int

	Particles []Particle
	Effects   Effects
}

// Snapshot returns the current game state. The particle slice is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:      g.state,
		Arena:      g.arena,
		Left:       g.sim.Left,
		Right:      g.sim.Right,
		Ball:       g.sim.Ball,
		BallSpeed:  g.sim.BallSpeed,
		LeftScore:  g.sim.LeftScore,
		RightScore: g.sim.RightScore,
		Particles:  g.sim.Particles.Particles(),
		Effects:    g.sim.Effects,
	}
}
