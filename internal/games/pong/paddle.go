package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is one player's paddle. X is fixed by the arena; Y is the top edge.
type Paddle struct {
	Y   float64
	Vel float64 // Signed, pixels per second; negative is up
}

// Motion holds the paddle motion model parameters.
type Motion struct {
	Base         float64 // Immediate response speed
	Acceleration float64 // Buildup added per second while held
	Friction     float64 // Velocity retained per frame with no input
	Max          float64 // Velocity cap
}

// NewMotion derives the motion model from paddle config.
func NewMotion(cfg config.PongPaddle) Motion {
	return Motion{
		Base:         cfg.BaseSpeed(),
		Acceleration: cfg.Acceleration,
		Friction:     cfg.Friction,
		Max:          cfg.MaxSpeed(),
	}
}

// Drive applies held input: snap to base speed, then build up. With no input
// the velocity decays by friction once per frame, regardless of dt.
func (p *Paddle) Drive(dir core.Direction, m Motion, dt float64) {
	switch dir {
	case core.DirUp:
		if p.Vel > -m.Base {
			p.Vel = -m.Base
		}
		p.Vel -= m.Acceleration * dt
	case core.DirDown:
		if p.Vel < m.Base {
			p.Vel = m.Base
		}
		p.Vel += m.Acceleration * dt
	default:
		p.Vel *= m.Friction
	}
}

// Integrate clamps velocity, moves the paddle and keeps it inside [0, maxY].
// A paddle that ends the frame on a boundary stops dead.
func (p *Paddle) Integrate(dt, maxSpeed, maxY float64) {
	p.Vel = core.ClampF(p.Vel, -maxSpeed, maxSpeed)
	p.Y = core.ClampF(p.Y+p.Vel*dt, 0, maxY)
	if p.Y <= 0 || p.Y >= maxY {
		p.Vel = 0
	}
}

// Center returns the vertical center of the paddle.
func (p Paddle) Center(height float64) float64 {
	return p.Y + height/2
}
