// Package pong implements a two-player / vs-AI Pong game.
// The left paddle is always human; the right paddle is human or AI depending
// on the selected Mode. Frontends drive the game with Tick and paint Render.
package pong

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Simulation is the mutable world state, owned by a Game.
type Simulation struct {
	Left, Right Paddle
	Ball        Ball
	BallSpeed   float64 // Current rally speed

	LeftScore  int
	RightScore int

	Particles ParticleSystem
	Effects   Effects
}

// Frame is the outcome of one Tick.
type Frame struct {
	State  State
	Events StepEvents
	Quit   bool
}

// Game owns the simulation and the state machine.
type Game struct {
	cfg     config.PongConfig
	arena   Arena
	motion  Motion
	physics BallPhysics
	ai      *AI

	sim   Simulation
	state State

	rng    *rand.Rand // AI error and particles
	jitter *rand.Rand // Screen shake, render only
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds both random sources. Zero means time based.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
		g.jitter = rand.New(rand.NewSource(seed + 1))
	}
}

// WithLogger sets the logger used for state changes and scoring.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game in the Menu state. cfg must already be validated.
func New(cfg config.PongConfig, opts ...Option) *Game {
	arena := NewArena(cfg)
	g := &Game{
		cfg:     cfg,
		arena:   arena,
		motion:  NewMotion(cfg.Paddle),
		physics: NewBallPhysics(cfg, arena),
		state:   Menu{Mode: ModeTwoPlayer},
	}
	g.sim.Particles = NewParticleSystem(cfg.Effects.ParticleGravity)
	WithSeed(0)(g)
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.ai = NewAI(cfg, g.rng)

	g.resetSim(cfg.Ball.InitialBias)
	return g
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Arena returns the fixed geometry.
func (g *Game) Arena() Arena {
	return g.arena
}

// Sim returns a pointer to the simulation. Intended for tests and tools.
func (g *Game) Sim() *Simulation {
	return &g.sim
}

// Reset restores scores, ball, paddles, particles and effects to their
// post-restart values. The state is left unchanged.
func (g *Game) Reset() {
	g.resetSim(g.cfg.Ball.ServeBias)
}

func (g *Game) resetSim(serveBias float64) {
	g.sim.Left = Paddle{Y: g.arena.PaddleStartY}
	g.sim.Right = Paddle{Y: g.arena.PaddleStartY}
	g.sim.LeftScore = 0
	g.sim.RightScore = 0
	g.physics.Serve(&g.sim, 1, serveBias)
	g.sim.Particles.Clear()
	g.sim.Effects = Effects{}
}

// Tick advances the game by dt seconds. In Playing it runs paddle motion,
// AI, ball physics, effects and particles, then applies input transitions.
// A match that ends during the physics step moves straight to GameOver.
func (g *Game) Tick(dt float64, in core.InputSource) Frame {
	prev := g.state

	var ev StepEvents
	if _, ok := prev.(Playing); ok {
		ev = g.step(dt, in)
	}

	next, effect := Transition(prev, in)
	if over, ok := g.matchOver(prev.GameMode(), ev); ok {
		next = over
		if effect != EffectQuit {
			effect = EffectNone
		}
	}

	if effect == EffectReset {
		g.Reset()
	}
	if next.Kind() != prev.Kind() || next.GameMode() != prev.GameMode() {
		g.logger.Debug("state change", "from", prev.Kind(), "to", next.Kind(), "mode", next.GameMode())
	}
	g.state = next

	return Frame{State: next, Events: ev, Quit: effect == EffectQuit}
}

func (g *Game) step(dt float64, in core.InputSource) StepEvents {
	s := &g.sim

	s.Left.Drive(core.HeldDirection(in, core.ActionLeftUp, core.ActionLeftDown), g.motion, dt)
	if g.state.GameMode() == ModeVsAI {
		g.ai.Drive(&s.Right, s.Ball, g.arena.RightPaddleX, g.arena.PaddleHeight)
	} else {
		s.Right.Drive(core.HeldDirection(in, core.ActionRightUp, core.ActionRightDown), g.motion, dt)
	}
	s.Left.Integrate(dt, g.motion.Max, g.arena.PaddleMaxY)
	s.Right.Integrate(dt, g.motion.Max, g.arena.PaddleMaxY)

	ev := g.physics.Step(s, dt)

	fx := g.cfg.Effects
	for _, hit := range ev.Hits {
		s.Effects.Shake = fx.HitShake
		dirX := 1.0
		if hit.Side == SideRight {
			dirX = -1
		}
		s.Particles.Burst(g.rng, fx.Particles, hit.X, hit.Y, dirX)
	}
	if ev.Score != nil {
		s.Effects.Shake = fx.ScoreShake
		s.Effects.Flash = fx.ScoreFlash
		g.logger.Debug("point", "scorer", ev.Score.Scorer, "left", s.LeftScore, "right", s.RightScore)
	}

	s.Effects.Decay(dt, fx.ShakeDecay)
	s.Particles.Update(dt)

	return ev
}

// matchOver reports the GameOver state if the step's point won the match.
func (g *Game) matchOver(mode Mode, ev StepEvents) (State, bool) {
	if ev.Score == nil {
		return nil, false
	}
	score := ev.Score.LeftScore
	if ev.Score.Scorer == SideRight {
		score = ev.Score.RightScore
	}
	if score < g.cfg.Rules.WinningScore {
		return nil, false
	}
	g.logger.Info("match over", "winner", ev.Score.Scorer, "left", ev.Score.LeftScore, "right", ev.Score.RightScore)
	return GameOver{Mode: mode, Winner: ev.Score.Scorer}, true
}

// Render returns the draw commands for the current frame. Only Playing is
// drawn with screen shake.
func (g *Game) Render(m core.TextMeasurer) []core.DrawCommand {
	var dx, dy float64
	if g.state.Kind() == StatePlaying {
		dx, dy = g.sim.Effects.ShakeOffset(g.jitter, g.cfg.Effects.ShakeAmplitude)
	}
	return Render(g.Snapshot(), m, dx, dy)
}
