package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball is the ball's center position and velocity.
type Ball struct {
	X, Y       float64
	VelX, VelY float64
}

// HitEvent reports a paddle contact.
type HitEvent struct {
	Side      Side
	X, Y      float64 // Contact point on the paddle face
	HitPos    float64 // 0 = top edge, 1 = bottom edge; grazes fall outside
	BallSpeed float64 // Speed after escalation
}

// ScoreEvent reports a point.
type ScoreEvent struct {
	Scorer     Side
	LeftScore  int
	RightScore int
}

// StepEvents collects what happened during one ball step.
type StepEvents struct {
	Hits  []HitEvent
	Score *ScoreEvent
}

// BallPhysics moves the ball and resolves walls, paddles and scoring.
type BallPhysics struct {
	arena           Arena
	speed           float64
	maxSpeed        float64
	speedIncrease   float64
	spinFactor      float64
	paddleInfluence float64
	serveBias       float64
}

// NewBallPhysics derives ball parameters from config.
func NewBallPhysics(cfg config.PongConfig, arena Arena) BallPhysics {
	return BallPhysics{
		arena:           arena,
		speed:           cfg.Ball.Speed,
		maxSpeed:        cfg.Ball.MaxSpeed(),
		speedIncrease:   cfg.Ball.SpeedIncrease,
		spinFactor:      cfg.Ball.SpinFactor,
		paddleInfluence: cfg.Ball.PaddleInfluence,
		serveBias:       cfg.Ball.ServeBias,
	}
}

// Step advances the ball by dt. Order: integrate, walls, left paddle, right
// paddle, scoring.
func (bp BallPhysics) Step(s *Simulation, dt float64) StepEvents {
	var ev StepEvents
	a := bp.arena

	s.Ball.X += s.Ball.VelX * dt
	s.Ball.Y += s.Ball.VelY * dt

	bp.bounceWalls(&s.Ball)

	if s.Ball.VelX < 0 && a.BallRect(s.Ball).Overlaps(a.PaddleRect(SideLeft, s.Left.Y)) {
		ev.Hits = append(ev.Hits, bp.reflect(s, SideLeft))
	}
	if s.Ball.VelX > 0 && a.BallRect(s.Ball).Overlaps(a.PaddleRect(SideRight, s.Right.Y)) {
		ev.Hits = append(ev.Hits, bp.reflect(s, SideRight))
	}

	switch {
	case s.Ball.X < -a.BallSize:
		s.RightScore++
		bp.Serve(s, 1, bp.serveBias)
		ev.Score = &ScoreEvent{Scorer: SideRight, LeftScore: s.LeftScore, RightScore: s.RightScore}
	case s.Ball.X > a.Width+a.BallSize:
		s.LeftScore++
		bp.Serve(s, -1, bp.serveBias)
		ev.Score = &ScoreEvent{Scorer: SideLeft, LeftScore: s.LeftScore, RightScore: s.RightScore}
	}

	return ev
}

// bounceWalls inverts vertical velocity on contact with the top or bottom
// band and pulls the ball back inside so it cannot stick or tunnel.
func (bp BallPhysics) bounceWalls(b *Ball) {
	size, h := bp.arena.BallSize, bp.arena.Height
	if b.Y <= size || b.Y >= h-size {
		b.VelY = -b.VelY
		b.Y = core.ClampF(b.Y, size, h-size)
	}
}

// reflect sends the ball back from a paddle. Hit position sets the angle and
// the paddle's own velocity adds spin.
func (bp BallPhysics) reflect(s *Simulation, side Side) HitEvent {
	paddle, dirX, faceX := s.Left, 1.0, bp.arena.LeftPaddleX+bp.arena.PaddleWidth
	if side == SideRight {
		paddle, dirX, faceX = s.Right, -1.0, bp.arena.RightPaddleX
	}

	s.BallSpeed = min(s.BallSpeed*bp.speedIncrease, bp.maxSpeed)

	hitPos := (s.Ball.Y - paddle.Y) / bp.arena.PaddleHeight
	s.Ball.VelX = dirX * s.BallSpeed
	s.Ball.VelY = s.BallSpeed*(hitPos-0.5)*bp.spinFactor + paddle.Vel*bp.paddleInfluence

	return HitEvent{
		Side:      side,
		X:         faceX,
		Y:         s.Ball.Y,
		HitPos:    hitPos,
		BallSpeed: s.BallSpeed,
	}
}

// Serve puts the ball back in the center at base speed. dirX is +1 for
// rightward; bias is the vertical component as a fraction of base speed.
func (bp BallPhysics) Serve(s *Simulation, dirX, bias float64) {
	s.Ball = Ball{
		X:    bp.arena.BallStartX,
		Y:    bp.arena.BallStartY,
		VelX: dirX * bp.speed,
		VelY: bp.speed * bias,
	}
	s.BallSpeed = bp.speed
}
