package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// AI drives the right paddle in vs-AI mode. It looks ahead only part of the
// way and aims with random error so it can be beaten.
type AI struct {
	speed      float64
	prediction float64
	aimError   float64
	deadZone   float64
	settle     float64
	rng        *rand.Rand
}

// NewAI creates an AI controller from config.
func NewAI(cfg config.PongConfig, rng *rand.Rand) *AI {
	return &AI{
		speed:      cfg.Paddle.Speed * cfg.AI.SpeedFactor,
		prediction: cfg.AI.Prediction,
		aimError:   cfg.AI.Error,
		deadZone:   cfg.AI.DeadZone,
		settle:     cfg.AI.Settle,
		rng:        rng,
	}
}

// Predict returns where the AI expects to meet the ball, before aim error.
func (ai *AI) Predict(ball Ball, paddleX float64) float64 {
	if ball.VelX <= 0 {
		// Ball moving away: nothing useful to predict
		return ball.Y
	}
	arrival := (paddleX - ball.X) / math.Abs(ball.VelX)
	return ball.Y + ball.VelY*arrival*ai.prediction
}

// Target returns the aim point including random error.
func (ai *AI) Target(ball Ball, paddleX float64) float64 {
	target := ai.Predict(ball, paddleX)
	if ai.aimError > 0 {
		target += uniform(ai.rng, -ai.aimError, ai.aimError)
	}
	return target
}

// Drive sets the paddle's velocity toward the target, or lets it settle when
// it is already close. Clamping and integration happen in the caller.
func (ai *AI) Drive(p *Paddle, ball Ball, paddleX, paddleHeight float64) {
	diff := ai.Target(ball, paddleX) - p.Center(paddleHeight)
	switch {
	case math.Abs(diff) <= ai.deadZone:
		p.Vel *= ai.settle
	case diff < 0:
		p.Vel = -ai.speed
	default:
		p.Vel = ai.speed
	}
}
