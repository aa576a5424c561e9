// Package config provides YAML-based game configuration loading and
// difficulty presets for the Pong game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// PongConfig contains all tunable parameters of the Pong simulation.
type PongConfig struct {
	Paddle  PongPaddle  `yaml:"paddle"`
	Ball    PongBall    `yaml:"ball"`
	AI      PongAI      `yaml:"ai"`
	Rules   PongRules   `yaml:"rules"`
	Effects PongEffects `yaml:"effects"`
}

// PongPaddle defines paddle geometry and the motion model.
type PongPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Margin       float64 `yaml:"margin"` // Distance from screen edge
	Speed        float64 `yaml:"speed"`
	BaseFactor   float64 `yaml:"base_factor"` // Immediate response speed, as a fraction of speed
	MaxFactor    float64 `yaml:"max_factor"`  // Velocity cap, as a multiple of speed
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"` // Velocity retained per frame with no input
}

// BaseSpeed returns the immediate response speed.
func (p PongPaddle) BaseSpeed() float64 { return p.Speed * p.BaseFactor }

// MaxSpeed returns the velocity cap.
func (p PongPaddle) MaxSpeed() float64 { return p.Speed * p.MaxFactor }

// PongBall defines ball size and speed progression.
type PongBall struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	MaxFactor       float64 `yaml:"max_factor"`       // Max speed as a multiple of speed
	SpeedIncrease   float64 `yaml:"speed_increase"`   // Multiplier applied per paddle hit
	SpinFactor      float64 `yaml:"spin_factor"`      // Angle gain from hit position
	PaddleInfluence float64 `yaml:"paddle_influence"` // Share of paddle velocity passed to the ball
	InitialBias     float64 `yaml:"initial_bias"`     // Vertical bias of the very first serve
	ServeBias       float64 `yaml:"serve_bias"`       // Vertical bias after a point
}

// MaxSpeed returns the ball speed cap.
func (b PongBall) MaxSpeed() float64 { return b.Speed * b.MaxFactor }

// PongAI defines the AI opponent.
type PongAI struct {
	SpeedFactor float64 `yaml:"speed_factor"` // Fraction of paddle speed
	Prediction  float64 `yaml:"prediction"`   // Look-ahead damping, 0..1
	Error       float64 `yaml:"error"`        // Max random aim error in pixels
	DeadZone    float64 `yaml:"dead_zone"`
	Settle      float64 `yaml:"settle"` // Velocity retained per frame inside the dead zone
}

// PongRules defines match rules.
type PongRules struct {
	WinningScore int `yaml:"winning_score"`
}

// PongEffects defines cosmetic feedback.
type PongEffects struct {
	HitShake        float64 `yaml:"hit_shake"`
	ScoreShake      float64 `yaml:"score_shake"`
	ShakeDecay      float64 `yaml:"shake_decay"`     // Shake units removed per second
	ShakeAmplitude  float64 `yaml:"shake_amplitude"` // Pixels of jitter per shake unit
	ScoreFlash      float64 `yaml:"score_flash"`     // Seconds
	Particles       int     `yaml:"particles"`       // Per paddle hit
	ParticleGravity float64 `yaml:"particle_gravity"`
}

// Validate checks that the configuration describes a playable game.
func (c PongConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Paddle.Width > 0, "paddle.width must be positive, got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0 && c.Paddle.Height < 600, "paddle.height must be in (0, 600), got %v", c.Paddle.Height)
	check(c.Paddle.Margin >= 0 && c.Paddle.Margin+c.Paddle.Width < 400, "paddle.margin must keep paddles on their half, got %v", c.Paddle.Margin)
	check(c.Paddle.Speed > 0, "paddle.speed must be positive, got %v", c.Paddle.Speed)
	check(c.Paddle.BaseFactor > 0 && c.Paddle.BaseFactor <= c.Paddle.MaxFactor, "paddle.base_factor must be in (0, max_factor], got %v", c.Paddle.BaseFactor)
	check(c.Paddle.Acceleration >= 0, "paddle.acceleration must not be negative, got %v", c.Paddle.Acceleration)
	check(c.Paddle.Friction >= 0 && c.Paddle.Friction <= 1, "paddle.friction must be in [0, 1], got %v", c.Paddle.Friction)

	check(c.Ball.Size > 0, "ball.size must be positive, got %v", c.Ball.Size)
	check(c.Ball.Speed > 0, "ball.speed must be positive, got %v", c.Ball.Speed)
	check(c.Ball.MaxFactor >= 1, "ball.max_factor must be at least 1, got %v", c.Ball.MaxFactor)
	check(c.Ball.SpeedIncrease >= 1, "ball.speed_increase must be at least 1, got %v", c.Ball.SpeedIncrease)

	check(c.AI.SpeedFactor > 0, "ai.speed_factor must be positive, got %v", c.AI.SpeedFactor)
	check(c.AI.Prediction >= 0 && c.AI.Prediction <= 1, "ai.prediction must be in [0, 1], got %v", c.AI.Prediction)
	check(c.AI.Error >= 0, "ai.error must not be negative, got %v", c.AI.Error)
	check(c.AI.DeadZone >= 0, "ai.dead_zone must not be negative, got %v", c.AI.DeadZone)
	check(c.AI.Settle >= 0 && c.AI.Settle <= 1, "ai.settle must be in [0, 1], got %v", c.AI.Settle)

	check(c.Rules.WinningScore >= 1, "rules.winning_score must be at least 1, got %d", c.Rules.WinningScore)

	check(c.Effects.ShakeDecay > 0, "effects.shake_decay must be positive, got %v", c.Effects.ShakeDecay)
	check(c.Effects.Particles >= 0, "effects.particles must not be negative, got %d", c.Effects.Particles)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named AI difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
