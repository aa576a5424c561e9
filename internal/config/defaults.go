package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle: PongPaddle{
			Width:        15,
			Height:       100,
			Margin:       50,
			Speed:        300,
			BaseFactor:   0.8,
			MaxFactor:    1.4,
			Acceleration: 600,
			Friction:     0.85,
		},
		Ball: PongBall{
			Size:            15,
			Speed:           250,
			MaxFactor:       2.0,
			SpeedIncrease:   1.05, // 5% per paddle hit
			SpinFactor:      2.5,
			PaddleInfluence: 0.1,
			InitialBias:     0.3,
			ServeBias:       0.5,
		},
		AI: PongAI{
			SpeedFactor: 0.7,
			Prediction:  0.3,
			Error:       10,
			DeadZone:    10,
			Settle:      0.9,
		},
		Rules: PongRules{
			WinningScore: 6,
		},
		Effects: PongEffects{
			HitShake:        0.15,
			ScoreShake:      0.3,
			ShakeDecay:      10,
			ShakeAmplitude:  10,
			ScoreFlash:      0.5,
			Particles:       8,
			ParticleGravity: 300,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongYAML
}
