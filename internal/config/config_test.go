package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParsePong(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML drifted from DefaultPongConfig:\n%+v\n%+v", cfg, DefaultPongConfig())
	}
}

func TestDefaultConfigDerivedSpeeds(t *testing.T) {
	cfg := DefaultPongConfig()

	if got := cfg.Paddle.BaseSpeed(); got != 240 {
		t.Errorf("BaseSpeed() = %v, expected 240", got)
	}
	if got := cfg.Paddle.MaxSpeed(); got != 420 {
		t.Errorf("MaxSpeed() = %v, expected 420", got)
	}
	if got := cfg.Ball.MaxSpeed(); got != 500 {
		t.Errorf("Ball.MaxSpeed() = %v, expected 500", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePongOverlaysDefaults(t *testing.T) {
	cfg, err := ParsePong([]byte("rules:\n  winning_score: 11\nball:\n  speed: 300\n"))
	if err != nil {
		t.Fatalf("ParsePong: %v", err)
	}

	if cfg.Rules.WinningScore != 11 {
		t.Errorf("WinningScore = %d, expected 11", cfg.Rules.WinningScore)
	}
	if cfg.Ball.Speed != 300 {
		t.Errorf("Ball.Speed = %v, expected 300", cfg.Ball.Speed)
	}
	if cfg.Ball.Size != 15 || cfg.Paddle.Height != 100 {
		t.Error("omitted keys should keep their defaults")
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(path, []byte("ai:\n  error: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.AI.Error != 25 {
		t.Errorf("AI.Error = %v, expected 25", cfg.AI.Error)
	}
}

func TestLoadPongErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPong(filepath.Join(dir, "nope.yaml"))
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped ErrNotExist, got %v", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("ball: [1, 2"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPong(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("paddle:\n  friction: 1.5\nrules:\n  winning_score: 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPong(path)
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
		if !strings.Contains(err.Error(), "paddle.friction") || !strings.Contains(err.Error(), "rules.winning_score") {
			t.Errorf("error should name every bad field, got %v", err)
		}
	})
}

func TestLoadPongUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pong", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pong.yaml"), []byte("rules:\n  winning_score: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Rules.WinningScore != 3 {
		t.Errorf("WinningScore = %d, expected 3 from user config", cfg.Rules.WinningScore)
	}
}

func TestApplyPongPreset(t *testing.T) {
	base := DefaultPongConfig()

	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, ai PongAI)
	}{
		{DifficultyNormal, func(t *testing.T, ai PongAI) {
			if ai != base.AI {
				t.Errorf("normal should not change AI, got %+v", ai)
			}
		}},
		{DifficultyEasy, func(t *testing.T, ai PongAI) {
			if ai.SpeedFactor >= base.AI.SpeedFactor || ai.Error <= base.AI.Error {
				t.Errorf("easy should be slower and sloppier, got %+v", ai)
			}
		}},
		{DifficultyHard, func(t *testing.T, ai PongAI) {
			if ai.SpeedFactor <= base.AI.SpeedFactor || ai.Error >= base.AI.Error || ai.Prediction > 1 {
				t.Errorf("hard should be faster and sharper, got %+v", ai)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyPongPreset(&cfg, tc.preset)
			tc.check(t, cfg.AI)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset should stay valid: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "normal", "easy", "hard"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseDifficulty("fixed"); err == nil {
		t.Error("ParseDifficulty(fixed) should fail")
	}
}
