package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// gameConfig loads the YAML config and applies the difficulty preset.
func gameConfig(path, difficulty string) (config.PongConfig, error) {
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.PongConfig{}, err
	}

	cfg, err := config.LoadPong(path)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, nil
}

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger builds the process logger. Logs go to logFile when set, else to
// fallback; a nil fallback discards them. The returned closer is never nil.
func newLogger(level, logFile string, fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w, closer = f, f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           lvl,
	})
	return logger, closer, nil
}

// signalContext is canceled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
