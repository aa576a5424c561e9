package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen backend.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle (two players)
  Space      - Confirm / start
  1 / 2      - Two players / vs AI on the mode screen
  P          - Pause
  R / M      - Restart / change mode after game over
  Esc        - Quit

Difficulty options (vs AI):
  easy   - Slow, inaccurate opponent
  normal - Default
  hard   - Fast, accurate opponent

Examples:
  pong play
  pong play --backend tui
  pong play --difficulty easy
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "desktop", "Backend to play on (see 'pong backends')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q; run 'pong backends' to see available backends", flagBackend)
	}

	cfg, err := gameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	// The terminal backend owns the screen, so its logs only go to a file
	var fallback io.Writer = os.Stderr
	if flagBackend == "tui" {
		fallback = nil
	}
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Debug("starting", "backend", backend.Name(), "fps", flagFPS, "seed", flagSeed)
	return backend.Run(ctx, registry.Options{
		Game:    cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Out:     cmd.OutOrStdout(),
	})
}
