package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/headless"
)

var (
	flagTicks     int
	flagDT        float64
	flagMode      string
	flagAutopilot bool
	flagKeepGoing bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a match without a display",
	Long: `Advance a match with a fixed time step and print the result.

Without --autopilot the human paddles stand still. With a fixed --seed
the outcome is reproducible.

Examples:
  pong simulate
  pong simulate --seed 42 --autopilot
  pong simulate --mode two --autopilot --ticks 36000
  pong simulate --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", headless.DefaultTicks, "Maximum number of ticks")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (0 = 1/fps)")
	simulateCmd.Flags().StringVar(&flagMode, "mode", "ai", "Game mode: ai, two")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer human paddles toward the ball")
	simulateCmd.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "Restart after each game over until --ticks runs out")
}

func parseMode(s string) (pong.Mode, error) {
	switch s {
	case "ai":
		return pong.ModeVsAI, nil
	case "two":
		return pong.ModeTwoPlayer, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want ai or two)", s)
	}
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	mode, err := parseMode(flagMode)
	if err != nil {
		return err
	}

	cfg, err := gameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	dt := flagDT
	if dt <= 0 && flagFPS > 0 {
		dt = 1 / float64(flagFPS)
	}

	r := headless.NewRunner(cfg, headless.Options{
		Ticks:     flagTicks,
		DT:        dt,
		Mode:      mode,
		Autopilot: flagAutopilot,
		KeepGoing: flagKeepGoing,
		Seed:      flagSeed,
	}, logger)

	ctx, stop := signalContext()
	defer stop()

	res, err := r.Run(ctx)
	if err != nil {
		return err
	}
	return headless.WriteSummary(cmd.OutOrStdout(), res)
}
