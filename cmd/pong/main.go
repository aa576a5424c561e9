// pong is a two-player or vs-AI Pong game for the desktop or the terminal.
//
// Usage:
//
//	pong play                  - Play in a window
//	pong play --backend tui    - Play in the terminal
//	pong simulate              - Run a match without a display
//	pong backends              - List available backends
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load game parameters from YAML
//	--difficulty <preset>  - AI difficulty: easy, normal, hard
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-pong/internal/platform/desktop"
	_ "github.com/vovakirdan/tui-pong/internal/platform/headless"
	_ "github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the classic paddle game",
	Long: `Pong for one or two players, in a desktop window or in your terminal.

Available commands:
  play      - Start a game
  simulate  - Run a match without a display and print the result
  backends  - Show all available backends

Examples:
  pong play
  pong play --backend tui
  pong play --difficulty hard
  pong simulate --seed 42 --autopilot`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "AI difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(backendsCmd)
}
