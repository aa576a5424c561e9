package headless

import (
	"context"
	"os"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func init() {
	registry.Register("headless", func() registry.Backend { return Backend{} })
}

// Backend plays an autopilot match against the AI and prints a summary.
type Backend struct{}

// Name implements registry.Backend.
func (Backend) Name() string { return "headless" }

// Description implements registry.Backend.
func (Backend) Description() string { return "No display; autopilot vs AI, prints a summary" }

// Run implements registry.Backend.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	dt := DefaultDT
	if opts.Runtime.TickRate > 0 {
		dt = 1 / float64(opts.Runtime.TickRate)
	}

	r := NewRunner(opts.Game, Options{
		DT:        dt,
		Mode:      pong.ModeVsAI,
		Autopilot: true,
		Seed:      opts.Runtime.Seed,
	}, opts.Log())

	res, err := r.Run(ctx)
	if err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return WriteSummary(out, res)
}
