// Package headless advances a game without a display, using a fixed clock and
// scripted or automatic input. It backs the simulate command and tests.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Default run settings.
const (
	DefaultTicks = 60 * 60 * 5 // Five simulated minutes at 60 Hz
	DefaultDT    = 1.0 / 60
)

// Script supplies extra input for a tick. It may return a zero InputFrame.
type Script func(tick int, snap pong.Snapshot) core.InputFrame

// Options controls a run.
type Options struct {
	Ticks     int       // Upper bound on Tick calls, including menu navigation
	DT        float64   // Seconds per tick
	Mode      pong.Mode // Mode picked on the mode select screen
	Autopilot bool      // Steer human paddles toward the ball
	KeepGoing bool      // Restart at GameOver instead of stopping
	Script    Script
	Seed      int64
}

// Result summarizes a run.
type Result struct {
	State      pong.State
	LeftScore  int
	RightScore int
	Ticks      int
	Hits       int
	Points     int
	Matches    int // Matches that reached GameOver
	Elapsed    float64 // Simulated seconds
	Quit       bool
}

// Runner drives a game with a fixed clock.
type Runner struct {
	game   *pong.Game
	clock  core.Clock
	opts   Options
	logger *log.Logger
}

// NewRunner creates a runner for a new game. Zero Ticks or DT fall back to
// the defaults.
func NewRunner(cfg config.PongConfig, opts Options, logger *log.Logger) *Runner {
	if opts.Ticks <= 0 {
		opts.Ticks = DefaultTicks
	}
	if opts.DT <= 0 {
		opts.DT = DefaultDT
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:   pong.New(cfg, pong.WithSeed(opts.Seed), pong.WithLogger(logger)),
		clock:  core.FixedClock(opts.DT),
		opts:   opts,
		logger: logger,
	}
}

// Run navigates to Playing in the chosen mode and ticks until the match
// ends, the tick budget runs out, the game asks to quit or ctx is done.
// With KeepGoing a finished match is restarted and only the budget, a quit
// or ctx stops the run; the final scores are those of the last match.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result

	for res.Ticks < r.opts.Ticks {
		if err := ctx.Err(); err != nil {
			res.State = r.game.State()
			return res, fmt.Errorf("headless run: %w", err)
		}

		in := r.input(res.Ticks)
		dt := r.clock.Delta()
		frame := r.game.Tick(dt, in)
		res.Ticks++
		if frame.State.Kind() == pong.StatePlaying || frame.Events.Score != nil {
			res.Elapsed += dt
		}
		res.Hits += len(frame.Events.Hits)

		if sc := frame.Events.Score; sc != nil {
			res.Points++
			r.logger.Info("point", "tick", res.Ticks, "scorer", sc.Scorer, "left", sc.LeftScore, "right", sc.RightScore)
		}
		if frame.Quit {
			res.Quit = true
			break
		}
		if frame.State.Kind() != pong.StateGameOver || frame.Events.Score == nil {
			continue
		}
		res.Matches++
		if !r.opts.KeepGoing {
			break
		}
	}

	snap := r.game.Snapshot()
	res.State = snap.State
	res.LeftScore = snap.LeftScore
	res.RightScore = snap.RightScore
	return res, nil
}

// input builds the frame for a tick: menu navigation first, then autopilot
// and script.
func (r *Runner) input(tick int) core.InputFrame {
	in := core.NewInputFrame()
	snap := r.game.Snapshot()

	switch st := snap.State.(type) {
	case pong.Menu:
		in.Press(core.ActionConfirm)
	case pong.ModeSelect:
		switch {
		case st.Mode != r.opts.Mode && r.opts.Mode == pong.ModeVsAI:
			in.Press(core.ActionModeAI)
		case st.Mode != r.opts.Mode:
			in.Press(core.ActionModeTwo)
		default:
			in.Press(core.ActionConfirm)
		}
	case pong.Playing:
		if r.opts.Autopilot {
			Steer(&in, snap, pong.SideLeft)
			if st.Mode == pong.ModeTwoPlayer {
				Steer(&in, snap, pong.SideRight)
			}
		}
	case pong.GameOver:
		if r.opts.KeepGoing {
			in.Press(core.ActionRestart)
		}
	}

	if r.opts.Script != nil {
		in.Merge(r.opts.Script(tick, snap))
	}
	return in
}

// autopilotSlack is how far off-center the ball may be before the autopilot
// moves its paddle.
const autopilotSlack = 20

// Steer holds the movement key that brings a paddle's center toward the ball.
func Steer(in *core.InputFrame, snap pong.Snapshot, side pong.Side) {
	p, up, down := snap.Left, core.ActionLeftUp, core.ActionLeftDown
	if side == pong.SideRight {
		p, up, down = snap.Right, core.ActionRightUp, core.ActionRightDown
	}

	diff := snap.Ball.Y - p.Center(snap.Arena.PaddleHeight)
	switch {
	case diff < -autopilotSlack:
		in.Hold(up)
	case diff > autopilotSlack:
		in.Hold(down)
	}
}

// WriteSummary prints a human-readable result.
func WriteSummary(w io.Writer, res Result) error {
	kind := pong.StateKind(-1)
	if res.State != nil {
		kind = res.State.Kind()
	}
	_, err := fmt.Fprintf(w, "state:   %s\nscore:   %d - %d\nticks:   %d\nplayed:  %.2fs\nhits:    %d\npoints:  %d\nmatches: %d\n",
		kind, res.LeftScore, res.RightScore, res.Ticks, res.Elapsed, res.Hits, res.Points, res.Matches)
	if err != nil {
		return err
	}
	if over, ok := res.State.(pong.GameOver); ok {
		_, err = fmt.Fprintf(w, "winner:  %s\n", pong.WinnerText(over.Mode, over.Winner))
	}
	return err
}
