// Package tui runs the game in a terminal with Bubble Tea.
// It maps key events to game actions, drives Tick from a timer and
// rasterizes the game's draw commands onto a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, or a
// clock that went backwards, gets the nominal interval; long stalls are
// capped at core.MaxFrameDelta.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	nominal := 1 / float64(tickRate)
	if prev.IsZero() || now.Before(prev) {
		return nominal
	}
	return min(now.Sub(prev).Seconds(), core.MaxFrameDelta)
}
