package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func pressFrame(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Press(a)
	return f
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionLeftUp},
		{"s", runeKey('s'), core.ActionLeftDown},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRightUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRightDown},
		{"space", runeKey(' '), core.ActionConfirm},
		{"p", runeKey('p'), core.ActionPause},
		{"1", runeKey('1'), core.ActionModeTwo},
		{"2", runeKey('2'), core.ActionModeAI},
		{"r", runeKey('r'), core.ActionRestart},
		{"m", runeKey('m'), core.ActionChangeMode},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker()
	h.Key(core.ActionLeftUp)
	h.Key(core.ActionPause)

	f := h.Frame()
	if !f.Held(core.ActionLeftUp) || f.Pressed(core.ActionLeftUp) {
		t.Error("movement should be held, not pressed")
	}
	if !f.Pressed(core.ActionPause) {
		t.Error("pause should be pressed on the first frame")
	}

	f = h.Frame()
	if f.Pressed(core.ActionPause) {
		t.Error("presses should last one frame")
	}
	if !f.Held(core.ActionLeftUp) {
		t.Error("movement should still be held")
	}

	// Two frames used so far
	for range HoldTicks - 2 {
		h.Frame()
	}
	if h.Frame().Held(core.ActionLeftUp) {
		t.Errorf("movement should expire after %d frames", HoldTicks)
	}
}

func TestHoldTrackerOppositeCancels(t *testing.T) {
	h := NewHoldTracker()
	h.Key(core.ActionRightUp)
	h.Key(core.ActionRightDown)

	f := h.Frame()
	if f.Held(core.ActionRightUp) {
		t.Error("opposite direction should cancel the earlier hold")
	}
	if !f.Held(core.ActionRightDown) {
		t.Error("latest direction should be held")
	}
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(NewGrid(80, 30))
	r.Clear(core.ColorBlack)
	r.FillRect(50, 250, 15, 100, core.ColorWhite)

	g := r.Grid()
	for _, p := range [][2]int{{5, 12}, {6, 17}} {
		if got := g.At(p[0], p[1]).Rune; got != BlockChar {
			t.Errorf("At(%d, %d) = %q, expected block", p[0], p[1], got)
		}
	}
	for _, p := range [][2]int{{7, 12}, {5, 18}, {4, 12}} {
		if got := g.At(p[0], p[1]).Rune; got != ' ' {
			t.Errorf("At(%d, %d) = %q, expected blank", p[0], p[1], got)
		}
	}
}

func TestRasterThinRectVisible(t *testing.T) {
	r := NewRaster(NewGrid(80, 30))
	r.Clear(core.ColorBlack)
	r.FillRect(398, 10, 4, 15, core.ColorGray)

	if got := r.Grid().At(39, 0).Rune; got != BlockChar {
		t.Errorf("At(39, 0) = %q, expected block for a sub-cell rect", got)
	}
}

func TestRasterFillCircle(t *testing.T) {
	small := NewRaster(NewGrid(80, 30))
	small.Clear(core.ColorBlack)
	small.FillCircle(400, 300, 15, core.ColorWhite)
	if got := small.Grid().At(40, 15).Rune; got != DotChar {
		t.Errorf("small circle = %q, expected dot", got)
	}

	big := NewRaster(NewGrid(800, 600))
	big.Clear(core.ColorBlack)
	big.FillCircle(10, 10, 3, core.ColorWhite)
	if got := big.Grid().At(10, 10).Rune; got != BlockChar {
		t.Errorf("circle center = %q, expected block", got)
	}
	if got := big.Grid().At(14, 10).Rune; got != ' ' {
		t.Errorf("outside circle = %q, expected blank", got)
	}
}

func TestRasterTextAndMeasurer(t *testing.T) {
	r := NewRaster(NewGrid(80, 30))

	if got := r.Measurer().MeasureText("PONG", 80); got != 40 {
		t.Errorf("MeasureText(PONG) = %v, expected 40", got)
	}

	r.Clear(core.ColorBlack)
	r.DrawText("PONG", 320, 200, 80, core.ColorWhite)
	if row := r.Grid().Row(8); row[32:36] != "PONG" {
		t.Errorf("Row(8) = %q, expected PONG at column 32", row)
	}
}

func TestRasterBlendsAlpha(t *testing.T) {
	r := NewRaster(NewGrid(800, 600))
	r.Clear(core.ColorBlack)
	r.FillRect(0, 0, 1, 1, core.ColorWhite.WithAlpha(0.5))

	c := r.Grid().At(0, 0).Color
	if c.A != 1 || c.R != 0.5 {
		t.Errorf("blended color = %+v, expected opaque half gray", c)
	}
}

func TestRenderGridContainsText(t *testing.T) {
	g := NewGrid(10, 2)
	g.Text(2, 1, "hi", core.ColorYellow)

	out := RenderGrid(g, make(styleCache))
	if !strings.Contains(out, "hi") {
		t.Errorf("RenderGrid() = %q, expected it to contain hi", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderGrid() should have one newline for two rows, got %q", out)
	}
}

func TestStyleCacheStaysBounded(t *testing.T) {
	game := pong.New(config.DefaultPongConfig(), pong.WithSeed(1))
	game.Tick(1.0/60, pressFrame(core.ActionConfirm))
	game.Tick(1.0/60, pressFrame(core.ActionConfirm))

	r := NewRaster(NewGrid(120, 40))
	styles := make(styleCache)
	rng := rand.New(rand.NewSource(1))

	for i := range 600 {
		if i%20 == 0 {
			sim := game.Sim()
			sim.Particles.Burst(rng, 8, 400, 300, 1)
			sim.Effects.Flash = 0.5
		}
		game.Tick(1.0/60, core.NewInputFrame())
		core.Replay(game.Render(r.Measurer()), r)
		RenderGrid(r.Grid(), styles)
	}

	// Fading white and the pulsing score share at most 256 levels each
	if len(styles) > 2*256+8 {
		t.Errorf("style cache holds %d styles after 600 frames, expected it bounded by quantized colors", len(styles))
	}
}

func TestStyleCacheQuantizes(t *testing.T) {
	styles := make(styleCache)
	styles.get(core.NewColor(0.5, 0.5, 0.5, 1))
	styles.get(core.NewColor(0.5001, 0.5, 0.5, 1))

	if len(styles) != 1 {
		t.Errorf("len(styles) = %d, expected colors within one 8-bit step to share a style", len(styles))
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(100, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, base, 0.02},
		{"normal", base, base.Add(16 * time.Millisecond), 0.016},
		{"stall capped", base, base.Add(2 * time.Second), core.MaxFrameDelta},
		{"backwards", base, base.Add(-time.Second), 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDelta(tt.prev, tt.now, 50)
			if d := got - tt.want; d > 1e-9 || d < -1e-9 {
				t.Errorf("frameDelta() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestModelDrivesGame(t *testing.T) {
	game := pong.New(config.DefaultPongConfig(), pong.WithSeed(1))
	var m tea.Model = NewModel(game, 80, 25, 60, nil)
	now := time.Unix(100, 0)

	step := func(msgs ...tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		for _, msg := range msgs {
			m, cmd = m.Update(msg)
		}
		now = now.Add(16 * time.Millisecond)
		m, cmd = m.Update(TickMsg(now))
		return cmd
	}

	step(runeKey(' '))
	if game.State().Kind() != pong.StateModeSelect {
		t.Fatalf("state = %v, expected ModeSelect", game.State().Kind())
	}

	step(runeKey('2'), runeKey(' '))
	// Two presses in one tick: the selector wins and the confirm press is dropped
	if game.State() != (pong.ModeSelect{Mode: pong.ModeVsAI}) {
		t.Fatalf("state = %#v, expected ModeSelect vs AI", game.State())
	}

	step(runeKey(' '))
	if game.State() != (pong.Playing{Mode: pong.ModeVsAI}) {
		t.Fatalf("state = %#v, expected Playing vs AI", game.State())
	}

	if view := m.View(); !strings.Contains(view, "Player: W/S  P: Pause") {
		t.Error("View() should show the vs AI controls hint")
	}

	if cmd := step(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Fatal("esc while playing should return a quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	game := pong.New(config.DefaultPongConfig(), pong.WithSeed(1))
	m, cmd := NewModel(game, 80, 25, 60, nil).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
