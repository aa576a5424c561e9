package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Backend { return Backend{} })
}

// Default terminal size when the real one cannot be read.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model for a Pong session.
type Model struct {
	game     *pong.Game
	raster   *Raster
	styles   styleCache
	keys     KeyMap
	help     help.Model
	input    *HoldTracker
	logger   *log.Logger
	tickRate int
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for a game on a width x height terminal.
// One row is reserved for the help footer.
func NewModel(game *pong.Game, width, height, tickRate int, logger *log.Logger) Model {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:     game,
		raster:   NewRaster(NewGrid(width, max(height-1, 1))),
		styles:   make(styleCache),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    NewHoldTracker(),
		logger:   logger,
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.raster.Grid().Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.input.Key(m.keys.Action(msg))
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.tickRate)
	m.lastTick = now

	frame := m.game.Tick(dt, m.input.Frame())
	if frame.Quit {
		m.logger.Debug("quit requested", "state", frame.State.Kind())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	core.Replay(m.game.Render(m.raster.Measurer()), m.raster)
	return RenderGrid(m.raster.Grid(), m.styles) + "\n" + m.help.View(m.keys)
}

// Backend runs the game in the terminal.
type Backend struct{}

// Name implements registry.Backend.
func (Backend) Name() string { return "tui" }

// Description implements registry.Backend.
func (Backend) Description() string { return "Terminal UI (Bubble Tea)" }

// Run implements registry.Backend.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	width, height := defaultWidth, defaultHeight
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	logger := opts.Log()
	game := pong.New(opts.Game, pong.WithSeed(opts.Runtime.Seed), pong.WithLogger(logger))
	model := NewModel(game, width, height, opts.Runtime.TickRate, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("starting terminal session", "width", width, "height", height, "fps", model.tickRate)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
