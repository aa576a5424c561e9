// Package desktop runs the game in an 800x600 window with Ebitengine.
package desktop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func init() {
	registry.Register("desktop", func() registry.Backend { return Backend{} })
}

// keys maps each action to the physical keys that trigger it.
var keys = map[core.Action][]ebiten.Key{
	core.ActionLeftUp:     {ebiten.KeyW},
	core.ActionLeftDown:   {ebiten.KeyS},
	core.ActionRightUp:    {ebiten.KeyArrowUp},
	core.ActionRightDown:  {ebiten.KeyArrowDown},
	core.ActionPause:      {ebiten.KeyP},
	core.ActionConfirm:    {ebiten.KeySpace},
	core.ActionModeTwo:    {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	core.ActionModeAI:     {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	core.ActionRestart:    {ebiten.KeyR},
	core.ActionChangeMode: {ebiten.KeyM},
	core.ActionCancel:     {ebiten.KeyEscape},
}

// App implements ebiten.Game around a pong.Game.
type App struct {
	ctx    context.Context
	game   *pong.Game
	clock  core.Clock
	input  core.InputFrame
	logger *log.Logger
}

// NewApp creates an app. The clock supplies the real time between updates.
func NewApp(ctx context.Context, game *pong.Game, clock core.Clock, logger *log.Logger) *App {
	return &App{
		ctx:    ctx,
		game:   game,
		clock:  clock,
		input:  core.NewInputFrame(),
		logger: logger,
	}
}

// poll refreshes the input frame from the keyboard.
func (a *App) poll() {
	a.input.Clear()
	for action, ks := range keys {
		for _, k := range ks {
			if inpututil.IsKeyJustPressed(k) {
				a.input.Press(action)
			} else if ebiten.IsKeyPressed(k) {
				a.input.Hold(action)
			}
		}
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}

	a.poll()
	frame := a.game.Tick(a.clock.Delta(), a.input)
	if frame.Quit {
		a.logger.Debug("quit requested", "state", frame.State.Kind())
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	core.Replay(a.game.Render(measurer), canvas{dst: screen})
}

// Layout implements ebiten.Game. The arena is a fixed 800x600; ebiten
// scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return int(core.ScreenWidth), int(core.ScreenHeight)
}

// Backend runs the game in a desktop window.
type Backend struct{}

// Name implements registry.Backend.
func (Backend) Name() string { return "desktop" }

// Description implements registry.Backend.
func (Backend) Description() string { return "800x600 window (Ebitengine)" }

// Run implements registry.Backend.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Log()
	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	game := pong.New(opts.Game, pong.WithSeed(opts.Runtime.Seed), pong.WithLogger(logger))
	app := NewApp(ctx, game, core.NewWallClock(tickRate), logger)

	ebiten.SetWindowSize(int(core.ScreenWidth), int(core.ScreenHeight))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(tickRate)

	logger.Info("starting desktop session", "tps", tickRate)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
