package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

const frameDT = 1.0 / 60

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(config.DefaultPongConfig(), WithSeed(42))
}

// startMatch walks Menu -> ModeSelect -> Playing.
func startMatch(t *testing.T, g *Game, mode Mode) {
	t.Helper()
	g.Tick(frameDT, press(core.ActionConfirm))
	if mode == ModeVsAI {
		g.Tick(frameDT, press(core.ActionModeAI))
	}
	g.Tick(frameDT, press(core.ActionConfirm))
	require.Equal(t, Playing{Mode: mode}, g.State())
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	assert.Equal(t, Menu{Mode: ModeTwoPlayer}, s.State)
	assert.Equal(t, Ball{X: 400, Y: 300, VelX: 250, VelY: 75}, s.Ball)
	assert.Equal(t, 250.0, s.BallSpeed)
	assert.Equal(t, Paddle{Y: 250}, s.Left)
	assert.Equal(t, Paddle{Y: 250}, s.Right)
	assert.Zero(t, s.LeftScore)
	assert.Zero(t, s.RightScore)
}

func TestMenuFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()

	for range 30 {
		g.Tick(frameDT, hold(core.ActionLeftUp))
	}

	assert.Equal(t, before.Ball, g.Snapshot().Ball)
	assert.Equal(t, before.Left, g.Snapshot().Left)
}

func TestPlayingMovesBall(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)

	g.Tick(0.1, core.NewInputFrame())

	s := g.Snapshot()
	assert.InDelta(t, 425, s.Ball.X, 1e-9)
	assert.InDelta(t, 307.5, s.Ball.Y, 1e-9)
}

func TestPauseFreezesAndResumes(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)

	frame := g.Tick(frameDT, press(core.ActionPause))
	require.Equal(t, Paused{Mode: ModeTwoPlayer}, frame.State)
	frozen := g.Snapshot()

	for range 20 {
		g.Tick(frameDT, hold(core.ActionLeftUp, core.ActionRightDown))
	}
	assert.Equal(t, frozen.Ball, g.Snapshot().Ball)
	assert.Equal(t, frozen.Left, g.Snapshot().Left)
	assert.Equal(t, frozen.Right, g.Snapshot().Right)

	frame = g.Tick(frameDT, press(core.ActionPause))
	assert.Equal(t, Playing{Mode: ModeTwoPlayer}, frame.State)
}

func TestPaddleStaysInBounds(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)
	a := g.Arena()

	for i := range 240 {
		in := hold(core.ActionLeftUp, core.ActionRightDown)
		if i >= 120 {
			in = hold(core.ActionLeftDown, core.ActionRightUp)
		}
		g.Tick(frameDT, in)

		s := g.Sim()
		for _, p := range []Paddle{s.Left, s.Right} {
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, a.PaddleMaxY)
			require.LessOrEqual(t, p.Vel, 420.0)
			require.GreaterOrEqual(t, p.Vel, -420.0)
			if p.Y == 0 || p.Y == a.PaddleMaxY {
				require.Zero(t, p.Vel, "velocity must be zero on a boundary")
			}
		}
	}

	// 2s of holding is plenty to reach the wall
	assert.Equal(t, a.PaddleMaxY, g.Sim().Left.Y)
	assert.Equal(t, 0.0, g.Sim().Right.Y)
}

func TestHitSpawnsParticlesAndShake(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)
	a := g.Arena()

	s := g.Sim()
	s.Ball = Ball{X: a.LeftPaddleX + a.PaddleWidth, Y: s.Left.Y + 50, VelX: -250}

	frame := g.Tick(0, core.NewInputFrame())

	require.Len(t, frame.Events.Hits, 1)
	assert.Equal(t, SideLeft, frame.Events.Hits[0].Side)
	assert.Equal(t, 8, s.Particles.Len())
	assert.InDelta(t, 0.15, s.Effects.Shake, 1e-9)
	for _, p := range s.Particles.Particles() {
		assert.Equal(t, a.LeftPaddleX+a.PaddleWidth, p.X)
		assert.Positive(t, p.VelX)
	}
}

func TestScoreTriggersEffects(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)

	s := g.Sim()
	s.Ball = Ball{X: 814, Y: 300, VelX: 250}

	frame := g.Tick(0.01, core.NewInputFrame())

	require.NotNil(t, frame.Events.Score)
	assert.Equal(t, SideLeft, frame.Events.Score.Scorer)
	assert.Equal(t, 1, s.LeftScore)
	assert.Equal(t, Playing{Mode: ModeTwoPlayer}, frame.State)
	// Effects decay in the same frame
	assert.InDelta(t, 0.2, s.Effects.Shake, 1e-9)
	assert.InDelta(t, 0.49, s.Effects.Flash, 1e-9)
	assert.Equal(t, 250.0, s.BallSpeed)
}

func TestWinningPointEndsMatchOnSameFrame(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		ball   Ball
		left   int
		right  int
		winner Side
	}{
		{"right wins two player", ModeTwoPlayer, Ball{X: -14, Y: 300, VelX: -250}, 3, 5, SideRight},
		{"left wins vs ai", ModeVsAI, Ball{X: 814, Y: 300, VelX: 250}, 5, 2, SideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			startMatch(t, g, tt.mode)

			s := g.Sim()
			s.LeftScore, s.RightScore = tt.left, tt.right
			s.Ball = tt.ball

			frame := g.Tick(0.01, core.NewInputFrame())

			require.Equal(t, GameOver{Mode: tt.mode, Winner: tt.winner}, frame.State)
			assert.False(t, frame.Quit)
			// No further physics: the ball sits on the serve spot
			assert.Equal(t, 400.0, s.Ball.X)
			assert.Equal(t, 300.0, s.Ball.Y)

			g.Tick(0.5, core.NewInputFrame())
			assert.Equal(t, 400.0, s.Ball.X, "GameOver must not advance physics")
		})
	}
}

func TestPauseOnWinningFrameIgnored(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)

	s := g.Sim()
	s.RightScore = 5
	s.Ball = Ball{X: -14, Y: 300, VelX: -250}

	frame := g.Tick(0.01, press(core.ActionPause))
	assert.Equal(t, StateGameOver, frame.State.Kind())
}

func TestCancelOnWinningFrameQuits(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)

	s := g.Sim()
	s.RightScore = 5
	s.Ball = Ball{X: -14, Y: 300, VelX: -250}

	frame := g.Tick(0.01, press(core.ActionCancel))
	assert.True(t, frame.Quit)
}

func TestRestartResetsEverything(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   State
	}{
		{"restart", core.ActionRestart, Playing{Mode: ModeVsAI}},
		{"change mode", core.ActionChangeMode, ModeSelect{Mode: ModeVsAI}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			startMatch(t, g, ModeVsAI)

			s := g.Sim()
			s.Left = Paddle{Y: 10, Vel: -100}
			s.Right = Paddle{Y: 400, Vel: 50}
			s.LeftScore, s.RightScore = 2, 5
			s.Particles.Burst(g.rng, 8, 65, 300, 1)
			s.Ball = Ball{X: -14, Y: 300, VelX: -250}
			g.Tick(0.01, core.NewInputFrame())
			require.Equal(t, StateGameOver, g.State().Kind())
			require.NotZero(t, s.Effects.Shake)

			frame := g.Tick(frameDT, press(tt.action))

			assert.Equal(t, tt.want, frame.State)
			assert.Zero(t, s.LeftScore)
			assert.Zero(t, s.RightScore)
			assert.Equal(t, Paddle{Y: 250}, s.Left)
			assert.Equal(t, Paddle{Y: 250}, s.Right)
			assert.Equal(t, Ball{X: 400, Y: 300, VelX: 250, VelY: 125}, s.Ball)
			assert.Equal(t, 250.0, s.BallSpeed)
			assert.Zero(t, s.Particles.Len())
			assert.Equal(t, Effects{}, s.Effects)
		})
	}
}

func TestVsAIMovesRightPaddle(t *testing.T) {
	g := newTestGame(t)
	startMatch(t, g, ModeVsAI)

	s := g.Sim()
	s.Right = Paddle{Y: 0}
	s.Ball = Ball{X: 400, Y: 500, VelX: 250}

	// Right-paddle keys are ignored in vs-AI mode
	g.Tick(frameDT, hold(core.ActionRightUp))

	assert.Positive(t, s.Right.Vel)
	assert.Positive(t, s.Right.Y)
}

func TestQuitFromStates(t *testing.T) {
	g := newTestGame(t)
	frame := g.Tick(frameDT, press(core.ActionCancel))
	assert.True(t, frame.Quit, "cancel in Menu should quit")

	g = newTestGame(t)
	frame = g.Tick(frameDT, press(core.ActionConfirm, core.ActionCancel))
	assert.True(t, frame.Quit, "cancel should win over confirm in Menu")

	g = newTestGame(t)
	g.Tick(frameDT, press(core.ActionConfirm))
	frame = g.Tick(frameDT, press(core.ActionCancel))
	assert.True(t, frame.Quit, "cancel in ModeSelect should quit")

	g = newTestGame(t)
	startMatch(t, g, ModeTwoPlayer)
	frame = g.Tick(frameDT, press(core.ActionCancel))
	assert.True(t, frame.Quit, "cancel in Playing should quit")

	g.Tick(frameDT, press(core.ActionPause))
	frame = g.Tick(frameDT, press(core.ActionCancel))
	assert.True(t, frame.Quit, "cancel in Paused should quit")
}

func TestRenderUsesShakeOnlyWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	m := core.MonospaceMeasurer(0.5)

	cmds := g.Render(m)
	require.NotEmpty(t, cmds)
	assert.Equal(t, core.DrawClear, cmds[0].Kind)

	startMatch(t, g, ModeTwoPlayer)
	g.Sim().Effects.Shake = 0.3
	cmds = g.Render(m)

	// First dash sits at x=398 without shake
	dash := cmds[1]
	require.Equal(t, core.DrawRect, dash.Kind)
	assert.InDelta(t, 398, dash.X, 3)
	assert.InDelta(t, 10, dash.Y, 3)

	g.Tick(frameDT, press(core.ActionPause))
	cmds = g.Render(m)
	paddle := cmds[1]
	require.Equal(t, core.DrawRect, paddle.Kind)
	assert.Equal(t, 50.0, paddle.X, "paused frames are drawn without shake")
}
