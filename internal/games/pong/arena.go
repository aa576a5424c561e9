package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Arena is the fixed geometry derived from the config.
type Arena struct {
	Width, Height float64

	PaddleWidth  float64
	PaddleHeight float64
	LeftPaddleX  float64
	RightPaddleX float64
	PaddleStartY float64
	PaddleMaxY   float64

	BallSize   float64
	BallStartX float64
	BallStartY float64
}

// NewArena lays out paddles and ball inside the virtual screen.
func NewArena(cfg config.PongConfig) Arena {
	w, h := core.ScreenWidth, core.ScreenHeight
	return Arena{
		Width:        w,
		Height:       h,
		PaddleWidth:  cfg.Paddle.Width,
		PaddleHeight: cfg.Paddle.Height,
		LeftPaddleX:  cfg.Paddle.Margin,
		RightPaddleX: w - cfg.Paddle.Margin - cfg.Paddle.Width,
		PaddleStartY: (h - cfg.Paddle.Height) / 2,
		PaddleMaxY:   h - cfg.Paddle.Height,
		BallSize:     cfg.Ball.Size,
		BallStartX:   w / 2,
		BallStartY:   h / 2,
	}
}

// PaddleRect returns the collision box of a paddle at the given top Y.
func (a Arena) PaddleRect(side Side, y float64) core.Rect {
	x := a.LeftPaddleX
	if side == SideRight {
		x = a.RightPaddleX
	}
	return core.NewRect(x, y, a.PaddleWidth, a.PaddleHeight)
}

// BallRect returns the ball's collision box: its center expanded by the ball
// size in every direction.
func (a Arena) BallRect(b Ball) core.Rect {
	return core.NewRect(b.X, b.Y, 0, 0).Inflate(a.BallSize)
}
