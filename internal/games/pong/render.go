package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Text sizes in arena pixels.
const (
	titleSize   = 80
	headingSize = 40
	optionSize  = 30
	hintSize    = 20
	scoreSize   = 60
	controlSize = 18
)

// Center line dashes.
const (
	dashCount   = 20
	dashSpacing = 30
	dashOffset  = 10
	dashWidth   = 4
	dashHeight  = 15
)

// painter accumulates draw commands.
type painter struct {
	cmds    []core.DrawCommand
	measure core.TextMeasurer
}

func (p *painter) clear(c core.Color) {
	p.cmds = append(p.cmds, core.DrawCommand{Kind: core.DrawClear, Color: c})
}

func (p *painter) rect(x, y, w, h float64, c core.Color) {
	p.cmds = append(p.cmds, core.DrawCommand{Kind: core.DrawRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (p *painter) circle(x, y, r float64, c core.Color) {
	p.cmds = append(p.cmds, core.DrawCommand{Kind: core.DrawCircle, X: x, Y: y, R: r, Color: c})
}

func (p *painter) text(s string, x, y, size float64, c core.Color) {
	p.cmds = append(p.cmds, core.DrawCommand{Kind: core.DrawText, X: x, Y: y, Text: s, Size: size, Color: c})
}

// centered draws s horizontally centered with its baseline at y.
func (p *painter) centered(s string, y, size float64, c core.Color) {
	w := p.measure.MeasureText(s, size)
	p.text(s, (core.ScreenWidth-w)/2, y, size, c)
}

// Render turns a snapshot into draw commands. (dx, dy) is the screen shake
// offset; it is applied to everything in Playing except particles and the
// controls hint.
func Render(s Snapshot, m core.TextMeasurer, dx, dy float64) []core.DrawCommand {
	p := &painter{measure: m}
	p.clear(core.ColorBlack)

	midY := core.ScreenHeight / 2
	switch st := s.State.(type) {
	case Menu:
		p.centered("PONG", midY-100, titleSize, core.ColorWhite)
		p.centered("Press SPACE to Start", midY, optionSize, core.ColorGray)
		p.centered("Controls: Left: W/S  Right: Up/Down", midY+50, hintSize, core.ColorGray)
		p.centered("ESC: Exit", midY+80, hintSize, core.ColorGray)

	case ModeSelect:
		p.centered("Select Game Mode", midY-80, headingSize, core.ColorWhite)
		p.centered("1: Two Player", midY-20, optionSize, selectedColor(st.Mode == ModeTwoPlayer))
		p.centered("2: vs AI", midY+20, optionSize, selectedColor(st.Mode == ModeVsAI))
		p.centered("SPACE: Start Game", midY+80, hintSize, core.ColorGray)
		p.centered("ESC: Back to Menu", midY+110, hintSize, core.ColorGray)

	case Playing:
		for i := range dashCount {
			y := float64(i*dashSpacing + dashOffset)
			if y < core.ScreenHeight {
				p.rect(core.ScreenWidth/2-dashWidth/2+dx, y+dy, dashWidth, dashHeight, core.ColorGray)
			}
		}
		drawField(p, s, dx, dy)
		for _, pt := range s.Particles {
			a := pt.Alpha()
			p.circle(pt.X, pt.Y, pt.Size*a, core.ColorWhite.WithAlpha(a))
		}
		drawScore(p, s, dx, dy, s.Effects.ScoreColor())
		p.text(controlsHint(st.Mode), 20, 20, controlSize, core.ColorGray)

	case Paused:
		drawField(p, s, 0, 0)
		drawScore(p, s, 0, 0, core.ColorWhite)
		p.centered("PAUSED", midY, scoreSize, core.ColorYellow)
		p.centered("Press P to Resume", midY+60, optionSize, core.ColorGray)

	case GameOver:
		drawField(p, s, 0, 0)
		drawScore(p, s, 0, 0, core.ColorWhite)
		p.centered(WinnerText(st.Mode, st.Winner), midY, headingSize, core.ColorYellow)
		p.centered("Press R to Restart", midY+60, optionSize, core.ColorGray)
		p.centered("Press M to Change Mode", midY+100, optionSize, core.ColorGray)
	}

	return p.cmds
}

// drawField draws both paddles and the ball.
func drawField(p *painter, s Snapshot, dx, dy float64) {
	a := s.Arena
	p.rect(a.LeftPaddleX+dx, s.Left.Y+dy, a.PaddleWidth, a.PaddleHeight, core.ColorWhite)
	p.rect(a.RightPaddleX+dx, s.Right.Y+dy, a.PaddleWidth, a.PaddleHeight, core.ColorWhite)
	p.circle(s.Ball.X+dx, s.Ball.Y+dy, a.BallSize, core.ColorWhite)
}

func drawScore(p *painter, s Snapshot, dx, dy float64, c core.Color) {
	text := ScoreText(s.LeftScore, s.RightScore)
	w := p.measure.MeasureText(text, scoreSize)
	p.text(text, (core.ScreenWidth-w)/2+dx, 100+dy, scoreSize, c)
}

func selectedColor(selected bool) core.Color {
	if selected {
		return core.ColorYellow
	}
	return core.ColorWhite
}

// ScoreText formats the scoreboard.
func ScoreText(left, right int) string {
	return fmt.Sprintf("%d    %d", left, right)
}

// WinnerText returns the GameOver headline, worded for the mode.
func WinnerText(mode Mode, winner Side) string {
	switch {
	case mode == ModeVsAI && winner == SideLeft:
		return "You Win!"
	case mode == ModeVsAI:
		return "AI Wins!"
	case winner == SideLeft:
		return "Left Player Wins!"
	default:
		return "Right Player Wins!"
	}
}

func controlsHint(mode Mode) string {
	if mode == ModeVsAI {
		return "Player: W/S  P: Pause"
	}
	return "Left: W/S  Right: Up/Down  P: Pause"
}
