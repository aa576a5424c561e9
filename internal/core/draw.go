package core

// DrawKind identifies the primitive a DrawCommand paints.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawRect
	DrawCircle
	DrawText
)

// DrawCommand is a single paint instruction in arena coordinates.
// The game computes every position, color and string; frontends only paint.
type DrawCommand struct {
	Kind  DrawKind
	X, Y  float64 // Rect: top-left. Circle: center. Text: left edge of the baseline.
	W, H  float64 // Rect only
	R     float64 // Circle radius
	Text  string
	Size  float64 // Text size in arena pixels
	Color Color
}

// Canvas is implemented by frontends that can paint draw commands.
type Canvas interface {
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	DrawText(text string, x, y, size float64, c Color)
}

// TextMeasurer reports the rendered width of text at a given size, in arena
// pixels. The game uses it to center strings.
type TextMeasurer interface {
	MeasureText(text string, size float64) float64
}

// MeasureFunc adapts a plain function to TextMeasurer.
type MeasureFunc func(text string, size float64) float64

// MeasureText implements TextMeasurer.
func (f MeasureFunc) MeasureText(text string, size float64) float64 {
	return f(text, size)
}

// MonospaceMeasurer assumes every rune is advance*size wide. Useful for
// headless runs and as a fallback for frontends without font metrics.
func MonospaceMeasurer(advance float64) TextMeasurer {
	return MeasureFunc(func(text string, size float64) float64 {
		return float64(len([]rune(text))) * size * advance
	})
}

// Replay paints a command list onto a canvas in order.
func Replay(cmds []DrawCommand, c Canvas) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case DrawClear:
			c.Clear(cmd.Color)
		case DrawRect:
			c.FillRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case DrawCircle:
			c.FillCircle(cmd.X, cmd.Y, cmd.R, cmd.Color)
		case DrawText:
			c.DrawText(cmd.Text, cmd.X, cmd.Y, cmd.Size, cmd.Color)
		}
	}
}
