package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// face is the only font; it is scaled to the requested text size.
var face = basicfont.Face7x13

// faceHeight is the pixel size basicfont is drawn at unscaled.
const faceHeight = 13.0

// canvas paints draw commands onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
}

var _ core.Canvas = canvas{}

func nrgba(c core.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (c canvas) Clear(col core.Color) {
	c.dst.Fill(nrgba(col))
}

func (c canvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), nrgba(col), false)
}

func (c canvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), nrgba(col), true)
}

// DrawText scales the bitmap face so its height matches size. The origin is
// the baseline, as for text.Draw.
func (c canvas) DrawText(s string, x, y, size float64, col core.Color) {
	scale := size / faceHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(nrgba(col))
	text.DrawWithOptions(c.dst, s, face, op)
}

// measurer reports text width at the scale DrawText uses.
var measurer = core.MeasureFunc(func(s string, size float64) float64 {
	adv := font.MeasureString(face, s)
	return float64(adv.Ceil()) * size / faceHeight
})
