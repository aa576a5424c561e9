package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Glyphs used when rasterizing shapes.
const (
	BlockChar = '█'
	DotChar   = '•'
)

// Raster paints draw commands onto a Grid, scaling the game's 800x600 arena
// to the grid size. It implements core.Canvas.
type Raster struct {
	grid *Grid
	bg   core.Color
}

var _ core.Canvas = (*Raster)(nil)

// NewRaster wraps a grid.
func NewRaster(g *Grid) *Raster {
	return &Raster{grid: g, bg: core.ColorBlack}
}

// Grid returns the underlying buffer.
func (r *Raster) Grid() *Grid {
	return r.grid
}

// scale returns cells per arena pixel on each axis.
func (r *Raster) scale() (float64, float64) {
	return float64(r.grid.Width()) / core.ScreenWidth, float64(r.grid.Height()) / core.ScreenHeight
}

// Measurer reports text width in arena pixels for one rune per cell, so the
// game centers strings correctly on this grid.
func (r *Raster) Measurer() core.TextMeasurer {
	sx, _ := r.scale()
	return core.MeasureFunc(func(text string, _ float64) float64 {
		if sx == 0 {
			return 0
		}
		return float64(utf8.RuneCountInString(text)) / sx
	})
}

// Clear implements core.Canvas.
func (r *Raster) Clear(c core.Color) {
	r.bg = c.Over(core.ColorBlack)
	r.grid.Fill(Cell{Rune: ' ', Color: r.bg})
}

// FillRect implements core.Canvas. Every cell the rectangle touches is filled,
// so thin shapes stay visible.
func (r *Raster) FillRect(x, y, w, h float64, c core.Color) {
	sx, sy := r.scale()
	x0, x1 := span(x*sx, (x+w)*sx)
	y0, y1 := span(y*sy, (y+h)*sy)
	col := c.Over(r.bg)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r.grid.Set(cx, cy, BlockChar, col)
		}
	}
}

// FillCircle implements core.Canvas. Circles smaller than a cell become a dot.
func (r *Raster) FillCircle(cx, cy, radius float64, c core.Color) {
	sx, sy := r.scale()
	col := c.Over(r.bg)
	if radius*sx < 1 || radius*sy < 1 {
		r.grid.Set(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), DotChar, col)
		return
	}
	x0, x1 := span((cx-radius)*sx, (cx+radius)*sx)
	y0, y1 := span((cy-radius)*sy, (cy+radius)*sy)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Cell center back in arena pixels
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if math.Hypot(px-cx, py-cy) <= radius {
				r.grid.Set(x, y, BlockChar, col)
			}
		}
	}
}

// DrawText implements core.Canvas. The baseline y is moved up by a third of
// the text size so the row lands on the glyphs' visual middle.
func (r *Raster) DrawText(text string, x, y, size float64, c core.Color) {
	sx, sy := r.scale()
	row := int(math.Floor((y - size/3) * sy))
	r.grid.Text(int(math.Floor(x*sx)), row, text, c.Over(r.bg))
}

// span converts a continuous [a, b) range to an inclusive cell range with at
// least one cell.
func span(a, b float64) (int, int) {
	lo := int(math.Floor(a))
	hi := int(math.Ceil(b)) - 1
	return lo, max(hi, lo)
}

// styleCache maps 24-bit colors to lipgloss styles. Keys are quantized so
// fading particles and the score pulse cannot grow it past what a terminal
// can show.
type styleCache map[[3]uint8]lipgloss.Style

func (sc styleCache) get(c core.Color) lipgloss.Style {
	r, g, b, _ := c.RGBA8()
	key := [3]uint8{r, g, b}
	if st, ok := sc[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	sc[key] = st
	return st
}

// RenderGrid converts a grid to a styled string, one lipgloss span per run of
// same-colored cells.
func RenderGrid(g *Grid, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	var run strings.Builder
	for y := range g.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width(); {
			col := g.At(x, y).Color
			run.Reset()
			for ; x < g.Width() && g.At(x, y).Color == col; x++ {
				run.WriteRune(g.At(x, y).Rune)
			}
			sb.WriteString(styles.get(col).Render(run.String()))
		}
	}
	return sb.String()
}
