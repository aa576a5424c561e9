package tui

import (
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Cell is one terminal character and its foreground color.
type Cell struct {
	Rune  rune
	Color core.Color
}

var blank = Cell{Rune: ' ', Color: core.ColorBlack}

// Grid is a row-major buffer of terminal cells. Reads and writes outside the
// grid are ignored.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid creates a blank grid of w x h cells.
func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Resize changes the dimensions and blanks the grid. Every frame is repainted
// from scratch, so nothing is kept.
func (g *Grid) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if g.cells != nil && w == g.w && h == g.h {
		return
	}
	g.w, g.h = w, h
	g.cells = make([]Cell, w*h)
	g.Fill(blank)
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Set writes one cell.
func (g *Grid) Set(x, y int, r rune, c core.Color) {
	if g.inside(x, y) {
		g.cells[y*g.w+x] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y), or a blank cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.inside(x, y) {
		return blank
	}
	return g.cells[y*g.w+x]
}

// Text writes s left to right from (x, y), one rune per cell, clipped at the
// edges.
func (g *Grid) Text(x, y int, s string, c core.Color) {
	for _, r := range s {
		g.Set(x, y, r, c)
		x++
	}
}

// Row returns row y without colors.
func (g *Grid) Row(y int) string {
	var sb strings.Builder
	for x := range g.w {
		sb.WriteRune(g.At(x, y).Rune)
	}
	return sb.String()
}
