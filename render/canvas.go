package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is a clipped drawing surface over a tcell screen
type Canvas struct {
	screen        tcell.Screen
	width, height int
}

// NewCanvas wraps screen at its current size
func NewCanvas(screen tcell.Screen) *Canvas {
	w, h := screen.Size()
	return &Canvas{screen: screen, width: w, height: h}
}

// Size returns the drawable area in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetCell draws one rune; out-of-area writes are dropped
func (c *Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// DrawText draws s starting at (x, y), truncated at the right edge
// Returns the number of columns used
func (c *Canvas) DrawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= c.height || x >= c.width {
		return 0
	}
	s = runewidth.Truncate(s, c.width-x, "…")

	col := x
	for _, r := range s {
		c.SetCell(col, y, r, style)
		col += runewidth.RuneWidth(r)
	}
	return col - x
}

// DrawCentered draws s horizontally centered within [x, x+width) on row y
func (c *Canvas) DrawCentered(x, y, width int, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	if w > width {
		c.DrawText(x, y, s, style)
		return
	}
	c.DrawText(x+(width-w)/2, y, s, style)
}
