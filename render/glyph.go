package render

import (
	"strings"

	"github.com/lixenwraith/vi-sweeper/minefield"
)

// Cell glyphs
const (
	GlyphUnmarked = '.'
	GlyphFlagged  = '?'
	GlyphBomb     = 'X'
)

// CellWidth is the number of columns each board cell occupies
const CellWidth = 3

// Glyph returns the character for (x, y)
// After a loss every bomb is shown, the board state itself is untouched
func Glyph(v View, x, y int) rune {
	cell := v.Cell(x, y)

	if cell.HasBomb && v.Result() == minefield.Loss {
		return GlyphBomb
	}

	switch cell.State {
	case minefield.Flagged:
		return GlyphFlagged
	case minefield.Revealed:
		if cell.HasBomb {
			return GlyphBomb
		}
		return rune('0' + v.MineCount(x, y))
	}
	return GlyphUnmarked
}

// Text renders the board as plain text, cursor cell bracketed, one row per line
func Text(v View) string {
	var sb strings.Builder
	sb.Grow(v.Height() * (v.Width()*CellWidth + 1))

	cursor := v.Cursor()
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			g := Glyph(v, x, y)
			if x == cursor.X && y == cursor.Y {
				sb.WriteByte('[')
				sb.WriteRune(g)
				sb.WriteByte(']')
			} else {
				sb.WriteByte(' ')
				sb.WriteRune(g)
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ResultMessage returns the end-of-game line, empty while in progress
func ResultMessage(res minefield.GameResult) string {
	switch res {
	case minefield.Win:
		return "You win!"
	case minefield.Loss:
		return "You lose!"
	}
	return ""
}
