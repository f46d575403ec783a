package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the styles used by the board layers
type Theme struct {
	Unmarked tcell.Style
	Flagged  tcell.Style
	Bomb     tcell.Style
	Zero     tcell.Style
	Counts   [9]tcell.Style // index by mine count, 0 unused
	Text     tcell.Style
	Status   tcell.Style
	Win      tcell.Style
	Loss     tcell.Style
}

// Count ramp endpoints, blended in HCL so mid values stay saturated
var (
	countLow  = colorful.Color{R: 0.35, G: 0.60, B: 1.00}
	countHigh = colorful.Color{R: 1.00, G: 0.25, B: 0.20}
)

// DefaultTheme returns the built-in palette
func DefaultTheme() Theme {
	t := Theme{
		Unmarked: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Flagged:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Bomb:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true),
		Zero:     tcell.StyleDefault.Foreground(tcell.ColorDimGray),
		Text:     tcell.StyleDefault,
		Status:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
		Win:      tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		Loss:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}

	t.Counts[0] = t.Zero
	for n := 1; n <= 8; n++ {
		c := countLow.BlendHcl(countHigh, float64(n-1)/7).Clamped()
		t.Counts[n] = tcell.StyleDefault.Foreground(toTcell(c)).Bold(n >= 3)
	}
	return t
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style returns the style for a glyph produced by Glyph
func (t Theme) Style(g rune) tcell.Style {
	switch {
	case g == GlyphUnmarked:
		return t.Unmarked
	case g == GlyphFlagged:
		return t.Flagged
	case g == GlyphBomb:
		return t.Bomb
	case g >= '0' && g <= '8':
		return t.Counts[g-'0']
	}
	return t.Text
}
