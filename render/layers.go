package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sweeper/input"
	"github.com/lixenwraith/vi-sweeper/minefield"
	"github.com/lixenwraith/vi-sweeper/status"
)

// BoardLayer draws the grid at the top-left corner
type BoardLayer struct {
	theme Theme
}

// NewBoardLayer creates the grid layer
func NewBoardLayer(theme Theme) *BoardLayer {
	return &BoardLayer{theme: theme}
}

func (l *BoardLayer) Render(ctx Context, c *Canvas) {
	v := ctx.View
	cursor := v.Cursor()

	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			g := Glyph(v, x, y)
			style := l.theme.Style(g)
			col := x * CellWidth

			if x == cursor.X && y == cursor.Y {
				c.SetCell(col, y, '[', l.theme.Text.Bold(true))
				c.SetCell(col+1, y, g, style.Reverse(true))
				c.SetCell(col+2, y, ']', l.theme.Text.Bold(true))
				continue
			}
			c.SetCell(col+1, y, g, style)
		}
	}
}

// HelpLayer lists key bindings below the board
type HelpLayer struct {
	lines []string
	style tcell.Style
}

// NewHelpLayer builds the menu text from the active bindings
func NewHelpLayer(theme Theme, kt *input.KeyTable) *HelpLayer {
	return &HelpLayer{lines: HelpLines(kt), style: theme.Text}
}

// HelpLines groups keys per command as "[8 k Up] - up"
func HelpLines(kt *input.KeyTable) []string {
	var (
		lines []string
		keys  []string
		cur   = minefield.CmdNone
	)
	flush := func() {
		if len(keys) > 0 {
			lines = append(lines, fmt.Sprintf("[%s] - %s", strings.Join(keys, " "), cur))
		}
		keys = keys[:0]
	}

	for _, b := range kt.Bindings() {
		if b.Command != cur {
			flush()
			cur = b.Command
		}
		keys = append(keys, b.Key)
	}
	flush()
	return lines
}

// IsVisible hides the bindings once the game is over
func (l *HelpLayer) IsVisible(ctx Context) bool {
	return ctx.View.Result() == minefield.InProgress
}

func (l *HelpLayer) Render(ctx Context, c *Canvas) {
	top := ctx.View.Height() + 1
	for i, line := range l.lines {
		c.DrawText(0, top+i, line, l.style)
	}
}

// resultRows is the number of rows ResultLayer draws under the board
const resultRows = 3

// StatusLayer shows counters on the last screen row
type StatusLayer struct {
	style tcell.Style
	// rows drawn under the board by the other layers
	reserved int
}

// NewStatusLayer creates the status row layer; reserved is the row count the layers
// below the board need, the status row is dropped when it would overlap them
func NewStatusLayer(theme Theme, reserved int) *StatusLayer {
	return &StatusLayer{style: theme.Status, reserved: reserved}
}

// IsVisible hides the status row on terminals too short to fit it under the board text
func (l *StatusLayer) IsVisible(ctx Context) bool {
	return ctx.View.Height()+l.reserved+1 < ctx.Height
}

// StatusLine formats the counters shown in the status row
func StatusLine(ctx Context) string {
	v := ctx.View
	line := fmt.Sprintf("safe %d  flags %d/%d  seed %d", v.Remaining(), v.Flags(), v.Bombs(), ctx.Seed)
	if ctx.Stats != nil {
		line += fmt.Sprintf("  moves %d  reveals %d", ctx.Stats.Int(status.Moves), ctx.Stats.Int(status.Reveals))
	}
	return line
}

func (l *StatusLayer) Render(ctx Context, c *Canvas) {
	c.DrawText(0, ctx.Height-1, StatusLine(ctx), l.style)
}

// ResultLayer announces the end of the game under the board
type ResultLayer struct {
	theme Theme
}

// NewResultLayer creates the end-of-game layer
func NewResultLayer(theme Theme) *ResultLayer {
	return &ResultLayer{theme: theme}
}

func (l *ResultLayer) IsVisible(ctx Context) bool {
	return ctx.View.Result() != minefield.InProgress
}

func (l *ResultLayer) Render(ctx Context, c *Canvas) {
	res := ctx.View.Result()
	style := l.theme.Win
	if res == minefield.Loss {
		style = l.theme.Loss
	}

	row := ctx.View.Height() + 1
	width := ctx.View.Width() * CellWidth
	c.DrawCentered(0, row, width, ResultMessage(res), style)
	c.DrawCentered(0, row+1, width, "press any key", l.theme.Status)
	if ctx.Stats != nil {
		c.DrawText(0, row+2, ctx.Stats.Summary(), l.theme.Status)
	}
}

// NewGameOrchestrator wires the standard layer stack
func NewGameOrchestrator(screen tcell.Screen, theme Theme, kt *input.KeyTable) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(NewBoardLayer(theme), PriorityBoard)
	help := NewHelpLayer(theme, kt)
	o.Register(help, PriorityHelp)
	o.Register(NewStatusLayer(theme, max(len(help.lines), resultRows)), PriorityStatus)
	o.Register(NewResultLayer(theme), PriorityOverlay)
	return o
}
