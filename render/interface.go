package render

import (
	"github.com/lixenwraith/vi-sweeper/minefield"
	"github.com/lixenwraith/vi-sweeper/status"
)

// View is the read-only board surface the renderers draw from
// *minefield.Board satisfies it
type View interface {
	Width() int
	Height() int
	Cursor() minefield.Point
	Cell(x, y int) minefield.Cell
	MineCount(x, y int) int
	Remaining() int
	Bombs() int
	Flags() int
	Result() minefield.GameResult
}

// Context carries per-frame state to layers
type Context struct {
	View  View
	Stats *status.Registry
	Seed  uint64

	// Screen size in cells
	Width, Height int
}

// Layer is one stage of the frame, drawn in priority order
type Layer interface {
	Render(ctx Context, c *Canvas)
}

// VisibilityToggle is optionally implemented for per-frame enable/disable
type VisibilityToggle interface {
	IsVisible(ctx Context) bool
}
