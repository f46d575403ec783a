package minefield

// GameResult is the outcome reported after a command
type GameResult uint8

const (
	InProgress GameResult = iota
	Win
	Loss
)

func (r GameResult) String() string {
	switch r {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "unknown"
}

// Direction is a cursor movement
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Board owns the grid, overlay, cursor and reveal bookkeeping
// Cells are indexed [y][x]; nothing outside the package holds a reference into them
type Board struct {
	width, height int
	cells         [][]Cell
	counts        [][]int

	cursor    Point
	bombs     int
	flags     int
	remaining int
	result    GameResult
}

func newBoard(width, height, bombs int) *Board {
	cells := make([][]Cell, height)
	counts := make([][]int, height)
	for y := range height {
		cells[y] = make([]Cell, width)
		counts[y] = make([]int, width)
	}

	return &Board{
		width:     width,
		height:    height,
		cells:     cells,
		counts:    counts,
		cursor:    Point{width / 2, height / 2},
		bombs:     bombs,
		remaining: width*height - bombs,
	}
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Bombs returns the number of bombs on the board
func (b *Board) Bombs() int { return b.bombs }

// Flags returns the number of currently flagged cells
func (b *Board) Flags() int { return b.flags }

// Remaining returns the number of safe cells not yet revealed
func (b *Board) Remaining() int { return b.remaining }

// Result returns the terminal result once reached, InProgress before that
func (b *Board) Result() GameResult { return b.result }

// Cursor returns the cursor position
func (b *Board) Cursor() Point { return b.cursor }

// InBounds reports whether (x, y) lies on the grid
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns a copy of the cell at (x, y); out of bounds yields the zero Cell
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

// MineCount returns the overlay value at (x, y); -1 when out of bounds
func (b *Board) MineCount(x, y int) int {
	if !b.InBounds(x, y) {
		return -1
	}
	return b.counts[y][x]
}

// MoveCursor moves one cell in dir; moves past an edge are ignored
func (b *Board) MoveCursor(dir Direction) {
	switch dir {
	case Up:
		if b.cursor.Y > 0 {
			b.cursor.Y--
		}
	case Down:
		if b.cursor.Y < b.height-1 {
			b.cursor.Y++
		}
	case Left:
		if b.cursor.X > 0 {
			b.cursor.X--
		}
	case Right:
		if b.cursor.X < b.width-1 {
			b.cursor.X++
		}
	}
}

// FlagAtCursor marks an unmarked cursor cell; flagged and revealed cells are left alone
func (b *Board) FlagAtCursor() {
	cell := &b.cells[b.cursor.Y][b.cursor.X]
	if cell.State == Unmarked {
		cell.State = Flagged
		b.flags++
	}
}

// UnflagAtCursor clears a flag at the cursor; other states are left alone
func (b *Board) UnflagAtCursor() {
	cell := &b.cells[b.cursor.Y][b.cursor.X]
	if cell.State == Flagged {
		cell.State = Unmarked
		b.flags--
	}
}
