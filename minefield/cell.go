package minefield

// CellState is the player-visible state of a cell
type CellState uint8

const (
	Unmarked CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Unmarked:
		return "unmarked"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	}
	return "unknown"
}

// Cell is one grid square
type Cell struct {
	HasBomb bool
	State   CellState
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// neighborOffsets lists the 8-neighbourhood, row-major
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
