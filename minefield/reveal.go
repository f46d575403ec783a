package minefield

import "fmt"

// Reveal opens (x, y) and cascades through zero-count regions breadth-first
// A bomb at (x, y) is revealed alone and yields Loss
func (b *Board) Reveal(x, y int) GameResult {
	if !b.InBounds(x, y) {
		return InProgress
	}

	if b.cells[y][x].HasBomb {
		if b.cells[y][x].State == Flagged {
			b.flags--
		}
		b.cells[y][x].State = Revealed
		return Loss
	}

	// Worklist may hold the same coordinate several times; the Revealed check on pop dedups
	queue := []Point{{x, y}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		cell := &b.cells[p.Y][p.X]
		if cell.State == Revealed {
			continue
		}
		if cell.HasBomb {
			panic(fmt.Sprintf("minefield: bomb at (%d,%d) reached by cascade from (%d,%d), overlay is corrupt", p.X, p.Y, x, y))
		}

		if cell.State == Flagged {
			b.flags--
		}
		cell.State = Revealed
		b.remaining--

		if b.counts[p.Y][p.X] != 0 {
			continue
		}
		for _, off := range neighborOffsets {
			nx, ny := p.X+off.X, p.Y+off.Y
			if b.InBounds(nx, ny) {
				queue = append(queue, Point{nx, ny})
			}
		}
	}

	if b.remaining == 0 {
		return Win
	}
	return InProgress
}
