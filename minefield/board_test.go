package minefield

import "testing"

func mustLayout(t *testing.T, w, h int, bombs ...Point) *Board {
	t.Helper()
	b, err := NewFromLayout(w, h, bombs)
	if err != nil {
		t.Fatalf("NewFromLayout: %v", err)
	}
	return b
}

func TestMoveCursorClampsAtEdges(t *testing.T) {
	b := mustLayout(t, 4, 3)

	for range 10 {
		b.MoveCursor(Left)
		b.MoveCursor(Up)
	}
	if c := b.Cursor(); c != (Point{0, 0}) {
		t.Errorf("Expected cursor (0,0), got %v", c)
	}

	for range 10 {
		b.MoveCursor(Right)
		b.MoveCursor(Down)
	}
	if c := b.Cursor(); c != (Point{3, 2}) {
		t.Errorf("Expected cursor (3,2), got %v", c)
	}

	b.MoveCursor(Left)
	b.MoveCursor(Up)
	if c := b.Cursor(); c != (Point{2, 1}) {
		t.Errorf("Expected cursor (2,1), got %v", c)
	}
}

func TestMoveCursorRandomWalkStaysInBounds(t *testing.T) {
	b := mustLayout(t, 5, 2)
	rng := newTestRand(9)
	for range 1000 {
		b.MoveCursor(Direction(rng.IntN(4)))
		c := b.Cursor()
		if !b.InBounds(c.X, c.Y) {
			t.Fatalf("Cursor left the grid: %v", c)
		}
	}
}

func TestFlagAtCursor(t *testing.T) {
	b := mustLayout(t, 3, 3, Point{0, 0})

	b.FlagAtCursor()
	if s := b.Cell(1, 1).State; s != Flagged {
		t.Fatalf("Expected flagged, got %v", s)
	}
	if b.Flags() != 1 {
		t.Errorf("Expected 1 flag, got %d", b.Flags())
	}

	// Second flag is a no-op, not a toggle
	b.FlagAtCursor()
	if s := b.Cell(1, 1).State; s != Flagged {
		t.Errorf("Expected cell to stay flagged, got %v", s)
	}
	if b.Flags() != 1 {
		t.Errorf("Expected 1 flag, got %d", b.Flags())
	}

	// Revealed cell cannot be flagged
	b.MoveCursor(Right)
	b.Reveal(2, 1)
	b.FlagAtCursor()
	if s := b.Cell(2, 1).State; s != Revealed {
		t.Errorf("Expected revealed cell to stay revealed, got %v", s)
	}
}

func TestUnflagAtCursor(t *testing.T) {
	b := mustLayout(t, 3, 3, Point{0, 0})

	b.UnflagAtCursor()
	if s := b.Cell(1, 1).State; s != Unmarked {
		t.Errorf("Expected unmarked cell to stay unmarked, got %v", s)
	}

	b.FlagAtCursor()
	b.UnflagAtCursor()
	if s := b.Cell(1, 1).State; s != Unmarked {
		t.Errorf("Expected unmarked after unflag, got %v", s)
	}
	if b.Flags() != 0 {
		t.Errorf("Expected 0 flags, got %d", b.Flags())
	}
}

func TestRevealExampleBoard(t *testing.T) {
	b := mustLayout(t, 3, 3, Point{0, 0}, Point{2, 2})

	if got := b.Reveal(1, 1); got != InProgress {
		t.Fatalf("Expected InProgress, got %v", got)
	}
	if b.Remaining() != 6 {
		t.Errorf("Expected remaining 6, got %d", b.Remaining())
	}
	// Count 2 at (1,1), no cascade
	for _, p := range []Point{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}} {
		if b.Cell(p.X, p.Y).State == Revealed {
			t.Errorf("Expected no cascade, but %v is revealed", p)
		}
	}

	if got := b.Reveal(2, 0); got != InProgress {
		t.Fatalf("Expected InProgress, got %v", got)
	}
	for _, p := range []Point{{2, 0}, {1, 0}, {2, 1}} {
		if b.Cell(p.X, p.Y).State != Revealed {
			t.Errorf("Expected %v revealed by cascade", p)
		}
	}
	// (0,2) is a separate zero region
	if b.Cell(0, 2).State == Revealed {
		t.Error("Expected (0,2) to stay hidden")
	}
	if b.Remaining() != 3 {
		t.Errorf("Expected remaining 3, got %d", b.Remaining())
	}
}

func TestRevealSingleCellWin(t *testing.T) {
	b := mustLayout(t, 1, 1)
	if b.Remaining() != 1 {
		t.Fatalf("Expected remaining 1, got %d", b.Remaining())
	}
	if got := b.Reveal(0, 0); got != Win {
		t.Errorf("Expected Win, got %v", got)
	}
}

func TestRevealBombIsLoss(t *testing.T) {
	b := mustLayout(t, 4, 4, Point{1, 2}, Point{3, 3})
	before := b.Remaining()

	if got := b.Reveal(1, 2); got != Loss {
		t.Fatalf("Expected Loss, got %v", got)
	}
	if b.Remaining() != before {
		t.Errorf("Expected remaining unchanged at %d, got %d", before, b.Remaining())
	}
	if b.Cell(1, 2).State != Revealed {
		t.Error("Expected losing bomb to be revealed")
	}
	if b.Cell(3, 3).State == Revealed {
		t.Error("Expected other bombs to stay hidden")
	}
	revealed := 0
	for y := range 4 {
		for x := range 4 {
			if b.Cell(x, y).State == Revealed {
				revealed++
			}
		}
	}
	if revealed != 1 {
		t.Errorf("Expected only the bomb revealed, got %d revealed cells", revealed)
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	b := mustLayout(t, 3, 3, Point{0, 0})
	b.Reveal(1, 1)
	after := b.Remaining()
	if got := b.Reveal(1, 1); got != InProgress {
		t.Errorf("Expected InProgress, got %v", got)
	}
	if b.Remaining() != after {
		t.Errorf("Expected remaining %d, got %d", after, b.Remaining())
	}
}

func TestRevealLastSafeCellWins(t *testing.T) {
	b := mustLayout(t, 2, 2, Point{0, 0}, Point{1, 1})
	if got := b.Reveal(1, 0); got != InProgress {
		t.Fatalf("Expected InProgress, got %v", got)
	}
	if got := b.Reveal(0, 1); got != Win {
		t.Errorf("Expected Win, got %v", got)
	}
	if b.Remaining() != 0 {
		t.Errorf("Expected remaining 0, got %d", b.Remaining())
	}
}

func TestRevealEmptyBoardCascadesEverywhere(t *testing.T) {
	b := mustLayout(t, 8, 5)
	if got := b.Reveal(0, 0); got != Win {
		t.Fatalf("Expected Win, got %v", got)
	}
}

func TestRevealClearsFlagInCascade(t *testing.T) {
	b := mustLayout(t, 5, 1)
	b.FlagAtCursor()
	if b.Flags() != 1 {
		t.Fatalf("Expected 1 flag, got %d", b.Flags())
	}
	if got := b.Reveal(0, 0); got != Win {
		t.Fatalf("Expected Win, got %v", got)
	}
	if b.Flags() != 0 {
		t.Errorf("Expected flag cleared by reveal, got %d", b.Flags())
	}
}

// expectedRegion returns the 8-connected zero region around start plus its border
func expectedRegion(b *Board, start Point) map[Point]bool {
	zero := map[Point]bool{}
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if zero[p] {
			continue
		}
		zero[p] = true
		for _, off := range neighborOffsets {
			n := Point{p.X + off.X, p.Y + off.Y}
			if b.InBounds(n.X, n.Y) && b.MineCount(n.X, n.Y) == 0 && !b.Cell(n.X, n.Y).HasBomb {
				stack = append(stack, n)
			}
		}
	}

	region := map[Point]bool{}
	for p := range zero {
		region[p] = true
		for _, off := range neighborOffsets {
			n := Point{p.X + off.X, p.Y + off.Y}
			if b.InBounds(n.X, n.Y) {
				region[n] = true
			}
		}
	}
	return region
}

func TestRevealFloodFillRegion(t *testing.T) {
	for seed := uint64(0); seed < 40; seed++ {
		rng := newTestRand(seed)
		b, err := Generate(14, 11, 18, rng)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		var start Point
		found := false
		for y := 0; y < b.Height() && !found; y++ {
			for x := 0; x < b.Width() && !found; x++ {
				if !b.Cell(x, y).HasBomb && b.MineCount(x, y) == 0 {
					start, found = Point{x, y}, true
				}
			}
		}
		if !found {
			continue
		}

		want := expectedRegion(b, start)
		before := b.Remaining()
		b.Reveal(start.X, start.Y)

		revealed := 0
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				p := Point{x, y}
				isRevealed := b.Cell(x, y).State == Revealed
				if isRevealed {
					revealed++
					if b.Cell(x, y).HasBomb {
						t.Fatalf("seed %d: bomb revealed at %v", seed, p)
					}
				}
				if isRevealed != want[p] {
					t.Fatalf("seed %d: cell %v revealed=%v, expected %v", seed, p, isRevealed, want[p])
				}
			}
		}
		if before-b.Remaining() != revealed {
			t.Errorf("seed %d: remaining dropped by %d for %d revealed cells", seed, before-b.Remaining(), revealed)
		}
	}
}

func TestRemainingMatchesGridAfterRandomPlay(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		rng := newTestRand(seed)
		b, _ := Generate(9, 9, 10, rng)

		for b.Result() == InProgress {
			b.Update(Command(1 + rng.IntN(int(CmdFlag))))

			want := 0
			for y := 0; y < b.Height(); y++ {
				for x := 0; x < b.Width(); x++ {
					c := b.Cell(x, y)
					if !c.HasBomb && c.State != Revealed {
						want++
					}
				}
			}
			if b.Remaining() != want {
				t.Fatalf("seed %d: remaining %d, grid has %d", seed, b.Remaining(), want)
			}
		}
	}
}

func TestRevealPanicsOnCorruptOverlay(t *testing.T) {
	b := mustLayout(t, 3, 1, Point{2, 0})
	b.counts[0][1] = 0

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when cascade reaches a bomb")
		}
	}()
	b.Reveal(0, 0)
}
