package minefield

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return NewRand(seed)
}

func countBombs(b *Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Cell(x, y).HasBomb {
				n++
			}
		}
	}
	return n
}

// bruteCount recomputes the overlay value from scratch
func bruteCount(b *Board, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= b.Width() || ny >= b.Height() {
				continue
			}
			if b.Cell(nx, ny).HasBomb {
				n++
			}
		}
	}
	return n
}

func TestGenerateBombCount(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, bombs int
	}{
		{"default", 10, 10, 10},
		{"empty", 5, 4, 0},
		{"full", 4, 3, 12},
		{"single", 1, 1, 1},
		{"dense", 9, 9, 80},
		{"wide", 30, 2, 17},
	}

	for _, placement := range []Placement{PlaceShuffle, PlaceRejection} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				for seed := uint64(0); seed < 20; seed++ {
					b, err := Generate(tt.width, tt.height, tt.bombs, newTestRand(seed), WithPlacement(placement))
					if err != nil {
						t.Fatalf("Unexpected error: %v", err)
					}
					if got := countBombs(b); got != tt.bombs {
						t.Errorf("placement %d seed %d: expected %d bombs, got %d", placement, seed, tt.bombs, got)
					}
					if b.Bombs() != tt.bombs {
						t.Errorf("Expected Bombs() %d, got %d", tt.bombs, b.Bombs())
					}
				}
			})
		}
	}
}

func TestGenerateOverlayMatchesBruteForce(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		rng := newTestRand(seed)
		w, h := 1+rng.IntN(16), 1+rng.IntN(16)
		bombs := rng.IntN(w*h + 1)

		b, err := Generate(w, h, bombs, rng)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want := bruteCount(b, x, y)
				got := b.MineCount(x, y)
				if got != want {
					t.Fatalf("seed %d %dx%d: count at (%d,%d) expected %d, got %d", seed, w, h, x, y, want, got)
				}
				if got < 0 || got > 8 {
					t.Fatalf("Count at (%d,%d) out of range: %d", x, y, got)
				}
			}
		}
	}
}

func TestGenerateInitialState(t *testing.T) {
	b, err := Generate(10, 7, 13, newTestRand(3))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c := b.Cursor(); c.X != 5 || c.Y != 3 {
		t.Errorf("Expected cursor at (5,3), got (%d,%d)", c.X, c.Y)
	}
	if b.Remaining() != 10*7-13 {
		t.Errorf("Expected remaining %d, got %d", 10*7-13, b.Remaining())
	}
	if b.Result() != InProgress {
		t.Errorf("Expected InProgress, got %v", b.Result())
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if s := b.Cell(x, y).State; s != Unmarked {
				t.Fatalf("Expected unmarked cell at (%d,%d), got %v", x, y, s)
			}
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, _ := Generate(12, 12, 30, newTestRand(42))
	b, _ := Generate(12, 12, 30, newTestRand(42))

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				t.Fatalf("Boards from the same seed differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateConfigurationErrors(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, bombs int
	}{
		{"too many bombs", 3, 3, 10},
		{"zero width", 0, 5, 0},
		{"negative height", 5, -1, 0},
		{"negative bombs", 5, 5, -1},
		{"cell count overflows", math.MaxInt/4 + 1, 4, 1},
		{"cell count overflows tall", 3, math.MaxInt/2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Generate(tt.width, tt.height, tt.bombs, newTestRand(1))
			if b != nil {
				t.Error("Expected nil board on configuration error")
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("Expected ErrConfiguration, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T", err)
			}
			if cfgErr.Bombs != tt.bombs {
				t.Errorf("Expected Bombs %d in error, got %d", tt.bombs, cfgErr.Bombs)
			}
		})
	}
}

func TestGenerateNilSource(t *testing.T) {
	if _, err := Generate(3, 3, 1, nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration for nil source, got %v", err)
	}
}

func TestNewFromLayout(t *testing.T) {
	b, err := NewFromLayout(3, 3, []Point{{0, 0}, {2, 2}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b.MineCount(1, 1) != 2 {
		t.Errorf("Expected count 2 at (1,1), got %d", b.MineCount(1, 1))
	}
	if b.Remaining() != 7 {
		t.Errorf("Expected remaining 7, got %d", b.Remaining())
	}

	if _, err := NewFromLayout(3, 3, []Point{{1, 1}, {1, 1}}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration for duplicate bomb, got %v", err)
	}
	if _, err := NewFromLayout(3, 3, []Point{{3, 0}}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration for out-of-bounds bomb, got %v", err)
	}
}
