package minefield

import (
	"fmt"
	"math/rand/v2"
)

// Source supplies uniform random integers in [0, n)
// *math/rand/v2.Rand satisfies it
type Source interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed Source for seed; equal seeds produce equal boards
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Placement selects the bomb placement algorithm
type Placement uint8

const (
	// PlaceShuffle picks distinct cells with a partial Fisher-Yates pass
	PlaceShuffle Placement = iota
	// PlaceRejection samples random cells and retries on collision
	PlaceRejection
)

type genOptions struct {
	placement Placement
}

// Option configures Generate
type Option func(*genOptions)

// WithPlacement overrides the default PlaceShuffle strategy
func WithPlacement(p Placement) Option {
	return func(o *genOptions) {
		o.placement = p
	}
}

// Generate builds a width x height board with exactly bombs randomly placed bombs
// Returns a *ConfigError when the parameters cannot produce a board
func Generate(width, height, bombs int, rng Source, opts ...Option) (*Board, error) {
	if err := Validate(width, height, bombs); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &ConfigError{width, height, bombs, "nil random source"}
	}

	o := genOptions{placement: PlaceShuffle}
	for _, opt := range opts {
		opt(&o)
	}

	b := newBoard(width, height, bombs)
	switch o.placement {
	case PlaceRejection:
		placeRejection(b, rng)
	default:
		placeShuffle(b, rng)
	}
	b.computeCounts()
	return b, nil
}

// NewFromLayout builds a board with bombs at the given positions
func NewFromLayout(width, height int, bombs []Point) (*Board, error) {
	if err := Validate(width, height, len(bombs)); err != nil {
		return nil, err
	}

	b := newBoard(width, height, len(bombs))
	for _, p := range bombs {
		if !b.InBounds(p.X, p.Y) {
			return nil, &ConfigError{width, height, len(bombs), fmt.Sprintf("bomb at (%d,%d) out of bounds", p.X, p.Y)}
		}
		if b.cells[p.Y][p.X].HasBomb {
			return nil, &ConfigError{width, height, len(bombs), fmt.Sprintf("duplicate bomb at (%d,%d)", p.X, p.Y)}
		}
		b.cells[p.Y][p.X].HasBomb = true
	}
	b.computeCounts()
	return b, nil
}

// placeShuffle draws bombs distinct indices by swapping each pick out of the candidate tail
func placeShuffle(b *Board, rng Source) {
	total := b.width * b.height
	candidates := make([]int, total)
	for i := range candidates {
		candidates[i] = i
	}

	k := total
	for range b.bombs {
		i := rng.IntN(k)
		idx := candidates[i]
		b.cells[idx/b.width][idx%b.width].HasBomb = true
		k--
		candidates[i] = candidates[k]
	}
}

// placeRejection keeps drawing random cells until bombs unoccupied ones were hit
func placeRejection(b *Board, rng Source) {
	total := b.width * b.height
	for placed := 0; placed < b.bombs; {
		idx := rng.IntN(total)
		cell := &b.cells[idx/b.width][idx%b.width]
		if cell.HasBomb {
			continue
		}
		cell.HasBomb = true
		placed++
	}
}

// computeCounts fills the mine-count overlay; edges are skipped, not wrapped
func (b *Board) computeCounts() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			n := 0
			for _, off := range neighborOffsets {
				nx, ny := x+off.X, y+off.Y
				if b.InBounds(nx, ny) && b.cells[ny][nx].HasBomb {
					n++
				}
			}
			b.counts[y][x] = n
		}
	}
}
