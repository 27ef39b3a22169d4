package game

import (
	"math/rand"

	"github.com/vovakirdan/color-quest/internal/core"
)

// Grid dimensions.
const (
	GridSize = 9
	GridCols = 3
	GridRows = GridSize / GridCols
)

// Round is one target-color challenge: a target plus the nine candidate tiles.
type Round struct {
	Target core.Color
	Tiles  [GridSize]core.Color
}

// NewRound picks a target uniformly from colors and lays out a shuffled grid
// that is guaranteed to contain it.
//
// The target overwrites one random slot, so it may appear twice while the
// color that was in that slot disappears.
func NewRound(rng *rand.Rand, colors []core.Color) Round {
	var r Round
	if len(colors) == 0 {
		return r
	}

	r.Target = colors[rng.Intn(len(colors))]

	shuffled := Shuffle(rng, colors)
	for i := range r.Tiles {
		// Palettes shorter than the grid are cycled.
		r.Tiles[i] = shuffled[i%len(shuffled)]
	}

	r.Tiles[rng.Intn(GridSize)] = r.Target
	return r
}

// Tile returns the color at index i, or false when i is outside the grid.
func (r Round) Tile(i int) (core.Color, bool) {
	if i < 0 || i >= GridSize {
		return core.ColorNone, false
	}
	return r.Tiles[i], true
}

// Contains reports whether c is on the grid.
func (r Round) Contains(c core.Color) bool {
	return r.Count(c) > 0
}

// Count returns how many tiles carry c.
func (r Round) Count(c core.Color) int {
	n := 0
	for _, t := range r.Tiles {
		if t == c {
			n++
		}
	}
	return n
}
