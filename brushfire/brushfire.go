package brushfire

import (
	"errors"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrNilGrid is returned if a nil grid pointer is passed to Compute.
var ErrNilGrid = errors.New("brushfire: grid is nil")

// Compute returns the obstacle distance transform of g: every obstacle
// cell holds 0, every free cell holds its minimum neighbor-step distance
// to the nearest obstacle under g's connectivity.
//
// The expansion is seeded from all obstacle cells at once and crosses the
// entire grid — obstacles repel through other obstacles, so no barrier
// predicate is needed. Deterministic: identical inputs yield bit-identical
// fields.
//
// An obstacle-free grid yields a field of grid.Unreachable everywhere
// (maximal clearance), not an error — the transform always terminates.
// Complexity: O(W×H×d) time, O(W×H) memory.
func Compute(g *grid.OccupancyGrid) (*grid.DistanceField, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	seeds := g.Obstacles()
	if len(seeds) == 0 {
		// Degenerate but valid: nothing to propagate from.
		return grid.NewDistanceField(g.Width(), g.Height())
	}

	return g.DistanceFrom(seeds, nil)
}
