package grid

import (
	"fmt"
)

// DistanceField is a grid-shaped array of breadth-first distances.
// Cells a propagation never reached hold Unreachable. A DistanceField is
// owned by whichever routine produced it and is read-only afterwards.
type DistanceField struct {
	width, height int
	dist          []int // row-major; Unreachable where no wave arrived
}

// NewDistanceField returns a width×height field with every cell set to
// Unreachable. Used for the degenerate seedless case (e.g. brushfire on an
// obstacle-free grid, where every cell has maximal clearance).
// Returns ErrEmptyGrid for non-positive dimensions.
func NewDistanceField(width, height int) (*DistanceField, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	f := &DistanceField{
		width:  width,
		height: height,
		dist:   make([]int, width*height),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}

	return f, nil
}

// Width returns the number of columns.
func (f *DistanceField) Width() int { return f.width }

// Height returns the number of rows.
func (f *DistanceField) Height() int { return f.height }

// At returns the distance stored at c, or ErrOutOfBounds.
// The value is Unreachable if no propagation wave reached c.
func (f *DistanceField) At(c Cell) (int, error) {
	if c.Row < 0 || c.Row >= f.height || c.Col < 0 || c.Col >= f.width {
		return Unreachable, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}

	return f.dist[c.Row*f.width+c.Col], nil
}

// Max returns the largest finite distance in the field, or Unreachable if
// no cell was ever reached. Useful for consumers normalizing the field for
// rendering.
func (f *DistanceField) Max() int {
	max := Unreachable
	for _, d := range f.dist {
		if d > max {
			max = d
		}
	}

	return max
}

// DistanceFrom computes a DistanceField by multi-source breadth-first
// expansion. Every seed starts at distance 0; each round assigns d+1 to
// any unvisited neighbor of a cell at distance d; a cell is visited exactly
// once, so values are true grid-topological distances under the grid's
// connectivity.
//
// traversable filters expansion targets: cells for which it returns false
// are never enqueued and act as propagation barriers. A nil predicate
// allows every cell. Seeds themselves are always labeled 0, regardless of
// the predicate.
//
// This single routine backs both planners: brushfire seeds from all
// obstacles with no barrier; wavefront seeds from the goal with obstacles
// as barriers.
//
// Returns ErrNoSeeds for an empty seed set and ErrOutOfBounds if any seed
// lies outside the grid.
// Complexity: O(W×H×d) time, O(W×H) memory.
func (g *OccupancyGrid) DistanceFrom(seeds []Cell, traversable func(Cell) bool) (*DistanceField, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	f, err := NewDistanceField(g.width, g.height)
	if err != nil {
		return nil, err
	}

	// Seed the frontier; duplicate seeds collapse to one visit.
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !g.InBounds(s) {
			return nil, fmt.Errorf("%w: seed (%d,%d)", ErrOutOfBounds, s.Row, s.Col)
		}
		i := g.index(s)
		if f.dist[i] == Unreachable {
			f.dist[i] = 0
			queue = append(queue, i)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uc := g.cellAt(u)
		for _, d := range g.offsets {
			nc := Cell{Row: uc.Row + d[0], Col: uc.Col + d[1]}
			if !g.InBounds(nc) {
				continue
			}
			ni := g.index(nc)
			if f.dist[ni] != Unreachable {
				continue // settled in an earlier round
			}
			if traversable != nil && !traversable(nc) {
				continue
			}
			f.dist[ni] = f.dist[u] + 1
			queue = append(queue, ni)
		}
	}

	return f, nil
}
