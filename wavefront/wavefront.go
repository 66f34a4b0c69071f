package wavefront

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// Compute builds the goal-rooted wavefront field of g: every free cell
// reachable from goal receives its BFS layer index (goal = 0, each layer
// +1), under g's connectivity. Obstacles are never enqueued and block the
// wave; they and any free cell they cut off keep grid.Unreachable.
//
// The goal must be an in-bounds Free cell; otherwise ErrInvalidGoal is
// returned before any propagation begins.
// Complexity: O(W×H×d) time, O(W×H) memory.
func Compute(g *grid.OccupancyGrid, goal grid.Cell) (*grid.DistanceField, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: (%d,%d) out of bounds", ErrInvalidGoal, goal.Row, goal.Col)
	}
	if !g.IsFree(goal) {
		return nil, fmt.Errorf("%w: (%d,%d) is an obstacle", ErrInvalidGoal, goal.Row, goal.Col)
	}

	return g.DistanceFrom([]grid.Cell{goal}, g.IsFree)
}

// Descend extracts a path from start to goal by greedy monotone descent on
// a wavefront field f: from each cell it steps to the first neighbor (in
// canonical enumeration order) whose depth is exactly one less, until
// depth 0. The field's construction invariant guarantees such a neighbor
// exists at every step, so descent never stalls and needs no iteration cap
// beyond the grid's finite diameter.
//
// Validation, in order: nil inputs (ErrNilField, ErrNilGrid), dimension
// agreement (ErrFieldMismatch), start in bounds and free (ErrInvalidStart),
// goal in bounds, free, and holding depth 0 in f (ErrInvalidGoal — a field
// rooted at a different goal is rejected rather than silently descended).
// A start with Unreachable depth yields ErrUnreachable.
//
// On success the Result path runs start to goal inclusive and contains
// exactly Depth+1 cells.
// Complexity: O(D×d) time, D = wavefront depth of start.
func Descend(f *grid.DistanceField, g *grid.OccupancyGrid, start, goal grid.Cell) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if f.Width() != g.Width() || f.Height() != g.Height() {
		return nil, fmt.Errorf("%w: field %dx%d, grid %dx%d",
			ErrFieldMismatch, f.Width(), f.Height(), g.Width(), g.Height())
	}
	if !g.IsFree(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, start.Row, start.Col)
	}
	if !g.IsFree(goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidGoal, goal.Row, goal.Col)
	}
	goalDepth, err := f.At(goal)
	if err != nil {
		return nil, err
	}
	if goalDepth != 0 {
		return nil, fmt.Errorf("%w: field is not rooted at (%d,%d)", ErrInvalidGoal, goal.Row, goal.Col)
	}

	depth, err := f.At(start)
	if err != nil {
		return nil, err
	}
	if depth == grid.Unreachable {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrUnreachable, start.Row, start.Col)
	}

	path := make(grid.Path, 0, depth+1)
	path = append(path, start)
	cur, curDepth := start, depth
	for curDepth > 0 {
		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		next, found := cur, false
		for _, n := range neighbors {
			d, err := f.At(n)
			if err != nil {
				return nil, err
			}
			if d == curDepth-1 {
				next, found = n, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: dead end at (%d,%d) depth %d", ErrCorruptField, cur.Row, cur.Col, curDepth)
		}
		cur, curDepth = next, curDepth-1
		path = append(path, cur)
	}

	return &Result{Path: path, Depth: depth}, nil
}
