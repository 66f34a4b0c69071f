package potential

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// Descend extracts a path from start to goal by discrete gradient descent
// on f: at each step it evaluates every free neighbor of the current cell
// in canonical enumeration order and moves to the one with the smallest
// potential, provided that potential is strictly below the current cell's.
// Among equally-smallest improving neighbors, the first encountered wins.
//
// Comparison is a tolerance-free strict "<" on float64: a neighbor at
// exactly equal potential is never an improvement, so symmetric plateaus
// route to ErrLocalMinimumStall instead of an arbitrary direction. This
// first-improvement tie-break is a documented policy choice — a different
// tie-break would change which symmetric traps stall versus converge
// slowly.
//
// Termination:
//   - current == goal            → Result with the path walked so far.
//   - no strictly smaller neighbor → ErrLocalMinimumStall (expected outcome).
//   - step count exceeds the cap → ErrMaxIterations (guards against
//     oscillation between equal-potential cells; revisits are legal, there
//     is no cycle detection).
//
// Use WithMaxIterations to override DefaultMaxIterations.
// Complexity: O(I×d) time, I = iteration cap.
func Descend(f *Field, g *grid.OccupancyGrid, start, goal grid.Cell, opts ...DescendOption) (*Result, error) {
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

	cfg := descendConfig{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.IsFree(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, start.Row, start.Col)
	}
	if !g.IsFree(goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidGoal, goal.Row, goal.Col)
	}

	path := make(grid.Path, 0, cfg.maxIterations/8+1)
	path = append(path, start)
	cur := start

	for steps := 0; ; steps++ {
		if cur == goal {
			return &Result{Path: path, Steps: steps}, nil
		}
		if steps >= cfg.maxIterations {
			return nil, fmt.Errorf("%w: %d steps from (%d,%d)",
				ErrMaxIterations, steps, start.Row, start.Col)
		}

		curU, err := f.At(cur)
		if err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}

		// Steepest strictly-improving neighbor; strict "<" makes the first
		// of any equal minima win.
		next, bestU, improved := cur, curU, false
		for _, n := range neighbors {
			if !g.IsFree(n) {
				continue
			}
			u, err := f.At(n)
			if err != nil {
				return nil, err
			}
			if u < bestU {
				next, bestU, improved = n, u, true
			}
		}
		if !improved {
			return nil, fmt.Errorf("%w: at (%d,%d) after %d steps",
				ErrLocalMinimumStall, cur.Row, cur.Col, steps)
		}

		cur = next
		path = append(path, cur)
	}
}
