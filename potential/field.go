package potential

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/grid"
)

// Field is a grid-shaped scalar potential. Free cells hold finite values
// (or +Inf for free cells with no finite attraction, see BuildAttractive);
// obstacle cells always hold +Inf and are never selected by descent.
// Read-only once built.
type Field struct {
	width, height int
	u             []float64 // row-major
}

// newField allocates a width×height field zeroed everywhere.
func newField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		u:      make([]float64, width*height),
	}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// At returns the potential stored at c, or ErrOutOfBounds.
func (f *Field) At(c grid.Cell) (float64, error) {
	if c.Row < 0 || c.Row >= f.height || c.Col < 0 || c.Col >= f.width {
		return 0, fmt.Errorf("%w: (%d,%d)", grid.ErrOutOfBounds, c.Row, c.Col)
	}

	return f.u[c.Row*f.width+c.Col], nil
}

// MaxFinite returns the largest finite potential in the field, or 0 if no
// cell holds a finite value. Useful for consumers capping the scalar
// landscape before rendering.
func (f *Field) MaxFinite() float64 {
	max := math.Inf(-1)
	for _, v := range f.u {
		if !math.IsInf(v, 1) && v > max {
			max = v
		}
	}
	if math.IsInf(max, -1) {
		return 0
	}

	return max
}

// add returns the elementwise sum of two same-shaped fields.
func (f *Field) add(other *Field) *Field {
	sum := newField(f.width, f.height)
	for i := range f.u {
		sum.u[i] = f.u[i] + other.u[i]
	}

	return sum
}

// BuildAttractive computes the quadratic attractive potential
// U_att(q) = 0.5·gain·d(q,goal)² for every cell, under the chosen metric.
// Obstacle cells hold +Inf (impassable). Under Topological, free cells
// with no obstacle-respecting route to the goal also hold +Inf: no finite
// attraction can lead them anywhere.
//
// Returns ErrNilGrid, ErrNonPositiveGain, ErrUnknownMetric, or
// ErrInvalidGoal (goal out of bounds or occupied).
// Complexity: O(W×H), plus one O(W×H×d) BFS for Topological.
func BuildAttractive(g *grid.OccupancyGrid, goal grid.Cell, gain float64, metric Metric) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if gain <= 0 {
		return nil, fmt.Errorf("%w: gain = %v", ErrNonPositiveGain, gain)
	}
	if !g.IsFree(goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidGoal, goal.Row, goal.Col)
	}

	var topo *grid.DistanceField
	if metric == Topological {
		var err error
		if topo, err = g.DistanceFrom([]grid.Cell{goal}, g.IsFree); err != nil {
			return nil, err
		}
	}

	f := newField(g.Width(), g.Height())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			i := r*g.Width() + c
			if !g.IsFree(cell) {
				f.u[i] = math.Inf(1)
				continue
			}
			var d float64
			switch metric {
			case Euclidean:
				dr, dc := float64(r-goal.Row), float64(c-goal.Col)
				d = math.Sqrt(dr*dr + dc*dc)
			case Manhattan:
				d = math.Abs(float64(r-goal.Row)) + math.Abs(float64(c-goal.Col))
			case Topological:
				steps, err := topo.At(cell)
				if err != nil {
					return nil, err
				}
				if steps == grid.Unreachable {
					f.u[i] = math.Inf(1)
					continue
				}
				d = float64(steps)
			default:
				return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, metric)
			}
			f.u[i] = 0.5 * gain * d * d
		}
	}

	return f, nil
}

// BuildRepulsive computes the repulsive potential from a brushfire
// clearance field: U_rep(q) = 0.5·gain·(1/D(q) − 1/radius)² where the
// clearance D(q) ≤ radius, else 0. Obstacle cells (and any cell reported
// at clearance 0) hold +Inf — impassable rather than a division by zero.
// Cells with grid.Unreachable clearance (obstacle-free map) repel nothing.
//
// Returns ErrNilGrid, ErrNilClearance, ErrNonPositiveGain,
// ErrNonPositiveRadius, or ErrFieldMismatch.
// Complexity: O(W×H).
func BuildRepulsive(g *grid.OccupancyGrid, clearance *grid.DistanceField, gain, radius float64) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if clearance == nil {
		return nil, ErrNilClearance
	}
	if gain <= 0 {
		return nil, fmt.Errorf("%w: gain = %v", ErrNonPositiveGain, gain)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius = %v", ErrNonPositiveRadius, radius)
	}
	if clearance.Width() != g.Width() || clearance.Height() != g.Height() {
		return nil, fmt.Errorf("%w: clearance %dx%d, grid %dx%d",
			ErrFieldMismatch, clearance.Width(), clearance.Height(), g.Width(), g.Height())
	}

	f := newField(g.Width(), g.Height())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			i := r*g.Width() + c
			d, err := clearance.At(cell)
			if err != nil {
				return nil, err
			}
			switch {
			case !g.IsFree(cell) || d == 0:
				f.u[i] = math.Inf(1)
			case d == grid.Unreachable || float64(d) > radius:
				f.u[i] = 0
			default:
				diff := 1/float64(d) - 1/radius
				f.u[i] = 0.5 * gain * diff * diff
			}
		}
	}

	return f, nil
}

// Build constructs the total potential U_total = U_att + U_rep over g in a
// single composition: attraction per opts.Metric and opts.AttractiveGain,
// repulsion from the supplied brushfire clearance per opts.RepulsiveGain
// and opts.InfluenceRadius. Deterministic: identical inputs yield
// bit-identical fields.
//
// Validation, in order: nil inputs, opts (ErrNonPositiveGain,
// ErrNonPositiveRadius, ErrUnknownMetric), goal (ErrInvalidGoal), clearance
// shape (ErrFieldMismatch).
// Complexity: O(W×H), plus one BFS for the Topological metric.
func Build(g *grid.OccupancyGrid, goal grid.Cell, clearance *grid.DistanceField, opts Options) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if clearance == nil {
		return nil, ErrNilClearance
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	att, err := BuildAttractive(g, goal, opts.AttractiveGain, opts.Metric)
	if err != nil {
		return nil, err
	}
	rep, err := BuildRepulsive(g, clearance, opts.RepulsiveGain, opts.InfluenceRadius)
	if err != nil {
		return nil, err
	}

	return att.add(rep), nil
}
