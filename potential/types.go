// Package potential defines configuration, result types, and sentinel
// errors for potential-field construction and gradient descent.
package potential

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for potential-field operations.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("potential: grid is nil")

	// ErrNilClearance is returned if a nil clearance field is passed.
	ErrNilClearance = errors.New("potential: clearance field is nil")

	// ErrNilField is returned if a nil potential field is passed to Descend.
	ErrNilField = errors.New("potential: field is nil")

	// ErrNonPositiveGain indicates an attractive or repulsive gain ≤ 0.
	ErrNonPositiveGain = errors.New("potential: gain must be positive")

	// ErrNonPositiveRadius indicates an influence radius ≤ 0.
	ErrNonPositiveRadius = errors.New("potential: influence radius must be positive")

	// ErrUnknownMetric indicates a Metric outside the defined set.
	ErrUnknownMetric = errors.New("potential: unknown distance metric")

	// ErrFieldMismatch indicates field dimensions differ from the grid's.
	ErrFieldMismatch = errors.New("potential: field dimensions do not match grid")

	// ErrInvalidGoal indicates the goal is out of bounds or on an obstacle.
	ErrInvalidGoal = errors.New("potential: invalid goal cell")

	// ErrInvalidStart indicates the start is out of bounds or on an obstacle.
	ErrInvalidStart = errors.New("potential: invalid start cell")

	// ErrLocalMinimumStall indicates gradient descent reached a non-goal
	// cell with no strictly improving neighbor. An expected planning
	// outcome on maps with concave obstacles, surfaced for the caller to
	// act on (retry policy is deliberately not this package's concern).
	ErrLocalMinimumStall = errors.New("potential: gradient descent stalled in a local minimum")

	// ErrMaxIterations indicates the iteration cap was exceeded before the
	// goal was reached or a stall was detected.
	ErrMaxIterations = errors.New("potential: maximum iterations exceeded")

	// ErrBadMaxIterations indicates WithMaxIterations received a value ≤ 0.
	ErrBadMaxIterations = errors.New("potential: max iterations must be positive")
)

// Metric selects the distance function of the attractive potential.
type Metric int

const (
	// Euclidean uses straight-line distance, ignoring obstacles.
	Euclidean Metric = iota
	// Manhattan uses |Δrow| + |Δcol|, ignoring obstacles.
	Manhattan
	// Topological uses goal-rooted BFS distance through free space under
	// the grid's connectivity — the only metric aware of obstacles.
	Topological
)

// String implements fmt.Stringer for diagnostics.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "Euclidean"
	case Manhattan:
		return "Manhattan"
	case Topological:
		return "Topological"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Options configures potential-field construction.
//
// AttractiveGain  – ξ, scales the quadratic pull toward the goal. Must be > 0.
// RepulsiveGain   – η, scales the push away from obstacles. Must be > 0.
// InfluenceRadius – Q, clearance (in grid steps) beyond which obstacles
//
//	exert no repulsion. Must be > 0.
//
// Metric          – distance function of the attractive term.
type Options struct {
	AttractiveGain  float64
	RepulsiveGain   float64
	InfluenceRadius float64
	Metric          Metric
}

// DefaultOptions returns the working configuration of the reference
// pipeline: ξ=1, η=100, Q=10, Euclidean attraction. Callers tune from here.
func DefaultOptions() Options {
	return Options{
		AttractiveGain:  1,
		RepulsiveGain:   100,
		InfluenceRadius: 10,
		Metric:          Euclidean,
	}
}

// validate rejects non-positive gains/radius and unknown metrics.
func (o Options) validate() error {
	if o.AttractiveGain <= 0 {
		return fmt.Errorf("%w: AttractiveGain = %v", ErrNonPositiveGain, o.AttractiveGain)
	}
	if o.RepulsiveGain <= 0 {
		return fmt.Errorf("%w: RepulsiveGain = %v", ErrNonPositiveGain, o.RepulsiveGain)
	}
	if o.InfluenceRadius <= 0 {
		return fmt.Errorf("%w: InfluenceRadius = %v", ErrNonPositiveRadius, o.InfluenceRadius)
	}
	switch o.Metric {
	case Euclidean, Manhattan, Topological:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMetric, o.Metric)
	}
}

// DefaultMaxIterations caps gradient descent when no option overrides it.
const DefaultMaxIterations = 1000

// DescendOption configures Descend via functional arguments. An invalid
// option (e.g. a non-positive cap) is recorded and surfaced as an error
// when Descend is invoked.
type DescendOption func(*descendConfig)

// descendConfig holds resolved Descend parameters.
type descendConfig struct {
	maxIterations int
	err           error
}

// WithMaxIterations caps the number of descent steps.
// n ≤ 0 is invalid and yields ErrBadMaxIterations from Descend.
func WithMaxIterations(n int) DescendOption {
	return func(c *descendConfig) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: got %d", ErrBadMaxIterations, n)
			return
		}
		c.maxIterations = n
	}
}

// Result holds the outcome of a successful gradient descent:
//   - Path:  the visited cells, start to goal inclusive (revisits possible,
//     cycle detection is deliberately absent).
//   - Steps: number of moves taken, always len(Path)-1.
type Result struct {
	Path  grid.Path
	Steps int
}
