// Package wavefront defines result types and sentinel errors for
// goal-rooted wavefront planning.
package wavefront

import (
	"errors"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for wavefront operations.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("wavefront: grid is nil")

	// ErrNilField is returned if a nil distance field is passed to Descend.
	ErrNilField = errors.New("wavefront: distance field is nil")

	// ErrFieldMismatch indicates the field's dimensions differ from the grid's.
	ErrFieldMismatch = errors.New("wavefront: field dimensions do not match grid")

	// ErrInvalidGoal indicates the goal is out of bounds, on an obstacle,
	// or not the zero-depth cell of the supplied field.
	ErrInvalidGoal = errors.New("wavefront: invalid goal cell")

	// ErrInvalidStart indicates the start is out of bounds or on an obstacle.
	ErrInvalidStart = errors.New("wavefront: invalid start cell")

	// ErrUnreachable indicates no path exists between start and goal under
	// the grid's connectivity. An expected planning outcome, surfaced as a
	// value for the caller to act on.
	ErrUnreachable = errors.New("wavefront: start is unreachable from goal")

	// ErrCorruptField indicates the monotone-descent invariant does not
	// hold; a field produced by Compute can never trigger this.
	ErrCorruptField = errors.New("wavefront: field violates monotone descent invariant")
)

// Result holds the outcome of a successful greedy descent:
//   - Path:  the extracted cells, start to goal inclusive.
//   - Depth: the wavefront depth of the start cell; the path always
//     contains exactly Depth+1 cells.
type Result struct {
	Path  grid.Path
	Depth int
}
