// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridnav.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrCellState indicates a cell value other than Free or Obstacle.
	ErrCellState = errors.New("grid: cell state must be Free or Obstacle")

	// ErrConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrConnectivity = errors.New("grid: connectivity must be Conn4 or Conn8")

	// ErrOutOfBounds indicates a queried cell lies outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrNoSeeds indicates DistanceFrom received an empty seed set.
	ErrNoSeeds = errors.New("grid: at least one seed cell is required")
)

// State labels a single cell of an occupancy grid.
type State uint8

const (
	// Free marks a traversable cell.
	Free State = iota
	// Obstacle marks an occupied, impassable cell.
	Obstacle
)

// Connectivity selects neighbor adjacency: cardinal only (Conn4) or
// cardinal plus diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Canonical neighbor offsets as (dRow, dCol) pairs, clockwise from north.
// The enumeration order is part of the package contract: it fixes every
// tie-break in downstream descent extractors.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Cell is a (row, col) coordinate within a grid. Cells compare and hash by
// value; a Cell carries no meaning apart from the grid it indexes.
type Cell struct {
	Row, Col int
}

// Path is an ordered sequence of cells, start to goal inclusive.
// Consecutive cells are neighbors under the connectivity the path was
// extracted with. A Path is a terminal artifact: produced once, never
// mutated by this library.
type Path []Cell

// Unreachable is the DistanceField sentinel for cells that no breadth-first
// wave ever reached. All real distances are non-negative.
const Unreachable = -1
