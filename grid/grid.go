package grid

import (
	"fmt"
)

// OccupancyGrid is a rectangular array of Free/Obstacle cells with a fixed
// connectivity. It is immutable once built: every planner reads it, none
// writes it, so a single instance is safe to share across goroutines.
type OccupancyGrid struct {
	width, height int
	conn          Connectivity
	cells         []State // row-major
	offsets       [][2]int
	freeCount     int
}

// NewOccupancyGrid constructs an OccupancyGrid from a non-empty,
// rectangular 2D slice of states. The input is copied to ensure
// immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellState if any value is neither Free nor Obstacle,
// ErrConnectivity if conn is unknown.
// Complexity: O(W×H) time and memory.
func NewOccupancyGrid(cells [][]State, conn Connectivity) (*OccupancyGrid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	offsets, err := connOffsets(conn)
	if err != nil {
		return nil, err
	}
	h, w := len(cells), len(cells[0])
	g := &OccupancyGrid{
		width:   w,
		height:  h,
		conn:    conn,
		cells:   make([]State, w*h),
		offsets: offsets,
	}
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, s := range row {
			if s != Free && s != Obstacle {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrCellState, s, r, c)
			}
			g.cells[r*w+c] = s
			if s == Free {
				g.freeCount++
			}
		}
	}

	return g, nil
}

// FromBools constructs an OccupancyGrid from a boolean occupancy mask,
// where true marks an occupied cell. Convenience wrapper for callers that
// binarize maps into true/false (or 1/0) arrays.
func FromBools(occupied [][]bool, conn Connectivity) (*OccupancyGrid, error) {
	if len(occupied) == 0 || len(occupied[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]State, len(occupied))
	for r, row := range occupied {
		cells[r] = make([]State, len(row))
		for c, occ := range row {
			if occ {
				cells[r][c] = Obstacle
			}
		}
	}

	return NewOccupancyGrid(cells, conn)
}

// connOffsets maps a Connectivity to its canonical offset table.
func connOffsets(conn Connectivity) ([][2]int, error) {
	switch conn {
	case Conn4:
		return offsets4, nil
	case Conn8:
		return offsets8, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrConnectivity, conn)
	}
}

// Width returns the number of columns.
func (g *OccupancyGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *OccupancyGrid) Height() int { return g.height }

// Connectivity returns the adjacency mode the grid was built with.
func (g *OccupancyGrid) Connectivity() Connectivity { return g.conn }

// FreeCount returns the number of Free cells.
func (g *OccupancyGrid) FreeCount() int { return g.freeCount }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *OccupancyGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsFree reports whether c is an in-bounds Free cell. Out-of-bounds cells
// are not free.
// Complexity: O(1).
func (g *OccupancyGrid) IsFree(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Free
}

// StateAt returns the state of cell c, or ErrOutOfBounds if c lies outside
// the grid.
func (g *OccupancyGrid) StateAt(c Cell) (State, error) {
	if !g.InBounds(c) {
		return Free, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}

	return g.cells[g.index(c)], nil
}

// Neighbors returns the in-bounds neighbors of c in canonical order
// (N,E,S,W for Conn4; N,NE,E,SE,S,SW,W,NW for Conn8). Neighbors outside
// the grid are silently excluded; only c itself being out of bounds is an
// error. The result includes obstacle cells — callers decide passability.
// Complexity: O(d), d = 4 or 8.
func (g *OccupancyGrid) Neighbors(c Cell) ([]Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// Obstacles returns every Obstacle cell in row-major order.
// Complexity: O(W×H).
func (g *OccupancyGrid) Obstacles() []Cell {
	out := make([]Cell, 0, g.width*g.height-g.freeCount)
	for i, s := range g.cells {
		if s == Obstacle {
			out = append(out, g.cellAt(i))
		}
	}

	return out
}

// index maps a cell to its row-major index: Row*Width + Col.
func (g *OccupancyGrid) index(c Cell) int {
	return c.Row*g.width + c.Col
}

// cellAt converts a row-major index back to a Cell.
func (g *OccupancyGrid) cellAt(i int) Cell {
	return Cell{Row: i / g.width, Col: i % g.width}
}
