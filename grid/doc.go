// Package grid provides the foundation shared by every gridnav planner:
// occupancy grids, cell coordinates, neighbor connectivity, and the generic
// multi-source breadth-first distance propagation that both the brushfire
// transform and the wavefront planner are built on.
//
// What:
//
//   - OccupancyGrid wraps a rectangular array of Free/Obstacle cells.
//     It is immutable once built.
//   - Connectivity selects 4-neighbor (cardinal) or 8-neighbor
//     (cardinal + diagonal) adjacency with a fixed, canonical enumeration
//     order, so every downstream tie-break is deterministic.
//   - DistanceField is a grid-shaped array of breadth-first distances with
//     an Unreachable sentinel for cells no wave ever reached.
//   - DistanceFrom runs multi-source BFS from an arbitrary seed set with an
//     optional traversability predicate; each cell is visited exactly once.
//
// Why:
//
//   - Brushfire clearance: seed from all obstacles, no barrier.
//   - Wavefront planning: seed from the goal, obstacles block the wave.
//   - Any other grid-topological distance a caller cares to define.
//
// Complexity:
//
//   - Neighbors:     O(d) per call        (d = 4 or 8).
//   - DistanceFrom:  O(W×H×d) time, O(W×H) memory — each cell is enqueued
//     and dequeued at most once, each edge relaxed at most once.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellState: a cell value is neither Free nor Obstacle.
//   - ErrConnectivity: connectivity is neither Conn4 nor Conn8.
//   - ErrOutOfBounds: a queried cell lies outside the grid.
//   - ErrNoSeeds: DistanceFrom was given an empty seed set.
package grid
