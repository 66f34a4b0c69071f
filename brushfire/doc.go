// Package brushfire computes the obstacle distance transform of an
// occupancy grid: for every free cell, the discrete number of neighbor
// steps to the nearest obstacle. Obstacle cells hold distance 0.
//
// What:
//
//   - Compute seeds a multi-source breadth-first expansion simultaneously
//     from all obstacle cells and propagates outward through the whole
//     grid, assigning d+1 to each unvisited neighbor of a cell at d.
//   - The result is a *grid.DistanceField of true grid-topological
//     clearances (not Euclidean), under the grid's Conn4/Conn8 adjacency.
//
// Why:
//
//   - Clearance is the raw material of the repulsive potential: cells near
//     obstacles must be penalized, cells far away left alone.
//   - Medial-axis style analyses: ridges of the transform trace the
//     maximally-clear corridors of a map.
//
// Complexity:
//
//   - Compute: O(W×H×d) time, O(W×H) memory (d = 4 or 8). Each cell is
//     enqueued and dequeued exactly once.
//
// Edge cases:
//
//   - An obstacle-free grid is valid, not an error: every cell keeps the
//     grid.Unreachable sentinel, read by consumers as maximal clearance.
//
// Errors:
//
//   - ErrNilGrid: a nil grid pointer was passed.
package brushfire
