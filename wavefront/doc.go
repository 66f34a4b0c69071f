// Package wavefront implements goal-rooted wavefront planning over an
// occupancy grid: a breadth-first distance-to-goal field plus a greedy
// monotone descent extractor.
//
// What:
//
//   - Compute labels every free cell reachable from the goal with its BFS
//     layer index (goal = 0); obstacles are propagation barriers and keep
//     the grid.Unreachable sentinel, as do free cells cut off by them.
//   - Descend walks the field from a start cell, stepping to any neighbor
//     whose depth is exactly one less, until it reaches depth 0.
//
// Why:
//
//   - Completeness: if a path exists under the chosen connectivity, the
//     start receives a finite depth and descent cannot fail — the defining
//     advantage over potential-field planning, which may stall in local
//     minima on the very same map.
//   - The returned depth doubles as the shortest path length in grid steps.
//
// Complexity:
//
//   - Compute: O(W×H×d) time, O(W×H) memory  (d = 4 or 8).
//   - Descend: O(D×d) time where D = depth of the start cell; termination
//     is guaranteed by the strictly decreasing depth sequence, no
//     iteration cap needed.
//
// Errors:
//
//   - ErrNilGrid / ErrNilField: nil pointer inputs.
//   - ErrFieldMismatch: field and grid dimensions disagree.
//   - ErrInvalidGoal: goal out of bounds, on an obstacle, or (for Descend)
//     not the zero cell of the supplied field.
//   - ErrInvalidStart: start out of bounds or on an obstacle.
//   - ErrUnreachable: start and goal lie in disconnected free-space
//     components — an expected planning outcome, not a defect.
//   - ErrCorruptField: monotone-descent invariant violated; cannot occur
//     on a field produced by Compute.
package wavefront
