// Package potential builds artificial potential fields over occupancy
// grids and extracts paths from them by discrete gradient descent.
//
// What:
//
//   - BuildAttractive: quadratic pull toward the goal,
//     U_att(q) = 0.5·ξ·d(q,goal)², under a Euclidean, Manhattan, or
//     Topological (obstacle-aware BFS) distance metric.
//   - BuildRepulsive: push away from obstacles from a brushfire clearance
//     field, U_rep(q) = 0.5·η·(1/D(q) − 1/Q)² for D(q) ≤ Q, else 0.
//   - Build: the superposition U_total = U_att + U_rep.
//   - Descend: greedy steepest descent from a start cell, moving to the
//     neighbor with the strictly smallest potential each step.
//
// Why:
//
//   - Potential fields are cheap and local: one pass to build, one greedy
//     walk to extract. The price is incompleteness — symmetric obstacles
//     can trap the descent in a local minimum short of the goal. That
//     outcome is reported as ErrLocalMinimumStall, never retried or hidden;
//     escaping a stall (or switching to the wavefront planner) is the
//     caller's policy.
//
// Complexity:
//
//   - BuildAttractive: O(W×H) (plus one O(W×H×d) BFS for Topological).
//   - BuildRepulsive, Build: O(W×H).
//   - Descend: O(I×d), I = iteration cap.
//
// Determinism:
//
//   - Strict float64 "less than" with no tolerance; equal-potential
//     neighbors are never an improvement, so symmetric plateaus stall
//     deterministically rather than picking an arbitrary direction.
//     Tie-breaks between distinct improving neighbors follow the canonical
//     enumeration order of grid.Neighbors (first encountered wins).
//
// Errors:
//
//   - ErrNilGrid / ErrNilClearance / ErrNilField: nil pointer inputs.
//   - ErrNonPositiveGain, ErrNonPositiveRadius, ErrUnknownMetric: invalid
//     configuration, rejected before any field is built.
//   - ErrFieldMismatch: field/clearance dimensions disagree with the grid.
//   - ErrInvalidGoal / ErrInvalidStart: endpoint out of bounds or occupied.
//   - ErrLocalMinimumStall: descent reached a non-goal cell with no
//     strictly improving neighbor — an expected planning outcome.
//   - ErrMaxIterations: the safety cap was hit (guards against oscillation
//     between equal-potential cells).
//   - ErrBadMaxIterations: a non-positive iteration cap was supplied.
package potential
