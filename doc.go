// Package gridnav computes collision-free paths across discretized 2D
// occupancy grids using two navigation-function strategies: a local,
// physically-inspired potential field and a global breadth-first wavefront
// distance transform.
//
// 🚀 What is gridnav?
//
//	A small, focused library of grid planning primitives:
//		• Grid core: occupancy grids, 4-/8-connectivity, deterministic neighbor order
//		• Brushfire: multi-source BFS distance-to-nearest-obstacle transform
//		• Potential fields: quadratic attraction + obstacle repulsion, gradient descent
//		• Wavefront: goal-rooted BFS distance field with guaranteed monotone descent
//
// ✨ Why choose gridnav?
//
//   - Deterministic – fixed neighbor enumeration order, bit-identical rebuilds
//   - Honest failures – stalls and unreachable goals are error values, not panics
//   - Pure Go – no cgo, no hidden deps
//   - Read-only after build – grids and fields are safe for concurrent readers
//
// Everything is organized under four subpackages:
//
//	grid/      — occupancy grid, cells, connectivity, distance fields & shared BFS
//	brushfire/ — obstacle clearance transform (feeds the repulsive potential)
//	potential/ — attractive/repulsive field builder + gradient descent extractor
//	wavefront/ — goal-rooted distance field + greedy descent extractor
//
// Quick ASCII example:
//
//	    S . . .        S is the start, G the goal, # an obstacle.
//	    . # # .        The wavefront planner always finds the way around;
//	    . . # G        the potential field may stall in the notch.
//
// Dive into each subpackage's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/gridnav
package gridnav
