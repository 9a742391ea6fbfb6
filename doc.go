// Package jps is an in-memory jump-point search library: optimal paths on
// uniform-cost 8-directional grids, without plain A*'s symmetric blowup.
//
// 🚀 What is c2huc2hu/jps?
//
//	A small, deterministic pathfinding library built from two packages:
//		• field/ — the immutable search configuration: cost grid, start,
//		  goal set, walkability predicate, heuristic, corner-cutting policy
//		• jps/   — the search itself: jump-point pruning over A*, with
//		  sparse, dense and length-only path queries plus reachability
//
// ✨ Why choose it?
//
//   - Optimal – identical costs to plain A* under the octile heuristic,
//     at a fraction of the expansions
//   - Deterministic – documented tie-breaking; identical inputs always
//     return the identical path
//   - Concurrent-friendly – one Field, any number of simultaneous queries
//   - Pure Go – no cgo
//
// Quick ASCII example (s = start, g = goal, # = obstacle):
//
//	s . . . .
//	. . . . .
//	. . # . .
//	. . . . .
//	. . . . g
//
//	the route slides diagonally around the obstacle; only the cells where
//	it turns become search nodes.
//
// Dive into the field and jps package docs for options, errors and the
// full query surface.
//
//	go get github.com/c2huc2hu/jps
package jps
