// Package field models a rectangular, uniform-cost grid plus the fixed
// inputs of a jump-point search.
//
// What:
//
//   - Field wraps a rectangular [][]float64 cost grid with a start cell,
//     a goal set, a walkability predicate, a heuristic, and the
//     corner-cutting policy.
//   - Two sentinel cost values cover the common case with no custom
//     predicate: Walkable (+Inf) and Obstacle (-1).
//   - All configuration is validated at construction; searches never see
//     an out-of-bounds or unwalkable start or goal.
//
// Why:
//
//   - Game maps: unit movement over tile worlds with impassable terrain.
//   - Robotics/simulation: occupancy-grid route queries.
//   - Any A*-family search needs its grid, goals and policy bundled and
//     immutable so queries can share them safely.
//
// Concurrency:
//
//   - A Field is immutable after New and safe for concurrent read-only
//     use by any number of simultaneous searches.
//
// Options:
//
//   - WithCornerCutting(bool): permit diagonal steps past a single blocked
//     intermediate cell (default true).
//   - WithDiagonalCost(c): diagonal step cost in [1,2] (default √2).
//   - WithWalkableFunc(fn): replace the sentinel interpretation.
//   - WithHeuristicFunc(fn): replace the octile default.
//   - WithPadding(): turn the border ring into obstacles.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input grid.
//   - ErrNoGoals: empty goal set.
//   - ErrOutOfBounds, ErrUnwalkable: invalid start or goal placement.
//
// See package jps for the search itself.
package field
