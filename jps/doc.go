// Package jps implements jump-point search (JPS), a pruning variant of A*
// for uniform-cost 8-directional grids.
//
// What:
//
//   - JumpPointPath: the sparse path — only the cells where the route may
//     turn (forced-neighbor turning points) plus both endpoints.
//   - FullPath: the dense cell-by-cell route obtained by interpolating the
//     jump-point path.
//   - PathLength: the total octile length, with no path materialized.
//   - Reachable: every cell reachable from the start under the field's
//     movement rules.
//
// Why:
//
//   - On open grids plain A* expands huge numbers of symmetric,
//     interchangeable paths. JPS collapses each straight corridor into a
//     single jump and only promotes cells where an optimal path can
//     actually turn, preserving A*'s optimality guarantee under the
//     default (admissible, consistent) octile heuristic.
//
// Determinism:
//
//   - Equal-f open-set entries are ordered by lower h, then insertion
//     order; the start node expands its 8 directions in a fixed order.
//     Identical inputs therefore always return the identical path.
//
// Concurrency:
//
//   - Queries share only the immutable field.Field; all per-query state
//     (open set, closed set, node records) is private, so independent
//     queries may run concurrently. Each query runs to completion
//     synchronously: no suspension, cancellation or timeout.
//
// Limitations:
//
//   - A custom non-admissible or unbounded heuristic can drive a query
//     into arbitrarily long (though finite, on a finite grid) exploration
//     and forfeit optimality; this is not guarded against.
//   - Resuming a finished search with a new goal set is not supported;
//     every query searches from scratch.
//
// Errors:
//
//   - ErrNoPath: the open set was exhausted without reaching any goal.
//   - ErrNilField: query invoked with a nil field.
//   - ErrBadDirection: internal invariant violation (defensive).
//
// See package field for grid construction and configuration.
package jps
