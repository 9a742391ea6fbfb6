package jps

import "github.com/c2huc2hu/jps/field"

// JumpPointPath runs a search over f and returns the sparse ordered
// sequence of jump points from the start cell to the reached goal,
// including both endpoints. Consecutive jump points always share a
// straight or diagonal line, so drawing straight segments between them
// yields the full route.
//
// Returns [start] alone when the start cell is itself a goal, and
// ErrNoPath when no goal is reachable.
//
// Complexity: search-dominated; reconstruction is O(path length).
func JumpPointPath(f *field.Field) ([]field.Point, error) {
	if f == nil {
		return nil, ErrNilField
	}
	r := newRunner(f)
	goal, err := r.run()
	if err != nil {
		return nil, err
	}

	// Walk parent links goal→start, then reverse in place.
	var path []field.Point
	for item := goal; ; item = r.nodes[item.parent] {
		path = append(path, item.pos)
		if !item.hasParent {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// FullPath runs a search over f and returns the dense cell-by-cell route:
// every grid cell along each straight segment between consecutive jump
// points, including both endpoints. Every consecutive pair of cells in
// the result is 4- or 8-adjacent.
//
// Returns ErrNoPath when no goal is reachable.
func FullPath(f *field.Field) ([]field.Point, error) {
	jumps, err := JumpPointPath(f)
	if err != nil {
		return nil, err
	}

	return Interpolate(jumps), nil
}

// Interpolate expands a jump-point path into the dense cell-adjacent path
// by signum-stepping along each segment. It assumes consecutive points
// share a straight or diagonal line, which JumpPointPath guarantees.
// An empty input yields an empty output.
func Interpolate(jumps []field.Point) []field.Point {
	if len(jumps) == 0 {
		return nil
	}
	full := []field.Point{jumps[0]}
	cur := jumps[0]
	for _, next := range jumps[1:] {
		for cur != next {
			cur.X += signum(next.X - cur.X)
			cur.Y += signum(next.Y - cur.Y)
			full = append(full, cur)
		}
	}

	return full
}

// PathLength runs a search over f and returns the total octile length of
// the optimal route: the sum of segment lengths between consecutive jump
// points, equal to the reached goal's final g-cost.
//
// Returns 0 when the start cell is itself a goal, and ErrNoPath when no
// goal is reachable.
func PathLength(f *field.Field) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	r := newRunner(f)
	goal, err := r.run()
	if err != nil {
		return 0, err
	}

	return goal.g, nil
}

// signum returns the sign of n as -1, 0 or 1.
func signum(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
