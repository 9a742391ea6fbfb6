package jps

import "github.com/c2huc2hu/jps/field"

// Reachable returns every cell reachable from f's start cell under the
// field's movement rules (8 directions, diagonal steps gated by the
// corner-cutting policy), in deterministic breadth-first discovery order.
// The start cell is always first.
//
// Useful as a cheap pre-check before a batch of path queries: a goal
// absent from the result is guaranteed to produce ErrNoPath.
//
// Time: O(W×H×8), Memory: O(W×H).
func Reachable(f *field.Field) ([]field.Point, error) {
	if f == nil {
		return nil, ErrNilField
	}

	start := f.Start()
	seen := map[field.Point]bool{start: true}
	queue := []field.Point{start}

	// BFS over single-step moves; directions scanned in the same fixed
	// order the search uses, so discovery order is reproducible.
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range allDirections {
			v := field.Point{X: u.X + d.dx, Y: u.Y + d.dy}
			if seen[v] || !f.WalkableAt(v) {
				continue
			}
			if d.diagonal() && !diagonalStepAllowed(f, u, d) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue, nil
}
