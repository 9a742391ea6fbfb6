package jps

import "github.com/c2huc2hu/jps/field"

// jump advances from `from` along the unit direction d until it finds a
// jump point or a dead end. It is a pure function of the field, position
// and direction: no search state is read or written.
//
// A cell becomes a jump point when it is a goal, when it has a forced
// neighbor, or — for diagonal travel — when a straight probe along either
// component direction finds a jump point of its own (the diagonal cell is
// then the unique gateway to that branch).
//
// The boolean result reports whether a jump point was found.
func jump(f *field.Field, from field.Point, d direction) (field.Point, bool) {
	diag := d.diagonal()
	cur := from
	for {
		next := field.Point{X: cur.X + d.dx, Y: cur.Y + d.dy}
		if !f.WalkableAt(next) {
			return field.Point{}, false // dead end
		}
		// The legality gate applies to every diagonal advance, not only
		// the first step away from `from`.
		if diag && !diagonalStepAllowed(f, cur, d) {
			return field.Point{}, false
		}
		if f.IsGoal(next) {
			return next, true
		}
		if hasForcedNeighbor(f, next, d) {
			return next, true
		}
		if diag {
			// Probe both straight components; a hit promotes `next`.
			if _, ok := jump(f, next, direction{d.dx, 0}); ok {
				return next, true
			}
			if _, ok := jump(f, next, direction{0, d.dy}); ok {
				return next, true
			}
		}
		cur = next
	}
}

// diagonalStepAllowed applies the corner-cutting gate to the diagonal step
// from cur to (cur.X+d.dx, cur.Y+d.dy). The destination's walkability is
// checked by the caller; this gate only inspects the two orthogonal
// intermediate cells:
//
//	corner cutting enabled  → at least one intermediate must be walkable;
//	corner cutting disabled → both intermediates must be walkable.
func diagonalStepAllowed(f *field.Field, cur field.Point, d direction) bool {
	horiz := f.WalkableAt(field.Point{X: cur.X + d.dx, Y: cur.Y})
	vert := f.WalkableAt(field.Point{X: cur.X, Y: cur.Y + d.dy})
	if f.CornerCutting() {
		return horiz || vert
	}

	return horiz && vert
}

// hasForcedNeighbor reports whether cell n, entered along d, has a forced
// neighbor: a cell whose only collision-free approach runs through n, so
// the path may need to turn at n.
//
// For diagonal travel the check is the classic one and is independent of
// the corner-cutting policy (with cutting disabled the triggering obstacle
// would already have blocked the step into n). For straight travel the
// check depends on the policy: with cutting enabled a turn happens beside
// the obstacle; with cutting disabled it happens one cell later, after the
// obstacle has been fully passed.
func hasForcedNeighbor(f *field.Field, n field.Point, d direction) bool {
	if d.diagonal() {
		// Obstacle on one back side, open cell diagonally past it.
		if !f.WalkableAt(field.Point{X: n.X - d.dx, Y: n.Y}) &&
			f.WalkableAt(field.Point{X: n.X - d.dx, Y: n.Y + d.dy}) {
			return true
		}

		return !f.WalkableAt(field.Point{X: n.X, Y: n.Y - d.dy}) &&
			f.WalkableAt(field.Point{X: n.X + d.dx, Y: n.Y - d.dy})
	}
	if d.dx != 0 {
		return forcedStraight(f, n, d.dx, 0, 0, 1) || forcedStraight(f, n, d.dx, 0, 0, -1)
	}

	return forcedStraight(f, n, 0, d.dy, 1, 0) || forcedStraight(f, n, 0, d.dy, -1, 0)
}

// forcedStraight checks one perpendicular side (px,py) of cell n during
// straight travel along (dx,dy).
//
// Corner cutting enabled: obstacle beside n with the far-side in-line cell
// open — the diagonal turn past the obstacle starts at n.
//
// Corner cutting disabled: obstacle diagonally behind n with the side cell
// itself open — n is the first cell from which an orthogonal turn around
// that obstacle is possible.
func forcedStraight(f *field.Field, n field.Point, dx, dy, px, py int) bool {
	side := field.Point{X: n.X + px, Y: n.Y + py}
	if f.CornerCutting() {
		return !f.WalkableAt(side) &&
			f.WalkableAt(field.Point{X: side.X + dx, Y: side.Y + dy})
	}

	return !f.WalkableAt(field.Point{X: side.X - dx, Y: side.Y - dy}) &&
		f.WalkableAt(side)
}
