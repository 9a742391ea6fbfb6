package jps

import "errors"

// Sentinel errors returned by the search queries.
var (
	// ErrNoPath indicates the open set was exhausted without reaching any
	// goal. Queries never return an empty or partial path instead.
	ErrNoPath = errors.New("jps: no path to any goal")

	// ErrNilField indicates a nil *field.Field was passed to a query.
	ErrNilField = errors.New("jps: field is nil")

	// ErrBadDirection indicates the search asked the jump primitive to
	// advance along the zero direction.
	ErrBadDirection = errors.New("jps: jump direction must be non-zero")
)

// direction is one of the 8 unit movement directions. Components are
// always in {-1, 0, 1} and never both zero.
type direction struct {
	dx, dy int
}

// diagonal reports whether d moves along both axes.
func (d direction) diagonal() bool {
	return d.dx != 0 && d.dy != 0
}

// allDirections lists the 8 directions in the fixed expansion order used
// for the start node: cardinals first, then diagonals. The order is part
// of the documented deterministic tie-breaking.
var allDirections = []direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}
