package field

import "math"

// Sentinel cost values used when no custom walkability predicate is given.
const (
	// Obstacle marks a cell that cannot be entered.
	Obstacle = -1.0
)

// Walkable is the sentinel cost of a default-walkable cell: +Inf, so that
// any real cost value stays below it.
var Walkable = math.Inf(1)

// Point identifies a single grid cell by its coordinates.
// Point is comparable and may be used as a map key.
type Point struct {
	X, Y int
}

// WalkableFunc decides whether a cell may be entered, given its coordinates
// and its stored cost value. It must be deterministic and side-effect free.
type WalkableFunc func(p Point, cost float64) bool

// HeuristicFunc estimates the travel distance between two cells.
// For the search to stay optimal the estimate must never exceed the true
// distance (admissible). It must be deterministic and side-effect free.
type HeuristicFunc func(a, b Point) float64

// Options contains tunable parameters for Field construction.
//
//	– CornerCutting: permit a diagonal step when only one of its two
//	  orthogonal intermediate cells is walkable. Default: true.
//	– DiagonalCost:  cost of a single diagonal step, in [1, 2]. Default: √2.
//	– WalkableFn:    walkability predicate. Default: cost != Obstacle.
//	– HeuristicFn:   two-point distance estimate. Default: octile distance
//	  using DiagonalCost.
//	– Padding:       overwrite the outermost border ring with the Obstacle
//	  sentinel before any validation. Default: false.
type Options struct {
	CornerCutting bool
	DiagonalCost  float64
	WalkableFn    WalkableFunc
	HeuristicFn   HeuristicFunc
	Padding       bool
}

// Option represents a functional option for configuring a Field.
type Option func(*Options)

// WithCornerCutting enables or disables diagonal corner cutting.
// Enabled by default.
func WithCornerCutting(allow bool) Option {
	return func(o *Options) {
		o.CornerCutting = allow
	}
}

// WithDiagonalCost sets the cost of one diagonal step.
// Must be in [1, 2]; applying the option with a value outside that range
// panics with ErrBadDiagonalCost. Default (if not set) is math.Sqrt2.
func WithDiagonalCost(cost float64) Option {
	return func(o *Options) {
		if cost < 1 || cost > 2 {
			// Panic to signal invalid configuration early.
			panic(ErrBadDiagonalCost.Error())
		}
		o.DiagonalCost = cost
	}
}

// WithWalkableFunc installs a custom walkability predicate, replacing the
// sentinel interpretation entirely. Must be non-nil.
func WithWalkableFunc(fn WalkableFunc) Option {
	return func(o *Options) {
		if fn == nil {
			panic(ErrNilWalkableFunc.Error())
		}
		o.WalkableFn = fn
	}
}

// WithHeuristicFunc installs a custom two-point distance estimate.
// Must be non-nil. A non-admissible estimate forfeits optimality and may
// make a search run far longer than necessary.
func WithHeuristicFunc(fn HeuristicFunc) Option {
	return func(o *Options) {
		if fn == nil {
			panic(ErrNilHeuristicFunc.Error())
		}
		o.HeuristicFn = fn
	}
}

// WithPadding fills the outermost border ring of the grid copy with the
// Obstacle sentinel before validation, so searches can never walk off the
// original terrain edge.
func WithPadding() Option {
	return func(o *Options) {
		o.Padding = true
	}
}

// DefaultOptions returns an Options struct initialized with default settings:
// CornerCutting=true, DiagonalCost=√2, sentinel walkability, octile
// heuristic, no padding.
func DefaultOptions() Options {
	return Options{
		CornerCutting: true,
		DiagonalCost:  math.Sqrt2,
		WalkableFn:    nil, // resolved to the sentinel predicate in New
		HeuristicFn:   nil, // resolved to octile distance in New
		Padding:       false,
	}
}
