// Package field_test contains unit tests for Field construction and
// accessors: validation order, sentinel interpretation, custom predicates,
// padding, immutability, and the octile distance helpers.
package field_test

import (
	"errors"
	"math"
	"testing"

	"github.com/c2huc2hu/jps/field"
)

// openGrid returns a w×h grid filled with the default-walkable sentinel.
func openGrid(w, h int) [][]float64 {
	grid := make([][]float64, h)
	for y := 0; y < h; y++ {
		row := make([]float64, w)
		for x := 0; x < w; x++ {
			row[x] = field.Walkable
		}
		grid[y] = row
	}

	return grid
}

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestNew_Errors verifies every construction failure mode and that each
// wraps its sentinel (checked via errors.Is).
func TestNew_Errors(t *testing.T) {
	withObstacle := openGrid(3, 3)
	withObstacle[1][1] = field.Obstacle

	cases := []struct {
		name  string
		grid  [][]float64
		start field.Point
		goals []field.Point
		err   error
	}{
		{"EmptyRows", [][]float64{}, field.Point{}, []field.Point{{X: 0, Y: 0}}, field.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, field.Point{}, []field.Point{{X: 0, Y: 0}}, field.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{0, 0}, {0}}, field.Point{}, []field.Point{{X: 0, Y: 0}}, field.ErrNonRectangular},
		{"NoGoals", openGrid(3, 3), field.Point{}, nil, field.ErrNoGoals},
		{"StartOutOfBounds", openGrid(3, 3), field.Point{X: -1, Y: 0}, []field.Point{{X: 2, Y: 2}}, field.ErrOutOfBounds},
		{"GoalOutOfBounds", openGrid(3, 3), field.Point{}, []field.Point{{X: 3, Y: 0}}, field.ErrOutOfBounds},
		{"StartUnwalkable", withObstacle, field.Point{X: 1, Y: 1}, []field.Point{{X: 2, Y: 2}}, field.ErrUnwalkable},
		{"GoalUnwalkable", withObstacle, field.Point{}, []field.Point{{X: 1, Y: 1}}, field.ErrUnwalkable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.New(tc.grid, tc.start, tc.goals)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(...) error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_DeduplicatesGoals checks that a repeated goal is stored once.
func TestNew_DeduplicatesGoals(t *testing.T) {
	f, err := field.New(openGrid(3, 3), field.Point{}, []field.Point{{X: 2, Y: 2}, {X: 2, Y: 2}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := len(f.Goals()); got != 1 {
		t.Errorf("len(Goals()) = %d; want 1", got)
	}
}

// TestOptionPanics verifies invalid option arguments panic when the
// option is applied.
func TestOptionPanics(t *testing.T) {
	cases := []struct {
		name string
		opt  field.Option
	}{
		{"DiagonalCostTooLow", field.WithDiagonalCost(0.5)},
		{"DiagonalCostTooHigh", field.WithDiagonalCost(2.5)},
		{"NilWalkableFunc", field.WithWalkableFunc(nil)},
		{"NilHeuristicFunc", field.WithHeuristicFunc(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic, got none")
				}
			}()
			o := field.DefaultOptions()
			tc.opt(&o)
		})
	}
}

//----------------------------------------------------------------------------//
// Accessors and sentinel interpretation
//----------------------------------------------------------------------------//

// TestAccessors checks dimensions, bounds, cost lookup and goal membership.
func TestAccessors(t *testing.T) {
	grid := openGrid(4, 3)
	grid[1][2] = field.Obstacle
	grid[0][3] = 7 // a plain finite cost is walkable by default

	f, err := field.New(grid, field.Point{}, []field.Point{{X: 3, Y: 2}, {X: 0, Y: 2}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if f.Width() != 4 || f.Height() != 3 {
		t.Errorf("dimensions = %d×%d; want 4×3", f.Width(), f.Height())
	}
	if !f.InBounds(field.Point{X: 3, Y: 2}) || f.InBounds(field.Point{X: 4, Y: 0}) {
		t.Error("InBounds misclassified a corner or out-of-range cell")
	}
	if got := f.CostAt(field.Point{X: 3, Y: 0}); got != 7 {
		t.Errorf("CostAt(3,0) = %v; want 7", got)
	}
	if got := f.CostAt(field.Point{X: -1, Y: 0}); got != field.Obstacle {
		t.Errorf("CostAt out of bounds = %v; want Obstacle", got)
	}
	if f.WalkableAt(field.Point{X: 2, Y: 1}) {
		t.Error("WalkableAt(2,1) = true on an obstacle")
	}
	if !f.WalkableAt(field.Point{X: 3, Y: 0}) {
		t.Error("WalkableAt(3,0) = false on a finite-cost cell")
	}
	if !f.IsGoal(field.Point{X: 0, Y: 2}) || f.IsGoal(field.Point{X: 1, Y: 1}) {
		t.Error("IsGoal misclassified membership")
	}

	// Goals returns a defensive copy.
	gs := f.Goals()
	gs[0] = field.Point{X: 9, Y: 9}
	if !f.IsGoal(field.Point{X: 3, Y: 2}) {
		t.Error("mutating Goals() result leaked into the Field")
	}
}

// TestCustomWalkableFunc overrides sentinel interpretation entirely:
// walkable means cost < 5, so even the Obstacle sentinel (-1) is passable.
func TestCustomWalkableFunc(t *testing.T) {
	grid := [][]float64{
		{0, 9, 0},
		{0, -1, 0},
	}
	f, err := field.New(grid, field.Point{}, []field.Point{{X: 2, Y: 1}},
		field.WithWalkableFunc(func(_ field.Point, cost float64) bool { return cost < 5 }))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if f.WalkableAt(field.Point{X: 1, Y: 0}) {
		t.Error("cost 9 should be unwalkable under cost<5")
	}
	if !f.WalkableAt(field.Point{X: 1, Y: 1}) {
		t.Error("cost -1 should be walkable under cost<5")
	}
}

// TestPadding turns the border ring into obstacles before validation.
func TestPadding(t *testing.T) {
	f, err := field.New(openGrid(4, 4), field.Point{X: 1, Y: 1}, []field.Point{{X: 2, Y: 2}},
		field.WithPadding())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for x := 0; x < 4; x++ {
		if f.WalkableAt(field.Point{X: x, Y: 0}) || f.WalkableAt(field.Point{X: x, Y: 3}) {
			t.Fatalf("padded border cell (%d,·) still walkable", x)
		}
	}

	// A start on the padded border must fail walkability validation.
	_, err = field.New(openGrid(4, 4), field.Point{}, []field.Point{{X: 2, Y: 2}}, field.WithPadding())
	if !errors.Is(err, field.ErrUnwalkable) {
		t.Errorf("padded border start error = %v; want ErrUnwalkable", err)
	}
}

// TestImmutability verifies the input grid is deep-copied.
func TestImmutability(t *testing.T) {
	grid := openGrid(3, 3)
	f, err := field.New(grid, field.Point{}, []field.Point{{X: 2, Y: 2}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	grid[1][1] = field.Obstacle
	if !f.WalkableAt(field.Point{X: 1, Y: 1}) {
		t.Error("mutating the input grid after New leaked into the Field")
	}
}

//----------------------------------------------------------------------------//
// Distance and heuristic
//----------------------------------------------------------------------------//

// TestOctileDistance checks the octile metric against hand-computed values.
func TestOctileDistance(t *testing.T) {
	oct := field.Octile(math.Sqrt2)
	cases := []struct {
		a, b field.Point
		want float64
	}{
		{field.Point{}, field.Point{}, 0},
		{field.Point{}, field.Point{X: 3, Y: 0}, 3},
		{field.Point{}, field.Point{X: 0, Y: 4}, 4},
		{field.Point{}, field.Point{X: 2, Y: 2}, 2 * math.Sqrt2},
		{field.Point{}, field.Point{X: 3, Y: 1}, math.Sqrt2 + 2},
		{field.Point{X: 4, Y: 4}, field.Point{X: 1, Y: 0}, 3*math.Sqrt2 + 1},
	}
	for _, tc := range cases {
		if got := oct(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Octile(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestFieldDistance_CustomDiagonalCost checks Distance with DiagonalCost=1.5.
func TestFieldDistance_CustomDiagonalCost(t *testing.T) {
	f, err := field.New(openGrid(5, 5), field.Point{}, []field.Point{{X: 4, Y: 4}},
		field.WithDiagonalCost(1.5))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := f.Distance(field.Point{}, field.Point{X: 3, Y: 2}), 2*1.5+1; math.Abs(got-want) > 1e-12 {
		t.Errorf("Distance = %v; want %v", got, want)
	}
}

// TestHeuristic_MultiGoal takes the minimum estimate over the goal set and
// returns zero on a goal cell.
func TestHeuristic_MultiGoal(t *testing.T) {
	f, err := field.New(openGrid(6, 6), field.Point{}, []field.Point{{X: 5, Y: 5}, {X: 2, Y: 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// min(octile to (5,5)=5√2, octile to (2,0)=2) = 2.
	if got := f.Heuristic(field.Point{}); math.Abs(got-2) > 1e-12 {
		t.Errorf("Heuristic(start) = %v; want 2", got)
	}
	if got := f.Heuristic(field.Point{X: 5, Y: 5}); got != 0 {
		t.Errorf("Heuristic(goal) = %v; want 0", got)
	}
}
