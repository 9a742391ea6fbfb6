package field

import (
	"fmt"
)

// Field is the immutable search configuration: the cost grid plus start,
// goals, and movement policy. Once built it holds no mutable state, so a
// single Field may back any number of concurrently running searches.
type Field struct {
	width, height int
	cells         [][]float64
	start         Point
	goals         map[Point]struct{}
	goalList      []Point
	cornerCutting bool
	diagonalCost  float64
	walkableFn    WalkableFunc
	heuristicFn   HeuristicFunc
}

// New constructs a Field from a non-empty, rectangular 2D cost slice,
// a start cell and a non-empty goal set. The grid is deep-copied to
// ensure immutability.
//
// Validation order:
//  1. ErrEmptyGrid      – grid has no rows or no columns.
//  2. ErrNonRectangular – rows differ in length.
//  3. ErrNoGoals        – empty goal set.
//  4. ErrOutOfBounds    – start or a goal outside the grid.
//  5. ErrUnwalkable     – start or a goal on an unwalkable cell
//     (after padding, when WithPadding is set).
//
// Complexity: O(W×H) time and memory.
func New(grid [][]float64, start Point, goals []Point, opts ...Option) (*Field, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WalkableFn == nil {
		cfg.WalkableFn = defaultWalkable
	}
	if cfg.HeuristicFn == nil {
		cfg.HeuristicFn = Octile(cfg.DiagonalCost)
	}

	// 2) Validate grid shape.
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	for y, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	// 3) Deep copy to prevent external mutation.
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], grid[y])
	}

	// 4) Apply border padding on the copy before any walkability check.
	if cfg.Padding {
		for y := 0; y < h; y++ {
			cells[y][0] = Obstacle
			cells[y][w-1] = Obstacle
		}
		for x := 0; x < w; x++ {
			cells[0][x] = Obstacle
			cells[h-1][x] = Obstacle
		}
	}

	f := &Field{
		width:         w,
		height:        h,
		cells:         cells,
		start:         start,
		goals:         make(map[Point]struct{}, len(goals)),
		goalList:      make([]Point, 0, len(goals)),
		cornerCutting: cfg.CornerCutting,
		diagonalCost:  cfg.DiagonalCost,
		walkableFn:    cfg.WalkableFn,
		heuristicFn:   cfg.HeuristicFn,
	}

	// 5) Validate start and every goal: in bounds, then walkable.
	if err := f.checkCell("start", start); err != nil {
		return nil, err
	}
	for _, g := range goals {
		if err := f.checkCell("goal", g); err != nil {
			return nil, err
		}
		if _, dup := f.goals[g]; dup {
			continue // ignore duplicate goals
		}
		f.goals[g] = struct{}{}
		f.goalList = append(f.goalList, g)
	}

	return f, nil
}

// checkCell verifies that p is inside the grid and walkable, wrapping the
// matching sentinel with the cell's role and coordinates.
func (f *Field) checkCell(role string, p Point) error {
	if !f.InBounds(p) {
		return fmt.Errorf("%w: %s (%d,%d)", ErrOutOfBounds, role, p.X, p.Y)
	}
	if !f.walkableFn(p, f.cells[p.Y][p.X]) {
		return fmt.Errorf("%w: %s (%d,%d)", ErrUnwalkable, role, p.X, p.Y)
	}

	return nil
}

// Width returns the number of columns. Complexity: O(1).
func (f *Field) Width() int { return f.width }

// Height returns the number of rows. Complexity: O(1).
func (f *Field) Height() int { return f.height }

// Start returns the configured start cell. Complexity: O(1).
func (f *Field) Start() Point { return f.start }

// Goals returns a copy of the goal set in construction order.
// Complexity: O(|goals|).
func (f *Field) Goals() []Point {
	gs := make([]Point, len(f.goalList))
	copy(gs, f.goalList)

	return gs
}

// IsGoal reports whether p belongs to the goal set. Complexity: O(1).
func (f *Field) IsGoal(p Point) bool {
	_, ok := f.goals[p]

	return ok
}

// CornerCutting reports whether diagonal corner cutting is permitted.
func (f *Field) CornerCutting() bool { return f.cornerCutting }

// DiagonalCost returns the configured cost of one diagonal step.
func (f *Field) DiagonalCost() float64 { return f.diagonalCost }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (f *Field) InBounds(p Point) bool {
	return p.X >= 0 && p.X < f.width && p.Y >= 0 && p.Y < f.height
}

// CostAt returns the stored cost value at p, or the Obstacle sentinel when
// p is out of bounds. Complexity: O(1).
func (f *Field) CostAt(p Point) float64 {
	if !f.InBounds(p) {
		return Obstacle
	}

	return f.cells[p.Y][p.X]
}

// WalkableAt reports whether p may be entered: in bounds and accepted by
// the walkability predicate. Complexity: O(1).
func (f *Field) WalkableAt(p Point) bool {
	if !f.InBounds(p) {
		return false
	}

	return f.walkableFn(p, f.cells[p.Y][p.X])
}

// Heuristic returns the minimum heuristic estimate from p to any goal.
// Zero when p is itself a goal. Complexity: O(|goals|).
func (f *Field) Heuristic(p Point) float64 {
	if f.IsGoal(p) {
		return 0
	}
	best := f.heuristicFn(p, f.goalList[0])
	for _, g := range f.goalList[1:] {
		if d := f.heuristicFn(p, g); d < best {
			best = d
		}
	}

	return best
}

// Distance returns the octile travel distance between a and b using the
// configured diagonal cost: min(dx,dy)·DiagonalCost + |dx−dy|.
// For two cells on a shared straight or diagonal line this is the exact
// cost of walking between them. Complexity: O(1).
func (f *Field) Distance(a, b Point) float64 {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	// dx = max, dy = min.
	return float64(dy)*f.diagonalCost + float64(dx-dy)
}

// Octile returns the octile distance function for the given diagonal step
// cost. It is the default heuristic and is admissible and consistent for
// 8-directional movement whenever diagCost matches the movement cost.
func Octile(diagCost float64) HeuristicFunc {
	return func(a, b Point) float64 {
		dx := abs(b.X - a.X)
		dy := abs(b.Y - a.Y)
		if dx < dy {
			dx, dy = dy, dx
		}

		return float64(dy)*diagCost + float64(dx-dy)
	}
}

// defaultWalkable is the sentinel interpretation: every cost except the
// Obstacle sentinel is walkable.
func defaultWalkable(_ Point, cost float64) bool {
	return cost != Obstacle
}

// abs returns |n| for ints.
func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
