package field

import "errors"

// Sentinel errors returned by Field construction and configuration.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("field: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrNoGoals indicates an empty goal set was supplied.
	ErrNoGoals = errors.New("field: goal set must contain at least one cell")
	// ErrOutOfBounds indicates the start or a goal lies outside the grid.
	ErrOutOfBounds = errors.New("field: cell lies outside grid bounds")
	// ErrUnwalkable indicates the start or a goal sits on an unwalkable cell.
	ErrUnwalkable = errors.New("field: cell is not walkable")
	// ErrBadDiagonalCost indicates a diagonal cost outside [1, 2].
	ErrBadDiagonalCost = errors.New("field: diagonal cost must be in [1, 2]")
	// ErrNilWalkableFunc indicates a nil walkability predicate was supplied.
	ErrNilWalkableFunc = errors.New("field: walkable function must be non-nil")
	// ErrNilHeuristicFunc indicates a nil heuristic function was supplied.
	ErrNilHeuristicFunc = errors.New("field: heuristic function must be non-nil")
)
