package grid

import "errors"

var (
	// ErrInvalidSize is returned when a grid has a non-positive dimension.
	ErrInvalidSize = errors.New("grid size must be positive")

	// ErrOutOfBounds is returned when a point lies outside the grid.
	ErrOutOfBounds = errors.New("point outside grid")

	// ErrBlocked is returned when the start or goal is a wall.
	ErrBlocked = errors.New("point is a wall")

	// ErrMissingPoint is returned when no start or goal is given.
	ErrMissingPoint = errors.New("start and goal are required")

	// ErrSameStartGoal is returned when the start and goal are the same cell.
	ErrSameStartGoal = errors.New("start and goal are the same cell")

	// ErrConflict is returned when a config mixes grid sources.
	ErrConflict = errors.New("conflicting grid fields")

	// ErrLayout is returned for malformed ASCII layouts.
	ErrLayout = errors.New("invalid layout")

	// ErrRelaxation is returned for an unknown relaxation rule name.
	ErrRelaxation = errors.New("unknown relaxation rule")
)
