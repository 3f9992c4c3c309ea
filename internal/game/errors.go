package game

import "errors"

var (
	// ErrInvalidConfig is returned by New and Reset for bad dimensions or mine counts.
	ErrInvalidConfig = errors.New("invalid board config")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrCellHidden is returned when asking for the value of a cell that is not uncovered.
	ErrCellHidden = errors.New("cell not uncovered")
)
