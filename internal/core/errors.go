package core

import "errors"

// Recoverable error kinds. Callers wrap them with context and test with errors.Is.
var (
	// ErrOutOfBounds reports a cell coordinate or pattern placement outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrUnknownPattern reports a catalog lookup miss.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrInvalidSelection reports a pattern index outside the catalog or unparseable input.
	ErrInvalidSelection = errors.New("invalid selection")
)
