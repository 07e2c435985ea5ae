package pathfinder

import "errors"

var (
	// ErrInvalidInput is returned when a search is called with a nil graph or mover,
	// a node the graph does not contain, or an unusable cost bound.
	ErrInvalidInput = errors.New("invalid search input")

	// ErrNoPath is returned when the open set empties before the target is reached.
	ErrNoPath = errors.New("no path found")

	// ErrPathTooShort is returned when evaluating the cost of a path with fewer than two nodes.
	ErrPathTooShort = errors.New("path too short")
)
