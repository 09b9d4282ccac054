package jump

import "errors"

var (
	// ErrLengthMismatch is returned when a session is built from line and
	// line number slices of different lengths.
	ErrLengthMismatch = errors.New("lines and line numbers differ in length")

	// ErrNoMatches is returned by operations that need at least one
	// filtered line.
	ErrNoMatches = errors.New("no filtered lines")
)
