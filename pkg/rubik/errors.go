package rubik

import "errors"

// Sentinel errors for the rubik package.
var (
	ErrInvalidPosition = errors.New("rubik: invalid cube position")
	ErrInvalidLayer    = errors.New("rubik: invalid layer")
	ErrInvalidNotation = errors.New("rubik: invalid move notation")
)
