package targetcost

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional
// information necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned. All of them indicate invalid input;
// violated preconditions panic instead of returning.
var (
	ErrNoLabels      = Error{"label sequence is empty"}
	ErrNegativeLabel = Error{"labels must not be negative"}
	ErrBadBalance    = Error{"balance factor is outside [0, 1]"}
)

// SizeMismatchError documents errors resulting from a slice whose length does not match
// what a Matrix expects of it.
type SizeMismatchError struct {
	Expected, Got int

	// The quantity that was the wrong size, e.g. "error vector"
	Desc string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("%s has wrong size: expected %d, got %d", err.Desc, err.Expected, err.Got)
}
