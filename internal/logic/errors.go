package logic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inference path. Handlers map these to HTTP status
// codes; nothing in this package retries.
var (
	// ErrModelUnavailable means the classifier could not be obtained (e.g.
	// its weights file is missing). Fatal for the request, not the process.
	ErrModelUnavailable = errors.New("prediction model unavailable")

	// ErrModelTimeout means at least one of the concurrent classifier calls
	// exceeded its deadline.
	ErrModelTimeout = errors.New("prediction timeout exceeded")

	// ErrPlayerNotFound means the requested player is not on the roster.
	ErrPlayerNotFound = errors.New("player not found")
)

// ModelError wraps any other inference failure with its cause.
type ModelError struct {
	Cause error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Cause)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}
