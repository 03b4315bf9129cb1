package graph

import "errors"

var (
	// ErrDestroyed reports an operation on a controller after Destroy.
	// This is a caller contract violation, not a recoverable condition.
	ErrDestroyed = errors.New("audio graph destroyed")

	// ErrNoSource reports a connect call with a nil source.
	ErrNoSource = errors.New("nil audio source")
)
