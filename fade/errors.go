package fade

import "errors"

var (
	// ErrUnknownCurve reports an unrecognized curve name.
	ErrUnknownCurve = errors.New("unknown crossfade curve")

	// ErrNoGraph reports a scheduler built without a mixing graph.
	ErrNoGraph = errors.New("scheduler requires an audio graph")
)
