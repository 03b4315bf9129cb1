package crossmix

import "errors"

var (
	// ErrUnknownFormat is returned when no decoder is registered for a
	// requested format key.
	ErrUnknownFormat = errors.New("unknown audio format")
)
