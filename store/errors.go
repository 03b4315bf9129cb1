package store

import "errors"

var (
	ErrNotFound     = errors.New("track analysis not found")
	ErrEmptyTrackID = errors.New("empty track ID")
)
