package domain

import "errors"

var (
	// ErrSnapshotUnavailable is returned when the protocol or building collections cannot be read
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")

	// ErrInvalidYear is returned when a report year cannot be parsed
	ErrInvalidYear = errors.New("invalid report year")
)
