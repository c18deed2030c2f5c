package domain

import "errors"

var (
	// ErrInvalidCutoff is returned when a cutoff falls outside [0, 100].
	ErrInvalidCutoff = errors.New("cutoff must be between 0 and 100")
	// ErrUnknownAlgorithm is returned for an algorithm name that cannot be resolved.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrCancelled is returned when the caller's context is done before scoring starts.
	ErrCancelled = errors.New("computation cancelled")
)
