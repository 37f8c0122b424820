package engine

import "errors"

var (
	// ErrInsufficientData is returned by model-only estimation when the
	// user's history is below the model sample threshold. The tiered
	// Estimate call degrades instead of failing.
	ErrInsufficientData = errors.New("engine: insufficient history for model estimate")

	// ErrUnschedulable is returned when even a naive next-available-slot
	// search finds no room inside the look-ahead bound. It is surfaced,
	// never retried: the inputs are a snapshot, retrying is futile.
	ErrUnschedulable = errors.New("engine: no free slot within look-ahead bound")

	// ErrInvalidFeature is returned for malformed task features. Bad
	// input is rejected up front, never coerced.
	ErrInvalidFeature = errors.New("engine: invalid task features")
)
