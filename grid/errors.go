package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrNonPositiveHorizon indicates the time horizon T is zero or negative.
	ErrNonPositiveHorizon = errors.New("grid: horizon must be > 0")
	// ErrNonPositiveSteps indicates the step count N is zero or negative.
	ErrNonPositiveSteps = errors.New("grid: step count must be >= 1")
	// ErrPointIndex indicates a requested grid-point index is out of range.
	ErrPointIndex = errors.New("grid: point index out of range")
)
