package volterra

import "errors"

// Sentinel errors for solver configuration and verification.
var (
	// ErrBadOptions indicates Options carries a nonsensical value.
	ErrBadOptions = errors.New("volterra: workers must be >= 0")
	// ErrShapeMismatch indicates the block recursion paired a solution
	// prefix with a kernel window of a different length. This is a defect
	// indicator, not a runtime condition.
	ErrShapeMismatch = errors.New("volterra: solution prefix and kernel window differ in length")
	// ErrLengthMismatch indicates Verify received vectors of different lengths.
	ErrLengthMismatch = errors.New("volterra: result vectors must have equal length")
	// ErrBadTolerance indicates Verify received a non-positive tolerance.
	ErrBadTolerance = errors.New("volterra: tolerance must be > 0")
)
