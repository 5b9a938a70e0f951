package collision

import "errors"

var (
	// Construction errors
	ErrInvalidRadius    = errors.New("radius must be finite and non-negative")
	ErrInvalidExtent    = errors.New("extent must be finite and non-negative")
	ErrInvalidPosition  = errors.New("position must be finite")
	ErrZeroDirection    = errors.New("direction must be non-zero")
	ErrDegenerateLine   = errors.New("line endpoints coincide")
	ErrDegenerateSlope  = errors.New("slope run and rise must be non-zero")
	ErrInvalidPolygon   = errors.New("polygon must be convex with 3 to 12 distinct vertices")
	ErrUnsupportedInner = errors.New("rounded shape requires a polygonal inner shape")
	ErrZeroMotion       = errors.New("sweep motion must be non-zero")

	// Combination errors
	ErrUnsupportedCombination = errors.New("shape combination is not supported")

	// Invariant violations, raised through panics
	ErrZeroVector            = errors.New("cannot normalize a zero-length vector")
	ErrUnnormalizedDirection = errors.New("ray direction must be unit length")
)
