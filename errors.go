package easel

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrSingularTransform is returned when a view matrix cannot be
	// inverted. Callers should drop the input sample that triggered the
	// conversion rather than treat this as fatal.
	ErrSingularTransform = errors.New("easel: transform matrix is singular")

	// ErrStaleLoad is returned by CompleteLoad when another load was
	// started after the one that produced the result.
	ErrStaleLoad = errors.New("easel: load superseded by a newer load")

	// ErrNoRenderer is returned by Draw when no renderer is attached.
	ErrNoRenderer = errors.New("easel: no renderer")
)
