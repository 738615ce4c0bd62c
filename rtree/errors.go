package rtree

import "errors"

var (
	// ErrNoBounds signals that a bounding box was requested for an empty set
	// of points.
	ErrNoBounds = errors.New("rtree: no bounds")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rtree: invalid configuration")
	// ErrInvariant signals a tree whose structure violates its invariants.
	ErrInvariant = errors.New("rtree: invariant violated")
)

// Stop is a special sentinel error that can be used to stop a search operation
// without any error.
var Stop = errors.New("stop")
