package geom

import "github.com/pkg/errors"

// Geometric constructions fail with one of these. Orbit and preimage code treat
// them as a signal to stop the current branch, so they are compared with
// errors.Is after wrapping.
var (
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrPointNotOnBoundary = errors.New("point is not on boundary")
	ErrPointInsideTable   = errors.New("point is inside table")
	ErrPointOnBoundary    = errors.New("point is on boundary")
	ErrNonsenseVelocity   = errors.New("nonsense velocity")
)
