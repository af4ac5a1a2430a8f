// Billiard tables for the Euclidean plane, the sphere and the hyperbolic
// plane.
//
// Every table boundary is parametrized by a time in [0, 1) proportional to
// arc length (the superellipse uses its polar angle instead), running
// counterclockwise with the table on the left.
package table

import (
	"math"

	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
)

var ErrInvalidTable = errors.New("invalid table")

// A convex table in the Euclidean plane.
type Affine interface {
	Point(time float64) geom.Point
	Time(p geom.Point) (float64, error)
	// Heading of the boundary at time. The second result is false at corners,
	// where the heading is undefined.
	TangentHeading(time float64) (float64, bool)
	// Tangent point T seen from p with the table on the left of the ray p->T.
	RightTangentPoint(p geom.Point) (geom.Point, error)
	// Tangent point T seen from p with the table on the right of the ray p->T.
	LeftTangentPoint(p geom.Point) (geom.Point, error)
	// Common tangent running from the table to c, with both on its left.
	LeftTangentLine(c geom.Circle) (geom.AffineRay, error)
	// Common tangent running from c to the table, with both on its left.
	RightTangentLine(c geom.Circle) (geom.AffineRay, error)
	ContainsPoint(p geom.Point) bool
	PointOnBoundary(p geom.Point) bool
	// Time of the next boundary point hit by leaving Point(time) with the given
	// heading.
	CastRay(time, heading float64) (float64, error)
	Corners() []Corner
	Shape(n int) []geom.Point
}

// A point where the boundary heading jumps. In is the heading arriving at the
// corner and Out the heading leaving it.
type Corner struct {
	Point geom.Point
	Time  float64
	In    float64
	Out   float64
}

// Angles of the vertices of a regular n-gon with a horizontal bottom edge.
func regularAngles(n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = float64(i)*2*math.Pi/float64(n) + math.Pi/float64(n) - math.Pi/2
	}
	return angles
}

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidTable, format, args...)
}
