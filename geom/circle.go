package geom

import (
	"math"

	"github.com/pkg/errors"
)

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Point(theta float64) Point {
	return c.Center.Add(Polar(c.Radius, theta))
}

func (c Circle) ContainsPoint(p Point) bool {
	return p.DistanceSq(c.Center) < c.Radius*c.Radius
}

func (c Circle) PointOnBoundary(p Point) bool {
	return CloseEnough(p.Distance(c.Center), c.Radius)
}

func (c Circle) checkExternal(p Point) error {
	if c.PointOnBoundary(p) {
		return errors.Wrapf(ErrPointOnBoundary, "%v is on circle %v", p, c)
	}
	if c.ContainsPoint(p) {
		return errors.Wrapf(ErrPointInsideTable, "%v is inside circle %v", p, c)
	}
	return nil
}

// The tangent point T from p such that the circle lies on the left of the ray
// from p through T.
func (c Circle) RightTangentPoint(p Point) (Point, error) {
	if err := c.checkExternal(p); err != nil {
		return Point{}, err
	}
	diff := p.Sub(c.Center)
	alpha := math.Acos(c.Radius / diff.Length())
	return c.Point(diff.Angle() + alpha), nil
}

// The tangent point T from p such that the circle lies on the right of the ray
// from p through T.
func (c Circle) LeftTangentPoint(p Point) (Point, error) {
	if err := c.checkExternal(p); err != nil {
		return Point{}, err
	}
	diff := p.Sub(c.Center)
	alpha := math.Acos(c.Radius / diff.Length())
	return c.Point(diff.Angle() - alpha), nil
}

// Outer common tangent from c to other, with both circles on the left of the
// directed segment. Start lies on c and End lies on other.
func (c Circle) LeftTangentSegment(other Circle) (AffineRay, error) {
	v, cosGamma, err := c.tangentFrame(other)
	if err != nil {
		return AffineRay{}, err
	}
	n := v.Rotate(-math.Acos(cosGamma))
	return AffineRay{
		Start: c.Center.Add(n.Scale(c.Radius)),
		End:   other.Center.Add(n.Scale(other.Radius)),
	}, nil
}

// Outer common tangent from c to other, with both circles on the right of the
// directed segment.
func (c Circle) RightTangentSegment(other Circle) (AffineRay, error) {
	v, cosGamma, err := c.tangentFrame(other)
	if err != nil {
		return AffineRay{}, err
	}
	n := v.Rotate(math.Acos(cosGamma))
	return AffineRay{
		Start: c.Center.Add(n.Scale(c.Radius)),
		End:   other.Center.Add(n.Scale(other.Radius)),
	}, nil
}

// Unit vector between centers, and the cosine of the angle between it and the
// normal at the tangent points. Nested circles have no outer tangent.
func (c Circle) tangentFrame(other Circle) (Point, float64, error) {
	diff := other.Center.Sub(c.Center)
	d := diff.Length()
	if d <= math.Abs(c.Radius-other.Radius) || d == 0 {
		return Point{}, 0, errors.Wrapf(ErrDegenerateGeometry, "circles %v and %v are nested", c, other)
	}
	return diff.Scale(1 / d), (c.Radius - other.Radius) / d, nil
}
