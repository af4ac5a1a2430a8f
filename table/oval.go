package table

import (
	"math"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/roots"
	"github.com/pkg/errors"
)

// Samples used to bracket common tangents with a circle.
const tangentLineSamples = 360

// The superellipse |x/XScale|^P + |y|^P = 1. Times are polar angles in the
// rescaled coordinates (x/XScale, y), divided by 2π.
type Oval struct {
	P      float64
	XScale float64
}

func NewOval(p, xScale float64) (*Oval, error) {
	if !(p > 1) || math.IsInf(p, 1) {
		return nil, invalidf("superellipse exponent must be in (1, ∞), got %v", p)
	}
	if !(xScale > 0) || math.IsInf(xScale, 1) {
		return nil, invalidf("superellipse x scale must be positive, got %v", xScale)
	}
	return &Oval{P: p, XScale: xScale}, nil
}

func (o *Oval) radius(c, s float64) float64 {
	return math.Pow(math.Pow(math.Abs(c), o.P)+math.Pow(math.Abs(s), o.P), -1/o.P)
}

func (o *Oval) Point(time float64) geom.Point {
	theta := 2 * math.Pi * time
	c, s := math.Cos(theta), math.Sin(theta)
	r := o.radius(c, s)
	return geom.Point{X: o.XScale * r * c, Y: r * s}
}

// Derivative of Point with respect to the polar angle.
func (o *Oval) derivative(time float64) geom.Point {
	theta := 2 * math.Pi * time
	c, s := math.Cos(theta), math.Sin(theta)
	g := math.Pow(math.Abs(c), o.P) + math.Pow(math.Abs(s), o.P)
	dg := o.P * (-math.Pow(math.Abs(c), o.P-1)*sign(c)*s + math.Pow(math.Abs(s), o.P-1)*sign(s)*c)
	r := math.Pow(g, -1/o.P)
	dr := -r * dg / (o.P * g)
	return geom.Point{
		X: o.XScale * (dr*c - r*s),
		Y: dr*s + r*c,
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func (o *Oval) polarTime(p geom.Point) float64 {
	return geom.Mod1(math.Atan2(p.Y, p.X/o.XScale) / (2 * math.Pi))
}

func (o *Oval) level(p geom.Point) float64 {
	return math.Pow(math.Abs(p.X/o.XScale), o.P) + math.Pow(math.Abs(p.Y), o.P) - 1
}

func (o *Oval) Time(p geom.Point) (float64, error) {
	if !o.PointOnBoundary(p) {
		return 0, errors.Wrapf(geom.ErrPointNotOnBoundary, "%v", p)
	}
	t0 := o.polarTime(p)
	t := roots.FindOnInterval(func(t float64) float64 {
		return o.Point(t).DistanceSq(p)
	}, t0-1e-3, t0+1e-3, 1e-12)
	return geom.Mod1(t), nil
}

func (o *Oval) TangentHeading(time float64) (float64, bool) {
	return o.derivative(time).Angle(), true
}

func (o *Oval) ContainsPoint(p geom.Point) bool {
	return o.level(p) < 0
}

func (o *Oval) PointOnBoundary(p geom.Point) bool {
	return o.Point(o.polarTime(p)).Distance(p) < geom.Tolerance
}

func (o *Oval) checkExternal(p geom.Point) error {
	if o.PointOnBoundary(p) {
		return errors.Wrapf(geom.ErrPointOnBoundary, "%v", p)
	}
	if o.ContainsPoint(p) {
		return errors.Wrapf(geom.ErrPointInsideTable, "%v", p)
	}
	return nil
}

// Sine of the angle from the boundary tangent at time to the direction from p
// to the boundary point. It vanishes at both tangent points.
func (o *Oval) tangentialAngle(time float64, p geom.Point) float64 {
	return o.derivative(time).Normalize().Cross(o.Point(time).Sub(p).Normalize())
}

// The right tangent point lies counterclockwise of p by less than half a turn,
// and the left one clockwise. Bisection within each half finds it.
func (o *Oval) tangentPoint(p geom.Point, right bool) (geom.Point, error) {
	if err := o.checkExternal(p); err != nil {
		return geom.Point{}, err
	}
	start := o.polarTime(p)
	lo, hi := start, start+0.5
	if !right {
		lo, hi = start+0.5, start+1
	}
	t, _ := roots.Bisect(func(t float64) float64 {
		return o.tangentialAngle(t, p)
	}, lo, hi, roots.BisectTolerance, roots.BisectMaxIter)
	return o.Point(t), nil
}

func (o *Oval) RightTangentPoint(p geom.Point) (geom.Point, error) {
	return o.tangentPoint(p, true)
}

func (o *Oval) LeftTangentPoint(p geom.Point) (geom.Point, error) {
	return o.tangentPoint(p, false)
}

// Search the boundary for the time whose tangent line is also tangent to c.
// The mismatch between the boundary heading and the heading of the line
// through the circle's tangent point is not known to be unimodal, so the
// search is sampled.
func (o *Oval) tangentLine(c geom.Circle, left bool) (geom.AffineRay, error) {
	segment := func(t float64) (geom.AffineRay, error) {
		pt := o.Point(t)
		if left {
			cp, err := c.RightTangentPoint(pt)
			return geom.AffineRay{Start: pt, End: cp}, err
		}
		cp, err := c.LeftTangentPoint(pt)
		return geom.AffineRay{Start: cp, End: pt}, err
	}
	mismatch := func(t float64) float64 {
		seg, err := segment(t)
		if err != nil {
			return 4 * math.Pi * math.Pi
		}
		heading, _ := o.TangentHeading(t)
		d := geom.NormalizeAngle(seg.End.Sub(seg.Start).Angle()-heading, -math.Pi)
		return d * d
	}
	t := roots.FindOnCircleSampled(mismatch, tangentLineSamples, 1e-13)
	if mismatch(t) > 1e-10 {
		return geom.AffineRay{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no common tangent with %v", c)
	}
	return segment(t)
}

func (o *Oval) LeftTangentLine(c geom.Circle) (geom.AffineRay, error) {
	return o.tangentLine(c, true)
}

func (o *Oval) RightTangentLine(c geom.Circle) (geom.AffineRay, error) {
	return o.tangentLine(c, false)
}

// The boundary point farthest in direction u. The height function of a
// strictly convex curve has one minimum and one maximum per turn.
func (o *Oval) Extreme(u geom.Point) geom.Point {
	t := roots.FindOnCircle(func(t float64) float64 {
		return -o.Point(t).Dot(u)
	}, 1e-12)
	return o.Point(t)
}

func (o *Oval) CastRay(time, heading float64) (float64, error) {
	src := o.Point(time)
	u := geom.Polar(1, heading)
	far := o.Extreme(u).Sub(src).Dot(u)
	if far <= rayEpsilon {
		return 0, errors.Wrapf(geom.ErrDegenerateGeometry, "heading %v leaves the table at %v", heading, src)
	}
	along := func(s float64) float64 {
		return o.level(src.Add(u.Scale(s)))
	}
	// The level function is convex along lines, so its minimum on the chord is
	// inside the table.
	inner := roots.FindOnInterval(along, 0, far, 1e-12)
	if along(inner) >= 0 {
		return 0, errors.Wrapf(geom.ErrDegenerateGeometry, "heading %v grazes the table at %v", heading, src)
	}
	s, _ := roots.Bisect(along, inner, far, 1e-14, 200)
	return o.polarTime(src.Add(u.Scale(s))), nil
}

// Smooth tables have no corners.
func (o *Oval) Corners() []Corner {
	return nil
}

func (o *Oval) Shape(n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = o.Point(float64(i) / float64(n))
	}
	return points
}
