package geom

import (
	"math"

	"github.com/pkg/errors"
)

// A line through Src in direction Dir. Lines carry a direction, so "left" is
// well defined.
type Line struct {
	Src Point
	Dir Point
}

func LineThroughTwoPoints(a, b Point) (Line, error) {
	if a.DistanceSq(b) == 0 || !a.IsFinite() || !b.IsFinite() {
		return Line{}, errors.Wrapf(ErrDegenerateGeometry, "no line through %v and %v", a, b)
	}
	return Line{a, b.Sub(a)}, nil
}

func LineSrcDir(src, dir Point) Line {
	return Line{src, dir}
}

func (l Line) Slope() float64 {
	return l.Dir.Y / l.Dir.X
}

func (l Line) Heading() float64 {
	return l.Dir.Angle()
}

func (l Line) IntersectLine(o Line) (Point, error) {
	denom := l.Dir.Cross(o.Dir)
	if math.Abs(denom) <= 1e-12*l.Dir.Length()*o.Dir.Length() {
		return Point{}, errors.Wrap(ErrDegenerateGeometry, "lines are parallel")
	}
	s := o.Src.Sub(l.Src).Cross(o.Dir) / denom
	return l.Src.Add(l.Dir.Scale(s)), nil
}

// The line perpendicular to l through p.
func (l Line) PerpAtPoint(p Point) Line {
	return Line{p, l.Dir.Perp()}
}

func (l Line) Project(p Point) Point {
	d := l.Dir.Normalize()
	return l.Src.Add(d.Scale(p.Sub(l.Src).Dot(d)))
}

// Positive on the left of the line, negative on the right.
func (l Line) SignedDistance(p Point) float64 {
	return l.Dir.Normalize().Cross(p.Sub(l.Src))
}

func (l Line) ContainsPoint(p Point) bool {
	return math.Abs(l.SignedDistance(p)) < Tolerance
}
