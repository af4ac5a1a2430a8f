package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
)

var ErrNoIntersection = errors.New("arcs do not intersect")

// The shorter great-circle arc from Start to End. Normal is the unit normal of
// the great circle, oriented so that travel from Start to End is
// counterclockwise about it. Points with a positive dot product with Normal are
// on the left of the arc.
type Arc struct {
	Start  Point
	End    Point
	Normal r3.Vector
}

func NewArc(start, end Point) (Arc, error) {
	n := start.Cross(end)
	if n.Norm() < 1e-12 {
		return Arc{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no unique arc from %v to %v", start, end)
	}
	return Arc{start, end, n.Normalize()}, nil
}

func (a Arc) Length() float64 {
	return a.Start.Distance(a.End)
}

func (a Arc) Lerp(t float64) Point {
	return a.Start.Lerp(a.End, t)
}

func (a Arc) Mid() Point {
	return a.Lerp(0.5)
}

// Unit tangent at p, pointing in the direction of travel.
func (a Arc) TangentAt(p Point) r3.Vector {
	return a.Normal.Cross(p.v).Normalize()
}

func (a Arc) SignedSide(p Point) float64 {
	return a.Normal.Dot(p.v)
}

func (a Arc) PointOnLeft(p Point) bool {
	return a.SignedSide(p) > 0
}

// Whether p lies on the arc, within tolerance.
func (a Arc) ContainsPoint(p Point) bool {
	if math.Abs(a.SignedSide(p)) > geom.Tolerance {
		return false
	}
	return geom.CloseEnough(a.Start.Distance(p)+p.Distance(a.End), a.Length())
}

func (a Arc) ReflectThrough(pivot Point) Arc {
	start := a.Start.ReflectThrough(pivot)
	end := a.End.ReflectThrough(pivot)
	return Arc{start, end, start.Cross(end).Normalize()}
}

func (a Arc) Antipode() Arc {
	start := a.Start.Antipode()
	end := a.End.Antipode()
	return Arc{start, end, a.Normal}
}

// Intersection of two arcs. Arcs on the same great circle fail with
// ErrDegenerateGeometry, and arcs whose great circles cross outside of them
// fail with ErrNoIntersection.
func (a Arc) Intersect(o Arc) (Point, error) {
	dir := a.Normal.Cross(o.Normal)
	if dir.Norm() < 1e-12 {
		return Point{}, errors.Wrap(geom.ErrDegenerateGeometry, "arcs lie on the same great circle")
	}
	candidate := FromVector(dir)
	for _, p := range []Point{candidate, candidate.Antipode()} {
		if a.ContainsPoint(p) && o.ContainsPoint(p) {
			return p, nil
		}
	}
	return Point{}, ErrNoIntersection
}
