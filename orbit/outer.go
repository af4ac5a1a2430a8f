package orbit

import (
	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
)

type OuterOrbit struct {
	Points []geom.Point
	// Auxiliary circles of the length map, one per step. Empty for the area map.
	Circles []geom.Circle
}

// One step of the outer billiard map, or of its inverse when reverse is set.
func OuterStep(t table.Affine, p geom.Point, gen Generator, reverse bool) (geom.Point, error) {
	next, _, err := outerStep(t, p, gen, reverse)
	return next, err
}

func outerStep(t table.Affine, p geom.Point, gen Generator, reverse bool) (geom.Point, geom.Circle, error) {
	switch gen {
	case Area:
		pivot, err := pivot(t, p, reverse)
		if err != nil {
			return geom.Point{}, geom.Circle{}, err
		}
		return p.ReflectThrough(pivot), geom.Circle{}, nil
	case Length:
		return lengthStep(t, p, reverse)
	}
	return geom.Point{}, geom.Circle{}, errors.Errorf("unknown generator %v", gen)
}

func pivot(t table.Affine, p geom.Point, reverse bool) (geom.Point, error) {
	if reverse {
		return t.LeftTangentPoint(p)
	}
	return t.RightTangentPoint(p)
}

// The circle tangent to the forward tangent line at its tangent point and to
// the backward tangent line at the same distance beyond p.
func LengthCircle(t table.Affine, p geom.Point, reverse bool) (geom.Circle, error) {
	t1, err := pivot(t, p, reverse)
	if err != nil {
		return geom.Circle{}, err
	}
	t2, err := pivot(t, p, !reverse)
	if err != nil {
		return geom.Circle{}, err
	}
	d := t1.Distance(p)
	m := p.Add(p.Sub(t2).Normalize().Scale(d))
	forward, err := geom.LineThroughTwoPoints(p, t1)
	if err != nil {
		return geom.Circle{}, err
	}
	backward, err := geom.LineThroughTwoPoints(p, t2)
	if err != nil {
		return geom.Circle{}, err
	}
	center, err := forward.PerpAtPoint(t1).IntersectLine(backward.PerpAtPoint(m))
	if err != nil {
		return geom.Circle{}, err
	}
	return geom.Circle{Center: center, Radius: center.Distance(t1)}, nil
}

// The outer length billiard: follow the forward tangent line until it meets
// the other common tangent of the table and the length circle.
func lengthStep(t table.Affine, p geom.Point, reverse bool) (geom.Point, geom.Circle, error) {
	circle, err := LengthCircle(t, p, reverse)
	if err != nil {
		return geom.Point{}, geom.Circle{}, err
	}
	t1, err := pivot(t, p, reverse)
	if err != nil {
		return geom.Point{}, geom.Circle{}, err
	}
	forward, err := geom.LineThroughTwoPoints(p, t1)
	if err != nil {
		return geom.Point{}, geom.Circle{}, err
	}
	var tangent geom.AffineRay
	if reverse {
		tangent, err = t.LeftTangentLine(circle)
	} else {
		tangent, err = t.RightTangentLine(circle)
	}
	if err != nil {
		return geom.Point{}, geom.Circle{}, err
	}
	next, err := tangent.Line().IntersectLine(forward)
	if err != nil {
		return geom.Point{}, geom.Circle{}, err
	}
	return next, circle, nil
}

// Outer iterates the outer billiard map n times from start. The orbit stops early
// when a step fails or lands back on its starting point.
func Outer(t table.Affine, start geom.Point, gen Generator, n int) OuterOrbit {
	orbit := OuterOrbit{Points: []geom.Point{start}}
	p := start
	for i := 0; i < n; i++ {
		next, circle, err := outerStep(t, p, gen, false)
		if err == nil && (next.Equal(p) || !next.IsFinite()) {
			err = errors.Wrapf(geom.ErrDegenerateGeometry, "step from %v is stationary", p)
		}
		if err != nil {
			dbg.Warnf("orbit", "outer %v orbit stopped after %d steps: %v", gen, i, err)
			break
		}
		orbit.Points = append(orbit.Points, next)
		if gen == Length {
			orbit.Circles = append(orbit.Circles, circle)
		}
		p = next
	}
	return orbit
}
