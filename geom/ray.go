package geom

import "math"

// A directed segment from Start to End. An infinite ray starts at Start and
// passes through End without stopping.
type AffineRay struct {
	Start    Point
	End      Point
	Infinite bool
}

func (r AffineRay) Direction() Point {
	return r.End.Sub(r.Start).Normalize()
}

func (r AffineRay) Line() Line {
	return Line{r.Start, r.End.Sub(r.Start)}
}

func (r AffineRay) Length() float64 {
	if r.Infinite {
		return math.Inf(1)
	}
	return r.Start.Distance(r.End)
}

// A representative interior point: the midpoint of a finite segment, or End for
// an infinite ray.
func (r AffineRay) Mid() Point {
	if r.Infinite {
		return r.End
	}
	return r.Start.Lerp(r.End, 0.5)
}

// Reflect both endpoints through pivot. Point reflection maps rays to rays, so
// the result keeps the infinite flag.
func (r AffineRay) ReflectThrough(pivot Point) AffineRay {
	return AffineRay{r.Start.ReflectThrough(pivot), r.End.ReflectThrough(pivot), r.Infinite}
}

// Crossing point of two rays or segments. Parallel rays never intersect.
func (r AffineRay) Intersect(o AffineRay) (Point, bool) {
	d1 := r.End.Sub(r.Start)
	d2 := o.End.Sub(o.Start)
	denom := d1.Cross(d2)
	if math.Abs(denom) <= 1e-12*d1.Length()*d2.Length() {
		return Point{}, false
	}
	diff := o.Start.Sub(r.Start)
	s := diff.Cross(d2) / denom
	t := diff.Cross(d1) / denom
	if s < 0 || t < 0 {
		return Point{}, false
	}
	if (!r.Infinite && s > 1) || (!o.Infinite && t > 1) {
		return Point{}, false
	}
	return r.Start.Add(d1.Scale(s)), true
}
