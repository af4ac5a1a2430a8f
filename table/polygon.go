package table

import (
	"math"

	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
)

// A convex polygon. Vertices are stored counterclockwise.
type Polygon struct {
	boundary
	vertices []geom.Point
}

// Build a convex polygon. Clockwise input is reversed. The slice is copied.
func NewPolygon(vertices []geom.Point) (*Polygon, error) {
	n := len(vertices)
	if n < 3 {
		return nil, invalidf("polygon needs at least 3 vertices, got %d", n)
	}
	points := make([]geom.Point, n)
	copy(points, vertices)
	if signedArea(points) < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	for i := range points {
		a := points[i]
		b := points[geom.CircularIndex(i+1, n)]
		c := points[geom.CircularIndex(i+2, n)]
		if !a.IsFinite() {
			return nil, invalidf("vertex %d is not finite", i)
		}
		if b.Sub(a).Cross(c.Sub(b)) <= 1e-12 {
			return nil, invalidf("polygon is not strictly convex at vertex %d", geom.CircularIndex(i+1, n))
		}
	}
	pieces := make([]piece, n)
	for i := range points {
		pieces[i] = segmentPiece(points[i], points[geom.CircularIndex(i+1, n)])
	}
	return &Polygon{boundary: newBoundary(pieces), vertices: points}, nil
}

// A regular n-gon with circumradius r centered at the origin, with a
// horizontal bottom edge.
func RegularPolygon(n int, r float64) (*Polygon, error) {
	if n < 3 {
		return nil, invalidf("regular polygon needs at least 3 vertices, got %d", n)
	}
	if !(r > 0) {
		return nil, invalidf("radius must be positive, got %v", r)
	}
	angles := regularAngles(n)
	vertices := make([]geom.Point, n)
	for i, theta := range angles {
		vertices[i] = geom.Polar(r, theta)
	}
	return NewPolygon(vertices)
}

func signedArea(points []geom.Point) float64 {
	area := 0.0
	for i, p := range points {
		area += p.Cross(points[geom.CircularIndex(i+1, len(points))])
	}
	return area / 2
}

func (p *Polygon) Vertices() []geom.Point {
	vertices := make([]geom.Point, len(p.vertices))
	copy(vertices, p.vertices)
	return vertices
}

func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Scan for the vertex whose two neighbours both lie on the required side of
// the ray from q through it.
func (p *Polygon) tangentVertex(q geom.Point, right bool) (geom.Point, error) {
	if err := p.checkExternal(q); err != nil {
		return geom.Point{}, err
	}
	n := len(p.vertices)
	bestDistance := -1.0
	var best geom.Point
	for i, v := range p.vertices {
		dir := v.Sub(q).Normalize()
		prevSide := dir.Cross(p.vertices[geom.CircularIndex(i-1, n)].Sub(q))
		nextSide := dir.Cross(p.vertices[geom.CircularIndex(i+1, n)].Sub(q))
		if !right {
			prevSide, nextSide = -prevSide, -nextSide
		}
		if prevSide < -supportTolerance || nextSide < -supportTolerance {
			continue
		}
		if d := v.DistanceSq(q); d > bestDistance {
			best, bestDistance = v, d
		}
	}
	if bestDistance < 0 {
		return geom.Point{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no tangent vertex from %v", q)
	}
	return best, nil
}

func (p *Polygon) RightTangentPoint(q geom.Point) (geom.Point, error) {
	return p.tangentVertex(q, true)
}

func (p *Polygon) LeftTangentPoint(q geom.Point) (geom.Point, error) {
	return p.tangentVertex(q, false)
}

// The polygon itself, regardless of n.
func (p *Polygon) Shape(n int) []geom.Point {
	return p.Vertices()
}

// Edge extensions along which the forward outer billiard map is
// discontinuous: the ray from each vertex away from its successor.
func (p *Polygon) SingularRays() []geom.AffineRay {
	n := len(p.vertices)
	rays := make([]geom.AffineRay, n)
	for i, v := range p.vertices {
		next := p.vertices[geom.CircularIndex(i+1, n)]
		rays[i] = geom.AffineRay{Start: v, End: v.Add(v.Sub(next).Normalize()), Infinite: true}
	}
	return rays
}

// Edge extensions along which the reverse map is discontinuous: the ray from
// each vertex away from its predecessor.
func (p *Polygon) SlicingRays() []geom.AffineRay {
	n := len(p.vertices)
	rays := make([]geom.AffineRay, n)
	for i, v := range p.vertices {
		prev := p.vertices[geom.CircularIndex(i-1, n)]
		rays[i] = geom.AffineRay{Start: v, End: v.Add(v.Sub(prev).Normalize()), Infinite: true}
	}
	return rays
}

// Circumradius about the origin.
func (p *Polygon) Radius() float64 {
	r := 0.0
	for _, v := range p.vertices {
		r = math.Max(r, v.Length())
	}
	return r
}
