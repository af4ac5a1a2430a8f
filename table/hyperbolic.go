package table

import (
	"sort"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/pkg/errors"
)

// A convex polygon in the hyperbolic plane. Geodesics are straight in the
// Klein model, so the combinatorics (containment, tangent vertices, ray hits)
// are delegated to the Euclidean polygon with the same Klein vertices, while
// times follow hyperbolic length.
type HyperbolicPolygon struct {
	vertices  []hyper.Point
	klein     *Polygon
	starts    []float64
	lengths   []float64
	perimeter float64
}

func NewHyperbolicPolygon(vertices []hyper.Point) (*HyperbolicPolygon, error) {
	kleinVertices := make([]geom.Point, len(vertices))
	for i, v := range vertices {
		if v.IsIdeal() {
			return nil, invalidf("vertex %d is ideal", i)
		}
		kleinVertices[i] = v.Planar(hyper.Klein)
	}
	klein, err := NewPolygon(kleinVertices)
	if err != nil {
		return nil, err
	}
	// NewPolygon may have reversed the order.
	hp := &HyperbolicPolygon{klein: klein}
	n := klein.Len()
	hp.vertices = make([]hyper.Point, n)
	hp.starts = make([]float64, n)
	hp.lengths = make([]float64, n)
	for i, kv := range klein.vertices {
		hp.vertices[i] = hyper.FromPlanar(kv, hyper.Klein)
	}
	for i, v := range hp.vertices {
		hp.starts[i] = hp.perimeter
		hp.lengths[i] = v.Distance(hp.vertices[geom.CircularIndex(i+1, n)])
		hp.perimeter += hp.lengths[i]
	}
	return hp, nil
}

// A regular n-gon centered at the origin with hyperbolic circumradius r.
func RegularHyperbolicPolygon(n int, r float64) (*HyperbolicPolygon, error) {
	if n < 3 {
		return nil, invalidf("regular polygon needs at least 3 vertices, got %d", n)
	}
	if !(r > 0) {
		return nil, invalidf("radius must be positive, got %v", r)
	}
	vertices := make([]hyper.Point, n)
	for i, theta := range regularAngles(n) {
		vertices[i] = hyper.FromPolar(r, theta)
	}
	return NewHyperbolicPolygon(vertices)
}

func (hp *HyperbolicPolygon) Vertices() []hyper.Point {
	vertices := make([]hyper.Point, len(hp.vertices))
	copy(vertices, hp.vertices)
	return vertices
}

func (hp *HyperbolicPolygon) edge(i int) hyper.Geodesic {
	return hyper.Geodesic{Start: hp.vertices[i], End: hp.vertices[geom.CircularIndex(i+1, len(hp.vertices))]}
}

func (hp *HyperbolicPolygon) index(time float64) (int, float64) {
	d := geom.Mod1(time) * hp.perimeter
	i := sort.Search(len(hp.starts), func(i int) bool { return hp.starts[i] > d }) - 1
	return i, (d - hp.starts[i]) / hp.lengths[i]
}

func (hp *HyperbolicPolygon) Point(time float64) hyper.Point {
	i, s := hp.index(time)
	return hp.edge(i).Lerp(s)
}

func (hp *HyperbolicPolygon) Time(p hyper.Point) (float64, error) {
	i, _, ok := hp.klein.locate(p.Planar(hyper.Klein))
	if !ok {
		return 0, errors.Wrapf(geom.ErrPointNotOnBoundary, "%v", p.Poincare())
	}
	return geom.Mod1((hp.starts[i] + hp.vertices[i].Distance(p)) / hp.perimeter), nil
}

// Heading of the boundary in the Poincaré model. Undefined at vertices.
func (hp *HyperbolicPolygon) TangentHeading(time float64) (float64, bool) {
	i, s := hp.index(time)
	if s*hp.lengths[i] < 1e-9 || (1-s)*hp.lengths[i] < 1e-9 {
		return 0, false
	}
	e := hp.edge(i)
	return e.Lerp(s).HeadingTo(e.End), true
}

func (hp *HyperbolicPolygon) ContainsPoint(p hyper.Point) bool {
	return hp.klein.ContainsPoint(p.Planar(hyper.Klein))
}

func (hp *HyperbolicPolygon) PointOnBoundary(p hyper.Point) bool {
	return hp.klein.PointOnBoundary(p.Planar(hyper.Klein))
}

func (hp *HyperbolicPolygon) tangentVertex(p hyper.Point, right bool) (hyper.Point, error) {
	var k geom.Point
	var err error
	if right {
		k, err = hp.klein.RightTangentPoint(p.Planar(hyper.Klein))
	} else {
		k, err = hp.klein.LeftTangentPoint(p.Planar(hyper.Klein))
	}
	if err != nil {
		return hyper.Point{}, err
	}
	return hyper.FromPlanar(k, hyper.Klein), nil
}

func (hp *HyperbolicPolygon) RightTangentPoint(p hyper.Point) (hyper.Point, error) {
	return hp.tangentVertex(p, true)
}

func (hp *HyperbolicPolygon) LeftTangentPoint(p hyper.Point) (hyper.Point, error) {
	return hp.tangentVertex(p, false)
}

// Time of the next boundary point hit by the geodesic leaving Point(time) with
// the given Poincaré heading.
func (hp *HyperbolicPolygon) CastRay(time, heading float64) (float64, error) {
	src := hp.Point(time)
	ideal := src.IdealInDirection(heading)
	chord := hyper.Geodesic{Start: src, End: ideal}.Klein()
	u := chord.Direction()
	bestS := -1.0
	var hit geom.Point
	for _, pc := range hp.klein.pieces {
		hits, _ := pc.castRay(chord.Start, u)
		for _, s := range hits {
			if bestS < 0 || s < bestS {
				bestS = s
				hit = chord.Start.Add(u.Scale(s))
			}
		}
	}
	if bestS < 0 {
		return 0, errors.Wrapf(geom.ErrDegenerateGeometry, "geodesic from %v misses the table", src.Poincare())
	}
	return hp.Time(hyper.FromPlanar(hit, hyper.Klein))
}

// Geodesic rays from each vertex away from its successor, out to the ideal
// boundary.
func (hp *HyperbolicPolygon) SingularRays() []hyper.Geodesic {
	n := len(hp.vertices)
	rays := make([]hyper.Geodesic, 0, n)
	for i, v := range hp.vertices {
		next := hp.vertices[geom.CircularIndex(i+1, n)]
		if ray, err := hyper.RayThrough(next, v); err == nil {
			rays = append(rays, hyper.Geodesic{Start: v, End: ray.End})
		}
	}
	return rays
}

// Geodesic rays from each vertex away from its predecessor.
func (hp *HyperbolicPolygon) SlicingRays() []hyper.Geodesic {
	n := len(hp.vertices)
	rays := make([]hyper.Geodesic, 0, n)
	for i, v := range hp.vertices {
		prev := hp.vertices[geom.CircularIndex(i-1, n)]
		if ray, err := hyper.RayThrough(prev, v); err == nil {
			rays = append(rays, hyper.Geodesic{Start: v, End: ray.End})
		}
	}
	return rays
}

// Boundary samples in the given model, following each edge as a geodesic.
func (hp *HyperbolicPolygon) Shape(n int, m hyper.Model) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = hp.Point(float64(i) / float64(n)).Planar(m)
	}
	return points
}
