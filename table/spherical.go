package table

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/sphere"
	"github.com/pkg/errors"
)

// A convex polygon on the unit sphere, counterclockwise about its interior.
type SphericalPolygon struct {
	vertices  []sphere.Point
	edges     []sphere.Arc
	starts    []float64
	perimeter float64
}

func NewSphericalPolygon(vertices []sphere.Point) (*SphericalPolygon, error) {
	n := len(vertices)
	if n < 3 {
		return nil, invalidf("spherical polygon needs at least 3 vertices, got %d", n)
	}
	sp := &SphericalPolygon{
		vertices: make([]sphere.Point, n),
		edges:    make([]sphere.Arc, n),
		starts:   make([]float64, n),
	}
	copy(sp.vertices, vertices)
	for i := range sp.vertices {
		edge, err := sphere.NewArc(sp.vertices[i], sp.vertices[geom.CircularIndex(i+1, n)])
		if err != nil {
			return nil, invalidf("edge %d: %v", i, err)
		}
		sp.edges[i] = edge
		sp.starts[i] = sp.perimeter
		sp.perimeter += edge.Length()
	}
	for i, edge := range sp.edges {
		for j, v := range sp.vertices {
			if j == i || j == geom.CircularIndex(i+1, n) {
				continue
			}
			if edge.SignedSide(v) <= 1e-12 {
				return nil, invalidf("spherical polygon is not convex and counterclockwise at edge %d", i)
			}
		}
	}
	return sp, nil
}

// A regular n-gon centered on the north pole with circumradius r, measured as
// an angle.
func RegularSphericalPolygon(n int, r float64) (*SphericalPolygon, error) {
	if n < 3 {
		return nil, invalidf("regular polygon needs at least 3 vertices, got %d", n)
	}
	if !(r > 0 && r < math.Pi/2) {
		return nil, invalidf("spherical radius must be in (0, π/2), got %v", r)
	}
	vertices := make([]sphere.Point, n)
	for i := range vertices {
		theta := float64(i)*2*math.Pi/float64(n) + math.Pi/2
		equator := sphere.FromSpherical(math.Pi/2, theta)
		vertices[i] = sphere.North.Lerp(equator, r/(math.Pi/2))
	}
	return NewSphericalPolygon(vertices)
}

func (sp *SphericalPolygon) Vertices() []sphere.Point {
	vertices := make([]sphere.Point, len(sp.vertices))
	copy(vertices, sp.vertices)
	return vertices
}

func (sp *SphericalPolygon) Edges() []sphere.Arc {
	edges := make([]sphere.Arc, len(sp.edges))
	copy(edges, sp.edges)
	return edges
}

// Edges of the antipodal copy of the polygon, which the outer billiard map
// also avoids.
func (sp *SphericalPolygon) AntipodalEdges() []sphere.Arc {
	edges := make([]sphere.Arc, len(sp.edges))
	for i, e := range sp.edges {
		edges[i] = e.Antipode()
	}
	return edges
}

func (sp *SphericalPolygon) index(time float64) (int, float64) {
	arc := geom.Mod1(time) * sp.perimeter
	i := sort.Search(len(sp.starts), func(i int) bool { return sp.starts[i] > arc }) - 1
	return i, (arc - sp.starts[i]) / sp.edges[i].Length()
}

func (sp *SphericalPolygon) Point(time float64) sphere.Point {
	i, s := sp.index(time)
	return sp.edges[i].Lerp(s)
}

func (sp *SphericalPolygon) Time(p sphere.Point) (float64, error) {
	for i, edge := range sp.edges {
		if edge.ContainsPoint(p) {
			return geom.Mod1((sp.starts[i] + edge.Start.Distance(p)) / sp.perimeter), nil
		}
	}
	return 0, errors.Wrapf(geom.ErrPointNotOnBoundary, "%v", p)
}

// Unit tangent of the boundary at time. The second result is false at
// vertices.
func (sp *SphericalPolygon) TangentVector(time float64) (r3.Vector, bool) {
	i, s := sp.index(time)
	length := sp.edges[i].Length()
	if s*length < 1e-9 || (1-s)*length < 1e-9 {
		return r3.Vector{}, false
	}
	return sp.edges[i].TangentAt(sp.edges[i].Lerp(s)), true
}

func (sp *SphericalPolygon) ContainsPoint(p sphere.Point) bool {
	for _, edge := range sp.edges {
		if !edge.PointOnLeft(p) {
			return false
		}
	}
	return true
}

func (sp *SphericalPolygon) PointOnBoundary(p sphere.Point) bool {
	for _, edge := range sp.edges {
		if edge.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// Points in the polygon or its antipode have no tangent great circle.
func (sp *SphericalPolygon) checkExternal(p sphere.Point) error {
	if sp.PointOnBoundary(p) || sp.PointOnBoundary(p.Antipode()) {
		return errors.Wrapf(geom.ErrPointOnBoundary, "%v", p)
	}
	if sp.ContainsPoint(p) || sp.ContainsPoint(p.Antipode()) {
		return errors.Wrapf(geom.ErrPointInsideTable, "%v", p)
	}
	return nil
}

func (sp *SphericalPolygon) tangentVertex(p sphere.Point, right bool) (sphere.Point, error) {
	if err := sp.checkExternal(p); err != nil {
		return sphere.Point{}, err
	}
	n := len(sp.vertices)
	best := -1.0
	var result sphere.Point
	for i, v := range sp.vertices {
		normal := p.Cross(v)
		if normal.Norm() < 1e-12 {
			continue
		}
		normal = normal.Normalize()
		prevSide := normal.Dot(sp.vertices[geom.CircularIndex(i-1, n)].Vector())
		nextSide := normal.Dot(sp.vertices[geom.CircularIndex(i+1, n)].Vector())
		if !right {
			prevSide, nextSide = -prevSide, -nextSide
		}
		if prevSide < -supportTolerance || nextSide < -supportTolerance {
			continue
		}
		if d := p.Distance(v); d > best {
			best, result = d, v
		}
	}
	if best < 0 {
		return sphere.Point{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no tangent vertex from %v", p)
	}
	return result, nil
}

// Vertex T with the polygon on the left of the arc from p to T.
func (sp *SphericalPolygon) RightTangentPoint(p sphere.Point) (sphere.Point, error) {
	return sp.tangentVertex(p, true)
}

func (sp *SphericalPolygon) LeftTangentPoint(p sphere.Point) (sphere.Point, error) {
	return sp.tangentVertex(p, false)
}

// Arcs from each vertex to the antipode of its successor: the great circle
// through an edge, continued past the edge's start.
func (sp *SphericalPolygon) SingularArcs() []sphere.Arc {
	n := len(sp.vertices)
	arcs := make([]sphere.Arc, 0, n)
	for i, v := range sp.vertices {
		arc, err := sphere.NewArc(v, sp.vertices[geom.CircularIndex(i+1, n)].Antipode())
		if err == nil {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}

// Arcs from each vertex to the antipode of its predecessor, where the reverse
// map is discontinuous.
func (sp *SphericalPolygon) SlicingArcs() []sphere.Arc {
	n := len(sp.vertices)
	arcs := make([]sphere.Arc, 0, n)
	for i, v := range sp.vertices {
		arc, err := sphere.NewArc(v, sp.vertices[geom.CircularIndex(i-1, n)].Antipode())
		if err == nil {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}

// Boundary samples, n per polygon regardless of vertex count.
func (sp *SphericalPolygon) Shape(n int) []sphere.Point {
	points := make([]sphere.Point, n)
	for i := range points {
		points[i] = sp.Point(float64(i) / float64(n))
	}
	return points
}
