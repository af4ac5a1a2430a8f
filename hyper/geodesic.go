package hyper

import (
	"math"
	"math/cmplx"

	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
)

// A geodesic segment. End may be an ideal point, in which case the geodesic is
// a ray.
type Geodesic struct {
	Start Point
	End   Point
}

func (g Geodesic) Infinite() bool {
	return g.Start.IsIdeal() || g.End.IsIdeal()
}

func (g Geodesic) Length() float64 {
	return g.Start.Distance(g.End)
}

// The segment in Klein coordinates.
func (g Geodesic) Klein() geom.AffineRay {
	return geom.AffineRay{Start: g.Start.Planar(Klein), End: g.End.Planar(Klein)}
}

// Point a fraction t of the way along the geodesic. Finite geodesics are
// parametrized by hyperbolic length, and rays by Klein length.
func (g Geodesic) Lerp(t float64) Point {
	if g.Infinite() {
		k := g.Klein()
		q := k.Start.Lerp(k.End, t)
		return FromKlein(complex(q.X, q.Y))
	}
	w := translate(g.Start.z, g.End.z)
	r := cmplx.Abs(w)
	if r == 0 {
		return g.Start
	}
	s := math.Tanh(t * math.Atanh(r))
	return Point{untranslate(g.Start.z, w*complex(s/r, 0))}
}

func (g Geodesic) Mid() Point {
	return g.Lerp(0.5)
}

// Sample n+1 points along the geodesic, resolved to the given model.
func (g Geodesic) Interpolate(n int, m Model) []geom.Point {
	points := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, g.Lerp(float64(i)/float64(n)).Planar(m))
	}
	return points
}

func (g Geodesic) HalfTurn(pivot Point) Geodesic {
	return Geodesic{g.Start.HalfTurn(pivot), g.End.HalfTurn(pivot)}
}

func (g Geodesic) Intersect(o Geodesic) (Point, error) {
	p, ok := g.Klein().Intersect(o.Klein())
	if !ok {
		return Point{}, errors.Wrap(geom.ErrDegenerateGeometry, "geodesics do not cross")
	}
	return FromKlein(complex(p.X, p.Y)), nil
}

// The geodesic ray from a through b, continued to the boundary.
func RayThrough(a, b Point) (Geodesic, error) {
	ka := a.Planar(Klein)
	kb := b.Planar(Klein)
	dir := kb.Sub(ka)
	if dir.LengthSq() == 0 {
		return Geodesic{}, errors.Wrap(geom.ErrDegenerateGeometry, "ray direction is undefined")
	}
	// Solve |ka + s*dir| = 1 for the positive root.
	qa := dir.LengthSq()
	qb := 2 * ka.Dot(dir)
	qc := ka.LengthSq() - 1
	s := (-qb + math.Sqrt(qb*qb-4*qa*qc)) / (2 * qa)
	end := ka.Add(dir.Scale(s)).Normalize()
	return Geodesic{a, FromPoincare(complex(end.X, end.Y))}, nil
}
