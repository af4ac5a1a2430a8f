// Hyperbolic plane points and geodesics in the unit disk.
//
// Points are stored in the Poincaré model and can be resolved to either disk
// model. Geodesics are straight chords in the Klein model, which is where
// intersections and tangency are computed; the Poincaré model is conformal, so
// headings and reflection angles are measured there.
package hyper

import (
	"math"
	"math/cmplx"

	"github.com/osuushi/billiards/geom"
)

type Model int

const (
	Poincare Model = iota
	Klein
)

func (m Model) String() string {
	switch m {
	case Poincare:
		return "poincare"
	case Klein:
		return "klein"
	}
	return "unknown"
}

type Point struct {
	z complex128
}

// Origin of the disk.
var Origin = Point{}

func FromPoincare(z complex128) Point {
	return Point{z}
}

func FromKlein(z complex128) Point {
	return Point{kleinToPoincare(z)}
}

// Point at hyperbolic distance r from the origin in direction theta.
func FromPolar(r, theta float64) Point {
	return Point{cmplx.Rect(TrueToPoincare(r), theta)}
}

func (p Point) Poincare() complex128 {
	return p.z
}

func (p Point) Klein() complex128 {
	return poincareToKlein(p.z)
}

func (p Point) Resolve(m Model) complex128 {
	if m == Klein {
		return p.Klein()
	}
	return p.z
}

// Euclidean coordinates of the point in the given model.
func (p Point) Planar(m Model) geom.Point {
	z := p.Resolve(m)
	return geom.Point{X: real(z), Y: imag(z)}
}

func FromPlanar(q geom.Point, m Model) Point {
	z := complex(q.X, q.Y)
	if m == Klein {
		return FromKlein(z)
	}
	return FromPoincare(z)
}

// Ideal points lie on the boundary circle.
func (p Point) IsIdeal() bool {
	return cmplx.Abs(p.z) >= 1-1e-12
}

func (p Point) Equal(o Point) bool {
	return cmplx.Abs(p.z-o.z) < geom.Tolerance
}

func (p Point) Distance(o Point) float64 {
	if p.IsIdeal() || o.IsIdeal() {
		return math.Inf(1)
	}
	return 2 * math.Atanh(cmplx.Abs(translate(p.z, o.z)))
}

// The half-turn about pivot: the isometry fixing pivot that reverses every
// geodesic through it. This is the hyperbolic outer billiard reflection.
func (p Point) HalfTurn(pivot Point) Point {
	return Point{untranslate(pivot.z, -translate(pivot.z, p.z))}
}

// Heading of the geodesic from p toward o, measured in the Poincaré model.
func (p Point) HeadingTo(o Point) float64 {
	return cmplx.Phase(translate(p.z, o.z))
}

// The ideal point reached by leaving p with the given Poincaré heading.
func (p Point) IdealInDirection(heading float64) Point {
	return Point{untranslate(p.z, cmplx.Rect(1, heading))}
}

// Möbius transformation of the disk sending v to the origin. Its derivative at
// v is a positive real, so headings at v are preserved.
func translate(v, z complex128) complex128 {
	return (z - v) / (1 - cmplx.Conj(v)*z)
}

func untranslate(v, z complex128) complex128 {
	return (z + v) / (1 + cmplx.Conj(v)*z)
}

func poincareToKlein(z complex128) complex128 {
	r2 := real(z)*real(z) + imag(z)*imag(z)
	return 2 * z / complex(1+r2, 0)
}

// Ideal points coincide in both models. Within 1e-14 of the boundary,
// sqrt(1-r2) has lost most of its digits, so those points are snapped onto the
// unit circle.
func kleinToPoincare(z complex128) complex128 {
	r2 := real(z)*real(z) + imag(z)*imag(z)
	if r2 >= 1-1e-14 {
		return z / complex(math.Sqrt(r2), 0)
	}
	return z / complex(1+math.Sqrt(1-r2), 0)
}

// Conversions between hyperbolic distance from the origin and disk radius.
func TrueToPoincare(d float64) float64 {
	return math.Tanh(d / 2)
}

func TrueToKlein(d float64) float64 {
	return math.Tanh(d)
}

func KleinToTrue(r float64) float64 {
	return math.Atanh(r)
}

func PoincareToTrue(r float64) float64 {
	return 2 * math.Atanh(r)
}

func PoincareToKleinRadius(r float64) float64 {
	return 2 * r / (1 + r*r)
}
