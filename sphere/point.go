// Points and great-circle arcs on the unit sphere.
package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/osuushi/billiards/geom"
)

// A unit vector. The zero Point is not valid; construct points with NewPoint or
// FromVector.
type Point struct {
	v r3.Vector
}

var North = Point{r3.Vector{X: 0, Y: 0, Z: 1}}

func NewPoint(x, y, z float64) Point {
	return FromVector(r3.Vector{X: x, Y: y, Z: z})
}

func FromVector(v r3.Vector) Point {
	return Point{v.Normalize()}
}

// The point at polar angle theta from the north pole and azimuth phi.
func FromSpherical(theta, phi float64) Point {
	sinTheta := math.Sin(theta)
	return Point{r3.Vector{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: math.Cos(theta),
	}}
}

func (p Point) Vector() r3.Vector {
	return p.v
}

func (p Point) Dot(o Point) float64 {
	return p.v.Dot(o.v)
}

func (p Point) Cross(o Point) r3.Vector {
	return p.v.Cross(o.v)
}

// Great-circle distance.
func (p Point) Distance(o Point) float64 {
	return p.v.Angle(o.v).Radians()
}

func (p Point) Antipode() Point {
	return Point{p.v.Mul(-1)}
}

// Rotation by π about pivot, the spherical analog of point reflection.
func (p Point) ReflectThrough(pivot Point) Point {
	return Point{pivot.v.Mul(2 * p.v.Dot(pivot.v)).Sub(p.v)}
}

// Spherical linear interpolation along the shorter great circle.
func (p Point) Lerp(o Point, t float64) Point {
	omega := p.Distance(o)
	if omega < 1e-12 {
		return p
	}
	sin := math.Sin(omega)
	a := math.Sin((1-t)*omega) / sin
	b := math.Sin(t*omega) / sin
	return FromVector(p.v.Mul(a).Add(o.v.Mul(b)))
}

func (p Point) Equal(o Point) bool {
	return p.v.Sub(o.v).Norm() < geom.Tolerance
}

// Stereographic projection from the south pole onto the plane z = 0. The north
// pole maps to the origin and the equator to the unit circle.
func (p Point) Stereographic() geom.Point {
	d := 1 + p.v.Z
	return geom.Point{X: p.v.X / d, Y: p.v.Y / d}
}

func FromStereographic(q geom.Point) Point {
	r2 := q.LengthSq()
	return Point{r3.Vector{
		X: 2 * q.X / (1 + r2),
		Y: 2 * q.Y / (1 + r2),
		Z: (1 - r2) / (1 + r2),
	}}
}
