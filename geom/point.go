package geom

import "math"

type Point struct {
	X float64
	Y float64
}

// Point at distance r from the origin in direction theta.
func Polar(r, theta float64) Point {
	return Point{r * math.Cos(theta), r * math.Sin(theta)}
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Z component of the 3D cross product. Positive when o is counterclockwise
// from p.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) DistanceSq(o Point) float64 {
	return p.Sub(o).LengthSq()
}

func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Length()
}

func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Unit vector in the direction of p. The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

func (p Point) Lerp(o Point, t float64) Point {
	return p.Add(o.Sub(p).Scale(t))
}

func (p Point) Rotate(theta float64) Point {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Counterclockwise quarter turn.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Point reflection through pivot, which is the outer billiard step.
func (p Point) ReflectThrough(pivot Point) Point {
	return pivot.Scale(2).Sub(p)
}

func (p Point) Equal(o Point) bool {
	return CloseEnough(p.X, o.X) && CloseEnough(p.Y, o.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
