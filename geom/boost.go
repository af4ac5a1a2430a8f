package geom

import (
	"math"

	"github.com/pkg/errors"
)

// A Lorentz boost of 1+1 dimensional spacetime with velocity V, in units where
// the speed of light is 1. Points are read as (X, Y) = (x, t).
type Boost struct {
	V     float64
	gamma float64
}

func NewBoost(v float64) (Boost, error) {
	if math.Abs(v) >= 1 || math.IsNaN(v) {
		return Boost{}, errors.Wrapf(ErrNonsenseVelocity, "|%v| >= 1", v)
	}
	return Boost{V: v, gamma: 1 / math.Sqrt(1-v*v)}, nil
}

func (b Boost) Apply(event Point) Point {
	return Point{
		X: b.gamma * (event.X - b.V*event.Y),
		Y: b.gamma * (event.Y - b.V*event.X),
	}
}

func (b Boost) Inverse() Boost {
	return Boost{V: -b.V, gamma: b.gamma}
}

// Minkowski interval t² - x², preserved by every boost.
func Interval(event Point) float64 {
	return event.Y*event.Y - event.X*event.X
}
