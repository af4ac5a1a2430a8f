package table

import (
	"math"

	"github.com/osuushi/billiards/hyper"
)

// Circumradius of a regular hyperbolic n-gon whose outer billiard tiles the
// plane together with regular k-gons. The second result is false when n and k
// do not tile the hyperbolic plane.
func HyperbolicTilingRadius(n, k int) (float64, bool) {
	if n < 3 || k < 3 {
		return 0, false
	}
	fn, fk := float64(n), float64(k)
	nInterior := (fn - 2) * math.Pi / fn
	kInterior := (fk - 2) * math.Pi / fk
	if 2*nInterior+2*kInterior <= 2*math.Pi {
		return 0, false
	}
	kExterior := 2 * fn * math.Pi / fk
	t := math.Tan(math.Pi/fn) * math.Tan(kExterior/(2*fn))
	po := math.Sqrt((1 - t) / (1 + t))
	kl := hyper.PoincareToKleinRadius(po) * math.Cos(math.Pi/fn)
	return hyper.KleinToTrue(kl), true
}

// Circumradius of a regular spherical n-gon whose outer billiard tiles the
// sphere together with regular k-gons. Only the Platonic cases have one.
func SphericalTilingRadius(n, k int) (float64, bool) {
	if n < 3 || k < 3 {
		return 0, false
	}
	fn, fk := float64(n), float64(k)
	if 1/fn+1/fk <= 0.5 {
		return 0, false
	}
	var side float64
	switch max(n, k) {
	case 3:
		side = math.Pi / 2
	case 4:
		side = math.Pi / 3
	case 5:
		side = math.Pi / 5
	default:
		return 0, false
	}
	a := math.Cos(side)
	b := math.Cos(2 * math.Pi / fn)
	return math.Acos(math.Abs(math.Sqrt((b - a) / (b - 1)))), true
}
