package table

import (
	"math"

	"github.com/osuushi/billiards/geom"
)

// A regular n-gon inscribed in the unit circle whose edges are replaced by
// outward circular arcs. K scales the bulge of each arc from a straight edge
// (0) to the circumcircle (1).
type Flexigon struct {
	boundary
	N int
	K float64
}

func NewFlexigon(n int, k float64) (*Flexigon, error) {
	if n < 3 {
		return nil, invalidf("flexigon needs at least 3 vertices, got %d", n)
	}
	if !(k > 0 && k < 1) {
		return nil, invalidf("flexigon k must be in (0, 1), got %v", k)
	}
	half := math.Pi / float64(n)
	sagitta := k * (1 - math.Cos(half))
	h := math.Sin(half)
	radius := (h*h + sagitta*sagitta) / (2 * sagitta)
	sweep := 2 * math.Asin(h/radius)

	angles := regularAngles(n)
	pieces := make([]piece, n)
	for i, theta := range angles {
		mid := geom.Polar(1, theta+half)
		center := mid.Scale(math.Cos(half) + sagitta - radius)
		start := geom.Polar(1, theta)
		a0 := start.Sub(center).Angle()
		pieces[i] = arcPiece(geom.Circle{Center: center, Radius: radius}, a0, sweep)
	}
	return &Flexigon{boundary: newBoundary(pieces), N: n, K: k}, nil
}
