package hyper

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/osuushi/billiards/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelConversion(t *testing.T) {
	for _, z := range []complex128{0, 0.3, complex(-0.2, 0.5), complex(0.7, -0.7)} {
		t.Run(fmt.Sprintf("%v", z), func(t *testing.T) {
			p := FromPoincare(z)
			q := FromKlein(p.Klein())
			assert.InDelta(t, 0, cmplx.Abs(q.Poincare()-z), 1e-12)
		})
	}

	d := 1.3
	assert.InDelta(t, TrueToKlein(d), PoincareToKleinRadius(TrueToPoincare(d)), 1e-12)
	assert.InDelta(t, d, KleinToTrue(TrueToKlein(d)), 1e-12)
	assert.InDelta(t, d, PoincareToTrue(TrueToPoincare(d)), 1e-12)
}

func TestDistance(t *testing.T) {
	p := FromPolar(1.5, 0.4)
	assert.InDelta(t, 1.5, Origin.Distance(p), 1e-9)
	q := FromPolar(0.8, 2)
	assert.InDelta(t, p.Distance(q), q.Distance(p), 1e-9)
	assert.True(t, math.IsInf(p.Distance(FromPoincare(1)), 1))
}

func TestHalfTurn(t *testing.T) {
	pivot := FromPolar(0.7, 1)
	p := FromPolar(1.2, -0.5)
	r := p.HalfTurn(pivot)
	assert.InDelta(t, p.Distance(pivot), r.Distance(pivot), 1e-9)
	assert.InDelta(t, 2*p.Distance(pivot), p.Distance(r), 1e-9)
	assert.True(t, r.HalfTurn(pivot).Equal(p))

	// About the origin a half-turn is z -> -z.
	assert.True(t, p.HalfTurn(Origin).Equal(FromPoincare(-p.Poincare())))

	// Ideal points stay ideal.
	ideal := FromPoincare(cmplx.Rect(1, 0.3))
	assert.True(t, ideal.HalfTurn(pivot).IsIdeal())
}

func TestGeodesicLerp(t *testing.T) {
	g := Geodesic{FromPolar(0.5, 0), FromPolar(1, 2)}
	mid := g.Mid()
	assert.InDelta(t, g.Length()/2, g.Start.Distance(mid), 1e-9)
	assert.InDelta(t, g.Length()/2, mid.Distance(g.End), 1e-9)

	// Every sample lies on the Klein chord.
	chord := g.Klein().Line()
	for _, q := range g.Interpolate(8, Klein) {
		assert.InDelta(t, 0, chord.SignedDistance(q), 1e-9)
	}
}

func TestHeading(t *testing.T) {
	p := FromPolar(0.9, 0.3)
	ideal := p.IdealInDirection(1.1)
	require.True(t, ideal.IsIdeal())
	assert.InDelta(t, 1.1, p.HeadingTo(ideal), 1e-9)
	assert.InDelta(t, 0.0, Origin.HeadingTo(FromPoincare(0.5)), 1e-12)
}

func TestRayThrough(t *testing.T) {
	a := FromKlein(complex(0.1, 0.1))
	b := FromKlein(complex(0.3, 0.1))
	ray, err := RayThrough(a, b)
	require.NoError(t, err)
	assert.True(t, ray.Infinite())
	assert.True(t, ray.End.IsIdeal())
	assert.InDelta(t, 1.0, cmplx.Abs(ray.End.Poincare()), 1e-15)
	assert.True(t, math.IsInf(a.Distance(ray.End), 1))
	end := ray.End.Planar(Klein)
	assert.InDelta(t, 0.1, end.Y, 1e-9)
	assert.InDelta(t, math.Sqrt(0.99), end.X, 1e-9)

	other := Geodesic{FromKlein(complex(0.5, -0.5)), FromKlein(complex(0.5, 0.5))}
	p, err := ray.Intersect(other)
	require.NoError(t, err)
	assert.True(t, p.Planar(Klein).Equal(geom.Point{X: 0.5, Y: 0.1}))
}

func TestKleinBoundarySnaps(t *testing.T) {
	for _, theta := range []float64{0, 0.7, 2, -2.5} {
		near := cmplx.Rect(math.Nextafter(1, 0), theta)
		p := FromKlein(near)
		assert.True(t, p.IsIdeal())
		assert.InDelta(t, 1.0, cmplx.Abs(p.Poincare()), 1e-15)
		assert.InDelta(t, theta, cmplx.Phase(p.Poincare()), 1e-12)
	}
	// Close to the boundary, but well above the precision floor.
	assert.False(t, FromKlein(complex(1-1e-9, 0)).IsIdeal())
	inside := FromKlein(complex(0.6, 0))
	assert.False(t, inside.IsIdeal())
	assert.InDelta(t, 0.6/(1+0.8), real(inside.Poincare()), 1e-15)
}
