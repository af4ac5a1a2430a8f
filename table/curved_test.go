package table

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/sphere"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphericalPolygon(t *testing.T) {
	sp, err := RegularSphericalPolygon(4, 0.5)
	require.NoError(t, err)
	assert.True(t, sp.ContainsPoint(sphere.North))
	assert.False(t, sp.ContainsPoint(sphere.North.Antipode()))

	for i := 0; i < 40; i++ {
		time := float64(i)/40 + 0.003
		p := sp.Point(time)
		require.True(t, sp.PointOnBoundary(p))
		back, err := sp.Time(p)
		require.NoError(t, err)
		assert.Less(t, circularDistance(back, time), 1e-5)
	}

	for _, v := range sp.Vertices() {
		assert.InDelta(t, 0.5, sphere.North.Distance(v), 1e-9)
	}

	_, ok := sp.TangentVector(0)
	assert.False(t, ok)
	tangent, ok := sp.TangentVector(0.125)
	require.True(t, ok)
	assert.InDelta(t, 0, tangent.Dot(sp.Point(0.125).Vector()), 1e-9)
}

func TestSphericalTangentPoints(t *testing.T) {
	sp, err := RegularSphericalPolygon(5, 0.4)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		p := sphere.FromSpherical(1.2, float64(i)*math.Pi/6+0.05)
		for _, right := range []bool{true, false} {
			var v sphere.Point
			if right {
				v, err = sp.RightTangentPoint(p)
			} else {
				v, err = sp.LeftTangentPoint(p)
			}
			require.NoError(t, err)
			arc, err := sphere.NewArc(p, v)
			require.NoError(t, err)
			for _, w := range sp.Vertices() {
				side := arc.SignedSide(w)
				if right {
					assert.GreaterOrEqual(t, side, -1e-9)
				} else {
					assert.LessOrEqual(t, side, 1e-9)
				}
			}
		}
	}

	_, err = sp.RightTangentPoint(sphere.North)
	assert.True(t, errors.Is(err, geom.ErrPointInsideTable))
	_, err = sp.RightTangentPoint(sphere.North.Antipode())
	assert.True(t, errors.Is(err, geom.ErrPointInsideTable))
}

func TestSphericalArcs(t *testing.T) {
	sp, err := RegularSphericalPolygon(3, 0.6)
	require.NoError(t, err)
	vertices := sp.Vertices()
	singular := sp.SingularArcs()
	require.Len(t, singular, 3)
	// Each singular arc continues its edge's great circle.
	for i, arc := range singular {
		assert.True(t, arc.Start.Equal(vertices[i]))
		assert.InDelta(t, 0, arc.SignedSide(vertices[(i+1)%3]), 1e-9)
		assert.InDelta(t, math.Pi, arc.Length()+sp.Edges()[i].Length(), 1e-9)
	}
	require.Len(t, sp.SlicingArcs(), 3)
	for _, e := range sp.AntipodalEdges() {
		assert.False(t, sp.ContainsPoint(e.Mid()))
	}

	_, err = RegularSphericalPolygon(4, math.Pi/2)
	assert.True(t, errors.Is(err, ErrInvalidTable))
}

func TestHyperbolicPolygon(t *testing.T) {
	hp, err := RegularHyperbolicPolygon(5, 1)
	require.NoError(t, err)
	assert.True(t, hp.ContainsPoint(hyper.Origin))

	for i := 0; i < 40; i++ {
		time := float64(i)/40 + 0.003
		p := hp.Point(time)
		require.True(t, hp.PointOnBoundary(p))
		back, err := hp.Time(p)
		require.NoError(t, err)
		assert.Less(t, circularDistance(back, time), 1e-5)
	}

	for _, v := range hp.Vertices() {
		assert.InDelta(t, 1, hyper.Origin.Distance(v), 1e-9)
	}

	_, ok := hp.TangentHeading(0)
	assert.False(t, ok)
	// The bottom edge runs left to right.
	heading, ok := hp.TangentHeading(0.9)
	require.True(t, ok)
	assert.InDelta(t, 0, heading, 1e-9)
}

func TestHyperbolicCastRay(t *testing.T) {
	hp, err := RegularHyperbolicPolygon(5, 1)
	require.NoError(t, err)
	// Straight up from the middle of the bottom edge lands on the top vertex.
	hit, err := hp.CastRay(0.9, math.Pi/2)
	require.NoError(t, err)
	assert.Less(t, circularDistance(hit, 0.4), 1e-6)
	top := hp.Point(hit)
	assert.InDelta(t, 0, real(top.Poincare()), 1e-6)
	assert.InDelta(t, hyper.TrueToPoincare(1), cmplx.Abs(top.Poincare()), 1e-6)
}

func TestHyperbolicTangentPoints(t *testing.T) {
	hp, err := RegularHyperbolicPolygon(6, 0.8)
	require.NoError(t, err)
	p := hyper.FromPolar(2, 0.3)
	right, err := hp.RightTangentPoint(p)
	require.NoError(t, err)
	left, err := hp.LeftTangentPoint(p)
	require.NoError(t, err)
	assert.False(t, right.Equal(left))

	// Geodesics are straight in the Klein model, so support is a planar test.
	rightLine := geom.LineSrcDir(p.Planar(hyper.Klein), right.Planar(hyper.Klein).Sub(p.Planar(hyper.Klein)))
	for _, v := range hp.Vertices() {
		assert.GreaterOrEqual(t, rightLine.SignedDistance(v.Planar(hyper.Klein)), -1e-9)
	}

	_, err = hp.RightTangentPoint(hyper.Origin)
	assert.True(t, errors.Is(err, geom.ErrPointInsideTable))
}

func TestHyperbolicRays(t *testing.T) {
	hp, err := RegularHyperbolicPolygon(4, 1)
	require.NoError(t, err)
	for _, ray := range append(hp.SingularRays(), hp.SlicingRays()...) {
		assert.True(t, ray.Infinite())
		assert.False(t, ray.Start.IsIdeal())
	}
}
