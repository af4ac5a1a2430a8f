package orbit

import (
	"math"
	"testing"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/sphere"
	"github.com/osuushi/billiards/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *table.Polygon {
	sq, err := table.RegularPolygon(4, math.Sqrt2)
	require.NoError(t, err)
	return sq
}

func unitCircle(t *testing.T) *table.Oval {
	circle, err := table.NewOval(2, 1)
	require.NoError(t, err)
	return circle
}

func TestParse(t *testing.T) {
	gen, err := ParseGenerator("Symplectic")
	require.NoError(t, err)
	assert.Equal(t, Area, gen)
	gen, err = ParseGenerator("length")
	require.NoError(t, err)
	assert.Equal(t, "length", gen.String())
	_, err = ParseGenerator("volume")
	assert.Error(t, err)

	d, err := ParseDuality("INNER")
	require.NoError(t, err)
	assert.Equal(t, InnerDuality, d)
	assert.Equal(t, "outer", OuterDuality.String())
	assert.Equal(t, "inner", d.String())
	_, err = ParseDuality("sideways")
	assert.Error(t, err)
}

func TestOuterStepInvertible(t *testing.T) {
	pentagon, err := table.RegularPolygon(5, 1)
	require.NoError(t, err)
	cases := []struct {
		name  string
		table table.Affine
		gen   Generator
		start geom.Point
	}{
		{"square area", square(t), Area, geom.Point{X: 2.3, Y: 0.4}},
		{"pentagon area", pentagon, Area, geom.Point{X: -1.7, Y: 2.2}},
		{"circle area", unitCircle(t), Area, geom.Point{X: 0.3, Y: -2.5}},
		{"circle length", unitCircle(t), Length, geom.Point{X: 0, Y: -2}},
		{"square length", square(t), Length, geom.Point{X: 2.6, Y: 0.3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, err := OuterStep(c.table, c.start, c.gen, false)
			require.NoError(t, err)
			assert.False(t, next.Equal(c.start))
			back, err := OuterStep(c.table, next, c.gen, true)
			require.NoError(t, err)
			assert.InDelta(t, c.start.X, back.X, 1e-5)
			assert.InDelta(t, c.start.Y, back.Y, 1e-5)
		})
	}
}

func TestOuterStepInsideFails(t *testing.T) {
	_, err := OuterStep(square(t), geom.Point{X: 0.1, Y: 0.2}, Area, false)
	assert.Error(t, err)
	orbit := Outer(square(t), geom.Point{X: 0.1, Y: 0.2}, Area, 10)
	assert.Len(t, orbit.Points, 1)
}

func TestAreaOrbitsStayOutside(t *testing.T) {
	for n := 3; n <= 8; n++ {
		poly, err := table.RegularPolygon(n, 1)
		require.NoError(t, err)
		orbit := Outer(poly, geom.Point{X: 1.37, Y: 1.91}, Area, 200)
		assert.Len(t, orbit.Points, 201)
		assert.Empty(t, orbit.Circles)
		for _, p := range orbit.Points {
			assert.False(t, poly.ContainsPoint(p), "n=%d p=%v", n, p)
		}
	}
}

func TestPentagonOrbitBounded(t *testing.T) {
	pentagon, err := table.RegularPolygon(5, 0.5)
	require.NoError(t, err)
	orbit := Outer(pentagon, geom.Point{X: -math.Sqrt2/2 - 0.0001, Y: 0}, Area, 10)
	require.Len(t, orbit.Points, 11)
	for _, p := range orbit.Points {
		assert.Less(t, p.Length(), 10.0)
	}
}

func TestLengthPreservesRadiusOnCircle(t *testing.T) {
	orbit := Outer(unitCircle(t), geom.Point{X: 0.4, Y: -2}, Length, 20)
	require.Len(t, orbit.Points, 21)
	require.Len(t, orbit.Circles, 20)
	r := orbit.Points[0].Length()
	for _, p := range orbit.Points {
		assert.InDelta(t, r, p.Length(), 1e-5)
	}
}

func TestLengthCircle(t *testing.T) {
	c, err := LengthCircle(unitCircle(t), geom.Point{X: 0, Y: -2}, false)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt(3), c.Center.X, 1e-6)
	assert.InDelta(t, -2, c.Center.Y, 1e-6)
	assert.InDelta(t, 3, c.Radius, 1e-6)
}

func TestDerivativeField(t *testing.T) {
	field := DerivativeField(square(t), Area, 5, 0.7)
	require.NotEmpty(t, field)
	for _, j := range field {
		assert.InDelta(t, 1, j.Det, 1e-6, "at %v", j.At)
		assert.False(t, square(t).ContainsPoint(j.At))
	}
	assert.Nil(t, DerivativeField(square(t), Area, 5, 0))
}

func TestInnerDisk(t *testing.T) {
	disk, err := table.NewSemidisk(0)
	require.NoError(t, err)
	for _, gen := range []Generator{Length, Area} {
		t.Run(gen.String(), func(t *testing.T) {
			chords := Inner(disk, InnerState{Time: 0.1, Angle: 1}, gen, 25)
			require.Len(t, chords, 25)
			for i, c := range chords {
				assert.InDelta(t, 2*math.Sin(1), c.Length(), 1e-6)
				assert.True(t, disk.PointOnBoundary(c.End))
				if i > 0 {
					assert.True(t, chords[i-1].End.Equal(c.Start))
				}
				state, ok := c.State(disk)
				require.True(t, ok)
				assert.InDelta(t, 1, state.Angle, 1e-6)
			}
		})
	}
}

func TestInnerCircleOval(t *testing.T) {
	chords := Inner(unitCircle(t), InnerState{Time: 0.3, Angle: 0.6}, Length, 10)
	require.Len(t, chords, 10)
	for _, c := range chords {
		assert.InDelta(t, 2*math.Sin(0.6), c.Length(), 1e-4)
	}
}

func TestInnerPolygon(t *testing.T) {
	pentagon, err := table.RegularPolygon(5, 1)
	require.NoError(t, err)
	cases := []struct {
		table table.Affine
		gen   Generator
	}{
		{square(t), Length},
		{pentagon, Length},
		{pentagon, Area},
	}
	for _, c := range cases {
		chords := Inner(c.table, InnerState{Time: 0.03, Angle: 0.9}, c.gen, 40)
		require.NotEmpty(t, chords)
		for _, chord := range chords {
			assert.True(t, c.table.PointOnBoundary(chord.Start))
			assert.True(t, c.table.PointOnBoundary(chord.End))
		}
	}
}

func TestInnerBadStart(t *testing.T) {
	sq := square(t)
	assert.Empty(t, Inner(sq, InnerState{Time: 0.1, Angle: 0}, Length, 5))
	assert.Empty(t, Inner(sq, InnerState{Time: 0.1, Angle: 4}, Length, 5))
	assert.Empty(t, Inner(sq, InnerState{Time: 0, Angle: 1}, Length, 5))
}

func TestSphericalOuter(t *testing.T) {
	sp, err := table.RegularSphericalPolygon(5, 0.4)
	require.NoError(t, err)
	start := sphere.FromSpherical(1.0, 0.3)
	orbit := SphericalOuter(sp, start, 30)
	require.Greater(t, len(orbit.Points), 1)
	require.Len(t, orbit.Pivots, len(orbit.Points)-1)
	for i, pivot := range orbit.Pivots {
		a, b := orbit.Points[i], orbit.Points[i+1]
		assert.InDelta(t, a.Distance(pivot), b.Distance(pivot), 1e-9)
		assert.False(t, sp.ContainsPoint(b))
	}

	next, _, err := SphericalStep(sp, start, false)
	require.NoError(t, err)
	back, _, err := SphericalStep(sp, next, true)
	require.NoError(t, err)
	assert.True(t, back.Equal(start))
}

func TestHyperbolicOuter(t *testing.T) {
	hp, err := table.RegularHyperbolicPolygon(5, 0.5)
	require.NoError(t, err)
	start := hyper.FromPolar(1.5, 0.2)
	orbit := HyperbolicOuter(hp, start, 10)
	require.Len(t, orbit.Points, 11)
	for i, pivot := range orbit.Pivots {
		a, b := orbit.Points[i], orbit.Points[i+1]
		assert.InDelta(t, a.Distance(pivot), b.Distance(pivot), 1e-6)
		assert.False(t, hp.ContainsPoint(b))
	}

	next, _, err := HyperbolicStep(hp, start, false)
	require.NoError(t, err)
	back, _, err := HyperbolicStep(hp, next, true)
	require.NoError(t, err)
	assert.True(t, back.Equal(start))
}

func TestHyperbolicInner(t *testing.T) {
	hp, err := table.RegularHyperbolicPolygon(4, 1)
	require.NoError(t, err)
	chords := HyperbolicInner(hp, InnerState{Time: 0.05, Angle: 1.1}, 20)
	require.NotEmpty(t, chords)
	for i, c := range chords {
		assert.True(t, hp.PointOnBoundary(c.End))
		if i > 0 {
			assert.True(t, chords[i-1].End.Equal(c.Start))
		}
	}
	assert.Empty(t, HyperbolicInner(hp, InnerState{Time: 0.05, Angle: -1}, 20))
}
