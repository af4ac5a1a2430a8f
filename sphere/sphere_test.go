package sphere

import (
	"math"
	"testing"

	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectThrough(t *testing.T) {
	p := NewPoint(1, 0, 0)
	pivot := NewPoint(1, 1, 0)
	r := p.ReflectThrough(pivot)
	assert.True(t, r.Equal(NewPoint(0, 1, 0)), "got %v", r)
	// Reflection is an involution and keeps the distance to the pivot.
	assert.True(t, r.ReflectThrough(pivot).Equal(p))
	assert.InDelta(t, p.Distance(pivot), r.Distance(pivot), geom.Tolerance)
}

func TestLerp(t *testing.T) {
	a := NewPoint(1, 0, 0)
	b := NewPoint(0, 1, 0)
	mid := a.Lerp(b, 0.5)
	assert.True(t, mid.Equal(NewPoint(1, 1, 0)))
	assert.InDelta(t, math.Pi/6, a.Distance(a.Lerp(b, 1.0/3)), geom.Tolerance)
}

func TestStereographic(t *testing.T) {
	assert.True(t, North.Stereographic().Equal(geom.Point{}))
	assert.True(t, NewPoint(1, 0, 0).Stereographic().Equal(geom.Point{X: 1}))
	p := FromSpherical(1.1, 2.3)
	assert.True(t, FromStereographic(p.Stereographic()).Equal(p))
}

func TestArc(t *testing.T) {
	arc, err := NewArc(NewPoint(1, 0, 0), NewPoint(0, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, arc.Length(), geom.Tolerance)
	assert.True(t, arc.PointOnLeft(North))
	assert.False(t, arc.PointOnLeft(North.Antipode()))
	assert.True(t, arc.ContainsPoint(arc.Mid()))
	assert.False(t, arc.ContainsPoint(arc.Mid().Antipode()))
	tangent := arc.TangentAt(arc.Start)
	assert.InDelta(t, 1, tangent.Y, geom.Tolerance)

	t.Run("antipodal endpoints", func(t *testing.T) {
		_, err := NewArc(North, North.Antipode())
		assert.True(t, errors.Is(err, geom.ErrDegenerateGeometry))
	})
}

func TestArcIntersect(t *testing.T) {
	equator, err := NewArc(NewPoint(1, -1, 0), NewPoint(1, 1, 0))
	require.NoError(t, err)
	meridian, err := NewArc(NewPoint(1, 0, -1), NewPoint(1, 0, 1))
	require.NoError(t, err)
	p, err := equator.Intersect(meridian)
	require.NoError(t, err)
	assert.True(t, p.Equal(NewPoint(1, 0, 0)))

	t.Run("disjoint", func(t *testing.T) {
		far, err := NewArc(NewPoint(-1, 0, -1), NewPoint(-1, 0.1, 1))
		require.NoError(t, err)
		_, err = equator.Intersect(far)
		assert.True(t, errors.Is(err, ErrNoIntersection))
	})

	t.Run("same great circle", func(t *testing.T) {
		other, err := NewArc(NewPoint(0, 1, 0), NewPoint(-1, 1, 0))
		require.NoError(t, err)
		_, err = equator.Intersect(other)
		assert.True(t, errors.Is(err, geom.ErrDegenerateGeometry))
	})
}
