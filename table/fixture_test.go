package table

import (
	"embed"
	"log"
	"testing"

	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (*Polygon, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()
	return LoadPolygonSVG(fixture)
}

func TestLoadFixtures(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		square, err := LoadFixture("square")
		require.NoError(t, err)
		assert.Equal(t, 4, square.Len())
		assert.InDelta(t, 4, signedArea(square.Vertices()), 1e-12)
		right, err := square.RightTangentPoint(geom.Point{X: 3})
		require.NoError(t, err)
		assert.True(t, right.Equal(geom.Point{X: 1, Y: 1}))
	})

	t.Run("kite", func(t *testing.T) {
		kite, err := LoadFixture("kite")
		require.NoError(t, err)
		assert.Equal(t, 4, kite.Len())
		assert.True(t, kite.PointOnBoundary(geom.Point{X: 0, Y: 1}))
		assert.InDelta(t, 1, kite.Radius(), 1e-6)
		assert.Len(t, kite.Corners(), 4)
		assert.False(t, kite.ContainsPoint(geom.Point{X: 0, Y: -0.7}))
		assert.True(t, kite.ContainsPoint(geom.Point{X: 0, Y: -0.5}))
	})

	t.Run("concave", func(t *testing.T) {
		_, err := LoadFixture("concave")
		assert.True(t, errors.Is(err, ErrInvalidTable))
	})
}
