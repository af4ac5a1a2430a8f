package sketch

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/billiards/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []geom.Point {
	return []geom.Point{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
}

func TestBounds(t *testing.T) {
	s := &Sketch{
		Outline: square(),
		Points:  []geom.Point{{X: 3, Y: 0.5}},
		Segments: []geom.AffineRay{
			{Start: geom.Point{X: 0, Y: -4}, End: geom.Point{X: 0, Y: -100}, Infinite: true},
		},
	}
	min, max := s.bounds()
	assert.Equal(t, geom.Point{X: -1, Y: -4}, min)
	assert.Equal(t, geom.Point{X: 3, Y: 1}, max)

	min, max = (&Sketch{}).bounds()
	assert.Equal(t, geom.Point{X: -1, Y: -1}, min)
	assert.Equal(t, geom.Point{X: 1, Y: 1}, max)
}

func TestRenderSize(t *testing.T) {
	s := &Sketch{Scale: 50, Outline: square()}
	c := s.Render()
	assert.Equal(t, 100+2*padding, c.Width())
	assert.Equal(t, 100+2*padding, c.Height())

	huge := &Sketch{Scale: 1000, Outline: square(), Points: []geom.Point{{X: 500, Y: 0}}}
	assert.LessOrEqual(t, huge.Render().Width(), maxSize)
}

func TestSavePNG(t *testing.T) {
	s := &Sketch{
		Scale:   40,
		Outline: square(),
		Points:  []geom.Point{{X: 2, Y: 2}, {X: -2, Y: 2}},
		Segments: []geom.AffineRay{
			{Start: geom.Point{X: 1, Y: -1}, End: geom.Point{X: 1, Y: -2}, Infinite: true},
			{Start: geom.Point{X: -3, Y: -1}, End: geom.Point{X: -3, Y: 1}},
		},
		Curves:  [][]geom.Point{{{X: 0, Y: 2}, {X: 0.5, Y: 2.5}, {X: 1, Y: 2}}},
		Circles: []geom.Circle{{Center: geom.Point{X: 3, Y: -2}, Radius: 1}},
	}
	path := filepath.Join(t.TempDir(), "sketch.png")
	require.NoError(t, s.SavePNG(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, s.Render().Width(), img.Bounds().Dx())

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	assert.NotZero(t, buf.Len())
}
