// Debug rendering of tables, orbits and preimages to PNG.
//
// This is for looking at results, not for publication: colors and sizes are
// fixed, and infinite rays are simply drawn off the edge of the picture.
package sketch

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const padding = 40

// Largest width or height of a rendered image, in pixels
const maxSize = 2048

type Sketch struct {
	// Pixels per unit. Reduced automatically to keep the image under maxSize.
	Scale    float64
	Outline  []geom.Point
	Points   []geom.Point
	Segments []geom.AffineRay
	Curves   [][]geom.Point
	Circles  []geom.Circle
}

func (s *Sketch) bounds() (min, max geom.Point) {
	min = geom.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(p geom.Point) {
		if !p.IsFinite() {
			return
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, p := range s.Outline {
		grow(p)
	}
	for _, p := range s.Points {
		grow(p)
	}
	for _, seg := range s.Segments {
		grow(seg.Start)
		if !seg.Infinite {
			grow(seg.End)
		}
	}
	for _, curve := range s.Curves {
		for _, p := range curve {
			grow(p)
		}
	}
	if math.IsInf(min.X, 1) {
		return geom.Point{X: -1, Y: -1}, geom.Point{X: 1, Y: 1}
	}
	return min, max
}

// Render draws everything onto a black background, with y pointing up.
func (s *Sketch) Render() *gg.Context {
	min, max := s.bounds()
	scale := s.Scale
	if scale <= 0 {
		scale = 100
	}
	extent := math.Max(max.X-min.X, max.Y-min.Y)
	if extent*scale > maxSize-2*padding {
		scale = (maxSize - 2*padding) / math.Max(extent, 1e-9)
	}

	width := int(scale*(max.X-min.X)) + padding*2
	height := int(scale*(max.Y-min.Y)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	// Long enough to leave the picture from anywhere inside it
	far := 2 * (extent + 2*padding/scale)

	c.SetLineWidth(1)
	c.SetRGBA(1, 0.4, 0.2, 0.8)
	for _, seg := range s.Segments {
		end := seg.End
		if seg.Infinite {
			end = seg.Start.Add(seg.Direction().Scale(far))
		}
		c.DrawLine(seg.Start.X, seg.Start.Y, end.X, end.Y)
		c.Stroke()
	}
	for _, curve := range s.Curves {
		drawPath(c, curve, false)
		c.Stroke()
	}

	c.SetRGBA(0.5, 0.5, 1, 0.6)
	for _, circle := range s.Circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}

	if len(s.Outline) > 0 {
		drawPath(c, s.Outline, true)
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}
	return c
}

func drawPath(c *gg.Context, points []geom.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	c.NewSubPath()
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if closed {
		c.ClosePath()
	}
}

func (s *Sketch) SavePNG(path string) error {
	return errors.Wrapf(s.Render().SavePNG(path), "failed to write %s", path)
}

func (s *Sketch) EncodePNG(w io.Writer) error {
	return errors.Wrap(s.Render().EncodePNG(w), "failed to encode png")
}

// Cat renders to a temporary file and prints it inline to an iTerm terminal.
func (s *Sketch) Cat(w io.Writer) error {
	f, err := os.CreateTemp("", "billiards-*.png")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(f.Name())
	f.Close()
	if err := s.SavePNG(f.Name()); err != nil {
		return err
	}
	imgcat.CatFile(f.Name(), w)
	return nil
}
