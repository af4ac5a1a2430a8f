package preimage

import (
	"math"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/orbit"
	"github.com/osuushi/billiards/table"
)

// PointwiseStepper handles maps that do not send segments to segments: the
// length map on any table, and the area map on tables with curved sides.
// Seeds are discretized into short pieces and each piece is mapped through its
// endpoints.
type PointwiseStepper struct {
	table   table.Affine
	gen     orbit.Generator
	corners []table.Corner
	slicing []geom.AffineRay
	cfg     Config
}

func NewPointwiseStepper(t table.Affine, gen orbit.Generator, cfg Config) *PointwiseStepper {
	corners := t.Corners()
	slicing := make([]geom.AffineRay, len(corners))
	for i, c := range corners {
		slicing[i] = geom.AffineRay{Start: c.Point, End: c.Point.Add(geom.Polar(1, c.In)), Infinite: true}
	}
	return &PointwiseStepper{table: t, gen: gen, corners: corners, slicing: slicing, cfg: cfg.WithDefaults()}
}

// Each corner's singular ray runs backward along the side leaving it.
func (s *PointwiseStepper) Seeds() []geom.AffineRay {
	dl := s.cfg.dl()
	var seeds []geom.AffineRay
	for _, c := range s.corners {
		dir := geom.Polar(1, c.Out+math.Pi)
		for j := 1; j < s.cfg.Pieces; j++ {
			seeds = append(seeds, geom.AffineRay{
				Start: c.Point.Add(dir.Scale(float64(j) * dl)),
				End:   c.Point.Add(dir.Scale(float64(j+1) * dl)),
			})
		}
	}
	return seeds
}

func (s *PointwiseStepper) Step(frontier []geom.AffineRay) []geom.AffineRay {
	dl := s.cfg.dl()
	far := s.cfg.Length * s.cfg.Length
	var next, split []geom.AffineRay
	for _, seg := range frontier {
		for _, piece := range slice(seg, s.slicing, s.cfg.SliceGap, s.cfg.Buffer) {
			if piece.Mid().LengthSq() > far {
				continue
			}
			l := piece.Length()
			if l < s.cfg.MinFactor*dl || l > s.cfg.MaxFactor*dl {
				continue
			}
			if l > s.cfg.SplitFactor*dl {
				n := int(math.Ceil(l / dl))
				for j := 0; j < n; j++ {
					split = append(split, geom.AffineRay{
						Start: piece.Start.Lerp(piece.End, float64(j)/float64(n)),
						End:   piece.Start.Lerp(piece.End, float64(j+1)/float64(n)),
					})
				}
				continue
			}
			if mapped, ok := s.pullBack(piece); ok {
				next = append(next, mapped)
			}
		}
	}
	for _, piece := range split {
		if mapped, ok := s.pullBack(piece); ok {
			next = append(next, mapped)
		}
	}
	return next
}

func (s *PointwiseStepper) pullBack(piece geom.AffineRay) (geom.AffineRay, bool) {
	start, err := orbit.OuterStep(s.table, piece.Start, s.gen, true)
	if err != nil {
		return geom.AffineRay{}, false
	}
	end, err := orbit.OuterStep(s.table, piece.End, s.gen, true)
	if err != nil {
		return geom.AffineRay{}, false
	}
	return geom.AffineRay{Start: start, End: end}, true
}
