package preimage

import (
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/table"
)

// PolygonStepper pulls back the area map's singular rays on a polygon. Each
// piece between slicing rays maps rigidly, by the point reflection through the
// vertex it sees on its left.
type PolygonStepper struct {
	table   *table.Polygon
	slicing []geom.AffineRay
	cfg     Config
}

func NewPolygonStepper(p *table.Polygon, cfg Config) *PolygonStepper {
	return &PolygonStepper{table: p, slicing: p.SlicingRays(), cfg: cfg.WithDefaults()}
}

func (s *PolygonStepper) Seeds() []geom.AffineRay {
	return s.table.SingularRays()
}

func (s *PolygonStepper) Step(frontier []geom.AffineRay) []geom.AffineRay {
	far := s.cfg.FarRadius * s.cfg.FarRadius
	tiny := s.cfg.TinyLength * s.cfg.TinyLength
	var next []geom.AffineRay
	for _, seg := range frontier {
		for _, piece := range slice(seg, s.slicing, s.cfg.SliceGap, 0) {
			if piece.Infinite {
				// Far out and heading away: every later preimage stays out there.
				if piece.Start.LengthSq() > far && piece.Direction().Dot(piece.Start) > 0 {
					continue
				}
			} else if piece.Mid().LengthSq() > far || piece.Start.DistanceSq(piece.End) < tiny {
				continue
			}
			pivot, err := s.table.LeftTangentPoint(piece.Mid())
			if err != nil {
				continue
			}
			next = append(next, piece.ReflectThrough(pivot))
		}
	}
	return next
}
