package preimage

import (
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/table"
)

// Hyperbolic pieces shorter than this in the Klein model are dropped.
const minKlein = 1e-6

// HyperbolicStepper pulls back the singular geodesic rays of the hyperbolic
// area map. Geodesics are straight in the Klein model, so slicing happens
// there.
type HyperbolicStepper struct {
	table   *table.HyperbolicPolygon
	slicing []geom.AffineRay
	cfg     Config
}

func NewHyperbolicStepper(hp *table.HyperbolicPolygon, cfg Config) *HyperbolicStepper {
	rays := hp.SlicingRays()
	slicing := make([]geom.AffineRay, len(rays))
	for i, r := range rays {
		slicing[i] = r.Klein()
	}
	return &HyperbolicStepper{table: hp, slicing: slicing, cfg: cfg.WithDefaults()}
}

func (s *HyperbolicStepper) Seeds() []hyper.Geodesic {
	return s.table.SingularRays()
}

func (s *HyperbolicStepper) Step(frontier []hyper.Geodesic) []hyper.Geodesic {
	var next []hyper.Geodesic
	for _, g := range frontier {
		for _, k := range slice(g.Klein(), s.slicing, s.cfg.SliceGap, 0) {
			if k.Length() < minKlein {
				continue
			}
			piece := hyper.Geodesic{
				Start: hyper.FromPlanar(k.Start, hyper.Klein),
				End:   hyper.FromPlanar(k.End, hyper.Klein),
			}
			pivot, err := s.table.LeftTangentPoint(piece.Mid())
			if err != nil {
				continue
			}
			next = append(next, piece.HalfTurn(pivot))
		}
	}
	return next
}
