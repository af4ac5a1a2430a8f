package preimage

import (
	"sort"

	"github.com/osuushi/billiards/sphere"
	"github.com/osuushi/billiards/table"
)

// Spherical pieces shorter than this, in radians, are dropped.
const minArc = 1e-6

// SphericalStepper pulls back the singular arcs of the spherical area map by
// half turns about tangent vertices.
type SphericalStepper struct {
	table   *table.SphericalPolygon
	slicing []sphere.Arc
	cfg     Config
}

func NewSphericalStepper(sp *table.SphericalPolygon, cfg Config) *SphericalStepper {
	return &SphericalStepper{table: sp, slicing: sp.SlicingArcs(), cfg: cfg.WithDefaults()}
}

func (s *SphericalStepper) Seeds() []sphere.Arc {
	return s.table.SingularArcs()
}

func (s *SphericalStepper) Step(frontier []sphere.Arc) []sphere.Arc {
	var next []sphere.Arc
	for _, arc := range frontier {
		for _, piece := range s.slice(arc) {
			if piece.Length() < minArc {
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

func (s *SphericalStepper) slice(arc sphere.Arc) []sphere.Arc {
	cuts := []sphere.Point{arc.Start, arc.End}
	for _, slicing := range s.slicing {
		if p, err := slicing.Intersect(arc); err == nil {
			cuts = append(cuts, p)
		}
	}
	if len(cuts) == 2 {
		return []sphere.Arc{arc}
	}
	sort.Slice(cuts, func(i, j int) bool {
		return arc.Start.Distance(cuts[i]) < arc.Start.Distance(cuts[j])
	})
	var pieces []sphere.Arc
	for i := 0; i+1 < len(cuts); i++ {
		if cuts[i].Distance(cuts[i+1]) < s.cfg.SliceGap {
			continue
		}
		if piece, err := sphere.NewArc(cuts[i], cuts[i+1]); err == nil {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}
