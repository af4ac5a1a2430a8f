package preimage

import (
	"math"
	"sort"

	"github.com/osuushi/billiards/geom"
)

// Cut seg wherever it crosses one of the slicing rays. Cuts closer than gap
// are merged, and each piece is pulled back by buffer from the cuts (but not
// from the ends of seg). The last piece of an infinite seg is infinite.
func slice(seg geom.AffineRay, slicing []geom.AffineRay, gap, buffer float64) []geom.AffineRay {
	dir := seg.Direction()
	end := seg.Length()
	cuts := []float64{0}
	for _, s := range slicing {
		if x, ok := seg.Intersect(s); ok {
			if d := x.Sub(seg.Start).Dot(dir); d > 0 && d < end {
				cuts = append(cuts, d)
			}
		}
	}
	sort.Float64s(cuts)
	cuts = append(cuts, end)

	var pieces []geom.AffineRay
	last := len(cuts) - 2
	for i := 0; i <= last; i++ {
		a, b := cuts[i], cuts[i+1]
		if b-a < gap {
			continue
		}
		if i > 0 {
			a += buffer
		}
		start := seg.Start.Add(dir.Scale(a))
		if math.IsInf(b, 1) {
			pieces = append(pieces, geom.AffineRay{Start: start, End: start.Add(dir), Infinite: true})
			continue
		}
		if i < last {
			b -= buffer
		}
		pieces = append(pieces, geom.AffineRay{Start: start, End: seg.Start.Add(dir.Scale(b))})
	}
	return pieces
}
