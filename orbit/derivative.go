package orbit

import (
	"math"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/table"
)

// Finite difference step for the Jacobian.
const derivativeDelta = 1e-6

// The Jacobian of the one-step outer map at a point, reduced to its
// determinant and the headings of the images of the unit x and y vectors.
type Jacobian struct {
	At   geom.Point
	Det  float64
	RotX float64
	RotY float64
}

// DerivativeField samples the Jacobian of the outer map on the square grid
// [-bound, bound]² with the given spacing. Points on or inside the table, and
// points where the map fails or collapses, are skipped.
func DerivativeField(t table.Affine, gen Generator, bound, step float64) []Jacobian {
	if step <= 0 || bound < 0 {
		return nil
	}
	n := int(math.Floor(2*bound/step)) + 1
	var field []Jacobian
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := geom.Point{X: -bound + float64(i)*step, Y: -bound + float64(j)*step}
			if t.ContainsPoint(p) || t.PointOnBoundary(p) {
				continue
			}
			if jac, ok := jacobianAt(t, gen, p); ok {
				field = append(field, jac)
			}
		}
	}
	return field
}

func jacobianAt(t table.Affine, gen Generator, p geom.Point) (Jacobian, bool) {
	f0, err := OuterStep(t, p, gen, false)
	if err != nil {
		return Jacobian{}, false
	}
	fx, err := OuterStep(t, p.Add(geom.Point{X: derivativeDelta}), gen, false)
	if err != nil {
		return Jacobian{}, false
	}
	fy, err := OuterStep(t, p.Add(geom.Point{Y: derivativeDelta}), gen, false)
	if err != nil {
		return Jacobian{}, false
	}
	dx := fx.Sub(f0).Scale(1 / derivativeDelta)
	dy := fy.Sub(f0).Scale(1 / derivativeDelta)
	det := dx.Cross(dy)
	if math.Abs(det) < 1e-7 {
		return Jacobian{}, false
	}
	return Jacobian{At: p, Det: det, RotX: dx.Angle(), RotY: dy.Angle()}, true
}
