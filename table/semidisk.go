package table

import (
	"math"

	"github.com/osuushi/billiards/geom"
)

// The unit disk cut by a horizontal chord. The arc spans 2(π - β) and the flat
// runs along y = -cos β. β = 0 is the full disk.
type Semidisk struct {
	boundary
	Beta float64
}

func NewSemidisk(beta float64) (*Semidisk, error) {
	if !(beta >= 0 && beta < math.Pi) {
		return nil, invalidf("semidisk angle must be in [0, π), got %v", beta)
	}
	unit := geom.Circle{Radius: 1}
	pieces := []piece{arcPiece(unit, beta-math.Pi/2, 2*(math.Pi-beta))}
	if beta > 0 {
		x := math.Sin(beta)
		y := -math.Cos(beta)
		pieces = append(pieces, segmentPiece(geom.Point{X: -x, Y: y}, geom.Point{X: x, Y: y}))
	}
	return &Semidisk{boundary: newBoundary(pieces), Beta: beta}, nil
}

// Fraction of the boundary taken by the arc.
func (s *Semidisk) CurveTime() float64 {
	return s.pieces[0].length / s.perimeter
}

// Fraction of the boundary taken by the flat.
func (s *Semidisk) FlatTime() float64 {
	if len(s.pieces) == 1 {
		return 0
	}
	return s.pieces[1].length / s.perimeter
}

func (s *Semidisk) Perimeter() float64 {
	return s.perimeter
}
