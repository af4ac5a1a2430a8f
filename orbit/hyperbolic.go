package orbit

import (
	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
)

type HyperbolicOrbit struct {
	Points []hyper.Point
	Pivots []hyper.Point
}

type HyperChord struct {
	Start     hyper.Point
	End       hyper.Point
	StartTime float64
	EndTime   float64
}

func (c HyperChord) Geodesic() hyper.Geodesic {
	return hyper.Geodesic{Start: c.Start, End: c.End}
}

// The hyperbolic outer billiard: a half turn about the tangent vertex.
func HyperbolicStep(t *table.HyperbolicPolygon, p hyper.Point, reverse bool) (hyper.Point, hyper.Point, error) {
	var pivot hyper.Point
	var err error
	if reverse {
		pivot, err = t.LeftTangentPoint(p)
	} else {
		pivot, err = t.RightTangentPoint(p)
	}
	if err != nil {
		return hyper.Point{}, hyper.Point{}, err
	}
	return p.HalfTurn(pivot), pivot, nil
}

func HyperbolicOuter(t *table.HyperbolicPolygon, start hyper.Point, n int) HyperbolicOrbit {
	orbit := HyperbolicOrbit{Points: []hyper.Point{start}}
	p := start
	for i := 0; i < n; i++ {
		next, pivot, err := HyperbolicStep(t, p, false)
		if err == nil && (next.Equal(p) || next.IsIdeal()) {
			err = errors.Errorf("degenerate step from %v", p.Poincare())
		}
		if err != nil {
			dbg.Warnf("orbit", "hyperbolic orbit stopped after %d steps: %v", i, err)
			break
		}
		orbit.Points = append(orbit.Points, next)
		orbit.Pivots = append(orbit.Pivots, pivot)
		p = next
	}
	return orbit
}

// HyperbolicInner follows geodesic chords under the reflection law. Angles are
// measured in the Poincaré model, which is conformal.
func HyperbolicInner(t *table.HyperbolicPolygon, start InnerState, n int) []HyperChord {
	if err := checkInnerState(start); err != nil {
		dbg.Warnf("orbit", "hyperbolic inner orbit not started: %v", err)
		return nil
	}
	h, ok := t.TangentHeading(start.Time)
	if !ok {
		dbg.Warnf("orbit", "hyperbolic inner orbit starts at a corner (time %v)", start.Time)
		return nil
	}
	var chords []HyperChord
	time, heading := start.Time, h+start.Angle
	for len(chords) < n {
		chord, err := hyperChordFrom(t, time, heading)
		if err == nil && chord.End.Equal(chord.Start) {
			err = errors.Wrapf(geom.ErrDegenerateGeometry, "chord from %v has no length", chord.Start.Poincare())
		}
		if err != nil {
			dbg.Warnf("orbit", "hyperbolic inner orbit stopped after %d chords: %v", len(chords), err)
			break
		}
		chords = append(chords, chord)

		h, ok := t.TangentHeading(chord.EndTime)
		if !ok {
			dbg.Warnf("orbit", "hyperbolic inner orbit hit a corner after %d chords", len(chords))
			break
		}
		incoming := chord.End.HeadingTo(chord.Start.IdealInDirection(heading))
		time, heading = chord.EndTime, h+geom.NormalizeAngle(h-incoming, 0)
	}
	return chords
}

func hyperChordFrom(t *table.HyperbolicPolygon, time, heading float64) (HyperChord, error) {
	end, err := t.CastRay(time, heading)
	if err != nil {
		return HyperChord{}, err
	}
	return HyperChord{
		Start:     t.Point(time),
		End:       t.Point(end),
		StartTime: time,
		EndTime:   end,
	}, nil
}
