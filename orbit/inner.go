package orbit

import (
	"math"

	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
)

// A point on the boundary together with the angle, in (0, π), between the
// boundary tangent and the outgoing chord.
type InnerState struct {
	Time  float64
	Angle float64
}

type Chord struct {
	Start     geom.Point
	End       geom.Point
	StartTime float64
	EndTime   float64
}

func (c Chord) Length() float64 {
	return c.Start.Distance(c.End)
}

// Offset used to decide which way along a tangent line the table lies.
const sideProbe = 1e-7

func checkInnerState(s InnerState) error {
	if !(s.Angle > 0 && s.Angle < math.Pi) {
		return errors.Wrapf(geom.ErrDegenerateGeometry, "inner angle %v does not point into the table", s.Angle)
	}
	return nil
}

// Inner iterates the inner billiard n times from start and returns the
// chords traversed. The length generator is the classical reflection law and
// the area generator is the symplectic billiard.
func Inner(t table.Affine, start InnerState, gen Generator, n int) []Chord {
	if err := checkInnerState(start); err != nil {
		dbg.Warnf("orbit", "inner orbit not started: %v", err)
		return nil
	}
	h, ok := t.TangentHeading(start.Time)
	if !ok {
		dbg.Warnf("orbit", "inner orbit starts at a corner (time %v)", start.Time)
		return nil
	}
	first, err := chordFrom(t, start.Time, h+start.Angle)
	if err != nil {
		dbg.Warnf("orbit", "inner orbit not started: %v", err)
		return nil
	}
	chords := []Chord{first}
	for len(chords) < n {
		cur := chords[len(chords)-1]
		var next Chord
		switch gen {
		case Length:
			next, err = reflectChord(t, cur)
		case Area:
			next, err = symplecticChord(t, cur)
		default:
			err = errors.Errorf("unknown generator %v", gen)
		}
		if err == nil && next.End.Equal(next.Start) {
			err = errors.Wrapf(geom.ErrDegenerateGeometry, "chord from %v has no length", next.Start)
		}
		if err != nil {
			dbg.Warnf("orbit", "inner %v orbit stopped after %d chords: %v", gen, len(chords), err)
			break
		}
		chords = append(chords, next)
	}
	return chords
}

func chordFrom(t table.Affine, time, heading float64) (Chord, error) {
	end, err := t.CastRay(time, heading)
	if err != nil {
		return Chord{}, err
	}
	return Chord{
		Start:     t.Point(time),
		End:       t.Point(end),
		StartTime: time,
		EndTime:   end,
	}, nil
}

// The classical reflection law: the outgoing chord makes the same angle with
// the tangent as the incoming one.
func reflectChord(t table.Affine, c Chord) (Chord, error) {
	h, ok := t.TangentHeading(c.EndTime)
	if !ok {
		return Chord{}, errors.Wrapf(geom.ErrDegenerateGeometry, "chord hits a corner at %v", c.End)
	}
	incoming := c.End.Sub(c.Start).Angle()
	return chordFrom(t, c.EndTime, h+geom.NormalizeAngle(h-incoming, 0))
}

// The symplectic billiard: (x, y) goes to (y, z) where z - x is parallel to
// the tangent at y.
func symplecticChord(t table.Affine, c Chord) (Chord, error) {
	h, ok := t.TangentHeading(c.EndTime)
	if !ok {
		return Chord{}, errors.Wrapf(geom.ErrDegenerateGeometry, "chord hits a corner at %v", c.End)
	}
	u := geom.Polar(1, h)
	if !t.ContainsPoint(c.Start.Add(u.Scale(sideProbe))) {
		h += math.Pi
	}
	z, err := t.CastRay(c.StartTime, h)
	if err != nil {
		return Chord{}, err
	}
	return Chord{
		Start:     c.End,
		End:       t.Point(z),
		StartTime: c.EndTime,
		EndTime:   z,
	}, nil
}

// The angle between the boundary tangent at the chord start and the chord.
func (c Chord) State(t table.Affine) (InnerState, bool) {
	h, ok := t.TangentHeading(c.StartTime)
	if !ok {
		return InnerState{}, false
	}
	return InnerState{
		Time:  c.StartTime,
		Angle: geom.NormalizeAngle(c.End.Sub(c.Start).Angle()-h, 0),
	}, true
}
