package billiards

import (
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/internal"
	"github.com/osuushi/billiards/orbit"
	"github.com/osuushi/billiards/sphere"
	"github.com/pkg/errors"
)

// Start state of an orbit. Outer orbits start at Point, in planar
// coordinates. Inner orbits start at boundary time Time with chord angle
// Angle, measured from the boundary tangent.
type Start struct {
	Point geom.Point `yaml:"point"`
	Time  float64    `yaml:"time"`
	Angle float64    `yaml:"angle"`
}

type Trajectory struct {
	// Outer orbits: the orbit points, starting with the start point. Inner
	// orbits: the bounce points, so consecutive points are chord endpoints.
	Points []geom.Point
	// Tangent points used by each outer area step.
	Pivots []geom.Point
	// Auxiliary circles of the Euclidean outer length map.
	Circles []geom.Circle
	// Inner hyperbolic chords sampled along their geodesics, for drawing.
	Chords [][]geom.Point
}

// Samples per hyperbolic chord
const chordSamples = 32

// Orbit runs iterations steps of the billiard map from start. Orbits that hit
// a degenerate configuration stop early; the prefix is returned without error.
func Orbit(t *Table, start Start, gen orbit.Generator, duality orbit.Duality, iterations int) (result *Trajectory, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if iterations < 0 {
		return nil, errors.Errorf("iterations must not be negative, got %d", iterations)
	}
	switch {
	case t.affine != nil:
		return affineOrbit(t, start, gen, duality, iterations), nil
	case t.spherical != nil:
		if duality != orbit.OuterDuality || gen != orbit.Area {
			return nil, errors.Wrapf(ErrUnsupported, "spherical %v %v billiard", duality, gen)
		}
		o := orbit.SphericalOuter(t.spherical, sphere.FromStereographic(start.Point), iterations)
		return &Trajectory{Points: stereographic(o.Points), Pivots: stereographic(o.Pivots)}, nil
	case t.hyperbolic != nil:
		switch {
		case duality == orbit.OuterDuality && gen == orbit.Area:
			o := orbit.HyperbolicOuter(t.hyperbolic, hyper.FromPlanar(start.Point, hyper.Poincare), iterations)
			return &Trajectory{Points: poincare(o.Points), Pivots: poincare(o.Pivots)}, nil
		case duality == orbit.InnerDuality && gen == orbit.Length:
			chords := orbit.HyperbolicInner(t.hyperbolic, orbit.InnerState{Time: start.Time, Angle: start.Angle}, iterations)
			traj := &Trajectory{}
			for i, c := range chords {
				if i == 0 {
					traj.Points = append(traj.Points, c.Start.Planar(hyper.Poincare))
				}
				traj.Points = append(traj.Points, c.End.Planar(hyper.Poincare))
				traj.Chords = append(traj.Chords, c.Geodesic().Interpolate(chordSamples, hyper.Poincare))
			}
			return traj, nil
		}
		return nil, errors.Wrapf(ErrUnsupported, "hyperbolic %v %v billiard", duality, gen)
	}
	return nil, errors.New("empty table")
}

func affineOrbit(t *Table, start Start, gen orbit.Generator, duality orbit.Duality, iterations int) *Trajectory {
	if duality == orbit.InnerDuality {
		traj := &Trajectory{}
		chords := orbit.Inner(t.affine, orbit.InnerState{Time: start.Time, Angle: start.Angle}, gen, iterations)
		for i, c := range chords {
			if i == 0 {
				traj.Points = append(traj.Points, c.Start)
			}
			traj.Points = append(traj.Points, c.End)
		}
		return traj
	}
	o := orbit.Outer(t.affine, start.Point, gen, iterations)
	traj := &Trajectory{Points: o.Points, Circles: o.Circles}
	if gen == orbit.Area {
		for i := 1; i < len(o.Points); i++ {
			traj.Pivots = append(traj.Pivots, o.Points[i-1].Lerp(o.Points[i], 0.5))
		}
	}
	return traj
}

func stereographic(points []sphere.Point) []geom.Point {
	result := make([]geom.Point, len(points))
	for i, p := range points {
		result[i] = p.Stereographic()
	}
	return result
}

func poincare(points []hyper.Point) []geom.Point {
	result := make([]geom.Point, len(points))
	for i, p := range points {
		result[i] = p.Planar(hyper.Poincare)
	}
	return result
}
