package orbit

import (
	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/sphere"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
)

type SphericalOrbit struct {
	Points []sphere.Point
	Pivots []sphere.Point
}

// The spherical outer billiard: rotate p by a half turn about the tangent
// vertex. Only the area generator is defined on the sphere.
func SphericalStep(t *table.SphericalPolygon, p sphere.Point, reverse bool) (sphere.Point, sphere.Point, error) {
	var pivot sphere.Point
	var err error
	if reverse {
		pivot, err = t.LeftTangentPoint(p)
	} else {
		pivot, err = t.RightTangentPoint(p)
	}
	if err != nil {
		return sphere.Point{}, sphere.Point{}, err
	}
	return p.ReflectThrough(pivot), pivot, nil
}

func SphericalOuter(t *table.SphericalPolygon, start sphere.Point, n int) SphericalOrbit {
	orbit := SphericalOrbit{Points: []sphere.Point{start}}
	p := start
	for i := 0; i < n; i++ {
		next, pivot, err := SphericalStep(t, p, false)
		if err == nil && next.Equal(p) {
			err = errors.Errorf("fixed point at %v", p)
		}
		if err != nil {
			dbg.Warnf("orbit", "spherical orbit stopped after %d steps: %v", i, err)
			break
		}
		orbit.Points = append(orbit.Points, next)
		orbit.Pivots = append(orbit.Pivots, pivot)
		p = next
	}
	return orbit
}
