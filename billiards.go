// Outer and inner billiards on Euclidean, spherical and hyperbolic tables.
//
// This package is a thin facade over the table, orbit and preimage packages.
// It builds a table from plain parameters, runs orbits and preimage
// computations on it, and resolves everything to planar coordinates:
// stereographic projection from the south pole for the sphere, and the
// Poincaré disk for the hyperbolic plane.
package billiards

import (
	"strings"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/internal"
	"github.com/osuushi/billiards/sphere"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
)

// Returned for combinations of geometry, duality and generator that have no
// billiard map.
var ErrUnsupported = errors.New("unsupported billiard")

type Geometry string

const (
	Euclidean  Geometry = "euclidean"
	Spherical  Geometry = "spherical"
	Hyperbolic Geometry = "hyperbolic"
)

type Kind string

const (
	// A regular polygon of N vertices and circumradius Radius, or the convex
	// polygon given by Vertices.
	PolygonKind Kind = "polygon"
	// Euclidean only: a regular N-gon with bulging sides, see table.Flexigon.
	FlexigonKind Kind = "flexigon"
	// Euclidean only: a disk cut by a chord, see table.Semidisk.
	SemidiskKind Kind = "semidisk"
	// Euclidean only: the superellipse |x/XScale|^P + |y|^P = 1.
	OvalKind Kind = "oval"
)

type Params struct {
	Geometry Geometry `yaml:"geometry"`
	Kind     Kind     `yaml:"kind"`
	N        int      `yaml:"n"`
	// Circumradius of a regular polygon. Spherical and hyperbolic radii are
	// distances on the surface.
	Radius float64 `yaml:"radius"`
	// When positive, a curved regular polygon gets the radius at which its
	// outer billiard tiles the surface with Tiling-gons, and Radius is ignored.
	Tiling int     `yaml:"tiling"`
	K      float64 `yaml:"k"`
	Beta   float64 `yaml:"beta"`
	P      float64 `yaml:"p"`
	XScale float64 `yaml:"x_scale"`
	// Explicit polygon vertices, counterclockwise, in planar coordinates.
	Vertices []geom.Point `yaml:"vertices"`
}

type Table struct {
	Params     Params
	affine     table.Affine
	spherical  *table.SphericalPolygon
	hyperbolic *table.HyperbolicPolygon
}

func (t *Table) Affine() (table.Affine, bool) {
	return t.affine, t.affine != nil
}

func (t *Table) Spherical() (*table.SphericalPolygon, bool) {
	return t.spherical, t.spherical != nil
}

func (t *Table) Hyperbolic() (*table.HyperbolicPolygon, bool) {
	return t.hyperbolic, t.hyperbolic != nil
}

func ParseGeometry(s string) (Geometry, error) {
	switch g := Geometry(strings.ToLower(s)); g {
	case Euclidean, Spherical, Hyperbolic:
		return g, nil
	case "affine", "":
		return Euclidean, nil
	}
	return "", errors.Errorf("unknown geometry %q", s)
}

// New builds a table. Invalid parameters fail with table.ErrInvalidTable.
func New(params Params) (result *Table, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	geometry, err := ParseGeometry(string(params.Geometry))
	if err != nil {
		return nil, err
	}
	params.Geometry = geometry
	if params.Kind == "" {
		params.Kind = PolygonKind
	}
	t := &Table{Params: params}
	switch geometry {
	case Euclidean:
		t.affine, err = newAffine(params)
	case Spherical:
		t.spherical, err = newSpherical(params)
	case Hyperbolic:
		t.hyperbolic, err = newHyperbolic(params)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func newAffine(p Params) (table.Affine, error) {
	switch p.Kind {
	case PolygonKind:
		if len(p.Vertices) > 0 {
			return table.NewPolygon(p.Vertices)
		}
		return table.RegularPolygon(p.N, p.Radius)
	case FlexigonKind:
		return table.NewFlexigon(p.N, p.K)
	case SemidiskKind:
		return table.NewSemidisk(p.Beta)
	case OvalKind:
		xScale := p.XScale
		if xScale == 0 {
			xScale = 1
		}
		return table.NewOval(p.P, xScale)
	}
	return nil, errors.Wrapf(ErrUnsupported, "no %s table of kind %q", p.Geometry, p.Kind)
}

func newSpherical(p Params) (*table.SphericalPolygon, error) {
	if p.Kind != PolygonKind {
		return nil, errors.Wrapf(ErrUnsupported, "no spherical table of kind %q", p.Kind)
	}
	if len(p.Vertices) > 0 {
		vertices := make([]sphere.Point, len(p.Vertices))
		for i, v := range p.Vertices {
			vertices[i] = sphere.FromStereographic(v)
		}
		return table.NewSphericalPolygon(vertices)
	}
	r := p.Radius
	if p.Tiling > 0 {
		var ok bool
		if r, ok = table.SphericalTilingRadius(p.N, p.Tiling); !ok {
			return nil, errors.Wrapf(table.ErrInvalidTable, "%d-gons and %d-gons do not tile the sphere", p.N, p.Tiling)
		}
	}
	return table.RegularSphericalPolygon(p.N, r)
}

func newHyperbolic(p Params) (*table.HyperbolicPolygon, error) {
	if p.Kind != PolygonKind {
		return nil, errors.Wrapf(ErrUnsupported, "no hyperbolic table of kind %q", p.Kind)
	}
	if len(p.Vertices) > 0 {
		vertices := make([]hyper.Point, len(p.Vertices))
		for i, v := range p.Vertices {
			vertices[i] = hyper.FromPlanar(v, hyper.Poincare)
		}
		return table.NewHyperbolicPolygon(vertices)
	}
	r := p.Radius
	if p.Tiling > 0 {
		var ok bool
		if r, ok = table.HyperbolicTilingRadius(p.N, p.Tiling); !ok {
			return nil, errors.Wrapf(table.ErrInvalidTable, "%d-gons and %d-gons do not tile the hyperbolic plane", p.N, p.Tiling)
		}
	}
	return table.RegularHyperbolicPolygon(p.N, r)
}

// Outline of the table sampled at n points, in planar coordinates. Polygons
// return their vertices.
func Shape(t *Table, n int) (result []geom.Point, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if n < 3 {
		return nil, errors.Errorf("need at least 3 samples, got %d", n)
	}
	switch {
	case t.affine != nil:
		return t.affine.Shape(n), nil
	case t.spherical != nil:
		samples := t.spherical.Shape(n)
		points := make([]geom.Point, len(samples))
		for i, p := range samples {
			points[i] = p.Stereographic()
		}
		return points, nil
	case t.hyperbolic != nil:
		return t.hyperbolic.Shape(n, hyper.Poincare), nil
	}
	return nil, errors.New("empty table")
}
