package billiards

import (
	"context"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/hyper"
	"github.com/osuushi/billiards/internal"
	"github.com/osuushi/billiards/orbit"
	"github.com/osuushi/billiards/preimage"
	"github.com/osuushi/billiards/sphere"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
)

// Samples per curved preimage arc
const arcSamples = 16

type PreimageRequest struct {
	Generator orbit.Generator
	// Absolute generation limit. Generation 0, the singular set itself, is
	// always included.
	Iterations int
	// Keep only generations that are multiples of Interval when it exceeds 1.
	Interval int
	Config   preimage.Config
	// Continue an earlier run on the same table and generator.
	From *Continuation
}

// Where a preimage run stopped. It is only valid for the table and generator
// that produced it.
type Continuation struct {
	table      *Table
	generator  orbit.Generator
	affine     *preimage.Cursor[geom.AffineRay]
	spherical  *preimage.Cursor[sphere.Arc]
	hyperbolic *preimage.Cursor[hyper.Geodesic]
}

func (c *Continuation) Generation() int {
	switch {
	case c.affine != nil:
		return c.affine.Generation
	case c.spherical != nil:
		return c.spherical.Generation
	case c.hyperbolic != nil:
		return c.hyperbolic.Generation
	}
	return 0
}

type Singularities struct {
	// Euclidean preimages. Infinite pieces are rays.
	Segments []geom.AffineRay
	// Spherical and hyperbolic preimages, each sampled along its arc in planar
	// coordinates.
	Curves [][]geom.Point
	// The edges of the antipodal polygon, which the spherical map also cannot
	// cross.
	Extras [][]geom.Point
	// Segment count per generation.
	Counts       []int
	Continuation *Continuation
	Complete     bool
}

// Preimages computes the preimages of the singular set of the outer billiard
// map. When ctx is cancelled, the partial result is returned together with the
// context's error, and its Continuation can be passed back to resume.
func Preimages(ctx context.Context, t *Table, req PreimageRequest) (result *Singularities, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	cfg := req.Config.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if req.Iterations < 0 {
		return nil, errors.Errorf("iterations must not be negative, got %d", req.Iterations)
	}
	if req.From != nil && (req.From.table != t || req.From.generator != req.Generator) {
		return nil, errors.New("continuation belongs to a different table or generator")
	}

	switch {
	case t.affine != nil:
		var st preimage.Stepper[geom.AffineRay]
		if polygon, ok := t.affine.(*table.Polygon); ok && req.Generator == orbit.Area {
			st = preimage.NewPolygonStepper(polygon, cfg)
		} else {
			st = preimage.NewPointwiseStepper(t.affine, req.Generator, cfg)
		}
		res, err := run(ctx, st, continuation(req.From, func(c *Continuation) *preimage.Cursor[geom.AffineRay] { return c.affine }), req)
		out := &Singularities{Segments: res.Segments, Counts: res.Counts, Complete: res.Complete}
		out.Continuation = &Continuation{table: t, generator: req.Generator, affine: &res.Cursor}
		return out, err

	case t.spherical != nil:
		if req.Generator != orbit.Area {
			return &Singularities{Complete: true}, nil
		}
		st := preimage.NewSphericalStepper(t.spherical, cfg)
		res, err := run[sphere.Arc](ctx, st, continuation(req.From, func(c *Continuation) *preimage.Cursor[sphere.Arc] { return c.spherical }), req)
		out := &Singularities{Counts: res.Counts, Complete: res.Complete}
		for _, arc := range res.Segments {
			out.Curves = append(out.Curves, sampleArc(arc))
		}
		for _, arc := range t.spherical.AntipodalEdges() {
			out.Extras = append(out.Extras, sampleArc(arc))
		}
		out.Continuation = &Continuation{table: t, generator: req.Generator, spherical: &res.Cursor}
		return out, err

	case t.hyperbolic != nil:
		if req.Generator != orbit.Area {
			return nil, errors.Wrapf(ErrUnsupported, "hyperbolic %v preimages", req.Generator)
		}
		st := preimage.NewHyperbolicStepper(t.hyperbolic, cfg)
		res, err := run[hyper.Geodesic](ctx, st, continuation(req.From, func(c *Continuation) *preimage.Cursor[hyper.Geodesic] { return c.hyperbolic }), req)
		out := &Singularities{Counts: res.Counts, Complete: res.Complete}
		for _, g := range res.Segments {
			out.Curves = append(out.Curves, g.Interpolate(arcSamples, hyper.Poincare))
		}
		out.Continuation = &Continuation{table: t, generator: req.Generator, hyperbolic: &res.Cursor}
		return out, err
	}
	return nil, errors.New("empty table")
}

func continuation[S any](c *Continuation, get func(*Continuation) *preimage.Cursor[S]) *preimage.Cursor[S] {
	if c == nil {
		return nil
	}
	return get(c)
}

func run[S any](ctx context.Context, st preimage.Stepper[S], from *preimage.Cursor[S], req PreimageRequest) (preimage.Result[S], error) {
	if from != nil {
		return preimage.Resume(ctx, st, *from, req.Iterations, req.Interval)
	}
	return preimage.Run(ctx, st, req.Iterations, req.Interval)
}

func sampleArc(arc sphere.Arc) []geom.Point {
	points := make([]geom.Point, arcSamples+1)
	for i := range points {
		points[i] = arc.Lerp(float64(i) / arcSamples).Stereographic()
	}
	return points
}
