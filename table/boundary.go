package table

import (
	"math"
	"sort"

	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/internal"
	"github.com/pkg/errors"
)

// Tolerances for support tests and ray casting.
const (
	supportTolerance = 1e-9
	rayEpsilon       = 1e-9
)

// A straight segment or a counterclockwise circular arc of a boundary.
type piece struct {
	start, end geom.Point
	arc        bool
	circle     geom.Circle
	a0, sweep  float64
	length     float64
}

func segmentPiece(a, b geom.Point) piece {
	return piece{start: a, end: b, length: a.Distance(b)}
}

func arcPiece(c geom.Circle, a0, sweep float64) piece {
	return piece{
		start:  c.Point(a0),
		end:    c.Point(a0 + sweep),
		arc:    true,
		circle: c,
		a0:     a0,
		sweep:  sweep,
		length: c.Radius * sweep,
	}
}

func (pc piece) at(s float64) geom.Point {
	if pc.arc {
		return pc.circle.Point(pc.a0 + s*pc.sweep)
	}
	return pc.start.Lerp(pc.end, s)
}

func (pc piece) heading(s float64) float64 {
	if pc.arc {
		return pc.a0 + s*pc.sweep + math.Pi/2
	}
	return pc.end.Sub(pc.start).Angle()
}

// Fraction along the piece at which p lies.
func (pc piece) locate(p geom.Point) (float64, bool) {
	if pc.arc {
		if !pc.circle.PointOnBoundary(p) {
			return 0, false
		}
		return pc.arcFraction(p)
	}
	d := pc.end.Sub(pc.start)
	rel := p.Sub(pc.start)
	if math.Abs(d.Normalize().Cross(rel)) > geom.Tolerance {
		return 0, false
	}
	w := rel.Dot(d) / d.LengthSq()
	slack := geom.Tolerance / pc.length
	if w < -slack || w > 1+slack {
		return 0, false
	}
	return math.Max(0, math.Min(1, w)), true
}

// Fraction of the sweep at which the direction of p from the center lies.
func (pc piece) arcFraction(p geom.Point) (float64, bool) {
	slack := geom.Tolerance / pc.circle.Radius
	angle := geom.NormalizeAngle(p.Sub(pc.circle.Center).Angle()-pc.a0, 0)
	if angle <= pc.sweep+slack {
		return math.Min(1, angle/pc.sweep), true
	}
	if angle >= 2*math.Pi-slack {
		return 0, true
	}
	return 0, false
}

// Parameters s > 0 along the ray src + s*u at which it crosses the piece, with
// the matching fractions along the piece.
func (pc piece) castRay(src, u geom.Point) (hits []float64, fractions []float64) {
	if pc.arc {
		f := src.Sub(pc.circle.Center)
		b := u.Dot(f)
		c := f.LengthSq() - pc.circle.Radius*pc.circle.Radius
		disc := b*b - c
		if disc < 0 {
			return nil, nil
		}
		root := math.Sqrt(disc)
		for _, s := range []float64{-b - root, -b + root} {
			if s <= rayEpsilon {
				continue
			}
			if w, ok := pc.arcFraction(src.Add(u.Scale(s))); ok {
				hits = append(hits, s)
				fractions = append(fractions, w)
			}
		}
		return hits, fractions
	}
	d := pc.end.Sub(pc.start)
	denom := u.Cross(d)
	if math.Abs(denom) < 1e-15 {
		return nil, nil
	}
	diff := pc.start.Sub(src)
	s := diff.Cross(d) / denom
	w := diff.Cross(u) / denom
	if s <= rayEpsilon || w < -1e-12 || w > 1+1e-12 {
		return nil, nil
	}
	return []float64{s}, []float64{math.Max(0, math.Min(1, w))}
}

// A closed convex boundary made of pieces, parametrized by arc length.
type boundary struct {
	pieces    []piece
	starts    []float64
	perimeter float64
}

func newBoundary(pieces []piece) boundary {
	b := boundary{pieces: pieces, starts: make([]float64, len(pieces))}
	for i, pc := range pieces {
		b.starts[i] = b.perimeter
		b.perimeter += pc.length
	}
	return b
}

// Index of the piece containing time, and the fraction along it.
func (b boundary) index(time float64) (int, float64) {
	arc := geom.Mod1(time) * b.perimeter
	i := sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > arc }) - 1
	if i < 0 {
		internal.Fatalf("time %v precedes the first piece", time)
	}
	return i, (arc - b.starts[i]) / b.pieces[i].length
}

func (b boundary) timeAt(i int, s float64) float64 {
	return geom.Mod1((b.starts[i] + s*b.pieces[i].length) / b.perimeter)
}

func (b boundary) Point(time float64) geom.Point {
	i, s := b.index(time)
	return b.pieces[i].at(s)
}

func (b boundary) locate(p geom.Point) (int, float64, bool) {
	for i, pc := range b.pieces {
		if s, ok := pc.locate(p); ok {
			return i, s, true
		}
	}
	return 0, 0, false
}

func (b boundary) Time(p geom.Point) (float64, error) {
	i, s, ok := b.locate(p)
	if !ok {
		return 0, errors.Wrapf(geom.ErrPointNotOnBoundary, "%v", p)
	}
	return b.timeAt(i, s), nil
}

func (b boundary) PointOnBoundary(p geom.Point) bool {
	_, _, ok := b.locate(p)
	return ok
}

// Strict membership. Every piece is convex outward, so the table is the
// intersection of the half planes left of its segments and the disks of its
// arcs.
func (b boundary) ContainsPoint(p geom.Point) bool {
	for _, pc := range b.pieces {
		if pc.arc {
			if !pc.circle.ContainsPoint(p) {
				return false
			}
		} else if pc.end.Sub(pc.start).Cross(p.Sub(pc.start)) <= 0 {
			return false
		}
	}
	return true
}

func (b boundary) cornerAt(i int) (Corner, bool) {
	prev := b.pieces[geom.CircularIndex(i-1, len(b.pieces))]
	in := prev.heading(1)
	out := b.pieces[i].heading(0)
	turn := geom.NormalizeAngle(out-in, -math.Pi)
	if math.Abs(turn) < 1e-9 {
		return Corner{}, false
	}
	return Corner{Point: b.pieces[i].start, Time: b.timeAt(i, 0), In: in, Out: out}, true
}

func (b boundary) Corners() []Corner {
	var corners []Corner
	for i := range b.pieces {
		if c, ok := b.cornerAt(i); ok {
			corners = append(corners, c)
		}
	}
	return corners
}

func (b boundary) TangentHeading(time float64) (float64, bool) {
	i, s := b.index(time)
	length := b.pieces[i].length
	if s*length < 1e-9 {
		if _, ok := b.cornerAt(i); ok {
			return 0, false
		}
	}
	if (1-s)*length < 1e-9 {
		if _, ok := b.cornerAt(geom.CircularIndex(i+1, len(b.pieces))); ok {
			return 0, false
		}
	}
	return b.pieces[i].heading(s), true
}

// The boundary point farthest in direction u.
func (b boundary) Extreme(u geom.Point) geom.Point {
	best := b.pieces[0].start
	bestDot := best.Dot(u)
	consider := func(p geom.Point) {
		if d := p.Dot(u); d > bestDot {
			best, bestDot = p, d
		}
	}
	for _, pc := range b.pieces {
		consider(pc.start)
		if pc.arc {
			candidate := pc.circle.Center.Add(u.Normalize().Scale(pc.circle.Radius))
			if _, ok := pc.arcFraction(candidate); ok {
				consider(candidate)
			}
		}
	}
	return best
}

func (b boundary) CastRay(time, heading float64) (float64, error) {
	src := b.Point(time)
	u := geom.Polar(1, heading)
	bestS := math.Inf(1)
	bestTime := 0.0
	for i, pc := range b.pieces {
		hits, fractions := pc.castRay(src, u)
		for j, s := range hits {
			if s < bestS {
				bestS = s
				bestTime = b.timeAt(i, fractions[j])
			}
		}
	}
	if math.IsInf(bestS, 1) {
		return 0, errors.Wrapf(geom.ErrDegenerateGeometry, "ray from %v with heading %v misses the table", src, heading)
	}
	return bestTime, nil
}

func (b boundary) Shape(n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = b.Point(float64(i) / float64(n))
	}
	return points
}

// Whether the whole table lies on the left (or right) of the line through src
// in direction dir.
func (b boundary) supports(src, dir geom.Point, left bool) bool {
	n := dir.Perp().Normalize()
	if left {
		return n.Dot(b.Extreme(n.Scale(-1)).Sub(src)) >= -supportTolerance
	}
	return n.Dot(b.Extreme(n).Sub(src)) <= supportTolerance
}

func (b boundary) checkExternal(p geom.Point) error {
	if b.PointOnBoundary(p) {
		return errors.Wrapf(geom.ErrPointOnBoundary, "%v", p)
	}
	if b.ContainsPoint(p) {
		return errors.Wrapf(geom.ErrPointInsideTable, "%v", p)
	}
	return nil
}

// Tangent point from p, found among the piece endpoints and the tangent points
// of the arcs. When several candidates support the table (p on the extension of
// a segment) the farthest one is used.
func (b boundary) tangentPoint(p geom.Point, right bool) (geom.Point, error) {
	if err := b.checkExternal(p); err != nil {
		return geom.Point{}, err
	}
	var best geom.Point
	bestDistance := -1.0
	consider := func(t geom.Point) {
		if d := t.DistanceSq(p); d > bestDistance && b.supports(p, t.Sub(p), right) {
			best, bestDistance = t, d
		}
	}
	for _, pc := range b.pieces {
		consider(pc.start)
		if !pc.arc {
			continue
		}
		var t geom.Point
		var err error
		if right {
			t, err = pc.circle.RightTangentPoint(p)
		} else {
			t, err = pc.circle.LeftTangentPoint(p)
		}
		if err != nil {
			continue
		}
		if _, ok := pc.arcFraction(t); ok {
			consider(t)
		}
	}
	if bestDistance < 0 {
		return geom.Point{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no tangent point from %v", p)
	}
	return best, nil
}

func (b boundary) RightTangentPoint(p geom.Point) (geom.Point, error) {
	return b.tangentPoint(p, true)
}

func (b boundary) LeftTangentPoint(p geom.Point) (geom.Point, error) {
	return b.tangentPoint(p, false)
}

func (b boundary) LeftTangentLine(c geom.Circle) (geom.AffineRay, error) {
	for _, pc := range b.pieces {
		if t, err := c.RightTangentPoint(pc.start); err == nil {
			if seg := (geom.AffineRay{Start: pc.start, End: t}); b.acceptsLine(seg) {
				return seg, nil
			}
		}
		if !pc.arc {
			continue
		}
		if seg, err := pc.circle.LeftTangentSegment(c); err == nil {
			if _, ok := pc.arcFraction(seg.Start); ok && b.acceptsLine(seg) {
				return seg, nil
			}
		}
	}
	return geom.AffineRay{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no left tangent line to %v", c)
}

func (b boundary) RightTangentLine(c geom.Circle) (geom.AffineRay, error) {
	for _, pc := range b.pieces {
		if t, err := c.LeftTangentPoint(pc.start); err == nil {
			if seg := (geom.AffineRay{Start: t, End: pc.start}); b.acceptsLine(seg) {
				return seg, nil
			}
		}
		if !pc.arc {
			continue
		}
		if seg, err := c.LeftTangentSegment(pc.circle); err == nil {
			if _, ok := pc.arcFraction(seg.End); ok && b.acceptsLine(seg) {
				return seg, nil
			}
		}
	}
	return geom.AffineRay{}, errors.Wrapf(geom.ErrDegenerateGeometry, "no right tangent line to %v", c)
}

func (b boundary) acceptsLine(seg geom.AffineRay) bool {
	dir := seg.End.Sub(seg.Start)
	if dir.LengthSq() < 1e-24 {
		return false
	}
	return b.supports(seg.Start, dir, true)
}
