// Preimages of the singular set of an outer billiard map.
//
// The singular set is where the forward map is discontinuous. Each generation
// pulls the previous one back through the inverse map, after slicing it along
// the inverse map's own discontinuities so that every piece maps rigidly.
package preimage

import (
	"context"

	"github.com/osuushi/billiards/dbg"
	"github.com/pkg/errors"
)

// A Stepper produces the seed generation and pulls a frontier back by one
// generation. S is the segment type of the geometry.
type Stepper[S any] interface {
	Seeds() []S
	Step(frontier []S) []S
}

// Where a run stopped. Pass it to Resume to continue.
type Cursor[S any] struct {
	Generation int
	Frontier   []S
	// Set when Frontier has already been emitted, so resuming steps it first.
	emitted bool
}

type Result[S any] struct {
	Segments []S
	// Number of segments emitted for each generation, indexed by generation.
	// Generations filtered out by the interval have zero.
	Counts []int
	Cursor Cursor[S]
	// False when the run was cancelled before reaching its limit.
	Complete bool
}

// Run emits generations 0 through iterations. With interval > 1, only
// generations that are multiples of interval are emitted.
func Run[S any](ctx context.Context, st Stepper[S], iterations, interval int) (Result[S], error) {
	return Resume(ctx, st, Cursor[S]{Frontier: st.Seeds()}, iterations, interval)
}

// Resume continues from a cursor up to the absolute generation limit
// iterations. A cancelled context stops the run at a generation boundary and
// returns what was emitted so far along with a cursor for the rest.
func Resume[S any](ctx context.Context, st Stepper[S], cur Cursor[S], iterations, interval int) (Result[S], error) {
	res := Result[S]{Counts: make([]int, max(iterations+1, 0))}
	if cur.emitted {
		if cur.Generation >= iterations || len(cur.Frontier) == 0 {
			res.Cursor, res.Complete = cur, true
			return res, nil
		}
		cur = Cursor[S]{Generation: cur.Generation + 1, Frontier: st.Step(cur.Frontier)}
	}
	for {
		if err := ctx.Err(); err != nil {
			res.Cursor = cur
			return res, errors.Wrapf(err, "preimages stopped at generation %d", cur.Generation)
		}
		if dbg.Enabled {
			dbg.Printf("preimage", "%s generation %d: %d segments", dbg.Name(st), cur.Generation, len(cur.Frontier))
		}
		if interval <= 1 || cur.Generation%interval == 0 {
			res.Segments = append(res.Segments, cur.Frontier...)
			if cur.Generation < len(res.Counts) {
				res.Counts[cur.Generation] = len(cur.Frontier)
			}
		}
		if cur.Generation >= iterations || len(cur.Frontier) == 0 {
			cur.emitted = true
			res.Cursor, res.Complete = cur, true
			return res, nil
		}
		cur = Cursor[S]{Generation: cur.Generation + 1, Frontier: st.Step(cur.Frontier)}
	}
}
