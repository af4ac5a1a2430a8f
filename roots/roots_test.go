package roots

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func circularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestFindOnInterval(t *testing.T) {
	x := FindOnInterval(func(x float64) float64 { return (x - 0.3) * (x - 0.3) }, -2, 5, 1e-9)
	assert.InDelta(t, 0.3, x, 1e-6)

	x = FindOnInterval(func(x float64) float64 { return math.Abs(x + 1) }, 3, -3, 1e-9)
	assert.InDelta(t, -1, x, 1e-6)
}

func TestFindOnCircle(t *testing.T) {
	for _, target := range []float64{0, 0.1, 1.0 / 3, 0.5, 0.66, 0.999} {
		target := target
		t.Run(fmt.Sprintf("minimum at %v", target), func(t *testing.T) {
			f := func(x float64) float64 { return -math.Cos(2 * math.Pi * (x - target)) }
			x := FindOnCircle(f, 1e-10)
			assert.True(t, circularDistance(x, target) < 1e-6, "found %v", x)
			assert.True(t, x >= 0 && x < 1)
		})
	}
}

// FindOnCircle only promises the global minimum for functions with one local
// minimum and one local maximum. This documents what happens otherwise.
func TestFindOnCircleAssumption(t *testing.T) {
	// Two wells, the deeper one at 0.6 hidden between the samples at 1/3 and 2/3.
	f := func(x float64) float64 {
		return -math.Exp(-math.Pow((x-0.6)/0.02, 2)) - 0.5*math.Cos(2*math.Pi*x)
	}
	naive := FindOnCircle(f, 1e-10)
	sampled := FindOnCircleSampled(f, 200, 1e-10)
	assert.InDelta(t, 0.6, sampled, 1e-3)
	assert.Greater(t, f(naive), f(sampled))
}

// The samples at 0 and 1/3 tie, with the minimum between them.
func TestFindOnCircleTie(t *testing.T) {
	f := func(x float64) float64 { return -math.Cos(2 * math.Pi * (x - 1.0/6)) }
	assert.InDelta(t, f(0), f(1.0/3), 1e-12)
	x := FindOnCircle(f, 1e-10)
	assert.InDelta(t, 1.0/6, x, 1e-6)
}

func TestFindOnCircleConstant(t *testing.T) {
	assert.Equal(t, 0.0, FindOnCircle(func(float64) float64 { return 1 }, 1e-10))
}

func TestBisect(t *testing.T) {
	x, ok := Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, BisectTolerance, BisectMaxIter)
	assert.True(t, ok)
	assert.InDelta(t, math.Sqrt2, x, 1e-6)

	x, ok = Bisect(func(x float64) float64 { return 1 - x }, 0, 3, BisectTolerance, BisectMaxIter)
	assert.True(t, ok)
	assert.InDelta(t, 1, x, 1e-6)

	// No sign change: best effort midpoint, not converged.
	_, ok = Bisect(func(x float64) float64 { return 1 + x*x }, -1, 1, BisectTolerance, 10)
	assert.False(t, ok)
}
