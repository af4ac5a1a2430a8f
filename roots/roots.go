// Numerical searches used where a table has no closed form for its tangent
// points.
package roots

import "math"

const (
	DefaultTolerance = 1e-10
	// Angular tolerance and iteration cap for tangent point bisection.
	BisectTolerance = 1e-7
	BisectMaxIter   = 100
)

var invPhi = (math.Sqrt(5) - 1) / 2

// Ternary search for the minimum of f on [a, b]. f must be unimodal on the
// interval.
func FindOnInterval(f func(float64) float64, a, b, tol float64) float64 {
	if a > b {
		a, b = b, a
	}
	for b-a > tol {
		m1 := a + (b-a)/3
		m2 := b - (b-a)/3
		if f(m1) < f(m2) {
			b = m2
		} else {
			a = m1
		}
	}
	return (a + b) / 2
}

// Find the minimum of a 1-periodic function, returning a time in [0, 1).
//
// f is assumed to have exactly one local minimum and one local maximum per
// period. Under that assumption the smallest of three equally spaced samples
// brackets the minimum together with its two neighbours, and any bracket
// contains only the global minimum. If the assumption fails, the result is some
// local minimum.
//
// Ties between samples go to the earliest one and the bracket is refined by
// golden section. The samples are never moved to break a tie, so a function
// that is constant on all three samples returns 0.
func FindOnCircle(f func(float64) float64, tol float64) float64 {
	return FindOnCircleSampled(f, 3, tol)
}

// Like FindOnCircle, but brackets from the smallest of n samples. With enough
// samples this finds the global minimum of functions with several local minima,
// as long as they are separated by more than 1/n.
func FindOnCircleSampled(f func(float64) float64, n int, tol float64) float64 {
	if n < 3 {
		n = 3
	}
	best := 0
	bestValue := f(0)
	allEqual := true
	for i := 1; i < n; i++ {
		v := f(float64(i) / float64(n))
		if v != bestValue {
			allEqual = false
		}
		if v < bestValue {
			best, bestValue = i, v
		}
	}
	if allEqual {
		return 0
	}
	step := 1 / float64(n)
	c := float64(best) * step
	return mod1(goldenSection(f, c-step, c, c+step, bestValue, tol))
}

// Golden section search on a bracket (a, c, b) with f(c) <= f(a), f(b).
func goldenSection(f func(float64) float64, a, c, b, fc, tol float64) float64 {
	for b-a > tol {
		var x float64
		if c-a > b-c {
			x = c - (1-invPhi)*(c-a)
		} else {
			x = c + (1-invPhi)*(b-c)
		}
		fx := f(x)
		if fx < fc {
			if x < c {
				b = c
			} else {
				a = c
			}
			c, fc = x, fx
		} else {
			if x < c {
				a = x
			} else {
				b = x
			}
		}
	}
	return c
}

// Bisect for a sign change of f on [lo, hi]. Stops when |f| < tol or after
// maxIter steps, returning the last midpoint either way. The second result
// reports whether the tolerance was reached.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, bool) {
	flo := f(lo)
	mid := (lo + hi) / 2
	for i := 0; i < maxIter; i++ {
		mid = (lo + hi) / 2
		v := f(mid)
		if math.Abs(v) < tol {
			return mid, true
		}
		if (v < 0) == (flo < 0) {
			lo, flo = mid, v
		} else {
			hi = mid
		}
	}
	return mid, false
}

func mod1(t float64) float64 {
	t = t - math.Floor(t)
	if t >= 1 {
		return 0
	}
	return t
}
