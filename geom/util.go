package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func CloseEnough(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Reduce a time parameter into [0, 1).
func Mod1(t float64) float64 {
	t = t - math.Floor(t)
	if t >= 1 {
		return 0
	}
	return t
}

// Reduce an angle into [low, low + 2π).
func NormalizeAngle(theta, low float64) float64 {
	tau := 2 * math.Pi
	theta = math.Mod(theta-low, tau)
	if theta < 0 {
		theta += tau
	}
	if theta >= tau {
		theta = 0
	}
	return theta + low
}
