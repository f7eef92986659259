package gamemath

import "math"

// Lerp returns a + t*(b-a). t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InverseLerp returns where v sits between a and b, 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// WrapUnit folds x into [0, 1). Negative inputs wrap from the top.
func WrapUnit(x float64) float64 {
	w := x - math.Floor(x)
	if w >= 1 {
		// x slightly below an integer can round up to exactly 1
		return 0
	}
	return w
}

// Bump interpolates from a to b and lifts the curve with a half sine so that
// the value at t=0.5 is exactly peak. Both endpoints stay at a and b.
func Bump(a, b, peak, t float64) float64 {
	return Lerp(a, b, t) + (peak-(a+b)/2)*math.Sin(math.Pi*t)
}
