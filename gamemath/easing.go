package gamemath

import "github.com/tanema/gween/ease"

// Smoothstep is 3t²-2t³.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// SlashEase squares t before the smoothstep, so it ramps up late and fast.
func SlashEase(t float64) float64 {
	u := t * t
	return u * u * (3 - 2*u)
}

// Ease adapts a gween tween function to a unit progress curve.
func Ease(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

// SnapEase is the 5th-power ease-out used for sharp wrist snaps.
func SnapEase(t float64) float64 {
	return Ease(ease.OutQuint, t)
}

// InOutQuad is the quadratic ease-in-out curve.
func InOutQuad(t float64) float64 {
	return Ease(ease.InOutQuad, t)
}
