// Package rig holds the value types exchanged with the external skeleton:
// per-joint rotations, pose snapshots and the Skeleton boundary itself.
package rig

import (
	"math"

	"github.com/automoto/rigmotion/gamemath"
)

// Angles is a joint's local rotation in radians.
type Angles struct {
	X, Y, Z float64
}

func (a Angles) Add(b Angles) Angles {
	return Angles{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func (a Angles) Sub(b Angles) Angles {
	return Angles{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func (a Angles) Scale(s float64) Angles {
	return Angles{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// Lerp moves each axis independently toward b.
func (a Angles) Lerp(b Angles, t float64) Angles {
	return Angles{
		X: gamemath.Lerp(a.X, b.X, t),
		Y: gamemath.Lerp(a.Y, b.Y, t),
		Z: gamemath.Lerp(a.Z, b.Z, t),
	}
}

// MaxDelta is the largest per-axis difference between a and b.
func (a Angles) MaxDelta(b Angles) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Max(math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z)))
}

// Vec3 is a joint position offset.
type Vec3 struct {
	X, Y, Z float64
}
