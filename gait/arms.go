package gait

import (
	"math"

	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
)

// ElbowSwing returns elbow flexion (negative is flexed) for an arm swinging
// against the opposing leg. The weapon arm swings less, loses more swing
// the heavier the weapon, and carries a small grip tension tremor.
func ElbowSwing(opposingLegPhase float64, role config.ArmRole, weaponWeight float64) float64 {
	a := config.Arms
	base := 0.5 + 0.5*math.Sin(2*math.Pi*opposingLegPhase)

	if role != config.ArmWeapon {
		return -(a.SupportOffset + a.SupportAmplitude*base)
	}

	w := gamemath.Clamp01(weaponWeight)
	amp := a.SupportAmplitude * a.WeaponDamping * (1 - w*a.WeightDamping)
	grip := a.GripAmplitude * (0.5 + 0.5*w) * math.Sin(2*math.Pi*a.GripFrequency*opposingLegPhase)
	return -(a.WeaponOffset + amp*base + grip)
}

// ShoulderSwing is the fore/aft arm swing. The arm is furthest forward when
// the opposing leg strikes the ground.
func ShoulderSwing(opposingLegPhase, amplitude float64) float64 {
	return amplitude * math.Cos(2*math.Pi*opposingLegPhase)
}

// HipSwing is the thigh angle for a leg at legPhase. Forward reach peaks at
// heel strike.
func HipSwing(legPhase, amplitude float64) float64 {
	return amplitude * math.Cos(2*math.Pi*legPhase)
}

// asymmetryK spreads nearby seeds across the sine.
const asymmetryK = 12.9898

// AddAsymmetry applies a deterministic per-character jitter to value.
func AddAsymmetry(value, seed, intensity float64) float64 {
	return value * (1 + math.Sin(seed*asymmetryK)*intensity)
}
