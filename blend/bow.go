package blend

import (
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
	"github.com/automoto/rigmotion/rig"
)

// DrawStage maps a bow charge in [0,1] to one of the four drawing poses.
func DrawStage(charge float64) config.PoseStateID {
	bands := config.Bow.StageBands
	switch {
	case charge < bands[0]:
		return config.PoseDrawing1
	case charge < bands[1]:
		return config.PoseDrawing2
	case charge < bands[2]:
		return config.PoseDrawing3
	default:
		return config.PoseDrawing4
	}
}

// HandRotation is the bow hand's X rotation at a charge level.
func HandRotation(charge float64) float64 {
	return gamemath.InOutQuad(gamemath.Clamp01(charge)) * config.Bow.HandMaxRotation
}

// LayerHand sets the bow hand directly from the charge level. It is applied
// on top of the blended pose every frame and is never smoothed.
func LayerHand(pose rig.Pose, charge float64) rig.Pose {
	h := pose.At(rig.LeftHand)
	h.X = HandRotation(charge)
	return pose.With(rig.LeftHand, h)
}

// Bow tracks a draw charge.
type Bow struct {
	Charge  float64
	Drawing bool
}

// Update charges while drawing and lets the string go otherwise.
func (b *Bow) Update(dt float64, drawing bool) {
	b.Drawing = drawing
	if drawing {
		b.Charge = gamemath.Clamp01(b.Charge + dt*config.Bow.ChargeRate)
		return
	}
	b.Charge = gamemath.Clamp01(b.Charge - dt*config.Bow.ReleaseRate)
}

// Stage is the drawing pose for the current charge.
func (b *Bow) Stage() config.PoseStateID {
	return DrawStage(b.Charge)
}
