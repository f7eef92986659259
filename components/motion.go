package components

import (
	"github.com/automoto/rigmotion/attack"
	"github.com/automoto/rigmotion/blend"
	"github.com/automoto/rigmotion/gait"
	"github.com/yohamta/donburi"
)

// LocomotionData holds the walk cycle and the sample computed this frame.
type LocomotionData struct {
	Gait   *gait.Locomotion
	Sample gait.Sample
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

// AttackData holds a character's swing timeline.
type AttackData struct {
	Timeline *attack.Timeline
	// Procedural swings drive the weapon elbow and wrist from the gait
	// curves instead of the keyframe table.
	Procedural bool
	// Finished is set for the one frame a swing completes.
	Finished bool
}

var Attack = donburi.NewComponentType[AttackData]()

type BlendData struct {
	Controller *blend.Controller
}

var Blend = donburi.NewComponentType[BlendData]()

var Bow = donburi.NewComponentType[blend.Bow]()
