package components

import (
	"github.com/automoto/rigmotion/rig"
	"github.com/yohamta/donburi"
)

// SkeletonData is the externally owned rig the animation systems write into.
type SkeletonData struct {
	Rig   *rig.Rig
	Scale float64 // pixels per skeleton unit
	Pose  rig.Pose // last composed pose, kept for the debug overlay
}

var Skeleton = donburi.NewComponentType[SkeletonData]()
