package components

import (
	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/posecache"
	"github.com/yohamta/donburi"
)

// SessionData is the scene-owned animation context shared by every
// character: the frame clock and the pose cache.
type SessionData struct {
	Clock      *clock.Manual
	Cache      *posecache.Cache
	FrameDelta float64 // unscaled seconds per update
	Delta      float64 // scaled seconds advanced this update
	Frame      int
	LastPrune  float64
}

var Session = donburi.NewComponentType[SessionData]()
