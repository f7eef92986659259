package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PatrolData walks an AI character back and forth along a tweened route.
type PatrolData struct {
	Route   *gween.Sequence
	OriginX float64
	Paused  bool // holds position while swinging
}

var Patrol = donburi.NewComponentType[PatrolData]()
