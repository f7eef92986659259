package systems

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order.
const (
	LayerDefault ecs.LayerID = iota
	LayerOverlay
)
