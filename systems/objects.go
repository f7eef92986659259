package systems

import (
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves free-walking characters and syncs every body box
// into the reach space.
func UpdateObjects(e *ecs.ECS) {
	dt := frameDelta(e)
	maxX := float64(cfg.C.Width) - cfg.Sandbox.BodyWidth

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if entry.HasComponent(components.Character) && !entry.HasComponent(components.Patrol) {
			char := components.Character.Get(entry)
			if char.Moving {
				obj.X = gamemath.Clamp(obj.X+char.Facing*char.Speed*dt, 0, maxX)
			}
		}
		obj.Update()
	})
}
