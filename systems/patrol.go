package systems

import (
	"math"

	"github.com/automoto/rigmotion/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrols walks AI characters along their tweened routes and derives
// facing and speed from how far the route moved them this frame.
func UpdatePatrols(e *ecs.ECS) {
	dt := frameDelta(e)
	if dt <= 0 {
		return
	}

	components.Patrol.Each(e.World, func(entry *donburi.Entry) {
		patrol := components.Patrol.Get(entry)
		char := components.Character.Get(entry)
		obj := components.Object.Get(entry)

		if entry.HasComponent(components.Attack) {
			patrol.Paused = components.Attack.Get(entry).Timeline.IsAttacking()
		}
		if patrol.Paused || patrol.Route == nil {
			char.Moving = false
			char.Speed = 0
			return
		}

		offset, _, done := patrol.Route.Update(float32(dt))
		if done {
			patrol.Route.Reset()
		}

		x := patrol.OriginX + float64(offset)
		dx := x - obj.X
		obj.X = x

		char.Moving = math.Abs(dx) > 1e-6
		if !char.Moving {
			char.Speed = 0
			return
		}
		char.Speed = math.Abs(dx) / dt
		char.Facing = math.Copysign(1, dx)
	})
}
