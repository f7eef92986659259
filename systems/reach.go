package systems

import (
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReach starts an enemy swing when the player stands inside the box
// in front of it. Each enemy then waits out its cooldown.
func UpdateReach(e *ecs.ECS) {
	dt := frameDelta(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		if char.AttackCooldown > 0 {
			char.AttackCooldown -= dt
			return
		}
		if !char.HasWeapon || components.Attack.Get(entry).Timeline.IsAttacking() {
			return
		}

		obj := components.Object.Get(entry)
		check := obj.Check(char.Facing*cfg.Sandbox.ReachWidth, 0, tags.ResolvPlayer)
		if check == nil {
			return
		}
		targets := check.ObjectsByTags(tags.ResolvPlayer)
		if len(targets) == 0 {
			return
		}
		if targets[0].X < obj.X {
			char.Facing = cfg.DirectionLeft
		} else {
			char.Facing = cfg.DirectionRight
		}
		char.AttackRequested = true
		char.AttackCooldown = cfg.Sandbox.AttackCooldown
	})
}
