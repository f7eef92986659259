package factory

import (
	"fmt"
	"log"

	"github.com/automoto/rigmotion/archetypes"
	"github.com/automoto/rigmotion/attack"
	"github.com/automoto/rigmotion/blend"
	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gait"
	"github.com/automoto/rigmotion/rig"
	"github.com/automoto/rigmotion/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the keyboard-driven humanoid with a melee weapon and a bow.
func CreatePlayer(ecs *ecs.ECS, x float64, weapon cfg.WeaponClass) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := bodyObject(ecs, player, x, cfg.Sandbox.ReachHeight, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Character.SetValue(player, components.CharacterData{
		Name:      "player",
		Creature:  cfg.CreatureHumanoid,
		Weapon:    weapon,
		HasWeapon: true,
		Stance:    cfg.StanceAggressive,
		Facing:    cfg.DirectionRight,
	})
	setAnimation(ecs, player, cfg.CreatureHumanoid, 0)
	components.Attack.SetValue(player, components.AttackData{Timeline: attack.New(sessionClock(ecs))})
	components.Bow.SetValue(player, blend.Bow{})

	log.Printf("[factory] player at %.0f with %s", x, weapon)
	return player
}

// CreateEnemy spawns an AI humanoid that patrols and swings at the player
// procedurally.
func CreateEnemy(ecs *ecs.ECS, spawn cfg.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := bodyObject(ecs, enemy, spawn.X, cfg.Sandbox.ReachHeight, tags.ResolvEnemy)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	stance := cfg.StanceAggressive
	if int(spawn.Seed)%2 == 0 {
		stance = cfg.StanceDefensive
	}
	components.Character.SetValue(enemy, components.CharacterData{
		Name:      fmt.Sprintf("%s-%.0f", spawn.Weapon, spawn.X),
		Creature:  cfg.CreatureHumanoid,
		Seed:      spawn.Seed,
		Weapon:    spawn.Weapon,
		HasWeapon: true,
		Stance:    stance,
		Facing:    cfg.DirectionLeft,
	})
	setAnimation(ecs, enemy, cfg.CreatureHumanoid, spawn.Seed)
	components.Attack.SetValue(enemy, components.AttackData{
		Timeline:   attack.New(sessionClock(ecs)),
		Procedural: true,
	})
	components.Patrol.SetValue(enemy, newPatrol(obj.X, spawn.PatrolDistance, spawn.PatrolDuration))

	log.Printf("[factory] enemy %s at %.0f", spawn.Weapon, spawn.X)
	return enemy
}

// CreateBird spawns a hopping bird on a short patrol.
func CreateBird(ecs *ecs.ECS, spawn cfg.BirdSpawn) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	obj := bodyObject(ecs, bird, spawn.X, cfg.Sandbox.BodyWidth, tags.ResolvBird)
	components.Object.SetValue(bird, components.ObjectData{Object: obj})

	components.Character.SetValue(bird, components.CharacterData{
		Name:     fmt.Sprintf("bird-%.0f", spawn.X),
		Creature: cfg.CreatureBird,
		Seed:     spawn.Seed,
		Facing:   cfg.DirectionRight,
	})
	setAnimation(ecs, bird, cfg.CreatureBird, spawn.Seed)
	components.Patrol.SetValue(bird, newPatrol(obj.X, spawn.PatrolDistance, spawn.PatrolDuration))

	return bird
}

// bodyObject creates a body box standing on the ground and links it to entry.
func bodyObject(ecs *ecs.ECS, entry *donburi.Entry, x, height float64, tag string) *resolv.Object {
	w := cfg.Sandbox.BodyWidth
	obj := resolv.NewObject(x, cfg.Sandbox.GroundY-height, w, height)
	obj.AddTags(tags.ResolvCharacter, tag)
	obj.Data = entry
	addToSpace(ecs, obj)
	return obj
}

// setAnimation attaches the rig, walk cycle and blend controller for a
// creature. It panics on a creature with no skeleton.
func setAnimation(ecs *ecs.ECS, entry *donburi.Entry, creature cfg.Creature, seed float64) {
	bones, ok := cfg.Skeletons[creature]
	if !ok {
		panic(fmt.Sprintf("no skeleton for creature %v", creature))
	}
	components.Skeleton.SetValue(entry, components.SkeletonData{
		Rig:   rig.NewRig(bones),
		Scale: cfg.Sandbox.Scale,
	})

	loco := gait.NewLocomotion(creature, seed)
	if session, ok := components.Session.First(ecs.World); ok {
		if components.Settings.Get(session).CacheEnabled {
			loco.Cache = components.Session.Get(session).Cache
		}
	}
	components.Locomotion.SetValue(entry, components.LocomotionData{Gait: loco})
	components.Blend.SetValue(entry, components.BlendData{Controller: blend.New(creature)})
}

// newPatrol builds a there-and-back route. The sequence is reset by
// UpdatePatrols whenever it completes.
func newPatrol(originX, distance, duration float64) components.PatrolData {
	route := gween.NewSequence()
	d := float32(distance)
	t := float32(duration)
	route.Add(
		gween.New(0, d, t, ease.InOutQuad),
		gween.New(d, 0, t, ease.InOutQuad),
	)
	return components.PatrolData{Route: route, OriginX: originX}
}

// sessionClock is the frame clock swings are timed against. Characters
// need a session to exist first.
func sessionClock(ecs *ecs.ECS) clock.Source {
	session, ok := components.Session.First(ecs.World)
	if !ok {
		panic("character spawned before session")
	}
	return components.Session.Get(session).Clock
}
