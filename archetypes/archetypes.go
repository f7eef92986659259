package archetypes

import (
	"github.com/automoto/rigmotion/components"
	"github.com/automoto/rigmotion/systems"
	"github.com/automoto/rigmotion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Skeleton,
		components.Locomotion,
		components.Attack,
		components.Blend,
		components.Bow,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Character,
		components.Object,
		components.Skeleton,
		components.Locomotion,
		components.Attack,
		components.Blend,
		components.Patrol,
	)
	Bird = newArchetype(
		tags.Bird,
		components.Character,
		components.Object,
		components.Skeleton,
		components.Locomotion,
		components.Blend,
		components.Patrol,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Settings,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		systems.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
