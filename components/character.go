package components

import (
	"github.com/automoto/rigmotion/config"
	"github.com/yohamta/donburi"
)

// CharacterData is the per-frame input contract of one animated character:
// what the controller decided this frame, before any animation runs.
type CharacterData struct {
	Name      string
	Creature  config.Creature
	Seed      float64 // per-character asymmetry seed
	Weapon    config.WeaponClass
	HasWeapon bool
	Stance    config.Stance

	Facing float64 // config.DirectionLeft or config.DirectionRight
	Speed  float64 // pixels per second, unsigned
	Moving bool

	AttackRequested bool // edge-triggered, consumed by UpdateAttacks
	DrawingBow      bool
	AttackCooldown  float64 // seconds until the AI may swing again
}

var Character = donburi.NewComponentType[CharacterData]()
