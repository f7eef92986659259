package config

// PoseStateID names a discrete pose a blend controller can aim at.
type PoseStateID int

const (
	PoseIdle PoseStateID = iota
	PoseWalking
	PoseDrawing1
	PoseDrawing2
	PoseDrawing3
	PoseDrawing4
	PoseAttackNeutral
	PoseAttackWindup
	PoseAttackSlash
	PoseStateCount // Must be last - used for array sizing
)

var poseStateNames = [PoseStateCount]string{
	PoseIdle:          "idle",
	PoseWalking:       "walking",
	PoseDrawing1:      "drawing-1",
	PoseDrawing2:      "drawing-2",
	PoseDrawing3:      "drawing-3",
	PoseDrawing4:      "drawing-4",
	PoseAttackNeutral: "attack-neutral",
	PoseAttackWindup:  "attack-windup",
	PoseAttackSlash:   "attack-slash",
}

func (s PoseStateID) String() string {
	if s < 0 || s >= PoseStateCount {
		return "unknown"
	}
	return poseStateNames[s]
}

// WeaponClass selects a multiplier set and timing for melee swings.
type WeaponClass int

const (
	WeaponSword WeaponClass = iota
	WeaponAxe
	WeaponClub
	WeaponClassCount // Must be last - used for array sizing
)

var weaponNames = [WeaponClassCount]string{
	WeaponSword: "sword",
	WeaponAxe:   "axe",
	WeaponClub:  "club",
}

func (w WeaponClass) String() string {
	if w < 0 || w >= WeaponClassCount {
		return "unknown"
	}
	return weaponNames[w]
}

// WeaponByName resolves a weapon class from its lowercase name.
func WeaponByName(name string) (WeaponClass, bool) {
	for i, n := range weaponNames {
		if n == name {
			return WeaponClass(i), true
		}
	}
	return 0, false
}

// Creature selects a skeleton layout, gait constants and pose set.
type Creature int

const (
	CreatureHumanoid Creature = iota
	CreatureBird
	CreatureCount // Must be last - used for array sizing
)

var creatureNames = [CreatureCount]string{
	CreatureHumanoid: "humanoid",
	CreatureBird:     "bird",
}

func (c Creature) String() string {
	if c < 0 || c >= CreatureCount {
		return "unknown"
	}
	return creatureNames[c]
}

// CreatureByName resolves a creature from its lowercase name.
func CreatureByName(name string) (Creature, bool) {
	for i, n := range creatureNames {
		if n == name {
			return Creature(i), true
		}
	}
	return 0, false
}

// Stance is the leg posture held while swinging a weapon.
type Stance int

const (
	StanceAggressive Stance = iota
	StanceDefensive
)

func (s Stance) String() string {
	switch s {
	case StanceAggressive:
		return "aggressive"
	case StanceDefensive:
		return "defensive"
	}
	return "unknown"
}

// ArmRole tells the elbow swing which arm it is driving.
type ArmRole int

const (
	ArmSupporting ArmRole = iota
	ArmWeapon
)

func (r ArmRole) String() string {
	if r == ArmWeapon {
		return "weapon"
	}
	return "supporting"
}
