package config

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionDrawBow
	ActionWeaponSword
	ActionWeaponAxe
	ActionWeaponClub
	ActionToggleCache
	ActionToggleDebug
	ActionTimeFaster
	ActionTimeSlower
	ActionCount // Must be last - used for array sizing
)
