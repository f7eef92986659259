package components

import (
	"github.com/automoto/rigmotion/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the sandbox toggles the player can change at runtime.
type SettingsData struct {
	Weapon       config.WeaponClass
	TimeScale    float64
	CacheEnabled bool
	ShowJoints   bool
	Dirty        bool // changed since last save
}

var Settings = donburi.NewComponentType[SettingsData]()
