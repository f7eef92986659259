package systems

import (
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var weaponActions = [...]struct {
	action cfg.ActionID
	weapon cfg.WeaponClass
}{
	{cfg.ActionWeaponSword, cfg.WeaponSword},
	{cfg.ActionWeaponAxe, cfg.WeaponAxe},
	{cfg.ActionWeaponClub, cfg.WeaponClub},
}

// UpdatePlayerInput turns the polled actions into the player's intent for
// this frame and applies sandbox toggles.
func UpdatePlayerInput(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	settings := components.Settings.Get(entry)

	updateToggles(e, input, settings)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)
	swinging := components.Attack.Get(playerEntry).Timeline.IsAttacking()

	char.Weapon = settings.Weapon
	char.DrawingBow = GetAction(input, cfg.ActionDrawBow).Pressed && !swinging

	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	char.Moving = left != right && !char.DrawingBow
	if char.Moving {
		char.Speed = cfg.Sandbox.WalkSpeed
		if left {
			char.Facing = cfg.DirectionLeft
		} else {
			char.Facing = cfg.DirectionRight
		}
	} else {
		char.Speed = 0
	}

	if GetAction(input, cfg.ActionAttack).JustPressed && !char.DrawingBow {
		char.AttackRequested = true
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

func updateToggles(e *ecs.ECS, input *components.InputData, settings *components.SettingsData) {
	for _, wa := range weaponActions {
		if GetAction(input, wa.action).JustPressed && settings.Weapon != wa.weapon {
			settings.Weapon = wa.weapon
			settings.Dirty = true
		}
	}

	if GetAction(input, cfg.ActionToggleCache).JustPressed {
		SetCacheEnabled(e, !settings.CacheEnabled)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowJoints = !settings.ShowJoints
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionTimeFaster).JustPressed {
		settings.TimeScale = clampTimeScale(settings.TimeScale + cfg.Sandbox.TimeScaleStep)
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionTimeSlower).JustPressed {
		settings.TimeScale = clampTimeScale(settings.TimeScale - cfg.Sandbox.TimeScaleStep)
		settings.Dirty = true
	}
}

// SetCacheEnabled attaches or detaches the session's pose cache from every
// walk cycle. Disabling also empties the cache so re-enabling starts cold.
func SetCacheEnabled(e *ecs.ECS, enabled bool) {
	session, settings, ok := getSession(e)
	if !ok {
		return
	}
	if settings.CacheEnabled != enabled {
		settings.CacheEnabled = enabled
		settings.Dirty = true
	}
	if !enabled && session.Cache != nil {
		session.Cache.Clear()
	}

	components.Locomotion.Each(e.World, func(entry *donburi.Entry) {
		loco := components.Locomotion.Get(entry)
		if enabled {
			loco.Gait.Cache = session.Cache
		} else {
			loco.Gait.Cache = nil
		}
	})
}
