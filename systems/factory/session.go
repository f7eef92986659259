package factory

import (
	"github.com/automoto/rigmotion/archetypes"
	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/posecache"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding the frame clock, the pose
// cache and the sandbox toggles. frameDelta is seconds per update.
func CreateSession(ecs *ecs.ECS, frameDelta float64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	c := clock.NewManual(0)
	components.Session.SetValue(session, components.SessionData{
		Clock:      c,
		Cache:      posecache.New(c, posecache.DefaultOptions()),
		FrameDelta: frameDelta,
	})
	components.Settings.SetValue(session, components.SettingsData{
		Weapon:       cfg.WeaponSword,
		TimeScale:    1,
		CacheEnabled: cfg.Cache.Enabled,
		ShowJoints:   cfg.Debug.ShowJoints,
	})
	return session
}
