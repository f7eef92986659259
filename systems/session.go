package systems

import (
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/yohamta/donburi/ecs"
)

// prunePeriod is how often, in animation seconds, expired cache entries are dropped.
const prunePeriod = 1.0

// UpdateClock advances the animation clock by one scaled frame. Everything
// downstream reads time from the session so slow motion stays consistent.
func UpdateClock(e *ecs.ECS) {
	session, settings, ok := getSession(e)
	if !ok {
		return
	}

	session.Delta = session.FrameDelta * settings.TimeScale
	session.Clock.Advance(session.Delta)
	session.Frame++

	now := session.Clock.Now()
	if session.Cache != nil && now-session.LastPrune >= prunePeriod {
		session.Cache.Prune()
		session.LastPrune = now
	}
}

func getSession(e *ecs.ECS) (*components.SessionData, *components.SettingsData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return components.Session.Get(entry), components.Settings.Get(entry), true
}

// frameDelta returns the scaled seconds of the current update, or zero when
// no session exists.
func frameDelta(e *ecs.ECS) float64 {
	session, _, ok := getSession(e)
	if !ok {
		return 0
	}
	return session.Delta
}

func clampTimeScale(v float64) float64 {
	if v < cfg.Sandbox.MinTimeScale {
		return cfg.Sandbox.MinTimeScale
	}
	if v > cfg.Sandbox.MaxTimeScale {
		return cfg.Sandbox.MaxTimeScale
	}
	return v
}
