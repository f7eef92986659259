// Package gait holds the stateless joint-angle curves driven by a locomotion
// or attack phase, and the per-character composition of those curves into
// a walking pose.
package gait

import (
	"math"

	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
)

// Knee cycle boundaries: heel-strike, stance, toe-off, swing, extension.
const (
	heelStrikeEnd = 0.1
	stanceEnd     = 0.4
	toeOffEnd     = 0.6
	swingEnd      = 0.8
)

// KneeFlexion returns the knee bend for a leg at legPhase in [0,1). The
// supporting leg uses a shallower max bend than the swinging leg. Every
// segment starts where the previous one ends, including the wrap from 1
// back to 0.
func KneeFlexion(legPhase float64, isSupporting bool) float64 {
	k := config.Knee
	bend := k.SwingBend
	if isSupporting {
		bend = k.SupportBend
	}
	lift := bend * k.LiftRatio

	var v float64
	switch {
	case legPhase < heelStrikeEnd:
		v = gamemath.Lerp(k.HeelStrike, k.StanceMin, legPhase/heelStrikeEnd)
	case legPhase < stanceEnd:
		t := (legPhase - heelStrikeEnd) / (stanceEnd - heelStrikeEnd)
		v = gamemath.Lerp(k.StanceMin, k.ToeOff, t)
	case legPhase < toeOffEnd:
		t := (legPhase - stanceEnd) / (toeOffEnd - stanceEnd)
		v = gamemath.Lerp(k.ToeOff, lift, t)
	case legPhase < swingEnd:
		// Peak bend lands mid-swing.
		t := (legPhase - toeOffEnd) / (swingEnd - toeOffEnd)
		v = gamemath.Bump(lift, k.ReachOut, bend, t)
	default:
		t := (legPhase - swingEnd) / (1 - swingEnd)
		v = gamemath.Lerp(k.ReachOut, k.HeelStrike, math.Sin(t*math.Pi/2))
	}
	return gamemath.Clamp(v, k.SafeMin, k.SafeMax)
}
