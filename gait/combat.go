package gait

import (
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
	"github.com/automoto/rigmotion/rig"
)

// segment locates attackPhase within the windup/strike/recovery split and
// returns the segment index and its local progress.
func segment(attackPhase float64) (int, float64) {
	s := config.Strike
	switch {
	case attackPhase < s.WindupEnd:
		return 0, attackPhase / s.WindupEnd
	case attackPhase < s.StrikeEnd:
		return 1, (attackPhase - s.WindupEnd) / (s.StrikeEnd - s.WindupEnd)
	default:
		return 2, (attackPhase - s.StrikeEnd) / (1 - s.StrikeEnd)
	}
}

// threeKey runs rest -> first -> second -> rest over the three segments.
func threeKey(attackPhase, rest, first, second float64) float64 {
	i, t := segment(attackPhase)
	switch i {
	case 0:
		return gamemath.Lerp(rest, first, t)
	case 1:
		return gamemath.Lerp(first, second, t)
	default:
		return gamemath.Lerp(second, rest, t)
	}
}

// CombatStance returns front and back knee bend while swinging.
func CombatStance(attackPhase float64, stance config.Stance) config.StanceKnees {
	p, ok := config.Strike.Stances[stance]
	if !ok {
		p = config.Strike.Stances[config.StanceAggressive]
	}
	return config.StanceKnees{
		Front: threeKey(attackPhase, p.Base.Front, p.Windup.Front, p.Strike.Front),
		Back:  threeKey(attackPhase, p.Base.Back, p.Windup.Back, p.Strike.Back),
	}
}

func amplitude(weapon config.WeaponClass) float64 {
	if w, ok := config.Weapons[weapon]; ok {
		return w.Amplitude
	}
	return 1
}

// scaled moves key away from rest by the weapon amplitude.
func scaled(rest, key, amp float64) float64 {
	return rest + (key-rest)*amp
}

// WeaponElbow returns the weapon arm's elbow flexion during a swing.
func WeaponElbow(attackPhase float64, weapon config.WeaponClass) float64 {
	s := config.Strike
	amp := amplitude(weapon)
	return threeKey(attackPhase,
		s.ElbowRest,
		scaled(s.ElbowRest, s.ElbowCocked, amp),
		scaled(s.ElbowRest, s.ElbowExtended, amp),
	)
}

// WeaponWrist returns the weapon wrist rotation. The strike segment snaps
// with a 5th-power ease-out.
func WeaponWrist(attackPhase float64, weapon config.WeaponClass) rig.Angles {
	s := config.Strike
	amp := amplitude(weapon)
	cocked := s.WristRest.Add(s.WristCocked.Sub(s.WristRest).Scale(amp))
	snapped := s.WristRest.Add(s.WristSnapped.Sub(s.WristRest).Scale(amp))

	i, t := segment(attackPhase)
	switch i {
	case 0:
		return s.WristRest.Lerp(cocked, t)
	case 1:
		return cocked.Lerp(snapped, gamemath.SnapEase(t))
	default:
		return snapped.Lerp(s.WristRest, t)
	}
}

// BalanceElbow is the off-hand counter motion during a swing.
func BalanceElbow(attackPhase float64) float64 {
	s := config.Strike
	return threeKey(attackPhase, s.BalanceRest, s.BalanceWindup, s.BalanceStrike)
}
