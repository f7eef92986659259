package attack

import (
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/rig"
)

// Durations are the phase lengths of one swing in seconds.
type Durations struct {
	Windup   float64
	Slash    float64
	Recovery float64
}

// Total is the sum of the phase lengths.
func (d Durations) Total() float64 {
	return d.Windup + d.Slash + d.Recovery
}

// Valid reports whether every phase has positive length.
func (d Durations) Valid() bool {
	return d.Windup > 0 && d.Slash > 0 && d.Recovery > 0
}

// DurationsFor returns the configured timing of a weapon class.
func DurationsFor(w config.WeaponClass) Durations {
	wc := config.Weapons[w]
	return Durations{Windup: wc.Windup, Slash: wc.Slash, Recovery: wc.Recovery}
}

// Keyframes are the three poses a swing passes through.
type Keyframes struct {
	Neutral config.Keyframe
	Windup  config.Keyframe
	Slash   config.Keyframe
}

// KeyframesFor scales the standard swing by a weapon's multipliers. Neutral
// is shared by every weapon.
func KeyframesFor(w config.WeaponClass) Keyframes {
	m := config.Weapons[w].Swing
	base := config.Swing
	return Keyframes{
		Neutral: base.Neutral,
		Windup:  scaleKeyframe(base.Neutral, base.Windup, m),
		Slash:   scaleKeyframe(base.Neutral, base.Slash, m),
	}
}

func scaleKeyframe(neutral, k config.Keyframe, m config.SwingMultipliers) config.Keyframe {
	return config.Keyframe{
		Shoulder: neutral.Shoulder.Add(k.Shoulder.Sub(neutral.Shoulder).Scale(m.Shoulder)),
		Elbow:    neutral.Elbow.Add(k.Elbow.Sub(neutral.Elbow).Scale(m.Elbow)),
		Wrist:    neutral.Wrist.Add(k.Wrist.Sub(neutral.Wrist).Scale(m.Wrist)),
		TorsoYaw: neutral.TorsoYaw + (k.TorsoYaw-neutral.TorsoYaw)*m.Torso,
	}
}

// interpolate blends two keyframes axis by axis.
func interpolate(from, to config.Keyframe, t float64) config.Keyframe {
	return config.Keyframe{
		Shoulder: from.Shoulder.Lerp(to.Shoulder, t),
		Elbow:    from.Elbow.Lerp(to.Elbow, t),
		Wrist:    from.Wrist.Lerp(to.Wrist, t),
		TorsoYaw: from.TorsoYaw + (to.TorsoYaw-from.TorsoYaw)*t,
	}
}

// KeyframePose lays a keyframe onto the weapon-arm joints and torso.
func KeyframePose(k config.Keyframe) rig.Pose {
	var p rig.Pose
	p.Set(rig.RightShoulder, k.Shoulder)
	p.Set(rig.RightElbow, k.Elbow)
	p.Set(rig.RightWrist, k.Wrist)
	p.Set(rig.Torso, rig.Angles{Y: k.TorsoYaw})
	return p
}
