package gait

import (
	"math"

	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/posecache"
	"github.com/automoto/rigmotion/rig"
)

// Locomotion drives the walk cycle of one character.
type Locomotion struct {
	Creature  config.Creature
	Seed      float64
	Weapon    config.WeaponClass
	HasWeapon bool
	Phase     Phase

	// Cache is optional. Knee and elbow curves are memoized through it.
	Cache *posecache.Cache
}

// Sample is one frame of locomotion output.
type Sample struct {
	Pose rig.Pose
	Bob  float64 // vertical root offset in skeleton units
}

// NewLocomotion starts a character at the beginning of its cycle.
func NewLocomotion(creature config.Creature, seed float64) *Locomotion {
	return &Locomotion{Creature: creature, Seed: seed}
}

func (l *Locomotion) gait() config.GaitConfig {
	if g, ok := config.Gaits[l.Creature]; ok {
		return g
	}
	return config.Gaits[config.CreatureHumanoid]
}

// Advance steps the gait phase for a character moving at speed.
func (l *Locomotion) Advance(dt, speed float64) {
	l.Phase.Advance(dt, math.Abs(speed), l.gait().CycleSpeed)
}

// Reset puts the cycle back to its start.
func (l *Locomotion) Reset() {
	l.Phase.Reset()
}

// Sample computes the locomotion pose at the current phase. A standing
// character gets a neutral leg pose and no bob.
func (l *Locomotion) Sample(moving bool) Sample {
	if l.Creature == config.CreatureBird {
		return l.birdSample(moving)
	}
	return l.humanoidSample(moving)
}

func (l *Locomotion) humanoidSample(moving bool) Sample {
	g := l.gait()
	var pose rig.Pose
	if !moving {
		pose.Set(rig.LeftHip, rig.Angles{})
		pose.Set(rig.RightHip, rig.Angles{})
		pose.Set(rig.LeftKnee, rig.Angles{X: config.Knee.StanceMin})
		pose.Set(rig.RightKnee, rig.Angles{X: config.Knee.StanceMin})
		return Sample{Pose: pose}
	}

	left := l.Phase.Value()
	right := l.Phase.Offset(0.5)

	hipAmp := AddAsymmetry(g.HipSwing, l.Seed, g.Asymmetry)
	shoulderAmp := AddAsymmetry(g.ShoulderSwing, l.Seed+1, g.Asymmetry)

	pose.Set(rig.LeftHip, rig.Angles{X: HipSwing(left, hipAmp)})
	pose.Set(rig.RightHip, rig.Angles{X: HipSwing(right, hipAmp)})

	knees := l.knees(left, right)
	pose = pose.Overlay(knees)

	pose.Set(rig.LeftShoulder, rig.Angles{X: ShoulderSwing(right, shoulderAmp)})
	pose.Set(rig.RightShoulder, rig.Angles{X: ShoulderSwing(left, shoulderAmp)})
	elbows := l.elbows(left, right)
	elbows.Each(func(j rig.JointID, a rig.Angles) {
		pose.Set(j, a.Scale(g.ElbowScale))
	})

	pose.Set(rig.Torso, rig.Angles{Y: g.TorsoSway * math.Sin(2*math.Pi*left)})

	// Two bobs per cycle, highest mid-stance of each leg.
	bob := g.BobHeight * 0.5 * (1 - math.Cos(4*math.Pi*left))
	return Sample{Pose: pose, Bob: bob}
}

// knees returns both knee flexions, memoized when a cache is attached. The
// weapon-side leg braces as the supporting leg.
func (l *Locomotion) knees(left, right float64) rig.Pose {
	support := l.HasWeapon
	compute := func() rig.Pose {
		var p rig.Pose
		p.Set(rig.LeftKnee, rig.Angles{X: KneeFlexion(left, false)})
		p.Set(rig.RightKnee, rig.Angles{X: KneeFlexion(right, support)})
		return p
	}
	if l.Cache == nil {
		return compute()
	}
	mod := "free"
	if support {
		mod = "support"
	}
	key := posecache.Key("knee", left, config.Cache.BucketWidth, mod)
	if p, ok := l.Cache.Get(key, left); ok {
		return p
	}
	p := compute()
	l.Cache.Put(key, p, left)
	return p
}

func (l *Locomotion) elbows(left, right float64) rig.Pose {
	weight := 0.0
	if l.HasWeapon {
		weight = config.Weapons[l.Weapon].Weight
	}
	compute := func() rig.Pose {
		var p rig.Pose
		p.Set(rig.LeftElbow, rig.Angles{X: ElbowSwing(right, config.ArmSupporting, 0)})
		role := config.ArmSupporting
		if l.HasWeapon {
			role = config.ArmWeapon
		}
		p.Set(rig.RightElbow, rig.Angles{X: ElbowSwing(left, role, weight)})
		return p
	}
	if l.Cache == nil {
		return compute()
	}
	mod := "bare"
	if l.HasWeapon {
		mod = l.Weapon.String()
	}
	key := posecache.Key("elbow", left, config.Cache.BucketWidth, mod)
	if p, ok := l.Cache.Get(key, left); ok {
		return p
	}
	p := compute()
	l.Cache.Put(key, p, left)
	return p
}

func (l *Locomotion) birdSample(moving bool) Sample {
	g := l.gait()
	var pose rig.Pose
	if !moving {
		pose.Set(rig.LeftHip, rig.Angles{})
		pose.Set(rig.RightHip, rig.Angles{})
		pose.Set(rig.LeftKnee, rig.Angles{X: g.KneeTucked * 0.3})
		pose.Set(rig.RightKnee, rig.Angles{X: g.KneeTucked * 0.3})
		return Sample{Pose: pose}
	}

	p := l.Phase.Value()
	lift := math.Max(0, math.Sin(2*math.Pi*p)) // airborne half of the hop
	crouch := 0.5 - 0.5*math.Cos(2*math.Pi*p)

	knee := rig.Angles{X: g.KneeTucked * (0.3 + 0.7*crouch)}
	hip := rig.Angles{X: AddAsymmetry(g.HipSwing, l.Seed, g.Asymmetry) * lift}
	pose.Set(rig.LeftHip, hip)
	pose.Set(rig.RightHip, hip)
	pose.Set(rig.LeftKnee, knee)
	pose.Set(rig.RightKnee, knee)

	flapAmp := AddAsymmetry(g.WingFlap, l.Seed+1, g.Asymmetry)
	flap := g.WingFold + flapAmp*lift*math.Abs(math.Sin(2*math.Pi*g.FlapSpeed*p))
	pose.Set(rig.LeftWing, rig.Angles{X: flap})
	pose.Set(rig.RightWing, rig.Angles{X: flap * 0.9})

	pose.Set(rig.Head, rig.Angles{X: g.HeadNod * math.Sin(2*math.Pi*p)})
	pose.Set(rig.Torso, rig.Angles{X: g.TorsoSway * math.Sin(2*math.Pi*p)})

	return Sample{Pose: pose, Bob: g.HopHeight*lift + g.BobHeight*crouch}
}

// SwingPose returns the lower body and off-hand of a character mid-swing.
// With procedural set, the weapon elbow and wrist follow the per-weapon
// curves as well.
func SwingPose(attackPhase float64, weapon config.WeaponClass, stance config.Stance, procedural bool) rig.Pose {
	var pose rig.Pose
	knees := CombatStance(attackPhase, stance)
	pose.Set(rig.LeftKnee, rig.Angles{X: knees.Front})
	pose.Set(rig.RightKnee, rig.Angles{X: knees.Back})
	pose.Set(rig.LeftHip, rig.Angles{X: knees.Front * 0.5})
	pose.Set(rig.RightHip, rig.Angles{X: -knees.Back * 0.5})
	pose.Set(rig.LeftElbow, rig.Angles{X: BalanceElbow(attackPhase)})
	if procedural {
		pose.Set(rig.RightElbow, rig.Angles{X: WeaponElbow(attackPhase, weapon)})
		pose.Set(rig.RightWrist, WeaponWrist(attackPhase, weapon))
	}
	return pose
}
