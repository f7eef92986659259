package systems

import (
	"github.com/automoto/rigmotion/blend"
	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gait"
	"github.com/automoto/rigmotion/rig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion advances each walk cycle and samples this frame's legs.
func UpdateLocomotion(e *ecs.ECS) {
	dt := frameDelta(e)

	components.Locomotion.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		loco := components.Locomotion.Get(entry)

		loco.Gait.Weapon = char.Weapon
		loco.Gait.HasWeapon = char.HasWeapon
		if char.Moving {
			loco.Gait.Advance(dt, char.Speed)
		}
		loco.Sample = loco.Gait.Sample(char.Moving)
	})
}

// UpdateAttacks consumes attack requests and steps every swing timeline. A
// finished swing hands its neutral pose to the blend so the arm eases back
// into posture.
func UpdateAttacks(e *ecs.ECS) {
	components.Attack.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		atk := components.Attack.Get(entry)

		if char.AttackRequested {
			char.AttackRequested = false
			if char.HasWeapon {
				atk.Timeline.Start(char.Weapon)
			}
		}
		wasActive := atk.Timeline.IsAttacking()
		atk.Finished = !atk.Timeline.Advance() && wasActive
		if atk.Finished && entry.HasComponent(components.Blend) {
			components.Blend.Get(entry).Controller.Seed(atk.Timeline.Neutral())
		}
	})
}

// UpdateBlends picks each character's posture and eases toward it.
func UpdateBlends(e *ecs.ECS) {
	dt := frameDelta(e)

	components.Blend.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		ctrl := components.Blend.Get(entry).Controller

		state := cfg.PoseIdle
		if char.Moving {
			state = cfg.PoseWalking
		}
		if entry.HasComponent(components.Bow) {
			bow := components.Bow.Get(entry)
			bow.Update(dt, char.DrawingBow)
			if bow.Charge > 0 {
				state = bow.Stage()
			}
		}

		ctrl.SetTargetFromState(state)
		ctrl.Tick(dt)
	})
}

// UpdateSkeletons layers posture, walk cycle, swing and bow hand, then
// writes the result into each rig.
func UpdateSkeletons(e *ecs.ECS) {
	components.Skeleton.Each(e.World, func(entry *donburi.Entry) {
		skel := components.Skeleton.Get(entry)
		char := components.Character.Get(entry)

		var pose rig.Pose
		if entry.HasComponent(components.Blend) {
			pose = components.Blend.Get(entry).Controller.Current()
		}

		var charge float64
		if entry.HasComponent(components.Bow) {
			charge = components.Bow.Get(entry).Charge
		}

		var bob float64
		if entry.HasComponent(components.Locomotion) {
			sample := components.Locomotion.Get(entry).Sample
			pose = layerGait(pose, sample.Pose, charge == 0)
			bob = sample.Bob
		}

		if entry.HasComponent(components.Attack) {
			atk := components.Attack.Get(entry)
			switch {
			case atk.Timeline.IsAttacking():
				pose = layerSwing(pose, atk, char)
			case atk.Finished:
				// Joints only the swing drives keep this pose until the next one.
				pose = pose.Overlay(atk.Timeline.Neutral())
			}
		}

		if charge > 0 {
			pose = blend.LayerHand(pose, charge)
		}

		rig.Apply(skel.Rig, pose)
		if root := skel.Rig.At(rig.Root); root != nil {
			root.Position.Y = bob
		}
		skel.Pose = pose
	})
}

// layerGait puts the walk cycle over the posture. Legs replace the posture;
// torso, head and shoulder swing add to it. Arms are left alone when busy.
func layerGait(posture, walk rig.Pose, armsFree bool) rig.Pose {
	out := posture
	walk.Each(func(j rig.JointID, a rig.Angles) {
		switch j {
		case rig.Torso, rig.Head:
			out.Set(j, posture.At(j).Add(a))
		case rig.LeftShoulder, rig.RightShoulder:
			if armsFree {
				out.Set(j, posture.At(j).Add(a))
			}
		case rig.LeftElbow, rig.RightElbow:
			if armsFree {
				out.Set(j, a)
			}
		default:
			out.Set(j, a)
		}
	})
	return out
}

// layerSwing puts the swing over everything else. A walking character keeps
// its stride and only takes the upper body of the swing.
func layerSwing(pose rig.Pose, atk *components.AttackData, char *components.CharacterData) rig.Pose {
	tl := atk.Timeline
	pose = pose.Overlay(tl.Pose())

	body := gait.SwingPose(tl.CurveProgress(), tl.Weapon(), char.Stance, atk.Procedural)
	if char.Moving {
		body.Unset(rig.LeftHip)
		body.Unset(rig.RightHip)
		body.Unset(rig.LeftKnee)
		body.Unset(rig.RightKnee)
	}
	return pose.Overlay(body)
}
