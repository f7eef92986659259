package config

import (
	"math"

	"github.com/automoto/rigmotion/rig"
)

// buildPoses assembles the discrete pose sets for every creature. Attack
// poses are taken from the standard swing so the two never disagree.
func buildPoses() map[Creature]map[PoseStateID]PoseDef {
	humanoid := map[PoseStateID]PoseDef{
		PoseIdle: {
			rig.Torso:         {},
			rig.Head:          {},
			rig.LeftShoulder:  {X: 0.05, Z: 0.08},
			rig.RightShoulder: {X: -0.05, Z: 0.08},
			rig.LeftElbow:     {X: -0.25},
			rig.RightElbow:    {X: -0.3},
			rig.LeftHand:      {},
		},
		PoseWalking: {
			rig.Torso:         {X: 0.06},
			rig.Head:          {X: -0.04},
			rig.LeftShoulder:  {X: 0.1, Z: 0.05},
			rig.RightShoulder: {X: -0.1, Z: 0.05},
			rig.LeftElbow:     {X: -0.35},
			rig.RightElbow:    {X: -0.4},
			rig.LeftHand:      {},
		},
	}

	// Bow held in the left hand, right hand draws the string back.
	for i, charge := range []float64{0.15, 0.4, 0.65, 0.9} {
		humanoid[PoseDrawing1+PoseStateID(i)] = PoseDef{
			rig.Torso:         {Y: -0.1 - 0.15*charge},
			rig.Head:          {Y: 0.1 * charge},
			rig.LeftShoulder:  {X: 1.45, Z: 0.1},
			rig.RightShoulder: {X: 1.3 - 0.5*charge, Z: 0.2 * charge},
			rig.LeftElbow:     {X: -0.05},
			rig.RightElbow:    {X: -0.4 - 1.9*charge},
			rig.LeftHand:      {},
		}
	}

	humanoid[PoseAttackNeutral] = keyframePose(Swing.Neutral)
	humanoid[PoseAttackWindup] = keyframePose(Swing.Windup)
	humanoid[PoseAttackSlash] = keyframePose(Swing.Slash)

	bird := map[PoseStateID]PoseDef{
		PoseIdle: {
			rig.Torso:     {},
			rig.Head:      {X: -0.1},
			rig.LeftWing:  {X: Gaits[CreatureBird].WingFold},
			rig.RightWing: {X: Gaits[CreatureBird].WingFold},
		},
		PoseWalking: {
			rig.Torso:     {X: 0.15},
			rig.Head:      {X: 0.1},
			rig.LeftWing:  {X: Gaits[CreatureBird].WingFold + 0.1},
			rig.RightWing: {X: Gaits[CreatureBird].WingFold + 0.1},
		},
	}

	return map[Creature]map[PoseStateID]PoseDef{
		CreatureHumanoid: humanoid,
		CreatureBird:     bird,
	}
}

func keyframePose(k Keyframe) PoseDef {
	return PoseDef{
		rig.Torso:         {Y: k.TorsoYaw},
		rig.RightShoulder: k.Shoulder,
		rig.RightElbow:    k.Elbow,
		rig.RightWrist:    k.Wrist,
	}
}

// Skeletons holds the bone layout for each creature, parents first.
var Skeletons = map[Creature][]rig.BoneDef{
	CreatureHumanoid: {
		{Joint: rig.Torso, Parent: rig.Root, Length: 16, Rest: math.Pi, Flex: 1},
		{Joint: rig.Head, Parent: rig.Torso, Length: 6, Rest: 0, Flex: 1},
		{Joint: rig.LeftShoulder, Parent: rig.Torso, Length: 9, Rest: math.Pi, Flex: 1},
		{Joint: rig.LeftElbow, Parent: rig.LeftShoulder, Length: 8, Rest: 0, Flex: -1},
		{Joint: rig.LeftWrist, Parent: rig.LeftElbow, Length: 1.5, Rest: 0, Flex: 1},
		{Joint: rig.LeftHand, Parent: rig.LeftWrist, Length: 1.5, Rest: 0, Flex: 1},
		{Joint: rig.RightShoulder, Parent: rig.Torso, Length: 9, Rest: math.Pi, Flex: 1},
		{Joint: rig.RightElbow, Parent: rig.RightShoulder, Length: 8, Rest: 0, Flex: -1},
		{Joint: rig.RightWrist, Parent: rig.RightElbow, Length: 1.5, Rest: 0, Flex: 1},
		{Joint: rig.RightHand, Parent: rig.RightWrist, Length: 1.5, Rest: 0, Flex: 1},
		{Joint: rig.LeftHip, Parent: rig.Root, Length: 12, Rest: 0, Flex: 1},
		{Joint: rig.LeftKnee, Parent: rig.LeftHip, Length: 12, Rest: 0, Flex: -1},
		{Joint: rig.RightHip, Parent: rig.Root, Length: 12, Rest: 0, Flex: 1},
		{Joint: rig.RightKnee, Parent: rig.RightHip, Length: 12, Rest: 0, Flex: -1},
	},
	CreatureBird: {
		{Joint: rig.Torso, Parent: rig.Root, Length: 9, Rest: math.Pi / 2, Flex: 1},
		{Joint: rig.Head, Parent: rig.Torso, Length: 4, Rest: -0.9, Flex: 1},
		{Joint: rig.LeftWing, Parent: rig.Torso, Length: 7, Rest: -math.Pi * 0.85, Flex: 1},
		{Joint: rig.RightWing, Parent: rig.Torso, Length: 7, Rest: -math.Pi * 0.8, Flex: 1},
		{Joint: rig.LeftHip, Parent: rig.Root, Length: 4, Rest: 0, Flex: 1},
		{Joint: rig.LeftKnee, Parent: rig.LeftHip, Length: 4, Rest: 0, Flex: -1},
		{Joint: rig.RightHip, Parent: rig.Root, Length: 4, Rest: 0, Flex: 1},
		{Joint: rig.RightKnee, Parent: rig.RightHip, Length: 4, Rest: 0, Flex: -1},
	},
}
