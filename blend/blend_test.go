package blend

import (
	"math"
	"testing"

	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/rig"
)

func TestNewStartsAtIdle(t *testing.T) {
	c := New(config.CreatureHumanoid)
	idle := PoseFor(config.CreatureHumanoid, config.PoseIdle)
	if !c.Current().ApproxEqual(idle, 0) || !c.Target().ApproxEqual(idle, 0) {
		t.Error("controller should start idle to idle")
	}
	if c.State() != config.PoseIdle {
		t.Errorf("State() = %s", c.State())
	}
}

func TestTickConvergesMonotonically(t *testing.T) {
	c := New(config.CreatureHumanoid)
	c.SetTargetFromState(config.PoseDrawing4)
	target := c.Target()

	prev := c.Current().MaxDelta(target)
	for i := 0; i < 200; i++ {
		c.Tick(1.0 / 60) // rate*dt < 1
		d := c.Current().MaxDelta(target)
		if d > prev {
			t.Fatalf("tick %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Errorf("did not converge, distance %v", prev)
	}
	if !c.Converged(1e-6) {
		t.Error("Converged() should agree")
	}
}

func TestTickStaysOnStraightPath(t *testing.T) {
	c := New(config.CreatureHumanoid)
	start := c.Current().At(rig.RightElbow)
	c.SetTargetFromState(config.PoseDrawing3)
	end := c.Target().At(rig.RightElbow)

	for i := 0; i < 30; i++ {
		c.Tick(0.01)
		cur := c.Current().At(rig.RightElbow)
		// Fraction along the segment must be the same on every axis and
		// stay within [0,1].
		f := (cur.X - start.X) / (end.X - start.X)
		if f < 0 || f > 1 {
			t.Fatalf("left the segment: f = %v", f)
		}
		if end.Z != start.Z {
			if fz := (cur.Z - start.Z) / (end.Z - start.Z); math.Abs(fz-f) > 1e-9 {
				t.Fatalf("axes drifted apart: %v vs %v", f, fz)
			}
		}
	}
}

func TestTickFactorIsClamped(t *testing.T) {
	c := New(config.CreatureHumanoid)
	c.SetTargetFromState(config.PoseWalking)
	c.Tick(10) // dt*rate far above 1
	if !c.Current().ApproxEqual(c.Target(), 1e-12) {
		t.Errorf("large dt should land exactly on target, off by %v", c.Current().MaxDelta(c.Target()))
	}
	c.SetTargetFromState(config.PoseIdle)
	before := c.Current()
	c.Tick(-1)
	if !c.Current().ApproxEqual(before, 0) {
		t.Error("negative dt should not move the pose")
	}
}

func TestRetargetDebounce(t *testing.T) {
	c := New(config.CreatureHumanoid)
	if c.SetTargetFromState(config.PoseIdle) {
		t.Error("same state should not retarget")
	}
	if !c.SetTargetFromState(config.PoseWalking) {
		t.Error("walking should retarget")
	}

	nudged := c.Target().With(rig.Head, c.Target().At(rig.Head).Add(rig.Angles{X: 0.005}))
	if c.SetTarget(nudged) {
		t.Error("sub-threshold change should be ignored")
	}
	moved := c.Target().With(rig.Head, c.Target().At(rig.Head).Add(rig.Angles{X: 0.05}))
	if !c.SetTarget(moved) {
		t.Error("change above threshold should retarget")
	}
}

func TestRetargetKeepsCurrent(t *testing.T) {
	c := New(config.CreatureHumanoid)
	c.SetTargetFromState(config.PoseDrawing4)
	c.Tick(0.05)
	mid := c.Current()

	c.SetTargetFromState(config.PoseWalking)
	if !c.Current().ApproxEqual(mid, 0) {
		t.Error("retarget must not reset current")
	}
}

func TestApplySkipsMissingJoints(t *testing.T) {
	r := rig.NewRig([]rig.BoneDef{
		{Joint: rig.Torso, Parent: rig.Root, Length: 1, Flex: 1},
		{Joint: rig.Head, Parent: rig.Torso, Length: 1, Flex: 1},
	})
	c := New(config.CreatureHumanoid)
	c.SetTargetFromState(config.PoseWalking)
	c.Snap()
	c.Apply(r)

	if got, want := r.At(rig.Head).Rotation, c.Current().At(rig.Head); got != want {
		t.Errorf("head = %+v, want %+v", got, want)
	}
}

func TestBirdPoses(t *testing.T) {
	c := New(config.CreatureBird)
	if !c.Current().Has(rig.LeftWing) {
		t.Error("bird idle should include wings")
	}
	// Birds have no drawing poses and fall back to idle.
	if c.SetTargetFromState(config.PoseDrawing2) {
		t.Error("missing bird pose should resolve to idle and not retarget")
	}
}

func TestDrawStageBands(t *testing.T) {
	tests := []struct {
		charge float64
		want   config.PoseStateID
	}{
		{0, config.PoseDrawing1},
		{0.249, config.PoseDrawing1},
		{0.25, config.PoseDrawing2},
		{0.5, config.PoseDrawing3},
		{0.6, config.PoseDrawing3},
		{0.75, config.PoseDrawing4},
		{1, config.PoseDrawing4},
	}
	for _, tt := range tests {
		if got := DrawStage(tt.charge); got != tt.want {
			t.Errorf("DrawStage(%v) = %s, want %s", tt.charge, got, tt.want)
		}
	}
}

func TestHandRotationScenario(t *testing.T) {
	// easeInOutQuad(0.6) = 1 - (-2*0.6+2)^2/2 = 0.68
	want := 0.68 * math.Pi / 8
	if got := HandRotation(0.6); math.Abs(got-want) > 1e-6 {
		t.Errorf("HandRotation(0.6) = %v, want %v", got, want)
	}
	if HandRotation(0) != 0 {
		t.Error("no charge, no rotation")
	}
	if got := HandRotation(1); math.Abs(got-math.Pi/8) > 1e-6 {
		t.Errorf("HandRotation(1) = %v", got)
	}
}

func TestLayerHandIsNotBlended(t *testing.T) {
	c := New(config.CreatureHumanoid)
	c.SetTargetFromState(DrawStage(0.6))
	c.Tick(1.0 / 60)

	p := LayerHand(c.Current(), 0.6)
	if got := p.At(rig.LeftHand).X; got != HandRotation(0.6) {
		t.Errorf("hand = %v, want direct %v", got, HandRotation(0.6))
	}
	if c.Current().At(rig.LeftHand).X != 0 {
		t.Error("layering must not write back into the controller")
	}
}

func TestBowChargeAndRelease(t *testing.T) {
	var b Bow
	for i := 0; i < 120; i++ {
		b.Update(1.0/60, true)
	}
	if b.Charge != 1 || b.Stage() != config.PoseDrawing4 {
		t.Errorf("full draw: charge %v stage %s", b.Charge, b.Stage())
	}
	b.Update(1, false)
	if b.Charge != 0 || b.Drawing {
		t.Errorf("release: charge %v drawing %v", b.Charge, b.Drawing)
	}
}

func TestSeedOnlyTouchesDrivenJoints(t *testing.T) {
	c := New(config.CreatureHumanoid)
	before := c.Current()

	var p rig.Pose
	p.Set(rig.RightElbow, rig.Angles{X: -2})
	p.Set(rig.RightWrist, rig.Angles{X: 1})
	c.Seed(p)

	cur := c.Current()
	if got := cur.At(rig.RightElbow).X; got != -2 {
		t.Errorf("seeded elbow = %v, want -2", got)
	}
	if cur.Has(rig.RightWrist) != before.Has(rig.RightWrist) {
		t.Error("Seed should not add joints the posture lacks")
	}
	if cur.At(rig.Head) != before.At(rig.Head) {
		t.Error("Seed changed an unrelated joint")
	}
	if !c.Target().ApproxEqual(before, 0) {
		t.Error("Seed should leave the target alone")
	}
}
