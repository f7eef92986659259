package attack

import (
	"math"
	"testing"

	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/rig"
)

var scenario = Durations{Windup: 0.3, Slash: 0.2, Recovery: 0.4}

func TestScenarioProgressDuringWindup(t *testing.T) {
	clk := clock.NewManual(100)
	tl := New(clk)
	if !tl.StartWith(config.WeaponSword, scenario) {
		t.Fatal("StartWith refused a valid swing")
	}
	clk.Advance(0.15)
	if !tl.Advance() {
		t.Fatal("swing ended early")
	}
	if got := tl.PhaseName(); got != "windup" {
		t.Errorf("PhaseName() = %q, want windup", got)
	}
	if got := tl.Progress(); math.Abs(got-0.15/0.9) > 1e-9 {
		t.Errorf("Progress() = %v, want ~0.167", got)
	}
	if got := tl.PhaseProgress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("PhaseProgress() = %v, want 0.5", got)
	}
}

func TestPhaseSequence(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    string
		active  bool
	}{
		{0.0, "windup", true},
		{0.29, "windup", true},
		{0.3, "slash", true},
		{0.49, "slash", true},
		{0.5, "recovery", true},
		{0.89, "recovery", true},
		{0.9, "idle", false},
		{3.0, "idle", false},
	}
	for _, tt := range tests {
		clk := clock.NewManual(0)
		tl := New(clk)
		tl.StartWith(config.WeaponAxe, scenario)
		clk.Set(tt.elapsed)
		if got := tl.Advance(); got != tt.active {
			t.Errorf("elapsed %v: Advance() = %v, want %v", tt.elapsed, got, tt.active)
		}
		if got := tl.PhaseName(); got != tt.want {
			t.Errorf("elapsed %v: PhaseName() = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestLargeStepSkipsPhasesInOrder(t *testing.T) {
	clk := clock.NewManual(0)
	tl := New(clk)
	var seen []Phase
	tl.OnPhase = func(p Phase) { seen = append(seen, p) }

	tl.StartWith(config.WeaponClub, scenario)
	clk.Advance(0.6)
	tl.Advance()
	clk.Advance(1)
	tl.Advance()

	want := []Phase{PhaseWindup, PhaseSlash, PhaseRecovery, PhaseIdle}
	if len(seen) != len(want) {
		t.Fatalf("phases entered = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("phases entered = %v, want %v", seen, want)
		}
	}
}

func TestCompletionSnapsToNeutral(t *testing.T) {
	for w := config.WeaponClass(0); w < config.WeaponClassCount; w++ {
		t.Run(w.String(), func(t *testing.T) {
			clk := clock.NewManual(0)
			tl := New(clk)
			tl.Start(w)
			total := DurationsFor(w).Total()

			// Stop just short of the end so the last interpolated pose is
			// not neutral.
			for clk.Now() < total*0.97 {
				clk.Advance(1.0 / 60)
				tl.Advance()
			}
			clk.Set(total + 0.001)
			if tl.Advance() {
				t.Fatal("Advance() should report completion")
			}

			neutral := config.Swing.Neutral
			p := tl.Pose()
			checks := []struct {
				joint rig.JointID
				want  rig.Angles
			}{
				{rig.RightShoulder, neutral.Shoulder},
				{rig.RightElbow, neutral.Elbow},
				{rig.RightWrist, neutral.Wrist},
				{rig.Torso, rig.Angles{Y: neutral.TorsoYaw}},
			}
			for _, c := range checks {
				if got := p.At(c.joint); got != c.want {
					t.Errorf("%s = %+v, want exact %+v", c.joint, got, c.want)
				}
			}
			if tl.IsAttacking() || tl.Progress() != 0 {
				t.Error("timeline should be idle after completion")
			}
		})
	}
}

func TestStartIsNoopWhileActive(t *testing.T) {
	clk := clock.NewManual(0)
	tl := New(clk)
	tl.StartWith(config.WeaponSword, scenario)
	clk.Advance(0.2)
	tl.Advance()

	if tl.Start(config.WeaponAxe) {
		t.Error("second Start should be refused")
	}
	if tl.Weapon() != config.WeaponSword || tl.Durations() != scenario {
		t.Error("running swing was replaced")
	}
	clk.Advance(0.1)
	tl.Advance()
	if got := tl.PhaseName(); got != "slash" {
		t.Errorf("previous swing should continue, phase = %q", got)
	}
}

func TestStartRejectsNonPositiveDurations(t *testing.T) {
	tl := New(clock.NewManual(0))
	if tl.StartWith(config.WeaponSword, Durations{Windup: 0.3, Slash: 0, Recovery: 0.4}) {
		t.Error("zero slash should be refused")
	}
	if tl.IsAttacking() {
		t.Error("refused start must leave the timeline idle")
	}
}

func TestCancel(t *testing.T) {
	clk := clock.NewManual(0)
	tl := New(clk)
	tl.Start(config.WeaponAxe)
	clk.Advance(0.35)
	tl.Advance()
	tl.Cancel()

	if tl.IsAttacking() || tl.PhaseName() != "idle" {
		t.Fatalf("Cancel left phase %q", tl.PhaseName())
	}
	if !tl.Pose().ApproxEqual(tl.Neutral(), 0) {
		t.Error("Cancel should snap to neutral")
	}
	if tl.Advance() {
		t.Error("Advance after Cancel should report nothing running")
	}
	if !tl.Start(config.WeaponAxe) {
		t.Error("a new swing should start after Cancel")
	}
	tl.Cancel()
	tl.Cancel() // idempotent
}

func TestPoseIsContinuousAcrossPhaseBoundaries(t *testing.T) {
	sample := func(elapsed float64) rig.Pose {
		clk := clock.NewManual(0)
		tl := New(clk)
		tl.StartWith(config.WeaponAxe, scenario)
		clk.Set(elapsed)
		tl.Advance()
		return tl.Pose()
	}
	for _, b := range []float64{0.3, 0.5} {
		if d := sample(b - 1e-9).MaxDelta(sample(b)); d > 1e-6 {
			t.Errorf("pose jumps by %v at %v", d, b)
		}
	}
}

func TestSlashEaseRampsLate(t *testing.T) {
	clk := clock.NewManual(0)
	tl := New(clk)
	tl.StartWith(config.WeaponSword, scenario)
	clk.Set(0.3 + 0.2*0.5)
	tl.Advance()

	keys := KeyframesFor(config.WeaponSword)
	got := tl.Pose().At(rig.RightShoulder).X
	from, to := keys.Windup.Shoulder.X, keys.Slash.Shoulder.X
	progress := (got - from) / (to - from)
	// u = 0.25, u²(3-2u) = 0.15625
	if math.Abs(progress-0.15625) > 1e-9 {
		t.Errorf("slash progress at half time = %v, want 0.15625", progress)
	}
}

func TestKeyframesScaleFromNeutral(t *testing.T) {
	sword := KeyframesFor(config.WeaponSword)
	axe := KeyframesFor(config.WeaponAxe)
	if sword.Neutral != axe.Neutral {
		t.Error("neutral keyframe must be shared across weapons")
	}
	n := sword.Neutral.Shoulder.X
	if math.Abs(axe.Windup.Shoulder.X-n) <= math.Abs(sword.Windup.Shoulder.X-n) {
		t.Error("axe windup should reach further than sword windup")
	}
}

func TestCurveProgressFollowsPhases(t *testing.T) {
	s := config.Strike
	d := DurationsFor(config.WeaponSword)
	tests := []struct {
		name    string
		elapsed float64
		phase   Phase
		want    float64
	}{
		{"windup midpoint", d.Windup / 2, PhaseWindup, s.WindupEnd / 2},
		{"slash start", d.Windup, PhaseSlash, s.WindupEnd},
		{"slash midpoint", d.Windup + d.Slash/2, PhaseSlash, (s.WindupEnd + s.StrikeEnd) / 2},
		{"recovery start", d.Windup + d.Slash, PhaseRecovery, s.StrikeEnd},
		{"early recovery", 0.57 * d.Total(), PhaseRecovery, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewManual(0)
			tl := New(clk)
			tl.Start(config.WeaponSword)
			clk.Set(tt.elapsed)
			tl.Advance()

			if tl.Phase() != tt.phase {
				t.Fatalf("phase = %s, want %s", tl.Phase(), tt.phase)
			}
			got := tl.CurveProgress()
			if tt.want >= 0 && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CurveProgress() = %v, want %v", got, tt.want)
			}
			// The curves must sit in the segment of the timeline's phase.
			lo, hi := 0.0, s.WindupEnd
			switch tt.phase {
			case PhaseSlash:
				lo, hi = s.WindupEnd, s.StrikeEnd
			case PhaseRecovery:
				lo, hi = s.StrikeEnd, 1
			}
			if got < lo-1e-9 || got > hi+1e-9 {
				t.Errorf("CurveProgress() = %v outside [%v, %v]", got, lo, hi)
			}
		})
	}

	idle := New(clock.NewManual(0))
	if got := idle.CurveProgress(); got != 0 {
		t.Errorf("idle CurveProgress() = %v", got)
	}
}

func TestFireReportsTransitions(t *testing.T) {
	tl := New(clock.NewManual(0))
	if tl.fire(eventSlash) {
		t.Error("slash fired from idle")
	}
	if !tl.fire(eventWindup) {
		t.Fatal("windup refused from idle")
	}
	if tl.fire(eventWindup) {
		t.Error("windup fired twice")
	}
	if tl.Phase() != PhaseWindup {
		t.Errorf("phase = %s, want windup", tl.Phase())
	}
}
