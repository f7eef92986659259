package gait

import (
	"math"
	"testing"

	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/posecache"
	"github.com/automoto/rigmotion/rig"
)

const (
	eps = 1e-9 // step to the left of a boundary
	tol = 1e-6
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestKneeFlexionHeelStrikeScenario(t *testing.T) {
	if got := KneeFlexion(0.05, false); !near(got, 0.075, 1e-12) {
		t.Errorf("KneeFlexion(0.05, false) = %v, want 0.075", got)
	}
}

func TestKneeFlexionBoundaryContinuity(t *testing.T) {
	boundaries := []float64{heelStrikeEnd, stanceEnd, toeOffEnd, swingEnd}
	for _, support := range []bool{false, true} {
		for _, b := range boundaries {
			left := KneeFlexion(b-eps, support)
			right := KneeFlexion(b, support)
			if !near(left, right, tol) {
				t.Errorf("support=%v: discontinuity at %v: %v vs %v", support, b, left, right)
			}
		}
		// Wrap from the end of extension back to heel strike.
		if end, start := KneeFlexion(1-eps, support), KneeFlexion(0, support); !near(end, start, tol) {
			t.Errorf("support=%v: wrap discontinuity %v vs %v", support, end, start)
		}
	}
}

func TestKneeFlexionPeaksMidSwing(t *testing.T) {
	mid := (toeOffEnd + swingEnd) / 2
	tests := []struct {
		support bool
		want    float64
	}{
		{false, config.Knee.SwingBend},
		{true, config.Knee.SupportBend},
	}
	for _, tt := range tests {
		if got := KneeFlexion(mid, tt.support); !near(got, tt.want, 1e-12) {
			t.Errorf("support=%v: mid-swing = %v, want %v", tt.support, got, tt.want)
		}
		if KneeFlexion(mid, tt.support) < KneeFlexion(toeOffEnd, tt.support) {
			t.Errorf("support=%v: peak should exceed lift-off", tt.support)
		}
	}
}

func TestKneeFlexionStaysInSafeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p := float64(i) / 1000
		for _, support := range []bool{false, true} {
			v := KneeFlexion(p, support)
			if v < config.Knee.SafeMin || v > config.Knee.SafeMax {
				t.Fatalf("KneeFlexion(%v, %v) = %v outside safe range", p, support, v)
			}
		}
	}
}

func TestElbowSwing(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := float64(i) / 100
		sup := ElbowSwing(p, config.ArmSupporting, 0)
		if sup >= 0 {
			t.Fatalf("supporting elbow should be flexed (negative), got %v at %v", sup, p)
		}
		if w := ElbowSwing(p, config.ArmWeapon, 1); w >= 0 {
			t.Fatalf("weapon elbow should be flexed (negative), got %v at %v", w, p)
		}
	}

	rangeOf := func(role config.ArmRole, weight float64) float64 {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < 400; i++ {
			v := ElbowSwing(float64(i)/400, role, weight)
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		return hi - lo
	}
	free := rangeOf(config.ArmSupporting, 0)
	light := rangeOf(config.ArmWeapon, 0)
	heavy := rangeOf(config.ArmWeapon, 1)
	if !(free > light && light > heavy) {
		t.Errorf("swing ranges free=%v light=%v heavy=%v, want damping by role and weight", free, light, heavy)
	}

	if a, b := ElbowSwing(0, config.ArmSupporting, 0), ElbowSwing(1, config.ArmSupporting, 0); !near(a, b, tol) {
		t.Errorf("elbow swing not periodic: %v vs %v", a, b)
	}
}

func TestAddAsymmetryIsDeterministic(t *testing.T) {
	a := AddAsymmetry(0.5, 3.7, 0.1)
	b := AddAsymmetry(0.5, 3.7, 0.1)
	if a != b {
		t.Errorf("AddAsymmetry not deterministic: %v vs %v", a, b)
	}
	if want := 0.5 * (1 + math.Sin(3.7*asymmetryK)*0.1); a != want {
		t.Errorf("AddAsymmetry = %v, want %v", a, want)
	}
	if got := AddAsymmetry(0.5, 3.7, 0); got != 0.5 {
		t.Errorf("zero intensity should leave value unchanged, got %v", got)
	}
	if AddAsymmetry(1, 1.7, 0.2) == AddAsymmetry(1, 4.2, 0.2) {
		t.Error("different seeds should jitter differently")
	}
}

func TestStrikeCurvesAreContinuous(t *testing.T) {
	boundaries := []float64{config.Strike.WindupEnd, config.Strike.StrikeEnd}
	curves := map[string]func(float64) float64{
		"aggressive front": func(p float64) float64 { return CombatStance(p, config.StanceAggressive).Front },
		"defensive back":   func(p float64) float64 { return CombatStance(p, config.StanceDefensive).Back },
		"balance elbow":    BalanceElbow,
		"wrist x":          func(p float64) float64 { return WeaponWrist(p, config.WeaponAxe).X },
		"wrist z":          func(p float64) float64 { return WeaponWrist(p, config.WeaponSword).Z },
	}
	for w := config.WeaponClass(0); w < config.WeaponClassCount; w++ {
		weapon := w
		curves["elbow "+weapon.String()] = func(p float64) float64 { return WeaponElbow(p, weapon) }
	}

	for name, f := range curves {
		for _, b := range boundaries {
			if l, r := f(b-eps), f(b); !near(l, r, tol) {
				t.Errorf("%s: discontinuity at %v: %v vs %v", name, b, l, r)
			}
		}
		if start, end := f(0), f(1); !near(start, end, tol) {
			t.Errorf("%s: does not return to rest: %v vs %v", name, start, end)
		}
	}
}

func TestWeaponAmplitudeOrdering(t *testing.T) {
	cocked := config.Strike.WindupEnd
	rest := config.Strike.ElbowRest
	axe := math.Abs(WeaponElbow(cocked, config.WeaponAxe) - rest)
	club := math.Abs(WeaponElbow(cocked, config.WeaponClub) - rest)
	sword := math.Abs(WeaponElbow(cocked, config.WeaponSword) - rest)
	if !(axe > club && club > sword) {
		t.Errorf("elbow amplitude axe=%v club=%v sword=%v", axe, club, sword)
	}
}

func TestWeaponWristSnaps(t *testing.T) {
	s := config.Strike
	quarter := s.WindupEnd + 0.25*(s.StrikeEnd-s.WindupEnd)
	cocked := WeaponWrist(s.WindupEnd, config.WeaponSword)
	snapped := WeaponWrist(s.StrikeEnd-eps, config.WeaponSword)
	q := WeaponWrist(quarter, config.WeaponSword)

	// 5th-power ease-out covers 1-(0.75)^5 of the distance at a quarter.
	progress := (q.X - cocked.X) / (snapped.X - cocked.X)
	if !near(progress, 1-math.Pow(0.75, 5), 1e-5) {
		t.Errorf("wrist progress at quarter strike = %v", progress)
	}
}

func TestPhaseAdvanceWraps(t *testing.T) {
	var p Phase
	for i := 0; i < 500; i++ {
		v := p.Advance(0.016, 90, 0.012)
		if v < 0 || v >= 1 {
			t.Fatalf("phase %v out of [0,1)", v)
		}
	}
	p.Set(-0.25)
	if !near(p.Value(), 0.75, 1e-12) {
		t.Errorf("Set(-0.25) = %v, want 0.75", p.Value())
	}
	if !near(p.Offset(0.5), 0.25, 1e-12) {
		t.Errorf("Offset(0.5) = %v", p.Offset(0.5))
	}
	p.Reset()
	if p.Value() != 0 {
		t.Errorf("Reset() left %v", p.Value())
	}
}

func TestLocomotionCacheMatchesDirect(t *testing.T) {
	cache := posecache.New(clock.NewManual(0), posecache.DefaultOptions())
	direct := NewLocomotion(config.CreatureHumanoid, 1.7)
	direct.HasWeapon, direct.Weapon = true, config.WeaponAxe
	cached := NewLocomotion(config.CreatureHumanoid, 1.7)
	cached.HasWeapon, cached.Weapon = true, config.WeaponAxe
	cached.Cache = cache

	phases := []float64{0, 0.05, 0.2, 0.35, 0.5, 0.65, 0.8, 0.95}
	for lap := 0; lap < 2; lap++ {
		for _, p := range phases {
			direct.Phase.Set(p)
			cached.Phase.Set(p)
			a := direct.Sample(true)
			b := cached.Sample(true)
			if !a.Pose.ApproxEqual(b.Pose, tol) || a.Bob != b.Bob {
				t.Fatalf("lap %d phase %v: cached sample differs by %v", lap, p, a.Pose.MaxDelta(b.Pose))
			}
		}
	}

	// Knees and elbows miss on the first lap and hit on the second.
	s := cache.Stats()
	if want := uint64(2 * len(phases)); s.Hits != want || s.Misses != want {
		t.Errorf("stats = %+v, want %d hits and misses", s, want)
	}
}

func TestLocomotionStandingPose(t *testing.T) {
	l := NewLocomotion(config.CreatureHumanoid, 0)
	s := l.Sample(false)
	if s.Bob != 0 {
		t.Errorf("standing bob = %v", s.Bob)
	}
	if got := s.Pose.At(rig.LeftKnee).X; got != config.Knee.StanceMin {
		t.Errorf("standing knee = %v", got)
	}
	if s.Pose.Has(rig.LeftShoulder) {
		t.Error("standing locomotion should leave the arms alone")
	}
}

func TestBirdHop(t *testing.T) {
	l := NewLocomotion(config.CreatureBird, 2.3)
	l.Phase.Set(0.25)
	s := l.Sample(true)
	if !s.Pose.Has(rig.LeftWing) || !s.Pose.Has(rig.RightWing) {
		t.Fatal("bird should flap its wings")
	}
	if s.Bob <= 0 {
		t.Errorf("bird should be airborne mid-hop, bob = %v", s.Bob)
	}
	if s.Pose.Has(rig.LeftShoulder) {
		t.Error("bird has no shoulders")
	}

	l.Phase.Set(0)
	if s := l.Sample(true); s.Bob != 0 {
		t.Errorf("bird should be grounded at phase 0, bob = %v", s.Bob)
	}
}

func TestSwingPose(t *testing.T) {
	p := SwingPose(0.45, config.WeaponAxe, config.StanceAggressive, false)
	if p.Has(rig.RightElbow) {
		t.Error("keyframed swing should leave the weapon elbow to the timeline")
	}
	if !p.Has(rig.LeftElbow) || !p.Has(rig.LeftKnee) {
		t.Error("swing pose should drive stance and off-hand")
	}
	proc := SwingPose(0.45, config.WeaponAxe, config.StanceAggressive, true)
	if got, want := proc.At(rig.RightElbow).X, WeaponElbow(0.45, config.WeaponAxe); got != want {
		t.Errorf("procedural elbow = %v, want %v", got, want)
	}
}
