// Package attack runs melee swings as a timed windup, slash and recovery
// sequence and interpolates the weapon arm through the swing keyframes.
package attack

import (
	"context"

	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
	"github.com/automoto/rigmotion/rig"
	"github.com/looplab/fsm"
)

// Phase is a step of the swing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWindup
	PhaseSlash
	PhaseRecovery
)

var phaseNames = [...]string{
	PhaseIdle:     "idle",
	PhaseWindup:   "windup",
	PhaseSlash:    "slash",
	PhaseRecovery: "recovery",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

func phaseByName(name string) Phase {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i)
		}
	}
	return PhaseIdle
}

// FSM events. Each active phase is entered by the event of the same name.
const (
	eventWindup  = "windup"
	eventSlash   = "slash"
	eventRecover = "recovery"
	eventFinish  = "finish"
	eventCancel  = "cancel"
)

// advanceEvents maps a phase to the event that leaves it for the next one.
var advanceEvents = map[Phase]string{
	PhaseWindup: eventSlash,
	PhaseSlash:  eventRecover,
}

// Timeline is one character's attack state machine.
type Timeline struct {
	clock   clock.Source
	machine *fsm.FSM

	weapon    config.WeaponClass
	durations Durations
	keys      Keyframes
	bounds    [3]float64 // cumulative phase ends

	phase   Phase
	start   float64
	elapsed float64
	local   float64
	active  bool
	pose    rig.Pose

	// OnPhase is called whenever the swing enters a new phase, idle included.
	OnPhase func(Phase)
}

// New creates an idle timeline timed by c.
func New(c clock.Source) *Timeline {
	t := &Timeline{clock: c}
	active := []string{PhaseWindup.String(), PhaseSlash.String(), PhaseRecovery.String()}
	t.machine = fsm.NewFSM(
		PhaseIdle.String(),
		fsm.Events{
			{Name: eventWindup, Src: []string{PhaseIdle.String()}, Dst: PhaseWindup.String()},
			{Name: eventSlash, Src: []string{PhaseWindup.String()}, Dst: PhaseSlash.String()},
			{Name: eventRecover, Src: []string{PhaseSlash.String()}, Dst: PhaseRecovery.String()},
			{Name: eventFinish, Src: active, Dst: PhaseIdle.String()},
			{Name: eventCancel, Src: active, Dst: PhaseIdle.String()},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				t.phase = phaseByName(e.Dst)
				if t.OnPhase != nil {
					t.OnPhase(t.phase)
				}
			},
		},
	)
	t.keys = KeyframesFor(config.WeaponSword)
	t.pose = KeyframePose(t.keys.Neutral)
	return t
}

// Start begins a swing with the weapon's configured timing. It does
// nothing and returns false while a swing is already running.
func (t *Timeline) Start(w config.WeaponClass) bool {
	return t.StartWith(w, DurationsFor(w))
}

// StartWith begins a swing with explicit timing. Durations that are not all
// positive are refused.
func (t *Timeline) StartWith(w config.WeaponClass, d Durations) bool {
	if t.active || !d.Valid() {
		return false
	}
	t.weapon = w
	t.durations = d
	t.keys = KeyframesFor(w)
	t.bounds[0] = d.Windup
	t.bounds[1] = d.Windup + d.Slash
	t.bounds[2] = d.Total()
	t.start = t.clock.Now()
	t.elapsed = 0
	t.local = 0
	t.active = true
	t.fire(eventWindup)
	t.pose = KeyframePose(t.keys.Neutral)
	return true
}

// Advance samples the clock and updates the swing pose. It returns false
// once the swing has finished (or when none is running), at which point the
// driven joints hold the exact neutral keyframe.
func (t *Timeline) Advance() bool {
	if !t.active {
		return false
	}
	t.elapsed = t.clock.Now() - t.start
	if t.elapsed >= t.bounds[2] {
		t.finish(eventFinish)
		return false
	}

	target, from, to, phaseStart, length := t.segment()
	for t.phase != target {
		ev, ok := advanceEvents[t.phase]
		if !ok || !t.fire(ev) {
			break
		}
	}

	t.local = gamemath.Clamp01((t.elapsed - phaseStart) / length)
	eased := gamemath.Smoothstep(t.local)
	if target == PhaseSlash {
		eased = gamemath.SlashEase(t.local)
	}
	t.pose = KeyframePose(interpolate(from, to, eased))
	return true
}

// segment picks the phase for the current elapsed time and its keyframes.
func (t *Timeline) segment() (phase Phase, from, to config.Keyframe, start, length float64) {
	switch {
	case t.elapsed < t.bounds[0]:
		return PhaseWindup, t.keys.Neutral, t.keys.Windup, 0, t.durations.Windup
	case t.elapsed < t.bounds[1]:
		return PhaseSlash, t.keys.Windup, t.keys.Slash, t.bounds[0], t.durations.Slash
	default:
		return PhaseRecovery, t.keys.Slash, t.keys.Neutral, t.bounds[1], t.durations.Recovery
	}
}

// Cancel drops any running swing and snaps to neutral.
func (t *Timeline) Cancel() {
	if t.active {
		t.finish(eventCancel)
	}
}

func (t *Timeline) finish(event string) {
	t.fire(event)
	t.active = false
	t.elapsed = 0
	t.local = 0
	t.pose = KeyframePose(t.keys.Neutral)
}

// fire runs event if the machine allows it and reports whether the phase
// changed.
func (t *Timeline) fire(event string) bool {
	if !t.machine.Can(event) {
		return false
	}
	if err := t.machine.Event(context.Background(), event); err != nil {
		return false
	}
	return true
}

// IsAttacking reports whether a swing is running.
func (t *Timeline) IsAttacking() bool {
	return t.active
}

// Phase returns the current phase.
func (t *Timeline) Phase() Phase {
	return t.phase
}

// PhaseName is one of idle, windup, slash or recovery.
func (t *Timeline) PhaseName() string {
	return t.machine.Current()
}

// Progress is elapsed over total for the running swing, 0 when idle.
func (t *Timeline) Progress() float64 {
	if !t.active {
		return 0
	}
	return gamemath.Clamp01(t.elapsed / t.bounds[2])
}

// PhaseProgress is the un-eased progress through the current phase.
func (t *Timeline) PhaseProgress() float64 {
	return t.local
}

// CurveProgress maps the current phase onto the fixed windup, strike and
// recovery split the procedural swing curves use, so those curves change
// segment exactly when the timeline changes phase. It is 0 when idle.
func (t *Timeline) CurveProgress() float64 {
	s := config.Strike
	switch t.phase {
	case PhaseWindup:
		return gamemath.Lerp(0, s.WindupEnd, t.local)
	case PhaseSlash:
		return gamemath.Lerp(s.WindupEnd, s.StrikeEnd, t.local)
	case PhaseRecovery:
		return gamemath.Lerp(s.StrikeEnd, 1, t.local)
	}
	return 0
}

// Weapon is the weapon of the current or last swing.
func (t *Timeline) Weapon() config.WeaponClass {
	return t.weapon
}

// Durations is the timing of the current or last swing.
func (t *Timeline) Durations() Durations {
	return t.durations
}

// Pose returns the driven joints: weapon shoulder, elbow, wrist and torso
// yaw.
func (t *Timeline) Pose() rig.Pose {
	return t.pose
}

// Neutral is the pose every swing starts from and returns to.
func (t *Timeline) Neutral() rig.Pose {
	return KeyframePose(t.keys.Neutral)
}
