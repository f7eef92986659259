// Package blend eases a character between discrete poses with exponential
// smoothing.
package blend

import (
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/gamemath"
	"github.com/automoto/rigmotion/rig"
)

// PoseFor builds the pose a creature holds in a discrete state. Unknown
// states fall back to idle.
func PoseFor(creature config.Creature, state config.PoseStateID) rig.Pose {
	set, ok := config.Poses[creature]
	if !ok {
		set = config.Poses[config.CreatureHumanoid]
	}
	def, ok := set[state]
	if !ok {
		def = set[config.PoseIdle]
	}
	return rig.PoseOf(def)
}

// Controller holds a current and a target pose and moves the former toward
// the latter every tick.
type Controller struct {
	creature config.Creature
	state    config.PoseStateID
	current  rig.Pose
	target   rig.Pose

	Rate      float64
	Threshold float64
}

// New starts a controller at rest in the idle pose.
func New(creature config.Creature) *Controller {
	idle := PoseFor(creature, config.PoseIdle)
	return &Controller{
		creature:  creature,
		state:     config.PoseIdle,
		current:   idle,
		target:    idle,
		Rate:      config.Blend.Rate,
		Threshold: config.Blend.RetargetThreshold,
	}
}

// SetTargetFromState aims at the pose for state. The target only changes
// when the new pose is more than Threshold away from the current target on
// some joint, so flickering between equivalent states does not restart the
// blend. It reports whether the target changed.
func (c *Controller) SetTargetFromState(state config.PoseStateID) bool {
	if !c.SetTarget(PoseFor(c.creature, state)) {
		return false
	}
	c.state = state
	return true
}

// SetTarget aims at an arbitrary pose with the same debounce as
// SetTargetFromState. Current is left where it is.
func (c *Controller) SetTarget(p rig.Pose) bool {
	if p.MaxDelta(c.target) <= c.Threshold {
		return false
	}
	c.target = p
	return true
}

// Tick moves every joint present in both poses a fraction dt*Rate of the
// way to the target. The fraction is clamped to [0,1] so a long frame lands
// on the target instead of overshooting it.
func (c *Controller) Tick(dt float64) {
	f := gamemath.Clamp01(dt * c.Rate)
	c.current = c.current.BlendToward(c.target, f)
}

// Apply writes the current pose into s.
func (c *Controller) Apply(s rig.Skeleton) {
	rig.Apply(s, c.current)
}

// Snap jumps current to target.
func (c *Controller) Snap() {
	c.current = c.current.BlendToward(c.target, 1)
}

// Seed overwrites the joints of current that p also drives, so an animation
// layered on top can hand its last pose back to the blend.
func (c *Controller) Seed(p rig.Pose) {
	p.Each(func(j rig.JointID, a rig.Angles) {
		if c.current.Has(j) {
			c.current.Set(j, a)
		}
	})
}

func (c *Controller) Current() rig.Pose {
	return c.current
}

func (c *Controller) Target() rig.Pose {
	return c.target
}

// State is the discrete state the target was last taken from.
func (c *Controller) State() config.PoseStateID {
	return c.state
}

func (c *Controller) Creature() config.Creature {
	return c.creature
}

// Converged reports whether every shared joint is within tol of the target.
func (c *Controller) Converged(tol float64) bool {
	done := true
	c.target.Each(func(j rig.JointID, want rig.Angles) {
		if got, ok := c.current.Get(j); ok && got.MaxDelta(want) > tol {
			done = false
		}
	})
	return done
}
