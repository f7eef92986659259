package gait

import "github.com/automoto/rigmotion/gamemath"

// Phase is a position in a repeating locomotion cycle, always in [0,1).
type Phase struct {
	value float64
}

// Value returns the current phase.
func (p Phase) Value() float64 {
	return p.value
}

// Advance moves the phase by dt*speed*cycleSpeed and wraps it.
func (p *Phase) Advance(dt, speed, cycleSpeed float64) float64 {
	p.value = gamemath.WrapUnit(p.value + dt*speed*cycleSpeed)
	return p.value
}

// Set places the phase, wrapping out-of-range values.
func (p *Phase) Set(v float64) {
	p.value = gamemath.WrapUnit(v)
}

// Reset returns the phase to the start of the cycle.
func (p *Phase) Reset() {
	p.value = 0
}

// Offset returns the phase shifted by d, wrapped.
func (p Phase) Offset(d float64) float64 {
	return gamemath.WrapUnit(p.value + d)
}
