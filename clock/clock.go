// Package clock provides the monotonic time sources the animation systems
// read. All times are seconds.
package clock

import "time"

// Source reports monotonic time in seconds.
type Source interface {
	Now() float64
}

// Manual is a clock that only moves when told to. The sandbox advances it
// once per frame by the scaled frame delta; tests advance it directly.
type Manual struct {
	now float64
}

func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() float64 {
	return m.now
}

// Advance moves the clock forward by dt seconds. Negative deltas are ignored.
func (m *Manual) Advance(dt float64) {
	if dt > 0 {
		m.now += dt
	}
}

// Set jumps the clock to t if t is not earlier than the current time.
func (m *Manual) Set(t float64) {
	if t > m.now {
		m.now = t
	}
}

// Wall measures time elapsed since it was created.
type Wall struct {
	start time.Time
}

func NewWall() *Wall {
	return &Wall{start: time.Now()}
}

func (w *Wall) Now() float64 {
	return time.Since(w.start).Seconds()
}
