package posecache

import "github.com/automoto/rigmotion/rig"

// Handle refers to one slot of a Pool. It goes stale once the slot is
// reused.
type Handle struct {
	index int32
	gen   uint32
}

// Pool is a fixed-size ring buffer of rotation triples. Acquire never grows
// the buffer: when every slot is taken it overwrites the oldest one and
// bumps that slot's generation, so handles into it stop resolving.
type Pool struct {
	slots []rig.Angles
	gens  []uint32
	next  int
	used  int
}

// NewPool allocates a pool of size slots (at least one).
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		slots: make([]rig.Angles, size),
		gens:  make([]uint32, size),
	}
}

// Acquire stores a in the next slot and returns its handle.
func (p *Pool) Acquire(a rig.Angles) Handle {
	i := p.next
	p.next = (p.next + 1) % len(p.slots)
	if p.used < len(p.slots) {
		p.used++
	}
	p.gens[i]++
	p.slots[i] = a
	return Handle{index: int32(i), gen: p.gens[i]}
}

// Load copies the value behind h out of the pool. It reports false when
// the slot has since been recycled or released.
func (p *Pool) Load(h Handle) (rig.Angles, bool) {
	i := int(h.index)
	if h.gen == 0 || i < 0 || i >= len(p.slots) || p.gens[i] != h.gen {
		return rig.Angles{}, false
	}
	return p.slots[i], true
}

// Release invalidates h. The slot is reused in ring order regardless.
func (p *Pool) Release(h Handle) {
	i := int(h.index)
	if i < 0 || i >= len(p.slots) || p.gens[i] != h.gen {
		return
	}
	p.gens[i]++
	p.slots[i] = rig.Angles{}
}

// Cap is the number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Used is the number of slots written at least once.
func (p *Pool) Used() int {
	return p.used
}

// Reset invalidates every outstanding handle.
func (p *Pool) Reset() {
	for i := range p.gens {
		p.gens[i]++
		p.slots[i] = rig.Angles{}
	}
	p.next = 0
	p.used = 0
}
