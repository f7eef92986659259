package rig

import (
	"math"
	"math/bits"
)

// Pose is a snapshot of joint rotations. It is a plain value: copying a Pose
// copies every angle, so a pose handed out can never be mutated behind the
// holder's back.
type Pose struct {
	angles [JointCount]Angles
	mask   uint32
}

// PoseOf builds a pose from a joint map.
func PoseOf(joints map[JointID]Angles) Pose {
	var p Pose
	for j, a := range joints {
		p.Set(j, a)
	}
	return p
}

// Set stores a for joint j. Invalid joints are ignored.
func (p *Pose) Set(j JointID, a Angles) {
	if !j.Valid() {
		return
	}
	p.angles[j] = a
	p.mask |= 1 << uint(j)
}

// Unset removes joint j from the pose.
func (p *Pose) Unset(j JointID) {
	if !j.Valid() {
		return
	}
	p.angles[j] = Angles{}
	p.mask &^= 1 << uint(j)
}

// With returns a copy of p with joint j set to a.
func (p Pose) With(j JointID, a Angles) Pose {
	p.Set(j, a)
	return p
}

// Get returns the angles stored for j.
func (p Pose) Get(j JointID) (Angles, bool) {
	if !p.Has(j) {
		return Angles{}, false
	}
	return p.angles[j], true
}

// At returns the angles for j, zero when absent.
func (p Pose) At(j JointID) Angles {
	if !j.Valid() {
		return Angles{}
	}
	return p.angles[j]
}

func (p Pose) Has(j JointID) bool {
	return j.Valid() && p.mask&(1<<uint(j)) != 0
}

// Len is the number of joints present.
func (p Pose) Len() int {
	return bits.OnesCount32(p.mask)
}

func (p Pose) Empty() bool {
	return p.mask == 0
}

// Each calls fn for every present joint in JointID order.
func (p Pose) Each(fn func(j JointID, a Angles)) {
	for m := p.mask; m != 0; m &= m - 1 {
		j := JointID(bits.TrailingZeros32(m))
		fn(j, p.angles[j])
	}
}

// Overlay returns p with every joint present in top replacing its own.
func (p Pose) Overlay(top Pose) Pose {
	top.Each(func(j JointID, a Angles) {
		p.Set(j, a)
	})
	return p
}

// shared is the mask of joints present in both poses.
func (p Pose) shared(o Pose) uint32 {
	return p.mask & o.mask
}

// MaxDelta is the largest per-axis difference over the joints the two poses
// share. Poses covering different joint sets are infinitely apart.
func (p Pose) MaxDelta(o Pose) float64 {
	if p.mask != o.mask {
		return math.Inf(1)
	}
	var d float64
	for m := p.shared(o); m != 0; m &= m - 1 {
		j := bits.TrailingZeros32(m)
		d = math.Max(d, p.angles[j].MaxDelta(o.angles[j]))
	}
	return d
}

// ApproxEqual reports whether both poses cover the same joints and every
// axis differs by at most tol.
func (p Pose) ApproxEqual(o Pose, tol float64) bool {
	return p.MaxDelta(o) <= tol
}

// BlendToward moves every joint present in both poses a fraction t of the
// way toward target. Joints only in p are kept; joints only in target are
// not introduced.
func (p Pose) BlendToward(target Pose, t float64) Pose {
	for m := p.shared(target); m != 0; m &= m - 1 {
		j := bits.TrailingZeros32(m)
		p.angles[j] = p.angles[j].Lerp(target.angles[j], t)
	}
	return p
}
