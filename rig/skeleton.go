package rig

import "math"

// Joint is the mutable per-joint state of a skeleton.
type Joint struct {
	Rotation Angles
	Position Vec3
}

// Skeleton is the externally owned rig. Joint returns nil when the rig has
// no joint with that name.
type Skeleton interface {
	Joint(name string) *Joint
}

// Apply writes every joint of pose into s. Joints the skeleton lacks are
// skipped.
func Apply(s Skeleton, pose Pose) {
	pose.Each(func(id JointID, a Angles) {
		if j := s.Joint(id.String()); j != nil {
			j.Rotation = a
		}
	})
}

// Read captures the current rotations of the given joints from s.
func Read(s Skeleton, ids ...JointID) Pose {
	var p Pose
	for _, id := range ids {
		if j := s.Joint(id.String()); j != nil {
			p.Set(id, j.Rotation)
		}
	}
	return p
}

// BoneDef describes one bone of an in-memory rig.
type BoneDef struct {
	Joint  JointID
	Parent JointID
	Length float64
	// Rest is the bone direction in radians (0 points down the screen) when
	// the joint rotation is zero.
	Rest float64
	// Flex multiplies the joint's X rotation when solving, so a knee and an
	// elbow can bend in opposite directions.
	Flex float64
}

// Segment is a solved bone in world space.
type Segment struct {
	Joint          JointID
	X0, Y0, X1, Y1 float64
}

// Rig is a simple in-memory Skeleton with enough bone metadata to draw a
// side-view stick figure.
type Rig struct {
	joints [JointCount]Joint
	mask   uint32
	bones  []BoneDef

	segments []Segment
	ends     [JointCount][3]float64 // x, y, absolute angle
}

// NewRig builds a rig from bone definitions. Bones must be listed parents
// first. Root is always present.
func NewRig(bones []BoneDef) *Rig {
	r := &Rig{bones: bones, mask: 1 << uint(Root)}
	for _, b := range bones {
		if b.Joint.Valid() {
			r.mask |= 1 << uint(b.Joint)
		}
	}
	r.segments = make([]Segment, 0, len(bones))
	return r
}

// Joint implements Skeleton.
func (r *Rig) Joint(name string) *Joint {
	id, ok := JointByName(name)
	if !ok {
		return nil
	}
	return r.At(id)
}

// At returns the joint by id, nil if the rig lacks it.
func (r *Rig) At(id JointID) *Joint {
	if !id.Valid() || r.mask&(1<<uint(id)) == 0 {
		return nil
	}
	return &r.joints[id]
}

// Has reports whether the rig carries joint id.
func (r *Rig) Has(id JointID) bool {
	return r.At(id) != nil
}

// Bones returns the bone definitions the rig was built from.
func (r *Rig) Bones() []BoneDef {
	return r.bones
}

// Reset zeroes every rotation and position.
func (r *Rig) Reset() {
	r.joints = [JointCount]Joint{}
}

// Solve2D runs forward kinematics in the side-view plane, anchored at
// (x, y) plus the root position offset. facing is +1 or -1. The returned
// slice is reused by the next call.
func (r *Rig) Solve2D(x, y, scale, facing float64) []Segment {
	r.segments = r.segments[:0]
	root := r.joints[Root]
	r.ends[Root] = [3]float64{
		x + root.Position.X*scale*facing,
		y - root.Position.Y*scale,
		root.Rotation.X * facing,
	}
	for _, b := range r.bones {
		if !b.Joint.Valid() || !b.Parent.Valid() {
			continue
		}
		parent := r.ends[b.Parent]
		rot := r.joints[b.Joint].Rotation.X * b.Flex
		angle := parent[2] + (b.Rest+rot)*facing
		length := b.Length * scale
		x1 := parent[0] + math.Sin(angle)*length
		y1 := parent[1] + math.Cos(angle)*length
		r.ends[b.Joint] = [3]float64{x1, y1, angle}
		r.segments = append(r.segments, Segment{
			Joint: b.Joint,
			X0:    parent[0], Y0: parent[1],
			X1: x1, Y1: y1,
		})
	}
	return r.segments
}

// End returns the solved end point of joint id from the last Solve2D.
func (r *Rig) End(id JointID) (x, y float64) {
	if !id.Valid() {
		return 0, 0
	}
	return r.ends[id][0], r.ends[id][1]
}

// Heading returns the solved world angle of joint id from the last Solve2D.
func (r *Rig) Heading(id JointID) float64 {
	if !id.Valid() {
		return 0
	}
	return r.ends[id][2]
}

// ChainLength sums bone lengths from the root down to the end of id.
func (r *Rig) ChainLength(id JointID) float64 {
	total := 0.0
	for id != Root {
		b, ok := r.bone(id)
		if !ok {
			return total
		}
		total += b.Length
		id = b.Parent
	}
	return total
}

func (r *Rig) bone(id JointID) (BoneDef, bool) {
	for _, b := range r.bones {
		if b.Joint == id {
			return b, true
		}
	}
	return BoneDef{}, false
}
