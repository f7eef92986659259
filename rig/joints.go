package rig

// JointID enumerates every joint the engine knows how to drive.
type JointID int

const (
	Root JointID = iota
	Torso
	Head
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHand
	RightHand
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftWing
	RightWing
	JointCount // Must be last - used for array sizing
)

var jointNames = [JointCount]string{
	Root:          "root",
	Torso:         "torso",
	Head:          "head",
	LeftShoulder:  "leftShoulder",
	RightShoulder: "rightShoulder",
	LeftElbow:     "leftElbow",
	RightElbow:    "rightElbow",
	LeftWrist:     "leftWrist",
	RightWrist:    "rightWrist",
	LeftHand:      "leftHand",
	RightHand:     "rightHand",
	LeftHip:       "leftHip",
	RightHip:      "rightHip",
	LeftKnee:      "leftKnee",
	RightKnee:     "rightKnee",
	LeftWing:      "leftWing",
	RightWing:     "rightWing",
}

var jointsByName = func() map[string]JointID {
	m := make(map[string]JointID, JointCount)
	for id, name := range jointNames {
		m[name] = JointID(id)
	}
	return m
}()

// String returns the skeleton-facing joint name.
func (j JointID) String() string {
	if j < 0 || j >= JointCount {
		return "unknown"
	}
	return jointNames[j]
}

// Valid reports whether j names a real joint.
func (j JointID) Valid() bool {
	return j >= 0 && j < JointCount
}

// JointByName resolves a skeleton joint name.
func JointByName(name string) (JointID, bool) {
	id, ok := jointsByName[name]
	return id, ok
}
