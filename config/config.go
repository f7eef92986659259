package config

import (
	"image/color"
	"math"

	"github.com/automoto/rigmotion/rig"
)

// KneeConfig contains the gait curve constants for knee flexion (radians)
type KneeConfig struct {
	HeelStrike float64 // Flexion at heel contact
	StanceMin  float64 // Straightest point of the stance
	ToeOff     float64 // Flexion when the toe leaves the ground

	// Max bend reached mid-swing
	SupportBend float64
	SwingBend   float64

	LiftRatio float64 // Fraction of max bend reached at the end of toe-off
	ReachOut  float64 // Flexion at the end of the swing, before extension

	// Safe rotation range the output is clamped to
	SafeMin float64
	SafeMax float64
}

// ArmsConfig contains the locomotion arm swing constants
type ArmsConfig struct {
	SupportOffset    float64 // Resting flexion of the free arm
	SupportAmplitude float64
	WeaponOffset     float64 // Weapon arm is held more flexed
	WeaponDamping    float64 // Amplitude multiplier for the weapon arm
	WeightDamping    float64 // Extra amplitude loss per unit of weapon weight
	GripFrequency    float64 // Grip tension cycles per gait cycle
	GripAmplitude    float64
}

// StanceKnees is a front/back knee pair
type StanceKnees struct {
	Front float64
	Back  float64
}

// StanceProfile holds the knee keys for one combat stance
type StanceProfile struct {
	Base   StanceKnees
	Windup StanceKnees
	Strike StanceKnees
}

// StrikeConfig contains the three-segment curves used while swinging
type StrikeConfig struct {
	WindupEnd float64 // Phase where the windup segment ends
	StrikeEnd float64 // Phase where the strike segment ends

	Stances map[Stance]StanceProfile

	// Weapon elbow flexion keys
	ElbowRest     float64
	ElbowCocked   float64
	ElbowExtended float64

	// Weapon wrist keys
	WristRest    rig.Angles
	WristCocked  rig.Angles
	WristSnapped rig.Angles

	// Off-hand counter motion
	BalanceRest   float64
	BalanceWindup float64
	BalanceStrike float64
}

// Keyframe is one named pose of the standard swing
type Keyframe struct {
	Shoulder rig.Angles
	Elbow    rig.Angles
	Wrist    rig.Angles
	TorsoYaw float64
}

// SwingConfig is the standard melee swing every weapon class scales from
type SwingConfig struct {
	Neutral Keyframe
	Windup  Keyframe
	Slash   Keyframe
}

// SwingMultipliers scale a keyframe's offset from neutral per joint group
type SwingMultipliers struct {
	Shoulder float64
	Elbow    float64
	Wrist    float64
	Torso    float64
}

// WeaponConfig contains configuration for specific weapon classes
type WeaponConfig struct {
	Name      string
	Weight    float64 // 0.0 to 1.0, damps the locomotion arm swing
	Amplitude float64 // Gait multiplier for weapon elbow/wrist curves
	Swing     SwingMultipliers

	// Phase durations (seconds)
	Windup   float64
	Slash    float64
	Recovery float64

	// Visual
	Length float64
	Color  color.RGBA
}

// Total is the full swing duration.
func (w WeaponConfig) Total() float64 {
	return w.Windup + w.Slash + w.Recovery
}

// GaitConfig contains per-creature locomotion constants
type GaitConfig struct {
	CycleSpeed    float64 // Gait cycles per unit of speed per second
	HipSwing      float64 // Thigh swing amplitude (radians)
	ShoulderSwing float64
	ElbowScale    float64
	TorsoSway     float64
	BobHeight     float64 // Root vertical offset amplitude (skeleton units)
	Asymmetry     float64 // Per-character jitter intensity

	// Birds
	HopHeight  float64
	WingFlap   float64
	FlapSpeed  float64 // Flap cycles per gait cycle
	WingFold   float64
	HeadNod    float64
	KneeTucked float64
}

// BlendConfig contains pose transition configuration
type BlendConfig struct {
	Rate              float64 // Exponential smoothing rate (1/s)
	RetargetThreshold float64 // Radians on any joint before a new target is taken
}

// BowConfig contains bow draw configuration
type BowConfig struct {
	StageBands      [3]float64 // Charge thresholds separating draw stages 1..4
	HandMaxRotation float64    // Hand X rotation at full charge
	ChargeRate      float64    // Charge per second while drawing
	ReleaseRate     float64    // Charge lost per second after release
}

// CacheConfig contains pose memoization configuration
type CacheConfig struct {
	Enabled     bool
	MaxSize     int
	TTL         float64 // seconds
	Tolerance   float64 // phase tolerance for a hit
	PoolSize    int     // rotation triples in the ring buffer
	BucketWidth float64 // phase quantization width for keys
	EvictRatio  float64
}

// PoseDef is a joint map for one discrete pose
type PoseDef map[rig.JointID]rig.Angles

// EnemySpawn places a sword-swinging character in the sandbox
type EnemySpawn struct {
	X              float64
	Weapon         WeaponClass
	Seed           float64
	PatrolDistance float64
	PatrolDuration float64 // seconds for one leg of the patrol
}

// BirdSpawn places a bird in the sandbox
type BirdSpawn struct {
	X              float64
	Seed           float64
	PatrolDistance float64
	PatrolDuration float64
}

// SandboxConfig contains the viewer scene layout
type SandboxConfig struct {
	GroundY   float64
	Scale     float64 // Pixels per skeleton unit
	WalkSpeed float64 // Pixels per second
	PlayerX   float64

	Enemies []EnemySpawn
	Birds   []BirdSpawn

	// Body and reach boxes (pixels)
	BodyWidth      float64
	ReachWidth     float64
	ReachHeight    float64
	CellSize       int
	AttackCooldown float64 // seconds between AI swings

	TimeScaleStep float64
	MinTimeScale  float64
	MaxTimeScale  float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowJoints bool // Draw joint markers and reach boxes
	TuningPath string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Knee KneeConfig
var Arms ArmsConfig
var Strike StrikeConfig
var Swing SwingConfig
var Weapons map[WeaponClass]WeaponConfig
var Gaits map[Creature]GaitConfig
var Blend BlendConfig
var Bow BowConfig
var Cache CacheConfig
var Poses map[Creature]map[PoseStateID]PoseDef
var Sandbox SandboxConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Steel        = color.RGBA{R: 190, G: 200, B: 210, A: 255}
	Wood         = color.RGBA{R: 150, G: 100, B: 60, A: 255}
	Background   = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	Ground       = color.RGBA{R: 60, G: 80, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "rigmotion",
	}

	Knee = KneeConfig{
		HeelStrike:  0.1,
		StanceMin:   0.05,
		ToeOff:      0.35,
		SupportBend: 0.7,
		SwingBend:   1.2,
		LiftRatio:   0.6,
		ReachOut:    0.3,
		SafeMin:     0,
		SafeMax:     1.4,
	}

	Arms = ArmsConfig{
		SupportOffset:    0.3,
		SupportAmplitude: 0.4,
		WeaponOffset:     0.5,
		WeaponDamping:    0.4,
		WeightDamping:    0.5,
		GripFrequency:    6,
		GripAmplitude:    0.03,
	}

	Strike = StrikeConfig{
		WindupEnd: 0.3,
		StrikeEnd: 0.6,
		Stances: map[Stance]StanceProfile{
			StanceAggressive: {
				Base:   StanceKnees{Front: 0.3, Back: 0.2},
				Windup: StanceKnees{Front: 0.45, Back: 0.35},
				Strike: StanceKnees{Front: 0.7, Back: 0.15},
			},
			StanceDefensive: {
				Base:   StanceKnees{Front: 0.45, Back: 0.4},
				Windup: StanceKnees{Front: 0.5, Back: 0.5},
				Strike: StanceKnees{Front: 0.6, Back: 0.35},
			},
		},
		ElbowRest:     -0.4,
		ElbowCocked:   -1.3,
		ElbowExtended: -0.1,
		WristRest:     rig.Angles{},
		WristCocked:   rig.Angles{X: -0.6, Z: 0.25},
		WristSnapped:  rig.Angles{X: 0.5, Z: -0.2},
		BalanceRest:   -0.3,
		BalanceWindup: -0.9,
		BalanceStrike: -0.15,
	}

	// Standard swing. Every weapon class scales this one table.
	Swing = SwingConfig{
		Neutral: Keyframe{
			Shoulder: rig.Angles{X: -0.2, Y: 0, Z: 0.1},
			Elbow:    rig.Angles{X: -0.3},
			Wrist:    rig.Angles{},
			TorsoYaw: 0,
		},
		Windup: Keyframe{
			Shoulder: rig.Angles{X: -2.2, Y: 0.4, Z: 0.6},
			Elbow:    rig.Angles{X: -1.2, Y: 0.1},
			Wrist:    rig.Angles{X: -0.5, Z: 0.2},
			TorsoYaw: 0.5,
		},
		Slash: Keyframe{
			Shoulder: rig.Angles{X: 0.9, Y: -0.5, Z: -0.2},
			Elbow:    rig.Angles{X: -0.15},
			Wrist:    rig.Angles{X: 0.4, Z: -0.2},
			TorsoYaw: -0.4,
		},
	}

	Weapons = map[WeaponClass]WeaponConfig{
		WeaponSword: {
			Name:      "sword",
			Weight:    0.3,
			Amplitude: 1.0,
			Swing:     SwingMultipliers{Shoulder: 1.0, Elbow: 1.0, Wrist: 1.0, Torso: 1.0},
			Windup:    0.25,
			Slash:     0.15,
			Recovery:  0.35,
			Length:    22,
			Color:     Steel,
		},
		WeaponAxe: {
			Name:      "axe",
			Weight:    0.8,
			Amplitude: 1.3,
			Swing:     SwingMultipliers{Shoulder: 1.15, Elbow: 1.1, Wrist: 0.8, Torso: 1.3},
			Windup:    0.4,
			Slash:     0.2,
			Recovery:  0.45,
			Length:    18,
			Color:     Steel,
		},
		WeaponClub: {
			Name:      "club",
			Weight:    0.6,
			Amplitude: 1.15,
			Swing:     SwingMultipliers{Shoulder: 1.1, Elbow: 1.05, Wrist: 0.9, Torso: 1.15},
			Windup:    0.3,
			Slash:     0.18,
			Recovery:  0.4,
			Length:    16,
			Color:     Wood,
		},
	}

	Gaits = map[Creature]GaitConfig{
		CreatureHumanoid: {
			CycleSpeed:    0.012,
			HipSwing:      0.45,
			ShoulderSwing: 0.35,
			ElbowScale:    1.0,
			TorsoSway:     0.08,
			BobHeight:     0.6,
			Asymmetry:     0.08,
		},
		CreatureBird: {
			CycleSpeed: 0.03,
			HipSwing:   0.3,
			TorsoSway:  0.05,
			BobHeight:  0.4,
			Asymmetry:  0.12,
			HopHeight:  2.5,
			WingFlap:   0.9,
			FlapSpeed:  2,
			WingFold:   0.2,
			HeadNod:    0.25,
			KneeTucked: 0.9,
		},
	}

	Blend = BlendConfig{
		Rate:              8.0,
		RetargetThreshold: 0.01,
	}

	Bow = BowConfig{
		StageBands:      [3]float64{0.25, 0.5, 0.75},
		HandMaxRotation: math.Pi / 8,
		ChargeRate:      0.8,
		ReleaseRate:     3.0,
	}

	Cache = CacheConfig{
		Enabled:     true,
		MaxSize:     256,
		TTL:         5.0,
		Tolerance:   0.01,
		PoolSize:    1024,
		BucketWidth: 0.01,
		EvictRatio:  0.3,
	}

	Poses = buildPoses()

	Sandbox = SandboxConfig{
		GroundY:   280,
		Scale:     2.5,
		WalkSpeed: 90,
		PlayerX:   120,
		Enemies: []EnemySpawn{
			{X: 300, Weapon: WeaponAxe, Seed: 1.7, PatrolDistance: 80, PatrolDuration: 2.5},
			{X: 430, Weapon: WeaponClub, Seed: 4.2, PatrolDistance: 60, PatrolDuration: 2.0},
			{X: 540, Weapon: WeaponSword, Seed: 7.9, PatrolDistance: 50, PatrolDuration: 1.8},
		},
		Birds: []BirdSpawn{
			{X: 200, Seed: 2.3, PatrolDistance: 40, PatrolDuration: 3.0},
			{X: 480, Seed: 5.1, PatrolDistance: 30, PatrolDuration: 2.2},
		},
		BodyWidth:      20,
		ReachWidth:     40,
		ReachHeight:    60,
		CellSize:       16,
		AttackCooldown: 1.2,
		TimeScaleStep:  0.25,
		MinTimeScale:   0.25,
		MaxTimeScale:   2.0,
	}

	Debug = DebugConfig{
		ShowJoints: false,
	}
}
