package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// WeaponTuning overrides a weapon class. Nil fields keep the built-in value.
type WeaponTuning struct {
	Weight    *float64 `yaml:"weight"`
	Amplitude *float64 `yaml:"amplitude"`
	Windup    *float64 `yaml:"windup"`
	Slash     *float64 `yaml:"slash"`
	Recovery  *float64 `yaml:"recovery"`
	Shoulder  *float64 `yaml:"shoulder"`
	Elbow     *float64 `yaml:"elbow"`
	Wrist     *float64 `yaml:"wrist"`
	Torso     *float64 `yaml:"torso"`
}

// GaitTuning overrides a creature's gait constants.
type GaitTuning struct {
	CycleSpeed    *float64 `yaml:"cycleSpeed"`
	HipSwing      *float64 `yaml:"hipSwing"`
	ShoulderSwing *float64 `yaml:"shoulderSwing"`
	TorsoSway     *float64 `yaml:"torsoSway"`
	BobHeight     *float64 `yaml:"bobHeight"`
	Asymmetry     *float64 `yaml:"asymmetry"`
}

// CacheTuning overrides the pose cache settings.
type CacheTuning struct {
	Enabled     *bool    `yaml:"enabled"`
	MaxSize     *int     `yaml:"maxSize"`
	TTL         *float64 `yaml:"ttl"`
	Tolerance   *float64 `yaml:"tolerance"`
	PoolSize    *int     `yaml:"poolSize"`
	BucketWidth *float64 `yaml:"bucketWidth"`
}

// BlendTuning overrides the blend controller settings.
type BlendTuning struct {
	Rate              *float64 `yaml:"rate"`
	RetargetThreshold *float64 `yaml:"retargetThreshold"`
}

// Tuning is the YAML document accepted by LoadTuning.
type Tuning struct {
	Weapons map[string]WeaponTuning `yaml:"weapons"`
	Gaits   map[string]GaitTuning   `yaml:"gaits"`
	Blend   *BlendTuning            `yaml:"blend"`
	Cache   *CacheTuning            `yaml:"cache"`
}

// LoadTuning reads a YAML tuning file and overlays it on the global config.
// Nothing is applied unless the whole file parses and validates.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("tuning file %s: %w", path, err)
	}
	log.Printf("[tuning] applied overrides from %s", path)
	return nil
}

// ApplyTuning parses a YAML tuning document and overlays it on the global
// config.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	weapons := make(map[WeaponClass]WeaponConfig, len(Weapons))
	for k, v := range Weapons {
		weapons[k] = v
	}
	for name, wt := range t.Weapons {
		class, ok := WeaponByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown weapon %q", ErrInvalidTuning, name)
		}
		weapons[class] = wt.apply(weapons[class])
	}

	gaits := make(map[Creature]GaitConfig, len(Gaits))
	for k, v := range Gaits {
		gaits[k] = v
	}
	for name, gt := range t.Gaits {
		creature, ok := CreatureByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown creature %q", ErrInvalidTuning, name)
		}
		gaits[creature] = gt.apply(gaits[creature])
	}

	blend := Blend
	if t.Blend != nil {
		setFloat(&blend.Rate, t.Blend.Rate)
		setFloat(&blend.RetargetThreshold, t.Blend.RetargetThreshold)
	}

	cache := Cache
	if c := t.Cache; c != nil {
		if c.Enabled != nil {
			cache.Enabled = *c.Enabled
		}
		if c.MaxSize != nil {
			cache.MaxSize = *c.MaxSize
		}
		if c.PoolSize != nil {
			cache.PoolSize = *c.PoolSize
		}
		setFloat(&cache.TTL, c.TTL)
		setFloat(&cache.Tolerance, c.Tolerance)
		setFloat(&cache.BucketWidth, c.BucketWidth)
	}

	if err := validate(weapons, gaits, blend, cache); err != nil {
		return err
	}

	Weapons = weapons
	Gaits = gaits
	Blend = blend
	Cache = cache
	return nil
}

// Validate checks the current global config.
func Validate() error {
	return validate(Weapons, Gaits, Blend, Cache)
}

func validate(weapons map[WeaponClass]WeaponConfig, gaits map[Creature]GaitConfig, blend BlendConfig, cache CacheConfig) error {
	for class := WeaponClass(0); class < WeaponClassCount; class++ {
		w, ok := weapons[class]
		if !ok {
			return fmt.Errorf("%w: weapon %s is not configured", ErrInvalidTuning, class)
		}
		if w.Windup <= 0 || w.Slash <= 0 || w.Recovery <= 0 {
			return fmt.Errorf("%w: weapon %s: phase durations must be positive, got %v/%v/%v",
				ErrInvalidTuning, class, w.Windup, w.Slash, w.Recovery)
		}
		if w.Amplitude <= 0 {
			return fmt.Errorf("%w: weapon %s: amplitude must be positive, got %v", ErrInvalidTuning, class, w.Amplitude)
		}
		m := w.Swing
		if m.Shoulder <= 0 || m.Elbow <= 0 || m.Wrist <= 0 || m.Torso <= 0 {
			return fmt.Errorf("%w: weapon %s: swing multipliers must be positive", ErrInvalidTuning, class)
		}
		if w.Weight < 0 || w.Weight > 1 {
			return fmt.Errorf("%w: weapon %s: weight must be within [0,1], got %v", ErrInvalidTuning, class, w.Weight)
		}
	}
	for creature, g := range gaits {
		if g.CycleSpeed <= 0 {
			return fmt.Errorf("%w: gait %s: cycleSpeed must be positive, got %v", ErrInvalidTuning, creature, g.CycleSpeed)
		}
	}
	if blend.Rate <= 0 {
		return fmt.Errorf("%w: blend rate must be positive, got %v", ErrInvalidTuning, blend.Rate)
	}
	if blend.RetargetThreshold < 0 {
		return fmt.Errorf("%w: blend retargetThreshold cannot be negative", ErrInvalidTuning)
	}
	if cache.MaxSize < 1 {
		return fmt.Errorf("%w: cache maxSize must be at least 1, got %d", ErrInvalidTuning, cache.MaxSize)
	}
	if cache.PoolSize < 1 {
		return fmt.Errorf("%w: cache poolSize must be at least 1, got %d", ErrInvalidTuning, cache.PoolSize)
	}
	if cache.TTL <= 0 {
		return fmt.Errorf("%w: cache ttl must be positive, got %v", ErrInvalidTuning, cache.TTL)
	}
	if cache.Tolerance < 0 || cache.BucketWidth <= 0 {
		return fmt.Errorf("%w: cache tolerance/bucketWidth out of range", ErrInvalidTuning)
	}
	return nil
}

func (wt WeaponTuning) apply(w WeaponConfig) WeaponConfig {
	setFloat(&w.Weight, wt.Weight)
	setFloat(&w.Amplitude, wt.Amplitude)
	setFloat(&w.Windup, wt.Windup)
	setFloat(&w.Slash, wt.Slash)
	setFloat(&w.Recovery, wt.Recovery)
	setFloat(&w.Swing.Shoulder, wt.Shoulder)
	setFloat(&w.Swing.Elbow, wt.Elbow)
	setFloat(&w.Swing.Wrist, wt.Wrist)
	setFloat(&w.Swing.Torso, wt.Torso)
	return w
}

func (gt GaitTuning) apply(g GaitConfig) GaitConfig {
	setFloat(&g.CycleSpeed, gt.CycleSpeed)
	setFloat(&g.HipSwing, gt.HipSwing)
	setFloat(&g.ShoulderSwing, gt.ShoulderSwing)
	setFloat(&g.TorsoSway, gt.TorsoSway)
	setFloat(&g.BobHeight, gt.BobHeight)
	setFloat(&g.Asymmetry, gt.Asymmetry)
	return g
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
