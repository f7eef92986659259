package systems

import (
	cfg "github.com/automoto/rigmotion/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[cfg.ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Controls is the global input configuration
var Controls InputConfig

func init() {
	Controls = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ActionID]InputBinding{
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			cfg.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			cfg.ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeyZ},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			cfg.ActionDrawBow: {
				Keys: []ebiten.Key{ebiten.KeyX},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			cfg.ActionWeaponSword: {Keys: []ebiten.Key{ebiten.Key1}},
			cfg.ActionWeaponAxe:   {Keys: []ebiten.Key{ebiten.Key2}},
			cfg.ActionWeaponClub:  {Keys: []ebiten.Key{ebiten.Key3}},
			cfg.ActionToggleCache: {
				Keys: []ebiten.Key{ebiten.KeyC},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			cfg.ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
			cfg.ActionTimeFaster: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			cfg.ActionTimeSlower: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
		},
	}
}
