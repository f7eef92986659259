package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Weapon       string  `json:"weapon"`
	TimeScale    float64 `json:"timeScale"`
	CacheEnabled bool    `json:"cacheEnabled"`
	ShowJoints   bool    `json:"showJoints"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "rigmotion",
	})
	if err != nil {
		log.Printf("[persistence] Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("[persistence] Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("[persistence] Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the sandbox toggles from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(ToSavedSettings(s))
}

// ToSavedSettings converts the live toggles into their on-disk form
func ToSavedSettings(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		Weapon:       s.Weapon.String(),
		TimeScale:    s.TimeScale,
		CacheEnabled: s.CacheEnabled,
		ShowJoints:   s.ShowJoints,
	}
}

// ApplySavedSettings applies loaded settings to the running sandbox. Unknown
// weapon names and out-of-range time scales fall back to the current values.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if w, ok := cfg.WeaponByName(saved.Weapon); ok {
		settings.Weapon = w
	}
	if saved.TimeScale > 0 {
		settings.TimeScale = clampTimeScale(saved.TimeScale)
	}
	settings.ShowJoints = saved.ShowJoints || cfg.Debug.ShowJoints
	SetCacheEnabled(e, saved.CacheEnabled)
	settings.Dirty = false
}
