package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/kalpa123456/christmas-tree111/config"
)

// SavedSettings represents the display settings stored on disk. The
// formation state itself is deliberately not persisted; every session
// starts clustered.
type SavedSettings struct {
	AutoRotate   bool `json:"autoRotate"`
	ShowHints    bool `json:"showHints"`
	DensityIndex int  `json:"densityIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "christmas-tree111",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
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
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
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
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings copies loaded settings over the config defaults so
// scene construction picks them up.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Settings.AutoRotate = saved.AutoRotate
	cfg.Settings.ShowHints = saved.ShowHints
	if saved.DensityIndex >= 0 && saved.DensityIndex < len(cfg.Settings.DensitySteps) {
		cfg.Settings.DensityIndex = saved.DensityIndex
	}
}

// UpdateSettings flushes changed settings to disk.
func UpdateSettings(e *ecs.ECS) {
	settings := currentSettings(e)
	if settings == nil || !settings.Dirty {
		return
	}
	settings.Dirty = false

	_ = SaveSettings(&SavedSettings{
		AutoRotate:   settings.AutoRotate,
		ShowHints:    settings.ShowHints,
		DensityIndex: settings.DensityIndex,
	})
}
