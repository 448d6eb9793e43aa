package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// Settings are the player's display preferences. They are global, not
// tied to a run.
type Settings struct {
	Fullscreen bool `yaml:"fullscreen"`
}

// SettingsStore persists Settings through gdata. A nil manager keeps them in
// memory only.
type SettingsStore struct {
	gdataManager *gdata.Manager
	settings     Settings
}

// NewSettingsStore loads the saved settings. A load failure is logged and
// leaves the defaults in place.
func NewSettingsStore(gdataManager *gdata.Manager) *SettingsStore {
	s := &SettingsStore{gdataManager: gdataManager}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return s
}

// Load re-reads the settings. A missing record means defaults.
func (s *SettingsStore) Load() error {
	if s.gdataManager == nil {
		return nil
	}
	s.settings = Settings{}
	if !s.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := s.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.settings = loaded
	return nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() Settings { return s.settings }

// SetFullscreen records the fullscreen preference and saves it.
func (s *SettingsStore) SetFullscreen(enabled bool) error {
	s.settings.Fullscreen = enabled
	return s.save()
}

func (s *SettingsStore) save() error {
	if s.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] saved (fullscreen=%v)", s.settings.Fullscreen)
	return nil
}
