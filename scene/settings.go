package scene

import (
	"fmt"
	"log"

	"approach/v2/flight"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the viewer choices remembered between runs.
type Settings struct {
	SpeedFactor  float64 `yaml:"speedFactor"`
	Camera       string  `yaml:"camera"`
	MusicVolume  float64 `yaml:"musicVolume"`
	MusicEnabled bool    `yaml:"musicEnabled"`
}

func DefaultSettings() *Settings {
	return &Settings{
		SpeedFactor:  flight.DefaultSpeedFactor,
		Camera:       "chase",
		MusicVolume:  0.7,
		MusicEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// SettingsStore persists Settings through gdata. A nil manager keeps
// everything in memory.
type SettingsStore struct {
	manager  *gdata.Manager
	settings *Settings
}

// NewSettingsStore loads stored settings, falling back to defaults on any
// read failure.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	s := &SettingsStore{
		manager:  manager,
		settings: DefaultSettings(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return s
}

func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SpeedFactor = flight.ClampSpeed(loaded.SpeedFactor)
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)

	s.settings = loaded
	log.Printf("[Settings] Loaded: speed %.1f, camera %s", loaded.SpeedFactor, loaded.Camera)
	return nil
}

func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] Saved")
	return nil
}

// Settings returns a copy of the current values.
func (s *SettingsStore) Settings() Settings {
	return *s.settings
}

func (s *SettingsStore) SetSpeedFactor(f float64) {
	s.settings.SpeedFactor = flight.ClampSpeed(f)
}

func (s *SettingsStore) SetCamera(mode string) {
	s.settings.Camera = mode
}

func (s *SettingsStore) SetMusicVolume(v float64) {
	s.settings.MusicVolume = clampVolume(v)
}

func (s *SettingsStore) SetMusicEnabled(enabled bool) {
	s.settings.MusicEnabled = enabled
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
