package settings

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsService manages reading/writing settings from disk. It is bound to
// the frontend so the settings dialog can read and persist preferences.
type SettingsService struct {
	ctx context.Context
}

func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// Startup receives the Wails context
func (s *SettingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

// GetSettings returns the effective settings (defaults overlaid with file
// overrides if any).
func (s *SettingsService) GetSettings() (Settings, error) {
	settings := defaultSettings
	path, err := settingsFilePath()
	if err != nil {
		return settings, err
	}
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings, err
	}
	applyOverrides(&settings, m)
	return settings, nil
}

// SaveSettings writes the full settings struct to disk.
func (s *SettingsService) SaveSettings(settings Settings) error {
	path, err := settingsFilePath()
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// SaveWindowSize persists the current window dimensions without touching the
// rest of the settings file.
func (s *SettingsService) SaveWindowSize(width, height int) error {
	settings, err := s.GetSettings()
	if err != nil {
		return err
	}
	if width >= 400 {
		settings.WindowWidth = width
	}
	if height >= 300 {
		settings.WindowHeight = height
	}
	return s.SaveSettings(settings)
}
