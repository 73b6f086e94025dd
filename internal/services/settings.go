package services

import (
	"fmt"

	"tempo/internal/config"
	"tempo/internal/domain"
	"tempo/internal/logging"
)

// SettingsService reads and updates the settings file
type SettingsService struct {
	save     func(*config.Settings) error
	settings *config.Settings
}

// NewSettingsService creates a new SettingsService around already loaded settings
func NewSettingsService(settings *config.Settings) *SettingsService {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &SettingsService{
		save:     config.SaveSettings,
		settings: settings,
	}
}

// Settings returns the loaded settings
func (s *SettingsService) Settings() *config.Settings {
	return s.settings
}

// TimerSettings returns the effective timer settings
func (s *SettingsService) TimerSettings() domain.TimerSettings {
	return s.settings.TimerSettings()
}

// UpdateTimerSettings validates and persists new timer settings
func (s *SettingsService) UpdateTimerSettings(ts domain.TimerSettings) error {
	if ts.FocusDuration <= 0 || ts.ShortBreakDuration <= 0 || ts.LongBreakDuration <= 0 || ts.LongBreakInterval <= 0 {
		return fmt.Errorf("durations and long break interval must be positive")
	}

	logging.Logger.Info("Updating timer settings",
		"focus", ts.FocusDuration,
		"short_break", ts.ShortBreakDuration,
		"long_break", ts.LongBreakDuration,
		"interval", ts.LongBreakInterval)

	s.settings.SetTimerSettings(ts)
	if err := s.save(s.settings); err != nil {
		logging.Logger.Error("Failed to save timer settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// SetKeyBinding stores a custom key binding after checking it against validNames
func (s *SettingsService) SetKeyBinding(name string, keys []string, validNames []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", name, "values", keys)

	bindings := make(config.KeyBindingsConfig, len(s.settings.Keys)+1)
	for k, v := range s.settings.Keys {
		bindings[k] = v
	}
	bindings[name] = keys

	if err := bindings.Validate(validNames); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	s.settings.Keys = bindings
	if err := s.save(s.settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
