package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/domain"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "start", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown names, empty values and keys bound twice.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Slot backends
const (
	SlotBackendFile   = "file"
	SlotBackendSQLite = "sqlite"
)

// Settings represents the structure of ~/.tempo/settings.json
type Settings struct {
	AutoStartBreaks      *bool             `json:"auto_start_breaks,omitempty"`
	AutoStartSessions    *bool             `json:"auto_start_sessions,omitempty"`
	DatabaseURL          string            `json:"database_url,omitempty"`
	Debug                *bool             `json:"debug,omitempty"`
	ErrorClearDelay      *int              `json:"error_clear_delay,omitempty"`
	FocusDuration        *int              `json:"focus_duration,omitempty"`
	Keys                 KeyBindingsConfig `json:"keys,omitempty"`
	LongBreakDuration    *int              `json:"long_break_duration,omitempty"`
	LongBreakInterval    *int              `json:"long_break_interval,omitempty"`
	MaxLogFiles          *int              `json:"max_log_files,omitempty"`
	NotificationsEnabled *bool             `json:"notifications_enabled,omitempty"`
	ShortBreakDuration   *int              `json:"short_break_duration,omitempty"`
	SlotBackend          string            `json:"slot_backend,omitempty"`
	SoundEnabled         *bool             `json:"sound_enabled,omitempty"`
	User                 string            `json:"user,omitempty"`
}

// TimerSettings merges the configured timer values over the defaults
func (s *Settings) TimerSettings() domain.TimerSettings {
	ts := domain.DefaultTimerSettings()
	if s == nil {
		return ts
	}
	if s.FocusDuration != nil {
		ts.FocusDuration = *s.FocusDuration
	}
	if s.ShortBreakDuration != nil {
		ts.ShortBreakDuration = *s.ShortBreakDuration
	}
	if s.LongBreakDuration != nil {
		ts.LongBreakDuration = *s.LongBreakDuration
	}
	if s.LongBreakInterval != nil {
		ts.LongBreakInterval = *s.LongBreakInterval
	}
	if s.AutoStartBreaks != nil {
		ts.AutoStartBreaks = *s.AutoStartBreaks
	}
	if s.AutoStartSessions != nil {
		ts.AutoStartSessions = *s.AutoStartSessions
	}
	if s.SoundEnabled != nil {
		ts.SoundEnabled = *s.SoundEnabled
	}
	return ts.Normalize()
}

// SetTimerSettings stores every timer value explicitly
func (s *Settings) SetTimerSettings(ts domain.TimerSettings) {
	ts = ts.Normalize()
	s.AutoStartBreaks = &ts.AutoStartBreaks
	s.AutoStartSessions = &ts.AutoStartSessions
	s.FocusDuration = &ts.FocusDuration
	s.LongBreakDuration = &ts.LongBreakDuration
	s.LongBreakInterval = &ts.LongBreakInterval
	s.ShortBreakDuration = &ts.ShortBreakDuration
	s.SoundEnabled = &ts.SoundEnabled
}

// NotificationsOn reports whether desktop notifications are enabled (default true)
func (s *Settings) NotificationsOn() bool {
	if s == nil || s.NotificationsEnabled == nil {
		return true
	}
	return *s.NotificationsEnabled
}

// Validate rejects values the application cannot run with
func (s *Settings) Validate() error {
	switch s.SlotBackend {
	case "", SlotBackendFile, SlotBackendSQLite:
	default:
		return fmt.Errorf("invalid slot_backend %q (expected %q or %q)", s.SlotBackend, SlotBackendFile, SlotBackendSQLite)
	}
	for name, v := range map[string]*int{
		"focus_duration":       s.FocusDuration,
		"short_break_duration": s.ShortBreakDuration,
		"long_break_duration":  s.LongBreakDuration,
		"long_break_interval":  s.LongBreakInterval,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}
	return nil
}

// LoadSettings loads settings from $TEMPO_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TEMPO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
