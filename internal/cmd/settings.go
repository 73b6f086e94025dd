package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"tempo/internal/config"
	"tempo/internal/domain"
	"tempo/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit SettingsEditCmd `cmd:"edit" help:"Edit timer durations and behaviour"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case map[string]any, []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure tempo.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsEditCmd edits the timer settings, with a form unless values are given as flags
type SettingsEditCmd struct {
	AutoStartBreaks   string `help:"Start breaks automatically (on or off)" enum:",on,off" default:""`
	AutoStartSessions string `help:"Start focus sessions automatically after a break (on or off)" enum:",on,off" default:""`
	Focus             int    `help:"Focus duration in minutes"`
	LongBreak         int    `help:"Long break duration in minutes"`
	LongBreakInterval int    `help:"Focus sessions between long breaks"`
	ShortBreak        int    `help:"Short break duration in minutes"`
	Sound             string `help:"Play a sound when an interval completes (on or off)" enum:",on,off" default:""`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	ts := cli.Container.SettingsService.TimerSettings()

	if s.hasFlags() {
		ts = s.apply(ts)
	} else {
		edited, err := runSettingsForm(ts)
		if err != nil {
			return err
		}
		ts = edited
	}

	if err := cli.Container.SettingsService.UpdateTimerSettings(ts); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", config.GetSettingsPath())
	fmt.Printf("focus %dm · short break %dm · long break %dm every %d · sound %t\n",
		ts.FocusDuration, ts.ShortBreakDuration, ts.LongBreakDuration, ts.LongBreakInterval, ts.SoundEnabled)
	return nil
}

func (s *SettingsEditCmd) hasFlags() bool {
	return s.Focus != 0 || s.ShortBreak != 0 || s.LongBreak != 0 || s.LongBreakInterval != 0 ||
		s.AutoStartBreaks != "" || s.AutoStartSessions != "" || s.Sound != ""
}

func (s *SettingsEditCmd) apply(ts domain.TimerSettings) domain.TimerSettings {
	if s.Focus != 0 {
		ts.FocusDuration = s.Focus
	}
	if s.ShortBreak != 0 {
		ts.ShortBreakDuration = s.ShortBreak
	}
	if s.LongBreak != 0 {
		ts.LongBreakDuration = s.LongBreak
	}
	if s.LongBreakInterval != 0 {
		ts.LongBreakInterval = s.LongBreakInterval
	}
	if s.AutoStartBreaks != "" {
		ts.AutoStartBreaks = s.AutoStartBreaks == "on"
	}
	if s.AutoStartSessions != "" {
		ts.AutoStartSessions = s.AutoStartSessions == "on"
	}
	if s.Sound != "" {
		ts.SoundEnabled = s.Sound == "on"
	}
	return ts
}

// runSettingsForm asks for every timer setting, prefilled with the current values
func runSettingsForm(ts domain.TimerSettings) (domain.TimerSettings, error) {
	focus := strconv.Itoa(ts.FocusDuration)
	shortBreak := strconv.Itoa(ts.ShortBreakDuration)
	longBreak := strconv.Itoa(ts.LongBreakDuration)
	interval := strconv.Itoa(ts.LongBreakInterval)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus duration (minutes)").
				Value(&focus).
				Validate(validatePositive),
			huh.NewInput().
				Title("Short break (minutes)").
				Value(&shortBreak).
				Validate(validatePositive),
			huh.NewInput().
				Title("Long break (minutes)").
				Value(&longBreak).
				Validate(validatePositive),
			huh.NewInput().
				Title("Focus sessions before a long break").
				Value(&interval).
				Validate(validatePositive),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start breaks automatically?").
				Value(&ts.AutoStartBreaks),
			huh.NewConfirm().
				Title("Start focus sessions automatically?").
				Value(&ts.AutoStartSessions),
			huh.NewConfirm().
				Title("Play a sound when an interval completes?").
				Value(&ts.SoundEnabled),
		),
	)

	if err := form.Run(); err != nil {
		logging.Logger.Debug("Settings form aborted", "error", err)
		return ts, fmt.Errorf("settings not saved: %w", err)
	}

	// Inputs passed validation
	ts.FocusDuration, _ = strconv.Atoi(focus)
	ts.ShortBreakDuration, _ = strconv.Atoi(shortBreak)
	ts.LongBreakDuration, _ = strconv.Atoi(longBreak)
	ts.LongBreakInterval, _ = strconv.Atoi(interval)
	return ts, nil
}

func validatePositive(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number greater than zero")
	}
	return nil
}
