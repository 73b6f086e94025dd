package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/config"
	"tempo/internal/logging"
	"tempo/internal/ui"
)

const defaultErrorClearDelay = 10

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	User        string           `help:"Identity that owns the timer (switching identity discards another owner's timer)" env:"TEMPO_USER"`

	Run       RunCmd       `cmd:"" help:"Start the tempo TUI (default)" default:"1"`
	Start     StartCmd     `cmd:"start" help:"Start or resume the timer"`
	Pause     PauseCmd     `cmd:"pause" help:"Pause the running timer"`
	Resume    ResumeCmd    `cmd:"resume" help:"Resume a paused timer"`
	Stop      StopCmd      `cmd:"stop" help:"Stop the timer and rewind the current interval"`
	Reset     ResetCmd     `cmd:"reset" help:"Reset to a fresh focus interval and erase the saved timer"`
	Status    StatusCmd    `cmd:"status" help:"Show the timer state (compact line for status bars)"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Browse completed focus sessions"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, edit, keys)"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the timer TUI over SSH"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play notification sound (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply loads settings, initializes logging and wires the container
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		c.settings = settings
	}

	// CLI flags > env vars > settings.json > defaults.
	// A setting is applied only when the flag is at its default and the env var is unset.
	if c.MaxLogFiles == 1000 {
		if _, hasEnv := os.LookupEnv("TEMPO_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("TEMPO_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.User == "" {
		c.User = c.settings.User
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Child processes append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TEMPO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TEMPO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("TEMPO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container opens the database, whose gorm logger needs logging initialized
	container, err := NewContainer(context.Background(), c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if r.ErrorClearDelay == defaultErrorClearDelay && cli.settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *cli.settings.ErrorClearDelay
	}

	var keysConfig config.KeyBindingsConfig
	if cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	logging.Logger.Info("Starting tempo TUI", "user", cli.User)

	engine, err := cli.Container.OpenTimerEngine(context.Background(), EngineOptions{}, cli.User)
	if err != nil {
		return err
	}
	defer engine.Close()

	model := ui.NewModel(engine, ui.ModelConfig{
		ErrorClearDelay:   time.Duration(r.ErrorClearDelay) * time.Second,
		Identity:          cli.User,
		KeysConfig:        keysConfig,
		SaveTimerSettings: cli.Container.SettingsService.UpdateTimerSettings,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
