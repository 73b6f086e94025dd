package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	adapternotify "tempo/internal/adapters/notify"
	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/services"
)

// withEngine restores the persisted timer, applies action and prints the resulting state.
// Engines are closed on return; the snapshot stays persisted for the next process.
func withEngine(cli *CLI, action func(engine *services.TimerEngine) error) error {
	engine, err := cli.Container.OpenTimerEngine(context.Background(), EngineOptions{
		Alerter: adapternotify.NewWriterAlerter(os.Stderr),
	}, cli.User)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := action(engine); err != nil {
		return err
	}

	fmt.Println(formatStatusLine(engine.Snapshot()))
	return nil
}

// StartCmd starts or resumes the timer
type StartCmd struct {
	Category string `help:"Task category (work, personal, learning, creative, health)" short:"c"`
	Task     string `help:"Task to focus on" short:"t"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	var category domain.Category
	if s.Category != "" {
		c, err := domain.ParseCategory(s.Category)
		if err != nil {
			return err
		}
		category = c
	}

	return withEngine(cli, func(engine *services.TimerEngine) error {
		if s.Task != "" {
			if err := engine.SetCurrentTask(s.Task); err != nil {
				return err
			}
		}
		if category != "" {
			if err := engine.SetTaskCategory(category); err != nil {
				return err
			}
		}

		if engine.Snapshot().IsPaused {
			logging.Logger.Debug("Timer paused, resuming instead of starting")
			return engine.Resume()
		}
		if err := engine.Start(); err != nil {
			if errors.Is(err, domain.ErrTaskRequired) {
				return fmt.Errorf("%w (use --task)", err)
			}
			return err
		}
		return nil
	})
}

// PauseCmd pauses the running timer
type PauseCmd struct{}

// Run executes the pause command
func (p *PauseCmd) Run(cli *CLI) error {
	return withEngine(cli, func(engine *services.TimerEngine) error {
		return engine.Pause()
	})
}

// ResumeCmd resumes a paused timer
type ResumeCmd struct{}

// Run executes the resume command
func (r *ResumeCmd) Run(cli *CLI) error {
	return withEngine(cli, func(engine *services.TimerEngine) error {
		return engine.Resume()
	})
}

// StopCmd stops the timer and rewinds the current interval
type StopCmd struct{}

// Run executes the stop command
func (s *StopCmd) Run(cli *CLI) error {
	return withEngine(cli, func(engine *services.TimerEngine) error {
		return engine.Stop()
	})
}

// ResetCmd returns to a fresh focus interval and erases the saved timer
type ResetCmd struct{}

// Run executes the reset command
func (r *ResetCmd) Run(cli *CLI) error {
	return withEngine(cli, func(engine *services.TimerEngine) error {
		return engine.Reset()
	})
}
