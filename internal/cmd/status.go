package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"tempo/internal/domain"
)

// StatusCmd prints the reconciled timer state
type StatusCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// statusOutput is the json form of the timer state
type statusOutput struct {
	Clock        string `json:"clock"`
	InitialTime  int    `json:"initial_time"`
	IsBreak      bool   `json:"is_break"`
	IsPaused     bool   `json:"is_paused"`
	IsRunning    bool   `json:"is_running"`
	Restored     bool   `json:"restored"`
	SavedAt      string `json:"saved_at,omitempty"`
	SessionCount int    `json:"session_count"`
	Status       string `json:"status"`
	Task         string `json:"task"`
	TaskCategory string `json:"task_category"`
	TimeLeft     int    `json:"time_left"`
	User         string `json:"user,omitempty"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	engine, err := cli.Container.OpenTimerEngine(context.Background(), EngineOptions{}, cli.User)
	if err != nil {
		return err
	}
	defer engine.Close()

	snapshot := engine.Snapshot()

	if s.Format == "json" {
		out := statusOutput{
			Clock:        domain.FormatClock(snapshot.TimeLeft),
			InitialTime:  snapshot.InitialTime,
			IsBreak:      snapshot.IsBreak,
			IsPaused:     snapshot.IsPaused,
			IsRunning:    snapshot.IsRunning,
			Restored:     engine.WasRestored(),
			SessionCount: snapshot.SessionCount,
			Status:       snapshot.StatusLabel(),
			Task:         snapshot.CurrentTask,
			TaskCategory: string(snapshot.TaskCategory),
			TimeLeft:     snapshot.TimeLeft,
			User:         engine.Identity(),
		}
		if savedAt := engine.RestoredFrom(); !savedAt.IsZero() {
			out.SavedAt = savedAt.UTC().Format(time.RFC3339)
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	line := formatStatusLine(snapshot)
	if savedAt := engine.RestoredFrom(); !savedAt.IsZero() && !snapshot.IsRunning {
		line += " (saved " + humanize.Time(savedAt) + ")"
	}
	fmt.Println(line)
	return nil
}

// formatStatusLine renders the snapshot as one line, e.g. "▶ 12:34 focus · Write docs #work · 2 done"
func formatStatusLine(s domain.TimerSnapshot) string {
	icon := "■"
	switch {
	case s.IsRunning:
		icon = "▶"
	case s.IsPaused:
		icon = "⏸"
	}

	parts := []string{fmt.Sprintf("%s %s %s", icon, domain.FormatClock(s.TimeLeft), s.PhaseLabel())}
	if task := strings.TrimSpace(s.CurrentTask); task != "" {
		parts = append(parts, fmt.Sprintf("%s #%s", task, s.TaskCategory))
	}
	parts = append(parts, fmt.Sprintf("%d done", s.SessionCount))

	return strings.Join(parts, " · ")
}
