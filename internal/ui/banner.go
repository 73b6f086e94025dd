package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"tempo/internal/domain"
	"tempo/internal/theme"
)

// renderRestoreBanner describes the session that was picked up from disk
func renderRestoreBanner(snapshot domain.TimerSnapshot, savedAt time.Time, dismissKey string) string {
	task := snapshot.CurrentTask
	if strings.TrimSpace(task) == "" {
		task = "untitled"
	}

	line := fmt.Sprintf("↺ Restored %s %q with %s left (%s)",
		snapshot.PhaseLabel(), task, domain.FormatClock(snapshot.TimeLeft), snapshot.StatusLabel())
	if !savedAt.IsZero() {
		line += ", saved " + humanize.Time(savedAt)
	}
	line += theme.SubtleStyle.Render("  " + dismissKey + " to dismiss")

	return theme.BannerStyle.Render(line)
}
