package domain

import (
	"fmt"
	"strings"
)

// Category tags what a focus session was spent on
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryLearning Category = "learning"
	CategoryCreative Category = "creative"
	CategoryHealth   Category = "health"
)

// AllCategories lists categories in display order
var AllCategories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryLearning,
	CategoryCreative,
	CategoryHealth,
}

// ParseCategory converts user input into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Next returns the category after c, wrapping around
func (c Category) Next() Category {
	for i, known := range AllCategories {
		if c == known {
			return AllCategories[(i+1)%len(AllCategories)]
		}
	}
	return CategoryWork
}

// TimerSnapshot is the logical state of the focus timer
type TimerSnapshot struct {
	CurrentTask  string
	InitialTime  int // seconds the current interval started at
	IsBreak      bool
	IsPaused     bool
	IsRunning    bool
	SessionCount int
	TaskCategory Category
	TimeLeft     int // seconds
}

// NewTimerSnapshot returns an idle focus interval for the given settings
func NewTimerSnapshot(settings TimerSettings) TimerSnapshot {
	focus := settings.FocusSeconds()
	return TimerSnapshot{
		InitialTime:  focus,
		TaskCategory: CategoryWork,
		TimeLeft:     focus,
	}
}

// IsIdle reports whether the timer is neither running nor paused
func (s TimerSnapshot) IsIdle() bool {
	return !s.IsRunning && !s.IsPaused
}

// Progress returns the elapsed fraction of the current interval in [0, 1]
func (s TimerSnapshot) Progress() float64 {
	if s.InitialTime <= 0 {
		return 0
	}
	p := float64(s.InitialTime-s.TimeLeft) / float64(s.InitialTime)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// PhaseLabel returns a short human label for the current interval
func (s TimerSnapshot) PhaseLabel() string {
	if s.IsBreak {
		return "break"
	}
	return "focus"
}

// StatusLabel returns running, paused or idle
func (s TimerSnapshot) StatusLabel() string {
	switch {
	case s.IsRunning:
		return "running"
	case s.IsPaused:
		return "paused"
	default:
		return "idle"
	}
}

// FormatClock renders seconds as MM:SS; minutes are not capped at 59
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Default timer settings
const (
	DefaultFocusDuration      = 25
	DefaultShortBreakDuration = 5
	DefaultLongBreakDuration  = 15
	DefaultLongBreakInterval  = 4
)

// TimerSettings holds the durations (minutes) and behaviour toggles of the timer
type TimerSettings struct {
	AutoStartBreaks    bool
	AutoStartSessions  bool
	FocusDuration      int
	LongBreakDuration  int
	LongBreakInterval  int
	ShortBreakDuration int
	SoundEnabled       bool
}

// DefaultTimerSettings returns the built-in timer configuration
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		FocusDuration:      DefaultFocusDuration,
		LongBreakDuration:  DefaultLongBreakDuration,
		LongBreakInterval:  DefaultLongBreakInterval,
		ShortBreakDuration: DefaultShortBreakDuration,
		SoundEnabled:       true,
	}
}

// Normalize replaces non-positive values with defaults
func (s TimerSettings) Normalize() TimerSettings {
	if s.FocusDuration <= 0 {
		s.FocusDuration = DefaultFocusDuration
	}
	if s.ShortBreakDuration <= 0 {
		s.ShortBreakDuration = DefaultShortBreakDuration
	}
	if s.LongBreakDuration <= 0 {
		s.LongBreakDuration = DefaultLongBreakDuration
	}
	if s.LongBreakInterval <= 0 {
		s.LongBreakInterval = DefaultLongBreakInterval
	}
	return s
}

// FocusSeconds returns the focus interval length in seconds
func (s TimerSettings) FocusSeconds() int {
	return s.Normalize().FocusDuration * 60
}

// BreakSeconds returns the length in seconds of a long or short break
func (s TimerSettings) BreakSeconds(long bool) int {
	n := s.Normalize()
	if long {
		return n.LongBreakDuration * 60
	}
	return n.ShortBreakDuration * 60
}

// IsLongBreakDue reports whether completing focus session number count earns a long break
func (s TimerSettings) IsLongBreakDue(count int) bool {
	return count%s.Normalize().LongBreakInterval == 0
}
