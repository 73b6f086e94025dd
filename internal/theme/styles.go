package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder())

	PhaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaskStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TaskPlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Restore banner style
var BannerStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorBanner).
	Foreground(ColorNormal).
	Padding(0, 1)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// CategoryStyle returns the badge style for a task category
func CategoryStyle(category string) lipgloss.Style {
	color, ok := CategoryColors[category]
	if !ok {
		color = ColorSubtle
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// IntervalColor picks the clock color for the interval state
func IntervalColor(isBreak, isRunning, isPaused bool) Color {
	switch {
	case isPaused:
		return ColorPaused
	case !isRunning:
		return ColorIdle
	case isBreak:
		return ColorBreak
	default:
		return ColorFocus
	}
}
