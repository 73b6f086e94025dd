package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "203" // Tomato - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Interval colors
const (
	ColorBreak  Color = "42"  // Green - break running
	ColorFocus  Color = "203" // Tomato - focus running
	ColorPaused Color = "3"   // Yellow - paused
	ColorIdle   Color = "8"   // Gray - idle
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorBanner    Color = "141" // Purple - restore banner border
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
)

// CategoryColors maps each task category to its badge color
var CategoryColors = map[string]Color{
	"work":     "33",
	"personal": "213",
	"learning": "214",
	"creative": "141",
	"health":   "46",
}
