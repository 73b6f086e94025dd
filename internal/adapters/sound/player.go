package sound

import (
	"fmt"
	"io"
	"os"

	"tempo/internal/logging"
	"tempo/internal/ports"
)

// Sound event names understood by the platform players
const (
	EventBreakComplete = "break-complete"
	EventFocusComplete = "focus-complete"
)

// command is one way of playing a sound on the current platform
type command struct {
	name string
	args []string
}

// Player implements ports.SoundPlayer
type Player struct {
	bell     io.Writer
	bellOnly bool
}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player that uses the platform's audio tools, ringing the terminal bell as a fallback
func NewPlayer() *Player {
	return &Player{bell: os.Stdout}
}

// NewBellPlayer creates a player that only writes the terminal bell to w.
// Used for SSH sessions where the server's speakers are not the user's.
func NewBellPlayer(w io.Writer) *Player {
	return &Player{bell: w, bellOnly: true}
}

// PlaySound plays the focus completion sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(EventFocusComplete)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific candidates are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if !p.bellOnly {
		for _, c := range commandsForEvent(eventType) {
			if err := c.run(); err == nil {
				logging.Logger.Debug("Sound played", "event", eventType, "command", c.name)
				return nil
			}
		}
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
