package cmd

import (
	"fmt"

	adaptersound "tempo/internal/adapters/sound"
)

// PlaySoundCmd plays a notification sound
type PlaySoundCmd struct {
	Event string `help:"Sound to play" enum:"focus-complete,break-complete" default:"focus-complete"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == adaptersound.EventFocusComplete {
		return cli.Container.NotificationService.PlaySound()
	}
	if err := cli.Container.NotificationService.PlaySoundForEvent(p.Event); err != nil {
		return fmt.Errorf("failed to play sound: %w", err)
	}
	return nil
}
