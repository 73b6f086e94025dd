//go:build !darwin && !linux && !windows

package sound

import "errors"

// commandsForEvent has nothing to offer on unsupported platforms
func commandsForEvent(eventType string) []command {
	return nil
}

func (c command) run() error {
	return errors.New("sound playback not supported")
}
