//go:build linux

package sound

import "os/exec"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// commandsForEvent lists paplay (PulseAudio) and aplay (ALSA) candidates
func commandsForEvent(eventType string) []command {
	var names []string
	switch eventType {
	case EventFocusComplete:
		names = []string{"complete", "bell"}
	case EventBreakComplete:
		names = []string{"service-login", "message"}
	default:
		names = []string{"bell"}
	}

	var cmds []command
	for _, n := range names {
		cmds = append(cmds,
			command{"paplay", []string{freedesktopSounds + n + ".oga"}},
			command{"aplay", []string{freedesktopSounds + n + ".wav"}},
		)
	}
	return cmds
}

func (c command) run() error {
	return exec.Command(c.name, c.args...).Run()
}
