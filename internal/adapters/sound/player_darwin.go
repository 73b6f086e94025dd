//go:build darwin

package sound

import "os/exec"

// commandsForEvent lists afplay candidates from the system sounds
func commandsForEvent(eventType string) []command {
	var files []string
	switch eventType {
	case EventFocusComplete:
		files = []string{"Glass", "Tink"}
	case EventBreakComplete:
		files = []string{"Submarine", "Purr"}
	default:
		files = []string{"Ping"}
	}

	cmds := make([]command, 0, len(files))
	for _, f := range files {
		cmds = append(cmds, command{"afplay", []string{"/System/Library/Sounds/" + f + ".aiff"}})
	}
	return cmds
}

// afplay blocks for the length of the sound, so it is only started
func (c command) run() error {
	return exec.Command(c.name, c.args...).Start()
}
