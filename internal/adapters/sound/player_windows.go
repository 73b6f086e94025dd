//go:build windows

package sound

import "os/exec"

// commandsForEvent lists PowerShell system sound candidates
func commandsForEvent(eventType string) []command {
	var sounds []string
	switch eventType {
	case EventFocusComplete:
		sounds = []string{"Asterisk", "Beep"}
	case EventBreakComplete:
		sounds = []string{"Question", "Beep"}
	default:
		sounds = []string{"Beep"}
	}

	cmds := make([]command, 0, len(sounds))
	for _, s := range sounds {
		cmds = append(cmds, command{"powershell", []string{"-c", "[System.Media.SystemSounds]::" + s + ".Play()"}})
	}
	return cmds
}

func (c command) run() error {
	return exec.Command(c.name, c.args...).Run()
}
