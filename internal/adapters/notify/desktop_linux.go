//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

// notify uses notify-send from libnotify
func notify(appName, title, body string) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return ErrUnsupported
	}
	cmd := exec.Command("notify-send", "--app-name", appName, title, body)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send failed: %w: %s", err, out)
	}
	return nil
}
