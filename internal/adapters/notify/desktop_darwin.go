//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strconv"
)

// notify uses osascript's display notification
func notify(appName, title, body string) error {
	script := fmt.Sprintf("display notification %s with title %s subtitle %s",
		strconv.Quote(body), strconv.Quote(title), strconv.Quote(appName))
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %w: %s", err, out)
	}
	return nil
}
