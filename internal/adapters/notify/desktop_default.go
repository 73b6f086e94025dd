//go:build !darwin && !linux

package notify

// notify is unavailable on this platform
func notify(appName, title, body string) error {
	return ErrUnsupported
}
