package notify

import (
	"errors"

	"tempo/internal/ports"
)

// ErrUnsupported is returned when the platform has no notification tool
var ErrUnsupported = errors.New("desktop notifications not supported on this platform")

// Desktop implements ports.Notifier with the platform's notification tool
type Desktop struct {
	appName string
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Desktop)(nil)

// NewDesktop creates a Desktop notifier that labels notifications with appName
func NewDesktop(appName string) *Desktop {
	return &Desktop{appName: appName}
}

// Notify shows title and body. Platform-specific implementations are in desktop_*.go files.
func (d *Desktop) Notify(title, body string) error {
	return notify(d.appName, title, body)
}
