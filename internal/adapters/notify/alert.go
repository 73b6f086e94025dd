package notify

import (
	"fmt"
	"io"
	"sync"

	"tempo/internal/ports"
)

// WriterAlerter implements ports.Alerter by printing the message on its own line
type WriterAlerter struct {
	mu sync.Mutex
	w  io.Writer
}

// Verify interface compliance at compile time
var _ ports.Alerter = (*WriterAlerter)(nil)

// NewWriterAlerter creates an alerter that writes to w (usually os.Stderr)
func NewWriterAlerter(w io.Writer) *WriterAlerter {
	return &WriterAlerter{w: w}
}

func (a *WriterAlerter) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.w, "⚠ %s\n", message)
}

// AlerterFunc adapts a function to ports.Alerter
type AlerterFunc func(message string)

func (f AlerterFunc) Alert(message string) { f(message) }
