package ports

import "time"

// Clock abstracts wall-clock time and scheduling so timers can be driven in tests
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	NewTicker(d time.Duration) Ticker
	Now() time.Time
}

// Ticker delivers ticks at a fixed interval
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is a cancellable deferred call
type Timer interface {
	// Stop prevents the call from running; returns false if it already ran or was stopped
	Stop() bool
}
