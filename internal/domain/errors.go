package domain

import "errors"

var (
	ErrEngineNotReady  = errors.New("timer engine is not ready")
	ErrInvalidCategory = errors.New("invalid task category")
	ErrNotPaused       = errors.New("timer is not paused")
	ErrNotRunning      = errors.New("timer is not running")
	ErrSessionNotFound = errors.New("session not found")
	ErrSlotEmpty       = errors.New("slot is empty")
	ErrTaskRequired    = errors.New("please enter a task to focus on")
)
