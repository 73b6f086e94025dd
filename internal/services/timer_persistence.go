package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

const (
	// TimerStateKey is the slot key holding the serialized timer snapshot
	TimerStateKey = "tempo-timer-state"

	// TimerOwnerKey is the slot key holding the identity that owns the snapshot
	TimerOwnerKey = "tempo-timer-owner"

	// RestoreWindow is how old a snapshot may be and still be restored
	RestoreWindow = 24 * time.Hour
)

// persistedSnapshot is the stored form of a TimerSnapshot
type persistedSnapshot struct {
	CurrentTask  string `json:"currentTask"`
	TimeLeft     int    `json:"timeLeft"`
	IsRunning    bool   `json:"isRunning"`
	IsPaused     bool   `json:"isPaused"`
	IsBreak      bool   `json:"isBreak"`
	SessionCount int    `json:"sessionCount"`
	TaskCategory string `json:"taskCategory"`
	InitialTime  int    `json:"initialTime"`
	LastSaveTime int64  `json:"lastSaveTime"` // epoch milliseconds
}

// TimerPersistence saves and restores the timer snapshot in a durable slot.
// All failures are logged and swallowed; callers never see a persistence error.
type TimerPersistence struct {
	clock ports.Clock
	slot  ports.KeyValueSlot
}

// NewTimerPersistence creates a new TimerPersistence
func NewTimerPersistence(slot ports.KeyValueSlot, clock ports.Clock) *TimerPersistence {
	return &TimerPersistence{
		clock: clock,
		slot:  slot,
	}
}

// Save stamps the snapshot with the current time and writes it
func (p *TimerPersistence) Save(snapshot domain.TimerSnapshot) {
	record := persistedSnapshot{
		CurrentTask:  snapshot.CurrentTask,
		TimeLeft:     snapshot.TimeLeft,
		IsRunning:    snapshot.IsRunning,
		IsPaused:     snapshot.IsPaused,
		IsBreak:      snapshot.IsBreak,
		SessionCount: snapshot.SessionCount,
		TaskCategory: string(snapshot.TaskCategory),
		InitialTime:  snapshot.InitialTime,
		LastSaveTime: p.clock.Now().UnixMilli(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		logging.Logger.Error("Failed to encode timer state", "error", err)
		return
	}

	if err := p.slot.Set(TimerStateKey, string(data)); err != nil {
		logging.Logger.Error("Failed to save timer state", "error", err)
		return
	}

	logging.Logger.Debug("Timer state saved",
		"time_left", record.TimeLeft,
		"running", record.IsRunning,
		"paused", record.IsPaused,
		"break", record.IsBreak)
}

// Load returns the stored snapshot reconciled against the time that passed since it was saved.
// ok is false when nothing is stored or the stored value cannot be parsed.
func (p *TimerPersistence) Load() (snapshot domain.TimerSnapshot, ok bool) {
	record, ok := p.read()
	if !ok {
		return domain.TimerSnapshot{}, false
	}

	snapshot = domain.TimerSnapshot{
		CurrentTask:  record.CurrentTask,
		InitialTime:  record.InitialTime,
		IsBreak:      record.IsBreak,
		IsPaused:     record.IsPaused,
		IsRunning:    record.IsRunning,
		SessionCount: max(record.SessionCount, 0),
		TaskCategory: domain.Category(record.TaskCategory),
		TimeLeft:     max(record.TimeLeft, 0),
	}
	if !snapshot.TaskCategory.IsValid() {
		snapshot.TaskCategory = domain.CategoryWork
	}
	if snapshot.IsRunning && snapshot.IsPaused {
		logging.Logger.Warn("Stored timer state is both running and paused, treating as paused")
		snapshot.IsRunning = false
	}
	if snapshot.InitialTime < snapshot.TimeLeft {
		snapshot.InitialTime = snapshot.TimeLeft
	}

	if snapshot.IsRunning {
		elapsed := (p.clock.Now().UnixMilli() - record.LastSaveTime) / 1000
		if elapsed < 0 {
			elapsed = 0
		}
		snapshot.TimeLeft = max(snapshot.TimeLeft-int(elapsed), 0)
		snapshot.IsRunning = snapshot.TimeLeft > 0
		snapshot.IsPaused = false

		logging.Logger.Info("Timer state reconciled",
			"elapsed_seconds", elapsed,
			"time_left", snapshot.TimeLeft,
			"running", snapshot.IsRunning)
	}

	return snapshot, true
}

// ShouldRestore reports whether a stored snapshot exists and is younger than RestoreWindow
func (p *TimerPersistence) ShouldRestore() bool {
	savedAt, ok := p.SavedAt()
	if !ok {
		return false
	}
	return p.clock.Now().Sub(savedAt) < RestoreWindow
}

// SavedAt returns when the stored snapshot was written
func (p *TimerPersistence) SavedAt() (time.Time, bool) {
	record, ok := p.read()
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(record.LastSaveTime), true
}

// Clear removes the stored snapshot
func (p *TimerPersistence) Clear() {
	if err := p.slot.Remove(TimerStateKey); err != nil {
		logging.Logger.Error("Failed to clear timer state", "error", err)
		return
	}
	logging.Logger.Debug("Timer state cleared")
}

// Owner returns the identity that owns the stored snapshot, "" if none
func (p *TimerPersistence) Owner() string {
	owner, err := p.slot.Get(TimerOwnerKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotEmpty) {
			logging.Logger.Error("Failed to read timer owner", "error", err)
		}
		return ""
	}
	return strings.TrimSpace(owner)
}

// SetOwner records the identity that owns the stored snapshot
func (p *TimerPersistence) SetOwner(identity string) {
	if err := p.slot.Set(TimerOwnerKey, identity); err != nil {
		logging.Logger.Error("Failed to save timer owner", "error", err, "identity", identity)
	}
}

func (p *TimerPersistence) read() (persistedSnapshot, bool) {
	raw, err := p.slot.Get(TimerStateKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotEmpty) {
			logging.Logger.Error("Failed to read timer state", "error", err)
		}
		return persistedSnapshot{}, false
	}

	var record persistedSnapshot
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logging.Logger.Warn("Failed to parse timer state", "error", err)
		return persistedSnapshot{}, false
	}
	return record, true
}
