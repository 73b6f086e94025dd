package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

const (
	// AutoStartDelay is how long after a completion the next interval starts on its own
	AutoStartDelay = time.Second

	// TickInterval is the countdown resolution
	TickInterval = time.Second

	// TaskRequiredMessage is shown when a focus interval is started without a task
	TaskRequiredMessage = "Please enter a task to focus on!"

	recordTimeout = 5 * time.Second
)

// Sound events played on completion
const (
	SoundEventBreakComplete = "break-complete"
	SoundEventFocusComplete = "focus-complete"
)

// EnginePhase tracks the two-phase construction of a TimerEngine
type EnginePhase int

const (
	PhaseUninitialized EnginePhase = iota
	PhaseRestoring
	PhaseReady
)

func (p EnginePhase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseRestoring:
		return "restoring"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// TimerEventType identifies what happened to the timer
type TimerEventType string

const (
	EventAlert       TimerEventType = "alert"
	EventCompleted   TimerEventType = "completed"
	EventRestored    TimerEventType = "restored"
	EventStateChange TimerEventType = "state_change"
	EventTick        TimerEventType = "tick"
)

// TimerEvent is delivered to subscribers after every change
type TimerEvent struct {
	At       time.Time
	Message  string
	Session  *domain.Session // set when a focus interval completed
	Snapshot domain.TimerSnapshot
	Type     TimerEventType
}

// TimerEngine owns the focus/break countdown and mirrors every change to TimerPersistence.
// All state is guarded by mu; collaborators are called after mu is released.
type TimerEngine struct {
	alerter       ports.Alerter
	clock         ports.Clock
	notifications *NotificationService
	persistence   *TimerPersistence
	recorder      ports.SessionRecorder

	mu           sync.Mutex
	ctx          context.Context
	identity     string
	phase        EnginePhase
	restoredFrom time.Time
	settings     domain.TimerSettings
	state        domain.TimerSnapshot
	wasRestored  bool

	tickGen  uint64
	tickStop chan struct{}

	autoGen   uint64
	autoStart ports.Timer

	subMu       sync.Mutex
	subscribers []chan TimerEvent
}

// NewTimerEngine creates an engine in PhaseUninitialized; call Restore before using it.
// recorder, notifications and alerter may be nil.
func NewTimerEngine(
	persistence *TimerPersistence,
	recorder ports.SessionRecorder,
	notifications *NotificationService,
	alerter ports.Alerter,
	clock ports.Clock,
	settings domain.TimerSettings,
) *TimerEngine {
	settings = settings.Normalize()
	return &TimerEngine{
		alerter:       alerter,
		clock:         clock,
		ctx:           context.Background(),
		notifications: notifications,
		persistence:   persistence,
		recorder:      recorder,
		settings:      settings,
		state:         domain.NewTimerSnapshot(settings),
	}
}

// effects collects the work to do once mu is released
type effects struct {
	actions []func()
	events  []TimerEvent
}

func (fx *effects) emit(ev TimerEvent) {
	fx.events = append(fx.events, ev)
}

func (fx *effects) do(action func()) {
	fx.actions = append(fx.actions, action)
}

// unlock releases mu and then runs the collected effects
func (e *TimerEngine) unlock(fx *effects) {
	e.mu.Unlock()
	for _, action := range fx.actions {
		action()
	}
	for _, ev := range fx.events {
		e.publish(ev)
	}
}

// Subscribe registers a new observer channel. Events are dropped when the channel is full.
func (e *TimerEngine) Subscribe(buffer int) <-chan TimerEvent {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan TimerEvent, buffer)
	e.subMu.Lock()
	e.subscribers = append(e.subscribers, ch)
	e.subMu.Unlock()
	return ch
}

func (e *TimerEngine) publish(ev TimerEvent) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	for _, ch := range e.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Restore adopts the persisted snapshot, if any, and moves the engine to PhaseReady.
// A snapshot whose time ran out while nobody was watching completes immediately.
func (e *TimerEngine) Restore(ctx context.Context) error {
	e.mu.Lock()
	if e.phase != PhaseUninitialized {
		e.mu.Unlock()
		return nil
	}
	e.phase = PhaseRestoring
	if ctx != nil {
		e.ctx = ctx
	}
	logging.Logger.Debug("Restoring timer state")

	fx := &effects{}
	if e.persistence.ShouldRestore() {
		if snapshot, ok := e.persistence.Load(); ok {
			e.restoredFrom, _ = e.persistence.SavedAt()
			e.adoptLocked(snapshot)
			e.wasRestored = true
			logging.Logger.Info("Timer state restored",
				"task", snapshot.CurrentTask,
				"time_left", snapshot.TimeLeft,
				"running", snapshot.IsRunning,
				"paused", snapshot.IsPaused,
				"break", snapshot.IsBreak)
		}
	} else {
		logging.Logger.Debug("No recent timer state to restore")
	}

	e.phase = PhaseReady

	switch {
	case e.wasRestored && e.state.TimeLeft == 0:
		logging.Logger.Info("Interval ended while the timer was not observed, completing now")
		e.completeLocked(fx)
	case e.state.IsRunning:
		e.startTickerLocked()
		e.persistLocked()
	default:
		e.persistLocked()
	}

	if e.wasRestored {
		fx.emit(e.eventLocked(EventRestored))
	}
	e.unlock(fx)
	return nil
}

func (e *TimerEngine) adoptLocked(snapshot domain.TimerSnapshot) {
	if snapshot.InitialTime <= 0 {
		snapshot.InitialTime = e.settings.FocusSeconds()
	}
	if snapshot.IsRunning && snapshot.IsPaused {
		snapshot.IsRunning = false
	}
	// An idle focus interval follows the focus duration configured since it was saved.
	// TimeLeft 0 is an interval that ran out and still has to complete.
	if focus := e.settings.FocusSeconds(); snapshot.IsIdle() && !snapshot.IsBreak &&
		snapshot.TimeLeft > 0 && snapshot.InitialTime != focus {
		logging.Logger.Info("Applying configured focus duration to restored timer",
			"previous_seconds", snapshot.InitialTime,
			"seconds", focus)
		snapshot.TimeLeft = focus
		snapshot.InitialTime = focus
	}
	e.state = snapshot
}

// Phase returns the construction phase
func (e *TimerEngine) Phase() EnginePhase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Snapshot returns a copy of the current state
func (e *TimerEngine) Snapshot() domain.TimerSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Settings returns the active timer settings
func (e *TimerEngine) Settings() domain.TimerSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// WasRestored reports whether state came from a persisted snapshot and the user has not dismissed it
func (e *TimerEngine) WasRestored() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wasRestored
}

// RestoredFrom returns when the restored snapshot had been saved; zero if nothing was restored
func (e *TimerEngine) RestoredFrom() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restoredFrom
}

// DismissRestoreNotification clears the WasRestored flag
func (e *TimerEngine) DismissRestoreNotification() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.wasRestored = false
}

func (e *TimerEngine) readyLocked() error {
	if e.phase != PhaseReady {
		return domain.ErrEngineNotReady
	}
	return nil
}

// SetCurrentTask sets the task label
func (e *TimerEngine) SetCurrentTask(task string) error {
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.state.CurrentTask = task
	e.persistLocked()
	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	e.unlock(fx)
	return nil
}

// SetTaskCategory sets the task category
func (e *TimerEngine) SetTaskCategory(category domain.Category) error {
	if !category.IsValid() {
		return domain.ErrInvalidCategory
	}
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.state.TaskCategory = category
	e.persistLocked()
	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	e.unlock(fx)
	return nil
}

// Start begins counting down. A focus interval needs a non-blank task.
func (e *TimerEngine) Start() error {
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	fx := &effects{}
	if err := e.startLocked(fx); err != nil {
		e.unlock(fx)
		return err
	}
	e.cancelAutoStartLocked()
	e.unlock(fx)
	return nil
}

func (e *TimerEngine) startLocked(fx *effects) error {
	if e.state.IsRunning {
		return nil
	}
	if !e.state.IsBreak && strings.TrimSpace(e.state.CurrentTask) == "" {
		logging.Logger.Debug("Start rejected, no task set")
		ev := e.eventLocked(EventAlert)
		ev.Message = TaskRequiredMessage
		fx.emit(ev)
		if e.alerter != nil {
			alerter := e.alerter
			fx.do(func() { alerter.Alert(TaskRequiredMessage) })
		}
		return domain.ErrTaskRequired
	}

	if e.state.TimeLeft <= 0 {
		e.state.TimeLeft = e.state.InitialTime
	}
	e.state.IsRunning = true
	e.state.IsPaused = false
	e.startTickerLocked()
	e.persistLocked()
	fx.emit(e.eventLocked(EventStateChange))

	logging.Logger.Info("Timer started",
		"task", e.state.CurrentTask,
		"break", e.state.IsBreak,
		"time_left", e.state.TimeLeft)
	return nil
}

// Pause freezes the countdown; only valid while running
func (e *TimerEngine) Pause() error {
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	if !e.state.IsRunning {
		e.mu.Unlock()
		return domain.ErrNotRunning
	}
	e.cancelAutoStartLocked()
	e.stopTickerLocked()
	e.state.IsRunning = false
	e.state.IsPaused = true
	e.persistLocked()
	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	logging.Logger.Info("Timer paused", "time_left", e.state.TimeLeft)
	e.unlock(fx)
	return nil
}

// Resume continues a paused countdown
func (e *TimerEngine) Resume() error {
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	if !e.state.IsPaused {
		e.mu.Unlock()
		return domain.ErrNotPaused
	}
	e.cancelAutoStartLocked()
	e.state.IsRunning = true
	e.state.IsPaused = false
	e.startTickerLocked()
	e.persistLocked()
	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	logging.Logger.Info("Timer resumed", "time_left", e.state.TimeLeft)
	e.unlock(fx)
	return nil
}

// Stop halts the countdown and rewinds it. Stopping a break returns to a full focus interval.
func (e *TimerEngine) Stop() error {
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.cancelAutoStartLocked()
	e.stopTickerLocked()
	e.state.IsRunning = false
	e.state.IsPaused = false
	if e.state.IsBreak {
		e.state.IsBreak = false
		e.state.InitialTime = e.settings.FocusSeconds()
	}
	e.state.TimeLeft = e.state.InitialTime
	e.persistLocked()
	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	logging.Logger.Info("Timer stopped", "time_left", e.state.TimeLeft)
	e.unlock(fx)
	return nil
}

// Reset stops the timer, returns to a full focus interval and erases the persisted snapshot
func (e *TimerEngine) Reset() error {
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.cancelAutoStartLocked()
	e.stopTickerLocked()
	focus := e.settings.FocusSeconds()
	e.state.IsRunning = false
	e.state.IsPaused = false
	e.state.IsBreak = false
	e.state.TimeLeft = focus
	e.state.InitialTime = focus
	e.persistence.Clear()
	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	logging.Logger.Info("Timer reset")
	e.unlock(fx)
	return nil
}

// UpdateSettings replaces the timer settings. A new focus duration applies at once only while idle on focus.
func (e *TimerEngine) UpdateSettings(settings domain.TimerSettings) {
	settings = settings.Normalize()
	e.mu.Lock()
	previous := e.settings
	e.settings = settings

	if e.phase != PhaseReady {
		if settings.FocusDuration != previous.FocusDuration {
			e.state = domain.NewTimerSnapshot(settings)
		}
		e.mu.Unlock()
		return
	}

	fx := &effects{}
	if settings.FocusDuration != previous.FocusDuration && e.state.IsIdle() && !e.state.IsBreak {
		focus := settings.FocusSeconds()
		e.state.TimeLeft = focus
		e.state.InitialTime = focus
		e.persistLocked()
		fx.emit(e.eventLocked(EventStateChange))
		logging.Logger.Info("Focus duration updated", "minutes", settings.FocusDuration)
	}
	e.unlock(fx)
}

// SetIdentity tells the engine who is using it. Switching to an identity that does not own
// the persisted snapshot discards that snapshot and hard-resets the timer. "" means anonymous.
func (e *TimerEngine) SetIdentity(identity string) error {
	identity = strings.TrimSpace(identity)
	e.mu.Lock()
	if err := e.readyLocked(); err != nil {
		e.mu.Unlock()
		return err
	}

	previous := e.identity
	e.identity = identity
	if identity == "" || identity == previous {
		e.mu.Unlock()
		return nil
	}

	owner := e.persistence.Owner()
	if owner == identity {
		e.mu.Unlock()
		return nil
	}

	logging.Logger.Info("New identity, discarding timer state",
		"identity", identity,
		"previous_owner", owner)

	e.cancelAutoStartLocked()
	e.stopTickerLocked()
	e.persistence.Clear()
	e.persistence.SetOwner(identity)
	e.state = domain.NewTimerSnapshot(e.settings)
	e.wasRestored = false

	fx := &effects{}
	fx.emit(e.eventLocked(EventStateChange))
	e.unlock(fx)
	return nil
}

// Identity returns the identity last passed to SetIdentity
func (e *TimerEngine) Identity() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.identity
}

// Close stops the tick loop and any pending auto-start. The persisted snapshot is kept.
func (e *TimerEngine) Close() {
	e.mu.Lock()
	e.cancelAutoStartLocked()
	e.stopTickerLocked()
	e.mu.Unlock()

	e.subMu.Lock()
	subscribers := e.subscribers
	e.subscribers = nil
	e.subMu.Unlock()
	for _, ch := range subscribers {
		close(ch)
	}
}

// startTickerLocked replaces any live tick loop with a new one
func (e *TimerEngine) startTickerLocked() {
	e.stopTickerLocked()
	stop := make(chan struct{})
	e.tickStop = stop
	gen := e.tickGen
	ticker := e.clock.NewTicker(TickInterval)
	go e.runTicker(gen, ticker, stop)
}

// stopTickerLocked ends the live tick loop; ticks already in flight are discarded by generation
func (e *TimerEngine) stopTickerLocked() {
	e.tickGen++
	if e.tickStop != nil {
		close(e.tickStop)
		e.tickStop = nil
	}
}

func (e *TimerEngine) runTicker(gen uint64, ticker ports.Ticker, stop <-chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !e.tick(gen) {
				return
			}
		}
	}
}

// tick advances the countdown by one second; returns false when the loop should exit
func (e *TimerEngine) tick(gen uint64) bool {
	e.mu.Lock()
	if gen != e.tickGen || !e.state.IsRunning {
		e.mu.Unlock()
		return false
	}

	fx := &effects{}
	if e.state.TimeLeft > 0 {
		e.state.TimeLeft--
	}
	fx.emit(e.eventLocked(EventTick))

	if e.state.TimeLeft == 0 {
		e.completeLocked(fx)
		e.unlock(fx)
		return false
	}

	e.persistLocked()
	e.unlock(fx)
	return true
}

// completeLocked ends the current interval and moves to the next one
func (e *TimerEngine) completeLocked(fx *effects) {
	e.cancelAutoStartLocked()
	e.stopTickerLocked()
	e.state.IsRunning = false
	e.state.IsPaused = false

	now := e.clock.Now()
	settings := e.settings
	var (
		title, body string
		soundEvent  string
		session     *domain.Session
		autoStart   bool
	)

	if !e.state.IsBreak {
		s := domain.NewSession(uuid.New().String(), e.state.CurrentTask, e.state.TaskCategory, settings.FocusDuration, now)
		session = &s
		e.state.SessionCount++
		long := settings.IsLongBreakDue(e.state.SessionCount)
		e.state.IsBreak = true
		e.state.TimeLeft = settings.BreakSeconds(long)
		e.state.InitialTime = e.state.TimeLeft

		kind := "short"
		if long {
			kind = "long"
		}
		title = "Focus session complete! 🎉"
		body = "Great job! Time for a " + kind + " break."
		soundEvent = SoundEventFocusComplete
		autoStart = settings.AutoStartBreaks

		logging.Logger.Info("Focus interval completed",
			"task", s.Task,
			"session_count", e.state.SessionCount,
			"break", kind)
	} else {
		e.state.IsBreak = false
		e.state.TimeLeft = settings.FocusSeconds()
		e.state.InitialTime = e.state.TimeLeft
		title = "Break time over! 💪"
		body = "Ready to start your next focus session?"
		soundEvent = SoundEventBreakComplete
		autoStart = settings.AutoStartSessions

		logging.Logger.Info("Break completed")
	}

	e.persistLocked()

	if session != nil && e.recorder != nil {
		recorder, ctx, s := e.recorder, e.ctx, *session
		fx.do(func() {
			recordCtx, cancel := context.WithTimeout(ctx, recordTimeout)
			defer cancel()
			if err := recorder.Record(recordCtx, s); err != nil {
				logging.Logger.Error("Failed to record session", "error", err, "session_id", s.ID)
			}
		})
	}
	if e.notifications != nil {
		notifications := e.notifications
		fx.do(func() { notifications.Notify(title, body) })
		if settings.SoundEnabled {
			fx.do(func() { notifications.PlaySoundForEvent(soundEvent) })
		}
	}

	ev := e.eventLocked(EventCompleted)
	ev.Message = title
	ev.Session = session
	fx.emit(ev)

	if autoStart {
		e.scheduleAutoStartLocked()
	}
}

func (e *TimerEngine) scheduleAutoStartLocked() {
	e.cancelAutoStartLocked()
	gen := e.autoGen
	e.autoStart = e.clock.AfterFunc(AutoStartDelay, func() { e.runAutoStart(gen) })
	logging.Logger.Debug("Auto-start scheduled", "delay", AutoStartDelay)
}

func (e *TimerEngine) cancelAutoStartLocked() {
	e.autoGen++
	if e.autoStart != nil {
		e.autoStart.Stop()
		e.autoStart = nil
		logging.Logger.Debug("Pending auto-start cancelled")
	}
}

func (e *TimerEngine) runAutoStart(gen uint64) {
	e.mu.Lock()
	if gen != e.autoGen || e.autoStart == nil || e.phase != PhaseReady {
		e.mu.Unlock()
		return
	}
	e.autoStart = nil
	fx := &effects{}
	if err := e.startLocked(fx); err != nil {
		logging.Logger.Warn("Auto-start failed", "error", err)
	}
	e.unlock(fx)
}

func (e *TimerEngine) persistLocked() {
	e.persistence.Save(e.state)
}

func (e *TimerEngine) eventLocked(eventType TimerEventType) TimerEvent {
	return TimerEvent{
		At:       e.clock.Now(),
		Snapshot: e.state,
		Type:     eventType,
	}
}
