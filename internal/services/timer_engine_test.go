package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tempo/internal/adapters/clock"
	"tempo/internal/adapters/slot"
	"tempo/internal/domain"
	"tempo/internal/ports"
	"tempo/internal/ports/mocks"
)

// engineHarness wires a TimerEngine to an in-memory slot and a manual clock
type engineHarness struct {
	clock       *clock.Manual
	engine      *TimerEngine
	events      <-chan TimerEvent
	persistence *TimerPersistence
	slot        *slot.Memory
}

type harnessOptions struct {
	alerter       ports.Alerter
	notifications *NotificationService
	recorder      ports.SessionRecorder
	settings      domain.TimerSettings
}

func newEngineHarness(t *testing.T, opts harnessOptions) *engineHarness {
	t.Helper()
	if opts.settings == (domain.TimerSettings{}) {
		opts.settings = domain.DefaultTimerSettings()
	}
	s := slot.NewMemory()
	c := clock.NewManual(testEpoch)
	p := NewTimerPersistence(s, c)
	e := NewTimerEngine(p, opts.recorder, opts.notifications, opts.alerter, c, opts.settings)
	t.Cleanup(e.Close)
	return &engineHarness{
		clock:       c,
		engine:      e,
		events:      e.Subscribe(1024),
		persistence: p,
		slot:        s,
	}
}

func (h *engineHarness) restore(t *testing.T) {
	t.Helper()
	require.NoError(t, h.engine.Restore(context.Background()))
}

// waitFor consumes events until one of the wanted type arrives
func (h *engineHarness) waitFor(t *testing.T, want TimerEventType) TimerEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-h.events:
			require.True(t, ok, "event channel closed while waiting for %s", want)
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", want)
		}
	}
}

// tick delivers n ticks and waits until the engine has processed each one
func (h *engineHarness) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.True(t, h.clock.Tick(), "ticker stopped after %d ticks", i)
		h.waitFor(t, EventTick)
	}
}

// stored returns the persisted snapshot without reconciling elapsed time
func (h *engineHarness) stored(t *testing.T) domain.TimerSnapshot {
	t.Helper()
	snapshot, ok := h.persistence.Load()
	require.True(t, ok, "nothing persisted")
	return snapshot
}

func oneMinuteSettings() domain.TimerSettings {
	return domain.TimerSettings{
		FocusDuration:      1,
		LongBreakDuration:  2,
		LongBreakInterval:  2,
		ShortBreakDuration: 1,
	}
}

func TestTimerEngine_OperationsRequireRestore(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	e := h.engine

	assert.Equal(t, PhaseUninitialized, e.Phase())
	assert.ErrorIs(t, e.Start(), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.Pause(), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.Resume(), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.Stop(), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.Reset(), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.SetCurrentTask("x"), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.SetTaskCategory(domain.CategoryHealth), domain.ErrEngineNotReady)
	assert.ErrorIs(t, e.SetIdentity("alice"), domain.ErrEngineNotReady)

	_, err := h.slot.Get(TimerStateKey)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty, "nothing is written before restoration")
}

func TestTimerEngine_RestoreWithNothingStored(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})

	h.restore(t)

	assert.Equal(t, PhaseReady, h.engine.Phase())
	assert.False(t, h.engine.WasRestored())
	assert.True(t, h.engine.RestoredFrom().IsZero())
	want := domain.NewTimerSnapshot(domain.DefaultTimerSettings())
	assert.Equal(t, want, h.engine.Snapshot())
	assert.Equal(t, want, h.stored(t))
}

func TestTimerEngine_RestoreTwiceIsNoop(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("keep me"))

	h.restore(t)

	assert.Equal(t, "keep me", h.engine.Snapshot().CurrentTask)
}

func TestTimerEngine_RestoreRunningContinuesCountdown(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.persistence.Save(domain.TimerSnapshot{
		CurrentTask:  "Deep work",
		InitialTime:  1500,
		IsRunning:    true,
		SessionCount: 1,
		TaskCategory: domain.CategoryLearning,
		TimeLeft:     600,
	})
	h.clock.Set(testEpoch.Add(100 * time.Second))

	h.restore(t)

	ev := h.waitFor(t, EventRestored)
	assert.Equal(t, 500, ev.Snapshot.TimeLeft)
	assert.True(t, h.engine.WasRestored())
	assert.True(t, testEpoch.Equal(h.engine.RestoredFrom()))

	snapshot := h.engine.Snapshot()
	assert.Equal(t, "Deep work", snapshot.CurrentTask)
	assert.Equal(t, domain.CategoryLearning, snapshot.TaskCategory)
	assert.True(t, snapshot.IsRunning)
	assert.Equal(t, 1, snapshot.SessionCount)

	h.tick(t, 1)
	assert.Equal(t, 499, h.engine.Snapshot().TimeLeft)

	h.engine.DismissRestoreNotification()
	assert.False(t, h.engine.WasRestored())
}

func TestTimerEngine_RestorePausedIsUnchanged(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.persistence.Save(domain.TimerSnapshot{
		CurrentTask:  "Essay",
		InitialTime:  1500,
		IsPaused:     true,
		TaskCategory: domain.CategoryWork,
		TimeLeft:     700,
	})
	h.clock.Set(testEpoch.Add(3 * time.Hour))

	h.restore(t)

	snapshot := h.engine.Snapshot()
	assert.Equal(t, 700, snapshot.TimeLeft)
	assert.True(t, snapshot.IsPaused)
	assert.False(t, snapshot.IsRunning)
}

func TestTimerEngine_RestoreStaleSnapshotStartsFresh(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.persistence.Save(domain.TimerSnapshot{
		CurrentTask:  "Yesterday",
		InitialTime:  1500,
		IsPaused:     true,
		SessionCount: 5,
		TaskCategory: domain.CategoryWork,
		TimeLeft:     100,
	})
	h.clock.Set(testEpoch.Add(25 * time.Hour))

	h.restore(t)

	assert.False(t, h.engine.WasRestored())
	assert.Equal(t, domain.NewTimerSnapshot(domain.DefaultTimerSettings()), h.engine.Snapshot())
	assert.True(t, h.persistence.ShouldRestore(), "fresh snapshot replaces the stale one")
}

func TestTimerEngine_RestoreExpiredIntervalCompletes(t *testing.T) {
	recorder := mocks.NewMockSessionRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.Task == "Overnight" && s.Duration == 25 && s.ID != ""
	})).Return(nil).Once()

	h := newEngineHarness(t, harnessOptions{recorder: recorder})
	h.persistence.Save(domain.TimerSnapshot{
		CurrentTask:  "Overnight",
		InitialTime:  1500,
		IsRunning:    true,
		TaskCategory: domain.CategoryWork,
		TimeLeft:     60,
	})
	h.clock.Set(testEpoch.Add(10 * time.Minute))

	h.restore(t)

	ev := h.waitFor(t, EventCompleted)
	require.NotNil(t, ev.Session)
	h.waitFor(t, EventRestored)

	snapshot := h.engine.Snapshot()
	assert.True(t, snapshot.IsBreak)
	assert.False(t, snapshot.IsRunning)
	assert.Equal(t, 1, snapshot.SessionCount)
	assert.Equal(t, domain.DefaultShortBreakDuration*60, snapshot.TimeLeft)
	assert.Equal(t, snapshot, h.stored(t))
}

func TestTimerEngine_StartRequiresTask(t *testing.T) {
	alerter := mocks.NewMockAlerter(t)
	alerter.EXPECT().Alert(TaskRequiredMessage).Return().Twice()

	h := newEngineHarness(t, harnessOptions{alerter: alerter})
	h.restore(t)
	before := h.engine.Snapshot()

	assert.ErrorIs(t, h.engine.Start(), domain.ErrTaskRequired)
	ev := h.waitFor(t, EventAlert)
	assert.Equal(t, TaskRequiredMessage, ev.Message)

	require.NoError(t, h.engine.SetCurrentTask("   "))
	assert.ErrorIs(t, h.engine.Start(), domain.ErrTaskRequired)

	after := h.engine.Snapshot()
	assert.False(t, after.IsRunning)
	assert.Equal(t, before.TimeLeft, after.TimeLeft)
}

func TestTimerEngine_StartPauseResumeStop(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.restore(t)
	e := h.engine

	require.NoError(t, e.SetCurrentTask("Write tests"))
	require.NoError(t, e.SetTaskCategory(domain.CategoryCreative))
	require.NoError(t, e.Start())
	assert.True(t, e.Snapshot().IsRunning)
	assert.Equal(t, e.Snapshot(), h.stored(t))

	require.NoError(t, e.Start(), "starting a running timer is a no-op")

	h.tick(t, 3)
	assert.Equal(t, 1497, e.Snapshot().TimeLeft)
	assert.Equal(t, 1497, h.stored(t).TimeLeft)

	require.NoError(t, e.Pause())
	paused := e.Snapshot()
	assert.True(t, paused.IsPaused)
	assert.False(t, paused.IsRunning)
	assert.Equal(t, paused, h.stored(t))
	assert.ErrorIs(t, e.Pause(), domain.ErrNotRunning)

	require.NoError(t, e.Resume())
	assert.True(t, e.Snapshot().IsRunning)
	assert.False(t, e.Snapshot().IsPaused)
	assert.ErrorIs(t, e.Resume(), domain.ErrNotPaused)

	h.tick(t, 1)
	assert.Equal(t, 1496, e.Snapshot().TimeLeft)

	require.NoError(t, e.Stop())
	stopped := e.Snapshot()
	assert.True(t, stopped.IsIdle())
	assert.Equal(t, 1500, stopped.TimeLeft)
	assert.Equal(t, "Write tests", stopped.CurrentTask)
	assert.Equal(t, stopped, h.stored(t))
}

func TestTimerEngine_PausedTimerIgnoresTicks(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("Read"))
	require.NoError(t, h.engine.Start())
	h.tick(t, 2)
	require.NoError(t, h.engine.Pause())

	h.clock.Tick()

	assert.Equal(t, 1498, h.engine.Snapshot().TimeLeft)
}

func TestTimerEngine_SetTaskCategoryRejectsUnknown(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.restore(t)

	assert.ErrorIs(t, h.engine.SetTaskCategory("gaming"), domain.ErrInvalidCategory)
	assert.Equal(t, domain.CategoryWork, h.engine.Snapshot().TaskCategory)
}

func TestTimerEngine_CompletionCycle(t *testing.T) {
	recorder := mocks.NewMockSessionRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Twice()

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify("Focus session complete! 🎉", "Great job! Time for a short break.").Return(nil).Once()
	notifier.EXPECT().Notify("Break time over! 💪", "Ready to start your next focus session?").Return(nil).Once()
	notifier.EXPECT().Notify("Focus session complete! 🎉", "Great job! Time for a long break.").Return(nil).Once()

	player := mocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySoundForEvent(SoundEventFocusComplete).Return(nil).Twice()
	player.EXPECT().PlaySoundForEvent(SoundEventBreakComplete).Return(nil).Once()

	settings := oneMinuteSettings()
	settings.SoundEnabled = true
	h := newEngineHarness(t, harnessOptions{
		notifications: NewNotificationService(notifier, player, true),
		recorder:      recorder,
		settings:      settings,
	})
	h.restore(t)
	e := h.engine

	require.NoError(t, e.SetCurrentTask("Plan sprint"))
	require.NoError(t, e.SetTaskCategory(domain.CategoryPersonal))
	require.NoError(t, e.Start())
	h.tick(t, 60)

	ev := h.waitFor(t, EventCompleted)
	require.NotNil(t, ev.Session)
	assert.Equal(t, "Plan sprint", ev.Session.Task)
	assert.Equal(t, domain.CategoryPersonal, ev.Session.Category)
	assert.Equal(t, 1, ev.Session.Duration)
	assert.Equal(t, testEpoch.Format(domain.SessionDateLayout), ev.Session.Date)

	snapshot := e.Snapshot()
	assert.True(t, snapshot.IsBreak)
	assert.True(t, snapshot.IsIdle())
	assert.Equal(t, 1, snapshot.SessionCount)
	assert.Equal(t, 60, snapshot.TimeLeft)
	assert.Equal(t, snapshot, h.stored(t))

	require.NoError(t, e.Start())
	h.tick(t, 60)
	ev = h.waitFor(t, EventCompleted)
	assert.Nil(t, ev.Session, "breaks are not recorded")
	assert.False(t, e.Snapshot().IsBreak)
	assert.Equal(t, 60, e.Snapshot().TimeLeft)

	require.NoError(t, e.Start())
	h.tick(t, 60)
	h.waitFor(t, EventCompleted)
	snapshot = e.Snapshot()
	assert.Equal(t, 2, snapshot.SessionCount)
	assert.True(t, snapshot.IsBreak)
	assert.Equal(t, 120, snapshot.TimeLeft, "every second session earns a long break")
}

func TestTimerEngine_SoundDisabledStillNotifies(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
	player := mocks.NewMockSoundPlayer(t)

	h := newEngineHarness(t, harnessOptions{
		notifications: NewNotificationService(notifier, player, true),
		settings:      oneMinuteSettings(),
	})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("Quiet"))
	require.NoError(t, h.engine.Start())

	h.tick(t, 60)
	h.waitFor(t, EventCompleted)
}

func TestTimerEngine_AutoStartBreak(t *testing.T) {
	settings := oneMinuteSettings()
	settings.AutoStartBreaks = true
	h := newEngineHarness(t, harnessOptions{settings: settings})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("Focus"))
	require.NoError(t, h.engine.Start())
	h.tick(t, 60)
	h.waitFor(t, EventCompleted)

	assert.Equal(t, 1, h.clock.PendingTimers())
	assert.False(t, h.engine.Snapshot().IsRunning)

	h.clock.Advance(AutoStartDelay)

	snapshot := h.engine.Snapshot()
	assert.True(t, snapshot.IsBreak)
	assert.True(t, snapshot.IsRunning)
	h.tick(t, 1)
	assert.Equal(t, 59, h.engine.Snapshot().TimeLeft)
}

func TestTimerEngine_AutoStartCancelledByUserAction(t *testing.T) {
	tests := []struct {
		name   string
		action func(e *TimerEngine) error
	}{
		{"stop", (*TimerEngine).Stop},
		{"reset", (*TimerEngine).Reset},
		{"manual start", (*TimerEngine).Start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := oneMinuteSettings()
			settings.AutoStartBreaks = true
			h := newEngineHarness(t, harnessOptions{settings: settings})
			h.restore(t)
			require.NoError(t, h.engine.SetCurrentTask("Focus"))
			require.NoError(t, h.engine.Start())
			h.tick(t, 60)
			h.waitFor(t, EventCompleted)

			require.NoError(t, tt.action(h.engine))
			before := h.engine.Snapshot()
			h.clock.Advance(AutoStartDelay)

			assert.Equal(t, 0, h.clock.PendingTimers())
			assert.Equal(t, before, h.engine.Snapshot(), "pending auto-start must not fire")
		})
	}
}

func TestTimerEngine_StopDuringBreakReturnsToFocus(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{settings: oneMinuteSettings()})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("Focus"))
	require.NoError(t, h.engine.Start())
	h.tick(t, 60)
	h.waitFor(t, EventCompleted)
	require.NoError(t, h.engine.Start())
	h.tick(t, 10)

	require.NoError(t, h.engine.Stop())

	snapshot := h.engine.Snapshot()
	assert.False(t, snapshot.IsBreak)
	assert.True(t, snapshot.IsIdle())
	assert.Equal(t, 60, snapshot.TimeLeft)
	assert.Equal(t, 60, snapshot.InitialTime)
	assert.Equal(t, 1, snapshot.SessionCount)
}

func TestTimerEngine_ResetErasesSnapshot(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("Inbox zero"))
	require.NoError(t, h.engine.Start())
	h.tick(t, 5)

	require.NoError(t, h.engine.Reset())

	snapshot := h.engine.Snapshot()
	assert.True(t, snapshot.IsIdle())
	assert.Equal(t, 1500, snapshot.TimeLeft)
	assert.Equal(t, "Inbox zero", snapshot.CurrentTask)
	_, err := h.slot.Get(TimerStateKey)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestTimerEngine_UpdateSettings(t *testing.T) {
	t.Run("idle focus picks up new duration", func(t *testing.T) {
		h := newEngineHarness(t, harnessOptions{})
		h.restore(t)

		settings := domain.DefaultTimerSettings()
		settings.FocusDuration = 50
		h.engine.UpdateSettings(settings)

		assert.Equal(t, 3000, h.engine.Snapshot().TimeLeft)
		assert.Equal(t, 3000, h.stored(t).TimeLeft)
		assert.Equal(t, 50, h.engine.Settings().FocusDuration)
	})

	t.Run("running interval is not disturbed", func(t *testing.T) {
		h := newEngineHarness(t, harnessOptions{})
		h.restore(t)
		require.NoError(t, h.engine.SetCurrentTask("Busy"))
		require.NoError(t, h.engine.Start())
		h.tick(t, 1)

		settings := domain.DefaultTimerSettings()
		settings.FocusDuration = 10
		h.engine.UpdateSettings(settings)

		assert.Equal(t, 1499, h.engine.Snapshot().TimeLeft)
		assert.Equal(t, 1500, h.engine.Snapshot().InitialTime)
	})

	t.Run("before restoration rebuilds the initial snapshot", func(t *testing.T) {
		h := newEngineHarness(t, harnessOptions{})

		settings := domain.DefaultTimerSettings()
		settings.FocusDuration = 45
		h.engine.UpdateSettings(settings)

		assert.Equal(t, 2700, h.engine.Snapshot().TimeLeft)
		_, err := h.slot.Get(TimerStateKey)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})
}

func TestTimerEngine_RestoreAppliesConfiguredFocusDuration(t *testing.T) {
	fifty := domain.DefaultTimerSettings()
	fifty.FocusDuration = 50

	tests := []struct {
		name         string
		saved        domain.TimerSnapshot
		wantTimeLeft int
		wantInitial  int
	}{
		{
			name: "idle focus takes the new duration",
			saved: domain.TimerSnapshot{
				CurrentTask: "Plan week", InitialTime: 1500, TaskCategory: domain.CategoryWork, TimeLeft: 1500,
			},
			wantTimeLeft: 3000,
			wantInitial:  3000,
		},
		{
			name: "paused focus keeps its interval",
			saved: domain.TimerSnapshot{
				CurrentTask: "Plan week", InitialTime: 1500, IsPaused: true, TaskCategory: domain.CategoryWork, TimeLeft: 700,
			},
			wantTimeLeft: 700,
			wantInitial:  1500,
		},
		{
			name: "idle break keeps its interval",
			saved: domain.TimerSnapshot{
				InitialTime: 300, IsBreak: true, SessionCount: 1, TaskCategory: domain.CategoryWork, TimeLeft: 300,
			},
			wantTimeLeft: 300,
			wantInitial:  300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newEngineHarness(t, harnessOptions{})
			h.persistence.Save(tt.saved)

			e := NewTimerEngine(h.persistence, nil, nil, nil, h.clock, fifty)
			t.Cleanup(e.Close)
			require.NoError(t, e.Restore(context.Background()))

			snapshot := e.Snapshot()
			assert.Equal(t, tt.wantTimeLeft, snapshot.TimeLeft)
			assert.Equal(t, tt.wantInitial, snapshot.InitialTime)
			assert.Equal(t, tt.saved.CurrentTask, snapshot.CurrentTask)
			assert.True(t, e.WasRestored())
			assert.Equal(t, snapshot, h.stored(t))
		})
	}
}

func TestTimerEngine_DefaultFocusSessionEndsInShortBreak(t *testing.T) {
	recorder := mocks.NewMockSessionRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.Task == "Write report" && s.Duration == 25
	})).Return(nil).Once()

	h := newEngineHarness(t, harnessOptions{recorder: recorder})
	h.restore(t)
	require.NoError(t, h.engine.SetCurrentTask("Write report"))
	require.NoError(t, h.engine.Start())

	h.tick(t, 1500)
	ev := h.waitFor(t, EventCompleted)

	require.NotNil(t, ev.Session)
	assert.Equal(t, 25, ev.Session.Duration)
	snapshot := h.engine.Snapshot()
	assert.True(t, snapshot.IsBreak)
	assert.Equal(t, 300, snapshot.TimeLeft)
	assert.Equal(t, 1, snapshot.SessionCount)
	assert.False(t, snapshot.IsRunning)
}

func TestTimerEngine_SetIdentity(t *testing.T) {
	seed := func(h *engineHarness, owner string) {
		h.persistence.Save(domain.TimerSnapshot{
			CurrentTask:  "Shared laptop",
			InitialTime:  1500,
			IsPaused:     true,
			SessionCount: 3,
			TaskCategory: domain.CategoryWork,
			TimeLeft:     800,
		})
		h.persistence.SetOwner(owner)
	}

	t.Run("owner keeps the restored state", func(t *testing.T) {
		h := newEngineHarness(t, harnessOptions{})
		seed(h, "alice")
		h.restore(t)

		require.NoError(t, h.engine.SetIdentity("alice"))

		assert.Equal(t, 3, h.engine.Snapshot().SessionCount)
		assert.Equal(t, "alice", h.engine.Identity())
		assert.True(t, h.engine.WasRestored())
	})

	t.Run("different identity discards the state", func(t *testing.T) {
		h := newEngineHarness(t, harnessOptions{})
		seed(h, "alice")
		h.restore(t)

		require.NoError(t, h.engine.SetIdentity("bob"))

		assert.Equal(t, domain.NewTimerSnapshot(domain.DefaultTimerSettings()), h.engine.Snapshot())
		assert.False(t, h.engine.WasRestored())
		assert.Equal(t, "bob", h.persistence.Owner())
		_, err := h.slot.Get(TimerStateKey)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})

	t.Run("anonymous is a no-op", func(t *testing.T) {
		h := newEngineHarness(t, harnessOptions{})
		seed(h, "alice")
		h.restore(t)

		require.NoError(t, h.engine.SetIdentity("  "))

		assert.Equal(t, 3, h.engine.Snapshot().SessionCount)
	})
}

func TestTimerEngine_CloseEndsSubscriptions(t *testing.T) {
	h := newEngineHarness(t, harnessOptions{})
	h.restore(t)

	h.engine.Close()

	for range h.events {
	}
}
