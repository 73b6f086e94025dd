package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/config"
	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/services"
	"tempo/internal/theme"
	"tempo/version"
)

const (
	defaultWidth   = 60
	eventBuffer    = 64
	focusStep      = 5
	maxProgressLen = 50
	taskCharLimit  = 120
)

// ModelConfig holds the options of the timer screen
type ModelConfig struct {
	ErrorClearDelay time.Duration
	Identity        string
	KeysConfig      config.KeyBindingsConfig

	// SaveTimerSettings stores settings changed from the timer screen; nil keeps them in memory
	SaveTimerSettings func(domain.TimerSettings) error
}

// Model is the bubbletea model for the timer screen. It renders the engine's state and forwards keys to it.
type Model struct {
	engine       *services.TimerEngine
	errorManager *ErrorManager
	events       <-chan services.TimerEvent
	help         help.Model
	identity     string
	keys         KeyMap
	notice       string
	progress     progress.Model
	saveSettings func(domain.TimerSettings) error
	snapshot     domain.TimerSnapshot
	taskInput    textinput.Model
	editingTask  bool
	width        int
}

// NewModel builds the timer screen for an engine that has already been restored
func NewModel(engine *services.TimerEngine, cfg ModelConfig) *Model {
	input := textinput.New()
	input.Placeholder = "What are you focusing on?"
	input.CharLimit = taskCharLimit
	input.Prompt = "task › "

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxProgressLen

	return &Model{
		engine:       engine,
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		events:       engine.Subscribe(eventBuffer),
		help:         help.New(),
		identity:     cfg.Identity,
		keys:         NewKeyMap(cfg.KeysConfig),
		progress:     bar,
		saveSettings: cfg.SaveTimerSettings,
		snapshot:     engine.Snapshot(),
		taskInput:    input,
		width:        defaultWidth,
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-4, 10), maxProgressLen)
		return m, nil

	case timerEventMsg:
		return m, tea.Batch(m.handleEvent(msg.event), waitForEvent(m.events))

	case engineClosedMsg:
		logging.Logger.Debug("Timer engine closed, leaving TUI")
		return m, tea.Quit

	case clearErrorMsg:
		m.errorManager.ClearError()
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		if m.editingTask {
			return m.updateTaskInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleEvent(ev services.TimerEvent) tea.Cmd {
	m.snapshot = ev.Snapshot

	switch ev.Type {
	case services.EventAlert:
		m.errorManager.SetError(errors.New(ev.Message))
		return m.errorManager.ClearAfterDelay()
	case services.EventCompleted:
		m.notice = ev.Message
		return m.errorManager.ClearAfterDelay()
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		logging.Logger.Info("Quitting TUI")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.engine.DismissRestoreNotification()
		m.errorManager.ClearError()
		m.notice = ""

	case key.Matches(msg, m.keys.Start):
		err = m.toggle()
		if errors.Is(err, domain.ErrTaskRequired) {
			return m, m.beginTaskEdit()
		}

	case key.Matches(msg, m.keys.Stop):
		err = m.engine.Stop()

	case key.Matches(msg, m.keys.Reset):
		err = m.engine.Reset()

	case key.Matches(msg, m.keys.Longer), key.Matches(msg, m.keys.Shorter):
		delta := focusStep
		if key.Matches(msg, m.keys.Shorter) {
			delta = -focusStep
		}
		if err = m.adjustFocus(delta); err == nil {
			m.snapshot = m.engine.Snapshot()
			return m, m.errorManager.ClearAfterDelay()
		}

	case key.Matches(msg, m.keys.Task):
		return m, m.beginTaskEdit()

	case key.Matches(msg, m.keys.Category):
		err = m.engine.SetTaskCategory(m.snapshot.TaskCategory.Next())
	}

	m.snapshot = m.engine.Snapshot()
	if err != nil {
		m.errorManager.SetError(err)
		return m, m.errorManager.ClearAfterDelay()
	}
	return m, nil
}

// toggle starts, pauses or resumes depending on the current state
func (m *Model) toggle() error {
	s := m.engine.Snapshot()
	switch {
	case s.IsRunning:
		return m.engine.Pause()
	case s.IsPaused:
		return m.engine.Resume()
	default:
		return m.engine.Start()
	}
}

// adjustFocus changes the focus duration by delta minutes. The engine applies it at once
// only while idle on focus; otherwise it takes effect with the next focus interval.
func (m *Model) adjustFocus(delta int) error {
	settings := m.engine.Settings()
	focus := settings.FocusDuration + delta
	if focus < focusStep {
		focus = focusStep
	}
	if focus == settings.FocusDuration {
		return nil
	}
	settings.FocusDuration = focus

	if m.saveSettings != nil {
		if err := m.saveSettings(settings); err != nil {
			return err
		}
	}
	m.engine.UpdateSettings(settings)
	m.notice = fmt.Sprintf("Focus duration set to %d minutes", focus)
	return nil
}

func (m *Model) beginTaskEdit() tea.Cmd {
	m.editingTask = true
	m.taskInput.SetValue(m.snapshot.CurrentTask)
	m.taskInput.CursorEnd()
	return m.taskInput.Focus()
}

func (m *Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editingTask = false
		m.taskInput.Blur()
		if err := m.engine.SetCurrentTask(strings.TrimSpace(m.taskInput.Value())); err != nil {
			m.errorManager.SetError(err)
			return m, m.errorManager.ClearAfterDelay()
		}
		m.errorManager.ClearError()
		m.snapshot = m.engine.Snapshot()
		return m, nil
	case tea.KeyEsc:
		m.editingTask = false
		m.taskInput.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	s := m.snapshot
	var b strings.Builder

	title := theme.TitleStyle.Render("🍅 tempo")
	if m.identity != "" {
		title += theme.VersionStyle.Render("  " + m.identity)
	}
	b.WriteString(title + "\n")

	if m.engine.WasRestored() {
		b.WriteString(renderRestoreBanner(s, m.engine.RestoredFrom(), m.keys.Dismiss.Help().Key) + "\n\n")
	}

	if m.editingTask {
		b.WriteString(m.taskInput.View() + "\n")
	} else if strings.TrimSpace(s.CurrentTask) == "" {
		b.WriteString(theme.TaskPlaceholderStyle.Render("no task yet, press "+m.keys.Task.Help().Key+" to set one") + "\n")
	} else {
		b.WriteString(theme.TaskStyle.Render(s.CurrentTask) + "\n")
	}
	b.WriteString(theme.CategoryStyle(string(s.TaskCategory)).Render("#"+string(s.TaskCategory)) + "\n")

	clock := theme.ClockStyle.
		Foreground(theme.IntervalColor(s.IsBreak, s.IsRunning, s.IsPaused)).
		BorderForeground(theme.IntervalColor(s.IsBreak, s.IsRunning, s.IsPaused)).
		Render(domain.FormatClock(s.TimeLeft))
	b.WriteString(clock + "\n")
	b.WriteString(m.progress.ViewAs(s.Progress()) + "\n")

	status := fmt.Sprintf("%s · %s · %d sessions completed",
		strings.ToUpper(s.PhaseLabel()), s.StatusLabel(), s.SessionCount)
	b.WriteString(theme.PhaseStyle.Render(status) + "\n")

	if m.notice != "" {
		b.WriteString("\n" + theme.NormalStyle.Render(m.notice) + "\n")
	}
	if m.errorManager.HasError() {
		b.WriteString("\n" + theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)) + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n" + theme.VersionStyle.Render(version.Version))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
