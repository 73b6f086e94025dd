package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"tempo/internal/logging"
	"tempo/internal/services"
	"tempo/internal/ui"
)

const defaultErrorClearDelay = 10 * time.Second

// sessionModel wraps ui.Model to release the engine when the SSH session ends
type sessionModel struct {
	*ui.Model
	engine    *services.TimerEngine
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) close() {
	s.engine.Close()
	logging.Logger.Info("SSH session ended",
		"session_id", s.sessionID,
		"duration", time.Since(s.startTime).String())
}

// teaHandler creates a timer screen for each SSH session, bound to the SSH user's own timer
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()
	sessionID := fmt.Sprintf("%s@%s", user, sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", user,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	engine, err := s.engines(sess.Context(), user, sess)
	if err != nil {
		logging.Logger.Error("Failed to open timer for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	errorClearDelay := defaultErrorClearDelay
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	model := &sessionModel{
		Model: ui.NewModel(engine, ui.ModelConfig{
			ErrorClearDelay: errorClearDelay,
			Identity:        user,
			KeysConfig:      s.settings.Keys,
		}),
		engine:    engine,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	// Dropped connections never deliver a QuitMsg
	go func() {
		<-sess.Context().Done()
		engine.Close()
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
