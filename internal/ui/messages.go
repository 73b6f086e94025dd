package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/services"
)

// timerEventMsg carries one engine event into the update loop
type timerEventMsg struct {
	event services.TimerEvent
}

// engineClosedMsg is sent when the engine's event channel closes
type engineClosedMsg struct{}

// waitForEvent blocks on the engine subscription and returns the next event as a message
func waitForEvent(events <-chan services.TimerEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return engineClosedMsg{}
		}
		return timerEventMsg{event: ev}
	}
}
