package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tempo/internal/config"
)

// KeyMap holds every key binding of the timer screen
type KeyMap struct {
	Category  key.Binding
	Dismiss   key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Longer    key.Binding
	Quit      key.Binding
	Reset     key.Binding
	Shorter   key.Binding
	Start     key.Binding
	Stop      key.Binding
	Task      key.Binding
}

// NewKeyMap creates a KeyMap, applying customKeys over the defaults.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Category:  buildBinding("category", defaults, customKeys),
		Dismiss:   buildBinding("dismiss", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Longer:    buildBinding("longer", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Reset:     buildBinding("reset", defaults, customKeys),
		Shorter:   buildBinding("shorter", defaults, customKeys),
		Start:     buildBinding("start", defaults, customKeys),
		Stop:      buildBinding("stop", defaults, customKeys),
		Task:      buildBinding("task", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), def.Help),
	)
}

// helpLabel renders keys for the help bar, naming the space key
func helpLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns the bindings for the bottom bar (help.KeyMap)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Task, k.Category, k.Help, k.Quit}
}

// FullHelp returns every binding grouped in columns (help.KeyMap)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Reset, k.Longer, k.Shorter},
		{k.Task, k.Category},
		{k.Dismiss, k.Help, k.Quit, k.ForceQuit},
	}
}
