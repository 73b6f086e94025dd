package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Group    string
	Help     string
	Name     string
}

// Key groups, in help screen order
const (
	groupTimer       = "Timer"
	groupTask        = "Task"
	groupApplication = "Application"
)

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Timer keys
	{Name: "start", Group: groupTimer, Defaults: []string{"enter", " "}, Help: "start / pause / resume"},
	{Name: "stop", Group: groupTimer, Defaults: []string{"s"}, Help: "stop and rewind"},
	{Name: "reset", Group: groupTimer, Defaults: []string{"r"}, Help: "reset to a fresh focus session"},
	{Name: "longer", Group: groupTimer, Defaults: []string{"+", "="}, Help: "lengthen focus by 5 minutes"},
	{Name: "shorter", Group: groupTimer, Defaults: []string{"-"}, Help: "shorten focus by 5 minutes"},

	// Task keys
	{Name: "task", Group: groupTask, Defaults: []string{"t"}, Help: "edit task"},
	{Name: "category", Group: groupTask, Defaults: []string{"c"}, Help: "cycle category"},

	// Application keys
	{Name: "dismiss", Group: groupApplication, Defaults: []string{"esc"}, Help: "dismiss banner"},
	{Name: "force_quit", Group: groupApplication, Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Group: groupApplication, Defaults: []string{"?", "h"}, Help: "toggle help"},
	{Name: "quit", Group: groupApplication, Defaults: []string{"q"}, Help: "quit"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	for i := range AllKeyDefinitions {
		if AllKeyDefinitions[i].Name == name {
			return &AllKeyDefinitions[i]
		}
	}
	return nil
}

// GetValidKeyNames returns the sorted list of configurable key names
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, 0, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			validKeyNames = append(validKeyNames, def.Name)
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName reports whether name is a configurable key binding
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
