package harness

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestEnvironment provides an isolated test environment with its own TEMPO_HOME.
type TestEnvironment struct {
	TempoHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp TEMPO_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		TempoHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TEMPO_* variables and points TEMPO_HOME at the temp directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TEMPO_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TEMPO_HOME="+e.TempoHome,
		"TEMPO_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TempoHome, "state.db")
}

// SlotDir returns the directory of the file slot backend.
func (e *TestEnvironment) SlotDir() string {
	return filepath.Join(e.TempoHome, "slots")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSettings writes settings.json into TEMPO_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.TempoHome, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// QuietSettings disables sound and desktop notifications so completions print nothing extra.
func (e *TestEnvironment) QuietSettings() {
	e.tb.Helper()
	e.WriteSettings(map[string]any{
		"notifications_enabled": false,
		"sound_enabled":         false,
	})
}

// TimerState is the stored form of the timer, as written by the file slot backend.
type TimerState struct {
	CurrentTask  string `json:"currentTask"`
	InitialTime  int    `json:"initialTime"`
	IsBreak      bool   `json:"isBreak"`
	IsPaused     bool   `json:"isPaused"`
	IsRunning    bool   `json:"isRunning"`
	LastSaveTime int64  `json:"lastSaveTime"`
	SessionCount int    `json:"sessionCount"`
	TaskCategory string `json:"taskCategory"`
	TimeLeft     int    `json:"timeLeft"`
}

// WriteTimerState stores state as if it had been saved at savedAt.
// namespace is the user the state belongs to, "" for the anonymous timer.
func (e *TestEnvironment) WriteTimerState(namespace string, state TimerState, savedAt time.Time) {
	e.tb.Helper()

	state.LastSaveTime = savedAt.UnixMilli()
	data, err := json.Marshal(state)
	if err != nil {
		e.tb.Fatalf("Failed to marshal timer state: %v", err)
	}

	key := "tempo-timer-state"
	if namespace != "" {
		key = namespace + "/" + key
	}

	if err := os.MkdirAll(e.SlotDir(), 0755); err != nil {
		e.tb.Fatalf("Failed to create slot directory: %v", err)
	}
	path := filepath.Join(e.SlotDir(), url.PathEscape(key)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.tb.Fatalf("Failed to write timer state: %v", err)
	}
}
