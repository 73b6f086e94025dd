package integration_test

import (
	"testing"
	"time"

	"tempo/test/integration/harness"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "fresh timer",
			args: []string{"status"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "■ 25:00 focus · 0 done")
			},
		},
		{
			name: "custom focus duration",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteSettings(map[string]any{"focus_duration": 50})
			},
			args: []string{"status"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "50:00")
			},
		},
		{
			name: "paused timer shows save age",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteTimerState("", harness.TimerState{
					CurrentTask:  "Thesis",
					InitialTime:  1500,
					IsPaused:     true,
					SessionCount: 2,
					TaskCategory: "learning",
					TimeLeft:     754,
				}, time.Now().Add(-3*time.Minute))
			},
			args: []string{"status"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "⏸ 12:34 focus · Thesis #learning · 2 done")
				harness.AssertStdoutContains(t, result, "(saved 3 minutes ago)")
			},
		},
		{
			name: "json format",
			args: []string{"status", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "clock", "25:00")
				harness.AssertJSONContains(t, result, "status", "idle")
				harness.AssertJSONContains(t, result, "task_category", "work")
			},
		},
		{
			name: "invalid fields are repaired",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteTimerState("", harness.TimerState{
					CurrentTask:  "Broken",
					InitialTime:  10,
					IsPaused:     true,
					TaskCategory: "gardening",
					TimeLeft:     90,
				}, time.Now())
			},
			args: []string{"status", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "task_category", "work")
				harness.AssertJSONContains(t, result, "time_left", float64(90))
				harness.AssertJSONContains(t, result, "initial_time", float64(90))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
