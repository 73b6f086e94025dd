// Package harness provides utilities for integration testing the tempo CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TEMPO_HOME: Isolated per test (temp directory)
//   - TEMPO_DEBUG: Disabled to reduce noise
//   - TEMPO_USER: Cleared unless a test sets it
package harness
