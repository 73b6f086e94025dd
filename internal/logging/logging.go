package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 1000

const logExt = ".log"

// Logger is the process-wide logger. It discards everything until Initialize enables a log file.
var Logger = slog.New(slog.DiscardHandler)

// Options selects where debug logs are written
type Options struct {
	Debug    bool
	File     string // fixed log file, never rotated
	MaxFiles int    // rotated files kept in the log directory, 0 keeps all
}

// withEnv merges the settings a parent tempo process exported.
// TEMPO_MAX_LOG_FILES only applies while MaxFiles is still the default.
func (o Options) withEnv() Options {
	if os.Getenv("TEMPO_DEBUG") == "1" {
		o.Debug = true
	}
	if file := os.Getenv("TEMPO_DEBUG_FILE"); file != "" && o.File == "" {
		o.File = file
	}
	if raw := os.Getenv("TEMPO_MAX_LOG_FILES"); raw != "" && o.MaxFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(raw); err == nil {
			o.MaxFiles = parsed
		}
	}
	return o
}

// Initialize points Logger at a JSON log file and returns its path ("" when logging is off).
// One-shot commands, the TUI and SSH sessions may share a file, so every record carries the pid.
func Initialize(opts Options) (string, error) {
	opts = opts.withEnv()
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.DiscardHandler)
		return "", nil
	}

	path, err := prepareLogFile(opts)
	if err != nil {
		return "", err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})).With("pid", os.Getpid())

	// Children inherit TEMPO_DEBUG and stay quiet
	if os.Getenv("TEMPO_DEBUG") == "" {
		Logger.Info("Debug logging initialized", "log_file", path)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}

	return path, nil
}

// prepareLogFile creates the directory for the log file and prunes old rotated logs
func prepareLogFile(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	dir := logDir(runtime.GOOS, home, os.Getenv)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxFiles > 0 {
		if err := pruneLogs(dir, opts.MaxFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+logExt), nil
}

// levelFromEnv reads TEMPO_LOG_LEVEL (debug, info, warn, error), defaulting to debug
func levelFromEnv() slog.Level {
	level := slog.LevelDebug
	if raw := strings.TrimSpace(os.Getenv("TEMPO_LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring TEMPO_LOG_LEVEL %q\n", raw)
			return slog.LevelDebug
		}
	}
	return level
}

type rotatedLog struct {
	modTime time.Time
	path    string
}

// pruneLogs deletes the oldest logs in dir so that a new one still fits under keep
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []rotatedLog
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != logExt {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, rotatedLog{modTime: info.ModTime(), path: filepath.Join(dir, entry.Name())})
	}

	excess := len(logs) - keep + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b rotatedLog) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, log := range logs[:excess] {
		if err := os.Remove(log.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", log.path, err)
		}
	}
	return nil
}

// logDir returns where rotated logs live on goos
func logDir(goos, home string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "tempo")
	case "linux":
		stateHome := getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateHome, "tempo")
	case "windows":
		localAppData := getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(localAppData, "tempo", "logs")
	default:
		return filepath.Join(home, ".tempo", "logs")
	}
}
