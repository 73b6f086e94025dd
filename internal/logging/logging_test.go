package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLogEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TEMPO_DEBUG", "TEMPO_DEBUG_FILE", "TEMPO_MAX_LOG_FILES", "TEMPO_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestInitialize_DisabledByDefault(t *testing.T) {
	clearLogEnv(t)

	path, err := Initialize(Options{MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	require.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	clearLogEnv(t)
	t.Setenv("TEMPO_DEBUG", "1")
	debugFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{File: debugFile, MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	Logger.Info("hello", "key", "value")
	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"pid":`)
}

func TestInitialize_LevelFromEnv(t *testing.T) {
	clearLogEnv(t)
	t.Setenv("TEMPO_DEBUG", "1")
	t.Setenv("TEMPO_LOG_LEVEL", "warn")
	debugFile := filepath.Join(t.TempDir(), "debug.log")

	_, err := Initialize(Options{File: debugFile})
	require.NoError(t, err)

	Logger.Info("quiet")
	Logger.Warn("loud")

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestOptions_WithEnv(t *testing.T) {
	clearLogEnv(t)
	t.Setenv("TEMPO_DEBUG", "1")
	t.Setenv("TEMPO_DEBUG_FILE", "/tmp/parent.log")
	t.Setenv("TEMPO_MAX_LOG_FILES", "7")

	t.Run("inherits unset values", func(t *testing.T) {
		opts := Options{MaxFiles: DefaultMaxLogFiles}.withEnv()

		assert.True(t, opts.Debug)
		assert.Equal(t, "/tmp/parent.log", opts.File)
		assert.Equal(t, 7, opts.MaxFiles)
	})

	t.Run("explicit values win", func(t *testing.T) {
		opts := Options{File: "/tmp/own.log", MaxFiles: 3}.withEnv()

		assert.Equal(t, "/tmp/own.log", opts.File)
		assert.Equal(t, 3, opts.MaxFiles)
	})
}

func TestLogDir(t *testing.T) {
	noEnv := func(string) string { return "" }
	env := map[string]string{"XDG_STATE_HOME": "/state", "LOCALAPPDATA": `C:\Local`}
	withEnv := func(key string) string { return env[key] }

	tests := []struct {
		name   string
		goos   string
		getenv func(string) string
		want   string
	}{
		{"darwin", "darwin", noEnv, filepath.Join("/home/u", "Library", "Logs", "tempo")},
		{"linux default", "linux", noEnv, filepath.Join("/home/u", ".local", "state", "tempo")},
		{"linux xdg", "linux", withEnv, filepath.Join("/state", "tempo")},
		{"windows", "windows", withEnv, filepath.Join(`C:\Local`, "tempo", "logs")},
		{"other", "plan9", noEnv, filepath.Join("/home/u", ".tempo", "logs")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logDir(tt.goos, "/home/u", tt.getenv))
		})
	}
}

func TestPruneLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{"a.log", "b.log", "c.log", "d.log"}
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 3))

	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "d.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestPruneLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 10))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
