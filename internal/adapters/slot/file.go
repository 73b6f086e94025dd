package slot

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// File stores each key in its own file under a directory.
// Writes hold an exclusive lock and reads a shared one, so a reader never sees a half-written value.
type File struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.KeyValueSlot = (*File)(nil)

// NewFile creates a File slot rooted at dir, creating it if needed
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create slot directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

func (f *File) Get(key string) (string, error) {
	file, err := os.Open(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrSlotEmpty
		}
		return "", fmt.Errorf("failed to open slot file: %w", err)
	}
	defer file.Close()

	if err := lockFileShared(file); err != nil {
		return "", fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read slot file: %w", err)
	}
	if len(data) == 0 {
		return "", domain.ErrSlotEmpty
	}
	return string(data), nil
}

func (f *File) Set(key, value string) error {
	file, err := os.OpenFile(f.path(key), os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open slot file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.WriteString(value); err != nil {
		return fmt.Errorf("failed to write slot file: %w", err)
	}
	return nil
}

func (f *File) Remove(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove slot file: %w", err)
	}
	logging.Logger.Debug("Slot removed", "key", key)
	return nil
}
