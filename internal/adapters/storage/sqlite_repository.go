package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tempo/internal/config"
	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// maxRetries bounds how often a busy or locked database operation is attempted
const maxRetries = 3

// SQLiteRepository stores completed sessions and key/value slots in one SQLite database
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI, CLI commands and the SSH server share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&CompletedSessionModel{}, &SlotModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("SQLite repository opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a SQLiteRepository for a specific TEMPO_HOME path
func NewSQLiteRepositoryForPath(tempoHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(tempoHomePath, "state.db"))
}

// Slots returns a KeyValueSlot backed by the same database
func (r *SQLiteRepository) Slots() *SQLiteSlot {
	return &SQLiteSlot{db: r.db}
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements SessionRecorder.Record. Recording the same ID twice keeps the first row.
func (r *SQLiteRepository) Record(ctx context.Context, session domain.Session) error {
	model := domainToCompletedSessionModel(session)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	logging.Logger.Debug("Session recorded", "id", session.ID, "task", session.Task, "duration", session.Duration)
	return nil
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var model CompletedSessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	session := completedSessionModelToDomain(model)
	return &session, nil
}

// List implements SessionReader.List, newest first. limit <= 0 returns every session.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]domain.Session, error) {
	var models []CompletedSessionModel
	err := withRetry(func() error {
		q := r.db.WithContext(ctx).Order("completed_at DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, completedSessionModelToDomain(m))
	}
	return sessions, nil
}

// withRetry retries an operation on SQLITE_BUSY or SQLITE_LOCKED
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
