package ports

import (
	"context"

	"tempo/internal/domain"
)

// SessionReader reads the completed session log
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, limit int) ([]domain.Session, error)
}

// SessionRecorder appends completed focus sessions
type SessionRecorder interface {
	Record(ctx context.Context, session domain.Session) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionRecorder
	Close() error
}
